// internal/engine/classify.go
package engine

import "strings"

// Short-shelf-life categories subject to the flat one-week, on-hand-ignoring
// reorder rule. The business maintains this list; matching is a
// case-insensitive exact comparison against the sales department column.
var specialDepartments = []string{
	"BAKERY (WALL)- SHORT SHELF LIFE (BELOW 14 DAYS)",
	"BAKERY - COOLER",
	"BAKERY-SHORT SHELF LIFE (BELOW 14 DAYS)",
	"COOLER - CHEESE / BUTTER",
	"COOLER - DESSERT",
	"COOLER - DIP",
	"COOLER - MEAT",
	"COOLER - READY TO USE / EAT / DRINK",
	"YOGURT/YOGURT DRINK",
	"MILK",
}

var specialDepartmentSet = func() map[string]struct{} {
	set := make(map[string]struct{}, len(specialDepartments))
	for _, d := range specialDepartments {
		set[strings.ToLower(d)] = struct{}{}
	}
	return set
}()

// IsSpecialDepartment reports whether the department falls under the
// one-week supply rule. Every department is either special or regular.
func IsSpecialDepartment(dept string) bool {
	_, ok := specialDepartmentSet[strings.ToLower(dept)]
	return ok
}
