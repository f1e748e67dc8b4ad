// cmd/reorder/main.go
package main

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/andresuchdata/reorder-report/internal/config"
	"github.com/andresuchdata/reorder-report/internal/domain"
	"github.com/andresuchdata/reorder-report/internal/service"
	"github.com/andresuchdata/reorder-report/pkg/logger"
	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"
)

func main() {
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("warning: could not load .env file: %v", err)
	}

	app := &cli.App{
		Name:  "reorder",
		Usage: "Compute retail replenishment quantities from sales and inventory workbooks",
		Commands: []*cli.Command{
			{
				Name:  "compute",
				Usage: "Analyze sales data and generate the reorder report workbook",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "sales",
						Usage:   "Path to the sales workbook (required)",
						Value:   "sales.xlsx",
						EnvVars: []string{"REORDER_SALES_FILE"},
					},
					&cli.StringFlag{
						Name:    "inventory",
						Usage:   "Path to the inventory workbook (optional)",
						Value:   "inventory.xlsx",
						EnvVars: []string{"REORDER_INVENTORY_FILE"},
					},
					&cli.StringFlag{
						Name:    "ignore",
						Usage:   "Path to the ignore-list workbook (optional)",
						Value:   "ignore.xlsx",
						EnvVars: []string{"REORDER_IGNORE_FILE"},
					},
					&cli.StringFlag{
						Name:    "irc",
						Usage:   "Path to the IRC rebate schedule workbook (optional)",
						Value:   "IRC.xlsx",
						EnvVars: []string{"REORDER_IRC_FILE"},
					},
					&cli.StringFlag{
						Name:    "out",
						Usage:   "Output path for the report workbook",
						Value:   "reorder_report.xlsx",
						EnvVars: []string{"REORDER_OUT_FILE"},
					},
					&cli.BoolFlag{
						Name:  "quiet",
						Usage: "Skip the per-product console summary",
					},
					&cli.StringFlag{
						Name:  "log-level",
						Usage: "Log level (debug, info, warn, error)",
						Value: "info",
					},
				},
				Action: runCompute,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func runCompute(c *cli.Context) error {
	logger.SetLevel(c.String("log-level"))
	cfg := config.Load()

	svc := service.NewReportService(cfg)
	paths := service.InputPaths{
		Sales:     c.String("sales"),
		Inventory: c.String("inventory"),
		Ignore:    c.String("ignore"),
		Rebate:    c.String("irc"),
	}

	rep, err := svc.Generate(c.Context, paths, c.String("out"))
	if err != nil {
		return err
	}

	if !c.Bool("quiet") {
		printSummary(rep)
	}

	fmt.Printf("\nReport saved as %s\n", c.String("out"))
	return nil
}

// printSummary mirrors the workbook's FULL DATA sheet on the console: the
// analyzed date range followed by one block per product.
func printSummary(rep *domain.Report) {
	fmt.Printf("\nSales data analyzed from %s to %s (%d days)\n\n",
		rep.Window.Start.Format("2006-01-02"),
		rep.Window.End.Format("2006-01-02"),
		rep.Window.Days)

	for _, row := range rep.FullData {
		fmt.Printf("Stock Code: %s\n", row.StockCode)
		fmt.Printf("Product: %s\n", row.Product)
		fmt.Printf("Department: %s\n", row.Department)
		if row.OnHand.Known {
			fmt.Printf("On Hand: %d\n", int(row.OnHand.Qty))
		} else {
			fmt.Printf("On Hand: INVENTORY UNKNOWN\n")
		}
		for h := 1; h <= domain.HorizonCount; h++ {
			fmt.Printf("  - Sales per %d week(s): %.2f\n", h, row.WeekSales[h-1])
		}
		fmt.Println(strings.Repeat("-", 30))
	}
}
