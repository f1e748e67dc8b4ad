package service

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/andresuchdata/reorder-report/internal/config"
	"github.com/andresuchdata/reorder-report/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func testService(t *testing.T) *ReportService {
	t.Helper()
	return NewReportService(&config.Config{
		App:    config.AppConfig{WorkDir: t.TempDir()},
		Report: config.ReportConfig{InventoryDescriptionColumn: 3, InventoryDepartmentColumn: 15},
	})
}

func writeWorkbook(t *testing.T, dir, name string, rows [][]interface{}) string {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	for i, row := range rows {
		addr, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow("Sheet1", addr, &row))
	}
	path := filepath.Join(dir, name)
	require.NoError(t, f.SaveAs(path))
	return path
}

func TestGenerate_EndToEnd(t *testing.T) {
	svc := testService(t)
	dir := t.TempDir()

	sales := writeWorkbook(t, dir, "sales.xlsx", [][]interface{}{
		{"Stock Code", "Stock Description", "Description", "Quantity", "Stock Date"},
		{"A1", "Olive Oil", "GROCERY", 35, "2025-06-01"},
		{"A1", "Olive Oil", "GROCERY", 35, "2025-06-08"},
	})
	inventory := writeWorkbook(t, dir, "inventory.xlsx", [][]interface{}{
		{"Stock Code", "Stock Description", "Department", "Quantity"},
		{"A1", "Olive Oil", "GROCERY", 30},
	})

	outPath := filepath.Join(dir, "report.xlsx")
	rep, err := svc.Generate(context.Background(), InputPaths{Sales: sales, Inventory: inventory}, outPath)
	require.NoError(t, err)

	assert.Equal(t, 7, rep.Window.Days)
	require.Len(t, rep.FullData, 1)
	assert.Equal(t, [domain.HorizonCount]float64{70, 140, 210, 280}, rep.FullData[0].WeekSales)
	assert.Equal(t, domain.KnownOnHand(30), rep.FullData[0].OnHand)

	// 70 projected minus 30 on hand for the one-week horizon.
	require.Len(t, rep.Supply[0], 1)
	assert.Equal(t, 40, rep.Supply[0][0].QuantityToOrder)

	f, err := excelize.OpenFile(outPath)
	require.NoError(t, err)
	defer f.Close()
	assert.Contains(t, f.GetSheetList(), domain.SheetFullData)
	assert.Contains(t, f.GetSheetList(), domain.SupplySheetName(1))
}

func TestCompute_OptionalInputsDegrade(t *testing.T) {
	svc := testService(t)
	dir := t.TempDir()

	sales := writeWorkbook(t, dir, "sales.xlsx", [][]interface{}{
		{"Stock Code", "Stock Description", "Description", "Quantity", "Stock Date"},
		{"A1", "Olive Oil", "GROCERY", 14, "2025-06-01"},
		{"A1", "Olive Oil", "GROCERY", 14, "2025-06-08"},
	})

	rep, err := svc.Compute(context.Background(), InputPaths{
		Sales:     sales,
		Inventory: filepath.Join(dir, "missing_inventory.xlsx"),
		Ignore:    filepath.Join(dir, "missing_ignore.xlsx"),
		Rebate:    filepath.Join(dir, "missing_irc.xlsx"),
	})
	require.NoError(t, err)

	require.Len(t, rep.FullData, 1)
	assert.False(t, rep.FullData[0].OnHand.Known)
	assert.Empty(t, rep.RebateEligible)
	assert.Empty(t, rep.RebateNewItems)

	// Unknown on-hand means nothing gets subtracted from demand.
	require.Len(t, rep.Supply[0], 1)
	assert.Equal(t, 28, rep.Supply[0][0].QuantityToOrder)
}

func TestCompute_MissingSalesIsFatal(t *testing.T) {
	svc := testService(t)

	_, err := svc.Compute(context.Background(), InputPaths{Sales: filepath.Join(t.TempDir(), "nope.xlsx")})
	var missing *domain.MissingFileError
	require.ErrorAs(t, err, &missing)
}

func TestCompute_IgnoredAndRebatedCodes(t *testing.T) {
	svc := testService(t)
	dir := t.TempDir()

	sales := writeWorkbook(t, dir, "sales.xlsx", [][]interface{}{
		{"Stock Code", "Stock Description", "Description", "Quantity", "Stock Date"},
		{"A1", "Olive Oil", "GROCERY", 35, "2025-06-01"},
		{"A1", "Olive Oil", "GROCERY", 35, "2025-06-08"},
		{"X1", "Discontinued Drink", "GROCERY", 100, "2025-06-02"},
	})
	ignore := writeWorkbook(t, dir, "ignore.xlsx", [][]interface{}{
		{"Stock Code"},
		{"X1"},
	})
	rebate := writeWorkbook(t, dir, "IRC.xlsx", [][]interface{}{
		{"A", "B", "C", "D", "E", "F", "G", "H", "I"},
		{"N1", "Brand New Snack", "x", "$1.00", "x", "x", "x", "2025-06-01", "2025-06-30"},
	})

	rep, err := svc.Compute(context.Background(), InputPaths{Sales: sales, Ignore: ignore, Rebate: rebate})
	require.NoError(t, err)

	require.Len(t, rep.FullData, 1)
	assert.Equal(t, "A1", rep.FullData[0].StockCode)

	// N1 is neither sold nor stocked, so it lands on the new-items sheet.
	require.Len(t, rep.RebateNewItems, 1)
	assert.Equal(t, "N1", rep.RebateNewItems[0].StockCode)
	assert.Equal(t, domain.RebateNewItemsDept, rep.RebateNewItems[0].Department)
}

func TestNewWorkspace_IsUniquePerCall(t *testing.T) {
	svc := testService(t)

	a, err := svc.NewWorkspace()
	require.NoError(t, err)
	b, err := svc.NewWorkspace()
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
	assert.DirExists(t, a)
	assert.DirExists(t, b)
}
