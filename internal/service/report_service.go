// internal/service/report_service.go
package service

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/andresuchdata/reorder-report/internal/config"
	"github.com/andresuchdata/reorder-report/internal/dataset"
	"github.com/andresuchdata/reorder-report/internal/domain"
	"github.com/andresuchdata/reorder-report/internal/engine"
	"github.com/andresuchdata/reorder-report/internal/report"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// InputPaths names the input workbooks for one computation. Only Sales is
// required; empty or missing optional paths degrade to empty/unknown data.
type InputPaths struct {
	Sales     string
	Inventory string
	Ignore    string
	Rebate    string
}

// ReportService runs the full load -> compute -> serialize flow. Each call
// is self-contained; the service itself holds no mutable state, so one
// instance serves concurrent requests.
type ReportService struct {
	cfg *config.Config
}

func NewReportService(cfg *config.Config) *ReportService {
	return &ReportService{cfg: cfg}
}

// NewWorkspace creates a fresh, uniquely named working directory for one
// request. Requests never share paths, so concurrent invocations cannot
// clobber each other's inputs or report file.
func (s *ReportService) NewWorkspace() (string, error) {
	dir := filepath.Join(s.cfg.App.WorkDir, uuid.NewString())
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create workspace %s: %w", dir, err)
	}
	return dir, nil
}

// Generate loads the inputs, runs the computation and writes the report
// workbook at outPath. The input loads happen sequentially before any
// pipeline stage runs; the computation itself is synchronous.
func (s *ReportService) Generate(ctx context.Context, in InputPaths, outPath string) (*domain.Report, error) {
	rep, err := s.Compute(ctx, in)
	if err != nil {
		return nil, err
	}

	if err := report.WriteFile(rep, outPath); err != nil {
		// Serialization problems are reported with their cause but must not
		// take the host process down.
		log.Error().Err(err).Str("path", outPath).Msg("could not save the report workbook")
		return nil, fmt.Errorf("could not save the report workbook: %w", err)
	}

	log.Info().Str("path", outPath).Msg("report workbook saved")
	return rep, nil
}

// Compute loads the inputs and returns the report tables without
// serializing them.
func (s *ReportService) Compute(ctx context.Context, in InputPaths) (*domain.Report, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	sales, err := dataset.LoadSales(in.Sales)
	if err != nil {
		return nil, err
	}

	ignore := make(map[string]struct{})
	if in.Ignore != "" {
		ignore, err = dataset.LoadIgnoreCodes(in.Ignore)
		if err != nil {
			return nil, err
		}
		log.Info().Int("codes", len(ignore)).Msg("ignore list loaded")
	}

	var (
		inventory       map[string]domain.InventoryRecord
		inventoryLoaded bool
	)
	if in.Inventory != "" {
		layout := dataset.InventoryLayout{
			DescriptionColumn: s.cfg.Report.InventoryDescriptionColumn,
			DepartmentColumn:  s.cfg.Report.InventoryDepartmentColumn,
		}
		inventory, inventoryLoaded, err = dataset.LoadInventory(in.Inventory, layout)
		if err != nil {
			return nil, err
		}
	}
	if !inventoryLoaded {
		log.Warn().Msg("inventory not loaded, on-hand quantities will be unknown")
	}

	var (
		rebates      []domain.RebateRecord
		rebateLoaded bool
	)
	if in.Rebate != "" {
		rebates, rebateLoaded = dataset.LoadRebates(in.Rebate)
	}

	return engine.Compute(engine.Inputs{
		Sales:           sales,
		Inventory:       inventory,
		InventoryLoaded: inventoryLoaded,
		IgnoreCodes:     ignore,
		Rebates:         rebates,
		RebateLoaded:    rebateLoaded,
	})
}
