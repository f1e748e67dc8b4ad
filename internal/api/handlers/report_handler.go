// internal/api/handlers/report_handler.go
package handlers

import (
	"errors"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"

	"github.com/andresuchdata/reorder-report/internal/domain"
	"github.com/andresuchdata/reorder-report/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// ReportFileName is the attachment name of the generated workbook. On disk
// it always lives inside the request's private workspace, never at a shared
// well-known path.
const ReportFileName = "reorder_report.xlsx"

type ReportHandler struct {
	reportService *service.ReportService
}

func NewReportHandler(reportService *service.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// Generate accepts the multipart upload (sales_file required; inventory_file,
// ignore_file and irc_file optional), runs the computation in an isolated
// workspace and streams the report workbook back as an attachment.
func (h *ReportHandler) Generate(c *gin.Context) {
	salesFile, err := c.FormFile("sales_file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "sales file is required"})
		return
	}

	workspace, err := h.reportService.NewWorkspace()
	if err != nil {
		log.Error().Err(err).Msg("failed to create request workspace")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to prepare workspace"})
		return
	}
	defer os.RemoveAll(workspace)

	paths := service.InputPaths{}
	paths.Sales, err = saveUpload(c, salesFile, workspace, "sales.xlsx")
	if err != nil {
		log.Error().Err(err).Msg("failed to save sales upload")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save uploaded file"})
		return
	}

	optional := []struct {
		field string
		name  string
		dest  *string
	}{
		{"inventory_file", "inventory.xlsx", &paths.Inventory},
		{"ignore_file", "ignore.xlsx", &paths.Ignore},
		{"irc_file", "IRC.xlsx", &paths.Rebate},
	}
	for _, opt := range optional {
		file, err := c.FormFile(opt.field)
		if err != nil {
			continue // optional input not supplied
		}
		saved, err := saveUpload(c, file, workspace, opt.name)
		if err != nil {
			log.Error().Err(err).Str("field", opt.field).Msg("failed to save upload")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save uploaded file"})
			return
		}
		*opt.dest = saved
	}

	outPath := filepath.Join(workspace, ReportFileName)
	if _, err := h.reportService.Generate(c.Request.Context(), paths, outPath); err != nil {
		status := http.StatusInternalServerError
		var missing *domain.MissingFileError
		var schema *domain.SchemaError
		switch {
		case errors.As(err, &missing), errors.As(err, &schema), errors.Is(err, domain.ErrEmptyDataset):
			status = http.StatusUnprocessableEntity
		}
		log.Error().Err(err).Msg("report generation failed")
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	c.FileAttachment(outPath, ReportFileName)
}

func saveUpload(c *gin.Context, file *multipart.FileHeader, dir, name string) (string, error) {
	path := filepath.Join(dir, name)
	if err := c.SaveUploadedFile(file, path); err != nil {
		return "", err
	}
	return path, nil
}
