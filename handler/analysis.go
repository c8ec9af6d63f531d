package handler

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/Abhishekjeyakumar/Contract-Analysis-and-Risk-Assessment-Bot/extract"
	"github.com/Abhishekjeyakumar/Contract-Analysis-and-Risk-Assessment-Bot/middleware"
	"github.com/Abhishekjeyakumar/Contract-Analysis-and-Risk-Assessment-Bot/model"
	"github.com/Abhishekjeyakumar/Contract-Analysis-and-Risk-Assessment-Bot/service"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AnalysisHandler struct {
	minioService *service.MinioService
	analyzer     *service.Analyzer
	store        *service.AnalysisStore
}

func NewAnalysisHandler(minioSvc *service.MinioService, analyzer *service.Analyzer) *AnalysisHandler {
	return &AnalysisHandler{
		minioService: minioSvc,
		analyzer:     analyzer,
		store:        service.GetAnalysisStore(),
	}
}

// Upload accepts a contract file and starts its analysis. Unsupported
// formats are rejected here, before anything is stored or processed.
func (h *AnalysisHandler) Upload(c *gin.Context) {
	tenant := middleware.GetTenant(c)

	file, header, err := c.Request.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No file provided"})
		return
	}
	defer file.Close()

	if !extract.Supported(header.Filename) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": fmt.Sprintf("Unsupported file format %q: only PDF, DOCX and TXT are allowed", filepath.Ext(header.Filename)),
		})
		return
	}

	raw, err := io.ReadAll(file)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read file"})
		return
	}

	analysisID := uuid.New().String()

	// Keep the original document if object storage is configured
	var objectName string
	if h.minioService != nil {
		objectName = fmt.Sprintf("%s/%s/%s", tenant, analysisID, header.Filename)
		err = h.minioService.UploadFile(c.Request.Context(), objectName,
			bytes.NewReader(raw), int64(len(raw)), contentTypeFor(header.Filename))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store file: " + err.Error()})
			return
		}
	}

	run := &model.Analysis{
		ID:         analysisID,
		Filename:   header.Filename,
		Tenant:     tenant,
		ObjectName: objectName,
		Status:     model.StatusPending,
		CreatedAt:  time.Now(),
		UpdatedAt:  time.Now(),
	}
	h.store.Save(run)

	// Analysis runs in the background; clients poll the status endpoint
	go h.analyzer.Process(context.Background(), run, raw)

	c.JSON(http.StatusOK, gin.H{
		"id":       analysisID,
		"filename": header.Filename,
		"status":   model.StatusPending,
	})
}

func contentTypeFor(filename string) string {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		return "application/pdf"
	case ".docx":
		return "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	default:
		return "text/plain"
	}
}

// List returns all analyses for the current tenant, without clause payloads
func (h *AnalysisHandler) List(c *gin.Context) {
	tenant := middleware.GetTenant(c)
	analyses := h.store.GetByTenant(tenant)

	result := make([]gin.H, len(analyses))
	for i, run := range analyses {
		entry := gin.H{
			"id":         run.ID,
			"filename":   run.Filename,
			"status":     run.Status,
			"created_at": run.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
			"updated_at": run.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
		}
		if run.Result != nil {
			entry["contract_type"] = run.Result.Classification.ContractType
			entry["overall_risk"] = run.Result.OverallRisk.String()
		}
		result[i] = entry
	}

	c.JSON(http.StatusOK, gin.H{"analyses": result})
}

// Get returns a single analysis with its full result
func (h *AnalysisHandler) Get(c *gin.Context) {
	tenant := middleware.GetTenant(c)
	id := c.Param("id")

	run := h.store.Get(id)
	if run == nil || run.Tenant != tenant {
		c.JSON(http.StatusNotFound, gin.H{"error": "Analysis not found"})
		return
	}

	c.JSON(http.StatusOK, run)
}

// GetStatus returns the processing status of an analysis
func (h *AnalysisHandler) GetStatus(c *gin.Context) {
	tenant := middleware.GetTenant(c)
	id := c.Param("id")

	run := h.store.Get(id)
	if run == nil || run.Tenant != tenant {
		c.JSON(http.StatusNotFound, gin.H{"error": "Analysis not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":        run.ID,
		"status":    run.Status,
		"error_msg": run.ErrorMsg,
	})
}

// GetReport returns a presigned download URL for the rendered PDF report
func (h *AnalysisHandler) GetReport(c *gin.Context) {
	tenant := middleware.GetTenant(c)
	id := c.Param("id")

	run := h.store.Get(id)
	if run == nil || run.Tenant != tenant {
		c.JSON(http.StatusNotFound, gin.H{"error": "Analysis not found"})
		return
	}

	if run.ReportObject == "" || h.minioService == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Report not available"})
		return
	}

	url, err := h.minioService.GetPresignedURL(c.Request.Context(), run.ReportObject)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate URL: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":  run.ID,
		"url": url,
	})
}

// Delete deletes an analysis
func (h *AnalysisHandler) Delete(c *gin.Context) {
	tenant := middleware.GetTenant(c)
	id := c.Param("id")

	run := h.store.Get(id)
	if run == nil || run.Tenant != tenant {
		c.JSON(http.StatusNotFound, gin.H{"error": "Analysis not found"})
		return
	}

	h.store.Delete(id)

	c.JSON(http.StatusOK, gin.H{"message": "Analysis deleted"})
}
