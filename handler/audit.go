package handler

import (
	"net/http"
	"strconv"

	"github.com/Abhishekjeyakumar/Contract-Analysis-and-Risk-Assessment-Bot/service"
	"github.com/gin-gonic/gin"
)

const defaultAuditLimit = 50

type AuditHandler struct {
	auditor *service.Auditor
}

func NewAuditHandler(auditor *service.Auditor) *AuditHandler {
	return &AuditHandler{auditor: auditor}
}

// List returns the most recent audit records
func (h *AuditHandler) List(c *gin.Context) {
	limit := defaultAuditLimit
	if raw := c.Query("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			limit = parsed
		}
	}

	entries, err := h.auditor.Recent(limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read audit log"})
		return
	}

	if entries == nil {
		entries = []service.AuditEntry{}
	}
	c.JSON(http.StatusOK, gin.H{"entries": entries})
}
