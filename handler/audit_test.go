package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/Abhishekjeyakumar/Contract-Analysis-and-Risk-Assessment-Bot/config"
	"github.com/Abhishekjeyakumar/Contract-Analysis-and-Risk-Assessment-Bot/model"
	"github.com/Abhishekjeyakumar/Contract-Analysis-and-Risk-Assessment-Bot/service"
	"github.com/gin-gonic/gin"
)

func newTestAuditor(t *testing.T) *service.Auditor {
	t.Helper()
	auditor := service.NewAuditor(&config.AuditConfig{
		Path: filepath.Join(t.TempDir(), "audit.db"),
	})
	t.Cleanup(auditor.Close)
	return auditor
}

func TestAuditHandlerList(t *testing.T) {
	auditor := newTestAuditor(t)
	handler := NewAuditHandler(auditor)

	auditor.Record(model.AuditRecord{
		File:         "nda.pdf",
		ContractType: model.TypeEmployment,
		Risk:         "High",
		Timestamp:    "2024-03-01T10:00:00Z",
	})
	auditor.Record(model.AuditRecord{
		File:         "lease.docx",
		ContractType: model.TypeLease,
		Risk:         "Low",
		Timestamp:    "2024-03-02T10:00:00Z",
	})

	router := gin.New()
	router.GET("/audit", handler.List)

	req := httptest.NewRequest("GET", "/audit", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}

	var response map[string][]service.AuditEntry
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to parse response: %v", err)
	}

	entries := response["entries"]
	if len(entries) != 2 {
		t.Fatalf("Expected 2 entries, got %d", len(entries))
	}
	// Most recent first
	if entries[0].File != "lease.docx" {
		t.Errorf("Expected newest entry first, got %s", entries[0].File)
	}
}

func TestAuditHandlerListLimit(t *testing.T) {
	auditor := newTestAuditor(t)
	handler := NewAuditHandler(auditor)

	for i := 0; i < 5; i++ {
		auditor.Record(model.AuditRecord{
			File:         "contract.pdf",
			ContractType: model.TypeVendor,
			Risk:         "Medium",
		})
	}

	router := gin.New()
	router.GET("/audit", handler.List)

	req := httptest.NewRequest("GET", "/audit?limit=3", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}

	var response map[string][]service.AuditEntry
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to parse response: %v", err)
	}
	if len(response["entries"]) != 3 {
		t.Errorf("Expected 3 entries with limit=3, got %d", len(response["entries"]))
	}
}

func TestAuditHandlerListEmpty(t *testing.T) {
	auditor := newTestAuditor(t)
	handler := NewAuditHandler(auditor)

	router := gin.New()
	router.GET("/audit", handler.List)

	req := httptest.NewRequest("GET", "/audit", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}

	var response map[string][]service.AuditEntry
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to parse response: %v", err)
	}
	if response["entries"] == nil {
		t.Error("Expected empty array, not null")
	}
	if len(response["entries"]) != 0 {
		t.Errorf("Expected 0 entries, got %d", len(response["entries"]))
	}
}
