package model

import (
	"encoding/json"
	"fmt"
	"time"
)

// Language is the detected document language. Detection is binary by
// design: Hindi is recognised, everything else maps to English, and
// detection failures map to unknown.
type Language string

const (
	LanguageEnglish Language = "English"
	LanguageHindi   Language = "Hindi"
	LanguageUnknown Language = "unknown"
)

// RiskTier is an ordered risk level: Low < Medium < High.
type RiskTier int

const (
	RiskLow RiskTier = iota
	RiskMedium
	RiskHigh
)

func (r RiskTier) String() string {
	switch r {
	case RiskHigh:
		return "High"
	case RiskMedium:
		return "Medium"
	default:
		return "Low"
	}
}

func (r RiskTier) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.String())
}

func (r *RiskTier) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	switch s {
	case "Low":
		*r = RiskLow
	case "Medium":
		*r = RiskMedium
	case "High":
		*r = RiskHigh
	default:
		return fmt.Errorf("unknown risk tier: %q", s)
	}
	return nil
}

// Contract type constants. The order here is the classifier's tie-break
// order: when two types score equally, the first one listed wins.
const (
	TypeEmployment  = "Employment Agreement"
	TypeLease       = "Lease Agreement"
	TypeVendor      = "Vendor / Service Agreement"
	TypePartnership = "Partnership Deed"
)

// Clause is a titled segment of the contract body.
type Clause struct {
	Title string `json:"title"`
	Text  string `json:"text"`
}

// AnalyzedClause is a clause enriched with its risk tier and the
// provider's explanation. Suggestion is only filled for non-Low clauses.
type AnalyzedClause struct {
	Title       string   `json:"title"`
	Text        string   `json:"text"`
	Risk        RiskTier `json:"risk"`
	Explanation string   `json:"explanation"`
	Suggestion  string   `json:"suggestion,omitempty"`
}

// EntityBundle holds the structured fields extracted from the document.
// Each slice is deduplicated; order carries no meaning.
type EntityBundle struct {
	Parties      []string `json:"parties"`
	Dates        []string `json:"dates"`
	Amounts      []string `json:"amounts"`
	Jurisdiction []string `json:"jurisdiction"`
}

type ClassificationResult struct {
	ContractType string  `json:"contract_type"`
	Confidence   float64 `json:"confidence"`
}

// AnalysisResult is the full structured output for one document.
type AnalysisResult struct {
	Language       Language             `json:"language"`
	Classification ClassificationResult `json:"classification"`
	Entities       EntityBundle         `json:"entities"`
	Clauses        []AnalyzedClause     `json:"clauses"`
	Summary        string               `json:"summary"`
	OverallRisk    RiskTier             `json:"overall_risk"`
}

// Analysis represents one uploaded contract and its processing state.
type Analysis struct {
	ID           string          `json:"id"`
	Filename     string          `json:"filename"`
	Tenant       string          `json:"tenant"`
	ObjectName   string          `json:"object_name,omitempty"`
	ReportObject string          `json:"report_object,omitempty"`
	Status       string          `json:"status"` // pending, processing, completed, failed
	Result       *AnalysisResult `json:"result,omitempty"`
	ErrorMsg     string          `json:"error_msg,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// Analysis status constants
const (
	StatusPending    = "pending"
	StatusProcessing = "processing"
	StatusCompleted  = "completed"
	StatusFailed     = "failed"
)

// AuditRecord is the append-only trace written once per analysis run.
type AuditRecord struct {
	File         string `json:"file"`
	ContractType string `json:"contract_type"`
	Risk         string `json:"risk"`
	Timestamp    string `json:"timestamp"`
}
