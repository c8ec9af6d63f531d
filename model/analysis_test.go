package model

import (
	"encoding/json"
	"testing"
	"time"
)

func TestRiskTierOrdering(t *testing.T) {
	if !(RiskLow < RiskMedium && RiskMedium < RiskHigh) {
		t.Error("Expected Low < Medium < High")
	}
}

func TestRiskTierString(t *testing.T) {
	cases := map[RiskTier]string{
		RiskLow:    "Low",
		RiskMedium: "Medium",
		RiskHigh:   "High",
	}
	for tier, want := range cases {
		if got := tier.String(); got != want {
			t.Errorf("Expected %s, got %s", want, got)
		}
	}
}

func TestRiskTierJSONRoundTrip(t *testing.T) {
	for _, tier := range []RiskTier{RiskLow, RiskMedium, RiskHigh} {
		data, err := json.Marshal(tier)
		if err != nil {
			t.Fatalf("Failed to marshal %v: %v", tier, err)
		}

		var back RiskTier
		if err := json.Unmarshal(data, &back); err != nil {
			t.Fatalf("Failed to unmarshal %s: %v", data, err)
		}
		if back != tier {
			t.Errorf("Expected %v, got %v", tier, back)
		}
	}
}

func TestRiskTierUnmarshalInvalid(t *testing.T) {
	var tier RiskTier
	if err := json.Unmarshal([]byte(`"Critical"`), &tier); err == nil {
		t.Error("Expected error for unknown tier")
	}
}

func TestAnalysisStatusConstants(t *testing.T) {
	statuses := []string{StatusPending, StatusProcessing, StatusCompleted, StatusFailed}
	expected := []string{"pending", "processing", "completed", "failed"}

	for i, status := range statuses {
		if status != expected[i] {
			t.Errorf("Expected '%s', got '%s'", expected[i], status)
		}
	}
}

func TestAuditRecordJSONFields(t *testing.T) {
	record := AuditRecord{
		File:         "lease.pdf",
		ContractType: TypeLease,
		Risk:         "Medium",
		Timestamp:    time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC).Format(time.RFC3339),
	}

	data, err := json.Marshal(record)
	if err != nil {
		t.Fatalf("Failed to marshal audit record: %v", err)
	}

	var fields map[string]string
	if err := json.Unmarshal(data, &fields); err != nil {
		t.Fatalf("Failed to unmarshal: %v", err)
	}

	for _, key := range []string{"file", "contract_type", "risk", "timestamp"} {
		if _, ok := fields[key]; !ok {
			t.Errorf("Expected JSON field %q", key)
		}
	}
}
