package analysis

import (
	"strings"
	"testing"
)

const sampleContract = `1. Term: This agreement lasts for twelve months from the date of signing.
2. Payment: The client shall pay fees within thirty days of invoice.
3. Termination: Either party may terminate with sixty days written notice.`

func TestSegmentTitledClauses(t *testing.T) {
	clauses := Segment(sampleContract)

	if len(clauses) != 3 {
		t.Fatalf("Expected 3 clauses, got %d", len(clauses))
	}

	wantTitles := []string{"1. Term", "2. Payment", "3. Termination"}
	for i, want := range wantTitles {
		if clauses[i].Title != want {
			t.Errorf("Clause %d: expected title %q, got %q", i, want, clauses[i].Title)
		}
		if clauses[i].Text == "" {
			t.Errorf("Clause %d: expected non-empty text", i)
		}
	}

	if !strings.Contains(clauses[1].Text, "thirty days") {
		t.Errorf("Expected payment clause body, got %q", clauses[1].Text)
	}
}

func TestSegmentFallbackClause(t *testing.T) {
	text := "This short agreement has no numbered headings at all."
	clauses := Segment(text)

	if len(clauses) != 1 {
		t.Fatalf("Expected exactly 1 fallback clause, got %d", len(clauses))
	}
	if clauses[0].Title != FallbackClauseTitle {
		t.Errorf("Expected title %q, got %q", FallbackClauseTitle, clauses[0].Title)
	}
	if clauses[0].Text != text {
		t.Errorf("Expected fallback clause to wrap the whole text, got %q", clauses[0].Text)
	}
}

func TestSegmentNeverEmpty(t *testing.T) {
	for _, text := range []string{"", "   ", "plain prose", sampleContract} {
		if clauses := Segment(text); len(clauses) == 0 {
			t.Errorf("Segment(%q) returned an empty sequence", text)
		}
	}
}

func TestSegmentIdempotentOnHeadingless(t *testing.T) {
	text := "already normalized text with no headings"

	first := Segment(text)
	second := Segment(first[0].Text)

	if len(first) != 1 || len(second) != 1 {
		t.Fatalf("Expected single clause both times, got %d then %d", len(first), len(second))
	}
	if first[0] != second[0] {
		t.Errorf("Expected identical clause, got %+v then %+v", first[0], second[0])
	}
}

func TestSegmentDeterministic(t *testing.T) {
	a := Segment(sampleContract)
	b := Segment(sampleContract)

	if len(a) != len(b) {
		t.Fatalf("Expected same clause count, got %d and %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Errorf("Clause %d differs between runs: %+v vs %+v", i, a[i], b[i])
		}
	}
}

func TestSegmentBodiesCoverText(t *testing.T) {
	clauses := Segment(sampleContract)

	// Every word of the collapsed document must survive in a title or body
	var rebuilt strings.Builder
	for _, cl := range clauses {
		rebuilt.WriteString(cl.Title)
		rebuilt.WriteString(": ")
		rebuilt.WriteString(cl.Text)
		rebuilt.WriteString(" ")
	}

	for _, word := range strings.Fields(CollapseWhitespace(sampleContract)) {
		if !strings.Contains(rebuilt.String(), word) {
			t.Errorf("Word %q lost during segmentation", word)
		}
	}
}

func TestSegmentCollapsesWhitespace(t *testing.T) {
	text := "1. Term:   spread\n\nacross    lines"
	clauses := Segment(text)

	if len(clauses) != 1 {
		t.Fatalf("Expected 1 clause, got %d", len(clauses))
	}
	if clauses[0].Text != "spread across lines" {
		t.Errorf("Expected collapsed body, got %q", clauses[0].Text)
	}
}

func TestSegmentParenthesisHeading(t *testing.T) {
	text := "1) Confidentiality: The parties shall keep all terms confidential."
	clauses := Segment(text)

	if len(clauses) != 1 {
		t.Fatalf("Expected 1 clause, got %d", len(clauses))
	}
	if clauses[0].Title != "1) Confidentiality" {
		t.Errorf("Expected title '1) Confidentiality', got %q", clauses[0].Title)
	}
}

func TestSegmentDuplicateTitlesAllowed(t *testing.T) {
	text := "1. Term: First term clause. 1. Term: Second term clause."
	clauses := Segment(text)

	if len(clauses) != 2 {
		t.Fatalf("Expected 2 clauses, got %d", len(clauses))
	}
	if clauses[0].Title != clauses[1].Title {
		t.Errorf("Expected duplicate titles to be preserved, got %q and %q", clauses[0].Title, clauses[1].Title)
	}
	if clauses[0].Text == clauses[1].Text {
		t.Error("Expected distinct bodies for duplicate titles")
	}
}
