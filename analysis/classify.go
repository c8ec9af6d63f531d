package analysis

import (
	"math"
	"strings"

	"github.com/Abhishekjeyakumar/Contract-Analysis-and-Risk-Assessment-Bot/model"
)

type classifierRule struct {
	contractType string
	keywords     []string
}

// Declaration order doubles as the tie-break: when two types score
// equally, the one listed first wins.
var classifierRules = []classifierRule{
	{model.TypeEmployment, []string{"employee", "employer", "salary", "termination"}},
	{model.TypeLease, []string{"rent", "tenant", "lease"}},
	{model.TypeVendor, []string{"vendor", "service", "fees"}},
	{model.TypePartnership, []string{"partner", "profit sharing"}},
}

// Classify scores the text against each contract type's keyword list.
// A keyword counts once regardless of how often it appears. Confidence
// is bestScore/(totalScore+1) rounded to two decimals, which keeps it in
// [0,1) and makes it exactly 0 when no keyword of any type matches.
func Classify(text string) model.ClassificationResult {
	t := strings.ToLower(text)

	best := classifierRules[0].contractType
	bestScore := 0
	total := 0
	for _, rule := range classifierRules {
		score := 0
		for _, kw := range rule.keywords {
			if strings.Contains(t, kw) {
				score++
			}
		}
		total += score
		if score > bestScore {
			bestScore = score
			best = rule.contractType
		}
	}

	confidence := math.Round(float64(bestScore)/float64(total+1)*100) / 100
	return model.ClassificationResult{
		ContractType: best,
		Confidence:   confidence,
	}
}
