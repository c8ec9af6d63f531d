package analysis

import (
	"strings"

	"github.com/Abhishekjeyakumar/Contract-Analysis-and-Risk-Assessment-Bot/model"
)

// Lexicon maps a risky keyword or phrase to its weight. Matching is
// case-insensitive substring containment; a keyword contributes its
// weight once no matter how often it occurs.
type Lexicon map[string]int

// DefaultLexicon is the fixed rule table used in production.
var DefaultLexicon = Lexicon{
	"penalty":               3,
	"indemnify":             4,
	"terminate at any time": 4,
	"without notice":        3,
	"non compete":           4,
	"auto renew":            3,
	"arbitration":           2,
	"jurisdiction":          2,
}

// Tier thresholds: score >= 7 is High, score >= 4 is Medium.
const (
	HighRiskThreshold   = 7
	MediumRiskThreshold = 4
)

// Score sums the weights of every lexicon entry present in the text.
func (l Lexicon) Score(text string) int {
	t := strings.ToLower(text)
	score := 0
	for keyword, weight := range l {
		if strings.Contains(t, keyword) {
			score += weight
		}
	}
	return score
}

// Tier scores the text and maps the score to a risk tier.
func (l Lexicon) Tier(text string) model.RiskTier {
	return TierForScore(l.Score(text))
}

// TierForScore maps a raw score onto the fixed thresholds.
func TierForScore(score int) model.RiskTier {
	switch {
	case score >= HighRiskThreshold:
		return model.RiskHigh
	case score >= MediumRiskThreshold:
		return model.RiskMedium
	default:
		return model.RiskLow
	}
}

// AggregateRisk rolls clause tiers up to a document tier: the maximum
// clause tier wins. An empty list is Low.
func AggregateRisk(tiers []model.RiskTier) model.RiskTier {
	overall := model.RiskLow
	for _, tier := range tiers {
		if tier > overall {
			overall = tier
		}
	}
	return overall
}
