package analysis

import (
	"regexp"
	"sort"

	"github.com/Abhishekjeyakumar/Contract-Analysis-and-Risk-Assessment-Bot/model"
)

// Entity patterns are deliberately narrow: a fixed party-role list, a
// fixed jurisdiction gazetteer, and ASCII date/amount forms. Matching is
// case-sensitive and purely syntactic; no semantic validation is done.
var (
	partyRE        = regexp.MustCompile(`(?:Employer|Employee|Company|Vendor|Client)\s+[A-Z][A-Za-z &]+`)
	dateRE         = regexp.MustCompile(`\b\d{1,2}[/-]\d{1,2}[/-]\d{2,4}\b`)
	amountRE       = regexp.MustCompile(`(?:₹|\$|Rs\.?)\s?\d+(?:,\d+)*(?:\.\d+)?`)
	jurisdictionRE = regexp.MustCompile(`India|Tamil Nadu|Delhi|Mumbai|Chennai`)
)

// ExtractEntities runs the four pattern scans over the text and collects
// the matched substrings into deduplicated sets. The slices are sorted
// only to make the output stable; order carries no meaning.
func ExtractEntities(text string) model.EntityBundle {
	return model.EntityBundle{
		Parties:      matchSet(partyRE, text),
		Dates:        matchSet(dateRE, text),
		Amounts:      matchSet(amountRE, text),
		Jurisdiction: matchSet(jurisdictionRE, text),
	}
}

func matchSet(re *regexp.Regexp, text string) []string {
	seen := make(map[string]struct{})
	out := []string{}
	for _, m := range re.FindAllString(text, -1) {
		if _, ok := seen[m]; ok {
			continue
		}
		seen[m] = struct{}{}
		out = append(out, m)
	}
	sort.Strings(out)
	return out
}
