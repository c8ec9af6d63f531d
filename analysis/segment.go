package analysis

import (
	"regexp"
	"strings"

	"github.com/Abhishekjeyakumar/Contract-Analysis-and-Risk-Assessment-Bot/model"
)

// headingRE matches numbered clause headings such as "3. Termination:"
// or "12) Notice Period:". The capture group is the heading itself.
var headingRE = regexp.MustCompile(`(?:^|\s)(\d+[.)]\s*[A-Z][A-Za-z\s]+:)`)

// FallbackClauseTitle is used when no heading is found in the document.
const FallbackClauseTitle = "General Clause"

// Segment splits contract text into titled clauses. Whitespace is
// collapsed first, then the text is cut at each heading match; the text
// between one heading and the next becomes that clause's body. A
// document without any recognizable heading yields a single fallback
// clause wrapping the whole text, so the result is never empty.
func Segment(text string) []model.Clause {
	collapsed := CollapseWhitespace(text)

	matches := headingRE.FindAllStringSubmatchIndex(collapsed, -1)
	if len(matches) == 0 {
		return []model.Clause{{Title: FallbackClauseTitle, Text: collapsed}}
	}

	clauses := make([]model.Clause, 0, len(matches))
	for i, m := range matches {
		// m[2]:m[3] is the heading capture group
		title := strings.Trim(collapsed[m[2]:m[3]], ": ")

		bodyEnd := len(collapsed)
		if i+1 < len(matches) {
			bodyEnd = matches[i+1][2]
		}
		body := strings.TrimSpace(collapsed[m[3]:bodyEnd])

		clauses = append(clauses, model.Clause{Title: title, Text: body})
	}
	return clauses
}
