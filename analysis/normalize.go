// Package analysis implements the document-to-structured-analysis
// pipeline: language normalization, clause segmentation, entity
// extraction, contract classification and rule-based risk scoring.
// Every function here is pure; the outputs depend only on the input
// text.
package analysis

import (
	"regexp"
	"strings"

	"github.com/Abhishekjeyakumar/Contract-Analysis-and-Risk-Assessment-Bot/model"
	"github.com/abadojack/whatlanggo"
)

var whitespaceRE = regexp.MustCompile(`\s+`)

// Document is the normalized view of an uploaded contract. The text is
// kept as extracted; consumers that need whitespace collapsed (the
// segmenter) apply CollapseWhitespace themselves.
type Document struct {
	Text     string
	Language model.Language
}

// Normalize detects the document language. Detection never fails to the
// caller: empty or undecidable input yields the unknown tag.
func Normalize(raw string) Document {
	return Document{
		Text:     raw,
		Language: DetectLanguage(raw),
	}
}

// DetectLanguage maps detected Hindi to Hindi and every other detectable
// language to English. Anything the detector cannot place is unknown.
func DetectLanguage(text string) model.Language {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return model.LanguageUnknown
	}

	info := whatlanggo.Detect(trimmed)
	if info.Lang == -1 || info.Confidence == 0 {
		return model.LanguageUnknown
	}
	if info.Lang == whatlanggo.Hin {
		return model.LanguageHindi
	}
	return model.LanguageEnglish
}

// CollapseWhitespace folds every whitespace run into a single space and
// trims the ends.
func CollapseWhitespace(text string) string {
	return strings.TrimSpace(whitespaceRE.ReplaceAllString(text, " "))
}
