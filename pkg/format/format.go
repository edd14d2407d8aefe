// Package format re-serializes JSON text with indented or compact layout.
//
// All functions are pure: input that is empty, whitespace-only or not valid
// JSON is returned exactly as given.
package format

import (
	"strings"

	"github.com/codeready-toolchain/jsonmask/pkg/jsonvalue"
)

// Format parses text and serializes it again, indented when indent is true and
// on a single line otherwise. Non-ASCII characters are kept unescaped.
func Format(text string, indent bool) string {
	if strings.TrimSpace(text) == "" {
		return text
	}

	root, err := jsonvalue.Parse(text)
	if err != nil {
		return text
	}

	out, err := jsonvalue.Marshal(root, indent)
	if err != nil {
		return text
	}
	return out
}

// PrettyPrint formats text with indentation.
func PrettyPrint(text string) string {
	return Format(text, true)
}

// Compact formats text on a single line without insignificant whitespace.
func Compact(text string) string {
	return Format(text, false)
}

// FormatPtr is Format for optional input: nil yields nil.
func FormatPtr(text *string, indent bool) *string {
	if text == nil {
		return nil
	}
	out := Format(*text, indent)
	return &out
}

// PrettyPrintPtr is PrettyPrint for optional input: nil yields nil.
func PrettyPrintPtr(text *string) *string {
	return FormatPtr(text, true)
}

// CompactPtr is Compact for optional input: nil yields nil.
func CompactPtr(text *string) *string {
	return FormatPtr(text, false)
}
