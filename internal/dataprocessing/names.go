package dataprocessing

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

// nameMarkers end the decorative prefix of an export label, e.g. "arge*".
const nameMarkers = "*-"

// NormalizeName removes everything up to and including the last '*' or '-'
// and trims surrounding whitespace. It is total and idempotent.
func NormalizeName(raw string) string {
	if i := strings.LastIndexAny(raw, nameMarkers); i >= 0 {
		raw = raw[i+1:]
	}
	return strings.TrimSpace(raw)
}

// NormalizeValue stringifies v before normalizing it. Cells normalize
// their displayed value.
func NormalizeValue(v any) string {
	switch s := v.(type) {
	case nil:
		return ""
	case string:
		return NormalizeName(s)
	case fmt.Stringer:
		return NormalizeName(s.String())
	default:
		return NormalizeName(fmt.Sprint(s))
	}
}

// NameFilter rejects aggregate rows of the export (totals, daily sums,
// staff counts) that sit in the name column but are not employees.
type NameFilter struct {
	keywords []string
}

// NewNameFilter builds a filter matching any of keywords caselessly
func NewNameFilter(keywords []string) *NameFilter {
	folded := make([]string, 0, len(keywords))
	for _, k := range keywords {
		if k = fold(strings.TrimSpace(k)); k != "" {
			folded = append(folded, k)
		}
	}
	return &NameFilter{keywords: folded}
}

// Excluded reports whether name is empty or contains an excluded keyword
func (f *NameFilter) Excluded(name string) bool {
	if strings.TrimSpace(name) == "" {
		return true
	}
	n := fold(name)
	for _, k := range f.keywords {
		if strings.Contains(n, k) {
			return true
		}
	}
	return false
}

// fold maps s to its caseless form. Composition is normalized first because
// exports from different platforms spell "ü" either precomposed or decomposed.
func fold(s string) string {
	return cases.Fold().String(norm.NFC.String(s))
}
