package domain

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// DefaultDenylist holds boilerplate lines copied along with company names
// from directory pages
var DefaultDenylist = []string{
	"voir fiche",
	"voir la fiche",
	"en savoir plus",
	"voir le profil",
	"site web",
	"contacter",
}

// Progress reports how far a batch has gone
type Progress struct {
	Processed int
	Total     int
}

// Fraction returns processed/total in [0,1]
func (p Progress) Fraction() float64 {
	if p.Total <= 0 {
		return 0
	}
	return float64(p.Processed) / float64(p.Total)
}

// Done reports whether every item was attempted
func (p Progress) Done() bool {
	return p.Total > 0 && p.Processed >= p.Total
}

// FoldText lowercases s, applies NFKC, strips accents and collapses
// whitespace so that labels typed or pasted differently compare equal.
func FoldText(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFKC)
	folded, _, err := transform.String(t, s)
	if err != nil {
		folded = norm.NFKC.String(s)
	}
	return strings.Join(strings.Fields(strings.ToLower(folded)), " ")
}

// NormalizeBatch trims raw lines and drops blank and denylisted ones.
// Order and duplicates are preserved.
func NormalizeBatch(lines []string, denylist []string) []string {
	deny := make(map[string]struct{}, len(denylist))
	for _, d := range denylist {
		if f := FoldText(d); f != "" {
			deny[f] = struct{}{}
		}
	}

	out := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if _, skip := deny[FoldText(line)]; skip {
			continue
		}
		out = append(out, line)
	}
	return out
}

// SplitLines splits pasted text into raw lines
func SplitLines(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	return strings.Split(text, "\n")
}
