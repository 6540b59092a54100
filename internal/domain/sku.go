package domain

import "strings"

// NormalizeSKU canonicalizes a style code for matching: lower-cased with
// every separator stripped, so "DZ5485-612" and "dz5485612" are equal.
// Matching stays exact after normalization; no fuzzy matching, because a
// wrong link silently corrupts downstream valuation.
func NormalizeSKU(sku string) string {
	var b strings.Builder
	b.Grow(len(sku))
	for _, r := range strings.ToLower(strings.TrimSpace(sku)) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}
