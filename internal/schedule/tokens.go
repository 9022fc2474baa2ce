package schedule

import (
	"regexp"
	"strings"
)

// The extraction heuristics are expressed in terms of these small token
// classifiers so each can be exercised on its own instead of through one
// monolithic parse function.

var (
	// dimensionRe matches a width-by-height token anywhere in a string.
	dimensionRe = regexp.MustCompile(`\d+\(W\)x\d+\(H\)`)

	// fullDimensionRe matches a string that is nothing but a dimension.
	fullDimensionRe = regexp.MustCompile(`^\d+\(W\)x\d+\(H\)$`)

	// variantTokenRe matches a variant tag: a bare integer or digits
	// followed by uppercase letters ("1", "10S", "4A").
	variantTokenRe = regexp.MustCompile(`^\d+[A-Z]*$`)

	// leadingVariantRe extracts a variant tag from the head of a token,
	// cut at whitespace or an opening parenthesis.
	leadingVariantRe = regexp.MustCompile(`^(\d+[A-Z]*)(?:[\s(]|$)`)

	// legacyVariantRe matches the variant shape of the historic FD1
	// handler: digits followed by exactly one uppercase letter.
	legacyVariantRe = regexp.MustCompile(`^\d+[A-Z]$`)
)

// splitLines breaks raw cell text into trimmed, non-empty lines.
func splitLines(text string) []string {
	var lines []string
	for _, l := range strings.Split(text, "\n") {
		if l = strings.TrimSpace(l); l != "" {
			lines = append(lines, l)
		}
	}
	return lines
}

// isVariantToken reports whether tok is exactly a variant tag.
func isVariantToken(tok string) bool {
	return variantTokenRe.MatchString(tok)
}

// isDimensionToken reports whether tok is exactly a dimension such as
// "1000(W)x2190(H)".
func isDimensionToken(tok string) bool {
	return fullDimensionRe.MatchString(tok)
}

// findDimension returns the first dimension embedded in s, or "".
func findDimension(s string) string {
	return dimensionRe.FindString(s)
}

// findAllDimensions returns every dimension embedded in s, in order.
func findAllDimensions(s string) []string {
	return dimensionRe.FindAllString(s, -1)
}

// leadingVariant returns the variant tag at the head of tok, or "" when tok
// does not start with one. "4A" and "21" qualify; so does the "16" in
// "16(SEE NOTE)".
func leadingVariant(tok string) string {
	m := leadingVariantRe.FindStringSubmatch(tok)
	if m == nil {
		return ""
	}
	return m[1]
}

// looksLikeWidth reports whether a candidate variant is really a dimension
// width torn off a split token: a pure numeral of three or more digits.
func looksLikeWidth(v string) bool {
	if len(v) < 3 {
		return false
	}
	for i := 0; i < len(v); i++ {
		if v[i] < '0' || v[i] > '9' {
			return false
		}
	}
	return true
}

func startsWithDigit(s string) bool {
	return s != "" && s[0] >= '0' && s[0] <= '9'
}

func isSingleDigit(s string) bool {
	return len(s) == 1 && s[0] >= '0' && s[0] <= '9'
}

func hasUppercase(s string) bool {
	return strings.IndexFunc(s, func(r rune) bool { return r >= 'A' && r <= 'Z' }) >= 0
}
