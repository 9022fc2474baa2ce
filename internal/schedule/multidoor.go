package schedule

import (
	"slices"
	"strings"
)

// DoorSplit is one door carved out of a multi-door cell.
type DoorSplit struct {
	Code       string
	Dimensions string
}

// SplitMultiDoor expands a door-type cell that packs several doors into one
// column, e.g.
//
//	"FMD2 FMD2 FMD2\n475(W)x2190(H) 600(W)x2190(H) 800(W)x2190(H)\n4A 6 8"
//
// into per-door (code, dimensions) pairs. When the generic repeated-code
// strategy yields nothing and the raw text still contains "FD1 FD1", the
// narrower legacy FD1 rule is applied. Returns nil when neither produces a
// door.
func SplitMultiDoor(text string) []DoorSplit {
	splits := splitRepeatedCode(text)
	if len(splits) == 0 && strings.Contains(text, "FD1 FD1") {
		return splitLegacyFD1(text)
	}
	return splits
}

// splitRepeatedCode handles cells whose first line repeats the base code
// once per door. Dimensions are collected across the whole text in order;
// variants come from the lines below the code line.
func splitRepeatedCode(text string) []DoorSplit {
	lines := splitLines(text)
	if len(lines) < 2 {
		return nil
	}

	first := strings.Fields(lines[0])
	if len(first) == 0 {
		return nil
	}
	base := first[0]

	numDoors := 0
	for _, tok := range first {
		if tok == base {
			numDoors++
		}
	}
	if numDoors < 2 {
		return nil
	}

	dims := findAllDimensions(text)
	repairSplitDimensions(dims, lines[1:])
	variants := collectVariants(lines[1:], numDoors)

	splits := make([]DoorSplit, 0, numDoors)
	for i := 0; i < numDoors; i++ {
		code := base
		if i < len(variants) && variants[i] != "" {
			code = base + "/" + variants[i]
		}
		var d string
		if i < len(dims) {
			d = dims[i]
		}
		splits = append(splits, DoorSplit{Code: code, Dimensions: d})
	}
	return splits
}

// repairSplitDimensions restores dimensions whose leading digit was torn off
// by the extractor: "1 000(W)x2190(H)" is collected as "000(W)x2190(H)" with
// the stray "1" sitting just before it in the token stream. The trigger is
// kept exact; widening it would corrupt valid dimensions.
func repairSplitDimensions(dims, lines []string) {
	var toks []string
	for _, line := range lines {
		toks = append(toks, strings.Fields(line)...)
	}
	for i, dim := range dims {
		if !strings.HasPrefix(dim, "000(W)x") {
			continue
		}
		for j, tok := range toks {
			if tok == dim && j > 0 && isSingleDigit(toks[j-1]) {
				dims[i] = toks[j-1] + dim
				break
			}
		}
	}
}

// collectVariants gathers up to numDoors variant tags from the lines below
// the code line. A dedicated variant line (no dimensions, at least numDoors
// tokens) is preferred; if those do not yield enough, all lines are scanned
// token by token in first-seen order, skipping duplicates.
func collectVariants(lines []string, numDoors int) []string {
	var variants []string

	for _, line := range lines {
		parts := strings.Fields(line)
		if len(parts) < numDoors || lineHasDimension(parts) {
			continue
		}
		for _, part := range parts {
			if !startsWithDigit(part) {
				continue
			}
			v := leadingVariant(part)
			if v == "" || looksLikeWidth(v) {
				continue
			}
			variants = append(variants, v)
			if len(variants) >= numDoors {
				break
			}
		}
		if len(variants) >= numDoors {
			return variants
		}
	}

	for _, line := range lines {
		for _, part := range strings.Fields(line) {
			if !startsWithDigit(part) {
				continue
			}
			v := leadingVariant(part)
			if v == "" || looksLikeWidth(v) || slices.Contains(variants, v) {
				continue
			}
			variants = append(variants, v)
			if len(variants) >= numDoors {
				return variants
			}
		}
	}
	return variants
}

func lineHasDimension(parts []string) bool {
	for _, p := range parts {
		if findDimension(p) != "" {
			return true
		}
	}
	return false
}

// splitLegacyFD1 is the historic "FD1 FD1" handler. Dimensions come from any
// line containing "(W)x", variants from a line that is exactly two
// variant-shaped tokens, and at least two records are always produced.
func splitLegacyFD1(text string) []DoorSplit {
	var dims, variants []string
	for _, line := range splitLines(text) {
		if strings.Contains(line, "(W)x") {
			dims = append(dims, findAllDimensions(line)...)
			continue
		}
		parts := strings.Fields(line)
		if len(parts) == 2 && legacyVariantRe.MatchString(parts[0]) && legacyVariantRe.MatchString(parts[1]) {
			variants = parts
		}
	}

	n := max(len(dims), len(variants), 2)
	splits := make([]DoorSplit, 0, n)
	for i := 0; i < n; i++ {
		code := "FD1"
		if i < len(variants) && variants[i] != "" {
			code = "FD1/" + variants[i]
		}
		var d string
		if i < len(dims) {
			d = dims[i]
		}
		splits = append(splits, DoorSplit{Code: code, Dimensions: d})
	}
	return splits
}
