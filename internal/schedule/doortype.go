package schedule

import "strings"

// headerLeakKeywords mark a first line that is a sheet header bleeding into
// the door-type column rather than a door code.
var headerLeakKeywords = []string{"PRECINCT", "DRAWING", "PROJECT"}

// ParseDoorType extracts the door code and dimension string from the raw
// multi-line text of a door-type cell.
//
//	"MD\n1250(W)x2240(H)\n1"                   -> ("MD/1", "1250(W)x2240(H)")
//	"FDM\n1"                                   -> ("FDM/1", "")
//	"FD1 1-HR FIRE RATED\n10S 1000(W)x2190(H)" -> ("FD1/10S", "1000(W)x2190(H)")
//
// ok is false when the cell holds no door code at all. Malformed dimension
// text degrades to an empty dimension instead of an error.
func ParseDoorType(text string) (code, dimensions string, ok bool) {
	lines := splitLines(text)
	if len(lines) == 0 {
		return "", "", false
	}

	first := strings.Fields(lines[0])
	if len(first) == 0 {
		return "", "", false
	}
	base := first[0]

	if !hasUppercase(base) || strings.HasPrefix(base, "000(W)") {
		return "", "", false
	}
	for _, kw := range headerLeakKeywords {
		if strings.Contains(lines[0], kw) {
			return "", "", false
		}
	}

	// A dimension can ride along on the code line itself,
	// e.g. "GD 2100(W)x2190(H)".
	for _, tok := range first {
		if d := findDimension(tok); d != "" {
			dimensions = d
			break
		}
	}

	var variant string
	for _, line := range lines[1:] {
		if findDimension(line) != "" {
			parts := strings.Fields(line)
			if len(parts) >= 2 && isVariantToken(parts[0]) {
				// Variant and dimension share a line,
				// e.g. "10S 1000(W)x2190(H)".
				variant = parts[0]
				dimensions = findDimension(strings.Join(parts[1:], " "))
			} else if dimensions == "" {
				dimensions = line
			}
			continue
		}
		if parts := strings.Fields(line); len(parts) > 0 && variant == "" && isVariantToken(parts[0]) {
			// Variant line with trailing annotation, e.g.
			// "21 (MIN 850mm CLEAR WHEN ONE DOOR LEAF IS OPEN)".
			variant = parts[0]
		}
	}

	if variant != "" {
		return base + "/" + variant, dimensions, true
	}
	return base, dimensions, true
}
