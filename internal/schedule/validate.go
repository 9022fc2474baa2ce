package schedule

import "strings"

// DefaultMetadataMarkers is the deny-list of title-block phrases that mark a
// draft record as sheet metadata rather than a door entry. Matching is
// case-insensitive substring containment against the door type.
var DefaultMetadataMarkers = []string{
	"TENDER DRAWING",
	"DRAWING TITLE",
	"PRECINCT NAME",
	"PROJECT TITLE",
	"LOT NO",
	"MUKIM NO",
	"JOB TITLE",
	"DRAWN BY",
	"CHECKED BY",
	"SCALE",
	"DATE",
	"REV",
	"DESCRIPTION",
}

// Validator rejects draft records whose door type is sheet metadata or a
// bare dimension instead of a door code.
type Validator struct {
	markers []string
}

// NewValidator returns a validator using the default marker set plus any
// extra markers. Extra markers are uppercased to match the comparison.
func NewValidator(extra ...string) *Validator {
	markers := make([]string, 0, len(DefaultMetadataMarkers)+len(extra))
	markers = append(markers, DefaultMetadataMarkers...)
	for _, m := range extra {
		markers = append(markers, strings.ToUpper(m))
	}
	return &Validator{markers: markers}
}

// Valid reports whether r is a real door entry.
func (v *Validator) Valid(r DoorRecord) bool {
	doorType := strings.TrimSpace(r.DoorType)
	upper := strings.ToUpper(doorType)
	for _, m := range v.markers {
		if strings.Contains(upper, m) {
			return false
		}
	}
	if strings.HasPrefix(doorType, "000(W)x") || isDimensionToken(doorType) {
		return false
	}
	return hasUppercase(doorType)
}
