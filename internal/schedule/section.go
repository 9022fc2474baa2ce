package schedule

import "strings"

// Labels recognized in column 0 of a schedule table.
const (
	labelDoorType      = "DOOR TYPE"
	labelFireRating    = "FIRE-RATING"
	labelFireRatingAlt = "FIRE RATING"
	labelDescription   = "DESCRIPTION"
	labelLocation      = "LOCATION"
	labelRemarks       = "REMARKS"
	labelElevation     = "ELEVATION"
)

// ResolveSections locates every label block in a table. A block starts at a
// row whose first cell reads "DOOR TYPE" and runs to the next such row or
// the end of the table; an "ELEVATION" row cuts the block short since the
// rows below it hold elevation drawings, not schedule data.
func ResolveSections(t Table) []Section {
	var anchors []int
	for i, row := range t {
		if rowLabel(row) == labelDoorType {
			anchors = append(anchors, i)
		}
	}

	sections := make([]Section, 0, len(anchors))
	for n, anchor := range anchors {
		end := len(t)
		if n+1 < len(anchors) {
			end = anchors[n+1]
		}

		s := Section{
			DoorTypeRow:    anchor,
			FireRatingRow:  -1,
			DescriptionRow: -1,
			LocationRow:    -1,
			RemarksRow:     -1,
		}
	scan:
		for i := anchor; i < end; i++ {
			switch rowLabel(t[i]) {
			case labelFireRating, labelFireRatingAlt:
				s.FireRatingRow = i
			case labelDescription:
				s.DescriptionRow = i
			case labelLocation:
				s.LocationRow = i
			case labelRemarks:
				s.RemarksRow = i
			case labelElevation:
				end = i
				break scan
			}
		}
		s.End = end
		sections = append(sections, s)
	}
	return sections
}

// rowLabel returns the trimmed text of a row's first cell.
func rowLabel(row []string) string {
	if len(row) == 0 {
		return ""
	}
	return strings.TrimSpace(row[0])
}
