package schedule

import "strings"

// Finalize applies the post-extraction cleanup pass: field labels that leak
// out of column 0 into data cells are stripped, and records missing a
// dimension borrow one embedded in their door type. The input slice is not
// mutated.
func Finalize(records []DoorRecord) []DoorRecord {
	out := make([]DoorRecord, len(records))
	for i, r := range records {
		r.FireRating = stripLabel(r.FireRating, labelFireRating)
		r.Description = stripLabel(r.Description, labelDescription)
		r.Location = stripLabel(r.Location, labelLocation)
		r.Remarks = stripLabel(r.Remarks, labelRemarks)
		if r.Dimensions == "" {
			r.Dimensions = findDimension(r.DoorType)
		}
		out[i] = r
	}
	return out
}

func stripLabel(s, label string) string {
	return strings.TrimSpace(strings.ReplaceAll(s, label, ""))
}
