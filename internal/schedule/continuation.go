package schedule

import "strings"

// continuationLookahead bounds how far right of a door-type cell the merger
// searches for a split-off dimension fragment. The upstream extractor only
// ever pushes a fragment one or two columns over; scanning further would
// absorb the next door's data.
const continuationLookahead = 2

// MergeContinuation returns the door-type cell at col, extended with a
// dimension fragment the table extractor pushed into a following column.
// Only a cell whose entire trimmed text is a dimension token counts as a
// fragment, and only the first one found is merged.
func MergeContinuation(row []string, col int) string {
	text := row[col]
	for next := col + 1; next < len(row) && next <= col+continuationLookahead; next++ {
		frag := strings.TrimSpace(row[next])
		if frag != "" && isDimensionToken(frag) {
			return text + " " + frag
		}
	}
	return text
}
