package schedule

import "strings"

// CleanText collapses runs of whitespace to single spaces and trims the
// ends. It is idempotent and returns "" for empty input.
func CleanText(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
