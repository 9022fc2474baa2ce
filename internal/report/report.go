// Package report renders the post-run console summary.
package report

import (
	"fmt"
	"io"
	"sort"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/buildplan/doorsched/internal/schedule"
)

const (
	previewRecords    = 3
	previewFieldRunes = 80
)

// Summary prints the extraction totals, a per-door-type count table, and a
// preview of the first few records.
func Summary(w io.Writer, records []schedule.DoorRecord) {
	heading := color.New(color.FgCyan, color.Bold)

	heading.Fprintf(w, "Total doors extracted: %d\n", len(records))
	if len(records) == 0 {
		return
	}

	counts := make(map[string]int)
	for _, r := range records {
		counts[r.DoorType]++
	}
	types := make([]string, 0, len(counts))
	for dt := range counts {
		types = append(types, dt)
	}
	sort.Strings(types)

	heading.Fprintf(w, "\nDoor types summary:\n")
	tw := table.NewWriter()
	tw.SetOutputMirror(w)
	tw.AppendHeader(table.Row{"Door Type", "Count"})
	for _, dt := range types {
		tw.AppendRow(table.Row{dt, counts[dt]})
	}
	tw.Render()

	heading.Fprintf(w, "\nFirst %d door entries:\n", min(previewRecords, len(records)))
	for i, r := range records {
		if i >= previewRecords {
			break
		}
		fmt.Fprintf(w, "\n%d. %s\n", i+1, r.DoorType)
		fmt.Fprintf(w, "   Dimensions:  %s\n", truncate(r.Dimensions))
		fmt.Fprintf(w, "   Fire Rating: %s\n", truncate(r.FireRating))
		fmt.Fprintf(w, "   Description: %s\n", truncate(r.Description))
		fmt.Fprintf(w, "   Location:    %s\n", truncate(r.Location))
		fmt.Fprintf(w, "   Remarks:     %s\n", truncate(r.Remarks))
	}
}

// truncate caps long field text for the preview.
func truncate(s string) string {
	runes := []rune(s)
	if len(runes) <= previewFieldRunes {
		return s
	}
	return string(runes[:previewFieldRunes])
}
