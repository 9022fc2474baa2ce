// Package export serializes door records for downstream consumers.
package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"

	"github.com/buildplan/doorsched/internal/schedule"
)

// CSVHeader is the column order of the CSV export, matching the JSON key
// order.
var CSVHeader = []string{"door_type", "dimensions", "fire_rating", "description", "location", "remarks"}

// WriteJSON writes records as an indented UTF-8 JSON array. An empty record
// set still produces a valid empty array.
func WriteJSON(w io.Writer, records []schedule.DoorRecord) error {
	if records == nil {
		records = []schedule.DoorRecord{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "    ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(records); err != nil {
		return fmt.Errorf("encode records: %w", err)
	}
	return nil
}

// WriteCSV writes records as a CSV table with a header row.
func WriteCSV(w io.Writer, records []schedule.DoorRecord) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(CSVHeader); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, r := range records {
		row := []string{r.DoorType, r.Dimensions, r.FireRating, r.Description, r.Location, r.Remarks}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write record: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}
