package schedule

import (
	"strings"
	"sync"
)

// Extractor converts tables of text cells into door records. It holds no
// per-run state; each table folds to an independent record slice and the
// caller concatenates them in document order.
type Extractor struct {
	validator *Validator
}

// NewExtractor creates an extractor filtering records through v. A nil v
// means the default validator.
func NewExtractor(v *Validator) *Extractor {
	if v == nil {
		v = NewValidator()
	}
	return &Extractor{validator: v}
}

// ExtractAll folds pages of tables into one record sequence ordered by page,
// then table, then section, then column, then within-column split. Pages are
// data-independent, so up to workers of them run concurrently; results are
// stitched back in page order regardless.
func (e *Extractor) ExtractAll(pages []PageTables, workers int) []DoorRecord {
	if workers < 2 || len(pages) < 2 {
		var all []DoorRecord
		for _, p := range pages {
			all = append(all, e.extractPage(p)...)
		}
		return all
	}

	results := make([][]DoorRecord, len(pages))
	sem := make(chan struct{}, workers)
	var wg sync.WaitGroup
	for i, p := range pages {
		wg.Add(1)
		sem <- struct{}{}
		go func() {
			defer wg.Done()
			defer func() { <-sem }()
			results[i] = e.extractPage(p)
		}()
	}
	wg.Wait()

	var all []DoorRecord
	for _, rs := range results {
		all = append(all, rs...)
	}
	return all
}

func (e *Extractor) extractPage(p PageTables) []DoorRecord {
	var records []DoorRecord
	for _, t := range p.Tables {
		records = append(records, e.ExtractTable(t)...)
	}
	return records
}

// ExtractTable converts one table into its valid door records, in section
// then column order. A panic while working a malformed table is contained
// here and yields no records for that table; the remaining tables are
// unaffected.
func (e *Extractor) ExtractTable(t Table) (records []DoorRecord) {
	defer func() {
		if r := recover(); r != nil {
			records = nil
		}
	}()

	if len(t) < 2 {
		return nil
	}

	for _, section := range ResolveSections(t) {
		records = append(records, e.extractSection(t, section)...)
	}
	return records
}

func (e *Extractor) extractSection(t Table, s Section) []DoorRecord {
	var records []DoorRecord
	doorRow := t[s.DoorTypeRow]

	for col := 1; col < len(doorRow); col++ {
		if strings.TrimSpace(doorRow[col]) == "" {
			continue
		}
		if strings.Contains(doorRow[col], "TENDER DRAWING") || strings.Contains(doorRow[col], "DRAWING TITLE") {
			continue
		}

		text := MergeContinuation(doorRow, col)

		code, dimensions, ok := ParseDoorType(text)
		if !ok {
			continue
		}

		shared := DoorRecord{
			FireRating:  fieldAt(t, s.FireRatingRow, col),
			Description: fieldAt(t, s.DescriptionRow, col),
			Location:    fieldAt(t, s.LocationRow, col),
			Remarks:     fieldAt(t, s.RemarksRow, col),
		}

		if isMultiDoor(text) {
			for _, split := range SplitMultiDoor(text) {
				r := shared
				r.DoorType = split.Code
				r.Dimensions = split.Dimensions
				if e.validator.Valid(r) {
					records = append(records, r)
				}
			}
			continue
		}

		r := shared
		r.DoorType = code
		r.Dimensions = dimensions
		if e.validator.Valid(r) {
			records = append(records, r)
		}
	}
	return records
}

// isMultiDoor reports whether a door-type cell packs several doors: its
// first token repeats later in the text, or more than one dimension appears.
func isMultiDoor(text string) bool {
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return false
	}
	first := fields[0]
	rest := text[strings.Index(text, first)+len(first):]
	if strings.Contains(rest, first) {
		return true
	}
	return strings.Count(text, "(W)x") > 1
}

// fieldAt reads the normalized text of a field cell, tolerating missing
// field rows and ragged rows.
func fieldAt(t Table, row, col int) string {
	if row < 0 || row >= len(t) || col >= len(t[row]) {
		return ""
	}
	return CleanText(t[row][col])
}
