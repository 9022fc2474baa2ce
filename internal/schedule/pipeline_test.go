package schedule

import (
	"reflect"
	"testing"
)

func scheduleTable() Table {
	return Table{
		{"DOOR TYPE", "MD\n1250(W)x2240(H)\n1", "", "TENDER DRAWING NOTES", "FDM\n1"},
		{"FIRE-RATING", "1-HR", "", "", "2-HR"},
		{"DESCRIPTION", "METAL DOOR", "", "", "FIRE DOOR"},
		{"LOCATION", "STAIR 1", "", "", "STAIR 2"},
		{"REMARKS", "  DOUBLE   LEAF ", "", "", ""},
		{"ELEVATION", "", "", "", ""},
		{"DOOR TYPE", "DB DB\n9 900(W)x2190(H) 10 1 000(W)x2190(H)"},
		{"LOCATION", "CORRIDOR"},
	}
}

func TestExtractTable(t *testing.T) {
	e := NewExtractor(nil)

	got := e.ExtractTable(scheduleTable())
	want := []DoorRecord{
		{
			DoorType:    "MD/1",
			Dimensions:  "1250(W)x2240(H)",
			FireRating:  "1-HR",
			Description: "METAL DOOR",
			Location:    "STAIR 1",
			Remarks:     "DOUBLE LEAF",
		},
		{
			DoorType:    "FDM/1",
			FireRating:  "2-HR",
			Description: "FIRE DOOR",
			Location:    "STAIR 2",
		},
		{DoorType: "DB/9", Dimensions: "900(W)x2190(H)", Location: "CORRIDOR"},
		{DoorType: "DB/10", Dimensions: "1000(W)x2190(H)", Location: "CORRIDOR"},
	}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("ExtractTable() = %+v, want %+v", got, want)
	}
}

func TestExtractTableContinuationColumn(t *testing.T) {
	e := NewExtractor(nil)

	table := Table{
		{"DOOR TYPE", "FD2\n1", "1000(W)x2190(H)"},
		{"LOCATION", "LOBBY", ""},
	}

	got := e.ExtractTable(table)
	want := []DoorRecord{
		{DoorType: "FD2/1", Dimensions: "1000(W)x2190(H)", Location: "LOBBY"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ExtractTable() = %+v, want %+v", got, want)
	}
}

func TestExtractTableTooSmall(t *testing.T) {
	e := NewExtractor(nil)

	if got := e.ExtractTable(Table{{"DOOR TYPE", "MD"}}); got != nil {
		t.Errorf("single-row table yielded %+v, want nil", got)
	}
	if got := e.ExtractTable(nil); got != nil {
		t.Errorf("nil table yielded %+v, want nil", got)
	}
}

func TestExtractTableRaggedRows(t *testing.T) {
	e := NewExtractor(nil)

	// Field rows shorter than the door-type row must read as empty, not
	// panic the whole table.
	table := Table{
		{"DOOR TYPE", "MD\n1", "GD"},
		{"FIRE-RATING", "1-HR"},
		{"LOCATION"},
	}

	got := e.ExtractTable(table)
	want := []DoorRecord{
		{DoorType: "MD/1", FireRating: "1-HR"},
		{DoorType: "GD"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ExtractTable() = %+v, want %+v", got, want)
	}
}

func TestIsMultiDoor(t *testing.T) {
	tests := []struct {
		text string
		want bool
	}{
		{"DB DB\n9 10", true},
		{"FMD2 FMD2 FMD2", true},
		{"GD\n650(W)x2190(H) 800(W)x2190(H)", true},
		{"MD\n1250(W)x2240(H)\n1", false},
		{"FDM\n1", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := isMultiDoor(tt.text); got != tt.want {
			t.Errorf("isMultiDoor(%q) = %v, want %v", tt.text, got, tt.want)
		}
	}
}

func TestExtractAllOrdering(t *testing.T) {
	e := NewExtractor(nil)

	pages := []PageTables{
		{Page: 1, Tables: []Table{pageTable("AD")}},
		{Page: 2, Tables: []Table{pageTable("BD")}},
		{Page: 3, Tables: []Table{pageTable("CD")}},
		{Page: 4, Tables: []Table{pageTable("DD")}},
	}

	sequential := e.ExtractAll(pages, 1)
	if len(sequential) != 4 {
		t.Fatalf("got %d records, want 4", len(sequential))
	}
	for i, code := range []string{"AD", "BD", "CD", "DD"} {
		if sequential[i].DoorType != code {
			t.Errorf("record %d = %q, want %q", i, sequential[i].DoorType, code)
		}
	}

	// Page order must survive concurrent extraction.
	concurrent := e.ExtractAll(pages, 4)
	if !reflect.DeepEqual(concurrent, sequential) {
		t.Errorf("concurrent = %+v, want sequential order %+v", concurrent, sequential)
	}
}

func pageTable(code string) Table {
	return Table{
		{"DOOR TYPE", code},
		{"LOCATION", "LEVEL 1"},
	}
}

func TestExtractAllEmpty(t *testing.T) {
	e := NewExtractor(nil)
	if got := e.ExtractAll(nil, 4); got != nil {
		t.Errorf("ExtractAll(nil) = %+v, want nil", got)
	}
}
