package schedule

import (
	"reflect"
	"testing"
)

func TestResolveSections(t *testing.T) {
	table := Table{
		{"DOOR TYPE", "MD\n1"},
		{"FIRE-RATING", "1-HR"},
		{"DESCRIPTION", "METAL DOOR"},
		{"LOCATION", "STAIR 1"},
		{"REMARKS", ""},
		{"DOOR TYPE", "GD"},
		{"FIRE RATING", "NIL"},
		{"LOCATION", "GARAGE"},
	}

	want := []Section{
		{DoorTypeRow: 0, FireRatingRow: 1, DescriptionRow: 2, LocationRow: 3, RemarksRow: 4, End: 5},
		{DoorTypeRow: 5, FireRatingRow: 6, DescriptionRow: -1, LocationRow: 7, RemarksRow: -1, End: 8},
	}

	if got := ResolveSections(table); !reflect.DeepEqual(got, want) {
		t.Errorf("ResolveSections() = %+v, want %+v", got, want)
	}
}

func TestResolveSectionsElevationTruncates(t *testing.T) {
	table := Table{
		{"DOOR TYPE", "MD"},
		{"LOCATION", "STAIR 1"},
		{"ELEVATION", ""},
		{"REMARKS", "BELOW THE DRAWINGS, NOT PART OF THE BLOCK"},
	}

	got := ResolveSections(table)
	if len(got) != 1 {
		t.Fatalf("got %d sections, want 1", len(got))
	}
	if got[0].End != 2 {
		t.Errorf("End = %d, want 2", got[0].End)
	}
	if got[0].RemarksRow != -1 {
		t.Errorf("RemarksRow = %d, want -1 (row below ELEVATION)", got[0].RemarksRow)
	}
}

func TestResolveSectionsNoAnchor(t *testing.T) {
	table := Table{
		{"DRAWING TITLE", "DOOR SCHEDULE"},
		{"SCALE", "1:50"},
	}
	if got := ResolveSections(table); len(got) != 0 {
		t.Errorf("got %d sections, want 0", len(got))
	}
}

func TestResolveSectionsPaddedLabel(t *testing.T) {
	table := Table{
		{"  DOOR TYPE  ", "MD"},
		{" FIRE-RATING", "2-HR"},
	}
	got := ResolveSections(table)
	if len(got) != 1 {
		t.Fatalf("got %d sections, want 1", len(got))
	}
	if got[0].FireRatingRow != 1 {
		t.Errorf("FireRatingRow = %d, want 1", got[0].FireRatingRow)
	}
}

func TestResolveSectionsEmptyRows(t *testing.T) {
	table := Table{
		{},
		{"DOOR TYPE", "MD"},
		{},
	}
	got := ResolveSections(table)
	if len(got) != 1 || got[0].DoorTypeRow != 1 || got[0].End != 3 {
		t.Errorf("ResolveSections() = %+v, want one section at row 1 ending at 3", got)
	}
}
