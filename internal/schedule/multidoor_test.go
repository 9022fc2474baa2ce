package schedule

import (
	"reflect"
	"testing"
)

func TestSplitMultiDoorRepeatedCode(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []DoorSplit
	}{
		{
			name: "three_doors_variant_line",
			text: "FMD2 FMD2 FMD2\n475(W)x2190(H) 600(W)x2190(H) 800(W)x2190(H)\n4A 6 8",
			want: []DoorSplit{
				{Code: "FMD2/4A", Dimensions: "475(W)x2190(H)"},
				{Code: "FMD2/6", Dimensions: "600(W)x2190(H)"},
				{Code: "FMD2/8", Dimensions: "800(W)x2190(H)"},
			},
		},
		{
			name: "torn_leading_digit_repaired",
			text: "DB DB\n9 900(W)x2190(H) 10 1 000(W)x2190(H)",
			want: []DoorSplit{
				{Code: "DB/9", Dimensions: "900(W)x2190(H)"},
				{Code: "DB/10", Dimensions: "1000(W)x2190(H)"},
			},
		},
		{
			name: "two_doors_inline_variants_and_dims",
			text: "FD1 FD1\n650(W)x2190(H) 800(W)x2190(H)\n6A 8A",
			want: []DoorSplit{
				{Code: "FD1/6A", Dimensions: "650(W)x2190(H)"},
				{Code: "FD1/8A", Dimensions: "800(W)x2190(H)"},
			},
		},
		{
			name: "more_codes_than_dims_pads_empty",
			text: "MD MD\n1 2",
			want: []DoorSplit{
				{Code: "MD/1", Dimensions: ""},
				{Code: "MD/2", Dimensions: ""},
			},
		},
		{
			name: "single_code_not_a_multi_door",
			text: "MD\n1250(W)x2240(H)\n1",
			want: nil,
		},
		{
			name: "single_line_not_a_multi_door",
			text: "MD MD",
			want: nil,
		},
		{
			name: "empty_text",
			text: "",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SplitMultiDoor(tt.text); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("SplitMultiDoor(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestSplitMultiDoorLegacyFD1(t *testing.T) {
	// The repeated-code strategy finds nothing on the first line, but the
	// raw text still carries the "FD1 FD1" pattern further down.
	text := "DOOR\nFD1 FD1\n650(W)x2190(H) 800(W)x2190(H)\n6A 8A"
	want := []DoorSplit{
		{Code: "FD1/6A", Dimensions: "650(W)x2190(H)"},
		{Code: "FD1/8A", Dimensions: "800(W)x2190(H)"},
	}
	if got := SplitMultiDoor(text); !reflect.DeepEqual(got, want) {
		t.Errorf("SplitMultiDoor() = %v, want %v", got, want)
	}
}

func TestSplitMultiDoorLegacyFD1MinimumTwo(t *testing.T) {
	// Even with no variants and a single dimension the legacy rule emits
	// at least two FD1 records.
	got := SplitMultiDoor("X\nFD1 FD1\n800(W)x2190(H)")
	want := []DoorSplit{
		{Code: "FD1", Dimensions: "800(W)x2190(H)"},
		{Code: "FD1", Dimensions: ""},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("SplitMultiDoor() = %v, want %v", got, want)
	}
}

func TestRepairSplitDimensions(t *testing.T) {
	dims := []string{"900(W)x2190(H)", "000(W)x2190(H)"}
	repairSplitDimensions(dims, []string{"9 900(W)x2190(H) 10 1 000(W)x2190(H)"})
	if dims[1] != "1000(W)x2190(H)" {
		t.Errorf("dims[1] = %q, want 1000(W)x2190(H)", dims[1])
	}
	if dims[0] != "900(W)x2190(H)" {
		t.Errorf("dims[0] = %q, want unchanged", dims[0])
	}

	// No single-digit neighbor, nothing to restore.
	dims = []string{"000(W)x2190(H)"}
	repairSplitDimensions(dims, []string{"10 000(W)x2190(H)"})
	if dims[0] != "000(W)x2190(H)" {
		t.Errorf("dims[0] = %q, want unchanged", dims[0])
	}
}

func TestCollectVariants(t *testing.T) {
	tests := []struct {
		name     string
		lines    []string
		numDoors int
		want     []string
	}{
		{
			name:     "dedicated_variant_line",
			lines:    []string{"475(W)x2190(H) 600(W)x2190(H)", "4A 6"},
			numDoors: 2,
			want:     []string{"4A", "6"},
		},
		{
			name:     "fallback_scan_skips_widths",
			lines:    []string{"9 900(W)x2190(H) 10 1000(W)x2190(H)"},
			numDoors: 2,
			want:     []string{"9", "10"},
		},
		{
			name:     "fallback_dedupes",
			lines:    []string{"6 650(W)x2190(H)", "6 8 800(W)x2190(H)"},
			numDoors: 2,
			want:     []string{"6", "8"},
		},
		{
			name:     "nothing_variant_shaped",
			lines:    []string{"STEEL DOOR"},
			numDoors: 2,
			want:     nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := collectVariants(tt.lines, tt.numDoors); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("collectVariants() = %v, want %v", got, tt.want)
			}
		})
	}
}
