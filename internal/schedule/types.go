package schedule

// Table is a grid of text cells as produced by a table source. Rows may be
// ragged; an empty string means the source found no text in that cell.
type Table [][]string

// Section is one label block inside a schedule table. A block is anchored by
// a row whose first cell reads "DOOR TYPE"; the field row indices are -1
// when the block has no such row. End is the exclusive row bound of the
// block, pulled up when an "ELEVATION" row cuts it short.
type Section struct {
	DoorTypeRow    int
	FireRatingRow  int
	DescriptionRow int
	LocationRow    int
	RemarksRow     int
	End            int
}

// DoorRecord is one normalized door schedule entry. DoorType always contains
// at least one uppercase letter; Dimensions is either empty or a full
// width-by-height token such as "1000(W)x2190(H)".
type DoorRecord struct {
	DoorType    string `json:"door_type"`
	Dimensions  string `json:"dimensions"`
	FireRating  string `json:"fire_rating"`
	Description string `json:"description"`
	Location    string `json:"location"`
	Remarks     string `json:"remarks"`
}

// PageTables holds the tables found on a single page, in source order.
type PageTables struct {
	Page   int
	Tables []Table
}
