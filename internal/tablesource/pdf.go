package tablesource

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/buildplan/doorsched/internal/schedule"
)

// Clustering tolerances in PDF points, tuned against A1 door schedule
// sheets. The text strategy mirrors pdfplumber's: fragments cluster into
// lines by Y, lines stack into row bands, and aligned word starts define
// the column grid.
const (
	lineTolerance   = 3.0  // fragments within this Y delta form one text line
	maxIntraCellGap = 16.0 // larger Y gaps between lines start a new table row
	columnSnap      = 8.0  // word starts within this X delta share a column
	minColumnUses   = 2    // a column start must repeat across lines to count
)

// PDFSource extracts table grids from a PDF using positioned text
// fragments. It performs no line/ruling detection; door schedule sheets are
// regular enough that text alignment alone recovers the grid.
type PDFSource struct {
	file   *os.File
	reader *pdf.Reader
	path   string
}

// Open opens the PDF at path for table extraction.
func Open(path string) (*PDFSource, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	return &PDFSource{file: f, reader: r, path: path}, nil
}

// PageCount returns the number of pages in the document.
func (s *PDFSource) PageCount() int {
	return s.reader.NumPage()
}

// Close releases the underlying file.
func (s *PDFSource) Close() error {
	return s.file.Close()
}

// Tables extracts the table grids on the given 1-based page. Pages with no
// clusterable text yield no tables and no error. The pdf library panics on
// some malformed content streams; that is contained here so one bad page
// cannot take down the run.
func (s *PDFSource) Tables(page int) (tables []schedule.Table, err error) {
	defer func() {
		if r := recover(); r != nil {
			tables, err = nil, fmt.Errorf("page %d: content extraction failed: %v", page, r)
		}
	}()

	if page < 1 || page > s.reader.NumPage() {
		return nil, fmt.Errorf("page %d out of range (document has %d pages)", page, s.reader.NumPage())
	}

	p := s.reader.Page(page)
	if p.V.IsNull() {
		return nil, nil
	}

	frags := collectFragments(p.Content())
	if len(frags) == 0 {
		return nil, nil
	}

	lines := clusterLines(frags)
	bands := groupBands(lines)
	columns := columnStarts(lines)
	if len(bands) < 2 || len(columns) < 2 {
		return nil, nil
	}

	return []schedule.Table{buildGrid(bands, columns)}, nil
}

// fragment is one positioned piece of text from the content stream.
type fragment struct {
	x, y, w  float64
	fontSize float64
	text     string
}

// textLine is a horizontal run of fragments sharing a baseline.
type textLine struct {
	y     float64
	words []word
}

// word is a fragment run with no intra-word gaps, the unit assigned to a
// column.
type word struct {
	x, end float64
	text   string
}

func collectFragments(content pdf.Content) []fragment {
	frags := make([]fragment, 0, len(content.Text))
	for _, t := range content.Text {
		if strings.TrimSpace(t.S) == "" {
			continue
		}
		frags = append(frags, fragment{x: t.X, y: t.Y, w: t.W, fontSize: t.FontSize, text: t.S})
	}
	return frags
}

// clusterLines groups fragments into text lines by Y position, top of page
// first, and merges each line's fragments into words.
func clusterLines(frags []fragment) []textLine {
	sort.Slice(frags, func(i, j int) bool {
		if frags[i].y != frags[j].y {
			return frags[i].y > frags[j].y // PDF Y grows upward
		}
		return frags[i].x < frags[j].x
	})

	var lines []textLine
	start := 0
	for i := 1; i <= len(frags); i++ {
		if i < len(frags) && frags[start].y-frags[i].y < lineTolerance {
			continue
		}
		lines = append(lines, mergeWords(frags[start:i]))
		start = i
	}
	return lines
}

// mergeWords joins adjacent fragments of one line into words. A gap wider
// than a quarter of the font size separates words; narrower gaps are
// kerning inside one word.
func mergeWords(frags []fragment) textLine {
	sort.Slice(frags, func(i, j int) bool { return frags[i].x < frags[j].x })

	line := textLine{y: frags[0].y}
	cur := word{x: frags[0].x, end: frags[0].x + frags[0].w, text: frags[0].text}
	for _, f := range frags[1:] {
		gap := f.x - cur.end
		if gap > wordGap(f.fontSize) {
			line.words = append(line.words, cur)
			cur = word{x: f.x, end: f.x + f.w, text: f.text}
			continue
		}
		cur.text += f.text
		cur.end = f.x + f.w
	}
	line.words = append(line.words, cur)
	return line
}

func wordGap(fontSize float64) float64 {
	if fontSize <= 0 {
		return 1.0
	}
	return fontSize * 0.25
}

// groupBands stacks vertically adjacent lines into table rows. Lines inside
// one ruled cell sit close together; the gap to the next cell row is
// visibly larger.
func groupBands(lines []textLine) [][]textLine {
	var bands [][]textLine
	start := 0
	for i := 1; i <= len(lines); i++ {
		if i < len(lines) && lines[i-1].y-lines[i].y <= maxIntraCellGap {
			continue
		}
		bands = append(bands, lines[start:i])
		start = i
	}
	return bands
}

// columnStarts derives the column grid from word start positions that
// repeat across lines. Lone starts are decoration or annotations, not
// column anchors.
func columnStarts(lines []textLine) []float64 {
	var xs []float64
	for _, line := range lines {
		for _, w := range line.words {
			xs = append(xs, w.x)
		}
	}
	sort.Float64s(xs)

	var starts []float64
	for i := 0; i < len(xs); {
		j := i
		for j < len(xs) && xs[j]-xs[i] <= columnSnap {
			j++
		}
		if j-i >= minColumnUses {
			starts = append(starts, xs[i])
		}
		i = j
	}
	return starts
}

// columnIndex returns the column a word at x belongs to.
func columnIndex(x float64, starts []float64) int {
	col := 0
	for i, s := range starts {
		if x >= s-columnSnap {
			col = i
		}
	}
	return col
}

// buildGrid assembles the cell grid: one row per band, one cell per column,
// with a band's stacked lines joined by newlines inside each cell.
func buildGrid(bands [][]textLine, starts []float64) schedule.Table {
	grid := make(schedule.Table, len(bands))
	for r, band := range bands {
		cells := make([]string, len(starts))
		for _, line := range band {
			lineCells := make([]string, len(starts))
			for _, w := range line.words {
				col := columnIndex(w.x, starts)
				if lineCells[col] == "" {
					lineCells[col] = w.text
				} else {
					lineCells[col] += " " + w.text
				}
			}
			for col, text := range lineCells {
				if text == "" {
					continue
				}
				if cells[col] == "" {
					cells[col] = text
				} else {
					cells[col] += "\n" + text
				}
			}
		}
		grid[r] = cells
	}
	return grid
}
