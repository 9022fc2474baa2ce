// Package schedule converts door schedule tables, as extracted from
// architectural drawing sets, into normalized door records.
//
// The input is a grid of text cells with field labels in column 0 and one
// door per subsequent column. The layout is irregular: one table can hold
// several repeated label blocks, cells span multiple text lines, dimension
// tokens get split across neighboring columns, and some columns pack
// several doors into one cell. The package recovers structured records from
// that with layout heuristics and pattern matching rather than a fixed
// grammar, so every rule is deliberately narrow and covered by tests.
package schedule
