// Package tablesource turns PDF pages into the table grids the schedule
// package consumes.
package tablesource

import "github.com/buildplan/doorsched/internal/schedule"

// Source yields the tables found on each page of a document. Page numbers
// are 1-based. Implementations own the underlying file handle.
type Source interface {
	PageCount() int
	Tables(page int) ([]schedule.Table, error)
	Close() error
}
