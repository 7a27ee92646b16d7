package exporter

import "errors"

// ErrNotFound is returned for downloads or deletes of files that do not
// exist in the output directory or do not carry the expected extension.
var ErrNotFound = errors.New("file not found")

// Params describes the shape of one workbook: which event it covers, the
// year range of the fetched history, and whether the trailing summary
// columns are included.
type Params struct {
	EventYear int
	EventCode string
	StartYear int
	EndYear   int
	TeamCount int
	Summary   bool
	Deep      bool
}

// Years returns the number of fetched seasons, inclusive of both bounds.
func (p Params) Years() int {
	return p.EndYear - p.StartYear + 1
}

// Columns returns the total column count: team number, three columns per
// year, and the four summary columns when requested.
func (p Params) Columns() int {
	n := 1 + 3*p.Years()
	if p.Summary {
		n += 4
	}
	return n
}

// FileInfo describes one output file for the listing endpoint.
type FileInfo struct {
	Name     string `json:"name"`
	Size     int64  `json:"size"`
	Modified int64  `json:"modified"` // unix milliseconds
}
