package fetcher

const (
	// MinSeason is the first FRC season the data providers cover.
	MinSeason = 1992

	// DefaultWorkers is the worker pool width used when none is configured.
	DefaultWorkers = 5

	// NotAvailable is the display sentinel for a missing season metric.
	NotAvailable = "N/A"
)

// YearData is the row fragment for one team in one year: EPA estimate, rank,
// and the team's awards across all its events that year, newline-joined.
// EPA and Rank hold either their numeric value or the NotAvailable sentinel.
type YearData struct {
	EPA    any
	Rank   any
	Awards string
}

// Summary holds the derived trailing columns, counted from award names across
// every fetched year of a row.
type Summary struct {
	Wins      int
	Finalists int
	Impact    int
	EI        int
}

// Row is one output row: a team number followed by a fragment per year, and
// optionally the derived summary.
type Row struct {
	Team    int
	Years   []YearData
	Summary *Summary
}

// Cells flattens the row into spreadsheet cell values in column order.
func (r Row) Cells() []any {
	cells := make([]any, 0, 1+3*len(r.Years)+4)
	cells = append(cells, r.Team)
	for _, year := range r.Years {
		cells = append(cells, year.EPA, year.Rank, year.Awards)
	}
	if r.Summary != nil {
		cells = append(cells, r.Summary.Wins, r.Summary.Finalists, r.Summary.Impact, r.Summary.EI)
	}
	return cells
}

// ProgressFunc receives (completedCount, totalCount) after each batch task
// settles, success or failure.
type ProgressFunc func(completed, total int)
