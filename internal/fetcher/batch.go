package fetcher

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/charmbracelet/log"
)

type taskResult struct {
	team int
	row  Row
	err  error
}

// RunBatch aggregates one row per team across a bounded worker pool. Results
// are collected in completion order and progress is reported after each task
// settles; the returned rows are sorted ascending by team number regardless
// of completion order. A failing task is logged and skipped without
// cancelling its siblings; there is no mid-batch retry or cancellation.
func (f *Fetcher) RunBatch(ctx context.Context, teams []int, startYear, endYear, workers int, summary bool, progress ProgressFunc) []Row {
	if workers <= 0 {
		workers = DefaultWorkers
	}
	f.metrics.IncFetchRuns()
	start := time.Now()
	log.Info("Starting team batch", "teams", len(teams), "startYear", startYear, "endYear", endYear, "workers", workers)

	jobs := make(chan int)
	results := make(chan taskResult)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for team := range jobs {
				row, err := f.runTask(ctx, team, startYear, endYear, summary)
				results <- taskResult{team: team, row: row, err: err}
			}
		}()
	}

	go func() {
		for _, team := range teams {
			jobs <- team
		}
		close(jobs)
	}()
	go func() {
		wg.Wait()
		close(results)
	}()

	rows := make([]Row, 0, len(teams))
	completed := 0
	for res := range results {
		completed++
		if res.err != nil {
			log.Error("Failed to fetch data for team", "team", res.team, "error", res.err)
		} else {
			rows = append(rows, res.row)
			f.metrics.IncTeamsProcessed()
		}
		if progress != nil {
			progress(completed, len(teams))
		}
	}

	sort.Slice(rows, func(i, j int) bool { return rows[i].Team < rows[j].Team })
	f.metrics.ObserveBatchDuration(time.Since(start).Seconds())
	log.Info("Team batch finished", "teams", len(teams), "rows", len(rows), "duration", time.Since(start))
	return rows
}

// runTask wraps a single team aggregation so a panic settles the task as a
// failure instead of taking down the batch.
func (f *Fetcher) runTask(ctx context.Context, team, startYear, endYear int, summary bool) (row Row, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("aggregation panicked: %v", r)
		}
	}()
	return f.TeamRow(ctx, team, startYear, endYear, summary), nil
}
