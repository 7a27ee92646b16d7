package fetcher

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/magber/frc-fetcher/internal/cache"
	"github.com/magber/frc-fetcher/internal/metrics"
	"github.com/magber/frc-fetcher/internal/statbotics"
	"github.com/magber/frc-fetcher/internal/tba"
)

// Fetcher aggregates team statistics from The Blue Alliance and Statbotics
// through a shared per-run response cache.
type Fetcher struct {
	tba     tba.TBAClient
	sb      statbotics.StatboticsClient
	cache   *cache.Store
	metrics metrics.Metrics
}

// New creates a new Fetcher.
func New(tbaClient tba.TBAClient, sbClient statbotics.StatboticsClient, store *cache.Store, metricsSvc metrics.Metrics) *Fetcher {
	return &Fetcher{
		tba:     tbaClient,
		sb:      sbClient,
		cache:   store,
		metrics: metricsSvc,
	}
}

// Ensure Fetcher implements the Pipeline interface.
var _ Pipeline = (*Fetcher)(nil)

// EventTeams resolves the roster for an event key. Roster failure is the one
// failure that aborts a run, so the error propagates to the caller.
func (f *Fetcher) EventTeams(ctx context.Context, eventKey string) ([]int, error) {
	return cache.GetOrCompute(f.cache, "teams:"+eventKey, func() ([]int, error) {
		return f.tba.GetEventTeams(ctx, eventKey)
	})
}

// EventTeamsDeep unions the rosters of span consecutive seasons of an event
// code, ending at eventYear, deduplicated and sorted ascending.
func (f *Fetcher) EventTeamsDeep(ctx context.Context, eventYear int, code string, span int) ([]int, error) {
	if span < 1 {
		span = 1
	}

	seen := make(map[int]struct{})
	for year := eventYear - span + 1; year <= eventYear; year++ {
		teams, err := f.EventTeams(ctx, fmt.Sprintf("%d%s", year, code))
		if err != nil {
			return nil, err
		}
		for _, team := range teams {
			seen[team] = struct{}{}
		}
	}

	union := make([]int, 0, len(seen))
	for team := range seen {
		union = append(union, team)
	}
	sort.Ints(union)
	log.Info("Deep search roster resolved", "code", code, "span", span, "count", len(union))
	return union, nil
}

// TeamYearData aggregates the season metric and awards for one team in one
// year. Every sub-lookup degrades to an empty value on failure, so the
// fragment itself never fails.
func (f *Fetcher) TeamYearData(ctx context.Context, team, year int) YearData {
	stats, err := cache.GetOrCompute(f.cache, fmt.Sprintf("sb:%d:%d", team, year), func() (statbotics.TeamStats, error) {
		return f.sb.GetTeamYear(ctx, team, year)
	})
	if err != nil {
		log.Debug("No Statbotics data for team", "team", team, "year", year, "error", err)
		stats = statbotics.Empty()
	}

	events, err := cache.GetOrCompute(f.cache, fmt.Sprintf("events:%d:%d", team, year), func() ([]string, error) {
		return f.tba.GetTeamEventKeys(ctx, team, year)
	})
	if err != nil {
		log.Debug("No events found for team", "team", team, "year", year, "error", err)
		events = nil
	}

	var allAwards []string
	for _, eventKey := range events {
		awards, err := cache.GetOrCompute(f.cache, fmt.Sprintf("awards:%d:%s", team, eventKey), func() ([]string, error) {
			return f.tba.GetTeamEventAwards(ctx, team, eventKey)
		})
		if err != nil {
			log.Debug("No awards found for team", "team", team, "eventKey", eventKey, "error", err)
			continue
		}
		allAwards = append(allAwards, awards...)
	}

	data := YearData{
		EPA:    NotAvailable,
		Rank:   NotAvailable,
		Awards: strings.Join(allAwards, "\n"),
	}
	if stats.Available {
		data.EPA = stats.EPA
		data.Rank = stats.Rank
	}
	return data
}

// TeamRow aggregates every year in [startYear, endYear] for one team, in
// chronological order. Each year is independent: a failing year degrades to
// its empty fragment without affecting the others.
func (f *Fetcher) TeamRow(ctx context.Context, team, startYear, endYear int, summary bool) Row {
	row := Row{Team: team}
	for year := startYear; year <= endYear; year++ {
		row.Years = append(row.Years, f.TeamYearData(ctx, team, year))
	}
	if summary {
		s := deriveSummary(row.Years)
		row.Summary = &s
	}
	return row
}

// deriveSummary counts the trailing summary columns from award names across
// all fetched years.
func deriveSummary(years []YearData) Summary {
	var s Summary
	for _, year := range years {
		if year.Awards == "" {
			continue
		}
		for _, line := range strings.Split(year.Awards, "\n") {
			switch {
			case strings.Contains(line, "Winner"):
				s.Wins++
			case strings.Contains(line, "Finalist"):
				s.Finalists++
			case strings.Contains(line, "Impact Award"), strings.Contains(line, "Chairman's Award"):
				s.Impact++
			case strings.Contains(line, "Engineering Inspiration"):
				s.EI++
			}
		}
	}
	return s
}
