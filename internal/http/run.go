package http

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/charmbracelet/log"
	"github.com/magber/frc-fetcher/internal/exporter"
	"github.com/magber/frc-fetcher/internal/tasks"
	"github.com/magber/frc-fetcher/internal/tba"
)

// runFetch executes one fetch run in the background, updating the task as it
// goes. Each event code gets an equal window of the progress bar: roughly the
// first 30% of a window covers roster resolution, the remaining 70% the team
// batch.
func (s *Server) runFetch(task *tasks.Task, req fetchRequest) {
	ctx := context.Background()
	total := len(req.EventCodes)
	startYear := req.EventYear - req.YearsToFetch + 1

	for idx, code := range req.EventCodes {
		base := float64(idx) / float64(total) * 100
		window := 100 / float64(total)
		eventKey := fmt.Sprintf("%d%s", req.EventYear, code)

		task.SetMessage(fmt.Sprintf("Processing event %s (%d/%d)", code, idx+1, total))
		task.SetProgress(base)

		var teams []int
		var err error
		if req.DeepSearch {
			task.SetDetail(fmt.Sprintf("Deep searching %s across %d years...", code, req.DeepSearchYears))
			teams, err = s.Pipeline.EventTeamsDeep(ctx, req.EventYear, code, req.DeepSearchYears)
		} else {
			task.SetDetail(fmt.Sprintf("Fetching teams for %s...", eventKey))
			teams, err = s.Pipeline.EventTeams(ctx, eventKey)
		}
		if err != nil {
			log.Error("Fetch task failed on roster lookup", "taskID", task.ID, "eventKey", eventKey, "error", err)
			task.Fail(rosterFailureMessage(eventKey, err))
			return
		}
		if len(teams) == 0 {
			task.SetDetail(fmt.Sprintf("No teams found for %s", eventKey))
			continue
		}
		if req.TeamNumber > 0 {
			registered := slices.Contains(teams, req.TeamNumber)
			log.Info("Checked own team registration", "team", req.TeamNumber, "eventKey", eventKey, "registered", registered)
		}
		task.SetProgress(base + window*0.3)

		params := exporter.Params{
			EventYear: req.EventYear,
			EventCode: code,
			StartYear: startYear,
			EndYear:   req.EventYear,
			TeamCount: len(teams),
			Summary:   true,
			Deep:      req.DeepSearch,
		}
		path, err := s.Exporter.CreateWorkbook(params)
		if err != nil {
			log.Error("Fetch task failed creating workbook", "taskID", task.ID, "error", err)
			task.Fail(fmt.Sprintf("Could not create output file for %s", eventKey))
			return
		}

		task.SetDetail(fmt.Sprintf("Fetching data for %d teams...", len(teams)))
		rows := s.Pipeline.RunBatch(ctx, teams, startYear, req.EventYear, s.Cfg.Workers, true, func(completed, totalTeams int) {
			task.SetProgress(base + window*0.3 + float64(completed)/float64(totalTeams)*window*0.7)
			task.SetDetail(fmt.Sprintf("Processed %d/%d teams", completed, totalTeams))
		})

		if err := s.Exporter.WriteRows(path, params, rows); err != nil {
			log.Error("Fetch task failed writing rows", "taskID", task.ID, "error", err)
			task.Fail(fmt.Sprintf("Could not write output file for %s", eventKey))
			return
		}
		task.SetFilename(s.Exporter.Filename(params))
	}

	task.Complete("Data fetch completed successfully!")
	log.Info("Fetch task completed", "taskID", task.ID)
}

// rosterFailureMessage turns a roster lookup error into a user-facing message
// without a stack trace.
func rosterFailureMessage(eventKey string, err error) string {
	switch {
	case errors.Is(err, tba.ErrUnauthorized):
		return "The Blue Alliance rejected the configured API key. Please check TBA_API_KEY."
	case errors.Is(err, tba.ErrEventNotFound):
		return fmt.Sprintf("Event %s was not found. Please check the year and event code.", eventKey)
	default:
		return fmt.Sprintf("Could not fetch teams for event %s. Please check your internet connection.", eventKey)
	}
}
