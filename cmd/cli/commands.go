package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/magber/frc-fetcher/internal/cache"
	"github.com/magber/frc-fetcher/internal/config"
	"github.com/magber/frc-fetcher/internal/exporter"
	"github.com/magber/frc-fetcher/internal/fetcher"
	"github.com/magber/frc-fetcher/internal/metrics"
	"github.com/magber/frc-fetcher/internal/statbotics"
	"github.com/magber/frc-fetcher/internal/tba"
)

var (
	flagEventYear int
	flagEventCode string
	flagTeam      int
	flagYears     int
	flagWorkers   int
	flagSummary   bool
)

func init() {
	fetchCmd.Flags().IntVar(&flagEventYear, "event-year", 0, "Event year (prompted when omitted)")
	fetchCmd.Flags().StringVar(&flagEventCode, "event-code", "", "Event code, e.g. txhou (prompted when omitted)")
	fetchCmd.Flags().IntVar(&flagTeam, "team", 0, "Your team number (optional)")
	fetchCmd.Flags().IntVar(&flagYears, "years", 0, "Years of history to fetch (prompted when omitted)")
	fetchCmd.Flags().IntVar(&flagWorkers, "workers", 0, "Worker pool width (defaults to FETCH_WORKERS or 5)")
	fetchCmd.Flags().BoolVar(&flagSummary, "summary", false, "Append the derived Wins/Finalists/Impact/EI columns")
	rootCmd.AddCommand(fetchCmd)
}

var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Fetch event data and export it to an .xlsx workbook",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runFetch()
	},
}

func runFetch() error {
	eventYear, eventCode, selfTeam, yearsToFetch, err := resolveInput()
	if err != nil {
		return err
	}

	cfg := config.Load()
	workers := cfg.Workers
	if flagWorkers > 0 {
		workers = flagWorkers
	}

	metricsSvc := metrics.NewService()
	tbaClient := tba.NewClient(cfg.TBA.Host, cfg.TBA.APIKey, metricsSvc)
	sbClient := statbotics.NewClient(cfg.Statbotics.Host, metricsSvc)
	pipeline := fetcher.New(tbaClient, sbClient, cache.New(metricsSvc), metricsSvc)
	exp := exporter.New(cfg.OutputDir)

	ctx := context.Background()
	eventKey := fmt.Sprintf("%d%s", eventYear, eventCode)

	fmt.Printf("\nFetching teams for %s...\n", eventKey)
	teams, err := pipeline.EventTeams(ctx, eventKey)
	if err != nil {
		return err
	}
	preview := teams
	suffix := ""
	if len(teams) > 5 {
		preview = teams[:5]
		suffix = "..."
	}
	fmt.Printf("Found %d teams: %v%s\n", len(teams), preview, suffix)

	if selfTeam > 0 {
		if slices.Contains(teams, selfTeam) {
			fmt.Printf("✓ Your team (%d) is registered for this event\n", selfTeam)
		} else {
			fmt.Printf("✗ Your team (%d) is not registered for this event\n", selfTeam)
		}
	}

	params := exporter.Params{
		EventYear: eventYear,
		EventCode: eventCode,
		StartYear: eventYear - yearsToFetch + 1,
		EndYear:   eventYear,
		TeamCount: len(teams),
		Summary:   flagSummary,
	}
	path, err := exp.CreateWorkbook(params)
	if err != nil {
		return err
	}

	fmt.Printf("\nFetching data for %d teams...\n", len(teams))
	start := time.Now()
	rows := pipeline.RunBatch(ctx, teams, params.StartYear, params.EndYear, workers, flagSummary, func(completed, total int) {
		fmt.Printf("Progress: %d/%d teams (%.1f%%)\r", completed, total, float64(completed)/float64(total)*100)
	})
	fmt.Println()

	fmt.Printf("Exporting data to %s...\n", exp.Filename(params))
	if err := exp.WriteRows(path, params, rows); err != nil {
		return err
	}

	log.Info("Fetch finished", "teams", len(teams), "rows", len(rows), "duration", time.Since(start))
	fmt.Printf("✓ Data export complete: %s\n", exp.Filename(params))
	return nil
}

// resolveInput takes each run parameter from its flag, prompting
// interactively for anything not supplied, and validates the combination
// against the supported season range.
func resolveInput() (eventYear int, eventCode string, selfTeam, yearsToFetch int, err error) {
	reader := bufio.NewScanner(os.Stdin)
	maxSeason := time.Now().Year() + 1

	eventYear = flagEventYear
	for eventYear < fetcher.MinSeason || eventYear > maxSeason {
		if flagEventYear != 0 {
			return 0, "", 0, 0, fmt.Errorf("event year must be between %d and %d", fetcher.MinSeason, maxSeason)
		}
		fmt.Println("\n=== FRC Event Data Fetcher ===")
		eventYear = promptInt(reader, "Event year: ")
		if eventYear < fetcher.MinSeason || eventYear > maxSeason {
			fmt.Printf("Please enter a valid year (%d-%d)\n", fetcher.MinSeason, maxSeason)
		}
	}

	eventCode = strings.ToLower(strings.TrimSpace(flagEventCode))
	for eventCode == "" {
		eventCode = strings.ToLower(promptString(reader, "Event code (e.g., txhou, casj): "))
		if eventCode == "" {
			fmt.Println("Event code cannot be empty")
		}
	}

	selfTeam = flagTeam
	if flagTeam == 0 && flagEventYear == 0 {
		selfTeam = promptOptionalInt(reader, "Your team number (optional, press Enter to skip): ")
	}

	maxHistory := min(5, eventYear-fetcher.MinSeason+1)
	yearsToFetch = flagYears
	for yearsToFetch < 1 || yearsToFetch > maxHistory {
		if flagYears != 0 {
			return 0, "", 0, 0, fmt.Errorf("years of history must be between 1 and %d", maxHistory)
		}
		yearsToFetch = promptInt(reader, fmt.Sprintf("Years of history to fetch (1-%d): ", maxHistory))
		if yearsToFetch < 1 || yearsToFetch > maxHistory {
			fmt.Printf("Please enter a value between 1 and %d\n", maxHistory)
		}
	}

	return eventYear, eventCode, selfTeam, yearsToFetch, nil
}

func promptString(reader *bufio.Scanner, prompt string) string {
	fmt.Print(prompt)
	if !reader.Scan() {
		fmt.Println("\nExiting...")
		os.Exit(0)
	}
	return strings.TrimSpace(reader.Text())
}

func promptInt(reader *bufio.Scanner, prompt string) int {
	for {
		raw := promptString(reader, prompt)
		value, err := strconv.Atoi(raw)
		if err != nil {
			fmt.Println("Please enter a valid number")
			continue
		}
		return value
	}
}

func promptOptionalInt(reader *bufio.Scanner, prompt string) int {
	raw := promptString(reader, prompt)
	if raw == "" {
		return 0
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0
	}
	return value
}
