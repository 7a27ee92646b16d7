package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "frc-fetcher",
	Short: "A CLI for fetching FRC event data into spreadsheets",
	Long: `A command-line interface for fetching team statistics, EPA rankings, and
awards from The Blue Alliance and Statbotics, exported as an .xlsx workbook.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}

func main() {
	Execute()
}
