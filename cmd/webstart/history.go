package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"webstart/pkg/config"
	"webstart/pkg/history"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent project creations",
	Example: `  webstart history            # last 20 attempts
  webstart history --stats   # aggregated usage`,
	RunE: func(cmd *cobra.Command, args []string) error {
		showStats, _ := cmd.Flags().GetBool("stats")
		limit, _ := cmd.Flags().GetInt("limit")

		store, err := history.Open(config.DefaultHistoryPath())
		if err != nil {
			return err
		}
		defer store.Close()

		if showStats {
			return printStats(store)
		}

		records, err := store.RecentRecords(limit)
		if err != nil {
			return err
		}
		if len(records) == 0 {
			fmt.Println("No history yet.")
			return nil
		}

		tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "TIME\tTEMPLATE\tPROJECT\tRESULT\tDURATION")
		for _, r := range records {
			result := "ok"
			if !r.Success {
				result = "failed"
				if r.ErrorKind != "" {
					result = "failed (" + r.ErrorKind + ")"
				}
			}
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
				r.CreatedAt.Format("2006-01-02 15:04"), r.Template, r.ProjectID, result, r.Duration)
		}
		return tw.Flush()
	},
}

func printStats(store *history.Store) error {
	stats, err := store.Stats()
	if err != nil {
		return err
	}

	fmt.Printf("Attempts: %d\n", stats.Total)
	fmt.Printf("Projects created: %d\n", stats.Succeeded)
	fmt.Printf("Success rate: %.1f%%\n", stats.SuccessRate())

	if len(stats.TopTemplates) > 0 {
		fmt.Println("\nTop templates:")
		for _, tc := range stats.TopTemplates {
			fmt.Printf("  %s: %d\n", tc.Template, tc.Count)
		}
	}
	return nil
}

func init() {
	historyCmd.Flags().Bool("stats", false, "Show aggregated statistics")
	historyCmd.Flags().Int("limit", 20, "Number of records to show")
	rootCmd.AddCommand(historyCmd)
}
