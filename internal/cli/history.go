package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/attestia/veriproof/internal/config"
	"github.com/attestia/veriproof/internal/history"
)

var historyLimit int

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "Number of runs to show")
}

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent verification runs",
	RunE:  runHistory,
}

func runHistory(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	store, err := history.Open(cfg.HistoryPath)
	if err != nil {
		return err
	}
	defer store.Close()

	records, err := store.Recent(cmd.Context(), historyLimit)
	if err != nil {
		return err
	}
	if len(records) == 0 {
		fmt.Println("no verification runs recorded yet")
		return nil
	}

	for _, r := range records {
		ref := r.JobID
		if r.ShareID != "" {
			ref = r.ShareID
		}
		outcome := r.Decision
		if r.Outcome == "fatal" {
			outcome = "fatal: " + r.Reason
		}
		fmt.Printf("%s  %-7s %-13s %-24s %s\n",
			r.CreatedAt.Format("2006-01-02 15:04"), r.Mode, r.Domain, ref, outcome)
	}
	return nil
}
