package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/attestia/veriproof/internal/domain"
	"github.com/attestia/veriproof/internal/score"
)

var scoreDomain string

func init() {
	rootCmd.AddCommand(scoreCmd)
	scoreCmd.Flags().StringVar(&scoreDomain, "domain", "vehicle-risk", "Decision domain profile")
}

var scoreCmd = &cobra.Command{
	Use:   "score <metric>=<value> ...",
	Short: "Preview the reference score for a set of inputs",
	Long: "Computes the advisory reference score a proof circuit is expected to\n" +
		"produce for the given metrics, e.g.:\n\n" +
		"  veriproof score mileage=2500 dataPoints=450 speedMax=72\n\n" +
		"The preview mirrors the authoritative circuit computation; it never\n" +
		"substitutes for it.",
	Args: cobra.MinimumNArgs(1),
	RunE: runScore,
}

func runScore(cmd *cobra.Command, args []string) error {
	profile, err := domain.Load(scoreDomain)
	if err != nil {
		return err
	}

	in := score.Input{}
	for _, arg := range args {
		name, raw, ok := strings.Cut(arg, "=")
		if !ok {
			return fmt.Errorf("metric %q is not in <name>=<value> form", arg)
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return fmt.Errorf("metric %q: %w", name, err)
		}
		in[name] = v
	}

	fmt.Print(score.FormatText(profile, in, score.Compute(profile, in)))
	return nil
}
