package cli

import (
	"os"

	"github.com/spf13/cobra"
)

var (
	configPath string
	noColor    bool
)

var rootCmd = &cobra.Command{
	Use:   "veriproof",
	Short: "Policy-gated verification of zero-knowledge proof credentials",
	Long: "Verifies completed proof jobs, directly owned or shared cross-organization,\n" +
		"against their governing policy: policy acceptability, proof freshness,\n" +
		"credential issuance and verification, and claim interpretation.",
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config file (default ~/.veriproof/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable ANSI colors in output")
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
