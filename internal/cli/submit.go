package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/attestia/veriproof/internal/config"
	"github.com/attestia/veriproof/internal/platform"
)

var (
	submitCircuit  string
	submitInput    string
	submitWait     bool
	submitInterval time.Duration
	submitTimeout  time.Duration
)

func init() {
	rootCmd.AddCommand(submitCmd)
	submitCmd.Flags().StringVar(&submitCircuit, "circuit", "", "Circuit id to prove against (required)")
	submitCmd.Flags().StringVar(&submitInput, "input", "", "YAML file with private inputs (required)")
	submitCmd.Flags().BoolVar(&submitWait, "wait", false, "Poll until the job completes")
	submitCmd.Flags().DurationVar(&submitInterval, "interval", platform.DefaultPollInterval, "Polling interval with --wait")
	submitCmd.Flags().DurationVar(&submitTimeout, "timeout", platform.DefaultPollTimeout, "Overall polling timeout with --wait")
	submitCmd.MarkFlagRequired("circuit")
	submitCmd.MarkFlagRequired("input")
}

var submitCmd = &cobra.Command{
	Use:   "submit",
	Short: "Submit a prove job",
	Long: "Submits private inputs to a proving circuit. With --wait, polls at a fixed\n" +
		"interval until the job completes, fails, or the timeout elapses.",
	RunE: runSubmit,
}

func runSubmit(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	key, err := cfg.KeyForMode("direct")
	if err != nil {
		return err
	}

	data, err := os.ReadFile(submitInput)
	if err != nil {
		return fmt.Errorf("read inputs: %w", err)
	}
	var inputs map[string]any
	if err := yaml.Unmarshal(data, &inputs); err != nil {
		return fmt.Errorf("parse inputs %s: %w", submitInput, err)
	}

	client := platform.New(cfg.APIURL, key)
	job, err := client.SubmitProveJob(cmd.Context(), submitCircuit, inputs)
	if err != nil {
		return err
	}
	fmt.Printf("submitted prove job %s (status %s)\n", job.JobID, job.Status)

	if !submitWait {
		return nil
	}

	job, err = client.WaitForCompletion(cmd.Context(), job.JobID, submitInterval, submitTimeout)
	if err != nil {
		return err
	}
	fmt.Printf("prove job %s completed at %s\n", job.JobID, job.CompletedAt.Format(time.RFC3339))
	return nil
}
