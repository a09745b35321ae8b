package cli

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/attestia/veriproof/internal/audit"
	"github.com/attestia/veriproof/internal/config"
	"github.com/attestia/veriproof/internal/domain"
	"github.com/attestia/veriproof/internal/history"
	"github.com/attestia/veriproof/internal/platform"
	"github.com/attestia/veriproof/internal/verify"
)

var (
	verifyDomain string
	verifyFormat string
)

func init() {
	rootCmd.AddCommand(verifyCmd)
	verifyCmd.AddCommand(verifyJobCmd)
	verifyCmd.AddCommand(verifySharedCmd)
	verifyCmd.PersistentFlags().StringVar(&verifyDomain, "domain", "vehicle-risk", "Decision domain profile")
	verifyCmd.PersistentFlags().StringVarP(&verifyFormat, "format", "f", "text", "Output format (text|json)")
}

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Run the verification workflow for a proof",
}

var verifyJobCmd = &cobra.Command{
	Use:   "job <prove-job-id>",
	Short: "Verify a prove job owned by your organization",
	Long: "Fetches a completed prove job, resolves and validates its governing policy,\n" +
		"checks freshness, issues and verifies a credential, and interprets the\n" +
		"disclosed claims. Exit code 0 on a successful report, 1 on any fatal\n" +
		"condition.",
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runVerify(cmd, "direct", args[0])
	},
}

var verifySharedCmd = &cobra.Command{
	Use:   "shared <share-id>",
	Short: "Verify a proof shared by another organization",
	Long: "Fetches a shared proof, checks its revocation and expiry lifecycle, then\n" +
		"runs the same policy, freshness, credential, and interpretation pipeline\n" +
		"as a direct verification.",
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runVerify(cmd, "shared", args[0])
	},
}

func runVerify(cmd *cobra.Command, mode, id string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	profile, err := domain.Load(verifyDomain)
	if err != nil {
		return err
	}
	key, err := cfg.KeyForMode(mode)
	if err != nil {
		return err
	}

	orch := verify.New(platform.New(cfg.APIURL, key), profile)

	var report *verify.Report
	if mode == "direct" {
		report, err = orch.RunDirect(cmd.Context(), id)
	} else {
		report, err = orch.RunShared(cmd.Context(), id)
	}

	recordRun(cmd, cfg, profile.Name, mode, id, report, err)
	if err != nil {
		return err
	}

	switch verifyFormat {
	case "json":
		out, err := verify.FormatJSON(report)
		if err != nil {
			return err
		}
		fmt.Println(out)
	default:
		fmt.Print(verify.FormatText(report, !noColor))
	}
	return nil
}

// recordRun appends the run outcome to the audit trail and history store.
// Recording is best-effort: a local bookkeeping failure must not change the
// verification verdict, so problems go to stderr only.
func recordRun(cmd *cobra.Command, cfg *config.Config, domainName, mode, id string, report *verify.Report, runErr error) {
	entry := audit.Entry{
		Mode:   mode,
		Domain: domainName,
	}
	rec := history.Record{
		Mode:   mode,
		Domain: domainName,
	}

	if mode == "direct" {
		entry.JobID, rec.JobID = id, id
	} else {
		entry.ShareID, rec.ShareID = id, id
	}

	if runErr != nil {
		entry.RunID = uuid.NewString()
		entry.Outcome = "fatal"
		entry.Reason = runErr.Error()
	} else {
		entry.RunID = report.RunID
		entry.Outcome = "reported"
		entry.PolicyID = report.PolicyID
		entry.Decision = report.Decision.Label
	}
	rec.RunID, rec.PolicyID = entry.RunID, entry.PolicyID
	rec.Outcome, rec.Decision, rec.Reason = entry.Outcome, entry.Decision, entry.Reason

	if trail, err := audit.Open(cfg.AuditPath); err != nil {
		fmt.Fprintf(os.Stderr, "warning: audit trail unavailable: %v\n", err)
	} else {
		if err := trail.Record(entry); err != nil {
			fmt.Fprintf(os.Stderr, "warning: audit record failed: %v\n", err)
		}
		trail.Close()
	}

	if store, err := history.Open(cfg.HistoryPath); err != nil {
		fmt.Fprintf(os.Stderr, "warning: history store unavailable: %v\n", err)
	} else {
		if err := store.Record(cmd.Context(), rec); err != nil {
			fmt.Fprintf(os.Stderr, "warning: history record failed: %v\n", err)
		}
		store.Close()
	}
}
