package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/attestia/veriproof/internal/config"
	"github.com/attestia/veriproof/internal/domain"
	"github.com/attestia/veriproof/internal/platform"
	"github.com/attestia/veriproof/internal/policyspec"
)

var lintDomain string

func init() {
	rootCmd.AddCommand(policyCmd)
	policyCmd.AddCommand(policyShowCmd)
	policyCmd.AddCommand(policyLintCmd)
	policyLintCmd.Flags().StringVar(&lintDomain, "domain", "vehicle-risk", "Decision domain to validate against")
}

var policyCmd = &cobra.Command{
	Use:   "policy",
	Short: "Inspect and validate policy specifications",
}

var policyShowCmd = &cobra.Command{
	Use:   "show <policy-id>",
	Short: "Fetch and display a policy specification",
	Args:  cobra.ExactArgs(1),
	RunE:  runPolicyShow,
}

var policyLintCmd = &cobra.Command{
	Use:   "lint <file>",
	Short: "Validate a local policy spec file against a decision domain",
	Long: "Parses a policy spec (YAML or JSON) and runs the same acceptability checks\n" +
		"the verification workflow applies. Exit code 0 if accepted, 1 if rejected.",
	Args: cobra.ExactArgs(1),
	RunE: runPolicyLint,
}

func runPolicyShow(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	key, err := cfg.KeyForMode("direct")
	if err != nil {
		return err
	}

	spec, err := platform.New(cfg.APIURL, key).GetPolicy(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	out, err := yaml.Marshal(spec)
	if err != nil {
		return fmt.Errorf("render policy: %w", err)
	}
	fmt.Print(string(out))
	return nil
}

func runPolicyLint(cmd *cobra.Command, args []string) error {
	profile, err := domain.Load(lintDomain)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("read policy file: %w", err)
	}
	var spec policyspec.Spec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return fmt.Errorf("parse policy file %s: %w", args[0], err)
	}

	report, err := policyspec.Validate(&spec, profile.Target())
	if err != nil {
		return err
	}

	fmt.Printf("policy %s accepted for %s\n", spec.ID, profile.Name)
	for _, f := range report.Findings {
		fmt.Printf("  %s\n", f)
	}
	fmt.Printf("  validity window: %d days\n", policyspec.TTLDays(&spec, profile.DefaultTTLDays))
	return nil
}
