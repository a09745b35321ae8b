package cli

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/attestia/veriproof/internal/audit"
	"github.com/attestia/veriproof/internal/config"
)

var auditTailLines int

func init() {
	rootCmd.AddCommand(auditCmd)
	auditCmd.AddCommand(auditVerifyCmd)
	auditCmd.AddCommand(auditTailCmd)
	auditTailCmd.Flags().IntVarP(&auditTailLines, "lines", "n", 10, "Number of recent entries to show")
}

var auditCmd = &cobra.Command{
	Use:   "audit",
	Short: "Decision trail operations",
	Long:  "Commands for verifying and inspecting the hash-chained decision trail.",
}

var auditVerifyCmd = &cobra.Command{
	Use:   "verify [path]",
	Short: "Verify hash chain integrity of the decision trail",
	Long: "Walks the JSONL decision trail and validates that every entry's prev_hash\n" +
		"matches the SHA-256 of the previous entry. Exits 0 if intact, 1 if tampered.",
	Args: cobra.MaximumNArgs(1),
	RunE: runAuditVerify,
}

var auditTailCmd = &cobra.Command{
	Use:   "tail [path]",
	Short: "Show recent decision trail entries",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runAuditTail,
}

func trailPath(args []string) (string, error) {
	if len(args) == 1 {
		return args[0], nil
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		return "", err
	}
	return cfg.AuditPath, nil
}

func runAuditVerify(cmd *cobra.Command, args []string) error {
	path, err := trailPath(args)
	if err != nil {
		return err
	}

	result := audit.VerifyChain(path)
	if result.Valid {
		fmt.Printf("OK: %d entries verified\n", result.Lines)
		return nil
	}
	return fmt.Errorf("chain broken at line %d: %s", result.ErrorLine, result.Error)
}

func runAuditTail(cmd *cobra.Command, args []string) error {
	path, err := trailPath(args)
	if err != nil {
		return err
	}

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open decision trail: %w", err)
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read decision trail: %w", err)
	}

	start := len(lines) - auditTailLines
	if start < 0 {
		start = 0
	}

	for _, line := range lines[start:] {
		var entry audit.Entry
		if err := json.Unmarshal([]byte(line), &entry); err != nil {
			fmt.Println(line)
			continue
		}
		ref := entry.JobID
		if entry.ShareID != "" {
			ref = entry.ShareID
		}
		detail := entry.Decision
		if entry.Outcome == "fatal" {
			detail = "fatal: " + entry.Reason
		}
		fmt.Printf("%s  %-7s %-13s %-24s %s\n", entry.Timestamp, entry.Mode, entry.Domain, ref, detail)
	}
	return nil
}
