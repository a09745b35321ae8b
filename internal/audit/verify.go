package audit

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
)

// ChainResult is the outcome of a trail integrity check.
type ChainResult struct {
	Valid     bool   `json:"valid"`
	Lines     int    `json:"lines"`
	Error     string `json:"error,omitempty"`
	ErrorLine int    `json:"error_line,omitempty"`
}

// VerifyChain walks a JSONL trail and validates that every entry's
// prev_hash matches the SHA-256 of the previous line. It reports the first
// broken link.
func VerifyChain(path string) ChainResult {
	f, err := os.Open(path)
	if err != nil {
		return ChainResult{Error: fmt.Sprintf("open: %v", err)}
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	lineNum := 0
	var prev []byte

	for scanner.Scan() {
		lineNum++
		line := make([]byte, len(scanner.Bytes()))
		copy(line, scanner.Bytes())

		var entry Entry
		if err := json.Unmarshal(line, &entry); err != nil {
			return ChainResult{Error: fmt.Sprintf("parse error: %v", err), ErrorLine: lineNum}
		}

		if lineNum == 1 {
			if entry.PrevHash != GenesisHash {
				return ChainResult{
					Error:     fmt.Sprintf("first entry prev_hash is %q, expected genesis hash", entry.PrevHash),
					ErrorLine: 1,
				}
			}
		} else if entry.PrevHash != HashLine(prev) {
			return ChainResult{
				Error:     fmt.Sprintf("hash mismatch: expected %s, got %s", HashLine(prev), entry.PrevHash),
				ErrorLine: lineNum,
			}
		}

		prev = line
	}

	if err := scanner.Err(); err != nil {
		return ChainResult{Error: fmt.Sprintf("scan: %v", err)}
	}

	return ChainResult{Valid: true, Lines: lineNum}
}
