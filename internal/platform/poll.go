package platform

import (
	"context"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
)

// Polling defaults for submit-and-wait.
const (
	DefaultPollInterval = 3 * time.Second
	DefaultPollTimeout  = 5 * time.Minute
)

// WaitForCompletion polls a prove job at a fixed interval until it reaches
// the completed status, fails, or the overall timeout elapses. A failed job
// and an exhausted timeout are both terminal.
func (c *Client) WaitForCompletion(ctx context.Context, jobID string, interval, maxWait time.Duration) (*ProveJob, error) {
	ctx, cancel := context.WithTimeout(ctx, maxWait)
	defer cancel()

	var job *ProveJob
	op := func() error {
		j, err := c.GetProveJob(ctx, jobID)
		if err != nil {
			return backoff.Permanent(err)
		}
		switch j.Status {
		case StatusCompleted:
			job = j
			return nil
		case StatusFailed:
			return backoff.Permanent(fmt.Errorf("prove job %s failed", jobID))
		default:
			return fmt.Errorf("prove job %s still %s", jobID, j.Status)
		}
	}

	b := backoff.WithContext(backoff.NewConstantBackOff(interval), ctx)
	if err := backoff.Retry(op, b); err != nil {
		if ctx.Err() != nil {
			return nil, fmt.Errorf("timed out after %s waiting for prove job %s", maxWait, jobID)
		}
		return nil, err
	}
	return job, nil
}
