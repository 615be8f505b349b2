package roletest

import (
	"context"
	"time"

	"bootware/pkg/logging"

	"github.com/google/uuid"
)

const runnerSubsystem = "Runner"

// Runner drives the role loop over a filtered catalog.
type Runner struct {
	executor *Executor
	reporter Reporter
}

// NewRunner creates a new role test runner
func NewRunner(executor *Executor, reporter Reporter) *Runner {
	return &Runner{
		executor: executor,
		reporter: reporter,
	}
}

// Run tests every role sequentially in catalog order. Only cancellation of
// ctx stops the loop early; in that case the partial result is returned
// together with the context error and no suite result is reported.
func (r *Runner) Run(ctx context.Context, system System, config RunConfiguration, roles []Role) (*SuiteResult, error) {
	result := &SuiteResult{
		RunID:     uuid.New().String(),
		System:    system,
		StartTime: time.Now(),
		Results:   make([]RoleResult, 0, len(roles)),
	}

	r.reporter.ReportStart(system, config, len(roles))

	if len(roles) == 0 {
		logging.Debug(runnerSubsystem, "Run %s has no roles", result.RunID)
	}

	for _, role := range roles {
		select {
		case <-ctx.Done():
			logging.Warn(runnerSubsystem, "Run %s interrupted after %d of %d roles", result.RunID, len(result.Results), len(roles))
			r.finish(result)
			return result, ctx.Err()
		default:
		}

		result.Results = append(result.Results, r.executor.RunRole(ctx, system, role))
	}

	r.finish(result)
	r.reporter.ReportSuiteResult(*result)

	logging.Debug(runnerSubsystem, "Run %s finished: %d passed, %d failed, %d skipped",
		result.RunID, result.Count(OutcomePass), result.Count(OutcomeFail), result.Count(OutcomeSkip))
	return result, nil
}

func (r *Runner) finish(result *SuiteResult) {
	result.EndTime = time.Now()
	result.Duration = result.EndTime.Sub(result.StartTime)
}
