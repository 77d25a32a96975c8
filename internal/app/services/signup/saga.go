package signup

import (
	"context"

	"go.uber.org/zap"
)

// sagaStep is one remote call in the submission sequence. compensate undoes
// the step's effect; steps without one (the last call in a sequence) leave it
// nil.
type sagaStep struct {
	name       string
	run        func(ctx context.Context) error
	compensate func(ctx context.Context) error
}

// sagaResult reports how a run ended. FailedStage is empty on success. A
// compensation that itself failed sets Compensated false and carries the
// error; it is never retried.
type sagaResult struct {
	FailedStage     string
	StepErr         error
	Compensated     bool
	CompensationErr error
}

func (r *sagaResult) succeeded() bool {
	return r.StepErr == nil
}

// runSaga executes steps in order. On the first failure it unwinds the
// compensations of every completed step in reverse, best-effort, and stops.
func runSaga(ctx context.Context, log *zap.Logger, steps []sagaStep) *sagaResult {
	completed := make([]sagaStep, 0, len(steps))

	for _, step := range steps {
		if err := step.run(ctx); err != nil {
			result := &sagaResult{
				FailedStage: step.name,
				StepErr:     err,
				Compensated: true,
			}
			unwind(ctx, log, completed, result)
			return result
		}
		completed = append(completed, step)
	}

	return &sagaResult{Compensated: true}
}

func unwind(ctx context.Context, log *zap.Logger, completed []sagaStep, result *sagaResult) {
	for i := len(completed) - 1; i >= 0; i-- {
		step := completed[i]
		if step.compensate == nil {
			continue
		}
		if err := step.compensate(ctx); err != nil {
			log.Error("signup saga compensation failed",
				zap.String("stage", step.name),
				zap.Error(err),
			)
			result.Compensated = false
			result.CompensationErr = err
		}
	}
}
