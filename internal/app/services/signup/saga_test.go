package signup

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestRunSaga(t *testing.T) {
	t.Run("runs every step in order when all succeed", func(t *testing.T) {
		var order []string
		steps := []sagaStep{
			{name: "first", run: func(ctx context.Context) error {
				order = append(order, "first")
				return nil
			}},
			{name: "second", run: func(ctx context.Context) error {
				order = append(order, "second")
				return nil
			}},
		}

		result := runSaga(context.Background(), zap.NewNop(), steps)

		assert.True(t, result.succeeded())
		assert.Equal(t, []string{"first", "second"}, order)
	})

	t.Run("first step failure unwinds nothing", func(t *testing.T) {
		compensations := 0
		steps := []sagaStep{
			{
				name: "first",
				run:  func(ctx context.Context) error { return errors.New("boom") },
				compensate: func(ctx context.Context) error {
					compensations++
					return nil
				},
			},
			{name: "second", run: func(ctx context.Context) error {
				t.Fatal("second step must not run")
				return nil
			}},
		}

		result := runSaga(context.Background(), zap.NewNop(), steps)

		assert.False(t, result.succeeded())
		assert.Equal(t, "first", result.FailedStage)
		assert.Zero(t, compensations)
	})

	t.Run("later failure unwinds completed steps in reverse", func(t *testing.T) {
		var unwound []string
		steps := []sagaStep{
			{
				name: "first",
				run:  func(ctx context.Context) error { return nil },
				compensate: func(ctx context.Context) error {
					unwound = append(unwound, "first")
					return nil
				},
			},
			{
				name: "second",
				run:  func(ctx context.Context) error { return nil },
				compensate: func(ctx context.Context) error {
					unwound = append(unwound, "second")
					return nil
				},
			},
			{name: "third", run: func(ctx context.Context) error { return errors.New("boom") }},
		}

		result := runSaga(context.Background(), zap.NewNop(), steps)

		assert.Equal(t, "third", result.FailedStage)
		assert.Equal(t, []string{"second", "first"}, unwound)
		assert.True(t, result.Compensated)
	})

	t.Run("compensation failure is reported but not retried", func(t *testing.T) {
		attempts := 0
		steps := []sagaStep{
			{
				name: "first",
				run:  func(ctx context.Context) error { return nil },
				compensate: func(ctx context.Context) error {
					attempts++
					return errors.New("delete failed")
				},
			},
			{name: "second", run: func(ctx context.Context) error { return errors.New("boom") }},
		}

		result := runSaga(context.Background(), zap.NewNop(), steps)

		assert.Equal(t, 1, attempts)
		assert.False(t, result.Compensated)
		assert.EqualError(t, result.CompensationErr, "delete failed")
		assert.EqualError(t, result.StepErr, "boom")
	})
}
