package validation

import (
	"context"
	"fmt"

	"github.com/dshills/rogueforge/pkg/generate"
	"github.com/dshills/rogueforge/pkg/model"
)

// Validator checks a finished dungeon against the hard and soft constraints.
type Validator interface {
	Validate(ctx context.Context, d *model.Dungeon, cfg generate.Config) (*ValidationReport, error)
}

// DefaultValidator implements Validator with this package's constraint set.
type DefaultValidator struct {
	BranchingTarget float64
}

// NewValidator creates a validator with a branching-factor target of 3.0,
// matching a typical BSP layout's average room degree.
func NewValidator() Validator {
	return &DefaultValidator{BranchingTarget: 3.0}
}

// Validate runs all hard and soft constraints against d and computes
// metrics, stopping early only on context cancellation.
func (v *DefaultValidator) Validate(ctx context.Context, d *model.Dungeon, cfg generate.Config) (*ValidationReport, error) {
	if d == nil {
		return nil, fmt.Errorf("dungeon cannot be nil")
	}

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	report := NewValidationReport()

	for _, result := range []ConstraintResult{
		CheckConnectivity(d),
		CheckNoOverlaps(d),
		CheckPathBounds(d),
	} {
		report.HardConstraintResults = append(report.HardConstraintResults, result)
		if !result.Satisfied {
			report.Passed = false
			report.Errors = append(report.Errors, result.Details)
		}
	}

	target := v.BranchingTarget
	if target <= 0 {
		target = 3.0
	}
	for _, result := range []ConstraintResult{
		CheckBranchingFactor(d, target),
	} {
		report.SoftConstraintResults = append(report.SoftConstraintResults, result)
		if result.Score < 0.8 {
			report.Warnings = append(report.Warnings, result.Details)
		}
	}

	report.Metrics = ComputeMetrics(d, cfg)
	if report.Metrics.PacingDeviation > 0.3 {
		report.Warnings = append(report.Warnings, fmt.Sprintf("pacing deviation %.3f exceeds 0.3", report.Metrics.PacingDeviation))
	}

	return report, nil
}
