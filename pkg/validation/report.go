package validation

import (
	"fmt"
	"strings"
)

// Summary returns a human-readable rendering of a validation report.
func Summary(report *ValidationReport) string {
	var b strings.Builder

	b.WriteString("=== Validation Report ===\n\n")
	if report.Passed {
		b.WriteString("Status: PASSED\n")
	} else {
		b.WriteString("Status: FAILED\n")
	}

	if report.Metrics != nil {
		b.WriteString("\n=== Metrics ===\n")
		b.WriteString(fmt.Sprintf("Branching Factor: %.2f\n", report.Metrics.BranchingFactor))
		b.WriteString(fmt.Sprintf("Path Length: %d\n", report.Metrics.PathLength))
		b.WriteString(fmt.Sprintf("Cycle Count: %d\n", report.Metrics.CycleCount))
		b.WriteString(fmt.Sprintf("Pacing Deviation: %.3f\n", report.Metrics.PacingDeviation))
	}

	b.WriteString("\n=== Hard Constraints ===\n")
	passedHard := 0
	for _, result := range report.HardConstraintResults {
		if result.Satisfied {
			passedHard++
		}
	}
	b.WriteString(fmt.Sprintf("Passed: %d/%d\n", passedHard, len(report.HardConstraintResults)))
	for i, result := range report.HardConstraintResults {
		status := "PASS"
		if !result.Satisfied {
			status = "FAIL"
		}
		b.WriteString(fmt.Sprintf("  %d. [%s] %s: %s\n", i+1, status, result.Constraint.Kind, result.Details))
	}

	b.WriteString("\n=== Soft Constraints ===\n")
	if len(report.SoftConstraintResults) == 0 {
		b.WriteString("None evaluated\n")
	} else {
		for i, result := range report.SoftConstraintResults {
			b.WriteString(fmt.Sprintf("  %d. %s (score: %.2f): %s\n",
				i+1, result.Constraint.Kind, result.Score, result.Details))
		}
	}

	if len(report.Violations) > 0 {
		b.WriteString("\n=== Configuration Violations ===\n")
		for i, v := range report.Violations {
			b.WriteString(fmt.Sprintf("  %d. [%s] %s: %s\n", i+1, v.Severity, v.Field, v.Message))
		}
	}

	if len(report.Errors) > 0 {
		b.WriteString("\n=== Errors ===\n")
		for i, err := range report.Errors {
			b.WriteString(fmt.Sprintf("  %d. %s\n", i+1, err))
		}
	}

	if len(report.Warnings) > 0 {
		b.WriteString("\n=== Warnings ===\n")
		for i, warn := range report.Warnings {
			b.WriteString(fmt.Sprintf("  %d. %s\n", i+1, warn))
		}
	}

	return b.String()
}

// HasErrors returns true if the report contains any hard constraint or
// configuration failures.
func HasErrors(report *ValidationReport) bool {
	return len(report.Errors) > 0
}

// HasWarnings returns true if the report contains any soft constraint
// warnings.
func HasWarnings(report *ValidationReport) bool {
	return len(report.Warnings) > 0
}

// GetFailedConstraints returns all failed hard constraints.
func GetFailedConstraints(report *ValidationReport) []ConstraintResult {
	failed := []ConstraintResult{}
	for _, result := range report.HardConstraintResults {
		if !result.Satisfied {
			failed = append(failed, result)
		}
	}
	return failed
}

// GetLowScoringConstraints returns soft constraints with score below threshold.
func GetLowScoringConstraints(report *ValidationReport, threshold float64) []ConstraintResult {
	lowScoring := []ConstraintResult{}
	for _, result := range report.SoftConstraintResults {
		if result.Score < threshold {
			lowScoring = append(lowScoring, result)
		}
	}
	return lowScoring
}
