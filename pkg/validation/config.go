package validation

import "github.com/dshills/rogueforge/pkg/generate"

// ValidateConfig checks a generation Config and returns a report carrying
// one Violation per problem, all at SeverityError: generate.Config.Validate
// only ever returns hard requirements (minimum dimensions, algorithm-specific
// bounds), so none of its violations are merely advisory and generation
// refuses to run while any remain.
func ValidateConfig(cfg generate.Config) *ValidationReport {
	report := NewValidationReport()
	for _, msg := range cfg.Validate() {
		report.Passed = false
		report.Errors = append(report.Errors, msg)
		report.Violations = append(report.Violations, Violation{
			Field:    "config",
			Severity: SeverityError,
			Message:  msg,
		})
	}
	return report
}
