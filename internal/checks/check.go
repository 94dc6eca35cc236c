package checks

import (
	"github.com/plancheck/plancheck/internal/document"
	"github.com/plancheck/plancheck/internal/report"
)

type RulePolicy string

const (
	// PolicyAlways marks checks that run in every analysis.
	PolicyAlways RulePolicy = "POLICY_ALWAYS"
	// PolicyLegacy marks retired deployment checks that run only when the
	// legacy deployment policy is enabled.
	PolicyLegacy RulePolicy = "POLICY_LEGACY"
)

type Check struct {
	ID          string
	Severity    report.Severity
	Title       string
	Description string
	Policy      RulePolicy
	Run         func(*document.Document) ([]report.Issue, error)
}
