package analyzer

import (
	"fmt"

	"github.com/plancheck/plancheck/internal/checks"
	"github.com/plancheck/plancheck/internal/checks/registry"
	"github.com/plancheck/plancheck/internal/document"
	"github.com/plancheck/plancheck/internal/report"
)

// Analyzer runs the fixed check battery over one planning document.
type Analyzer struct {
	Path   string
	Checks []checks.Check

	legacyDeploy bool
}

func New(path string, legacyDeploy bool) *Analyzer {
	return &Analyzer{
		Path:         path,
		Checks:       registry.DefaultChecks(),
		legacyDeploy: legacyDeploy,
	}
}

// Run loads the document at Path and evaluates the battery. A missing file
// surfaces the load error unchanged so callers can match fs.ErrNotExist.
func (a *Analyzer) Run() ([]report.Issue, error) {
	doc, err := document.Load(a.Path)
	if err != nil {
		return nil, err
	}
	return a.Evaluate(doc)
}

// Evaluate runs every applicable check in battery order and concatenates
// their issues. Checks run sequentially; the issue order of a report is the
// battery order, with multi-issue checks keeping their internal order. A
// check error aborts the run with no partial results.
func (a *Analyzer) Evaluate(doc *document.Document) ([]report.Issue, error) {
	var issues []report.Issue
	for _, check := range a.Checks {
		if check.Policy == checks.PolicyLegacy && !a.legacyDeploy {
			continue
		}
		found, err := check.Run(doc)
		if err != nil {
			return nil, fmt.Errorf("check %s: %w", check.ID, err)
		}
		issues = append(issues, found...)
	}
	return issues, nil
}
