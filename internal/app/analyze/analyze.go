package analyze

import (
	"fmt"
	"io"
	"os"

	"github.com/plancheck/plancheck/internal/analyzer"
	"github.com/plancheck/plancheck/internal/app/output"
	"github.com/plancheck/plancheck/internal/config"
	"github.com/plancheck/plancheck/internal/document"
	msges "github.com/plancheck/plancheck/internal/messages"
	"github.com/plancheck/plancheck/internal/report"
	"golang.org/x/term"
)

// Run analyzes the target named by the policy and writes the full report to
// w. It returns the number of issues found; callers turn that into the
// process exit status. Any returned error has already been reported to w.
func Run(w io.Writer, policy config.Policy) (int, error) {
	r := output.NewRenderer(w, colorEnabled(w, policy))

	doc, err := document.Load(policy.Target)
	if err != nil {
		r.PrintError(err, policy.Target)
		return 0, err
	}

	if !policy.JSON {
		r.PrintHeader(policy.Target)
	}

	a := analyzer.New(policy.Target, policy.LegacyDeployChecks)
	issues, err := a.Evaluate(doc)
	if err != nil {
		r.PrintError(err, policy.Target)
		return 0, err
	}

	redactors := report.CompileRedactions(policy.RedactionPatterns)
	for i := range issues {
		issues[i] = report.SanitizeIssue(issues[i], redactors)
	}

	if policy.JSON {
		if err := r.PrintJSON(policy.Target, policy.LegacyDeployChecks, issues); err != nil {
			fmt.Fprintln(w, msges.GetUIMessage("JSONFailed", err))
			return 0, err
		}
		return len(issues), nil
	}

	r.PrintIssues(issues)
	return len(issues), nil
}

// colorEnabled honors the policy, the NO_COLOR convention, and whether the
// destination is a terminal at all. JSON output never carries color.
func colorEnabled(w io.Writer, policy config.Policy) bool {
	if policy.JSON || policy.NoColor {
		return false
	}
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
