package versions

import (
	"fmt"
	"regexp"

	"github.com/plancheck/plancheck/internal/document"
	msges "github.com/plancheck/plancheck/internal/messages"
	"github.com/plancheck/plancheck/internal/report"
)

var (
	reactVersionRegex      = regexp.MustCompile(`React (\d+\.\d+(?:\.\d+)?)`)
	typescriptVersionRegex = regexp.MustCompile(`TypeScript (\d+\.\d+(?:\.\d+)?)`)
)

const (
	// React 18.3 was announced but never shipped as a stable release.
	unknownReactVersion = "18.3"
	// TypeScript 5.3 predates the typings the rest of the planned stack needs.
	suspectTypeScriptVersion = "5.3"
)

// CheckReactVersion flags every "React <version>" mention that names the
// unpublished 18.3 line. Each occurrence produces its own issue; the check
// never deduplicates.
func CheckReactVersion(doc *document.Document) ([]report.Issue, error) {
	var issues []report.Issue
	for _, m := range reactVersionRegex.FindAllStringSubmatchIndex(doc.Raw, -1) {
		version := doc.Raw[m[2]:m[3]]
		if version != unknownReactVersion {
			continue
		}
		issues = append(issues, versionIssue("REACT_VERSION_UNKNOWN", report.SeverityCritical, version, doc, m[0]))
	}
	return issues, nil
}

// CheckTypeScriptVersion flags every "TypeScript <version>" mention that
// names the 5.3 release.
func CheckTypeScriptVersion(doc *document.Document) ([]report.Issue, error) {
	var issues []report.Issue
	for _, m := range typescriptVersionRegex.FindAllStringSubmatchIndex(doc.Raw, -1) {
		version := doc.Raw[m[2]:m[3]]
		if version != suspectTypeScriptVersion {
			continue
		}
		issues = append(issues, versionIssue("TYPESCRIPT_VERSION_COMPAT", report.SeverityWarning, version, doc, m[0]))
	}
	return issues, nil
}

func versionIssue(id string, severity report.Severity, version string, doc *document.Document, offset int) report.Issue {
	msg := msges.GetMessage(id)
	line := doc.LineOf(offset)
	return report.Issue{
		ID:       id,
		Severity: severity,
		Title:    msg.Title,
		Message:  fmt.Sprintf(msg.Message, version),
		Evidence: fmt.Sprintf("line %d: %s", line, doc.LineText(line)),
		Fix:      msg.Fix,
	}
}
