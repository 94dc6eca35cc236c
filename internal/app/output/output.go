package output

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"strings"

	"github.com/plancheck/plancheck/internal/app/ui"
	msges "github.com/plancheck/plancheck/internal/messages"
	"github.com/plancheck/plancheck/internal/report"
)

const bannerWidth = 60

// Renderer writes analysis reports to a single destination. Colors are
// applied only when enabled so piped and redirected output stays clean.
type Renderer struct {
	w     io.Writer
	color bool
}

func NewRenderer(w io.Writer, color bool) *Renderer {
	return &Renderer{w: w, color: color}
}

func (r *Renderer) paint(color, s string) string {
	if !r.color || color == "" {
		return s
	}
	return color + s + ui.ColorReset
}

// PrintHeader prints the report opening for the target file.
func (r *Renderer) PrintHeader(target string) {
	fmt.Fprintln(r.w, r.paint(ui.ColorWhite, msges.GetUIMessage("AnalyzeHeader", target)))
	fmt.Fprintln(r.w, r.paint(ui.ColorGray, strings.Repeat("=", bannerWidth)))
}

// PrintIssues prints the enumerated issue list, or the all-clear line when
// the list is empty, followed by the closing banner and the total count.
// Issues keep their evaluation order; nothing here sorts or merges.
func (r *Renderer) PrintIssues(issues []report.Issue) {
	fmt.Fprintln(r.w, r.paint(ui.ColorWhite, msges.GetUIMessage("ResultsTitle")))
	if len(issues) == 0 {
		fmt.Fprintf(r.w, "  %s\n", r.paint(ui.ColorGreen, msges.GetUIMessage("NoIssues")))
	} else {
		for i, issue := range issues {
			tag := r.paint(ui.SeverityColor(issue.Severity), "["+string(issue.Severity)+"]")
			fmt.Fprintf(r.w, "  %d. %s %s\n", i+1, tag, issue.Message)
		}
	}
	fmt.Fprintln(r.w, r.paint(ui.ColorGray, strings.Repeat("=", bannerWidth)))
	fmt.Fprintln(r.w, msges.GetUIMessage("TotalIssues", len(issues)))
}

// PrintError reports a failed run in place of the issue list. A missing
// target gets the short not-found line; everything else gets the generic
// analysis error.
func (r *Renderer) PrintError(err error, target string) {
	if errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintln(r.w, r.paint(ui.ColorRed, msges.GetUIMessage("FileNotFound", target)))
		return
	}
	fmt.Fprintln(r.w, r.paint(ui.ColorRed, msges.GetUIMessage("AnalyzeFailed", err)))
}

type Summary struct {
	Critical     int `json:"critical"`
	Warning      int `json:"warning"`
	Security     int `json:"security"`
	Architecture int `json:"architecture"`
	Performance  int `json:"performance"`
	Deployment   int `json:"deployment"`
	Suggestion   int `json:"suggestion"`
	Total        int `json:"total"`
}

type JSONReport struct {
	Target             string         `json:"target"`
	LegacyDeployChecks bool           `json:"legacy_deploy_checks"`
	Summary            Summary        `json:"summary"`
	Issues             []report.Issue `json:"issues"`
}

// PrintJSON writes the machine-readable form of the report. It replaces the
// text report entirely, so the destination carries nothing but the document.
func (r *Renderer) PrintJSON(target string, legacyDeploy bool, issues []report.Issue) error {
	summary := Summary{}
	for _, issue := range issues {
		switch issue.Severity {
		case report.SeverityCritical:
			summary.Critical++
		case report.SeverityWarning:
			summary.Warning++
		case report.SeveritySecurity:
			summary.Security++
		case report.SeverityArchitecture:
			summary.Architecture++
		case report.SeverityPerformance:
			summary.Performance++
		case report.SeverityDeployment:
			summary.Deployment++
		case report.SeveritySuggestion:
			summary.Suggestion++
		}
	}
	summary.Total = len(issues)

	reportData := JSONReport{
		Target:             target,
		LegacyDeployChecks: legacyDeploy,
		Summary:            summary,
		Issues:             issues,
	}
	if reportData.Issues == nil {
		reportData.Issues = []report.Issue{}
	}

	encoder := json.NewEncoder(r.w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(reportData)
}
