package deployment

import (
	"github.com/plancheck/plancheck/internal/document"
	msges "github.com/plancheck/plancheck/internal/messages"
	"github.com/plancheck/plancheck/internal/report"
)

const (
	staticHostMention  = "GitHub Pages"
	serverlessMention  = "Azure Functions"
	staticReactMention = "Static React"

	// The two checks below were written in different planning rounds and
	// look for different spellings of the same remediation. The arrow form
	// only appears in migration notes ("GitHub Pages → Azure Static Web
	// Apps"); the plain form matches any mention.
	combinedHostMigration = "→ Azure Static Web Apps"
	combinedHostMention   = "Azure Static Web Apps"
)

// CheckStaticHostConflict flags plans that pair GitHub Pages hosting with an
// Azure Functions backend without a migration note pointing at Azure Static
// Web Apps.
func CheckStaticHostConflict(doc *document.Document) ([]report.Issue, error) {
	if !doc.Contains(staticHostMention) || !doc.Contains(serverlessMention) {
		return nil, nil
	}
	if doc.Contains(combinedHostMigration) {
		return nil, nil
	}
	return []report.Issue{deploymentIssue("STATIC_HOST_SERVERLESS_CONFLICT", report.SeverityCritical)}, nil
}

// CheckSplitDeployment flags static React plans on GitHub Pages that also
// ship Azure Functions but never mention a combined host, meaning two
// separate deployment pipelines are required.
func CheckSplitDeployment(doc *document.Document) ([]report.Issue, error) {
	if !doc.Contains(staticReactMention) || !doc.Contains(staticHostMention) {
		return nil, nil
	}
	if !doc.Contains(serverlessMention) || doc.Contains(combinedHostMention) {
		return nil, nil
	}
	return []report.Issue{deploymentIssue("SPLIT_DEPLOYMENT_REQUIRED", report.SeverityDeployment)}, nil
}

func deploymentIssue(id string, severity report.Severity) report.Issue {
	msg := msges.GetMessage(id)
	return report.Issue{
		ID:       id,
		Severity: severity,
		Title:    msg.Title,
		Message:  msg.Message,
		Fix:      msg.Fix,
	}
}
