package placement

import (
	"github.com/plancheck/plancheck/internal/document"
	msges "github.com/plancheck/plancheck/internal/messages"
	"github.com/plancheck/plancheck/internal/report"
)

const (
	sasTokenServiceFile  = "SASTokenService.ts"
	retentionServiceFile = "DataRetentionService.ts"
	frontendServicesPath = "src/services/"
	backendServicesPath  = "functions/src/services/"
)

// CheckSASTokenService flags a SAS token service declared under the frontend
// services tree. A backend services path anywhere in the plan marks the
// service as server-side and keeps the check silent.
//
// Note the paths overlap: backendServicesPath contains frontendServicesPath,
// so a plan that only names the backend tree still satisfies the frontend
// match and relies on the backend exclusion to pass.
func CheckSASTokenService(doc *document.Document) ([]report.Issue, error) {
	if !doc.Contains(sasTokenServiceFile) || !doc.Contains(frontendServicesPath) {
		return nil, nil
	}
	if doc.Contains(backendServicesPath) {
		// Correct placement.
		return nil, nil
	}
	return []report.Issue{placementIssue("SAS_TOKEN_SERVICE_FRONTEND", report.SeveritySecurity, sasTokenServiceFile)}, nil
}

// CheckDataRetentionService flags a data retention service named alongside a
// services directory path. Unlike the SAS check there is no backend
// exclusion; any services-path mention together with the file name reports.
func CheckDataRetentionService(doc *document.Document) ([]report.Issue, error) {
	if !doc.Contains(retentionServiceFile) || !doc.Contains(frontendServicesPath) {
		return nil, nil
	}
	return []report.Issue{placementIssue("DATA_RETENTION_SERVICE_FRONTEND", report.SeverityArchitecture, retentionServiceFile)}, nil
}

func placementIssue(id string, severity report.Severity, evidence string) report.Issue {
	msg := msges.GetMessage(id)
	return report.Issue{
		ID:       id,
		Severity: severity,
		Title:    msg.Title,
		Message:  msg.Message,
		Evidence: evidence,
		Fix:      msg.Fix,
	}
}
