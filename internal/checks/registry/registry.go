package registry

import (
	"github.com/plancheck/plancheck/internal/checks"
	"github.com/plancheck/plancheck/internal/checks/deployment"
	"github.com/plancheck/plancheck/internal/checks/docs"
	"github.com/plancheck/plancheck/internal/checks/performance"
	"github.com/plancheck/plancheck/internal/checks/placement"
	"github.com/plancheck/plancheck/internal/checks/versions"
	"github.com/plancheck/plancheck/internal/report"
)

// DefaultChecks returns the full battery in evaluation order. The order is
// part of the report contract; reordering entries reorders every report. The
// slice is rebuilt per call so callers may filter it freely.
func DefaultChecks() []checks.Check {
	return []checks.Check{
		{
			ID:          "REACT_VERSION_UNKNOWN",
			Severity:    report.SeverityCritical,
			Title:       "Unknown React Version",
			Description: "Flags plans that pin React to the unpublished 18.3 line.",
			Policy:      checks.PolicyAlways,
			Run:         versions.CheckReactVersion,
		},
		{
			ID:          "TYPESCRIPT_VERSION_COMPAT",
			Severity:    report.SeverityWarning,
			Title:       "TypeScript Version Compatibility",
			Description: "Flags plans that pin TypeScript to the 5.3 release.",
			Policy:      checks.PolicyAlways,
			Run:         versions.CheckTypeScriptVersion,
		},
		{
			ID:          "STATIC_HOST_SERVERLESS_CONFLICT",
			Severity:    report.SeverityCritical,
			Title:       "Static Host Cannot Run Functions",
			Description: "Flags GitHub Pages hosting paired with an Azure Functions backend.",
			Policy:      checks.PolicyLegacy,
			Run:         deployment.CheckStaticHostConflict,
		},
		{
			ID:          "SAS_TOKEN_SERVICE_FRONTEND",
			Severity:    report.SeveritySecurity,
			Title:       "Token Service Placed in Frontend",
			Description: "Flags a SAS token service declared under the frontend services tree.",
			Policy:      checks.PolicyAlways,
			Run:         placement.CheckSASTokenService,
		},
		{
			ID:          "DATA_RETENTION_SERVICE_FRONTEND",
			Severity:    report.SeverityArchitecture,
			Title:       "Retention Service Placed in Frontend",
			Description: "Flags a data retention service declared next to a services directory path.",
			Policy:      checks.PolicyAlways,
			Run:         placement.CheckDataRetentionService,
		},
		{
			ID:          "QUEUE_POLLING_BROWSER",
			Severity:    report.SeverityPerformance,
			Title:       "Browser-Side Queue Polling",
			Description: "Flags queue polling plans that run the poll loop in the browser.",
			Policy:      checks.PolicyAlways,
			Run:         performance.CheckQueuePolling,
		},
		{
			ID:          "SPLIT_DEPLOYMENT_REQUIRED",
			Severity:    report.SeverityDeployment,
			Title:       "Split Deployment Required",
			Description: "Flags static React on GitHub Pages with Azure Functions and no combined host.",
			Policy:      checks.PolicyLegacy,
			Run:         deployment.CheckSplitDeployment,
		},
		{
			ID:          "BLOB_CORS_UNDOCUMENTED",
			Severity:    report.SeveritySuggestion,
			Title:       "Blob Access CORS Undocumented",
			Description: "Suggests documenting storage CORS rules for direct browser blob access.",
			Policy:      checks.PolicyAlways,
			Run:         docs.CheckBlobCORSDocumentation,
		},
	}
}
