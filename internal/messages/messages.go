package messages

import (
	"fmt"
)

type MessageDetail struct {
	Title   string
	Message string
	Fix     string
}

var issueMessages = map[string]MessageDetail{
	"REACT_VERSION_UNKNOWN": {
		Title:   "Unknown React Version",
		Message: "React %s does not exist. Use React 18.2.x", // %s is the version captured from the plan
		Fix:     "Pin the frontend to a published React 18.2.x release and re-verify the plan against the React changelog.",
	},
	"TYPESCRIPT_VERSION_COMPAT": {
		Title:   "TypeScript Version Compatibility",
		Message: "TypeScript %s may have compatibility issues",
		Fix:     "Confirm the TypeScript release against the toolchain (bundler, linter, framework typings) before committing to it in the plan.",
	},
	"STATIC_HOST_SERVERLESS_CONFLICT": {
		Title:   "Static Host Cannot Run Functions",
		Message: "GitHub Pages cannot host Azure Functions backend",
		Fix:     "Target Azure Static Web Apps, which pairs static hosting with managed Functions, or plan a separate Functions deployment.",
	},
	"SAS_TOKEN_SERVICE_FRONTEND": {
		Title:   "Token Service Placed in Frontend",
		Message: "SAS token service should not be in frontend",
		Fix:     "Move SASTokenService.ts under functions/src/services/ so tokens are issued server-side and the account key never ships to the browser.",
	},
	"DATA_RETENTION_SERVICE_FRONTEND": {
		Title:   "Retention Service Placed in Frontend",
		Message: "Data retention service belongs in backend",
		Fix:     "Move DataRetentionService.ts into the backend services tree; retention jobs need storage credentials the frontend must not hold.",
	},
	"QUEUE_POLLING_BROWSER": {
		Title:   "Browser-Side Queue Polling",
		Message: "Browser queue polling is inefficient",
		Fix:     "Poll the queue from the backend, or push completion events to the browser over SignalR or Web PubSub instead.",
	},
	"SPLIT_DEPLOYMENT_REQUIRED": {
		Title:   "Split Deployment Required",
		Message: "Static hosting + serverless functions need separate deployment",
		Fix:     "Plan two deploy pipelines (static assets and Functions), or consolidate on Azure Static Web Apps.",
	},
	"BLOB_CORS_UNDOCUMENTED": {
		Title:   "Blob Access CORS Undocumented",
		Message: "Document Azure Storage CORS configuration for direct blob access",
		Fix:     "Add the storage-account CORS rules (allowed origins, methods, headers) the browser needs for direct blob reads.",
	},
}

// uiMessages holds the console strings of the report itself.
var uiMessages = map[string]string{
	"AnalyzeHeader": "Analyzing %s for issues...",
	"ResultsTitle":  "Analysis Results:",
	"NoIssues":      "No major issues detected",
	"TotalIssues":   "Total issues found: %d",
	"FileNotFound":  "%s not found",
	"AnalyzeFailed": "Error analyzing file: %v",
	"JSONFailed":    "Failed to encode JSON report: %v",
	"PolicyFailed":  "Failed to load policy: %v",
}

func GetMessage(id string) MessageDetail {
	if msg, ok := issueMessages[id]; ok {
		if msg.Title == "" {
			msg.Title = id
		}
		return msg
	}
	return MessageDetail{
		Title:   "Message Not Found",
		Message: fmt.Sprintf("Message details for ID '%s' not found.", id),
		Fix:     "Please check the message ID.",
	}
}

func GetUIMessage(id string, args ...interface{}) string {
	format, ok := uiMessages[id]
	if !ok || format == "" {
		return id
	}
	if len(args) > 0 {
		return fmt.Sprintf(format, args...)
	}
	return format
}
