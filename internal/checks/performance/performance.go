package performance

import (
	"github.com/plancheck/plancheck/internal/document"
	msges "github.com/plancheck/plancheck/internal/messages"
	"github.com/plancheck/plancheck/internal/report"
)

const (
	// Matches the heading style plans use ("Queue Polling", "### Queue
	// Polling Strategy"); prose-case "queue polling" is out of scope.
	queuePollingMention = "Queue Polling"
	browserMention      = "browser"
)

// CheckQueuePolling flags plans that describe a queue polling mechanism
// running in the browser. The browser mention matches any casing.
func CheckQueuePolling(doc *document.Document) ([]report.Issue, error) {
	if !doc.Contains(queuePollingMention) || !doc.ContainsFold(browserMention) {
		return nil, nil
	}
	msg := msges.GetMessage("QUEUE_POLLING_BROWSER")
	return []report.Issue{{
		ID:       "QUEUE_POLLING_BROWSER",
		Severity: report.SeverityPerformance,
		Title:    msg.Title,
		Message:  msg.Message,
		Fix:      msg.Fix,
	}}, nil
}
