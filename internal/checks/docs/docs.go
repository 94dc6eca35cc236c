package docs

import (
	"github.com/plancheck/plancheck/internal/document"
	msges "github.com/plancheck/plancheck/internal/messages"
	"github.com/plancheck/plancheck/internal/report"
)

const (
	directBlobMention = "Direct Blob Access"
	browserMention    = "browser"
	// Uppercase acronym only. A plan spelling it "cors" has not documented
	// the configuration, just mentioned the word.
	corsMention = "CORS"
)

// CheckBlobCORSDocumentation suggests documenting storage CORS rules when a
// plan has the browser reading blobs directly but never writes out CORS.
func CheckBlobCORSDocumentation(doc *document.Document) ([]report.Issue, error) {
	if !doc.Contains(directBlobMention) || !doc.ContainsFold(browserMention) {
		return nil, nil
	}
	if doc.Contains(corsMention) {
		return nil, nil
	}
	msg := msges.GetMessage("BLOB_CORS_UNDOCUMENTED")
	return []report.Issue{{
		ID:       "BLOB_CORS_UNDOCUMENTED",
		Severity: report.SeveritySuggestion,
		Title:    msg.Title,
		Message:  msg.Message,
		Fix:      msg.Fix,
	}}, nil
}
