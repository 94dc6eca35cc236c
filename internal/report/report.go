package report

type Severity string

const (
	SeverityCritical     Severity = "CRITICAL"
	SeverityWarning      Severity = "WARNING"
	SeveritySecurity     Severity = "SECURITY"
	SeverityArchitecture Severity = "ARCHITECTURE"
	SeverityPerformance  Severity = "PERFORMANCE"
	SeverityDeployment   Severity = "DEPLOYMENT"
	SeveritySuggestion   Severity = "SUGGESTION"
)

type Issue struct {
	ID       string   `json:"id"`
	Severity Severity `json:"severity"`
	Title    string   `json:"title"`
	Message  string   `json:"message"`
	Evidence string   `json:"evidence,omitempty"`
	Fix      string   `json:"fix,omitempty"`
}
