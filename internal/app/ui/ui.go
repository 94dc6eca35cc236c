package ui

import (
	"github.com/plancheck/plancheck/internal/report"
)

const (
	ColorReset  = "\033[0m"
	ColorGray   = "\033[90m" // Light gray
	ColorWhite  = "\033[97m" // White
	ColorRed    = "\033[91m" // Bright Red
	ColorGreen  = "\033[92m" // Bright Green
	ColorYellow = "\033[93m" // Bright Yellow

	ColorCritical     = "\033[31m" // Red for CRITICAL
	ColorWarning      = "\033[33m" // Yellow/Orange for WARNING
	ColorSecurity     = "\033[91m" // Bright Red for SECURITY
	ColorArchitecture = "\033[34m" // Blue for ARCHITECTURE
	ColorPerformance  = "\033[36m" // Cyan for PERFORMANCE
	ColorDeployment   = "\033[35m" // Magenta for DEPLOYMENT
	ColorSuggestion   = "\033[37m" // White/Light Gray for SUGGESTION
)

// SeverityColor returns the console color of a severity tag. Unknown
// severities render uncolored.
func SeverityColor(s report.Severity) string {
	switch s {
	case report.SeverityCritical:
		return ColorCritical
	case report.SeverityWarning:
		return ColorWarning
	case report.SeveritySecurity:
		return ColorSecurity
	case report.SeverityArchitecture:
		return ColorArchitecture
	case report.SeverityPerformance:
		return ColorPerformance
	case report.SeverityDeployment:
		return ColorDeployment
	case report.SeveritySuggestion:
		return ColorSuggestion
	default:
		return ""
	}
}
