package report

import (
	"regexp"
)

// Planning documents paste SAS URLs, connection strings, and bearer tokens
// far more often than they should. Anything credential-shaped is redacted
// before an issue reaches the console or the JSON report.
var (
	reBearer    = regexp.MustCompile(`(?i)\b(bearer\s+)([a-z0-9\-\._~\+\/]+=*)`)
	reApiKeyKV  = regexp.MustCompile(`(?i)\b(api[_-]?key|access[_-]?token|token|secret|authorization)\s*[:=]\s*([^\s,;]+)`)
	reLongToken = regexp.MustCompile(`\b[a-zA-Z0-9_\-]{24,}\b`)
)

// CompileRedactions compiles extra policy-supplied redaction patterns.
// Patterns that do not compile are dropped.
func CompileRedactions(patterns []string) []*regexp.Regexp {
	var res []*regexp.Regexp
	for _, p := range patterns {
		re, err := regexp.Compile(p)
		if err == nil {
			res = append(res, re)
		}
	}
	return res
}

// SanitizeIssue redacts credential-shaped content from the printable fields
// of an issue. The ID and severity are never document text and stay as is.
func SanitizeIssue(issue Issue, extra []*regexp.Regexp) Issue {
	issue.Message = SanitizeText(issue.Message, extra)
	issue.Evidence = SanitizeText(issue.Evidence, extra)
	issue.Fix = SanitizeText(issue.Fix, extra)
	return issue
}

func SanitizeText(s string, extra []*regexp.Regexp) string {
	out := s
	out = reBearer.ReplaceAllString(out, "${1}<redacted>")
	out = reApiKeyKV.ReplaceAllString(out, "${1}=<redacted>")
	out = reLongToken.ReplaceAllStringFunc(out, func(tok string) string {
		if len(tok) <= 10 {
			return "<redacted>"
		}
		return tok[:4] + "...<redacted>..." + tok[len(tok)-4:]
	})
	for _, re := range extra {
		out = re.ReplaceAllString(out, "<redacted>")
	}
	return out
}
