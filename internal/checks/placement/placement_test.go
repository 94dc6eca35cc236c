package placement

import (
	"testing"

	"github.com/plancheck/plancheck/internal/document"
	"github.com/plancheck/plancheck/internal/report"
)

func TestCheckSASTokenService(t *testing.T) {
	tests := []struct {
		name      string
		content   string
		wantCount int
	}{
		{
			name:      "frontend placement flagged",
			content:   "Create src/services/SASTokenService.ts for uploads",
			wantCount: 1,
		},
		{
			name:      "backend placement passes",
			content:   "Create functions/src/services/SASTokenService.ts for uploads",
			wantCount: 0,
		},
		{
			name:      "backend mention anywhere suppresses",
			content:   "Move src/services/SASTokenService.ts into functions/src/services/",
			wantCount: 0,
		},
		{
			name:      "file absent",
			content:   "All code in src/services/ stays framework agnostic",
			wantCount: 0,
		},
		{
			name:      "path absent",
			content:   "SASTokenService.ts issues short-lived tokens",
			wantCount: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := document.New("plan.md", tt.content)
			issues, err := CheckSASTokenService(doc)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(issues) != tt.wantCount {
				t.Fatalf("expected %d issues, got %d: %+v", tt.wantCount, len(issues), issues)
			}
			if tt.wantCount == 1 {
				if issues[0].ID != "SAS_TOKEN_SERVICE_FRONTEND" {
					t.Errorf("unexpected ID %q", issues[0].ID)
				}
				if issues[0].Severity != report.SeveritySecurity {
					t.Errorf("expected SECURITY severity, got %s", issues[0].Severity)
				}
				if issues[0].Message != "SAS token service should not be in frontend" {
					t.Errorf("unexpected message %q", issues[0].Message)
				}
			}
		})
	}
}

func TestCheckDataRetentionService(t *testing.T) {
	tests := []struct {
		name      string
		content   string
		wantCount int
	}{
		{
			name:      "frontend placement flagged",
			content:   "Add src/services/DataRetentionService.ts for cleanup",
			wantCount: 1,
		},
		{
			name:      "backend path still flagged",
			content:   "Add functions/src/services/DataRetentionService.ts for cleanup",
			wantCount: 1,
		},
		{
			name:      "file absent",
			content:   "Cleanup jobs live under src/services/",
			wantCount: 0,
		},
		{
			name:      "path absent",
			content:   "DataRetentionService.ts prunes old uploads",
			wantCount: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := document.New("plan.md", tt.content)
			issues, err := CheckDataRetentionService(doc)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(issues) != tt.wantCount {
				t.Fatalf("expected %d issues, got %d: %+v", tt.wantCount, len(issues), issues)
			}
			if tt.wantCount == 1 {
				if issues[0].ID != "DATA_RETENTION_SERVICE_FRONTEND" {
					t.Errorf("unexpected ID %q", issues[0].ID)
				}
				if issues[0].Severity != report.SeverityArchitecture {
					t.Errorf("expected ARCHITECTURE severity, got %s", issues[0].Severity)
				}
				if issues[0].Message != "Data retention service belongs in backend" {
					t.Errorf("unexpected message %q", issues[0].Message)
				}
			}
		})
	}
}
