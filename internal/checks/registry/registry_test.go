package registry

import (
	"testing"

	"github.com/plancheck/plancheck/internal/checks"
)

func TestDefaultChecksOrder(t *testing.T) {
	wantIDs := []string{
		"REACT_VERSION_UNKNOWN",
		"TYPESCRIPT_VERSION_COMPAT",
		"STATIC_HOST_SERVERLESS_CONFLICT",
		"SAS_TOKEN_SERVICE_FRONTEND",
		"DATA_RETENTION_SERVICE_FRONTEND",
		"QUEUE_POLLING_BROWSER",
		"SPLIT_DEPLOYMENT_REQUIRED",
		"BLOB_CORS_UNDOCUMENTED",
	}

	battery := DefaultChecks()
	if len(battery) != len(wantIDs) {
		t.Fatalf("expected %d checks, got %d", len(wantIDs), len(battery))
	}
	for i, want := range wantIDs {
		if battery[i].ID != want {
			t.Errorf("position %d: expected %s, got %s", i, want, battery[i].ID)
		}
	}
}

func TestDefaultChecksComplete(t *testing.T) {
	for _, check := range DefaultChecks() {
		if check.Run == nil {
			t.Errorf("check %s has no Run function", check.ID)
		}
		if check.Title == "" {
			t.Errorf("check %s has no title", check.ID)
		}
		if check.Severity == "" {
			t.Errorf("check %s has no severity", check.ID)
		}
		if check.Policy != checks.PolicyAlways && check.Policy != checks.PolicyLegacy {
			t.Errorf("check %s has unknown policy %q", check.ID, check.Policy)
		}
	}
}

func TestLegacyChecksTagged(t *testing.T) {
	legacy := map[string]bool{
		"STATIC_HOST_SERVERLESS_CONFLICT": true,
		"SPLIT_DEPLOYMENT_REQUIRED":       true,
	}

	for _, check := range DefaultChecks() {
		want := checks.PolicyAlways
		if legacy[check.ID] {
			want = checks.PolicyLegacy
		}
		if check.Policy != want {
			t.Errorf("check %s: expected policy %s, got %s", check.ID, want, check.Policy)
		}
	}
}
