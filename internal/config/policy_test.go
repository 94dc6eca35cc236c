package config

import (
	"os"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func analyzeFlagSet(t *testing.T, args ...string) *pflag.FlagSet {
	t.Helper()
	fs := pflag.NewFlagSet("plancheck", pflag.ContinueOnError)
	fs.Bool("json", false, "")
	fs.Bool("legacy-deploy", false, "")
	fs.Bool("no-color", false, "")
	require.NoError(t, fs.Parse(args))
	return fs
}

func TestDefaultPolicy(t *testing.T) {
	p := DefaultPolicy()

	assert.Equal(t, "README.plans.md", p.Target)
	assert.False(t, p.LegacyDeployChecks)
	assert.False(t, p.JSON)
	assert.False(t, p.NoColor)
}

func TestLoadPolicyDefaults(t *testing.T) {
	t.Chdir(t.TempDir())

	p, err := LoadPolicy(nil)
	require.NoError(t, err)

	assert.Equal(t, DefaultPolicy(), p)
}

func TestLoadPolicyFromFile(t *testing.T) {
	t.Chdir(t.TempDir())
	require.NoError(t, os.WriteFile(PolicyFileName, []byte("target: docs/plan.md\nlegacy_deploy_checks: true\n"), 0o644))

	p, err := LoadPolicy(nil)
	require.NoError(t, err)

	assert.Equal(t, "docs/plan.md", p.Target)
	assert.True(t, p.LegacyDeployChecks)
	assert.False(t, p.JSON)
}

func TestLoadPolicyRedactionPatterns(t *testing.T) {
	t.Chdir(t.TempDir())
	require.NoError(t, os.WriteFile(PolicyFileName, []byte("redaction_patterns:\n  - 'acct-[0-9]+'\n  - 'sb://[^ ]+'\n"), 0o644))

	p, err := LoadPolicy(nil)
	require.NoError(t, err)

	assert.Equal(t, []string{"acct-[0-9]+", "sb://[^ ]+"}, p.RedactionPatterns)
}

func TestLoadPolicyInvalidFile(t *testing.T) {
	t.Chdir(t.TempDir())
	require.NoError(t, os.WriteFile(PolicyFileName, []byte("target: [unclosed\n"), 0o644))

	_, err := LoadPolicy(nil)
	assert.Error(t, err)
}

func TestLoadPolicyEnvOverridesFile(t *testing.T) {
	t.Chdir(t.TempDir())
	require.NoError(t, os.WriteFile(PolicyFileName, []byte("target: docs/plan.md\n"), 0o644))
	t.Setenv("PLANCHECK_TARGET", "env/plan.md")

	p, err := LoadPolicy(nil)
	require.NoError(t, err)

	assert.Equal(t, "env/plan.md", p.Target)
}

func TestLoadPolicyEnvBool(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("PLANCHECK_LEGACY_DEPLOY_CHECKS", "true")
	t.Setenv("PLANCHECK_NO_COLOR", "true")

	p, err := LoadPolicy(nil)
	require.NoError(t, err)

	assert.True(t, p.LegacyDeployChecks)
	assert.True(t, p.NoColor)
}

func TestLoadPolicyFlagsOverrideEnv(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("PLANCHECK_LEGACY_DEPLOY_CHECKS", "false")

	p, err := LoadPolicy(analyzeFlagSet(t, "--legacy-deploy"))
	require.NoError(t, err)

	assert.True(t, p.LegacyDeployChecks, "the changed --legacy-deploy flag should override the environment")
}

func TestLoadPolicyUnchangedFlagsKeepLowerLayers(t *testing.T) {
	t.Chdir(t.TempDir())
	require.NoError(t, os.WriteFile(PolicyFileName, []byte("json: true\n"), 0o644))

	p, err := LoadPolicy(analyzeFlagSet(t))
	require.NoError(t, err)

	assert.True(t, p.JSON, "an unset --json flag should not mask the policy file")
}
