package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
)

// Policy carries the options of one analysis run.
type Policy struct {
	Target             string   `koanf:"target"`
	LegacyDeployChecks bool     `koanf:"legacy_deploy_checks"`
	JSON               bool     `koanf:"json"`
	NoColor            bool     `koanf:"no_color"`
	RedactionPatterns  []string `koanf:"redaction_patterns"`
}

// PolicyFileName is the optional per-project policy file, read from the
// working directory.
const PolicyFileName = ".plancheck.yaml"

const envPrefix = "PLANCHECK_"

func DefaultPolicy() Policy {
	return Policy{
		Target: "README.plans.md",
	}
}

// LoadPolicy layers the run policy from defaults, the optional
// .plancheck.yaml, PLANCHECK_* environment variables, and explicitly set
// command-line flags, in rising precedence.
func LoadPolicy(flags *pflag.FlagSet) (Policy, error) {
	k := koanf.New(".")

	defaults := DefaultPolicy()
	if err := k.Load(confmap.Provider(map[string]interface{}{
		"target":               defaults.Target,
		"legacy_deploy_checks": defaults.LegacyDeployChecks,
		"json":                 defaults.JSON,
		"no_color":             defaults.NoColor,
	}, "."), nil); err != nil {
		return defaults, fmt.Errorf("failed to load defaults: %w", err)
	}

	if _, err := os.Stat(PolicyFileName); err == nil {
		if err := k.Load(file.Provider(PolicyFileName), yaml.Parser()); err != nil {
			return defaults, fmt.Errorf("error reading policy file %s: %w", PolicyFileName, err)
		}
	}

	if err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, envPrefix))
	}), nil); err != nil {
		return defaults, fmt.Errorf("failed to load environment variables: %w", err)
	}

	if flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, interface{}) {
			// Only flags the user actually set may override the file and
			// environment layers.
			if !f.Changed {
				return "", nil
			}
			key := strings.ReplaceAll(f.Name, "-", "_")
			// The --legacy-deploy flag feeds the legacy_deploy_checks key.
			if key == "legacy_deploy" {
				key = "legacy_deploy_checks"
			}
			return key, posflag.FlagVal(flags, f)
		}), nil); err != nil {
			return defaults, fmt.Errorf("failed to load flags: %w", err)
		}
	}

	var p Policy
	if err := k.Unmarshal("", &p); err != nil {
		return defaults, fmt.Errorf("unable to decode policy: %w", err)
	}
	return p, nil
}
