package rules

import (
	"strings"

	"github.com/arthur-debert/copyconfig/pkg/errors"
	"github.com/arthur-debert/copyconfig/pkg/glob"
	"github.com/arthur-debert/copyconfig/pkg/merge"
)

// Rule maps files matching Pattern, and none of Ignore, to a merge strategy.
type Rule struct {
	Pattern string             `mapstructure:"pattern" toml:"pattern" yaml:"pattern"`
	Ignore  []string           `mapstructure:"ignore" toml:"ignore,omitempty" yaml:"ignore,omitempty"`
	Merge   merge.StrategyKind `mapstructure:"merge" toml:"merge" yaml:"merge"`
}

// Config is an ordered rule set plus the variables its strategies consult.
// Rules are ordered from lowest to highest priority.
type Config struct {
	Variables merge.Variables `mapstructure:"variables" toml:"variables" yaml:"variables"`
	Rules     []Rule          `mapstructure:"rules" toml:"rules" yaml:"rules"`
}

// ByDecreasingPriority returns the rules in the order the sync walk visits
// them: last declared first.
func (c Config) ByDecreasingPriority() []Rule {
	out := make([]Rule, len(c.Rules))
	for i, r := range c.Rules {
		out[len(c.Rules)-1-i] = r
	}
	return out
}

// Validate checks every rule has a usable pattern and a registered strategy.
func (c Config) Validate() error {
	if len(c.Rules) == 0 {
		return errors.New(errors.ErrConfigValid, "config has no rules")
	}
	for i, r := range c.Rules {
		if strings.TrimSpace(r.Pattern) == "" {
			return errors.Newf(errors.ErrConfigValid, "rule %d has an empty pattern", i)
		}
		if _, err := glob.Expand(r.Pattern); err != nil {
			return errors.Wrapf(err, errors.ErrConfigValid, "rule %d has an invalid pattern", i)
		}
		for _, ignore := range r.Ignore {
			if _, err := glob.Expand(ignore); err != nil {
				return errors.Wrapf(err, errors.ErrConfigValid, "rule %d has an invalid ignore pattern", i)
			}
		}
		if !r.Merge.IsValid() {
			return errors.Newf(errors.ErrConfigValid, "rule %d (%s) has unknown merge strategy %q", i, r.Pattern, r.Merge)
		}
	}
	return nil
}

// Clone returns a deep copy of c.
func (c Config) Clone() Config {
	out := Config{
		Variables: merge.Variables{
			CopyableDependencies:    cloneStrings(c.Variables.CopyableDependencies),
			CopyableDevDependencies: cloneStrings(c.Variables.CopyableDevDependencies),
		},
		Rules: make([]Rule, len(c.Rules)),
	}
	for i, r := range c.Rules {
		r.Ignore = cloneStrings(r.Ignore)
		out.Rules[i] = r
	}
	return out
}

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	return append(make([]string, 0, len(in)), in...)
}

// MakeAggressive returns a copy of c with every strategy swapped for its
// aggressive counterpart. It panics if a strategy has none.
func MakeAggressive(c Config) Config {
	out := c.Clone()
	for i := range out.Rules {
		out.Rules[i].Merge = merge.AggressiveOf(out.Rules[i].Merge)
	}
	return out
}
