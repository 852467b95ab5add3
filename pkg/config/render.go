package config

import (
	"github.com/arthur-debert/copyconfig/pkg/errors"
	"github.com/arthur-debert/copyconfig/pkg/merge"
	"github.com/arthur-debert/copyconfig/pkg/rules"
	toml "github.com/pelletier/go-toml/v2"
)

type renderedConfig struct {
	Extends   string          `toml:"extends"`
	Variables merge.Variables `toml:"variables"`
	Rules     []rules.Rule    `toml:"rules"`
}

// Render prints cfg as a standalone TOML config file. Loading the output
// yields cfg again.
func Render(cfg rules.Config) (string, error) {
	out := renderedConfig{
		Extends:   ExtendsNone,
		Variables: cfg.Variables,
		Rules:     cfg.Rules,
	}
	if out.Variables.CopyableDependencies == nil {
		out.Variables.CopyableDependencies = []string{}
	}
	if out.Variables.CopyableDevDependencies == nil {
		out.Variables.CopyableDevDependencies = []string{}
	}

	data, err := toml.Marshal(out)
	if err != nil {
		return "", errors.Wrap(err, errors.ErrInternal, "failed to render config")
	}
	return string(data), nil
}
