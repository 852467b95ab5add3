package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/copyconfig/pkg/errors"
	"github.com/arthur-debert/copyconfig/pkg/logging"
	"github.com/arthur-debert/copyconfig/pkg/merge"
	"github.com/arthur-debert/copyconfig/pkg/rules"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// SourcePlaceholder in a config path is replaced by the acquired source root.
const SourcePlaceholder = "%source%"

// EnvPrefix prefixes the environment variables that override variables.
const EnvPrefix = "COPY_CONFIG_"

// Presets a config file can extend.
const (
	ExtendsDefault    = "default"
	ExtendsAggressive = "aggressive"
	ExtendsNone       = "none"
)

// fileConfig mirrors the on-disk schema.
type fileConfig struct {
	Extends    string `koanf:"extends"`
	Aggressive bool   `koanf:"aggressive"`
	Variables  struct {
		CopyableDependencies    []string `koanf:"copyable_dependencies"`
		CopyableDevDependencies []string `koanf:"copyable_dev_dependencies"`
	} `koanf:"variables"`
	Rules []fileRule `koanf:"rules"`
}

type fileRule struct {
	Pattern string   `koanf:"pattern"`
	Ignore  []string `koanf:"ignore"`
	Merge   string   `koanf:"merge"`
}

type rawBytesProvider struct{ bytes []byte }

func (r *rawBytesProvider) ReadBytes() ([]byte, error) { return r.bytes, nil }
func (r *rawBytesProvider) Read() (map[string]interface{}, error) {
	return nil, fmt.Errorf("not implemented")
}

// ResolvePath substitutes the source placeholder in a --config value.
func ResolvePath(path, sourceRoot string) string {
	if !strings.Contains(path, SourcePlaceholder) {
		return path
	}
	return filepath.Clean(strings.ReplaceAll(path, SourcePlaceholder, sourceRoot))
}

// Load reads the config file at path and builds the effective rule set.
func Load(path string) (rules.Config, error) {
	logger := logging.GetLogger("config")

	parser, err := parserFor(path)
	if err != nil {
		return rules.Config{}, err
	}

	k, err := newKoanf()
	if err != nil {
		return rules.Config{}, err
	}
	if err := k.Load(file.Provider(path), parser); err != nil {
		return rules.Config{}, errors.Wrapf(err, errors.ErrConfigLoad, "failed to load config from %s", path).
			WithDetail("path", path)
	}

	logger.Debug().Str("path", path).Msg("loaded config file")
	return build(k)
}

// Parse builds the effective rule set from config file content. format is a
// file extension such as "toml", ".yaml" or "json".
func Parse(data []byte, format string) (rules.Config, error) {
	parser, err := parserFor("config." + strings.TrimPrefix(format, "."))
	if err != nil {
		return rules.Config{}, err
	}

	k, err := newKoanf()
	if err != nil {
		return rules.Config{}, err
	}
	if err := k.Load(&rawBytesProvider{bytes: data}, parser); err != nil {
		return rules.Config{}, errors.Wrap(err, errors.ErrConfigLoad, "failed to parse config")
	}
	return build(k)
}

// Default returns the effective rule set when no config file is given.
func Default(aggressive bool) (rules.Config, error) {
	k, err := newKoanf()
	if err != nil {
		return rules.Config{}, err
	}
	if aggressive {
		if err := k.Set("aggressive", true); err != nil {
			return rules.Config{}, errors.Wrap(err, errors.ErrInternal, "failed to set aggressive")
		}
	}
	return build(k)
}

func parserFor(path string) (koanf.Parser, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return toml.Parser(), nil
	case ".yaml", ".yml":
		return yaml.Parser(), nil
	case ".json":
		return json.Parser(), nil
	default:
		return nil, errors.Newf(errors.ErrConfigLoad,
			"unsupported config format %q (expected .toml, .yaml, .yml or .json)", filepath.Ext(path)).
			WithDetail("path", path)
	}
}

func newKoanf() (*koanf.Koanf, error) {
	k := koanf.New(".")
	defaults := map[string]interface{}{
		"extends":    ExtendsDefault,
		"aggressive": false,
	}
	if err := k.Load(confmap.Provider(defaults, "."), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load defaults")
	}
	return k, nil
}

// build layers the environment over k and turns the result into a validated
// rule set.
func build(k *koanf.Koanf) (rules.Config, error) {
	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return rules.Config{}, errors.Wrap(err, errors.ErrConfigLoad, "failed to load env vars")
	}

	var fc fileConfig
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &fc,
			WeaklyTypedInput: true,
			DecodeHook:       mapstructure.StringToSliceHookFunc(","),
		},
	}
	if err := k.UnmarshalWithConf("", &fc, unmarshalConf); err != nil {
		return rules.Config{}, errors.Wrap(err, errors.ErrConfigValid, "failed to decode config")
	}

	var cfg rules.Config
	switch strings.ToLower(strings.TrimSpace(fc.Extends)) {
	case ExtendsDefault, "":
		cfg = rules.DefaultConfig()
	case ExtendsAggressive:
		cfg = rules.AggressiveConfig()
	case ExtendsNone:
		cfg = rules.Config{Variables: merge.DefaultVariables()}
	default:
		return rules.Config{}, errors.Newf(errors.ErrConfigValid,
			"unknown extends value %q (expected %s, %s or %s)", fc.Extends, ExtendsDefault, ExtendsAggressive, ExtendsNone)
	}

	if k.Exists("variables.copyable_dependencies") {
		cfg.Variables.CopyableDependencies = fc.Variables.CopyableDependencies
	}
	if k.Exists("variables.copyable_dev_dependencies") {
		cfg.Variables.CopyableDevDependencies = fc.Variables.CopyableDevDependencies
	}

	for i, fr := range fc.Rules {
		kind, err := merge.ParseStrategyKind(fr.Merge)
		if err != nil {
			return rules.Config{}, errors.Wrapf(err, errors.ErrConfigValid, "rule %d (%s)", i, fr.Pattern)
		}
		cfg.Rules = append(cfg.Rules, rules.Rule{Pattern: fr.Pattern, Ignore: fr.Ignore, Merge: kind})
	}

	if fc.Aggressive {
		cfg = rules.MakeAggressive(cfg)
	}

	if err := cfg.Validate(); err != nil {
		return rules.Config{}, err
	}
	return cfg, nil
}

// envKey maps COPY_CONFIG_COPYABLE_DEV_DEPENDENCIES to
// variables.copyable_dev_dependencies. Other variables are ignored.
func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	switch key {
	case "copyable_dependencies", "copyable_dev_dependencies":
		return "variables." + key
	default:
		return ""
	}
}
