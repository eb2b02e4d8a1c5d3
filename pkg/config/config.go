// Package config loads the settings shared by the command line tool and
// embedding applications: the attribute policy override, preview
// sanitising and output format. Sources are layered defaults, an optional
// JSON/YAML/TOML file, then command line flags.
package config

import (
	"context"
	"path/filepath"
	"slices"
	"strings"

	"github.com/goliatone/go-errors"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"

	"github.com/goliatone/go-formextras/pkg/logger"
	"github.com/goliatone/go-formextras/pkg/policy"
)

const delimiter = "."

// Output formats understood by the command line tool.
const (
	FormatTable = "table"
	FormatJSON  = "json"
	FormatHTML  = "html"
)

var validFormats = []string{FormatTable, FormatJSON, FormatHTML}

type Config struct {
	Policy  PolicyConfig  `koanf:"policy"`
	Preview PreviewConfig `koanf:"preview"`
	Output  OutputConfig  `koanf:"output"`
}

// PolicyConfig overrides the attribute denylist. A non-empty DisallowedKeys
// replaces the defaults; ExtraDisallowedKeys extends whichever list applies.
type PolicyConfig struct {
	DisallowedKeys      []string `koanf:"disallowed_keys"`
	ExtraDisallowedKeys []string `koanf:"extra_disallowed_keys"`
}

type PreviewConfig struct {
	Sanitize bool `koanf:"sanitize"`
}

type OutputConfig struct {
	Format string `koanf:"format"`
}

// Defaults returns the baseline configuration as a flat koanf map.
func Defaults() map[string]any {
	return map[string]any{
		"policy.disallowed_keys":       []string{},
		"policy.extra_disallowed_keys": []string{},
		"preview.sanitize":             true,
		"output.format":                FormatTable,
	}
}

// Validate rejects unknown output formats.
func (c Config) Validate() error {
	if !slices.Contains(validFormats, c.Output.Format) {
		return errors.New("invalid output format", errors.CategoryValidation).
			WithTextCode("INVALID_OUTPUT_FORMAT").
			WithMetadata(map[string]any{
				"format":        c.Output.Format,
				"valid_formats": validFormats,
			})
	}
	return nil
}

// BuildPolicy turns the policy section into a policy.Policy.
func (c Config) BuildPolicy() *policy.Policy {
	var opts []policy.Option
	if len(c.Policy.DisallowedKeys) > 0 {
		opts = append(opts, policy.WithDisallowedKeys(c.Policy.DisallowedKeys...))
	}
	if len(c.Policy.ExtraDisallowedKeys) > 0 {
		opts = append(opts, policy.WithExtraDisallowedKeys(c.Policy.ExtraDisallowedKeys...))
	}
	return policy.New(opts...)
}

// Loader assembles a Config from its sources.
type Loader struct {
	filePath string
	flags    *pflag.FlagSet
	flagKeys map[string]string
	logger   logger.Logger
}

// LoaderOption configures a Loader.
type LoaderOption func(*Loader)

// WithFile adds a configuration file; the parser follows the extension and
// defaults to JSON.
func WithFile(path string) LoaderOption {
	return func(l *Loader) {
		l.filePath = strings.TrimSpace(path)
	}
}

// WithFlags layers changed flags from fs on top of the other sources.
// flagKeys maps flag names onto config keys; unmapped flags are ignored.
func WithFlags(fs *pflag.FlagSet, flagKeys map[string]string) LoaderOption {
	return func(l *Loader) {
		l.flags = fs
		l.flagKeys = flagKeys
	}
}

func WithLogger(lgr logger.Logger) LoaderOption {
	return func(l *Loader) {
		if lgr != nil {
			l.logger = lgr
		}
	}
}

func NewLoader(options ...LoaderOption) *Loader {
	l := &Loader{logger: logger.Nop()}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(l)
	}
	return l
}

// Load reads every configured source in order and validates the result.
func (l *Loader) Load(ctx context.Context) (Config, error) {
	if err := ctx.Err(); err != nil {
		return Config{}, err
	}

	k := koanf.New(delimiter)

	l.logger.Debug("loading defaults")
	if err := k.Load(confmap.Provider(Defaults(), delimiter), nil); err != nil {
		return Config{}, errors.Wrap(err, errors.CategoryOperation, "failed to load default values").
			WithTextCode("DEFAULT_VALUES_LOAD_FAILED")
	}

	if l.filePath != "" {
		l.logger.Debug("loading file %s", l.filePath)
		if err := k.Load(file.Provider(l.filePath), parserFor(l.filePath)); err != nil {
			return Config{}, errors.Wrap(err, errors.CategoryOperation, "failed to load configuration from file").
				WithTextCode("FILE_LOAD_FAILED").
				WithMetadata(map[string]any{
					"filepath": l.filePath,
				})
		}
	}

	if l.flags != nil {
		l.logger.Debug("loading flags")
		provider := posflag.ProviderWithFlag(l.flags, delimiter, k, func(f *pflag.Flag) (string, any) {
			key, ok := l.flagKeys[f.Name]
			if !ok {
				return "", nil
			}
			return key, posflag.FlagVal(l.flags, f)
		})
		if err := k.Load(provider, nil); err != nil {
			return Config{}, errors.Wrap(err, errors.CategoryOperation, "failed to load configuration from posix flags").
				WithTextCode("FLAGS_LOAD_FAILED")
		}
	}

	var cfg Config
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return Config{}, errors.Wrap(err, errors.CategoryOperation, "failed to decode configuration").
			WithTextCode("DECODE_FAILED")
	}
	cfg.Output.Format = strings.ToLower(strings.TrimSpace(cfg.Output.Format))

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func parserFor(path string) koanf.Parser {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return yaml.Parser()
	case ".toml":
		return toml.Parser()
	default:
		return json.Parser()
	}
}
