package config

import (
	_ "embed"
	stderrors "errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/richconsole/pkg/errors"
	"github.com/arthur-debert/richconsole/pkg/logging"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix prefixes every environment variable read by Load, e.g.
// RICHCONSOLE_RENDER_MERGE_CODES=false.
const EnvPrefix = "RICHCONSOLE_"

// AppName names the XDG sub-directories used for config and state.
const AppName = "richconsole"

// Output formats accepted by render.format.
const (
	FormatAuto = "auto"
	FormatTerm = "term"
	FormatText = "text"
	FormatHTML = "html"
)

//go:embed embedded/defaults.toml
var defaultConfig []byte

// rawBytesProvider implements koanf provider for raw bytes
type rawBytesProvider struct{ bytes []byte }

func (r *rawBytesProvider) ReadBytes() ([]byte, error) { return r.bytes, nil }
func (r *rawBytesProvider) Read() (map[string]interface{}, error) {
	return nil, stderrors.New("not implemented")
}

// Config is the resolved configuration.
type Config struct {
	Render  Render  `koanf:"render"`
	Palette Palette `koanf:"palette"`
}

// Render controls how trees are written out.
type Render struct {
	MergeCodes bool   `koanf:"merge_codes"`
	Format     string `koanf:"format"`
}

// Palette selects the colour sources imported at startup.
type Palette struct {
	Named  bool     `koanf:"named"`
	Gookit bool     `koanf:"gookit"`
	Basic  bool     `koanf:"basic"`
	Files  []string `koanf:"files"`
}

// Options tune Load.
type Options struct {
	// ConfigFile replaces the XDG search. It must exist.
	ConfigFile string
	// Overrides are applied last, keyed by dotted path (render.format).
	Overrides map[string]interface{}
}

// DefaultContent returns the embedded default configuration.
func DefaultContent() string {
	return string(defaultConfig)
}

// Load resolves the configuration from, in increasing precedence: the
// embedded defaults, the user config file, RICHCONSOLE_* environment
// variables and opts.Overrides.
func Load(opts Options) (*Config, error) {
	logger := logging.GetLogger("config")
	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to load defaults")
	}

	// 2. User config file
	path := opts.ConfigFile
	if path == "" {
		path = findUserConfig()
	} else if _, err := os.Stat(path); err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigLoad, "config file %s not found", path).
			WithDetail("path", path)
	}
	if path != "" {
		parser, err := parserFor(path)
		if err != nil {
			return nil, err
		}
		if err := k.Load(file.Provider(path), parser); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to load config from %s", path).
				WithDetail("path", path)
		}
		logger.Debug().Str("path", path).Msg("Loaded config file")
	}

	// 3. Env vars
	err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
		return strings.Replace(key, "_", ".", 1)
	}), nil)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load env vars")
	}

	// 4. Flag overrides
	if len(opts.Overrides) > 0 {
		if err := k.Load(confmap.Provider(opts.Overrides, "."), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to apply overrides")
		}
	}

	// 5. Unmarshal
	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToSliceHookFunc(","),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal configuration")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks values that the decoder cannot.
func (c *Config) Validate() error {
	switch c.Render.Format {
	case FormatAuto, FormatTerm, FormatText, FormatHTML:
	default:
		return errors.Newf(errors.ErrConfigValid, "render.format must be one of auto, term, text, html; got %q", c.Render.Format).
			WithDetail("key", "render.format")
	}
	for _, f := range c.Palette.Files {
		if strings.TrimSpace(f) == "" {
			return errors.New(errors.ErrConfigValid, "palette.files contains an empty path").
				WithDetail("key", "palette.files")
		}
	}
	return nil
}

func findUserConfig() string {
	for _, name := range []string{"config.toml", "config.yaml", "config.yml"} {
		if path, err := xdg.SearchConfigFile(filepath.Join(AppName, name)); err == nil {
			return path
		}
	}
	return ""
}

func parserFor(path string) (koanf.Parser, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return toml.Parser(), nil
	case ".yaml", ".yml":
		return yaml.Parser(), nil
	}
	return nil, errors.Newf(errors.ErrConfigLoad, "unsupported config format %s", path).
		WithDetail("path", path)
}
