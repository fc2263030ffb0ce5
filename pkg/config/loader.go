package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/bonsai/pkg/errors"
	"github.com/arthur-debert/bonsai/pkg/logging"
	"github.com/arthur-debert/bonsai/pkg/paths"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix prefixes every environment variable bonsai reads
const EnvPrefix = "BONSAI_"

// LoadOptions controls where configuration is read from
type LoadOptions struct {
	// Root is the absolute traversal root; its .bonsai.toml is loaded
	Root string

	// UserConfigPath overrides the user configuration file location
	UserConfigPath string

	// Overrides are applied after every other source. Keys are dotted
	// koanf paths such as "display.show_hidden".
	Overrides map[string]interface{}

	// Appends extend list values (filter.ignore, filter.include) instead of
	// replacing them
	Appends map[string][]string
}

// Load builds the configuration from defaults, the user file, the project
// file, the environment and the given overrides, in increasing precedence.
func Load(opts LoadOptions) (*Config, error) {
	logger := logging.GetLogger("config.loader")
	k := koanf.New(".")

	// 1. Load system defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to load defaults")
	}

	// 2. Load user config if it exists
	userPath := opts.UserConfigPath
	if userPath == "" {
		userPath = paths.UserConfigFile()
	}
	if err := loadFileIfExists(k, userPath); err != nil {
		return nil, err
	}

	// 3. Load project config if it exists
	if opts.Root != "" {
		if err := loadFileIfExists(k, paths.ProjectConfigFile(opts.Root)); err != nil {
			return nil, err
		}
	}

	// 4. Load env vars
	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load environment variables")
	}

	// 5. Apply command-line overrides
	if len(opts.Overrides) > 0 {
		if err := k.Load(confmap.Provider(opts.Overrides, "."), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to apply overrides")
		}
	}
	for key, values := range opts.Appends {
		if len(values) == 0 {
			continue
		}
		merged := append(stringsAt(k, key), values...)
		if err := k.Set(key, merged); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigLoad, "failed to extend %s", key)
		}
	}

	// 6. Unmarshal
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
	cfg.Root = opts.Root

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger.Debug().Str("config", cfg.String()).Msg("Configuration loaded")
	return &cfg, nil
}

// parserFor picks the koanf parser for a config file by extension.
// Anything that is not YAML is read as TOML.
func parserFor(path string) koanf.Parser {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return yaml.Parser()
	default:
		return toml.Parser()
	}
}

// loadFileIfExists merges a config file into k when it exists
func loadFileIfExists(k *koanf.Koanf, path string) error {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return errors.Wrapf(err, errors.ErrConfigLoad, "failed to stat config %s", path)
	}

	if err := k.Load(file.Provider(path), parserFor(path)); err != nil {
		return errors.Wrapf(err, errors.ErrConfigParse, "failed to load config from %s", path).
			WithDetail("path", path)
	}

	logger := logging.GetLogger("config.loader")
	logger.Debug().Str("path", path).Msg("Loaded config file")
	return nil
}

// envKey maps BONSAI_DISPLAY_SHOW_HIDDEN to display.show_hidden. Variables
// without a section (BONSAI_CONFIG) are skipped.
func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	if !strings.Contains(key, "_") {
		return ""
	}
	return strings.Replace(key, "_", ".", 1)
}

// stringsAt reads a list value that may still be a comma separated string
// when it came from the environment
func stringsAt(k *koanf.Koanf, key string) []string {
	switch v := k.Get(key).(type) {
	case string:
		if v == "" {
			return nil
		}
		return strings.Split(v, ",")
	default:
		return k.Strings(key)
	}
}
