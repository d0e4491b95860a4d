package config

import (
	"os"
	"reflect"
	"regexp"
	"strconv"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/husi/advent-of-tdd/pkg/errors"
	"github.com/husi/advent-of-tdd/pkg/logging"
	"github.com/husi/advent-of-tdd/pkg/paths"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix marks environment variables read as configuration
const EnvPrefix = "ADVENT_"

// Options selects the layers Load reads
type Options struct {
	// ConfigFile replaces the project file lookup when set. It must exist.
	ConfigFile string

	// WorkDir is searched for advent.toml. Defaults to the current directory.
	WorkDir string

	// Overrides are applied last, keyed by dotted path, e.g. "output.format"
	Overrides map[string]interface{}

	// Paths locates the user config. Defaults to paths.New().
	Paths paths.Paths
}

// Load builds the effective configuration. Later layers win:
//
//  1. embedded defaults
//  2. user file ($XDG_CONFIG_HOME/advent/config.toml)
//  3. project file (./advent.toml, or Options.ConfigFile)
//  4. ADVENT_* environment variables
//  5. Options.Overrides
func Load(opts Options) (*Config, error) {
	logger := logging.GetLogger("config")
	if opts.Paths == nil {
		opts.Paths = paths.New()
	}

	// 1. Defaults
	k, err := defaultsKoanf()
	if err != nil {
		return nil, err
	}

	// 2. User config if it exists
	if userPath := opts.Paths.UserConfigPath(); userPath != "" && fileExists(userPath) {
		if err := loadFile(k, userPath); err != nil {
			return nil, err
		}
		logger.Debug().Str("path", userPath).Msg("Loaded user config")
	}

	// 3. Project config
	projectPath := opts.ConfigFile
	if projectPath == "" {
		if candidate := opts.Paths.ProjectConfigPath(opts.WorkDir); fileExists(candidate) {
			projectPath = candidate
		}
	}
	if projectPath != "" {
		if err := loadFile(k, projectPath); err != nil {
			return nil, err
		}
		logger.Debug().Str("path", projectPath).Msg("Loaded project config")
	}

	// 4. Env vars
	err = k.Load(env.Provider(EnvPrefix, ".", envKey), nil)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load env vars")
	}

	// 5. Overrides
	if len(opts.Overrides) > 0 {
		if err := k.Load(confmap.Provider(opts.Overrides, "."), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to apply overrides")
		}
	}

	cfg, err := unmarshal(k)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// defaultsKoanf returns a koanf instance holding only the embedded defaults
func defaultsKoanf() (*koanf.Koanf, error) {
	k := koanf.New(".")
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to load defaults")
	}
	return k, nil
}

// envKey maps ADVENT_OUTPUT_FORMAT to output.format. Directory overrides
// owned by pkg/paths are not configuration keys.
func envKey(s string) string {
	switch s {
	case paths.EnvConfigDir, paths.EnvStateDir:
		return ""
	}
	return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "_", ".")
}

func loadFile(k *koanf.Koanf, path string) error {
	data, err := file.Provider(path).ReadBytes()
	if err != nil {
		return errors.Wrapf(err, errors.ErrConfigLoad, "failed to read config from %s", path)
	}
	if err := k.Load(&rawBytesProvider{bytes: data}, toml.Parser()); err != nil {
		return errors.Wrapf(err, errors.ErrConfigParse, "failed to parse config %s", path)
	}
	return nil
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

func unmarshal(k *koanf.Koanf) (*Config, error) {
	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				puzzleKeyHookFunc(),
				mapstructure.StringToTimeDurationHookFunc(),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal configuration")
	}
	return &cfg, nil
}

var dayKeyPattern = regexp.MustCompile(`^(?i:day)?0*(\d+)$`)

// puzzleKeyHookFunc normalises the keys of the puzzles table so "5", "day5"
// and "DAY05" all address day05
func puzzleKeyHookFunc() mapstructure.DecodeHookFunc {
	target := reflect.TypeOf(map[string]map[string]int64{})
	return func(f reflect.Type, t reflect.Type, data interface{}) (interface{}, error) {
		if t != target {
			return data, nil
		}
		m, ok := data.(map[string]interface{})
		if !ok {
			return data, nil
		}
		normalised := make(map[string]interface{}, len(m))
		for key, v := range m {
			if match := dayKeyPattern.FindStringSubmatch(key); match != nil {
				if day, err := strconv.Atoi(match[1]); err == nil {
					key = PuzzleKey(day)
				}
			}
			normalised[key] = v
		}
		return normalised, nil
	}
}
