package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/vvka-141/wppkg/pkg/wppkg"
)

// ErrConfigNotFound is returned when the config file does not exist.
// Callers can check for this with errors.Is(err, config.ErrConfigNotFound).
var ErrConfigNotFound = errors.New("config file not found")

const (
	ConfigFileName = "wppkg.yaml"
	EnvFileName    = ".env"

	EnvParseReadme = "WPPKG_PARSE_README"
	EnvType        = "WPPKG_TYPE"
	EnvOutput      = "WPPKG_OUTPUT"
	EnvLogFormat   = "WPPKG_LOG_FORMAT"
)

// Output formats for inspect results.
const (
	OutputText = "text"
	OutputJSON = "json"
	OutputYAML = "yaml"
)

// Log formats.
const (
	LogFormatText = "text"
	LogFormatJSON = "json"
)

// ProjectConfig mirrors wppkg.yaml. Unset fields keep their defaults.
type ProjectConfig struct {
	ParseReadme *bool  `yaml:"parse_readme,omitempty"`
	Type        string `yaml:"type,omitempty"`
	Output      string `yaml:"output,omitempty"`
	LogFormat   string `yaml:"log_format,omitempty"`
}

// Load reads wppkg.yaml from dir.
func Load(dir string) (*ProjectConfig, error) {
	configPath := filepath.Join(dir, ConfigFileName)
	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	var cfg ProjectConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %v: %w", ConfigFileName, err, wppkg.ErrInvalidConfig)
	}
	return &cfg, nil
}

// Settings is the effective configuration after all sources are applied.
type Settings struct {
	Options   wppkg.Options
	Output    string
	LogFormat string
}

// Defaults returns the built-in settings.
func Defaults() Settings {
	return Settings{
		Options:   wppkg.DefaultOptions(),
		Output:    OutputText,
		LogFormat: LogFormatText,
	}
}

// Overrides carries explicitly set CLI flags. Nil means not set.
type Overrides struct {
	ParseReadme *bool
	Type        *string
	Output      *string
	LogFormat   *string
}

// Resolve merges configuration sources.
// Priority (lowest to highest): defaults < wppkg.yaml < .env < environment < flags.
// A missing wppkg.yaml or .env is not an error.
func Resolve(dir string, flags Overrides) (Settings, error) {
	return resolve(dir, flags, os.LookupEnv)
}

func resolve(dir string, flags Overrides, lookupEnv func(string) (string, bool)) (Settings, error) {
	s := Defaults()
	typ := ""

	projectCfg, err := Load(dir)
	if err != nil && !errors.Is(err, ErrConfigNotFound) {
		return s, err
	}
	if projectCfg != nil {
		if projectCfg.ParseReadme != nil {
			s.Options.ParseReadme = *projectCfg.ParseReadme
		}
		typ = pick(typ, projectCfg.Type)
		s.Output = pick(s.Output, projectCfg.Output)
		s.LogFormat = pick(s.LogFormat, projectCfg.LogFormat)
	}

	env, err := readEnv(dir, lookupEnv)
	if err != nil {
		return s, err
	}
	if v, ok := env(EnvParseReadme); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return s, fmt.Errorf("%s=%q is not a boolean: %w", EnvParseReadme, v, wppkg.ErrInvalidConfig)
		}
		s.Options.ParseReadme = b
	}
	if v, ok := env(EnvType); ok {
		typ = v
	}
	if v, ok := env(EnvOutput); ok {
		s.Output = v
	}
	if v, ok := env(EnvLogFormat); ok {
		s.LogFormat = v
	}

	if flags.ParseReadme != nil {
		s.Options.ParseReadme = *flags.ParseReadme
	}
	if flags.Type != nil {
		typ = *flags.Type
	}
	if flags.Output != nil {
		s.Output = *flags.Output
	}
	if flags.LogFormat != nil {
		s.LogFormat = *flags.LogFormat
	}

	s.Options.Type, err = wppkg.ParsePackageType(typ)
	if err != nil {
		return s, err
	}
	return s, s.Validate()
}

// Validate checks every field holds a known value.
func (s Settings) Validate() error {
	var errs []error
	if err := s.Options.Validate(); err != nil {
		errs = append(errs, err)
	}
	switch s.Output {
	case OutputText, OutputJSON, OutputYAML:
	default:
		errs = append(errs, fmt.Errorf("output %q must be text, json or yaml: %w", s.Output, wppkg.ErrInvalidConfig))
	}
	switch s.LogFormat {
	case LogFormatText, LogFormatJSON:
	default:
		errs = append(errs, fmt.Errorf("log format %q must be text or json: %w", s.LogFormat, wppkg.ErrInvalidConfig))
	}
	return errors.Join(errs...)
}

// readEnv returns a lookup where process environment variables shadow
// values from dir/.env, as godotenv.Load would.
func readEnv(dir string, lookupEnv func(string) (string, bool)) (func(string) (string, bool), error) {
	fileVars, err := godotenv.Read(filepath.Join(dir, EnvFileName))
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read %s: %v: %w", EnvFileName, err, wppkg.ErrInvalidConfig)
		}
		fileVars = map[string]string{}
	}

	return func(key string) (string, bool) {
		if v, ok := lookupEnv(key); ok && v != "" {
			return v, true
		}
		v, ok := fileVars[key]
		return v, ok && v != ""
	}, nil
}

func pick(current, override string) string {
	if override != "" {
		return override
	}
	return current
}
