// Package config resolves cmakegen settings from flags, CMAKEGEN_*
// environment variables, an optional cmakegen.yml and built-in defaults,
// in that order of precedence.
package config

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/Ginoko/auto-generate-CMakeLists/internal/cmake"
	"github.com/Ginoko/auto-generate-CMakeLists/internal/filesystem"
	"github.com/Ginoko/auto-generate-CMakeLists/internal/generator"
	"github.com/Ginoko/auto-generate-CMakeLists/internal/language"
	"github.com/Ginoko/auto-generate-CMakeLists/internal/logger"
)

// FileName is the config file looked up in the working directory
const FileName = "cmakegen.yml"

// EnvPrefix prefixes every environment override, e.g. CMAKEGEN_STD
const EnvPrefix = "CMAKEGEN"

// Keys shared by flags, env and the config file
const (
	KeyRoot      = "root"
	KeyName      = "name"
	KeyLanguage  = "language"
	KeyStd       = "std"
	KeyOutput    = "output"
	KeyIgnore    = "ignore"
	KeyGitignore = "gitignore"
	KeyPlatform  = "platform"
	KeyDryRun    = "dry-run"
	KeyDiff      = "diff"
	KeyLogLevel  = "log-level"
)

// Platform values
const (
	PlatformAuto    = "auto"
	PlatformWindows = "windows"
	PlatformPosix   = "posix"
)

// Config holds the resolved settings for one run
type Config struct {
	Root      string   `yaml:"root"`
	Name      string   `yaml:"name,omitempty"`
	Language  string   `yaml:"language"`
	Std       string   `yaml:"std"`
	Output    string   `yaml:"output"`
	Ignore    []string `yaml:"ignore"`
	Gitignore bool     `yaml:"gitignore"`
	Platform  string   `yaml:"platform"`
	LogLevel  string   `yaml:"log-level"`

	DryRun bool `yaml:"-"`
	Diff   bool `yaml:"-"`
}

// Default returns a config with the built-in defaults
func Default() *Config {
	return &Config{
		Root:     ".",
		Language: language.C.String(),
		Std:      "90",
		Output:   cmake.FileName,
		Ignore:   append([]string(nil), filesystem.DefaultIgnoreList...),
		Platform: PlatformAuto,
		LogLevel: "warn",
	}
}

// New returns a viper instance with defaults and environment overrides
// wired up. Flags are bound by the caller.
func New() *viper.Viper {
	v := viper.New()

	d := Default()
	v.SetDefault(KeyRoot, d.Root)
	v.SetDefault(KeyName, d.Name)
	v.SetDefault(KeyLanguage, d.Language)
	v.SetDefault(KeyStd, d.Std)
	v.SetDefault(KeyOutput, d.Output)
	v.SetDefault(KeyIgnore, d.Ignore)
	v.SetDefault(KeyGitignore, d.Gitignore)
	v.SetDefault(KeyPlatform, d.Platform)
	v.SetDefault(KeyLogLevel, d.LogLevel)
	v.SetDefault(KeyDryRun, false)
	v.SetDefault(KeyDiff, false)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	return v
}

// ReadFile merges a config file into v. With an empty path, cmakegen.yml
// in the working directory is used if present. An explicit path must exist.
func ReadFile(v *viper.Viper, path string) error {
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("reading config file %s: %w", path, err)
		}
		return nil
	}

	v.SetConfigName(strings.TrimSuffix(FileName, ".yml"))
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("reading %s: %w", FileName, err)
	}
	return nil
}

// Load extracts and validates a Config from v
func Load(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		Root:      v.GetString(KeyRoot),
		Name:      v.GetString(KeyName),
		Language:  v.GetString(KeyLanguage),
		Std:       v.GetString(KeyStd),
		Output:    v.GetString(KeyOutput),
		Ignore:    stringList(v, KeyIgnore),
		Gitignore: v.GetBool(KeyGitignore),
		Platform:  strings.ToLower(v.GetString(KeyPlatform)),
		LogLevel:  strings.ToLower(v.GetString(KeyLogLevel)),
		DryRun:    v.GetBool(KeyDryRun),
		Diff:      v.GetBool(KeyDiff),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the values that have a fixed set of choices
func (c *Config) Validate() error {
	switch c.Platform {
	case PlatformAuto, PlatformWindows, PlatformPosix:
	default:
		return &ValidationError{
			Field:      KeyPlatform,
			Message:    fmt.Sprintf("unknown platform %q", c.Platform),
			Suggestion: "use auto, windows or posix",
		}
	}
	if c.Output == "" {
		return &ValidationError{Field: KeyOutput, Message: "output path is empty"}
	}
	if _, err := parseLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

// LogLevel resolves the log-level setting of v. It is read before the rest
// of the config so the logger exists while the config is loaded.
func LogLevel(v *viper.Viper) (logger.Level, error) {
	return parseLevel(v.GetString(KeyLogLevel))
}

func parseLevel(name string) (logger.Level, error) {
	level, err := logger.ParseLevel(name)
	if err != nil {
		return level, &ValidationError{
			Field:      KeyLogLevel,
			Message:    err.Error(),
			Suggestion: "use debug, info, warn, error or silent",
		}
	}
	return level, nil
}

// stringList reads a list setting. Flags, defaults and YAML sequences
// arrive as slices; environment variables and YAML scalars arrive as one
// string and are split on commas, the same way --ignore is.
func stringList(v *viper.Viper, key string) []string {
	raw, ok := v.Get(key).(string)
	if !ok {
		return v.GetStringSlice(key)
	}

	list := []string{}
	for _, item := range strings.Split(raw, ",") {
		if item = strings.TrimSpace(item); item != "" {
			list = append(list, item)
		}
	}
	return list
}

// Standard validates the language/std pair
func (c *Config) Standard() (language.Standard, error) {
	return language.New(c.Language, c.Std)
}

// Separator resolves the path convention. "auto" follows the running OS.
func (c *Config) Separator() filesystem.Separator {
	switch c.Platform {
	case PlatformWindows:
		return filesystem.BackslashSeparator
	case PlatformPosix:
		return filesystem.SlashSeparator
	default:
		return filesystem.SeparatorFor(runtime.GOOS)
	}
}

// Save writes cfg to path on fs as YAML. The file is replaced atomically.
func Save(ctx context.Context, fs afero.Fs, path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	op := &generator.WriteFileOp{Fs: fs, Path: path, Content: data, Mode: 0644}
	if err := op.Validate(ctx); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}
	if err := op.Execute(ctx); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}
	return nil
}

// ValidationError describes an invalid setting
type ValidationError struct {
	Field      string // Setting name, e.g. "platform"
	Message    string
	Suggestion string // Optional
}

// Error returns a formatted error message
func (e *ValidationError) Error() string {
	msg := fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
	if e.Suggestion != "" {
		msg += fmt.Sprintf(". Suggestion: %s", e.Suggestion)
	}
	return msg
}
