package config

import (
	"crypto/sha256"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/bashhack/gitcz/internal/errors"
)

// Config holds all gitcz application settings. Values are layered:
// defaults, then the YAML config file, then GITCZ_-prefixed environment
// variables, then command-line flags.
type Config struct {
	Fzf     FzfConfig     `koanf:"fzf"`
	Commit  CommitConfig  `koanf:"commit"`
	History HistoryConfig `koanf:"history"`
	Logging LoggingConfig `koanf:"logging"`
	UI      UIConfig      `koanf:"ui"`

	// Repository path, resolved to the current directory by Finalize
	RepoPath string `koanf:"repo_path"`

	// Build metadata
	VersionInfo VersionInfo `koanf:"-"`
}

// FzfConfig controls how the external fuzzy selector is invoked.
type FzfConfig struct {
	Binary string   `koanf:"binary" validate:"required"`
	Args   []string `koanf:"args"`
}

// CommitConfig provides defaults for the commit flags.
type CommitConfig struct {
	Body     bool `koanf:"body"`
	NoVerify bool `koanf:"no_verify"`
}

// HistoryConfig controls the scope history state file.
type HistoryConfig struct {
	Enabled bool   `koanf:"enabled"`
	Path    string `koanf:"path"`
}

// LoggingConfig controls debug logging.
type LoggingConfig struct {
	Debug bool   `koanf:"debug"`
	File  string `koanf:"file"`
}

// UIConfig controls terminal presentation.
type UIConfig struct {
	Color string `koanf:"color" validate:"oneof=auto always never"`
}

// VersionInfo contains build-time version metadata
type VersionInfo struct {
	Version string
	Commit  string
	Date    string
}

// Defaults returns a Config with default values.
func Defaults() *Config {
	return &Config{
		Fzf: FzfConfig{
			Binary: "fzf",
			Args:   []string{"--height=40%", "--reverse", "--prompt=commit type> "},
		},
		History: HistoryConfig{
			Enabled: true,
		},
		UI: UIConfig{
			Color: "auto",
		},
		VersionInfo: VersionInfo{
			Version: "dev",
			Commit:  "unknown",
			Date:    "unknown",
		},
	}
}

// Load reads configuration from the YAML file + environment variables.
// Loading order: defaults → YAML file → env vars (later overrides earlier).
//
// An explicitly given configPath must exist; the default path
// ($XDG_CONFIG_HOME/gitcz/gitcz.yaml) is optional.
func Load(configPath string) (*Config, error) {
	k := koanf.New(".")

	cfg := Defaults()

	if configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, errors.NewConfigError("config", configPath,
				errors.Wrap(errors.ErrInvalidConfiguration, fmt.Sprintf("loading config file: %v", err)))
		}
	} else if defaultPath := defaultConfigPath(); defaultPath != "" {
		// Missing default config is fine
		_ = k.Load(file.Provider(defaultPath), yaml.Parser())
	}

	// GITCZ_UI__COLOR → ui.color
	// Double underscore (__) separates nesting levels; a single underscore
	// within a level is preserved (e.g. no_verify).
	err := k.Load(env.Provider("GITCZ_", ".", func(s string) string {
		s = strings.TrimPrefix(s, "GITCZ_")
		s = strings.ToLower(s)
		s = strings.ReplaceAll(s, "__", ".")
		return s
	}), nil)
	if err != nil {
		return nil, errors.NewConfigError("env", nil,
			errors.Wrap(errors.ErrInvalidConfiguration, fmt.Sprintf("loading env vars: %v", err)))
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, errors.NewConfigError("config", nil,
			errors.Wrap(errors.ErrInvalidConfiguration, fmt.Sprintf("unmarshaling config: %v", err)))
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// validate applies the struct validation tags.
func validate(cfg *Config) error {
	v := validator.New(validator.WithRequiredStructEnabled())
	if err := v.Struct(cfg); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			return errors.NewConfigError(strings.ToLower(fe.Namespace()), fe.Value(),
				errors.Wrap(errors.ErrInvalidConfiguration, fmt.Sprintf("failed %q validation", fe.Tag())))
		}
		return errors.NewConfigError("config", nil, errors.Wrap(errors.ErrInvalidConfiguration, err.Error()))
	}
	return nil
}

// Finalize resolves the repository path and fills in derived defaults for
// the log file and history file locations.
func (c *Config) Finalize() error {
	if c.RepoPath == "" {
		var err error
		c.RepoPath, err = os.Getwd()
		if err != nil {
			return errors.NewConfigError("repoPath", "",
				errors.Wrap(errors.ErrInvalidConfiguration, fmt.Sprintf("failed to get current directory: %v", err)))
		}
	}

	absRepoPath, err := filepath.Abs(c.RepoPath)
	if err != nil {
		return errors.NewConfigError("repoPath", c.RepoPath,
			errors.Wrap(errors.ErrInvalidConfiguration, fmt.Sprintf("failed to resolve absolute path: %v", err)))
	}
	c.RepoPath = absRepoPath

	if c.Logging.File == "" {
		// Follow XDG Base Directory Specification
		dataDir := os.Getenv("XDG_DATA_HOME")
		if dataDir == "" {
			homeDir, err := os.UserHomeDir()
			if err == nil {
				dataDir = filepath.Join(homeDir, ".local", "share")
			} else {
				// Fallback to the temp directory if home dir can't be determined
				dataDir = os.TempDir()
			}
		}

		repoHash := fmt.Sprintf("%x", sha256OfString(c.RepoPath)[:8])
		c.Logging.File = filepath.Join(dataDir, "gitcz", "logs", fmt.Sprintf("gitcz-%s.log", repoHash))
	}

	if c.History.Path == "" {
		stateDir := os.Getenv("XDG_STATE_HOME")
		if stateDir == "" {
			homeDir, err := os.UserHomeDir()
			if err == nil {
				stateDir = filepath.Join(homeDir, ".local", "state")
			} else {
				stateDir = os.TempDir()
			}
		}
		c.History.Path = filepath.Join(stateDir, "gitcz", "scopes.json")
	}

	return nil
}

// ColorEnabled resolves the configured color mode to a concrete choice.
// "auto" honors the NO_COLOR convention.
func (c *Config) ColorEnabled() bool {
	switch c.UI.Color {
	case "always":
		return true
	case "never":
		return false
	default:
		return os.Getenv("NO_COLOR") == ""
	}
}

// defaultConfigPath returns the XDG location of the optional config file.
func defaultConfigPath() string {
	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configDir = filepath.Join(homeDir, ".config")
	}
	return filepath.Join(configDir, "gitcz", "gitcz.yaml")
}

// sha256OfString returns the SHA256 hash of a string
func sha256OfString(input string) []byte {
	hash := sha256.Sum256([]byte(input))
	return hash[:]
}
