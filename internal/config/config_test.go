package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bashhack/gitcz/internal/errors"
)

func TestDefaults(t *testing.T) {
	t.Parallel()

	cfg := Defaults()

	if cfg.Fzf.Binary != "fzf" {
		t.Errorf("expected fzf binary default, got %q", cfg.Fzf.Binary)
	}
	if cfg.Commit.Body || cfg.Commit.NoVerify {
		t.Error("body and no-verify must default to off")
	}
	if !cfg.History.Enabled {
		t.Error("history must default to enabled")
	}
	if cfg.UI.Color != "auto" {
		t.Errorf("expected color mode auto, got %q", cfg.UI.Color)
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "gitcz.yaml")
	content := `
fzf:
  binary: sk
  args: ["--reverse"]
commit:
  no_verify: true
ui:
  color: never
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Fzf.Binary != "sk" {
		t.Errorf("expected binary from file, got %q", cfg.Fzf.Binary)
	}
	if len(cfg.Fzf.Args) != 1 || cfg.Fzf.Args[0] != "--reverse" {
		t.Errorf("expected args from file, got %v", cfg.Fzf.Args)
	}
	if !cfg.Commit.NoVerify {
		t.Error("expected no_verify from file")
	}
	if cfg.UI.Color != "never" {
		t.Errorf("expected color never, got %q", cfg.UI.Color)
	}
	// Untouched values keep their defaults
	if cfg.Commit.Body {
		t.Error("expected body default to survive partial config")
	}
}

func TestLoadMissingExplicitFileFails(t *testing.T) {
	t.Parallel()

	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if !errors.Is(err, errors.ErrInvalidConfiguration) {
		t.Errorf("expected ErrInvalidConfiguration, got %v", err)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir()) // keep the real user config out
	t.Setenv("GITCZ_UI__COLOR", "never")
	t.Setenv("GITCZ_COMMIT__NO_VERIFY", "true")
	t.Setenv("GITCZ_FZF__BINARY", "sk")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.UI.Color != "never" {
		t.Errorf("expected GITCZ_UI__COLOR to map to ui.color, got %q", cfg.UI.Color)
	}
	if !cfg.Commit.NoVerify {
		t.Error("expected GITCZ_COMMIT__NO_VERIFY to map to commit.no_verify")
	}
	if cfg.Fzf.Binary != "sk" {
		t.Errorf("expected GITCZ_FZF__BINARY to map to fzf.binary, got %q", cfg.Fzf.Binary)
	}
}

func TestLoadRejectsInvalidColorMode(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("GITCZ_UI__COLOR", "sometimes")

	_, err := Load("")
	if !errors.Is(err, errors.ErrInvalidConfiguration) {
		t.Fatalf("expected ErrInvalidConfiguration, got %v", err)
	}

	var cfgErr *errors.ConfigError
	if !errors.As(err, &cfgErr) {
		t.Fatal("expected a *errors.ConfigError")
	}
	if !strings.Contains(strings.ToLower(cfgErr.Parameter), "color") {
		t.Errorf("expected the failing parameter to name color, got %q", cfgErr.Parameter)
	}
}

func TestFinalize(t *testing.T) {
	dataDir := t.TempDir()
	stateDir := t.TempDir()
	t.Setenv("XDG_DATA_HOME", dataDir)
	t.Setenv("XDG_STATE_HOME", stateDir)

	cfg := Defaults()
	if err := cfg.Finalize(); err != nil {
		t.Fatalf("Finalize() failed: %v", err)
	}

	if !filepath.IsAbs(cfg.RepoPath) {
		t.Errorf("expected absolute repo path, got %q", cfg.RepoPath)
	}
	if !strings.HasPrefix(cfg.Logging.File, dataDir) {
		t.Errorf("expected log file under XDG_DATA_HOME, got %q", cfg.Logging.File)
	}
	if !strings.HasSuffix(cfg.Logging.File, ".log") {
		t.Errorf("expected .log suffix, got %q", cfg.Logging.File)
	}
	if cfg.History.Path != filepath.Join(stateDir, "gitcz", "scopes.json") {
		t.Errorf("unexpected history path: %q", cfg.History.Path)
	}
}

func TestFinalizeKeepsExplicitPaths(t *testing.T) {
	t.Parallel()

	cfg := Defaults()
	cfg.Logging.File = "/tmp/custom.log"
	cfg.History.Path = "/tmp/custom-scopes.json"

	if err := cfg.Finalize(); err != nil {
		t.Fatalf("Finalize() failed: %v", err)
	}
	if cfg.Logging.File != "/tmp/custom.log" {
		t.Errorf("explicit log file was overridden: %q", cfg.Logging.File)
	}
	if cfg.History.Path != "/tmp/custom-scopes.json" {
		t.Errorf("explicit history path was overridden: %q", cfg.History.Path)
	}
}

func TestColorEnabled(t *testing.T) {
	tests := []struct {
		name    string
		mode    string
		noColor string
		want    bool
	}{
		{"always wins over NO_COLOR", "always", "1", true},
		{"never", "never", "", false},
		{"auto with NO_COLOR set", "auto", "1", false},
		{"auto without NO_COLOR", "auto", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.noColor == "" {
				t.Setenv("NO_COLOR", "")
				os.Unsetenv("NO_COLOR")
			} else {
				t.Setenv("NO_COLOR", tt.noColor)
			}

			cfg := Defaults()
			cfg.UI.Color = tt.mode
			if got := cfg.ColorEnabled(); got != tt.want {
				t.Errorf("ColorEnabled() with mode %q = %v, want %v", tt.mode, got, tt.want)
			}
		})
	}
}
