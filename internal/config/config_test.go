package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
)

// resetViper clears all viper state between tests to avoid cross-contamination.
func resetViper() {
	viper.Reset()
}

func TestLoad_Defaults(t *testing.T) {
	resetViper()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned unexpected error: %v", err)
	}

	tests := []struct {
		name string
		got  any
		want any
	}{
		{"PipPath", cfg.PipPath, "pip"},
		{"PipCompilePath", cfg.PipCompilePath, "pip-compile"},
		{"PipSyncPath", cfg.PipSyncPath, "pip-sync"},
		{"PythonPath", cfg.PythonPath, "python3"},
		{"Verbose", cfg.Verbose, false},
		{"EventLog", cfg.EventLog, ""},
		{"ExactRemove", cfg.ExactRemove, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("%s = %v, want %v", tt.name, tt.got, tt.want)
			}
		})
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	tests := []struct {
		name   string
		envKey string
		envVal string
		field  func(Config) any
		want   any
	}{
		{
			name:   "pip_path",
			envKey: "NDM_PIP_PATH",
			envVal: "/opt/py/bin/pip",
			field:  func(c Config) any { return c.PipPath },
			want:   "/opt/py/bin/pip",
		},
		{
			name:   "pip_compile_path",
			envKey: "NDM_PIP_COMPILE_PATH",
			envVal: "/opt/py/bin/pip-compile",
			field:  func(c Config) any { return c.PipCompilePath },
			want:   "/opt/py/bin/pip-compile",
		},
		{
			name:   "python_path",
			envKey: "NDM_PYTHON_PATH",
			envVal: "python3.12",
			field:  func(c Config) any { return c.PythonPath },
			want:   "python3.12",
		},
		{
			name:   "verbose",
			envKey: "NDM_VERBOSE",
			envVal: "true",
			field:  func(c Config) any { return c.Verbose },
			want:   true,
		},
		{
			name:   "exact_remove",
			envKey: "NDM_EXACT_REMOVE",
			envVal: "true",
			field:  func(c Config) any { return c.ExactRemove },
			want:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetViper()
			// Set env prefix so NDM_* env vars map to config keys.
			viper.SetEnvPrefix("NDM")
			viper.AutomaticEnv()

			t.Setenv(tt.envKey, tt.envVal)

			cfg, err := Load()
			if err != nil {
				t.Fatalf("Load() returned unexpected error: %v", err)
			}
			got := tt.field(cfg)
			if got != tt.want {
				t.Errorf("%s: got %v (%T), want %v (%T)", tt.name, got, got, tt.want, tt.want)
			}
		})
	}
}

func TestLoad_ConfigFile(t *testing.T) {
	resetViper()

	path := filepath.Join(t.TempDir(), ".ndm.yaml")
	content := "pip_sync_path: /usr/local/bin/pip-sync\nevent_log: events.jsonl\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	viper.SetConfigFile(path)
	if err := viper.ReadInConfig(); err != nil {
		t.Fatalf("ReadInConfig() error: %v", err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned unexpected error: %v", err)
	}
	if cfg.PipSyncPath != "/usr/local/bin/pip-sync" {
		t.Errorf("PipSyncPath = %q", cfg.PipSyncPath)
	}
	if cfg.EventLog != "events.jsonl" {
		t.Errorf("EventLog = %q", cfg.EventLog)
	}
	if cfg.PipPath != "pip" {
		t.Errorf("PipPath = %q, want default", cfg.PipPath)
	}
}
