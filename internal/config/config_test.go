package config

import (
	"os"
	"testing"
)

func validConfig() Config {
	return Config{
		Paths: PathsConfig{
			Input:     "data/input",
			Downloads: "downloads",
		},
		Whisper: WhisperConfig{
			BinaryPath: "./whisper",
			ModelPath:  "models/test.bin",
			Language:   "en",
		},
		Gemini: GeminiConfig{
			APIKeys: []string{"key-1"},
		},
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{
			name:    "valid config",
			mutate:  func(c *Config) {},
			wantErr: false,
		},
		{
			name:    "missing input path",
			mutate:  func(c *Config) { c.Paths.Input = "" },
			wantErr: true,
		},
		{
			name:    "missing downloads path",
			mutate:  func(c *Config) { c.Paths.Downloads = "" },
			wantErr: true,
		},
		{
			name:    "missing whisper model",
			mutate:  func(c *Config) { c.Whisper.ModelPath = "" },
			wantErr: true,
		},
		{
			name:    "missing api keys",
			mutate:  func(c *Config) { c.Gemini.APIKeys = nil },
			wantErr: true,
		},
		{
			name:    "negative overlap",
			mutate:  func(c *Config) { c.Paginate.Overlap = -1 },
			wantErr: true,
		},
		{
			name: "overlap not smaller than chunk size",
			mutate: func(c *Config) {
				c.Paginate.ChunkSize = 100
				c.Paginate.Overlap = 100
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateDefaults(t *testing.T) {
	cfg := validConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}

	if cfg.Batch.Size != 10 {
		t.Errorf("Batch.Size = %d, want 10", cfg.Batch.Size)
	}
	if cfg.Paginate.ChunkSize != 4000 {
		t.Errorf("Paginate.ChunkSize = %d, want 4000", cfg.Paginate.ChunkSize)
	}
	if cfg.Gemini.Model != "gemini-2.5-flash" {
		t.Errorf("Gemini.Model = %q, want gemini-2.5-flash", cfg.Gemini.Model)
	}
	if cfg.Gemini.ContextWindow != 5000 {
		t.Errorf("Gemini.ContextWindow = %d, want 5000", cfg.Gemini.ContextWindow)
	}
	if cfg.Performance.MaxConcurrent != 1 {
		t.Errorf("Performance.MaxConcurrent = %d, want 1", cfg.Performance.MaxConcurrent)
	}
}

func TestLoad(t *testing.T) {
	// Create a temporary config file
	tmpfile, err := os.CreateTemp("", "config-*.yaml")
	if err != nil {
		t.Fatal(err)
	}
	defer os.Remove(tmpfile.Name())

	content := `
paths:
  input: "data/input"
  downloads: "downloads"
  prompts: "prompts"

batch:
  size: 5
  allow_playlist: false

whisper:
  binary_path: "./whisper"
  model_path: "models/test.bin"
  language: "en"
  vad_filter: true

gemini:
  model: "gemini-2.5-flash"
  api_keys:
    - "key-1"
    - "key-2"
  context_window: 5000

paginate:
  chunk_size: 4000

logging:
  level: "info"
  format: "text"
`

	if _, err := tmpfile.Write([]byte(content)); err != nil {
		t.Fatal(err)
	}
	if err := tmpfile.Close(); err != nil {
		t.Fatal(err)
	}

	// Test loading
	cfg, err := Load(tmpfile.Name())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Batch.Size != 5 {
		t.Errorf("Batch.Size = %d, want 5", cfg.Batch.Size)
	}
	if cfg.Paths.Input != "data/input" {
		t.Errorf("Input = %v, want %v", cfg.Paths.Input, "data/input")
	}
	if !cfg.Whisper.VADFilter {
		t.Error("Whisper.VADFilter = false, want true")
	}
	if len(cfg.Gemini.APIKeys) != 2 {
		t.Errorf("len(Gemini.APIKeys) = %d, want 2", len(cfg.Gemini.APIKeys))
	}
}

func TestLoadInvalidFile(t *testing.T) {
	_, err := Load("nonexistent.yaml")
	if err == nil {
		t.Error("Load() should return error for nonexistent file")
	}
}
