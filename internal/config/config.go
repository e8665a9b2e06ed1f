package config

import "fmt"

type Config struct {
	Paths       PathsConfig       `yaml:"paths"`
	Batch       BatchConfig       `yaml:"batch"`
	Whisper     WhisperConfig     `yaml:"whisper"`
	Gemini      GeminiConfig      `yaml:"gemini"`
	Paginate    PaginateConfig    `yaml:"paginate"`
	Caption     CaptionConfig     `yaml:"caption"`
	Export      ExportConfig      `yaml:"export"`
	Logging     LoggingConfig     `yaml:"logging"`
	Performance PerformanceConfig `yaml:"performance"`
}

type PathsConfig struct {
	Input     string `yaml:"input"`
	Downloads string `yaml:"downloads"`
	Prompts   string `yaml:"prompts"`
}

type BatchConfig struct {
	Size          int  `yaml:"size"`
	AllowPlaylist bool `yaml:"allow_playlist"`
}

type WhisperConfig struct {
	BinaryPath string `yaml:"binary_path"`
	ModelPath  string `yaml:"model_path"`
	Language   string `yaml:"language"`
	Threads    int    `yaml:"threads"`
	VADFilter  bool   `yaml:"vad_filter"`
}

type GeminiConfig struct {
	Model         string   `yaml:"model"`
	APIKeys       []string `yaml:"api_keys"`
	ContextWindow int      `yaml:"context_window"`
}

type PaginateConfig struct {
	ChunkSize int `yaml:"chunk_size"`
	Overlap   int `yaml:"overlap"`
}

type CaptionConfig struct {
	KeepAnnotations bool `yaml:"keep_annotations"`
}

type ExportConfig struct {
	Docx bool `yaml:"docx"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

type PerformanceConfig struct {
	MaxConcurrent int `yaml:"max_concurrent"`
}

func (c *Config) Validate() error {
	if c.Paths.Input == "" {
		return fmt.Errorf("paths.input is required")
	}
	if c.Paths.Downloads == "" {
		return fmt.Errorf("paths.downloads is required")
	}
	if c.Whisper.BinaryPath == "" {
		return fmt.Errorf("whisper.binary_path is required")
	}
	if c.Whisper.ModelPath == "" {
		return fmt.Errorf("whisper.model_path is required")
	}
	if c.Whisper.Language == "" {
		return fmt.Errorf("whisper.language is required")
	}
	if len(c.Gemini.APIKeys) == 0 {
		return fmt.Errorf("gemini.api_keys is required")
	}
	if c.Paginate.Overlap < 0 {
		return fmt.Errorf("paginate.overlap must not be negative")
	}
	if c.Paginate.ChunkSize > 0 && c.Paginate.Overlap >= c.Paginate.ChunkSize {
		return fmt.Errorf("paginate.overlap must be smaller than paginate.chunk_size")
	}

	if c.Paths.Prompts == "" {
		c.Paths.Prompts = "prompts"
	}
	if c.Batch.Size == 0 {
		c.Batch.Size = 10
	}
	if c.Whisper.Threads == 0 {
		c.Whisper.Threads = 8
	}
	if c.Gemini.Model == "" {
		c.Gemini.Model = "gemini-2.5-flash"
	}
	if c.Gemini.ContextWindow == 0 {
		c.Gemini.ContextWindow = 5000
	}
	if c.Paginate.ChunkSize == 0 {
		c.Paginate.ChunkSize = 4000
	}
	if c.Performance.MaxConcurrent == 0 {
		c.Performance.MaxConcurrent = 1
	}

	return nil
}
