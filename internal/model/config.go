package model

import "time"

// Config holds the complete Minumate configuration
type Config struct {
	Chunking    ChunkingConfig    `yaml:"chunking" mapstructure:"chunking"`
	LLM         LLMConfig         `yaml:"llm" mapstructure:"llm"`
	Cache       CacheConfig       `yaml:"cache" mapstructure:"cache"`
	Concurrency ConcurrencyConfig `yaml:"concurrency" mapstructure:"concurrency"`
	Output      OutputConfig      `yaml:"output" mapstructure:"output"`
}

// ChunkingConfig controls how transcripts are split before analysis
type ChunkingConfig struct {
	// MaxChunkSize is the character threshold after which a new chunk is opened
	MaxChunkSize int `yaml:"max_chunk_size" mapstructure:"max_chunk_size"`
}

// LLMConfig holds the text-completion provider configuration
type LLMConfig struct {
	// Provider name: "openai", "anthropic", "ollama"
	Provider string `yaml:"provider" mapstructure:"provider"`

	// Model name (provider-specific)
	Model string `yaml:"model" mapstructure:"model"`

	// APIKey for OpenAI/Anthropic
	APIKey string `yaml:"api_key" mapstructure:"api_key"`

	// BaseURL for custom endpoints (e.g., Ollama or API-compatible gateways)
	BaseURL string `yaml:"base_url" mapstructure:"base_url"`

	// Timeout for API requests in seconds
	Timeout int `yaml:"timeout" mapstructure:"timeout"`

	// MetadataTemperature is used for metadata/extraction-style calls
	MetadataTemperature float32 `yaml:"metadata_temperature" mapstructure:"metadata_temperature"`

	// ChunkTemperature is used for per-chunk analysis calls
	ChunkTemperature float32 `yaml:"chunk_temperature" mapstructure:"chunk_temperature"`

	// SummaryTemperature is used for the whole-transcript structured extraction
	SummaryTemperature float32 `yaml:"summary_temperature" mapstructure:"summary_temperature"`

	// MaxChunkTokens limits per-chunk analysis responses
	MaxChunkTokens int `yaml:"max_chunk_tokens" mapstructure:"max_chunk_tokens"`

	// MaxSummaryTokens limits the final structured extraction response
	MaxSummaryTokens int `yaml:"max_summary_tokens" mapstructure:"max_summary_tokens"`

	// MaxMetadataTokens limits the metadata extraction response
	MaxMetadataTokens int `yaml:"max_metadata_tokens" mapstructure:"max_metadata_tokens"`

	// RequestsPerSecond throttles calls to the provider (0 = unlimited)
	RequestsPerSecond float64 `yaml:"requests_per_second" mapstructure:"requests_per_second"`
}

// CacheConfig controls caching of chunk analyses
type CacheConfig struct {
	Enabled   bool          `yaml:"enabled" mapstructure:"enabled"`
	Dir       string        `yaml:"dir" mapstructure:"dir"`
	MemoryTTL time.Duration `yaml:"memory_ttl" mapstructure:"memory_ttl"`
	DiskTTL   time.Duration `yaml:"disk_ttl" mapstructure:"disk_ttl"`
}

// ConcurrencyConfig controls batch processing parallelism
type ConcurrencyConfig struct {
	// BatchWorkers is the number of transcripts analyzed in parallel.
	// Chunks within a single transcript are always processed sequentially.
	BatchWorkers int `yaml:"batch_workers" mapstructure:"batch_workers"`
}

// OutputConfig controls report rendering
type OutputConfig struct {
	Verbose       bool `yaml:"verbose" mapstructure:"verbose"`
	IncludeFooter bool `yaml:"include_footer" mapstructure:"include_footer"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Chunking: ChunkingConfig{
			MaxChunkSize: 6000,
		},
		LLM: LLMConfig{
			Provider:            "openai",
			Model:               "gpt-4o-mini",
			Timeout:             30,
			MetadataTemperature: 0.1,
			ChunkTemperature:    0.4,
			SummaryTemperature:  0.3,
			MaxChunkTokens:      1000,
			MaxSummaryTokens:    2000,
			MaxMetadataTokens:   800,
			RequestsPerSecond:   2,
		},
		Cache: CacheConfig{
			Enabled:   true,
			MemoryTTL: 30 * time.Minute,
			DiskTTL:   24 * time.Hour,
		},
		Concurrency: ConcurrencyConfig{
			BatchWorkers: 4,
		},
		Output: OutputConfig{
			Verbose:       false,
			IncludeFooter: true,
		},
	}
}
