// Package config loads application configuration from file and environment
// and initializes the global logger.
package config

import (
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds the full application configuration.
type Config struct {
	Source    SourceConfig    `yaml:"source" mapstructure:"source"`
	Scrape    ScrapeConfig    `yaml:"scrape" mapstructure:"scrape"`
	Anthropic AnthropicConfig `yaml:"anthropic" mapstructure:"anthropic"`
	Compose   ComposeConfig   `yaml:"compose" mapstructure:"compose"`
	Output    OutputConfig    `yaml:"output" mapstructure:"output"`
	Pipeline  PipelineConfig  `yaml:"pipeline" mapstructure:"pipeline"`
	Server    ServerConfig    `yaml:"server" mapstructure:"server"`
	Log       LogConfig       `yaml:"log" mapstructure:"log"`
}

// SourceConfig configures the lead source document.
type SourceConfig struct {
	// URL points at the published CSV export (http://, https://, or ftp://)
	// or a local .csv/.xlsx path.
	URL         string `yaml:"url" mapstructure:"url"`
	TimeoutSecs int    `yaml:"timeout_secs" mapstructure:"timeout_secs"`
}

// ScrapeConfig configures the site prober.
type ScrapeConfig struct {
	UserAgent      string `yaml:"user_agent" mapstructure:"user_agent"`
	TimeoutSecs    int    `yaml:"timeout_secs" mapstructure:"timeout_secs"`
	MaxSubPages    int    `yaml:"max_sub_pages" mapstructure:"max_sub_pages"`
	MinDelayMillis int    `yaml:"min_delay_millis" mapstructure:"min_delay_millis"`
	MaxDelayMillis int    `yaml:"max_delay_millis" mapstructure:"max_delay_millis"`
	// KeywordsFile optionally points at a YAML file overriding the default
	// category vocabulary.
	KeywordsFile string `yaml:"keywords_file" mapstructure:"keywords_file"`
}

// AnthropicConfig holds Anthropic API settings.
type AnthropicConfig struct {
	Key         string  `yaml:"key" mapstructure:"key"`
	Model       string  `yaml:"model" mapstructure:"model"`
	Temperature float64 `yaml:"temperature" mapstructure:"temperature"`
	MaxTokens   int64   `yaml:"max_tokens" mapstructure:"max_tokens"`
	MaxAttempts int     `yaml:"max_attempts" mapstructure:"max_attempts"`
}

// ComposeConfig holds the fixed sender identity used in outreach emails.
type ComposeConfig struct {
	SenderName    string `yaml:"sender_name" mapstructure:"sender_name"`
	SenderTitle   string `yaml:"sender_title" mapstructure:"sender_title"`
	SenderCompany string `yaml:"sender_company" mapstructure:"sender_company"`
	SenderPhone   string `yaml:"sender_phone" mapstructure:"sender_phone"`
	// PersonalOpener enables a third completion call that generates a
	// one-sentence opener spliced ahead of the fixed introduction.
	PersonalOpener bool `yaml:"personal_opener" mapstructure:"personal_opener"`
}

// OutputConfig configures the result table.
type OutputConfig struct {
	Path string `yaml:"path" mapstructure:"path"`
	// BOM prefixes the file with a UTF-8 byte-order mark for spreadsheet apps.
	BOM bool `yaml:"bom" mapstructure:"bom"`
	// Extended adds the EmailFound and LocationGuess columns.
	Extended bool `yaml:"extended" mapstructure:"extended"`
}

// PipelineConfig configures the run driver.
type PipelineConfig struct {
	MinDelayMillis int `yaml:"min_delay_millis" mapstructure:"min_delay_millis"`
	MaxDelayMillis int `yaml:"max_delay_millis" mapstructure:"max_delay_millis"`
	// Strict aborts the whole run on the first completion failure instead of
	// recording it per row.
	Strict bool `yaml:"strict" mapstructure:"strict"`
}

// ServerConfig configures the webhook server.
type ServerConfig struct {
	Port int `yaml:"port" mapstructure:"port"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// Load reads configuration from file and environment.
func Load() (*Config, error) {
	v := viper.New()

	// Config file
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	// Environment
	v.SetEnvPrefix("OUTREACH")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults. Empty defaults keep env-only values visible to Unmarshal.
	v.SetDefault("source.url", "")
	v.SetDefault("source.timeout_secs", 15)
	v.SetDefault("scrape.user_agent", "Mozilla/5.0 (Windows NT 10.0; Win64; rv:120.0) Gecko/20100101 Firefox/120.0")
	v.SetDefault("scrape.timeout_secs", 12)
	v.SetDefault("scrape.max_sub_pages", 2)
	v.SetDefault("scrape.min_delay_millis", 1000)
	v.SetDefault("scrape.max_delay_millis", 2000)
	v.SetDefault("scrape.keywords_file", "")
	v.SetDefault("anthropic.key", "")
	v.SetDefault("anthropic.model", "claude-haiku-4-5-20251001")
	v.SetDefault("anthropic.temperature", 0.6)
	v.SetDefault("anthropic.max_tokens", 1024)
	v.SetDefault("anthropic.max_attempts", 3)
	v.SetDefault("compose.sender_name", "Adam Noah Azlan")
	v.SetDefault("compose.sender_title", "Senior Business Development Representative")
	v.SetDefault("compose.sender_company", "Happy Global")
	v.SetDefault("compose.sender_phone", "+1 945-899-3624")
	v.SetDefault("compose.personal_opener", false)
	v.SetDefault("output.path", "enriched_results.csv")
	v.SetDefault("output.bom", true)
	v.SetDefault("output.extended", false)
	v.SetDefault("pipeline.min_delay_millis", 1000)
	v.SetDefault("pipeline.max_delay_millis", 2000)
	v.SetDefault("pipeline.strict", false)
	v.SetDefault("server.port", 8080)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	// Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, eris.Wrap(err, "config: read file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, eris.Wrap(err, "config: unmarshal")
	}

	return &cfg, nil
}

// InitLogger initializes the global zap logger.
func InitLogger(cfg LogConfig) error {
	var zapCfg zap.Config
	if cfg.Format == "console" {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return eris.Wrap(err, "config: parse log level")
	}
	zapCfg.Level.SetLevel(level)

	logger, err := zapCfg.Build()
	if err != nil {
		return eris.Wrap(err, "config: build logger")
	}
	zap.ReplaceGlobals(logger)

	return nil
}
