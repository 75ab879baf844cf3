package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	Environment EnvironmentConfig

	HTTPServer HTTPServerConfig
	Logger     LoggerConfig
	CORS       CORSConfig
	RateLimit  RateLimitConfig

	// Voice agent specifics
	History HistoryConfig
	Prompt  PromptConfig
	STT     STTConfig
	TTS     TTSConfig
	LLM     LLMConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type CORSConfig struct {
	AllowedOrigins []string
}

type RateLimitConfig struct {
	GeneratePerMin int
}

// HistoryConfig configures durable session history.
type HistoryConfig struct {
	Dir       string
	Limit     int
	CacheSize int
}

// PromptConfig bounds the generation context.
type PromptConfig struct {
	CharBudget int
}

// STTConfig configures the transcription backend.
type STTConfig struct {
	APIKey string
}

// TTSConfig configures the speech synthesis backend.
type TTSConfig struct {
	APIKey    string
	VoiceID   string
	CharLimit int
}

// LLMConfig configures the generation backend.
type LLMConfig struct {
	APIKey string
	Model  string
}

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// CORS: comma-separated list since viper might not parse arrays from env
	var origins []string
	for _, origin := range strings.Split(viper.GetString("cors.allowed_origins"), ",") {
		origin = strings.TrimSpace(origin)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	cfg.CORS.AllowedOrigins = origins

	cfg.RateLimit.GeneratePerMin = viper.GetInt("rate_limit.generate_per_min")

	// Session history
	cfg.History.Dir = viper.GetString("history.dir")
	cfg.History.Limit = viper.GetInt("history.limit")
	cfg.History.CacheSize = viper.GetInt("history.cache_size")

	// Prompt / TTS limits
	cfg.Prompt.CharBudget = viper.GetInt("prompt.char_budget")
	cfg.TTS.CharLimit = viper.GetInt("tts.char_limit")
	cfg.TTS.VoiceID = viper.GetString("tts.voice_id")

	// LLM
	cfg.LLM.Model = viper.GetString("llm.model")

	// Vendor credentials, flat env aliases take precedence
	cfg.STT.APIKey = viper.GetString("stt.api_key")
	if key := viper.GetString("assemblyai_api_key"); key != "" {
		cfg.STT.APIKey = key
	}
	cfg.TTS.APIKey = viper.GetString("tts.api_key")
	if key := viper.GetString("murf_api_key"); key != "" {
		cfg.TTS.APIKey = key
	}
	cfg.LLM.APIKey = viper.GetString("llm.api_key")
	if key := viper.GetString("gemini_api_key"); key != "" {
		cfg.LLM.APIKey = key
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// validate enforces the fatal startup conditions: every vendor credential
// must be present.
func (cfg *Config) validate() error {
	var missing []string
	if cfg.STT.APIKey == "" {
		missing = append(missing, "ASSEMBLYAI_API_KEY")
	}
	if cfg.TTS.APIKey == "" {
		missing = append(missing, "MURF_API_KEY")
	}
	if cfg.LLM.APIKey == "" {
		missing = append(missing, "GEMINI_API_KEY")
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing one or more API keys: %s", strings.Join(missing, ", "))
	}
	return nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)
	viper.SetDefault("cors.allowed_origins", "*")
	viper.SetDefault("rate_limit.generate_per_min", 60)

	// Voice agent defaults
	viper.SetDefault("history.dir", "data/history")
	viper.SetDefault("history.limit", 200)
	viper.SetDefault("history.cache_size", 1024)
	viper.SetDefault("prompt.char_budget", 12000)
	viper.SetDefault("tts.char_limit", 1200)
	viper.SetDefault("tts.voice_id", "en-US-terrell")
	viper.SetDefault("llm.model", "gemini-1.5-flash")
}
