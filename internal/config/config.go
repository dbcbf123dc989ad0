package config

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server    ServerConfig
	Logger    LoggerConfig
	History   HistoryConfig
	Redis     RedisConfig
	Speech    SpeechConfig
	Sentiment SentimentConfig
	Interview InterviewConfig
}

type ServerConfig struct {
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type LoggerConfig struct {
	Env   string
	Level string
}

// HistoryConfig selects the interview-history backend.
// Backend is "file" (one JSON document per graded answer) or "sqlite".
type HistoryConfig struct {
	Backend string
	Dir     string
	DSN     string
}

type RedisConfig struct {
	Enabled  bool
	Address  string
	Password string
	DB       int
}

type SpeechConfig struct {
	APIKey   string
	Endpoint string
	Language string
}

// SentimentConfig selects the sentiment collaborator.
// Source is "lexicon" (in-process word list) or "ollama".
type SentimentConfig struct {
	Source    string
	ServerURL string
	Model     string
}

type InterviewConfig struct {
	AnswerCacheTTL time.Duration
}

func LoadConfig() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	if os.Getenv("ENV") == "test" {
		viper.AddConfigPath("../../config")
		viper.AddConfigPath("../../")
	} else {
		viper.AddConfigPath(".")
		viper.AddConfigPath("./config")
	}

	viper.SetDefault("server.port", 8090)
	viper.SetDefault("server.read_timeout", 20)
	viper.SetDefault("server.write_timeout", 20)
	viper.SetDefault("history.backend", "file")
	viper.SetDefault("history.dir", "data/interview_history")
	viper.SetDefault("history.dsn", "data/careerprep.db")
	viper.SetDefault("speech.endpoint", "https://speech.googleapis.com/v1/speech:recognize")
	viper.SetDefault("speech.language", "en-US")
	viper.SetDefault("sentiment.source", "lexicon")
	viper.SetDefault("interview.answer_cache_ttl", 24*time.Hour)

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := &Config{
		Server: ServerConfig{
			Port:         viper.GetInt("server.port"),
			ReadTimeout:  viper.GetDuration("server.read_timeout") * time.Second,
			WriteTimeout: viper.GetDuration("server.write_timeout") * time.Second,
		},
		Logger: LoggerConfig{
			Env:   viper.GetString("logger.env"),
			Level: viper.GetString("logger.level"),
		},
		History: HistoryConfig{
			Backend: viper.GetString("history.backend"),
			Dir:     viper.GetString("history.dir"),
			DSN:     viper.GetString("history.dsn"),
		},
		Redis: RedisConfig{
			Enabled:  viper.GetBool("redis.enabled"),
			Address:  viper.GetString("redis.address"),
			Password: viper.GetString("redis.password"),
			DB:       viper.GetInt("redis.db"),
		},
		Speech: SpeechConfig{
			APIKey:   viper.GetString("speech.api_key"),
			Endpoint: viper.GetString("speech.endpoint"),
			Language: viper.GetString("speech.language"),
		},
		Sentiment: SentimentConfig{
			Source:    viper.GetString("sentiment.source"),
			ServerURL: viper.GetString("sentiment.server_url"),
			Model:     viper.GetString("sentiment.model"),
		},
		Interview: InterviewConfig{
			AnswerCacheTTL: viper.GetDuration("interview.answer_cache_ttl"),
		},
	}

	// Override with environment variables if set
	if env := os.Getenv("APP_ENV"); env != "" {
		config.Logger.Env = env
	}
	if backend := os.Getenv("HISTORY_BACKEND"); backend != "" {
		config.History.Backend = backend
	}
	if dir := os.Getenv("HISTORY_DIR"); dir != "" {
		config.History.Dir = dir
	}
	if redisAddress := os.Getenv("REDIS_ADDRESS"); redisAddress != "" {
		config.Redis.Address = redisAddress
		config.Redis.Enabled = true
	}
	if redisPassword := os.Getenv("REDIS_PASSWORD"); redisPassword != "" {
		config.Redis.Password = redisPassword
	}
	if speechKey := os.Getenv("SPEECH_API_KEY"); speechKey != "" {
		config.Speech.APIKey = speechKey
	}
	if llmServer := os.Getenv("SENTIMENT_SERVER"); llmServer != "" {
		config.Sentiment.ServerURL = llmServer
	}

	return config, nil
}
