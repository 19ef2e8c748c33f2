package config

import (
	"strings"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/sirupsen/logrus"
)

const (
	LLMDriverGroq       = "groq"
	LLMDriverVolcengine = "volcengine"
)

type Config struct {
	HTTPPort  string `env:"HTTP_PORT" envDefault:"5000"`
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"json"`

	// 数据库：优先使用 DATABASE_URL，否则由各个离散参数拼接
	DBType     string `env:"DB_TYPE" envDefault:"postgres"`
	DSNURL     string `env:"DATABASE_URL" envDefault:""`
	DBName     string `env:"DB_NAME" envDefault:""`
	DBUser     string `env:"DB_USER" envDefault:""`
	DBPassword string `env:"DB_PASSWORD" envDefault:""`
	DBHost     string `env:"DB_HOST" envDefault:""`
	DBPort     string `env:"DB_PORT" envDefault:""`
	DBPath     string `env:"DB_PATH" envDefault:"datas/designers.db"`
	DBPooled   bool   `env:"DB_POOLED" envDefault:"false"`

	// LLM 服务商
	LLMDriver         string `env:"LLM_DRIVER" envDefault:"groq"`
	LLMModel          string `env:"LLM_MODEL" envDefault:"llama3-8b-8192"`
	LLMBaseURL        string `env:"LLM_BASE_URL" envDefault:""`
	LLMTimeoutSeconds int    `env:"LLM_TIMEOUT_SECONDS" envDefault:"0"`
	GroqAPIKey        string `env:"GROQ_API_KEY" envDefault:""`
	VolcengineAPIKey  string `env:"VOLCENGINE_API_KEY" envDefault:""`
}

func ParseConfig() (Config, error) {
	var Conf Config
	err := env.Parse(&Conf)
	if err != nil {
		logrus.WithError(err).Error("env.Parse error")
		return Config{}, err
	}
	logrus.WithFields(logrus.Fields{
		"db_type":    Conf.DBType,
		"db_pooled":  Conf.DBPooled,
		"llm_driver": Conf.LLMDriver,
		"llm_model":  Conf.LLMModel,
	}).Debug("config parsed")
	return Conf, nil
}

// HasDSN reports whether the single connection-string form is configured.
func (c Config) HasDSN() bool {
	return strings.TrimSpace(c.DSNURL) != ""
}

// ProviderAPIKey returns the credential of the configured LLM driver.
func (c Config) ProviderAPIKey() string {
	switch c.Driver() {
	case LLMDriverVolcengine:
		return strings.TrimSpace(c.VolcengineAPIKey)
	default:
		return strings.TrimSpace(c.GroqAPIKey)
	}
}

// ProviderKeyName is the environment variable that holds ProviderAPIKey.
func (c Config) ProviderKeyName() string {
	if c.Driver() == LLMDriverVolcengine {
		return "VOLCENGINE_API_KEY"
	}
	return "GROQ_API_KEY"
}

func (c Config) Driver() string {
	driver := strings.ToLower(strings.TrimSpace(c.LLMDriver))
	if driver == "" {
		return LLMDriverGroq
	}
	return driver
}

func (c Config) LLMTimeout() time.Duration {
	if c.LLMTimeoutSeconds <= 0 {
		return 0
	}
	return time.Duration(c.LLMTimeoutSeconds) * time.Second
}
