package config

import (
	"os"
	"time"

	errorsUtils "github.com/Egor213/LogiBuffer/pkg/errors"

	"github.com/ilyakaznacheev/cleanenv"
	log "github.com/sirupsen/logrus"

	"github.com/joho/godotenv"
)

type (
	Config struct {
		App        `yaml:"app"`
		Log        `yaml:"log"`
		Buffer     `yaml:"buffer"`
		HTTP       `yaml:"http"`
		Prometheus `yaml:"prometheus"`
	}

	App struct {
		Name    string `yaml:"name" env:"APP_NAME" env-default:"logibuffer"`
		Version string `yaml:"version" env:"APP_VERSION" env-default:"dev"`
	}

	Log struct {
		Level string `yaml:"level" env:"LOG_LEVEL" env-default:"info"`
	}

	Buffer struct {
		MaxLogs        int  `yaml:"max_logs" env:"BUFFER_MAX_LOGS" env-default:"500"`
		ConsoleEcho    bool `yaml:"console_echo" env:"BUFFER_CONSOLE_ECHO" env-default:"true"`
		CaptureAppLogs bool `yaml:"capture_app_logs" env:"BUFFER_CAPTURE_APP_LOGS" env-default:"true"`
	}

	HTTP struct {
		Port            string        `yaml:"port" env:"HTTP_PORT" env-default:"8080"`
		ReadTimeout     time.Duration `yaml:"read_timeout" env:"HTTP_READ_TIMEOUT" env-default:"5s"`
		WriteTimeout    time.Duration `yaml:"write_timeout" env:"HTTP_WRITE_TIMEOUT" env-default:"5s"`
		ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"HTTP_SHUTDOWN_TIMEOUT" env-default:"3s"`
	}

	Prometheus struct {
		Port string `yaml:"port" env:"PROMETHEUS_PORT" env-default:"9090"`
	}
)

const ENV_PATH = "infra/.env.dev"

// New loads ENV_PATH (if present), then the YAML file at APP_CONFIG_PATH (if set),
// and lets environment variables override both.
func New() (*Config, error) {
	envPath := ENV_PATH
	if p, ok := os.LookupEnv("APP_ENV_PATH"); ok && p != "" {
		envPath = p
	}
	if err := godotenv.Load(envPath); err != nil {
		log.WithField("path", envPath).Debug("No .env file loaded")
	}

	cfg := &Config{}

	pathToConfig, ok := os.LookupEnv("APP_CONFIG_PATH")
	if !ok || pathToConfig == "" {
		log.WithField("env_var", "APP_CONFIG_PATH").
			Info("Config path is not set, reading environment only")
		if err := cleanenv.ReadEnv(cfg); err != nil {
			return nil, errorsUtils.WrapPathErr(err)
		}
		return cfg, nil
	}

	if err := cleanenv.ReadConfig(pathToConfig, cfg); err != nil {
		return nil, errorsUtils.WrapPathErr(err)
	}

	if err := cleanenv.UpdateEnv(cfg); err != nil {
		return nil, errorsUtils.WrapPathErr(err)
	}

	return cfg, nil
}
