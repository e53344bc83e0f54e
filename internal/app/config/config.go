package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"artisan-backend/internal/app/dsn"
)

type Config struct {
	ServiceHost string         `mapstructure:"service_host"`
	ServicePort int            `mapstructure:"service_port"`
	CORSOrigins []string       `mapstructure:"cors_origins"`
	Log         LogConfig      `mapstructure:"log"`
	JWT         JWTConfig      `mapstructure:"jwt"`
	Admin       AdminConfig    `mapstructure:"admin"`
	Redis       RedisConfig    `mapstructure:"-"`
	MinIO       MinIOConfig    `mapstructure:"minio"`
	Fixtures    FixturesConfig `mapstructure:"fixtures"`
	Wizard      WizardConfig   `mapstructure:"wizard"`
	Database    DatabaseConfig `mapstructure:"database"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
	JSON  bool   `mapstructure:"json"`
}

type JWTConfig struct {
	Token         string            `mapstructure:"token"`
	ExpiresIn     time.Duration     `mapstructure:"expires_in"`
	SigningMethod jwt.SigningMethod `mapstructure:"-"`
}

// AdminConfig - ключ для выдачи токена администратора, пустой ключ отключает вход
type AdminConfig struct {
	APIKey string `mapstructure:"api_key"`
}

type RedisConfig struct {
	Enabled     bool
	Host        string
	Password    string
	Port        int
	User        string
	DialTimeout time.Duration
	ReadTimeout time.Duration
}

type MinIOConfig struct {
	Enabled   bool   `mapstructure:"enabled"`
	Endpoint  string `mapstructure:"endpoint"`
	AccessKey string `mapstructure:"access_key"`
	SecretKey string `mapstructure:"secret_key"`
	Bucket    string `mapstructure:"bucket"`
	UseSSL    bool   `mapstructure:"use_ssl"`
}

// Источники фикстур
const (
	FixturesEmbedded = "embedded"
	FixturesDir      = "dir"
	FixturesMinIO    = "minio"
)

type FixturesConfig struct {
	Source string `mapstructure:"source"`
	Dir    string `mapstructure:"dir"`
	Prefix string `mapstructure:"prefix"`
}

type WizardConfig struct {
	StateTTL time.Duration `mapstructure:"state_ttl"`
}

type DatabaseConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	DSN     string `mapstructure:"-"`
}

// defaultJWTToken годится только для локального запуска
const defaultJWTToken = "test"

const (
	envRedisHost = "REDIS_HOST"
	envRedisPort = "REDIS_PORT"
	envRedisUser = "REDIS_USER"
	envRedisPass = "REDIS_PASSWORD"
)

func setDefaults(v *viper.Viper) {
	v.SetDefault("service_host", "0.0.0.0")
	v.SetDefault("service_port", 8080)
	v.SetDefault("cors_origins", []string{"http://localhost:3000"})
	v.SetDefault("log.level", "info")
	v.SetDefault("log.json", false)
	v.SetDefault("jwt.token", defaultJWTToken)
	v.SetDefault("jwt.expires_in", "24h")
	v.SetDefault("admin.api_key", "")
	v.SetDefault("minio.enabled", false)
	v.SetDefault("minio.endpoint", "localhost:9000")
	v.SetDefault("minio.access_key", "")
	v.SetDefault("minio.secret_key", "")
	v.SetDefault("minio.use_ssl", false)
	v.SetDefault("minio.bucket", "artisan-onboarding")
	v.SetDefault("fixtures.source", FixturesEmbedded)
	v.SetDefault("fixtures.dir", "fixtures")
	v.SetDefault("fixtures.prefix", "fixtures")
	v.SetDefault("wizard.state_ttl", "72h")
	v.SetDefault("database.enabled", false)
}

func NewConfig() (*Config, error) {
	configName := "config"
	_ = godotenv.Load()
	if os.Getenv("CONFIG_NAME") != "" {
		configName = os.Getenv("CONFIG_NAME")
	}

	v := viper.New()
	setDefaults(v)
	v.SetConfigName(configName)
	v.SetConfigType("toml")
	v.AddConfigPath("config")
	v.AddConfigPath(".")
	v.SetEnvPrefix("ARTISAN")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
		log.Warn("config file not found, using defaults")
	}

	cfg, err := parse(v)
	if err != nil {
		return nil, err
	}

	configureLogger(cfg.Log)
	if cfg.JWT.Token == defaultJWTToken {
		log.Warn("jwt.token is not set, tokens are signed with the default secret")
	}
	log.Info("config parsed")

	return cfg, nil
}

func parse(v *viper.Viper) (*Config, error) {
	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, err
	}

	cfg.JWT.SigningMethod = jwt.SigningMethodHS256

	switch cfg.Fixtures.Source {
	case FixturesEmbedded, FixturesDir:
	case FixturesMinIO:
		if !cfg.MinIO.Enabled {
			return nil, fmt.Errorf("fixtures source %q requires minio.enabled", cfg.Fixtures.Source)
		}
	default:
		return nil, fmt.Errorf("unknown fixtures source %q", cfg.Fixtures.Source)
	}

	if cfg.Database.Enabled {
		cfg.Database.DSN = dsn.FromEnv()
		if cfg.Database.DSN == "" {
			return nil, fmt.Errorf("database enabled but DB_HOST is not set")
		}
	}

	redisCfg, err := redisFromEnv()
	if err != nil {
		return nil, err
	}
	cfg.Redis = redisCfg

	return cfg, nil
}

// redisFromEnv - Redis настраивается только из env, без REDIS_PORT он выключен
func redisFromEnv() (RedisConfig, error) {
	cfg := RedisConfig{
		Host:        os.Getenv(envRedisHost),
		Password:    os.Getenv(envRedisPass),
		User:        os.Getenv(envRedisUser),
		DialTimeout: 10 * time.Second,
		ReadTimeout: 10 * time.Second,
	}

	port := os.Getenv(envRedisPort)
	if port == "" {
		return cfg, nil
	}

	var err error
	cfg.Port, err = strconv.Atoi(port)
	if err != nil {
		return cfg, fmt.Errorf("redis port must be int value: %w", err)
	}
	if cfg.Host == "" {
		cfg.Host = "localhost"
	}
	cfg.Enabled = true
	return cfg, nil
}

func configureLogger(c LogConfig) {
	if c.JSON {
		log.SetFormatter(&log.JSONFormatter{})
	} else {
		log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	}

	level, err := log.ParseLevel(c.Level)
	if err != nil {
		log.Warnf("unknown log level %q, using info", c.Level)
		level = log.InfoLevel
	}
	log.SetLevel(level)
}
