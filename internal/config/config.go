package config

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"fraud-engine/internal/db"
)

type Config struct {
	HTTPPort       string        `envconfig:"APP_PORT" default:"8080"`
	ServiceName    string        `envconfig:"SERVICE_NAME" default:"fraud-detection"`
	ServiceVersion string        `envconfig:"SERVICE_VERSION" default:"1.0.0"`
	RulesFile      string        `envconfig:"RULES_FILE" default:"config/rules.json"`
	LogLevel       string        `envconfig:"LOG_LEVEL" default:"info"`
	LogFile        string        `envconfig:"LOG_FILE"`
	RequestTimeout time.Duration `envconfig:"REQUEST_TIMEOUT" default:"5s"`

	Redis    RedisConfig
	Audit    AuditConfig
	DB       DBConfig
	Kafka    KafkaConfig
	JWT      JWTConfig
	GRPC     GRPCConfig
	Dispatch DispatchConfig
}

type RedisConfig struct {
	Addrs         []string      `envconfig:"REDIS_ADDRS" default:"localhost:6379"`
	Password      string        `envconfig:"REDIS_PASSWORD"`
	DB            int           `envconfig:"REDIS_DB" default:"0"`
	PoolSize      int           `envconfig:"REDIS_POOL_SIZE" default:"100"`
	DialTimeout   time.Duration `envconfig:"REDIS_DIAL_TIMEOUT" default:"5s"`
	RetryAttempts int           `envconfig:"REDIS_RETRY_ATTEMPTS" default:"5"`
	RetryDelay    time.Duration `envconfig:"REDIS_RETRY_DELAY" default:"1s"`
}

type AuditConfig struct {
	Enabled bool `envconfig:"AUDIT_ENABLED" default:"false"`
}

// DBConfig обязателен только при AUDIT_ENABLED=true
type DBConfig struct {
	Host     string `envconfig:"POSTGRES_HOST"`
	Port     string `envconfig:"POSTGRES_PORT"     default:"5432"`
	User     string `envconfig:"POSTGRES_USER"`
	Password string `envconfig:"POSTGRES_PASSWORD"`
	DBName   string `envconfig:"POSTGRES_DB"`
	SSLMode  string `envconfig:"POSTGRES_SSLMODE"  default:"disable"`
}

type KafkaConfig struct {
	Brokers []string `envconfig:"KAFKA_BROKERS" default:"localhost:9092"`
	Topic   string   `envconfig:"KAFKA_TOPIC" default:"fraud-decisions"`
	Enabled bool     `envconfig:"KAFKA_ENABLED" default:"false"`
}

type JWTConfig struct {
	Enabled    bool          `envconfig:"JWT_ENABLED" default:"false"`
	Secret     string        `envconfig:"JWT_SECRET"`
	Expiration time.Duration `envconfig:"JWT_EXPIRATION" default:"720h"`
	Issuer     string        `envconfig:"JWT_ISSUER" default:"fraud-engine"`
}

type GRPCConfig struct {
	HealthEnabled bool   `envconfig:"GRPC_HEALTH_ENABLED" default:"false"`
	HealthPort    string `envconfig:"GRPC_HEALTH_PORT" default:"50051"`
}

type DispatchConfig struct {
	Workers   int `envconfig:"DISPATCH_WORKERS" default:"5"`
	QueueSize int `envconfig:"DISPATCH_QUEUE_SIZE" default:"100"`
}

func NewConfig() (*Config, error) {
	envFile := "config.env"

	if err := godotenv.Load(envFile); err != nil {
		log.Printf("warning: не удалось загрузить файл %s, используются только системные переменные окружения: %v", envFile, err)
	}

	return Load()
}

// Load читает конфигурацию только из переменных окружения
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("ошибка парсинга конфигурации: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("невалидная конфигурация: %w", err)
	}

	return &cfg, nil
}

func (c *Config) Validate() error {
	var errs []error

	if len(c.Redis.Addrs) == 0 {
		errs = append(errs, errors.New("REDIS_ADDRS must not be empty"))
	}
	if c.RequestTimeout <= 0 {
		errs = append(errs, errors.New("REQUEST_TIMEOUT must be positive"))
	}
	if c.Dispatch.Workers < 1 {
		errs = append(errs, errors.New("DISPATCH_WORKERS must be at least 1"))
	}
	if c.Dispatch.QueueSize < 0 {
		errs = append(errs, errors.New("DISPATCH_QUEUE_SIZE must not be negative"))
	}

	if c.Audit.Enabled {
		if c.DB.Host == "" || c.DB.User == "" || c.DB.DBName == "" {
			errs = append(errs, errors.New("POSTGRES_HOST, POSTGRES_USER and POSTGRES_DB are required when AUDIT_ENABLED"))
		}
	}
	if c.Kafka.Enabled {
		if len(c.Kafka.Brokers) == 0 || c.Kafka.Topic == "" {
			errs = append(errs, errors.New("KAFKA_BROKERS and KAFKA_TOPIC are required when KAFKA_ENABLED"))
		}
	}
	if c.JWT.Enabled && c.JWT.Secret == "" {
		errs = append(errs, errors.New("JWT_SECRET is required when JWT_ENABLED"))
	}

	return errors.Join(errs...)
}

func (r *RedisConfig) ClientConfig() db.RedisConfig {
	return db.RedisConfig{
		Addrs:         r.Addrs,
		Password:      r.Password,
		DB:            r.DB,
		PoolSize:      r.PoolSize,
		DialTimeout:   r.DialTimeout,
		RetryAttempts: r.RetryAttempts,
		RetryDelay:    r.RetryDelay,
	}
}

func (d *DBConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode,
	)
}

func (d *DBConfig) MigrationURL() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode,
	)
}
