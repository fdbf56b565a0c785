package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	HTTP     HTTPConfig     `yaml:"http"`
	Database DatabaseConfig `yaml:"database"`
	Redis    RedisConfig    `yaml:"redis"`
	Kafka    KafkaConfig    `yaml:"kafka"`
	Cache    CacheConfig    `yaml:"cache"`
}

type HTTPConfig struct {
	Port string `yaml:"port"`
}

func (h HTTPConfig) Address() string {
	return ":" + h.Port
}

type DatabaseConfig struct {
	URI      string `yaml:"uri"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Host     string `yaml:"host"`
	AppName  string `yaml:"app_name"`
	Name     string `yaml:"name"`
	// ConnectTimeoutSeconds bounds the startup ping only.
	ConnectTimeoutSeconds int `yaml:"connect_timeout_seconds"`
}

// ConnectionURI returns the explicit connection string when set, otherwise an SRV
// string built from the credentials.
func (d DatabaseConfig) ConnectionURI() string {
	if d.URI != "" {
		return d.URI
	}
	return fmt.Sprintf("mongodb+srv://%s:%s@%s/?retryWrites=true&w=majority&appName=%s",
		url.QueryEscape(d.User), url.QueryEscape(d.Password), d.Host, url.QueryEscape(d.AppName))
}

func (d DatabaseConfig) ConnectTimeout() time.Duration {
	return time.Duration(d.ConnectTimeoutSeconds) * time.Second
}

type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type KafkaConfig struct {
	Brokers            []string `yaml:"brokers"`
	BookingTopic       string   `yaml:"booking_topic"`
	NotificationsTopic string   `yaml:"notifications_topic"`
	GroupID            string   `yaml:"group_id"`
}

type CacheConfig struct {
	ServicesTTLSeconds int `yaml:"services_ttl_seconds"`
}

func (c CacheConfig) ServicesTTL() time.Duration {
	return time.Duration(c.ServicesTTLSeconds) * time.Second
}

func defaults() Config {
	return Config{
		HTTP: HTTPConfig{Port: "3000"},
		Database: DatabaseConfig{
			Host:                  "cluster0.ry27zgj.mongodb.net",
			AppName:               "Cluster0",
			Name:                  "serviceMasterDB",
			ConnectTimeoutSeconds: 10,
		},
		Kafka: KafkaConfig{
			BookingTopic: "booking-events",
			GroupID:      "oneservice-notifier",
		},
		Cache: CacheConfig{ServicesTTLSeconds: 30},
	}
}

// LoadConfig reads the YAML file at path on top of the defaults and then
// applies environment overrides. A missing file is not an error.
func LoadConfig(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	cfg := defaults()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	case errors.Is(err, os.ErrNotExist):
	default:
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	applyEnv(&cfg)
	return &cfg, nil
}

func applyEnv(cfg *Config) {
	setString(&cfg.HTTP.Port, "PORT")
	setString(&cfg.Database.User, "DB_USER")
	setString(&cfg.Database.Password, "DB_PASS")
	setString(&cfg.Database.URI, "MONGODB_URI")
	setString(&cfg.Database.Host, "MONGODB_HOST")
	setString(&cfg.Database.Name, "MONGODB_DATABASE")
	setString(&cfg.Redis.Addr, "REDIS_ADDR")

	if v := os.Getenv("KAFKA_BROKERS"); v != "" {
		var brokers []string
		for _, b := range strings.Split(v, ",") {
			if b = strings.TrimSpace(b); b != "" {
				brokers = append(brokers, b)
			}
		}
		cfg.Kafka.Brokers = brokers
	}
}

func setString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}
