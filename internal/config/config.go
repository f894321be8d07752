package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	RabbitMQ RabbitMQConfig `yaml:"rabbitmq"`
	Feed     FeedConfig     `yaml:"feed"`
	LogLevel string         `yaml:"log_level"`
}

type ServerConfig struct {
	Addr            string        `yaml:"addr"`
	BaseURL         string        `yaml:"base_url"`
	CORSOrigins     []string      `yaml:"cors_origins"`
	ReadTimeout     time.Duration `yaml:"read_timeout"`
	WriteTimeout    time.Duration `yaml:"write_timeout"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	DBName   string `yaml:"dbname"`
	SSLMode  string `yaml:"sslmode"`
}

func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode,
	)
}

type RabbitMQConfig struct {
	URL        string `yaml:"url"`
	Exchange   string `yaml:"exchange"`
	RoutingKey string `yaml:"routing_key"`
	QueueName  string `yaml:"queue_name"`
}

type FeedConfig struct {
	PageSize       int           `yaml:"page_size"`
	LowWaterMark   int           `yaml:"low_water_mark"`
	SwipeThreshold float64       `yaml:"swipe_threshold"`
	FlickVelocity  float64       `yaml:"flick_velocity"`
	ExitDelay      time.Duration `yaml:"exit_delay"`
	CacheTTL       time.Duration `yaml:"cache_ttl"`
	SitemapLimit   int           `yaml:"sitemap_limit"`
}

func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	cfg.setDefaults()

	return &cfg, nil
}

func (c *Config) setDefaults() {
	if c.Server.Addr == "" {
		c.Server.Addr = ":8080"
	}
	if c.Server.BaseURL == "" {
		c.Server.BaseURL = "https://krux.news"
	}
	if c.Server.ReadTimeout == 0 {
		c.Server.ReadTimeout = 10 * time.Second
	}
	if c.Server.WriteTimeout == 0 {
		c.Server.WriteTimeout = 15 * time.Second
	}
	if c.Server.ShutdownTimeout == 0 {
		c.Server.ShutdownTimeout = 10 * time.Second
	}
	if c.RabbitMQ.Exchange == "" {
		c.RabbitMQ.Exchange = "krux"
	}
	if c.RabbitMQ.RoutingKey == "" {
		c.RabbitMQ.RoutingKey = "reactions"
	}
	if c.RabbitMQ.QueueName == "" {
		c.RabbitMQ.QueueName = "swipe_reactions"
	}
	if c.Feed.PageSize == 0 {
		c.Feed.PageSize = 20
	}
	if c.Feed.LowWaterMark == 0 {
		c.Feed.LowWaterMark = 5
	}
	if c.Feed.SwipeThreshold == 0 {
		c.Feed.SwipeThreshold = 110
	}
	if c.Feed.FlickVelocity == 0 {
		c.Feed.FlickVelocity = 800
	}
	if c.Feed.ExitDelay == 0 {
		c.Feed.ExitDelay = 190 * time.Millisecond
	}
	if c.Feed.CacheTTL == 0 {
		c.Feed.CacheTTL = 5 * time.Minute
	}
	if c.Feed.SitemapLimit == 0 {
		c.Feed.SitemapLimit = 1000
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
}
