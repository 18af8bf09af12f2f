package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server ServerConfig
	Auth   AuthConfig
	Redis  RedisConfig
	Kafka  KafkaConfig
	Chat   ChatConfig
	Chart  ChartConfig
	Observ ObservabilityConfig
}

type ServerConfig struct {
	Port string
	Env  string
}

type AuthConfig struct {
	JWTSecret         string
	AdminUsername     string
	AdminPassword     string
	AdminPasswordHash string
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

type KafkaConfig struct {
	Brokers       []string
	TopicItems    string
	ConsumerGroup string
}

type ChatConfig struct {
	EmbedBaseURL string
	SessionTTL   time.Duration
}

type ChartConfig struct {
	RendererURL string
	Timeout     time.Duration
}

type ObservabilityConfig struct {
	JaegerEndpoint string
}

func Load() *Config {
	_ = godotenv.Load()

	redisDB, _ := strconv.Atoi(getEnv("REDIS_DB", "0"))
	sessionTTL, _ := strconv.Atoi(getEnv("CHAT_SESSION_TTL_SECONDS", "86400"))
	chartTimeout, _ := strconv.Atoi(getEnv("CHART_TIMEOUT_SECONDS", "10"))

	cfg := &Config{
		Server: ServerConfig{
			Port: getEnv("PORT", "8080"),
			Env:  getEnv("ENV", "development"),
		},
		Auth: AuthConfig{
			JWTSecret:         getEnv("JWT_SECRET", "your-secret-key-change-in-production"),
			AdminUsername:     getEnv("ADMIN_USERNAME", "admin"),
			AdminPassword:     getEnv("ADMIN_PASSWORD", "password123"),
			AdminPasswordHash: getEnv("ADMIN_PASSWORD_HASH", ""),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       redisDB,
		},
		Kafka: KafkaConfig{
			Brokers:       strings.Split(getEnv("KAFKA_BROKERS", "localhost:9092"), ","),
			TopicItems:    getEnv("KAFKA_TOPIC_ITEM_EVENTS", "catalog-item-events"),
			ConsumerGroup: getEnv("KAFKA_CONSUMER_GROUP", "catalog-service-group"),
		},
		Chat: ChatConfig{
			EmbedBaseURL: getEnv("CHAT_EMBED_BASE_URL", "https://chat.example.com/embed"),
			SessionTTL:   time.Duration(sessionTTL) * time.Second,
		},
		Chart: ChartConfig{
			RendererURL: getEnv("CHART_RENDERER_URL", "https://quickchart.io/chart"),
			Timeout:     time.Duration(chartTimeout) * time.Second,
		},
		Observ: ObservabilityConfig{
			JaegerEndpoint: getEnv("JAEGER_ENDPOINT", "http://localhost:14268/api/traces"),
		},
	}

	log.Printf("Config loaded: env=%s, port=%s", cfg.Server.Env, cfg.Server.Port)
	return cfg
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
