package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	AppEnv    string
	Port      string
	JWTSecret string
	OriginURL string

	CartStorage   string
	DatabaseURL   string
	DBHost        string
	DBPort        string
	DBUser        string
	DBPassword    string
	DBName        string
	DBSSLMode     string
	MigrationsDir string
	RedisURL      string
	RedisAddr     string
	RedisPassword string
	MongoURL      string
	MongoDB       string

	RabbitURL     string
	OrderExchange string

	PaymentMode       string
	PaymentGatewayURL string
	PaymentPublicKey  string
	PaymentDelay      time.Duration
	PaymentTimeout    time.Duration

	SMTPHost string
	SMTPPort int
	SMTPUser string
	SMTPPass string
	SMTPFrom string

	Currency              string
	FreeShippingThreshold int64
	ShippingFee           int64
	TaxBasisPoints        int64
	OrderIDPrefix         string

	SessionIdleTTL time.Duration
}

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using system environment variables")
	}

	cfg := &Config{
		AppEnv:    getEnv("APP_ENV", "development"),
		Port:      getEnv("APP_PORT", getEnv("PORT", "8082")),
		JWTSecret: getEnv("JWT_SECRET", "secret"),
		OriginURL: os.Getenv("ORIGIN_URL"),

		CartStorage:   getEnv("CART_STORAGE", "memory"),
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		DBHost:        getEnv("DB_HOST", "localhost"),
		DBPort:        getEnv("DB_PORT", "5454"),
		DBUser:        getEnv("DB_USER", "postgres"),
		DBPassword:    getEnv("DB_PASSWORD", "postgres"),
		DBName:        getEnv("DB_NAME", "storefront"),
		DBSSLMode:     getEnv("DB_SSLMODE", "disable"),
		MigrationsDir: getEnv("MIGRATIONS_DIR", "database/migration"),
		RedisURL:      os.Getenv("REDIS_URL"),
		RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		MongoURL:      getEnv("MONGO_URL", "mongodb://localhost:27017"),
		MongoDB:       getEnv("MONGO_DB", "storefront"),

		RabbitURL:     os.Getenv("RABBIT_URL"),
		OrderExchange: getEnv("ORDER_EXCHANGE", "order_exchange"),

		PaymentMode:       getEnv("PAYMENT_MODE", "simulated"),
		PaymentGatewayURL: os.Getenv("PAYMENT_GATEWAY_URL"),
		PaymentPublicKey:  os.Getenv("PAYMENT_PUBLIC_KEY"),
		PaymentDelay:      getEnvDuration("PAYMENT_DELAY", 2*time.Second),
		PaymentTimeout:    getEnvDuration("PAYMENT_TIMEOUT", 30*time.Second),

		SMTPHost: os.Getenv("SMTP_HOST"),
		SMTPPort: int(getEnvInt("SMTP_PORT", 587)),
		SMTPUser: os.Getenv("SMTP_USER"),
		SMTPPass: os.Getenv("SMTP_PASS"),
		SMTPFrom: os.Getenv("SMTP_FROM"),

		Currency:              getEnv("CURRENCY", "NGN"),
		FreeShippingThreshold: getEnvInt("FREE_SHIPPING_THRESHOLD", 50000),
		ShippingFee:           getEnvInt("SHIPPING_FEE", 2500),
		TaxBasisPoints:        getEnvInt("TAX_BASIS_POINTS", 750),
		OrderIDPrefix:         getEnv("ORDER_ID_PREFIX", "ORD-"),

		SessionIdleTTL: getEnvDuration("SESSION_IDLE_TTL", 30*time.Minute),
	}

	log.Println("Configuration loaded successfully")
	log.Printf("Environment: %s", cfg.AppEnv)
	log.Printf("Cart storage: %s", cfg.CartStorage)

	return cfg
}

func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int64) int64 {
	value, err := strconv.ParseInt(os.Getenv(key), 10, 64)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	value, err := time.ParseDuration(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return value
}
