package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config holds the application's runtime configuration, loaded from the
// environment with viper.
type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	ShopifyShopDomain  string
	ShopifyAccessToken string
	ShopifyAPIVersion  string

	NotificationWebhookURL string
	FeedCacheTTL           time.Duration
	DelayScanSchedule      string
}

// LoadConfig reads configuration from the environment. Defaults cover every
// setting that has a sensible one; connection credentials have none and must
// be provided.
func LoadConfig() Config {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("HTTP_PORT", "8080")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("SHOPIFY_API_VERSION", "2025-01")
	v.SetDefault("FEED_CACHE_TTL", "30s")
	v.SetDefault("DELAY_SCAN_SCHEDULE", "0 */5 * * * *")

	return Config{
		HTTPPort:   v.GetString("HTTP_PORT"),
		DBHost:     v.GetString("DB_HOST"),
		DBPort:     v.GetString("DB_PORT"),
		DBUser:     v.GetString("DB_USER"),
		DBPassword: v.GetString("DB_PASSWORD"),
		DBName:     v.GetString("DB_NAME"),
		DBSslMode:  v.GetString("DB_SSLMODE"),

		ShopifyShopDomain:  v.GetString("SHOPIFY_SHOP_DOMAIN"),
		ShopifyAccessToken: v.GetString("SHOPIFY_ACCESS_TOKEN"),
		ShopifyAPIVersion:  v.GetString("SHOPIFY_API_VERSION"),

		NotificationWebhookURL: v.GetString("NOTIFICATION_WEBHOOK_URL"),
		FeedCacheTTL:           v.GetDuration("FEED_CACHE_TTL"),
		DelayScanSchedule:      v.GetString("DELAY_SCAN_SCHEDULE"),
	}
}

// DSN builds the postgres connection string for GORM.
func (c Config) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode,
	)
}
