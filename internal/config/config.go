package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds application configuration (env + optional .env file). It is
// built once at startup and passed into constructors; nothing reads env
// vars after load.
type Config struct {
	Env               string
	Port              string
	DatabaseURL       string
	RedisURL          string
	JWTSecret         string
	TokenTTL          time.Duration
	ExpoPushURL       string
	DashboardCacheTTL time.Duration
}

// Load loads config from env and an optional .env file.
func Load() (*Config, error) {
	viper.SetConfigFile(".env")
	_ = viper.ReadInConfig()

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	env := viper.GetString("APP_ENV")
	if env == "" {
		env = "development"
	}
	port := viper.GetString("PORT")
	if port == "" {
		port = "8080"
	}

	tokenTTL := viper.GetDuration("TOKEN_TTL")
	if tokenTTL == 0 {
		tokenTTL = 24 * time.Hour
	}
	cacheTTL := viper.GetDuration("DASHBOARD_CACHE_TTL")
	if cacheTTL == 0 {
		cacheTTL = time.Minute
	}
	pushURL := viper.GetString("EXPO_PUSH_URL")
	if pushURL == "" {
		pushURL = "https://exp.host/--/api/v2/push/send"
	}

	return &Config{
		Env:               env,
		Port:              port,
		DatabaseURL:       viper.GetString("DATABASE_URL"),
		RedisURL:          viper.GetString("REDIS_URL"),
		JWTSecret:         viper.GetString("JWT_SECRET"),
		TokenTTL:          tokenTTL,
		ExpoPushURL:       pushURL,
		DashboardCacheTTL: cacheTTL,
	}, nil
}
