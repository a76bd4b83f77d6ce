package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type AppConfig struct {
	Port               string
	Env                string
	Timezone           string
	DBDriver           string
	DBPath             string
	DBDSN              string
	JWTSecret          string
	AuthEnabled        bool
	DevLogin           bool
	RateLimitPerMinute int
	RedisAddr          string
	LogMode            string
	StageTemplatePath  string
}

func Load() AppConfig {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Printf("[cfg] No .env file found or error loading: %v", err)
	}

	get := func(k, def string) string {
		if v := strings.TrimSpace(os.Getenv(k)); v != "" {
			return v
		}
		return def
	}
	getBool := func(k string, def bool) bool {
		v, err := strconv.ParseBool(get(k, strconv.FormatBool(def)))
		if err != nil {
			return def
		}
		return v
	}
	getInt := func(k string, def int) int {
		v, err := strconv.Atoi(get(k, strconv.Itoa(def)))
		if err != nil || v <= 0 {
			return def
		}
		return v
	}

	return AppConfig{
		Port:               get("PORT", "8080"),
		Env:                get("APP_ENV", "development"),
		Timezone:           get("TZ", "Asia/Ho_Chi_Minh"),
		DBDriver:           strings.ToLower(get("DB_DRIVER", "sqlite")),
		DBPath:             get("DB_PATH", "farmbook.db"),
		DBDSN:              get("DB_DSN", ""),
		JWTSecret:          get("JWT_SECRET", ""),
		AuthEnabled:        getBool("AUTH_ENABLED", true),
		DevLogin:           getBool("DEV_LOGIN", false),
		RateLimitPerMinute: getInt("RATE_LIMIT_PER_MINUTE", 60),
		RedisAddr:          get("REDIS_ADDR", ""),
		LogMode:            get("LOG_MODE", "dev"),
		StageTemplatePath:  get("STAGE_TEMPLATE_PATH", ""),
	}
}

// Fields returns the config as logger key/values. The JWT secret is passed
// under a redacted key.
func (c AppConfig) Fields() []any {
	return []any{
		"port", c.Port,
		"env", c.Env,
		"db_driver", c.DBDriver,
		"db_path", c.DBPath,
		"auth_enabled", c.AuthEnabled,
		"dev_login", c.DevLogin,
		"rate_limit_per_minute", c.RateLimitPerMinute,
		"redis_addr", c.RedisAddr,
		"jwt_secret", c.JWTSecret,
	}
}
