package config

import (
	"strings"

	"github.com/spf13/viper"
)

// Config holds every runtime setting. Values come from environment variables
// first, then an optional .env file, then the defaults below.
type Config struct {
	ServerHost string
	ServerPort int

	// DatabaseURL selects postgres when set (deployment); otherwise the
	// sqlite file at DatabaseDbPath is used (local dev and tests).
	DatabaseURL    string
	DatabaseDbPath string
	// DatabaseSeed inserts the development fixtures on startup.
	DatabaseSeed bool

	// Cache is optional. When DatabaseCacheAddress is empty the server runs
	// without a cache tier.
	DatabaseCacheAddress string
	DatabaseCachePort    int

	CorsAllowOrigins string
	LogLevel         string
}

func InitConfig() (Config, error) {
	v := viper.New()

	v.SetDefault("server_host", "0.0.0.0")
	v.SetDefault("server_port", 8000)
	v.SetDefault("database_url", "")
	v.SetDefault("database_db_path", "data/app.db")
	v.SetDefault("database_seed", false)
	v.SetDefault("database_cache_address", "")
	v.SetDefault("database_cache_port", 6379)
	v.SetDefault("cors_allow_origins", "*")
	v.SetDefault("log_level", "info")

	v.SetConfigFile(".env")
	v.SetConfigType("env")
	_ = v.ReadInConfig() // missing .env is fine

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	config := Config{
		ServerHost:           v.GetString("server_host"),
		ServerPort:           v.GetInt("server_port"),
		DatabaseURL:          normalizeDatabaseURL(v.GetString("database_url")),
		DatabaseDbPath:       v.GetString("database_db_path"),
		DatabaseSeed:         v.GetBool("database_seed"),
		DatabaseCacheAddress: v.GetString("database_cache_address"),
		DatabaseCachePort:    v.GetInt("database_cache_port"),
		CorsAllowOrigins:     v.GetString("cors_allow_origins"),
		LogLevel:             v.GetString("log_level"),
	}

	return config, nil
}

// normalizeDatabaseURL rewrites the postgres:// scheme some platforms hand out
// to the postgresql:// form the driver expects.
func normalizeDatabaseURL(url string) string {
	if strings.HasPrefix(url, "postgres://") {
		return strings.Replace(url, "postgres://", "postgresql://", 1)
	}
	return url
}
