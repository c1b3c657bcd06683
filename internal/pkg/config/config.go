package config

import (
	"log"

	"github.com/spf13/viper"

	"github.com/rioatrato/transchoco/internal/pkg/models"
)

// InitConfig loads configuration from an env file (when present) and the
// process environment, environment taking precedence.
func InitConfig(configPath string) *models.Config {
	v := viper.New()
	v.SetConfigFile(configPath)
	v.SetConfigType("env")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		log.Println("error loading config from file", err)
	}

	setDefaults(v)
	return loadConfig(v)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_NAME", "transchoco-api")
	v.SetDefault("APP_ENV", "local")
	v.SetDefault("APP_DEBUG", true)
	v.SetDefault("APP_VERSION", "dev")

	v.SetDefault("SERVER_HOST", "0.0.0.0")
	v.SetDefault("SERVER_PORT", 8080)
	v.SetDefault("SERVER_READ_TIMEOUT", 15)
	v.SetDefault("SERVER_WRITE_TIMEOUT", 15)
	v.SetDefault("SERVER_SHUTDOWN_TIMEOUT", 10)

	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", 5432)
	v.SetDefault("DB_SSL_MODE", "disable")
	v.SetDefault("DB_MAX_CONNS", 10)
	v.SetDefault("DB_IDLE_CONNS", 2)

	v.SetDefault("REDIS_HOST", "localhost")
	v.SetDefault("REDIS_PORT", 6379)
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("REDIS_POOL_SIZE", 10)

	v.SetDefault("NSQ_ADDRESS", "localhost:4150")
	v.SetDefault("NSQ_ENABLED", false)

	v.SetDefault("JWT_EXPIRATION", 120)
	v.SetDefault("JWT_ISSUER", "transchoco")
}

func loadConfig(v *viper.Viper) *models.Config {
	configs := &models.Config{}

	configs.App.Name = v.GetString("APP_NAME")
	configs.App.Environment = v.GetString("APP_ENV")
	configs.App.Debug = v.GetBool("APP_DEBUG")
	configs.App.Version = v.GetString("APP_VERSION")

	configs.Server.Host = v.GetString("SERVER_HOST")
	configs.Server.Port = v.GetInt("SERVER_PORT")
	configs.Server.ReadTimeout = v.GetInt("SERVER_READ_TIMEOUT")
	configs.Server.WriteTimeout = v.GetInt("SERVER_WRITE_TIMEOUT")
	configs.Server.ShutdownTimeout = v.GetInt("SERVER_SHUTDOWN_TIMEOUT")

	configs.Database.Host = v.GetString("DB_HOST")
	configs.Database.Port = v.GetInt("DB_PORT")
	configs.Database.Username = v.GetString("DB_USERNAME")
	configs.Database.Password = v.GetString("DB_PASSWORD")
	configs.Database.Database = v.GetString("DB_DATABASE")
	configs.Database.SSLMode = v.GetString("DB_SSL_MODE")
	configs.Database.MaxConns = v.GetInt("DB_MAX_CONNS")
	configs.Database.IdleConns = v.GetInt("DB_IDLE_CONNS")

	configs.Redis.Host = v.GetString("REDIS_HOST")
	configs.Redis.Port = v.GetInt("REDIS_PORT")
	configs.Redis.Password = v.GetString("REDIS_PASSWORD")
	configs.Redis.DB = v.GetInt("REDIS_DB")
	configs.Redis.PoolSize = v.GetInt("REDIS_POOL_SIZE")

	configs.NSQ.Address = v.GetString("NSQ_ADDRESS")
	configs.NSQ.Enabled = v.GetBool("NSQ_ENABLED")

	configs.JWT.Secret = v.GetString("JWT_SECRET")
	configs.JWT.Expiration = v.GetInt("JWT_EXPIRATION")
	configs.JWT.Issuer = v.GetString("JWT_ISSUER")

	configs.Support = models.DefaultSupportConfig()
	if kw := v.GetStringSlice("SUPPORT_COMPLAINT_KEYWORDS"); len(kw) > 0 {
		configs.Support.ComplaintKeywords = kw
	}
	if kw := v.GetStringSlice("SUPPORT_SUGGESTION_KEYWORDS"); len(kw) > 0 {
		configs.Support.SuggestionKeywords = kw
	}
	if kw := v.GetStringSlice("SUPPORT_URGENT_KEYWORDS"); len(kw) > 0 {
		configs.Support.UrgentKeywords = kw
	}

	return configs
}
