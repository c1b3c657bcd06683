package models

// Config represents application configuration
type Config struct {
	App      AppConfig
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	NSQ      NSQConfig
	JWT      JWTConfig
	Support  SupportConfig
}

// AppConfig contains application-specific configuration
type AppConfig struct {
	Name        string
	Environment string
	Debug       bool
	Version     string
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Host            string
	Port            int
	ReadTimeout     int
	WriteTimeout    int
	ShutdownTimeout int
}

// DatabaseConfig contains database connection configuration
type DatabaseConfig struct {
	Host      string
	Port      int
	Username  string
	Password  string
	Database  string
	SSLMode   string
	MaxConns  int
	IdleConns int
}

// RedisConfig contains Redis connection configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	PoolSize int
}

// NSQConfig contains NSQ producer configuration
type NSQConfig struct {
	Address string
	Enabled bool
}

// JWTConfig contains JWT authentication configuration
type JWTConfig struct {
	Secret     string
	Expiration int // in minutes
	Issuer     string
}

// SupportConfig contains the keyword tables used to auto-classify incoming
// support conversations. Keywords are matched case-insensitively against the
// first message; the defaults are the Spanish terms passengers actually write.
type SupportConfig struct {
	ComplaintKeywords  []string
	SuggestionKeywords []string
	UrgentKeywords     []string
}

// DefaultSupportConfig returns the stock keyword tables.
func DefaultSupportConfig() SupportConfig {
	return SupportConfig{
		ComplaintKeywords:  []string{"queja", "reclamo", "malo", "pesimo", "terrible"},
		SuggestionKeywords: []string{"sugerencia", "sugiero", "mejorar", "propongo"},
		UrgentKeywords:     []string{"urgente", "emergencia", "inmediato"},
	}
}
