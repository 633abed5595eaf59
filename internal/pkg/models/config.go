package models

// Config represents application configuration
type Config struct {
	App      AppConfig
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	NSQ      NSQConfig
	JWT      JWTConfig
	Logger   LoggerConfig
	Location LocationConfig
	Services ServicesConfig
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

// NSQConfig contains NSQ connection configuration
type NSQConfig struct {
	ProducerAddress string // nsqd TCP address for publishing
	LookupdAddress  string // nsqlookupd HTTP address for consuming
}

// JWTConfig contains JWT authentication configuration
type JWTConfig struct {
	Secret     string
	Expiration int // in minutes
	Issuer     string
}

// LoggerConfig contains structured logging configuration
type LoggerConfig struct {
	Level    string
	FilePath string
}

// ServicesConfig contains URLs and credentials for collaborator services
type ServicesConfig struct {
	IdentityServiceURL string
	EventServiceURL    string
	APIKey             string
}

// LocationConfig contains tunables for the live location subsystem
type LocationConfig struct {
	ArrivalRadiusMeters   float64 // radius for the is_at_event check
	DefaultRadiusMeters   float64 // default proximity query radius
	MaxRadiusMeters       float64 // upper bound accepted from clients
	LiveTTLHours          int     // Redis TTL for live records
	GeohashPrecision      uint    // cell precision annotated on live records
	DefaultGeofenceRadius float64 // meters, when setup omits a radius
}
