package config

import (
	"log"
	"strings"

	"github.com/prasetya/kumpul/internal/pkg/models"
	"github.com/spf13/viper"
)

// InitConfig loads configuration from the environment, with an optional env
// file for local development. Environment variables always win.
func InitConfig(configPath string) *models.Config {
	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
		v.SetConfigType("env")
		if err := v.ReadInConfig(); err != nil {
			log.Println("error loading config from file", err)
		}
	}

	return configFromViper(v)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_NAME", "location-service")
	v.SetDefault("APP_ENV", "local")
	v.SetDefault("APP_DEBUG", true)
	v.SetDefault("APP_VERSION", "")

	v.SetDefault("SERVER_HOST", "")
	v.SetDefault("SERVER_PORT", 9990)
	v.SetDefault("SERVER_READ_TIMEOUT", 15)
	v.SetDefault("SERVER_WRITE_TIMEOUT", 15)
	v.SetDefault("SERVER_SHUTDOWN_TIMEOUT", 30)

	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", 5432)
	v.SetDefault("DB_USERNAME", "")
	v.SetDefault("DB_PASSWORD", "")
	v.SetDefault("DB_DATABASE", "kumpul")
	v.SetDefault("DB_SSL_MODE", "disable")
	v.SetDefault("DB_MAX_CONNS", 10)
	v.SetDefault("DB_IDLE_CONNS", 2)

	v.SetDefault("REDIS_HOST", "localhost")
	v.SetDefault("REDIS_PORT", 6379)
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("REDIS_POOL_SIZE", 10)

	v.SetDefault("NSQ_PRODUCER_ADDRESS", "localhost:4150")
	v.SetDefault("NSQ_LOOKUPD_ADDRESS", "localhost:4161")

	v.SetDefault("JWT_SECRET", "")
	v.SetDefault("JWT_EXPIRATION", 60)
	v.SetDefault("JWT_ISSUER", "kumpul")

	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FILE_PATH", "")

	v.SetDefault("IDENTITY_SERVICE_URL", "http://localhost:9980")
	v.SetDefault("EVENT_SERVICE_URL", "http://localhost:9981")
	v.SetDefault("SERVICE_API_KEY", "")

	v.SetDefault("LOCATION_ARRIVAL_RADIUS_M", 100.0)
	v.SetDefault("LOCATION_DEFAULT_RADIUS_M", 500.0)
	v.SetDefault("LOCATION_MAX_RADIUS_M", 10000.0)
	v.SetDefault("LOCATION_LIVE_TTL_HOURS", 24)
	v.SetDefault("LOCATION_GEOHASH_PRECISION", 9)
	v.SetDefault("GEOFENCE_DEFAULT_RADIUS_M", 100.0)
}

func configFromViper(v *viper.Viper) *models.Config {
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

	configs.NSQ.ProducerAddress = v.GetString("NSQ_PRODUCER_ADDRESS")
	configs.NSQ.LookupdAddress = v.GetString("NSQ_LOOKUPD_ADDRESS")

	configs.JWT.Secret = v.GetString("JWT_SECRET")
	configs.JWT.Expiration = v.GetInt("JWT_EXPIRATION")
	configs.JWT.Issuer = v.GetString("JWT_ISSUER")

	configs.Logger.Level = v.GetString("LOG_LEVEL")
	configs.Logger.FilePath = v.GetString("LOG_FILE_PATH")

	configs.Services.IdentityServiceURL = v.GetString("IDENTITY_SERVICE_URL")
	configs.Services.EventServiceURL = v.GetString("EVENT_SERVICE_URL")
	configs.Services.APIKey = v.GetString("SERVICE_API_KEY")

	configs.Location.ArrivalRadiusMeters = v.GetFloat64("LOCATION_ARRIVAL_RADIUS_M")
	configs.Location.DefaultRadiusMeters = v.GetFloat64("LOCATION_DEFAULT_RADIUS_M")
	configs.Location.MaxRadiusMeters = v.GetFloat64("LOCATION_MAX_RADIUS_M")
	configs.Location.LiveTTLHours = v.GetInt("LOCATION_LIVE_TTL_HOURS")
	configs.Location.GeohashPrecision = uint(v.GetInt("LOCATION_GEOHASH_PRECISION"))
	configs.Location.DefaultGeofenceRadius = v.GetFloat64("GEOFENCE_DEFAULT_RADIUS_M")

	return configs
}
