package config

import (
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server     ServerConfig
	Database   DatabaseConfig
	JWT        JWTConfig
	Admin      AdminConfig
	Cloudinary CloudinaryConfig
	Redis      RedisConfig
	Weather    WeatherConfig
	Log        LogConfig
}

type ServerConfig struct {
	Port         string
	Env          string
	BaseURL      string
	CORSOrigin   string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type DatabaseConfig struct {
	DSN             string
	MaxIdleConns    int
	MaxOpenConns    int
	ConnMaxLifetime time.Duration
}

type JWTConfig struct {
	Secret string
	Expiry time.Duration
	Issuer string
}

// AdminConfig seeds the initial dashboard account when the users table is empty.
type AdminConfig struct {
	Name     string
	Email    string
	Password string
}

type CloudinaryConfig struct {
	CloudName string
	APIKey    string
	APISecret string
}

type RedisConfig struct {
	Addr     string // empty disables the weather cache
	Password string
	DB       int
}

type WeatherConfig struct {
	BaseURL   string
	Latitude  float64
	Longitude float64
	Timezone  string
	CacheTTL  time.Duration
}

type LogConfig struct {
	Level string
}

func Load() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")
	viper.AutomaticEnv()

	viper.SetDefault("PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("BASE_URL", "http://localhost:8080")
	viper.SetDefault("CORS_ORIGIN", "*")
	viper.SetDefault("DB_MAX_IDLE_CONNS", 10)
	viper.SetDefault("DB_MAX_OPEN_CONNS", 50)
	viper.SetDefault("DB_CONN_MAX_LIFETIME_MIN", 60)
	viper.SetDefault("JWT_SECRET", "change-me-in-production")
	viper.SetDefault("JWT_EXPIRY_HOURS", 24)
	viper.SetDefault("JWT_ISSUER", "pesona")
	viper.SetDefault("ADMIN_NAME", "Administrator")
	viper.SetDefault("ADMIN_EMAIL", "admin@pesona.local")
	viper.SetDefault("ADMIN_PASSWORD", "admin12345")
	viper.SetDefault("WEATHER_BASE_URL", "https://api.open-meteo.com")
	viper.SetDefault("WEATHER_LATITUDE", -3.0024)
	viper.SetDefault("WEATHER_LONGITUDE", 119.8204)
	viper.SetDefault("WEATHER_TIMEZONE", "Asia/Makassar")
	viper.SetDefault("WEATHER_CACHE_TTL_MIN", 30)
	viper.SetDefault("LOG_LEVEL", "info")

	// A missing .env is fine; env vars and defaults still apply.
	_ = viper.ReadInConfig()

	cfg := &Config{
		Server: ServerConfig{
			Port:         viper.GetString("PORT"),
			Env:          viper.GetString("ENV"),
			BaseURL:      viper.GetString("BASE_URL"),
			CORSOrigin:   viper.GetString("CORS_ORIGIN"),
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 10 * time.Second,
		},
		Database: DatabaseConfig{
			DSN:             viper.GetString("DB_DSN"),
			MaxIdleConns:    viper.GetInt("DB_MAX_IDLE_CONNS"),
			MaxOpenConns:    viper.GetInt("DB_MAX_OPEN_CONNS"),
			ConnMaxLifetime: time.Duration(viper.GetInt("DB_CONN_MAX_LIFETIME_MIN")) * time.Minute,
		},
		JWT: JWTConfig{
			Secret: viper.GetString("JWT_SECRET"),
			Expiry: time.Duration(viper.GetInt("JWT_EXPIRY_HOURS")) * time.Hour,
			Issuer: viper.GetString("JWT_ISSUER"),
		},
		Admin: AdminConfig{
			Name:     viper.GetString("ADMIN_NAME"),
			Email:    viper.GetString("ADMIN_EMAIL"),
			Password: viper.GetString("ADMIN_PASSWORD"),
		},
		Cloudinary: CloudinaryConfig{
			CloudName: viper.GetString("CLOUDINARY_CLOUD_NAME"),
			APIKey:    viper.GetString("CLOUDINARY_API_KEY"),
			APISecret: viper.GetString("CLOUDINARY_API_SECRET"),
		},
		Redis: RedisConfig{
			Addr:     viper.GetString("REDIS_ADDR"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		Weather: WeatherConfig{
			BaseURL:   viper.GetString("WEATHER_BASE_URL"),
			Latitude:  viper.GetFloat64("WEATHER_LATITUDE"),
			Longitude: viper.GetFloat64("WEATHER_LONGITUDE"),
			Timezone:  viper.GetString("WEATHER_TIMEZONE"),
			CacheTTL:  time.Duration(viper.GetInt("WEATHER_CACHE_TTL_MIN")) * time.Minute,
		},
		Log: LogConfig{
			Level: viper.GetString("LOG_LEVEL"),
		},
	}
	return cfg, nil
}
