package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	Server     ServerConfig
	Database   DatabaseConfig
	JWT        JWTConfig
	Cloudinary CloudinaryConfig
	Upload     UploadConfig
	Admin      AdminConfig
}

type ServerConfig struct {
	Port         string
	Env          string
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
	AccessSecret  string
	RefreshSecret string
	AccessExpiry  time.Duration
	RefreshExpiry time.Duration
	Issuer        string
}

type CloudinaryConfig struct {
	CloudName  string
	APIKey     string
	APISecret  string
	RootFolder string // top-level folder for all app assets
}

// UploadConfig holds the per-category file-size caps. One named constant
// per asset category; screens must not carry their own limits.
type UploadConfig struct {
	MaxImageBytes    int64
	MaxAudioBytes    int64
	MaxVideoBytes    int64
	MaxDocumentBytes int64
	Timeout          time.Duration // bound on the provider-side upload call
}

// AdminConfig is the seed account for the console login.
type AdminConfig struct {
	Email    string
	Password string
	Name     string
}

func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Port:         getenv("PORT", "8080"),
			Env:          getenv("APP_ENV", "development"),
			ReadTimeout:  getenvDuration("SERVER_READ_TIMEOUT", 60*time.Second),
			WriteTimeout: getenvDuration("SERVER_WRITE_TIMEOUT", 60*time.Second),
		},
		Database: DatabaseConfig{
			DSN:             getenv("DATABASE_DSN", "arklight:arklight@tcp(localhost:3306)/arklight?charset=utf8mb4&parseTime=True&loc=Local"),
			MaxIdleConns:    getenvInt("DB_MAX_IDLE_CONNS", 10),
			MaxOpenConns:    getenvInt("DB_MAX_OPEN_CONNS", 100),
			ConnMaxLifetime: getenvDuration("DB_CONN_MAX_LIFETIME", time.Hour),
		},
		JWT: JWTConfig{
			AccessSecret:  getenv("JWT_ACCESS_SECRET", "change-me-in-production"),
			RefreshSecret: getenv("JWT_REFRESH_SECRET", "change-me-refresh"),
			AccessExpiry:  getenvDuration("JWT_ACCESS_EXPIRY", 12*time.Hour),
			RefreshExpiry: getenvDuration("JWT_REFRESH_EXPIRY", 168*time.Hour),
			Issuer:        getenv("JWT_ISSUER", "arklight-admin"),
		},
		Cloudinary: CloudinaryConfig{
			CloudName:  getenv("CLOUDINARY_CLOUD_NAME", ""),
			APIKey:     getenv("CLOUDINARY_API_KEY", ""),
			APISecret:  getenv("CLOUDINARY_API_SECRET", ""),
			RootFolder: getenv("CLOUDINARY_ROOT_FOLDER", "arkoflight"),
		},
		Upload: UploadConfig{
			MaxImageBytes:    getenvInt64("UPLOAD_MAX_IMAGE_BYTES", 5<<20),
			MaxAudioBytes:    getenvInt64("UPLOAD_MAX_AUDIO_BYTES", 10<<20),
			MaxVideoBytes:    getenvInt64("UPLOAD_MAX_VIDEO_BYTES", 50<<20),
			MaxDocumentBytes: getenvInt64("UPLOAD_MAX_DOCUMENT_BYTES", 10<<20),
			Timeout:          getenvDuration("UPLOAD_TIMEOUT", 50*time.Second),
		},
		Admin: AdminConfig{
			Email:    getenv("ADMIN_EMAIL", "admin@arkoflight.org"),
			Password: getenv("ADMIN_PASSWORD", "change-me-in-production"),
			Name:     getenv("ADMIN_NAME", "Admin"),
		},
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getenvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func getenvInt64(key string, fallback int64) int64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	return fallback
}

func getenvDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
