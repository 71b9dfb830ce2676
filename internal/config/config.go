package config

import (
	"fmt"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	SessionStoreMemory   = "memory"
	SessionStorePostgres = "postgres"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Gemini   GeminiConfig
	Storage  StorageConfig
	Session  SessionConfig
	Log      LogConfig
}

type ServerConfig struct {
	Port         string
	Env          string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
}

type GeminiConfig struct {
	APIKey      string
	Model       string
	Temperature float32
	BaseURL     string
}

type StorageConfig struct {
	MaxFileSize int64
}

type SessionConfig struct {
	Store string
}

type LogConfig struct {
	JSON  bool
	Debug bool
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found. Using environment and default values.")
	}

	return FromViper(newViper())
}

func newViper() *viper.Viper {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("PORT", "3000")
	v.SetDefault("ENV", "development")
	v.SetDefault("READ_TIMEOUT", "30s")
	v.SetDefault("WRITE_TIMEOUT", "2m")

	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_PASSWORD", "postgres")
	v.SetDefault("DB_NAME", "interview_coach")

	v.SetDefault("GEMINI_API_KEY", "")
	v.SetDefault("GEMINI_MODEL", "gemini-2.5-flash")
	v.SetDefault("GEMINI_TEMPERATURE", 0.7)
	v.SetDefault("GEMINI_BASE_URL", "")

	v.SetDefault("MAX_FILE_SIZE", 10485760)
	v.SetDefault("SESSION_STORE", SessionStoreMemory)

	v.SetDefault("LOG_JSON", false)
	v.SetDefault("LOG_DEBUG", false)

	return v
}

// FromViper builds a Config from an already populated viper instance.
func FromViper(v *viper.Viper) *Config {
	return &Config{
		Server: ServerConfig{
			Port:         v.GetString("PORT"),
			Env:          v.GetString("ENV"),
			ReadTimeout:  v.GetDuration("READ_TIMEOUT"),
			WriteTimeout: v.GetDuration("WRITE_TIMEOUT"),
		},
		Database: DatabaseConfig{
			Host:     v.GetString("DB_HOST"),
			Port:     v.GetString("DB_PORT"),
			User:     v.GetString("DB_USER"),
			Password: v.GetString("DB_PASSWORD"),
			DBName:   v.GetString("DB_NAME"),
		},
		Gemini: GeminiConfig{
			APIKey:      v.GetString("GEMINI_API_KEY"),
			Model:       v.GetString("GEMINI_MODEL"),
			Temperature: float32(v.GetFloat64("GEMINI_TEMPERATURE")),
			BaseURL:     v.GetString("GEMINI_BASE_URL"),
		},
		Storage: StorageConfig{
			MaxFileSize: v.GetInt64("MAX_FILE_SIZE"),
		},
		Session: SessionConfig{
			Store: v.GetString("SESSION_STORE"),
		},
		Log: LogConfig{
			JSON:  v.GetBool("LOG_JSON"),
			Debug: v.GetBool("LOG_DEBUG"),
		},
	}
}

func (c *Config) Validate() error {
	if c.Gemini.APIKey == "" {
		return fmt.Errorf("GEMINI_API_KEY is required")
	}

	switch c.Session.Store {
	case SessionStoreMemory, SessionStorePostgres:
	default:
		return fmt.Errorf("unknown SESSION_STORE %q (want %q or %q)", c.Session.Store, SessionStoreMemory, SessionStorePostgres)
	}

	if c.Storage.MaxFileSize <= 0 {
		return fmt.Errorf("MAX_FILE_SIZE must be positive")
	}

	return nil
}

func (c *Config) GetDatabaseDSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.DBName,
	)
}
