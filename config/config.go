package config

import (
	"fmt"
	"log"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const defaultSessionSecret = "change-me-session-secret"

type Config struct {
	App struct {
		Env          string   `env:"APP_ENV"      envDefault:"development"`
		Port         string   `env:"PORT"         envDefault:"8088"`
		FrontendURLs []string `env:"FRONTEND_URL" envDefault:"http://localhost:3000" envSeparator:","`
	}
	DB struct {
		Driver     string `env:"DB_DRIVER"      envDefault:"postgres"`
		Host       string `env:"DB_HOST"        envDefault:"localhost"`
		Port       string `env:"DB_PORT"        envDefault:"5432"`
		User       string `env:"DB_USER"        envDefault:"postgres"`
		Password   string `env:"DB_PASSWORD"    envDefault:"password"`
		Name       string `env:"DB_NAME"        envDefault:"scoreboard"`
		SSLMode    string `env:"DB_SSLMODE"     envDefault:"disable"`
		TimeZone   string `env:"DB_TIMEZONE"    envDefault:"UTC"`
		SQLitePath string `env:"DB_SQLITE_PATH" envDefault:"scoreboard.db"`
	}
	Session struct {
		Secret     string `env:"SESSION_SECRET"      envDefault:"change-me-session-secret"`
		TTLMinutes int    `env:"SESSION_TTL_MINUTES" envDefault:"720"`
	}
	Redis struct {
		Addrs    []string `env:"REDIS_ADDRS"    envSeparator:","`
		Password string   `env:"REDIS_PASSWORD"`
		Channel  string   `env:"REDIS_CHANNEL"  envDefault:"scoreboard:changes"`
	}
	Seed struct {
		File string `env:"SEED_FILE"`
	}
}

// Global DB instance, accessible after Initialize.
var DB *gorm.DB

var appConfig *Config
var once sync.Once

// LoadConfig reads an optional .env file and parses the environment into a Config.
func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found or error loading, relying on system environment variables.")
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	switch cfg.DB.Driver {
	case "postgres", "sqlite":
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q (want postgres or sqlite)", cfg.DB.Driver)
	}
	if cfg.Session.TTLMinutes <= 0 {
		return nil, fmt.Errorf("invalid SESSION_TTL_MINUTES: %d", cfg.Session.TTLMinutes)
	}

	if cfg.Session.Secret == defaultSessionSecret {
		log.Println("WARNING: Using default session secret. Please set SESSION_SECRET for production.")
	}
	if cfg.DB.Password == "password" && cfg.App.Env == "production" {
		log.Println("WARNING: Using default DB password in production. Please set DB_PASSWORD environment variable.")
	}

	appConfig = cfg
	return cfg, nil
}

// Dialector picks the gorm dialector for the configured driver.
func (c *Config) Dialector() gorm.Dialector {
	if c.DB.Driver == "sqlite" {
		return sqlite.Open(c.DB.SQLitePath)
	}
	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=%s",
		c.DB.Host,
		c.DB.User,
		c.DB.Password,
		c.DB.Name,
		c.DB.Port,
		c.DB.SSLMode,
		c.DB.TimeZone,
	)
	return postgres.Open(dsn)
}

// ConnectDB opens the database described by the configuration and sets the global DB.
func ConnectDB(dbCfg Config) (*gorm.DB, error) {
	gormConfig := &gorm.Config{}
	if dbCfg.App.Env == "development" {
		gormConfig.Logger = logger.Default.LogMode(logger.Info)
	} else {
		gormConfig.Logger = logger.Default.LogMode(logger.Silent)
	}

	gormDB, err := gorm.Open(dbCfg.Dialector(), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if dbCfg.DB.Driver == "sqlite" {
		// sqlite allows a single writer; serialize through one connection.
		sqlDB, err := gormDB.DB()
		if err != nil {
			return nil, fmt.Errorf("failed to access sql.DB: %w", err)
		}
		sqlDB.SetMaxOpenConns(1)
	}

	DB = gormDB
	log.Printf("Successfully connected to %s database!", dbCfg.DB.Driver)
	return gormDB, nil
}

// Initialize loads all configurations and connects to the database.
// This should be called once at the start of the application.
func Initialize() error {
	var loadErr error
	once.Do(func() {
		loadedCfg, err := LoadConfig()
		if err != nil {
			loadErr = fmt.Errorf("failed to load configuration: %w", err)
			return
		}
		appConfig = loadedCfg

		if _, err = ConnectDB(*appConfig); err != nil {
			loadErr = fmt.Errorf("failed to connect to database during initialization: %w", err)
			return
		}
	})
	return loadErr
}

// GetConfig returns the loaded application configuration.
func GetConfig() *Config {
	if appConfig == nil {
		log.Fatal("Configuration not loaded. Call config.Initialize() first.")
	}
	return appConfig
}
