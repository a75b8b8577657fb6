package config

import (
	"reflect"
	"testing"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("DB_DRIVER", "postgres")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.App.Port != "8088" {
		t.Errorf("App.Port = %q, want %q", cfg.App.Port, "8088")
	}
	if cfg.Session.TTLMinutes != 720 {
		t.Errorf("Session.TTLMinutes = %d, want 720", cfg.Session.TTLMinutes)
	}
	if cfg.Redis.Channel != "scoreboard:changes" {
		t.Errorf("Redis.Channel = %q", cfg.Redis.Channel)
	}
	if len(cfg.Redis.Addrs) != 0 {
		t.Errorf("Redis.Addrs = %v, want empty", cfg.Redis.Addrs)
	}
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("DB_SQLITE_PATH", "/tmp/test.db")
	t.Setenv("FRONTEND_URL", "http://a.example,http://b.example")
	t.Setenv("REDIS_ADDRS", "redis-1:6379,redis-2:6379")
	t.Setenv("SESSION_TTL_MINUTES", "30")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.App.Port != "9000" {
		t.Errorf("App.Port = %q", cfg.App.Port)
	}
	if want := []string{"http://a.example", "http://b.example"}; !reflect.DeepEqual(cfg.App.FrontendURLs, want) {
		t.Errorf("FrontendURLs = %v, want %v", cfg.App.FrontendURLs, want)
	}
	if want := []string{"redis-1:6379", "redis-2:6379"}; !reflect.DeepEqual(cfg.Redis.Addrs, want) {
		t.Errorf("Redis.Addrs = %v, want %v", cfg.Redis.Addrs, want)
	}
	if cfg.Session.TTLMinutes != 30 {
		t.Errorf("Session.TTLMinutes = %d", cfg.Session.TTLMinutes)
	}
}

func TestLoadConfigRejectsUnknownDriver(t *testing.T) {
	t.Setenv("DB_DRIVER", "mysql")
	if _, err := LoadConfig(); err == nil {
		t.Fatal("expected error for unsupported driver")
	}
}

func TestLoadConfigRejectsBadInteger(t *testing.T) {
	t.Setenv("DB_DRIVER", "postgres")
	t.Setenv("SESSION_TTL_MINUTES", "soon")
	if _, err := LoadConfig(); err == nil {
		t.Fatal("expected error for non-integer SESSION_TTL_MINUTES")
	}
}

func TestDialectorName(t *testing.T) {
	cfg := &Config{}
	cfg.DB.Driver = "sqlite"
	cfg.DB.SQLitePath = ":memory:"
	if got := cfg.Dialector().Name(); got != "sqlite" {
		t.Errorf("Dialector().Name() = %q, want sqlite", got)
	}

	cfg.DB.Driver = "postgres"
	if got := cfg.Dialector().Name(); got != "postgres" {
		t.Errorf("Dialector().Name() = %q, want postgres", got)
	}
}
