package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/DhavalSuthar-24/scoreboard/config"
	_ "github.com/DhavalSuthar-24/scoreboard/docs"
	"github.com/DhavalSuthar-24/scoreboard/internal/activity"
	"github.com/DhavalSuthar-24/scoreboard/internal/completion"
	"github.com/DhavalSuthar-24/scoreboard/internal/game"
	"github.com/DhavalSuthar-24/scoreboard/internal/notify"
	"github.com/DhavalSuthar-24/scoreboard/internal/officer"
	"github.com/DhavalSuthar-24/scoreboard/internal/seed"
	"github.com/DhavalSuthar-24/scoreboard/internal/team"
	"github.com/DhavalSuthar-24/scoreboard/routes"
)

// @title Officer Scoreboard API
// @version 1.0
// @description Result reporting, score ledger and officer challenge tracking for a color-team event.
// @host localhost:8088
// @BasePath /api
func main() {
	if err := config.Initialize(); err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	cfg := config.GetConfig()

	err := config.DB.AutoMigrate(
		&team.Team{}, &officer.Officer{},
		&game.Game{}, &game.GameResult{},
		&completion.OfficerCompletion{}, &activity.LogEntry{},
	)
	if err != nil {
		log.Fatalf("AutoMigrate failed: %v", err)
	}
	log.Println("AutoMigrate successful")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.Seed.File != "" {
		fixture, err := seed.Load(cfg.Seed.File)
		if err != nil {
			log.Fatalf("Failed to load seed file: %v", err)
		}
		sum, err := seed.Apply(ctx, config.DB, fixture)
		if err != nil {
			log.Fatalf("Failed to apply seed file: %v", err)
		}
		log.Printf("Seeded %d teams, %d games, %d officers from %s", sum.Teams, sum.Games, sum.Officers, cfg.Seed.File)
	}

	feed := notify.NewFeed(0)
	var notifier notify.Notifier = feed
	if len(cfg.Redis.Addrs) > 0 {
		client, err := notify.NewRedisClient(cfg.Redis.Addrs, cfg.Redis.Password)
		if err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		defer client.Close()

		bus := notify.NewRedisBus(client, cfg.Redis.Channel)
		notifier = bus
		go bus.Listen(ctx, feed, time.Second)
		log.Printf("Publishing changes on Redis channel %s", cfg.Redis.Channel)
	}

	r := routes.SetupRoutes(cfg, config.DB, feed, notifier)

	server := &http.Server{
		Addr:    ":" + cfg.App.Port,
		Handler: r,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			log.Printf("Server shutdown error: %v", err)
		}
	}()

	log.Printf("Starting server on port %s in %s mode\n", cfg.App.Port, cfg.App.Env)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatalf("Failed to run server: %v", err)
	}
	log.Println("Server stopped")
}
