package main

import (
	"context"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/BruksfildServices01/salon-admin/internal/config"
	"github.com/BruksfildServices01/salon-admin/internal/middleware"
	"github.com/BruksfildServices01/salon-admin/internal/routes"
	"github.com/BruksfildServices01/salon-admin/internal/storage"
	"github.com/BruksfildServices01/salon-admin/internal/store"
)

func main() {

	_ = godotenv.Load()
	cfg := config.Load()

	initLogger(cfg.AppEnv)

	backend, err := newBackend(cfg)
	if err != nil {
		log.Fatal().Err(err).Str("driver", cfg.StorageDriver).Msg("failed to open storage")
	}

	st := store.New(backend)
	if err := st.EnsureSuperAdmin(context.Background(), cfg.SuperAdminPassword); err != nil {
		log.Fatal().Err(err).Msg("failed to seed superadmin")
	}

	if cfg.AppEnv != "development" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()

	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, st, cfg)

	log.Info().Str("addr", cfg.Addr()).Str("storage", cfg.StorageDriver).Msg("server running")
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatal().Err(err).Msg("failed to start server")
	}
}

func initLogger(env string) {
	if env == "development" {
		log.Logger = log.Output(zerolog.ConsoleWriter{
			Out:        os.Stdout,
			TimeFormat: time.RFC3339,
		})
		return
	}
	log.Logger = zerolog.New(os.Stdout).With().Timestamp().Logger()
}

func newBackend(cfg *config.Config) (storage.Backend, error) {
	switch cfg.StorageDriver {
	case "memory":
		return storage.NewMemory(), nil
	case "redis":
		return storage.NewRedis(cfg.RedisURL)
	case "postgres":
		return storage.NewPostgres(cfg.DBUrl)
	default:
		return storage.NewFile(cfg.StorageDir)
	}
}
