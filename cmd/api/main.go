package main

import (
	"context"
	"net/http"
	"os"
	"time"

	"pets-day-registration/internal/adapters/auth/token"
	s3media "pets-day-registration/internal/adapters/media/s3"
	"pets-day-registration/internal/adapters/storage/postgres"
	"pets-day-registration/internal/adapters/storage/supabase"
	"pets-day-registration/internal/platform/config"
	"pets-day-registration/internal/platform/logger"
	"pets-day-registration/internal/router"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		os.Stderr.WriteString("config: " + err.Error() + "\n")
		os.Exit(1)
	}

	log := logger.New(logger.ParseLevel(cfg.LogLevel), logger.ParseFormat(cfg.LogFormat), cfg.AppName)

	opts := router.Options{
		Log:            log,
		WorkflowTTL:    cfg.WorkflowTTL,
		SearchCacheTTL: cfg.SearchCacheTTL,
	}

	if cfg.JWTSecret != "" {
		tokens, err := token.New(cfg.JWTSecret, cfg.TokenTTL)
		if err != nil {
			log.Error("token manager", map[string]any{"error": err.Error()})
			os.Exit(1)
		}
		opts.Tokens = tokens
	} else {
		log.Warn("JWT_SECRET vacío: auth en modo dev", nil)
	}

	switch {
	case cfg.DBDSN != "":
		db, err := postgres.Open(cfg.DBDSN)
		if err != nil {
			log.Error("postgres open", map[string]any{"error": err.Error()})
			os.Exit(1)
		}
		defer db.Close()

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		if err := postgres.EnsureSchema(ctx, db); err != nil {
			cancel()
			log.Error("postgres schema", map[string]any{"error": err.Error()})
			os.Exit(1)
		}
		cancel()
		opts.DB = db
		log.Info("storage: postgres", nil)
	case cfg.SupabaseURL != "":
		gw, err := supabase.New(supabase.Config{
			BaseURL:    cfg.SupabaseURL,
			ServiceKey: cfg.SupabaseKey,
			Timeout:    10 * time.Second,
		})
		if err != nil {
			log.Error("supabase gateway", map[string]any{"error": err.Error()})
			os.Exit(1)
		}
		opts.Supabase = gw
		log.Info("storage: supabase", nil)
	default:
		log.Warn("sin DB_DSN ni SUPABASE_URL: storage in-memory", nil)
	}

	if cfg.PhotoBucket != "" {
		store, err := s3media.New(context.Background(), cfg.PhotoBucket)
		if err != nil {
			log.Error("s3 store", map[string]any{"error": err.Error()})
			os.Exit(1)
		}
		opts.MediaStore = store
	}

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router.NewRouter(opts),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	log.Info("starting server", map[string]any{"addr": srv.Addr})
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Error("server error", map[string]any{"error": err.Error()})
		os.Exit(1)
	}
}
