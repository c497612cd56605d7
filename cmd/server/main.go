package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/zaidanavila-beep/daily-focus-hub/internal/config"
	"github.com/zaidanavila-beep/daily-focus-hub/internal/server"
)

func main() {
	_ = godotenv.Load()

	log := zerolog.New(os.Stderr).With().Timestamp().Logger()
	if os.Getenv("FOCUSHUB_PRETTY_LOG") != "" {
		log = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}

	cfg, err := config.Load(configPath())
	if err != nil {
		log.Fatal().Err(err).Msg("load config")
	}

	app, err := server.New(server.Options{
		Config:        cfg,
		Log:           log,
		UseDiskStatic: server.UseDiskStaticByEnv(),
	})
	if err != nil {
		log.Fatal().Err(err).Msg("build server")
	}

	srv := &http.Server{
		Addr:    cfg.Server.Addr,
		Handler: app.Handler(),
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Info().Str("addr", cfg.Server.Addr).Msg("listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("serve")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("shutdown")
	}
	app.Close()
}

func configPath() string {
	if p := os.Getenv("FOCUSHUB_CONFIG"); p != "" {
		return p
	}
	return "focushub.yaml"
}
