package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fare-compare-api/internal/config"
	"fare-compare-api/internal/handler"
	"fare-compare-api/internal/repository"
	"fare-compare-api/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

//	@title			Fare Compare API
//	@version		1.0
//	@description	Estimates and ranks ride-hailing fares across providers and builds booking deep links.
//	@BasePath		/
func main() {
	config, err := config.LoadConfig("./configs")
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load config")
	}

	level, err := zerolog.ParseLevel(config.LogLevel)
	if err != nil {
		log.Fatal().Err(err).Str("level", config.LogLevel).Msg("invalid log level")
	}
	zerolog.SetGlobalLevel(level)
	gin.SetMode(config.GinMode)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	opts := service.ResolverOptions{
		APIKey:          config.GoogleAPIKey,
		BaseURL:         config.MapsBaseURL,
		Timeout:         config.RemoteTimeout,
		AverageSpeedKmh: config.AverageSpeedKmh,
		CacheTTL:        config.CacheTTL,
	}

	// Distance cache is optional and only matters for remote lookups
	if config.DBSource != "" && config.RemoteEnabled() {
		conn, err := pgxpool.New(ctx, config.DBSource)
		if err != nil {
			log.Fatal().Err(err).Msg("cannot connect to db")
		}
		defer conn.Close()

		cache := repository.NewDistanceCache(conn)
		if err := cache.EnsureSchema(ctx); err != nil {
			log.Fatal().Err(err).Msg("cannot prepare distance cache")
		}
		opts.Cache = cache
	}

	// Initialize layers
	resolver, err := service.NewDistanceResolver(opts)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot create distance resolver")
	}
	fareService := service.NewFareService(resolver, service.NewFareCalculator(service.DefaultProviders()))
	fareHandler := handler.NewFareHandler(fareService)

	srv := &http.Server{
		Addr:              config.ListenAddress(),
		Handler:           handler.NewRouter(fareHandler, config.CORSOrigin),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Info().Str("addr", srv.Addr).Msg("backend listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
