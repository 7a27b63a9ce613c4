package server

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"ClinicDesk/config"
	"ClinicDesk/config/db"
	"ClinicDesk/config/logger"
	cache "ClinicDesk/config/redis"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

const shutdownTimeout = 10 * time.Second

// Options decides which parts of the process come up and in what order.
type Options struct {
	CacheEnabled     bool
	RedisAddr        string
	RedisPassword    string
	RedisDB          int
	MongoEnabled     bool
	MongoURI         string
	MongoDatabase    string
	WebServerEnabled bool
	WebServerPort    string

	MigrationEnabled bool
	MigrationHandler func()

	JobsEnabled bool
	JobsHandler func()

	// WebServerPreHandler registers middleware and routes before listening.
	WebServerPreHandler func(r *gin.Engine)
}

func GetDefaultOptions(cfg config.Config) Options {
	return Options{
		CacheEnabled:     cfg.CacheEnabled,
		RedisAddr:        cfg.RedisAddr,
		RedisPassword:    cfg.RedisPassword,
		RedisDB:          cfg.RedisDB,
		MongoEnabled:     true,
		MongoURI:         cfg.MongoURI,
		MongoDatabase:    cfg.MongoDB,
		WebServerEnabled: true,
		WebServerPort:    cfg.Port,
		MigrationEnabled: cfg.MigrationsEnabled,
		JobsEnabled:      cfg.JobsEnabled,
	}
}

/*
* Open mongo and redis, run migrations and jobs, then serve
* Blocks until SIGINT/SIGTERM and shuts down gracefully
* A redis failure only disables the cache
 */
func Start(opts Options) {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if opts.MongoEnabled {
		if err := db.Connect(ctx, opts.MongoURI, opts.MongoDatabase); err != nil {
			log.Fatal().Err(err).Msg("MongoDB Connection Error")
		}
		defer func() {
			if err := db.Disconnect(context.Background()); err != nil {
				log.Error().Err(err).Msg("Error while disconnecting MongoDB")
			}
		}()
	}
	if opts.CacheEnabled {
		if err := cache.Connect(ctx, opts.RedisAddr, opts.RedisPassword, opts.RedisDB); err != nil {
			log.Warn().Err(err).Msg("Redis unavailable, running without cache")
		} else {
			defer cache.Close()
		}
	}

	if opts.MigrationEnabled && opts.MigrationHandler != nil {
		opts.MigrationHandler()
	}
	if opts.JobsEnabled && opts.JobsHandler != nil {
		opts.JobsHandler()
	}
	if !opts.WebServerEnabled {
		<-ctx.Done()
		return
	}

	r := NewEngine(opts.WebServerPreHandler)
	srv := &http.Server{
		Addr:              ":" + opts.WebServerPort,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		log.Info().Str("port", opts.WebServerPort).Msg("Server running")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Error from ListenAndServe")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Error from server Shutdown")
	}
}

// NewEngine builds the gin engine with recovery and request logging.
func NewEngine(pre func(r *gin.Engine)) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), logger.GinLogger())
	if pre != nil {
		pre(r)
	}
	return r
}
