package main

import (
	"context"
	"sync"

	"ClinicDesk/config"
	"ClinicDesk/config/db"
	"ClinicDesk/config/logger"
	"ClinicDesk/jobs"
	"ClinicDesk/migrations"
	"ClinicDesk/routes"
	"ClinicDesk/server"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

var (
	startServer = server.Start
	isTest      = false
)

func main() {
	run()
}

func run() {
	cfg := config.Load()
	logger.Init("clinicdesk", cfg.Env, cfg.LogLevel)

	defaultopts := server.GetDefaultOptions(cfg)
	if err := cfg.Validate(defaultopts.MongoEnabled); err != nil && !isTest {
		log.Fatal().Err(err).Msg("Invalid configuration")
	}

	// services are built once the connections are open
	var (
		app  *application
		once sync.Once
	)
	deps := func() *application {
		once.Do(func() { app = newApplication(cfg) })
		return app
	}

	options := server.Options{
		CacheEnabled:     defaultopts.CacheEnabled,
		RedisAddr:        defaultopts.RedisAddr,
		RedisPassword:    defaultopts.RedisPassword,
		RedisDB:          defaultopts.RedisDB,
		MongoEnabled:     defaultopts.MongoEnabled,
		MongoURI:         defaultopts.MongoURI,
		MongoDatabase:    defaultopts.MongoDatabase,
		WebServerEnabled: defaultopts.WebServerEnabled,
		WebServerPort:    defaultopts.WebServerPort,

		MigrationEnabled: defaultopts.MigrationEnabled && !isTest,
		MigrationHandler: func() {
			if isTest {
				return
			}
			if err := migrations.Run(context.Background(), db.DB); err != nil {
				log.Fatal().Err(err).Msg("Migration failed")
			}
		},

		JobsEnabled: defaultopts.JobsEnabled && !isTest,
		JobsHandler: func() {
			if isTest {
				return
			}
			a := deps()
			if cfg.SeedDirectory {
				if err := jobs.SeedDirectory(context.Background(), a.doctors); err != nil {
					log.Error().Err(err).Msg("Error seeding the doctor directory")
				}
			}
			if _, err := jobs.StartSyncScheduler(cfg.SyncSchedule, a.accounts); err != nil {
				log.Error().Err(err).Str("schedule", cfg.SyncSchedule).Msg("Error starting the sync scheduler")
			}
		},

		WebServerPreHandler: func(r *gin.Engine) {
			if isTest {
				return
			}
			r.Use(cors.New(cors.Config{
				AllowOrigins:     cfg.CORSOrigins,
				AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
				AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
				AllowCredentials: true,
			}))
			routes.Routes(r, deps().handlers())
		},
	}
	startServer(options)
}
