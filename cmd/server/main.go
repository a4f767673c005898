package main

import (
	"anoa.com/classsite/internal/bootstrap"
	"anoa.com/classsite/internal/config"
	"anoa.com/classsite/internal/server"
	"anoa.com/classsite/internal/service"
	"anoa.com/classsite/pkg/database"
	"anoa.com/classsite/pkg/logger"
	"anoa.com/classsite/pkg/storage"
	"github.com/meilisearch/meilisearch-go"
	"github.com/redis/go-redis/v9"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log := logger.New(cfg.AppEnv)

	db, err := database.Connect(database.Config{
		URL:      cfg.DatabaseURL,
		Host:     cfg.DBHost,
		User:     cfg.DBUser,
		Password: cfg.DBPass,
		Name:     cfg.DBName,
		Port:     cfg.DBPort,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect database")
	}

	if err := bootstrap.Migrate(db); err != nil {
		log.Fatal().Err(err).Msg("migration failed")
	}
	if err := bootstrap.SeedAdminUser(db); err != nil {
		log.Fatal().Err(err).Msg("failed to seed admin user")
	}

	var redisClient *redis.Client
	if cfg.RedisURL != "" {
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			log.Fatal().Err(err).Msg("invalid REDIS_URL")
		}
		redisClient = redis.NewClient(opts)
	} else {
		log.Warn().Msg("REDIS_URL not set, settings cache disabled")
	}

	var searchIndex service.ArticleSearchIndex
	if cfg.MeiliSearchHost != "" {
		meiliClient := meilisearch.New(cfg.MeiliSearchHost, meilisearch.WithAPIKey(cfg.MeiliMasterKey))
		searchIndex = service.NewMeiliSearchService(meiliClient)
	} else {
		log.Warn().Msg("MEILISEARCH_HOST not set, article search falls back to the database")
	}

	mediaStorage, err := storage.NewCloudinaryStorage(cfg.CloudinaryUploadFolder)
	if err != nil {
		log.Warn().Err(err).Msg("cloudinary not configured, uploads disabled")
		mediaStorage = nil
	}

	mailer := service.NewSMTPMailer(cfg)
	if mailer == nil {
		log.Warn().Msg("SMTP not configured, contact notifications disabled")
	}

	srv := server.NewServer(cfg, db, redisClient, searchIndex, mediaStorage, mailer)

	log.Info().Str("port", cfg.Port).Msg("starting server")
	if err := srv.Run(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server exited with error")
	}
}
