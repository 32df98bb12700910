package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	gormlogger "gorm.io/gorm/logger"

	"renova-server/internal/config"
	"renova-server/internal/domain/asset"
	"renova-server/internal/domain/booking"
	"renova-server/internal/domain/generation"
	"renova-server/internal/domain/photo"
	"renova-server/internal/domain/shop"
	"renova-server/internal/domain/user"
	"renova-server/internal/infrastructure/aiclient"
	"renova-server/internal/infrastructure/auth"
	"renova-server/internal/infrastructure/database"
	"renova-server/internal/infrastructure/database/repository/bookingrepo"
	"renova-server/internal/infrastructure/database/repository/photorepo"
	"renova-server/internal/infrastructure/database/repository/userrepo"
	"renova-server/internal/infrastructure/logger"
	"renova-server/internal/infrastructure/observability"
	"renova-server/internal/infrastructure/places"
	"renova-server/internal/infrastructure/storage"
	"renova-server/internal/interfaces/httpserver"
	"renova-server/internal/interfaces/httpserver/handlers"
)

type Application struct {
	httpServer *httpserver.HttpServer
	log        zerolog.Logger
}

func NewApplication(httpServer *httpserver.HttpServer, log zerolog.Logger) *Application {
	return &Application{
		httpServer: httpServer,
		log:        log,
	}
}

func (a *Application) Start(ctx context.Context) error {
	return a.httpServer.Run(ctx)
}

func main() {
	loadEnvFiles()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log, err := logger.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		panic(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTelemetry, err := observability.Setup(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("initialize observability")
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := shutdownTelemetry(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("shutdown telemetry")
		}
	}()

	db, err := database.Connect(database.Config{
		DatabaseURL: cfg.DatabaseURL,
		MaxIdle:     cfg.DBMaxIdleConns,
		MaxOpen:     cfg.DBMaxOpenConns,
		MaxLifetime: cfg.DBConnLifetime,
		LogLevel:    gormlogger.Warn,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("connect database")
	}
	if cfg.AutoMigrate {
		if err := database.AutoMigrate(db); err != nil {
			log.Fatal().Err(err).Msg("migrate database")
		}
	}

	var assetStorage asset.Storage
	assetDir := ""
	if cfg.IsS3Storage() {
		s3Storage, err := storage.NewS3Storage(ctx, cfg, log)
		if err != nil {
			log.Fatal().Err(err).Msg("initialize s3 storage")
		}
		assetStorage = s3Storage
	} else {
		localStorage, err := storage.NewLocalStorage(cfg, log)
		if err != nil {
			log.Fatal().Err(err).Msg("initialize local storage")
		}
		assetStorage = localStorage
		assetDir = localStorage.BasePath()
	}

	tokens, err := auth.NewTokenManager(cfg.JWTSecret, cfg.JWTExpiry)
	if err != nil {
		log.Fatal().Err(err).Msg("initialize token manager")
	}

	userService := user.NewService(userrepo.NewUserGormRepository(db), cfg.BcryptCost)
	photoService := photo.NewService(photorepo.NewPhotoGormRepository(db), assetStorage)
	bookingService := booking.NewService(bookingrepo.NewBookingGormRepository(db))
	shopService := shop.NewService(places.NewClient(cfg.MapAPIKey, cfg.PlacesTimeout), cfg.PlacesMaxResults, log)

	provider := aiclient.NewClient(cfg.GeminiAPIKey, cfg.GeminiTimeout, log)
	validator, err := generation.NewUploadValidator(cfg.AssetDir, log)
	if err != nil {
		log.Fatal().Err(err).Msg("initialize upload validator")
	}
	generationService := generation.NewService(
		provider,
		validator,
		generation.NewMaterializer(assetStorage, log),
		cfg.ImageModel,
		cfg.TextModel,
		log,
	)

	handlerProvider := handlers.NewProvider(cfg, userService, tokens, photoService, bookingService, shopService, generationService, log)
	httpServer := httpserver.New(cfg, log, handlerProvider, tokens, assetDir)
	app := NewApplication(httpServer, log)

	if err := app.Start(ctx); err != nil {
		log.Fatal().Err(err).Msg("application stopped with error")
	}

	log.Info().Msg("application exited cleanly")
}

func loadEnvFiles() {
	paths := []string{".env", "../.env"}
	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			if err := godotenv.Overload(path); err != nil {
				fmt.Fprintf(os.Stderr, "warning: failed to load %s: %v\n", path, err)
			}
		}
	}
}
