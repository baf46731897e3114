// Package main реализует точку входа сервиса рабочего пространства.
package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	sessioncache "workdesk/internal/session/adapters/cache"
	sessionpg "workdesk/internal/session/adapters/postgres"
	sessionservices "workdesk/internal/session/adapters/services"
	sessionapp "workdesk/internal/session/app"
	httpserver "workdesk/internal/workspace/adapters/http"
	workspacepg "workdesk/internal/workspace/adapters/postgres"
	"workdesk/internal/workspace/app"
	"workdesk/internal/workspace/config"
	"workdesk/internal/workspace/db"
	redisdb "workdesk/pkg/db/redis"
	"workdesk/pkg/logger"
	"workdesk/pkg/shutdown"
)

// Константы для переменных окружения.
const (
	EnvLoggerMode  = "WORKDESK_LOGGER_MODE"
	EnvLoggerLevel = "WORKDESK_LOGGER_LEVEL"
)

// Константы для сообщений об ошибках.
const (
	ErrInitLogger           = "failed to initialize logger"
	ErrSyncLogger           = "failed to sync logger"
	ErrLoadConfig           = "failed to load configuration"
	ErrInitLoggerWithConfig = "failed to initialize logger with configuration settings"
	ErrInitDB               = "failed to initialize database"
	ErrInitRedis            = "failed to initialize redis client"
	ErrLoadCollections      = "failed to load workspace collections"
	ErrStartHTTPServer      = "failed to start HTTP server"
	ErrWriteAutosave        = "failed to write autosave snapshot"
)

// Константы для игнорируемых ошибок.
const (
	ErrSyncStderr = "sync /dev/stderr: invalid argument"
	ErrSyncStdout = "sync /dev/stdout: invalid argument"
)

// Константы для сообщений сервиса.
const (
	LogServiceStarted      = "workspace service started"
	LogServiceShutdownDone = "workspace service shutdown complete"
	LogClosingDB           = "closing database connections"
	LogClosingRedis        = "closing Redis connection"
	LogStoppingHTTP        = "stopping HTTP server"
	LogStoppingAutosave    = "stopping autosave loop"
	LogInitRepo            = "initializing repositories"
	LogInitServices        = "initializing services"
	LogInitUseCases        = "initializing use cases"
	LogInitHTTPServer      = "initializing HTTP server"
	LogStartingHTTP        = "starting HTTP server"
)

const migrationsDir = "migrations/workspace"

func main() {
	env := logger.Development
	if strings.ToLower(os.Getenv(EnvLoggerMode)) == "production" {
		env = logger.Production
	}

	log, err := logger.NewLogger(env, os.Getenv(EnvLoggerLevel))
	if err != nil {
		panic(ErrInitLogger + ": " + err.Error())
	}

	logger.SetGlobalLogger(log)

	ctx := logger.NewRequestIDContext(context.Background(), "")

	var exitCode int

	func() {
		defer func() {
			if err := log.Sync(); err != nil {
				errMsg := err.Error()
				if strings.Contains(errMsg, ErrSyncStderr) || strings.Contains(errMsg, ErrSyncStdout) {
					return
				}
				if _, writeErr := fmt.Fprintf(os.Stderr, "%s: %v\n", ErrSyncLogger, err); writeErr != nil {
					panic(writeErr)
				}
			}
		}()

		cfg, err := config.Load(ctx)
		if err != nil {
			log.Error(ctx, ErrLoadConfig, zap.Error(err))
			exitCode = 1
			return
		}

		finalLogger, err := logger.NewLogger(cfg.Logging.GetEnvironment(), cfg.Logging.Level)
		if err != nil {
			log.Error(ctx, ErrInitLoggerWithConfig, zap.Error(err))
			exitCode = 1
			return
		}
		logger.SetGlobalLogger(finalLogger)
		log = finalLogger

		database, err := db.New(ctx, &cfg.Postgres, migrationsDir)
		if err != nil {
			log.Error(ctx, ErrInitDB, zap.Error(err))
			exitCode = 1
			return
		}

		redisClient, err := redisdb.NewClient(&redisdb.Config{
			Host:     cfg.Redis.Host,
			Port:     cfg.Redis.Port,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
			PoolSize: cfg.Redis.PoolSize,
			Timeout:  cfg.Redis.Timeout,
		})
		if err != nil {
			log.Error(ctx, ErrInitRedis, zap.Error(err))
			exitCode = 1
			return
		}

		log.Info(ctx, LogServiceStarted,
			zap.String("environment", string(env)),
			zap.String("log_level", cfg.Logging.Level),
			zap.String("startup_time", time.Now().Format(time.RFC3339)))

		log.Info(ctx, LogInitRepo)
		storeFactory := workspacepg.NewStoreFactory(database.Pool())
		noteRepo := app.NewNoteRepository(storeFactory.NoteStore())
		toolRepo := app.NewToolRepository(storeFactory.ToolStore())

		if err := noteRepo.Load(ctx); err != nil {
			log.Error(ctx, ErrLoadCollections, zap.Error(err))
			exitCode = 1
			return
		}
		if err := toolRepo.Load(ctx); err != nil {
			log.Error(ctx, ErrLoadCollections, zap.Error(err))
			exitCode = 1
			return
		}

		log.Info(ctx, LogInitServices)
		userRepo := sessionpg.NewUserRepository(database.Pool())
		passwordService := sessionservices.NewBcrypt(cfg.Session.BcryptCost)
		tokenService := sessionservices.NewJWT(cfg.Session.SecretKey, cfg.Session.TTL)
		sessionCache := sessioncache.NewRedisSessionCache(redisClient.RawClient())

		log.Info(ctx, LogInitUseCases)
		sessionUseCase := sessionapp.NewSessionUseCase(
			userRepo, passwordService, tokenService, sessionCache, cfg.Session.TTL)
		settingsService := app.NewSettingsService(storeFactory.SettingsStore())
		exporter := app.NewExporter(noteRepo, toolRepo)
		importer := app.NewImporter(noteRepo, toolRepo)

		autosaveInterval := cfg.Autosave.Interval
		if stored, err := settingsService.Get(ctx); err == nil && stored.AutosaveInterval > 0 {
			autosaveInterval = stored.AutosaveInterval
		}

		autosaver := app.NewAutosaver(autosaveInterval, func(ctx context.Context) error {
			snapshot := exporter.Export(ctx)
			data, err := snapshot.Marshal()
			if err != nil {
				return fmt.Errorf("%s: %w", ErrWriteAutosave, err)
			}
			if err := os.WriteFile(cfg.Autosave.Path, data, 0o600); err != nil {
				return fmt.Errorf("%s: %w", ErrWriteAutosave, err)
			}
			return nil
		})

		autosaveCtx, cancelAutosave := context.WithCancel(ctx)
		defer cancelAutosave()
		go autosaver.Run(autosaveCtx)

		log.Info(ctx, LogInitHTTPServer)
		fiberApp := fiber.New(fiber.Config{
			ReadTimeout:  cfg.HTTP.ReadTimeout,
			WriteTimeout: cfg.HTTP.WriteTimeout,
		})

		httpserver.SetupRouter(fiberApp, httpserver.Deps{
			Sessions: sessionUseCase,
			Notes:    noteRepo,
			Tools:    toolRepo,
			Exporter: exporter,
			Importer: importer,
			Settings: settingsService,
			Autosave: autosaver,
		})

		log.Info(ctx, LogStartingHTTP, zap.String("address", cfg.HTTP.GetAddress()))
		go func() {
			if err := fiberApp.Listen(cfg.HTTP.GetAddress()); err != nil {
				log.Error(ctx, ErrStartHTTPServer, zap.Error(err))
			}
		}()

		shutdown.Wait(cfg.Shutdown.GetTimeout(),
			// Остановка цикла автосохранения.
			func(ctx context.Context) error {
				log.Info(ctx, LogStoppingAutosave)
				autosaver.Stop()
				return nil
			},
			// Остановка HTTP сервера.
			func(ctx context.Context) error {
				log.Info(ctx, LogStoppingHTTP)
				return fiberApp.Shutdown()
			},
			// Закрытие Redis соединения.
			func(ctx context.Context) error {
				log.Info(ctx, LogClosingRedis)
				return redisClient.Close()
			},
			// Закрытие базы данных.
			func(ctx context.Context) error {
				log.Info(ctx, LogClosingDB)
				database.Close(ctx)
				return nil
			},
		)

		log.Info(ctx, LogServiceShutdownDone)
	}()

	if exitCode != 0 {
		os.Exit(exitCode)
	}
}
