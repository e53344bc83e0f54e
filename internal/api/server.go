package api

import (
	"context"
	"fmt"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	_ "artisan-backend/docs"
	"artisan-backend/internal/app/config"
	"artisan-backend/internal/app/ds"
	"artisan-backend/internal/app/fixtures"
	"artisan-backend/internal/app/handler"
	"artisan-backend/internal/app/middleware"
	"artisan-backend/internal/app/redis"
	"artisan-backend/internal/app/repository"
	"artisan-backend/internal/app/storage"
	"artisan-backend/internal/app/validation"
	"artisan-backend/internal/app/wizard"
	"artisan-backend/internal/pkg"
)

// StartServer собирает зависимости по конфигурации и запускает HTTP сервер
func StartServer(ctx context.Context) error {
	logrus.Info("Starting server")

	cfg, err := config.NewConfig()
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	if err := validation.Register(); err != nil {
		return fmt.Errorf("validation: %w", err)
	}

	var minioClient *storage.MinIOClient
	if cfg.MinIO.Enabled {
		minioClient, err = storage.NewMinIOClient(ctx, cfg.MinIO)
		if err != nil {
			return fmt.Errorf("minio: %w", err)
		}
	}

	bundle, err := fixtures.Load(ctx, fixtureSource(cfg, minioClient))
	if err != nil {
		return fmt.Errorf("fixtures: %w", err)
	}

	var (
		blacklist  middleware.Blacklist = middleware.NewMemoryBlacklist()
		stateStore wizard.StateStore    = wizard.NewMemoryStateStore()
	)
	if cfg.Redis.Enabled {
		redisClient, err := redis.New(ctx, cfg.Redis)
		if err != nil {
			return fmt.Errorf("redis: %w", err)
		}
		defer redisClient.Close()

		blacklist = redisClient
		stateStore = wizard.NewKVStateStore(redisClient, cfg.Wizard.StateTTL)
	} else {
		logrus.Warn("redis is disabled, wizard state and token blacklist are kept in memory")
	}

	var (
		artisans    repository.Store[ds.Artisan]    = repository.NewMemoryStore[ds.Artisan]("artisan")
		submissions repository.Store[ds.Submission] = repository.NewMemoryStore[ds.Submission]("submission")
	)
	if cfg.Database.Enabled {
		repo, err := repository.New(cfg.Database.DSN)
		if err != nil {
			return fmt.Errorf("repository: %w", err)
		}
		artisans = repo.Artisans()
		submissions = repo.Submissions()
	} else {
		logrus.Warn("database is disabled, artisans and submissions are kept in memory")
	}

	// интерфейс с nil указателем внутри не равен nil, поэтому присваиваем только живой клиент
	var archive handler.Archiver
	if minioClient != nil {
		archive = minioClient
	}

	h := handler.NewHandler(
		cfg,
		bundle,
		artisans,
		submissions,
		wizard.NewManager(stateStore),
		middleware.NewAuthMiddleware(blacklist, cfg),
		archive,
	)

	app := pkg.NewApp(cfg, newRouter(cfg), h)
	return app.RunApp()
}

func fixtureSource(cfg *config.Config, minioClient *storage.MinIOClient) fixtures.Source {
	switch cfg.Fixtures.Source {
	case config.FixturesDir:
		return fixtures.Dir(cfg.Fixtures.Dir)
	case config.FixturesMinIO:
		return fixtures.Objects(minioClient, cfg.Fixtures.Prefix)
	default:
		return fixtures.Embedded()
	}
}

func newRouter(cfg *config.Config) *gin.Engine {
	if cfg.Log.Level != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(middleware.RequestLogger(), gin.Recovery())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	return r
}
