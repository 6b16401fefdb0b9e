package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"emotion-canvas/internal/config"
	"emotion-canvas/internal/db"
	apihttp "emotion-canvas/internal/http"
	"emotion-canvas/internal/repository"
	"emotion-canvas/internal/service"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func main() {
	ctx := context.Background()

	if err := godotenv.Load(); err != nil {
		log.Printf("warning: loading .env: %v", err)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		panic(err)
	}

	logger, _ := zap.NewProduction()
	defer logger.Sync()

	var (
		analysisRepo repository.AnalysisRepository = repository.NewInMemoryAnalysisRepository()
		artworkRepo  repository.ArtworkRepository  = repository.NewInMemoryArtworkRepository()
	)
	if cfg.DatabaseURL != "" {
		pool, err := db.NewPool(ctx, cfg)
		if err != nil {
			logger.Fatal("db connect", zap.Error(err))
		}
		defer pool.Close()
		if err := db.Migrate(ctx, pool); err != nil {
			logger.Fatal("db migrate", zap.Error(err))
		}
		analysisRepo = repository.NewPgAnalysisRepository(pool)
		artworkRepo = repository.NewPgArtworkRepository(pool)
	} else {
		logger.Warn("database not configured, history kept in memory")
	}

	var (
		genLimiter = service.NewRateLimiter(cfg.GenerationRateWindow, cfg.GenerationRateLimit)
		tokenStore service.RefreshTokenStore
	)
	if cfg.RedisAddr != "" {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		defer redisClient.Close()
		ctxPing, cancel := context.WithTimeout(ctx, 2*time.Second)
		if err := redisClient.Ping(ctxPing).Err(); err != nil {
			logger.Warn("redis ping failed", zap.Error(err))
		} else {
			genLimiter = service.NewRedisRateLimiter(redisClient, cfg.GenerationRateWindow, cfg.GenerationRateLimit)
			tokenStore = service.NewRedisRefreshTokenStore(redisClient)
		}
		cancel()
	}

	jwtSvc := service.NewJWTServiceWithStore(
		cfg.JWTSecret,
		time.Duration(cfg.JWTAccessTTLMinutes)*time.Minute,
		time.Duration(cfg.JWTRefreshTTLMinutes)*time.Minute,
		tokenStore,
	)
	if cfg.JWTSecret == "" {
		logger.Warn("jwt secret not configured, sessions disabled")
	}

	rnd := service.NewRandSource()
	generator := service.NewArtGenerator(rnd,
		service.WithGenerationDelay(cfg.GenerationDelay),
		service.WithFailureInjector(service.RandomFailure(cfg.GenerationFailureRate, rnd)),
	)
	studioSvc := service.NewStudioService(
		logger,
		generator,
		service.NewArtPromptBuilder(rnd),
		analysisRepo,
		artworkRepo,
		genLimiter,
		cfg.MinInputLength,
	)
	insightsSvc := service.NewInsightsService(analysisRepo, logger)

	router := apihttp.NewRouter(
		logger,
		jwtSvc,
		apihttp.NewSessionHandler(logger, jwtSvc),
		apihttp.NewStudioHandler(logger, studioSvc),
		apihttp.NewInsightsHandler(logger, insightsSvc),
		apihttp.NewStreamHandler(logger, studioSvc),
	)

	server := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	logger.Info("starting server", zap.String("port", cfg.HTTPPort))

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatal("server error", zap.Error(err))
	}
}
