package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/rs/zerolog"

	"github.com/BruksfildServices01/profissionais-api/internal/audit"
	"github.com/BruksfildServices01/profissionais-api/internal/auth"
	"github.com/BruksfildServices01/profissionais-api/internal/cache"
	"github.com/BruksfildServices01/profissionais-api/internal/config"
	dbpkg "github.com/BruksfildServices01/profissionais-api/internal/db"
	"github.com/BruksfildServices01/profissionais-api/internal/logger"
	"github.com/BruksfildServices01/profissionais-api/internal/middleware"
	"github.com/BruksfildServices01/profissionais-api/internal/routes"
	"github.com/BruksfildServices01/profissionais-api/internal/storage"
	"github.com/BruksfildServices01/profissionais-api/internal/timezone"
)

func main() {

	cfg := config.Load()
	log := logger.New(cfg.Env, cfg.LogLevel)

	if !timezone.IsValid(cfg.Timezone) {
		log.Warn().Str("timezone", cfg.Timezone).Msg("invalid timezone, using default")
	}
	if cfg.IsProduction() && cfg.JWTSecret == "changeme" {
		log.Fatal().Msg("JWT_SECRET must be set in production")
	}

	db := dbpkg.NewDB(cfg, log)

	// ======================================================
	// Redis (opcional)
	// ======================================================
	var (
		store   cache.Store  = cache.NewMemoryStore()
		revoker auth.Revoker = auth.NewMemoryRevoker()
	)
	if cfg.RedisURL != "" {
		rdb := newRedis(cfg.RedisURL, log)
		defer rdb.Close()

		store = cache.NewRedisStore(rdb, "profissionais:")
		revoker = auth.NewRedisRevoker(rdb)
	} else {
		log.Info().Msg("REDIS_URL not set, using in-memory cache and token denylist")
	}

	// ======================================================
	// Imagens
	// ======================================================
	var images storage.ImageStore
	if cfg.S3Enabled() {
		images = storage.NewS3Store(storage.S3Config{
			Bucket:    cfg.S3Bucket,
			Region:    cfg.S3Region,
			Endpoint:  cfg.S3Endpoint,
			AccessKey: cfg.S3AccessKey,
			SecretKey: cfg.S3SecretKey,
			PublicURL: cfg.S3PublicURL,
		})
	} else {
		images = storage.NewLocalStore(cfg.MediaRoot, cfg.MediaURL)
	}

	dispatcher := audit.NewDispatcher(audit.New(db), log)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(log))
	r.Use(middleware.CORSMiddleware(cfg.CORSOrigins...))

	routes.RegisterRoutes(r, routes.Deps{
		DB:      db,
		Config:  cfg,
		Issuer:  auth.NewIssuer(cfg.JWTSecret, cfg.JWTTTL),
		Revoker: revoker,
		Cache:   store,
		Images:  images,
		Audit:   dispatcher,
	})

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info().Str("addr", cfg.Addr()).Msg("server running")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("forced shutdown")
	}
	dispatcher.Close()
}

func newRedis(url string, log zerolog.Logger) *redis.Client {
	opts, err := redis.ParseURL(url)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid REDIS_URL")
	}

	rdb := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Fatal().Err(err).Msg("failed to connect redis")
	}
	return rdb
}
