package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/e-dsin/maturity-sub005/internal/access"
	"github.com/e-dsin/maturity-sub005/internal/cache"
	"github.com/e-dsin/maturity-sub005/internal/config"
	"github.com/e-dsin/maturity-sub005/internal/repository"
	"github.com/e-dsin/maturity-sub005/internal/scoring"
	"github.com/e-dsin/maturity-sub005/internal/service"
	"github.com/e-dsin/maturity-sub005/internal/transport/rest"
	"github.com/e-dsin/maturity-sub005/pkg/logger"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	logg := logger.New(cfg.LogLevel)

	// MongoDB connection
	mongoClient, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Fatal("Failed to connect to MongoDB:", err)
	}
	defer mongoClient.Disconnect(ctx)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := mongoClient.Ping(pingCtx, nil); err != nil {
		log.Fatal("Failed to ping MongoDB:", err)
	}
	logg.Info(ctx, "connected to MongoDB")

	db := mongoClient.Database(cfg.MongoDatabase)

	// Redis connection
	rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	defer rdb.Close()
	if _, err := rdb.Ping(ctx).Result(); err != nil {
		log.Fatal("Failed to ping Redis:", err)
	}
	logg.Info(ctx, "connected to Redis")

	// Repositories
	formRepo := repository.NewFormRepo(db)
	answerRepo := repository.NewAnswerRepo(db)
	questionRepo := repository.NewQuestionRepo(db)
	analysisRepo := repository.NewAnalysisRepo(db)
	enterpriseRepo := repository.NewEnterpriseRepo(db)
	gridRepo := repository.NewGridRepo(db)
	userRepo := repository.NewUserRepo(db)

	// The upsert and insert-if-absent contracts rely on these keys.
	if err := analysisRepo.EnsureIndexes(ctx); err != nil {
		log.Fatal("Failed to create indexes:", err)
	}

	// Caches
	gridCache := cache.NewGridCache(rdb, gridRepo)
	scoreCache := cache.NewScoreCache(rdb)

	// Access engine with audit trail
	engine := access.NewEngine(access.NewLogSink(logg))

	// Scoring core
	aggregator := scoring.NewAggregator(formRepo, answerRepo, questionRepo)
	recorder := scoring.NewRecorder(aggregator, formRepo, analysisRepo, enterpriseRepo, logg)
	resolver := scoring.NewResolver(gridCache)

	// Services
	authSvc := service.NewAuthService(userRepo, cfg.JWTSecret)
	formSvc := service.NewFormService(formRepo, answerRepo, questionRepo, recorder, scoreCache, engine, logg)
	scoreSvc := service.NewScoreService(aggregator, analysisRepo, formRepo, scoreCache, engine, logg)
	interpSvc := service.NewInterpretationService(resolver, scoreSvc, engine, logg)
	userSvc := service.NewUserService(userRepo, engine, logg)

	router := rest.NewRouter(&rest.Container{
		AuthService:           authSvc,
		FormService:           formSvc,
		ScoreService:          scoreSvc,
		InterpretationService: interpSvc,
		UserService:           userSvc,
	})

	srv := &http.Server{
		Addr:    cfg.Addr,
		Handler: router,
	}

	go func() {
		logg.Info(ctx, "server starting", logger.String("addr", cfg.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("ListenAndServe:", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logg.Info(ctx, "shutting down server")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	logg.Info(ctx, "server exited")
}
