// Command backfill rebuilds the enterprise-level score history from
// recorded analyses. Safe to re-run: existing history rows are never
// overwritten.
package main

import (
	"context"
	"log"
	"os"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/e-dsin/maturity-sub005/internal/config"
	"github.com/e-dsin/maturity-sub005/internal/repository"
	"github.com/e-dsin/maturity-sub005/internal/scoring"
	"github.com/e-dsin/maturity-sub005/pkg/logger"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	logg := logger.New(cfg.LogLevel)

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

	db := mongoClient.Database(cfg.MongoDatabase)

	formRepo := repository.NewFormRepo(db)
	answerRepo := repository.NewAnswerRepo(db)
	questionRepo := repository.NewQuestionRepo(db)
	analysisRepo := repository.NewAnalysisRepo(db)
	enterpriseRepo := repository.NewEnterpriseRepo(db)

	if err := analysisRepo.EnsureIndexes(ctx); err != nil {
		log.Fatal("Failed to create indexes:", err)
	}

	aggregator := scoring.NewAggregator(formRepo, answerRepo, questionRepo)
	recorder := scoring.NewRecorder(aggregator, formRepo, analysisRepo, enterpriseRepo, logg)

	if !recorder.BackfillEnterpriseHistory(ctx) {
		logg.Error(ctx, "backfill did not complete")
		os.Exit(1)
	}
	logg.Info(ctx, "backfill complete")
}
