// Command seed loads development fixtures: an interpretation grid, a
// questionnaire with weighted questions, one enterprise with an
// application, and users across the role hierarchy.
package main

import (
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/e-dsin/maturity-sub005/internal/config"
	"github.com/e-dsin/maturity-sub005/internal/model"
	"github.com/e-dsin/maturity-sub005/internal/repository"
	"github.com/e-dsin/maturity-sub005/internal/service"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

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

	gridRepo := repository.NewGridRepo(db)
	questionRepo := repository.NewQuestionRepo(db)
	enterpriseRepo := repository.NewEnterpriseRepo(db)
	userRepo := repository.NewUserRepo(db)

	// Interpretation grid for the global function.
	grid := []model.GridEntry{
		{Fonction: "global", ScoreMin: 0, ScoreMax: 40, Niveau: "Niveau 3", Description: "Maturite intermediaire", Recommandation: "Formaliser les processus existants", Ordre: 1},
		{Fonction: "global", ScoreMin: 40, ScoreMax: 70, Niveau: "Niveau 4", Description: "Maturite avancee", Recommandation: "Mesurer et optimiser en continu", Ordre: 2},
		{Fonction: "global", ScoreMin: 70, ScoreMax: 101, Niveau: "Niveau 5", Description: "Maturite optimale", Recommandation: "Maintenir la dynamique d'amelioration", Ordre: 3},
	}
	for i := range grid {
		if _, err := gridRepo.Create(ctx, &grid[i]); err != nil {
			log.Fatal("Failed to seed grid:", err)
		}
	}

	// Questionnaire with weighted questions across two thematics.
	qnrID, err := questionRepo.CreateQuestionnaire(ctx, &model.Questionnaire{
		Name:      "Evaluation maturite applicative",
		Version:   "1.0",
		Thematics: []string{"Securite", "Gouvernance"},
	})
	if err != nil {
		log.Fatal("Failed to seed questionnaire:", err)
	}

	questions := []model.Question{
		{QuestionnaireID: qnrID, ThematicName: "Securite", Text: "Les acces sont-ils revus periodiquement ?", Ponderation: 3, Ordre: 1},
		{QuestionnaireID: qnrID, ThematicName: "Securite", Text: "Les vulnerabilites sont-elles suivies ?", Ponderation: 5, Ordre: 2},
		{QuestionnaireID: qnrID, ThematicName: "Gouvernance", Text: "Un referentiel documentaire existe-t-il ?", Ponderation: 2, Ordre: 3},
	}
	for i := range questions {
		if _, err := questionRepo.CreateQuestion(ctx, &questions[i]); err != nil {
			log.Fatal("Failed to seed questions:", err)
		}
	}

	// Enterprise and application.
	entID, err := enterpriseRepo.Create(ctx, &model.Enterprise{Name: "Acme Industrie", Secteur: "Industrie"})
	if err != nil {
		log.Fatal("Failed to seed enterprise:", err)
	}
	if _, err := enterpriseRepo.CreateApplication(ctx, &model.Application{EnterpriseID: entID, Name: "ERP"}); err != nil {
		log.Fatal("Failed to seed application:", err)
	}

	// Users across the hierarchy, all with the same dev password.
	users := []model.User{
		{Email: "intervenant@example.com", FullName: "Iris Intervenant", Role: "INTERVENANT", EnterpriseID: entID},
		{Email: "manager@example.com", FullName: "Marc Manager", Role: "MANAGER", EnterpriseID: entID},
		{Email: "consultant@example.com", FullName: "Chloe Consultant", Role: "CONSULTANT"},
		{Email: "admin@example.com", FullName: "Alix Admin", Role: "ADMINISTRATOR"},
		{Email: "superadmin@example.com", FullName: "Sacha Superadmin", Role: "SUPER_ADMINISTRATOR"},
	}
	hash, err := service.HashPassword("password123")
	if err != nil {
		log.Fatal("Failed to hash password:", err)
	}
	for i := range users {
		users[i].PasswordHash = hash
		if _, err := userRepo.Create(ctx, &users[i]); err != nil {
			log.Fatal("Failed to seed users:", err)
		}
	}

	log.Println("seed complete")
}
