package rest

import (
	"net/http"
	"os"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/e-dsin/maturity-sub005/internal/service"
	"github.com/e-dsin/maturity-sub005/internal/transport/rest/handler"
	"github.com/e-dsin/maturity-sub005/internal/transport/rest/middleware"
)

// Container holds all dependencies for the router.
type Container struct {
	AuthService           *service.AuthService
	FormService           *service.FormService
	ScoreService          *service.ScoreService
	InterpretationService *service.InterpretationService
	UserService           *service.UserService
}

// NewRouter creates the API router with all endpoints.
func NewRouter(c *Container) http.Handler {
	r := mux.NewRouter()

	authHandler := handler.NewAuthHandler(c.AuthService)
	formHandler := handler.NewFormHandler(c.FormService)
	scoreHandler := handler.NewScoreHandler(c.ScoreService, c.InterpretationService)
	userHandler := handler.NewUserHandler(c.UserService)

	authMW := middleware.NewAuthMiddleware(c.AuthService)

	r.Use(corsMiddleware)

	// Health check and metrics
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")
	r.Handle("/metrics", promhttp.Handler()).Methods("GET")

	v1 := r.PathPrefix("/v1").Subrouter()

	// Public routes
	v1.HandleFunc("/auth/login", authHandler.Login).Methods("POST", "OPTIONS")

	// Authenticated routes; per-request authorization happens in the
	// services through the access engine.
	api := v1.NewRoute().Subrouter()
	api.Use(authMW.RequirePrincipal)

	api.HandleFunc("/forms", formHandler.Create).Methods("POST", "OPTIONS")
	api.HandleFunc("/forms", formHandler.List).Methods("GET", "OPTIONS")
	api.HandleFunc("/forms/{formId}", formHandler.Get).Methods("GET", "OPTIONS")
	api.HandleFunc("/forms/{formId}/answers", formHandler.SaveAnswer).Methods("PUT", "OPTIONS")
	api.HandleFunc("/forms/{formId}/submit", formHandler.Submit).Methods("POST", "OPTIONS")
	api.HandleFunc("/forms/{formId}/validate", formHandler.Validate).Methods("POST", "OPTIONS")

	api.HandleFunc("/forms/{formId}/score", scoreHandler.ComputeFormScore).Methods("GET", "OPTIONS")
	api.HandleFunc("/forms/{formId}/analysis", scoreHandler.GetFormAnalysis).Methods("GET", "OPTIONS")
	api.HandleFunc("/forms/{formId}/interpretation", scoreHandler.InterpretForm).Methods("GET", "OPTIONS")
	api.HandleFunc("/analyses", scoreHandler.ListAnalyses).Methods("GET", "OPTIONS")
	api.HandleFunc("/enterprises/{enterpriseId}/history", scoreHandler.ListEnterpriseHistory).Methods("GET", "OPTIONS")
	api.HandleFunc("/interpretation", scoreHandler.Interpret).Methods("GET", "OPTIONS")

	api.HandleFunc("/users", userHandler.List).Methods("GET", "OPTIONS")
	api.HandleFunc("/users/{userId}/role", userHandler.UpdateRole).Methods("PUT", "OPTIONS")

	return r
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		allowedOrigins := os.Getenv("CORS_ALLOWED_ORIGINS")
		if allowedOrigins == "" {
			allowedOrigins = "*"
		}

		w.Header().Set("Access-Control-Allow-Origin", allowedOrigins)
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
