package main

import (
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/tmc/langchaingo/llms/openai"

	"github.com/fcoelho/salesnav-outreach/internal/auth"
	"github.com/fcoelho/salesnav-outreach/internal/config"
	"github.com/fcoelho/salesnav-outreach/internal/infra/http/handlers"
	"github.com/fcoelho/salesnav-outreach/internal/infra/http/middleware"
	"github.com/fcoelho/salesnav-outreach/internal/infra/integration/hubspot"
	"github.com/fcoelho/salesnav-outreach/internal/prompt"
	"github.com/fcoelho/salesnav-outreach/internal/usecase"
)

func main() {
	godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("configuration error: %v", err)
	}

	// Integrations
	llm, err := openai.New(openai.WithToken(cfg.OpenAIAPIKey))
	if err != nil {
		log.Fatalf("failed to create OpenAI client: %v", err)
	}
	crm := hubspot.NewClient(cfg.HubSpotToken, cfg.HubSpotBaseURL)

	// Use cases
	library := prompt.NewLibrary()
	draftUC := usecase.NewDraftMessageUseCase(llm, library)
	upsertUC := usecase.NewUpsertProspectUseCase(crm)

	// Auth gate
	gate := auth.NewGate(cfg.PasswordHash, cfg.SessionTTL)

	// Handlers
	authHandler := handlers.NewAuthHandler(gate)
	messageHandler := handlers.NewMessageHandler(draftUC, upsertUC)
	contactHandler := handlers.NewContactHandler(upsertUC)
	promptHandler := handlers.NewPromptHandler(library)
	healthHandler := handlers.NewHealthHandler()

	// Router
	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(middleware.Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type", "Authorization"},
	}))

	r.Post("/login", authHandler.HandleLogin)
	r.Get("/health", healthHandler.Handle)
	r.Handle("/metrics", promhttp.Handler())

	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireSession(gate))
		r.Get("/prompts", promptHandler.HandleList)
		r.Post("/messages", messageHandler.Handle)
		r.Get("/contacts", contactHandler.HandleList)
		r.Post("/contacts/{id}/notes", contactHandler.HandleAddNote)
	})

	addr := ":" + cfg.Port
	log.Printf("outreach API listening on %s", addr)
	if err := http.ListenAndServe(addr, r); err != nil {
		log.Fatal(err)
	}
}
