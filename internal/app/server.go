package app

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/smartprobono/intake-api/internal/api/handlers"
	appMiddleware "github.com/smartprobono/intake-api/internal/api/middlewares"
	"github.com/smartprobono/intake-api/internal/config"
	"github.com/smartprobono/intake-api/internal/core/analytics"
	db "github.com/smartprobono/intake-api/internal/core/database"
	"github.com/smartprobono/intake-api/internal/core/extract"
	"github.com/smartprobono/intake-api/internal/core/mail"
	objectclient "github.com/smartprobono/intake-api/internal/core/object-client"
	"github.com/smartprobono/intake-api/internal/services"
)

// Server wraps the HTTP server instance and its handlers.
type Server struct {
	httpServer *http.Server
}

// Deps carries the wired subsystems into the router.
type Deps struct {
	DB        db.DbClient
	Object    objectclient.ObjectClient
	Analytics *analytics.Client
	Mail      *mail.Sender
	Extractor *extract.Extractor
	Intake    *services.IntakeService
	Drafts    *services.DraftService
}

// NewServer builds and wires all routes.
func NewServer(cfg *config.Config, deps Deps) *Server {
	authHandler := handlers.NewAuthHandler(deps.DB, cfg.JWTSecret)
	chatHandler := handlers.NewChatHandler(deps.Intake, deps.Analytics)
	uploadHandler := handlers.NewUploadHandler(deps.Extractor, deps.Object, deps.Analytics, cfg)
	docHandler := handlers.NewDocumentHandler(deps.Drafts, deps.Analytics, cfg)
	historyHandler := handlers.NewHistoryHandler(deps.DB)
	earlyAccessHandler := handlers.NewEarlyAccessHandler(deps.Mail, deps.Analytics)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000", "https://smartprobono.org"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
	}))

	r.Route("/api", func(api chi.Router) {
		api.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte(`{"status":"ok"}`))
		})

		// public endpoints
		api.Post("/signup", authHandler.Signup)
		api.Post("/login", authHandler.Login)
		api.Post("/early-access", earlyAccessHandler.Submit)

		// optional identity: these work anonymously, persistence and
		// archiving just require a bearer token
		api.Group(func(open chi.Router) {
			open.Use(appMiddleware.OptionalJWT(cfg.JWTSecret))
			open.Post("/chat", chatHandler.Respond)
			open.Post("/upload", uploadHandler.Upload)
			open.Post("/generate-doc", docHandler.Generate)
		})

		// protected endpoints
		api.Group(func(protected chi.Router) {
			protected.Use(appMiddleware.JWT(cfg.JWTSecret))
			protected.Get("/me", authHandler.Me)
			protected.Get("/chats", historyHandler.ListChats)
			protected.Get("/documents", historyHandler.ListDocuments)
		})
	})

	httpSrv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	return &Server{httpServer: httpSrv}
}

// Start runs the HTTP server.
func (s *Server) Start() {
	log.Printf("HTTP server listening on %s", s.httpServer.Addr)
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server error: %v", err)
	}
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	log.Println("Shutting down HTTP server...")
	return s.httpServer.Shutdown(ctx)
}
