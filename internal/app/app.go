package app

import (
	"context"
	"io"
	"log"

	"github.com/smartprobono/intake-api/internal/config"
	"github.com/smartprobono/intake-api/internal/core/analytics"
	db "github.com/smartprobono/intake-api/internal/core/database"
	"github.com/smartprobono/intake-api/internal/core/extract"
	"github.com/smartprobono/intake-api/internal/core/llm"
	"github.com/smartprobono/intake-api/internal/core/mail"
	objectclient "github.com/smartprobono/intake-api/internal/core/object-client"
	"github.com/smartprobono/intake-api/internal/services"
)

type App struct {
	DBClient     db.DbClient
	ObjectClient objectclient.ObjectClient
	Analytics    *analytics.Client
	Provider     llm.Provider
	Server       *Server
}

// NewApp wires every subsystem. Missing credentials degrade the owning
// subsystem instead of failing startup: no database means no persistence,
// no provider key means the rule-based responder, and so on.
func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	var dbClient db.DbClient
	if cfg.DatabaseURL != "" {
		client, err := db.NewDatabaseClient(ctx, cfg)
		if err != nil {
			return nil, err
		}
		dbClient = client
		log.Println("Database initialized and ready.")
	} else {
		log.Println("DATABASE_URL not set; persistence disabled")
	}

	objClient, err := objectclient.NewS3Client(ctx, cfg)
	if err != nil {
		return nil, err
	}

	provider, err := llm.NewProvider(ctx, cfg)
	if err != nil {
		return nil, err
	}

	analyticsClient := analytics.NewClient(cfg.PostHogAPIKey, cfg.PostHogHost, dbClient)
	sender := mail.NewSender(cfg.ResendAPIKey, cfg.MailFrom, cfg.EarlyAccessNotify)
	extractor := extract.New()

	intakeSvc := services.NewIntakeService(provider, dbClient)
	draftSvc := services.NewDraftService(provider)

	server := NewServer(cfg, Deps{
		DB:        dbClient,
		Object:    objClient,
		Analytics: analyticsClient,
		Mail:      sender,
		Extractor: extractor,
		Intake:    intakeSvc,
		Drafts:    draftSvc,
	})

	return &App{
		DBClient:     dbClient,
		ObjectClient: objClient,
		Analytics:    analyticsClient,
		Provider:     provider,
		Server:       server,
	}, nil
}

func (a *App) Close() {
	if a.Analytics != nil {
		a.Analytics.Close()
	}
	if closer, ok := a.Provider.(io.Closer); ok {
		_ = closer.Close()
	}
	if a.DBClient != nil {
		_ = a.DBClient.Close()
	}
}
