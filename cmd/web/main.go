package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/alexedwards/scs/sqlite3store"
	"github.com/alexedwards/scs/v2"
	"github.com/donseba/go-htmx"
	"github.com/joho/godotenv"
	"github.com/windgap/sensoryprofile/internal/config"
	"github.com/windgap/sensoryprofile/internal/db"
	"github.com/windgap/sensoryprofile/internal/errors"
	"github.com/windgap/sensoryprofile/internal/logging"
	"github.com/windgap/sensoryprofile/internal/repositories"
	"github.com/windgap/sensoryprofile/internal/transcript"
)

type application struct {
	logger         *slog.Logger
	sessionManager *scs.SessionManager
	sessions       *repositories.SessionRepository
	transcripts    transcript.Source
	htmx           *htmx.HTMX
	recipient      string
}

func main() {
	// A missing .env is fine; the defaults cover local use.
	_ = godotenv.Load()

	loggerHandler := logging.NewContextHandler(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level:     slog.LevelDebug,
		AddSource: true,
	}))
	logger := slog.New(loggerHandler)

	if err := run(context.Background(), logger, os.LookupEnv); err != nil {
		logger.Error("server failed", errors.SlogError(err))
		os.Exit(1)
	}
}

// run wires the application together. It is separated from main so that tests can
// start the server with their own logger and environment.
func run(ctx context.Context, logger *slog.Logger, lookupEnv func(string) (string, bool)) error {
	cfg, err := config.Load(lookupEnv)
	if err != nil {
		return err
	}

	database, err := db.NewDatabase(cfg.SQLiteURL)
	if err != nil {
		return errors.Wrap(err, "open database")
	}
	logger.LogAttrs(ctx, slog.LevelInfo, "connected to database", slog.String("url", cfg.SQLiteURL))

	sessionManager := scs.New()
	sessionManager.Store = sqlite3store.NewWithCleanupInterval(database.ReadWrite.DB, 24*time.Hour)
	sessionManager.Lifetime = 12 * time.Hour

	app := application{
		logger:         logger,
		sessionManager: sessionManager,
		sessions:       repositories.NewSessionRepository(database, logger),
		transcripts:    transcript.NewWhisperSource(cfg.OpenAIAPIKey),
		htmx:           htmx.New(),
		recipient:      cfg.SubmissionRecipient,
	}

	return app.configureAndStartServer(ctx, cfg.Addr)
}
