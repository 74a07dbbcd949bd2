// Package cli implements the terminal dashboard: a small REPL over the
// auth and payment services.
package cli

import (
	"bufio"
	"context"
	"database/sql"
	"io"
	"os"

	"github.com/RaginiSharma01/GoPay-Lite/internal/client/api"
	"github.com/RaginiSharma01/GoPay-Lite/internal/client/config"
	"github.com/RaginiSharma01/GoPay-Lite/internal/client/models"
	"github.com/RaginiSharma01/GoPay-Lite/internal/client/services"
	"github.com/RaginiSharma01/GoPay-Lite/internal/client/session"
	"github.com/RaginiSharma01/GoPay-Lite/internal/logging"

	_ "modernc.org/sqlite"
)

type App struct {
	config   *config.Config
	auth     services.AuthService
	payments *services.PaymentService
	sessions session.Store

	// account is the dashboard state; nil while unauthenticated.
	account *models.Account

	db     *sql.DB
	reader *bufio.Reader
	out    io.Writer
	log    logging.Logger
}

func NewApp(ctx context.Context, c *config.Config, log logging.Logger) (*App, error) {
	db, err := session.InitDatabase(ctx, c.DatabaseDSN)
	if err != nil {
		log.Error(ctx, "error initializing database", "error", err)
		return nil, err
	}
	store := session.NewSQLiteStore(db)

	client, err := api.NewHTTPClient(c.APIBaseURL, c.RequestTimeout, store, log)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	return &App{
		config:   c,
		auth:     services.NewAuthService(client, store, log),
		payments: services.NewPaymentService(client, store, log),
		sessions: store,
		db:       db,
		reader:   bufio.NewReader(os.Stdin),
		out:      os.Stdout,
		log:      log,
	}, nil
}

func (a *App) Close() error {
	if a.db == nil {
		return nil
	}
	return a.db.Close()
}

func (a *App) isLoggedIn() bool {
	return a.account != nil
}
