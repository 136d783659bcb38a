package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"os"

	"github.com/bwmarrin/snowflake"
	"github.com/mrezendes/investrack/internal/client/config"
	"github.com/mrezendes/investrack/internal/client/models"
	"github.com/mrezendes/investrack/internal/client/services"
	"github.com/mrezendes/investrack/internal/client/store"
	"github.com/mrezendes/investrack/internal/logging"
)

// snowflakeNode identifies this client when generating investment ids.
// There is only ever one writer per database, so a fixed node is fine.
const snowflakeNode = 1

// directoryService is the slice of the user directory the CLI needs.
type directoryService interface {
	Register(ctx context.Context, name, email, password string) error
	Authenticate(email, password string) (models.UserCredential, bool)
}

// sessionService gates access to the investment commands.
type sessionService interface {
	Current() (models.SessionIdentity, bool)
	Login(ctx context.Context, cred models.UserCredential) error
	Logout(ctx context.Context) error
}

// ledgerService is the investment CRUD surface driven by the REPL.
type ledgerService interface {
	List() []models.Investment
	Get(id int64) (models.Investment, bool)
	Create(ctx context.Context, draft models.InvestmentDraft) (models.Investment, error)
	Update(ctx context.Context, id int64, draft models.InvestmentDraft) error
	Delete(ctx context.Context, id int64) error
}

type App struct {
	config *config.Config
	log    logging.Logger

	directory directoryService
	session   sessionService
	ledger    ledgerService

	db     *sql.DB
	reader *bufio.Reader
}

// NewApp opens the local database, constructs the core components, and
// loads their persisted state. Loading is all-or-nothing: if any component
// fails to load, no App is returned.
func NewApp(ctx context.Context, c *config.Config, log logging.Logger) (*App, error) {
	db, err := store.InitDatabase(ctx, c.DatabaseDSN)
	if err != nil {
		log.Error(ctx, "error initializing database", "error", err)
		return nil, err
	}

	node, err := snowflake.NewNode(snowflakeNode)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to init id generator: %w", err)
	}

	kv := store.NewSQLiteStore(db)

	directory := services.NewDirectory(kv, log)
	session := services.NewSession(kv, log)
	ledger := services.NewLedger(kv, node, log)

	for _, load := range []func(context.Context) error{
		directory.Load, session.Load, ledger.Load,
	} {
		if err := load(ctx); err != nil {
			_ = db.Close()
			return nil, err
		}
	}

	return &App{
		config:    c,
		log:       log,
		directory: directory,
		session:   session,
		ledger:    ledger,
		db:        db,
		reader:    bufio.NewReader(os.Stdin),
	}, nil
}

// Run starts the REPL and blocks until the user exits.
func (a *App) Run(ctx context.Context) {
	defer a.Close()
	a.Root(ctx)
}

// Close releases the local database handle.
func (a *App) Close() error {
	return a.db.Close()
}

func (a *App) isLoggedIn() bool {
	_, ok := a.session.Current()
	return ok
}

func (a *App) getStatus() string {
	if id, ok := a.session.Current(); ok {
		return fmt.Sprintf("(%s)", id.Email)
	}
	return ""
}
