package cli

import (
	"bufio"
	"context"
	"log/slog"
	"os"

	"github.com/afriwallet/afriwallet/internal/client/api"
	"github.com/afriwallet/afriwallet/internal/client/config"
	"github.com/afriwallet/afriwallet/internal/client/session"
	"github.com/afriwallet/afriwallet/internal/client/store"
	"github.com/afriwallet/afriwallet/internal/phone"
	"github.com/afriwallet/afriwallet/internal/quickunlock"
)

// App glues the wallet screens together: one store, one session, one API
// client, shared by every command handler.
type App struct {
	config  *config.Config
	api     api.Client
	store   store.Store
	session *session.Manager
	unlock  *quickunlock.Service
	logger  *slog.Logger
	reader  *bufio.Reader

	deviceID string
}

func NewApp(ctx context.Context, c *config.Config, logger *slog.Logger) (*App, error) {
	db, err := store.Open(ctx, c.DatabasePath)
	if err != nil {
		logger.Error("initializing local database", "error", err)
		return nil, err
	}

	st := store.NewSQLiteStore(db)
	sm := session.NewManager(st)
	apiClient := api.NewHTTPClient(c.ServerBaseURL, c.RequestTimeout, sm.Token)

	deviceID, err := ensureDeviceID(ctx, st)
	if err != nil {
		return nil, err
	}
	logger.Debug("client starting", "deviceId", deviceID)

	return &App{
		config:  c,
		api:     apiClient,
		store:   st,
		session: sm,
		unlock:  quickunlock.NewService(st),
		logger:  logger,
		reader:  bufio.NewReader(os.Stdin),

		deviceID: deviceID,
	}, nil
}

func (a *App) isLoggedIn() bool {
	return a.session.Current().LoggedIn()
}

// status renders the prompt decoration: the localized phone number of the
// signed-in user, or nothing when anonymous.
func (a *App) status() string {
	s := a.session.Current()
	if !s.LoggedIn() {
		return ""
	}
	return "(" + phone.Localize(s.PhoneNumber) + ")"
}

// Run restores any persisted session (the splash step), greets the user and
// enters the command loop. It returns when the user exits or stdin closes.
func (a *App) Run(ctx context.Context) {
	sess, err := a.session.Restore(ctx)
	if err != nil {
		a.logger.Warn("restoring session", "error", err)
	}
	if sess.LoggedIn() {
		printlnFn("Welcome back,", phone.Localize(sess.PhoneNumber))
	} else if last, _ := a.session.LastPhoneNumber(ctx); last != "" {
		printlnFn("Welcome back! Type 'unlock' to sign in as", phone.Localize(last))
	} else {
		printlnFn("Welcome to AfriWallet (type 'help' for commands)")
	}

	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.status, scanner)
}
