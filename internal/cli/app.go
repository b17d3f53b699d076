package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/dmitrijs2005/back2me/internal/config"
	"github.com/dmitrijs2005/back2me/internal/logging"
	"github.com/dmitrijs2005/back2me/internal/models"
	"github.com/dmitrijs2005/back2me/internal/repositories/kv"
	"github.com/dmitrijs2005/back2me/internal/services"
	"github.com/dmitrijs2005/back2me/internal/storage"
)

// App is the terminal client. It holds the services, the current session and
// the terminal streams.
type App struct {
	config        *config.Config
	log           logging.Logger
	accounts      services.AccountService
	sessions      services.SessionService
	listings      services.ListingService
	conversations services.ConversationService
	profiles      services.ProfileService

	session *models.Session
	reader  *bufio.Reader
	out     io.Writer
	now     func() time.Time
	closeFn func() error
}

// NewApp opens the durable store named by c.DatabaseDSN and builds the
// services on top of it. The ephemeral session scope lives in memory for the
// lifetime of the process.
func NewApp(ctx context.Context, c *config.Config, log logging.Logger) (*App, error) {
	durable, err := storage.Open(ctx, c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("error initializing database: %w", err)
	}

	secret, err := resolveSecret(ctx, durable, c.SecretKey)
	if err != nil {
		_ = durable.Close()
		return nil, err
	}

	backend, err := newMediaBackend(ctx, c)
	if err != nil {
		_ = durable.Close()
		return nil, err
	}

	opts := []services.Option{services.WithLogger(log)}
	sessions := services.NewSessionService(durable, kv.NewMemoryStore(), secret, c.SessionTTL, opts...)
	return &App{
		config:        c,
		log:           log,
		accounts:      services.NewAccountService(durable, opts...),
		sessions:      sessions,
		listings:      services.NewListingService(durable, opts...),
		conversations: services.NewConversationService(durable, sessions, opts...),
		profiles:      services.NewProfileService(durable, backend, opts...),
		reader:        bufio.NewReader(os.Stdin),
		out:           os.Stdout,
		now:           time.Now,
		closeFn:       durable.Close,
	}, nil
}

// Run restores any saved session, seeds the demo feed and serves the REPL
// until the user leaves.
func (a *App) Run(ctx context.Context) error {
	defer a.Close()

	if err := a.listings.EnsureSeeded(ctx); err != nil {
		return fmt.Errorf("seed listings: %w", err)
	}
	if err := a.restoreSession(ctx); err != nil {
		return err
	}

	fmt.Fprintln(a.out, "Welcome to Back2Me (type 'help' for commands)")
	if a.isLoggedIn() {
		fmt.Fprintf(a.out, "Logged in as %s\n", a.session.Username)
	}

	runREPL(ctx, a, a.getStatus, a.reader)
	return nil
}

// Close releases the durable store.
func (a *App) Close() error {
	if a.closeFn == nil {
		return nil
	}
	err := a.closeFn()
	a.closeFn = nil
	return err
}

func (a *App) restoreSession(ctx context.Context) error {
	s, ok, err := a.sessions.CurrentSession(ctx)
	if err != nil {
		return fmt.Errorf("restore session: %w", err)
	}
	if !ok {
		return nil
	}
	a.session = &s
	return a.conversations.EnsureSeeded(ctx)
}

func (a *App) isLoggedIn() bool {
	return a.session != nil
}

func (a *App) getStatus() string {
	if a.session == nil {
		return ""
	}
	return fmt.Sprintf("(%s)", a.session.Username)
}

// simulate waits for the configured latency, mirroring the delay users are
// used to from the web client. It returns early when ctx ends.
func (a *App) simulate(ctx context.Context) error {
	d := a.config.SimulatedLatency
	if d <= 0 {
		return nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
