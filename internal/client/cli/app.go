package cli

import (
	"bufio"
	"context"
	"os"

	"github.com/ecellnce/campushub/internal/client/config"
	"github.com/ecellnce/campushub/internal/client/feed"
	"github.com/ecellnce/campushub/internal/client/identity"
	"github.com/ecellnce/campushub/internal/client/remote"
	"github.com/ecellnce/campushub/internal/client/services"
	"github.com/ecellnce/campushub/internal/client/store"
	"github.com/ecellnce/campushub/internal/logging"

	_ "modernc.org/sqlite"
)

type App struct {
	config   *config.Config
	store    *store.Store
	feed     *feed.Service
	sync     *services.SyncService
	session  *identity.Manager
	api      remote.Client
	userName string
	reader   *bufio.Reader
	logger   logging.Logger
}

func NewApp(ctx context.Context, c *config.Config, logger logging.Logger) (*App, error) {
	st, err := store.Open(ctx, c.DatabaseDSN, logger)
	if err != nil {
		logger.Error(ctx, "error initializing database", "error", err)
		return nil, err
	}

	session := identity.NewManager(st.Repository(), identity.NewProfileProvider(st), logger)
	api := remote.NewHTTPClient(c.ServerEndpointAddr, c.RealtimeEndpointAddr, session, logger)
	feedSvc := feed.NewService(st, session, logger)
	syncSvc := services.NewSyncService(api, feedSvc, c.OnlineCheckInterval, logger)

	app := &App{
		config:  c,
		store:   st,
		feed:    feedSvc,
		sync:    syncSvc,
		session: session,
		api:     api,
		reader:  bufio.NewReader(os.Stdin),
		logger:  logger,
	}

	// Resume a stored session, if any.
	if access, _, err := session.Tokens(ctx); err == nil && access != "" {
		if user, err := session.Current(ctx); err == nil {
			app.userName = user.Name
		}
	}

	return app, nil
}

func (a *App) isLoggedIn() bool {
	return a.userName != ""
}

func (a *App) getStatus() string {
	s := ""
	if a.userName != "" {
		s = a.userName + " "
	}
	if a.sync.Online() {
		s += "online"
	} else {
		s += "offline"
	}
	return "(" + s + ")"
}

// Run starts the background sync watcher and the interactive loop. It blocks
// until the user exits or ctx is canceled.
func (a *App) Run(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	defer a.Close()

	go func() {
		if err := a.sync.Watch(ctx); err != nil && ctx.Err() == nil {
			a.logger.Warn(ctx, "sync watcher stopped", "error", err)
		}
	}()

	printlnFn("Welcome to CampusHub CLI (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}

func (a *App) Close() {
	_ = a.api.Close()
	_ = a.store.Close()
}
