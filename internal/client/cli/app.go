package cli

import (
	"bufio"
	"context"
	"errors"
	"os"

	"wodtracker/internal/client/api"
	"wodtracker/internal/client/config"
	"wodtracker/internal/client/repositories/credentials"
	"wodtracker/internal/client/session"
	"wodtracker/internal/client/storage"
	"wodtracker/internal/common"
	"wodtracker/internal/logging"

	_ "modernc.org/sqlite"
)

type App struct {
	config  *config.Config
	session *session.Manager
	api     *api.Client
	logger  logging.Logger
	reader  *bufio.Reader
}

func NewApp(c *config.Config, logger logging.Logger) (*App, error) {
	ctx := context.Background()

	db, err := storage.InitDatabase(ctx, c.DatabasePath)
	if err != nil {
		logger.Error(ctx, "error initializing database", "error", err.Error())
		return nil, err
	}

	creds := credentials.NewSQLiteRepository(db)
	apiClient := api.NewClient(c.ServerBaseURL, creds, logger)
	mgr := session.NewManager(db, apiClient, logger)

	return &App{
		config:  c,
		session: mgr,
		api:     apiClient,
		logger:  logger,
		reader:  bufio.NewReader(os.Stdin),
	}, nil
}

func (a *App) isLoggedIn() bool {
	return a.session.Snapshot().Authenticated()
}

// Run restores a previously stored session, then drops into the REPL.
// A missing stored session is the normal cold-start case, not a failure.
func (a *App) Run(ctx context.Context) {
	if err := a.session.Restore(ctx); err != nil {
		if errors.Is(err, common.ErrNoActiveSession) {
			printlnFn("No stored session, please log in.")
		} else {
			a.logger.Warn(ctx, "session restore failed", "error", err.Error())
		}
	} else {
		s := a.session.Snapshot()
		if s.User != nil {
			printlnFn("Welcome back,", s.User.Email)
		}
	}

	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}

func (a *App) getStatus() string {
	s := a.session.Snapshot()
	switch ScreenFor(s) {
	case ScreenLoading:
		return "(working)"
	case ScreenMain:
		if s.User != nil {
			return "(" + s.User.Email + ")"
		}
		return "(logged in)"
	default:
		return ""
	}
}
