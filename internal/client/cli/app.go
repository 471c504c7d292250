package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/dmitrijs2005/leettrack/internal/client/api"
	"github.com/dmitrijs2005/leettrack/internal/client/config"
	"github.com/dmitrijs2005/leettrack/internal/client/repositories/localstate"
	"github.com/dmitrijs2005/leettrack/internal/client/service"
	"github.com/dmitrijs2005/leettrack/internal/client/session"
	"github.com/dmitrijs2005/leettrack/internal/client/store"
	"github.com/dmitrijs2005/leettrack/internal/filex"
	"github.com/dmitrijs2005/leettrack/internal/logging"

	_ "modernc.org/sqlite"
)

const appName = "leettrack"

type App struct {
	config *config.Config
	store  *store.Store
	api    *api.Client
	reader *bufio.Reader
	log    logging.Logger
}

func NewApp(c *config.Config) (*App, error) {

	ctx := context.Background()

	log := logging.NewZerologLogger(zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger())

	dbPath := c.DatabasePath
	if dbPath == "" {
		dir, err := filex.EnsureDataDir(appName)
		if err != nil {
			return nil, err
		}
		dbPath = filepath.Join(dir, "state.db")
	}

	db, err := localstate.InitDatabase(ctx, dbPath)
	if err != nil {
		log.Error(ctx, "error initializing database", "error", err)
		return nil, err
	}

	sess := session.New(db, log)

	apiClient, err := api.New(api.Config{
		BaseURL: c.APIBaseURL,
		Timeout: c.RequestTimeout,
		Session: sess,
		Logger:  log,
		OnAuthExpired: func() {
			printlnFn("Session expired, please log in again.")
		},
	})
	if err != nil {
		return nil, err
	}

	st := store.New(sess,
		service.NewAuthService(apiClient),
		service.NewProblemService(apiClient),
		service.NewSubmissionService(apiClient),
		service.NewStatsService(apiClient),
		log)

	return &App{config: c, store: st, api: apiClient, reader: bufio.NewReader(os.Stdin), log: log}, nil
}

// Run restores the persisted session, primes the CSRF cookie and starts
// the REPL. It blocks until the user exits.
func (a *App) Run(ctx context.Context) {
	a.store.Rehydrate(ctx)
	service.FetchCSRFToken(ctx, a.api, a.log)

	fmt.Println("LeetTrack CLI (type 'help' for commands)")
	runREPL(ctx, a, a.getStatus, bufio.NewScanner(os.Stdin))
}

func (a *App) isLoggedIn() bool {
	return a.store.Auth().IsAuthenticated
}

func (a *App) getStatus() string {
	auth := a.store.Auth()
	if auth.User != nil && auth.User.Username != "" {
		return fmt.Sprintf("(%s)", auth.User.Username)
	}
	if auth.IsAuthenticated {
		return "(logged in)"
	}
	return ""
}
