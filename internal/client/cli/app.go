package cli

import (
	"bufio"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"sync"
	"time"

	"github.com/dmitrijs2005/plantvision/internal/client/client"
	"github.com/dmitrijs2005/plantvision/internal/client/config"
	"github.com/dmitrijs2005/plantvision/internal/client/services"
	"github.com/dmitrijs2005/plantvision/internal/client/session"
)

type Mode string

const (
	ModeOffline Mode = "offline"
	ModeOnline  Mode = "online"
)

type App struct {
	config   *config.Config
	db       *sql.DB
	auth     services.AuthService
	analyses services.AnalysisService
	garden   services.GardenService
	account  services.AccountService
	reader   *bufio.Reader

	outMu sync.Mutex
	out   io.Writer

	mu   sync.Mutex
	user *services.User
	mode Mode
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	db, err := client.InitDatabase(ctx, c.DatabasePath)
	if err != nil {
		log.Printf("error initializing database: %s", err.Error())
		return nil, err
	}

	apiClient, err := client.NewPlantVisionClient(c.ServerEndpointAddr)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	a := &App{
		config:  c,
		db:      db,
		auth:    services.NewAuthService(apiClient, db),
		garden:  services.NewGardenService(apiClient),
		account: services.NewAccountService(apiClient),
		reader:  bufio.NewReader(os.Stdin),
		out:     os.Stdout,
	}
	a.analyses = services.NewAnalysisService(apiClient, db, c.AnalyzeTimeout, a.analysisFinished)
	return a, nil
}

func (a *App) printf(format string, args ...any) {
	a.outMu.Lock()
	defer a.outMu.Unlock()
	fmt.Fprintf(a.out, format, args...)
}

func (a *App) println(args ...any) {
	a.outMu.Lock()
	defer a.outMu.Unlock()
	fmt.Fprintln(a.out, args...)
}

// requestContext bounds one ordinary server call.
func (a *App) requestContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if a.config.RequestTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, a.config.RequestTimeout)
}

func (a *App) setMode(mode Mode) {
	a.mu.Lock()
	changed := a.mode != mode
	a.mode = mode
	a.mu.Unlock()
	if changed {
		log.Printf("Switched to %s mode\n", mode)
	}
}

func (a *App) currentMode() Mode {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.mode
}

func (a *App) setUser(u *services.User) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.user = u
}

func (a *App) currentUser() *services.User {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.user
}

func (a *App) isLoggedIn() bool {
	return a.currentUser() != nil
}

// noteConnectivity updates the mode after a call that reached (or failed to
// reach) the server.
func (a *App) noteConnectivity(err error) {
	switch {
	case err == nil:
		a.setMode(ModeOnline)
	case errors.Is(err, client.ErrUnavailable):
		a.setMode(ModeOffline)
	}
}

func (a *App) getStatus() string {
	s := ""
	if u := a.currentUser(); u != nil {
		s = u.DisplayName + " "
		if u.Anonymous {
			s = "guest "
		}
	}
	if m := a.currentMode(); m != "" {
		s += string(m)
	}
	if a.analyses != nil && a.analyses.Running() {
		s += ", analyzing"
	}
	if s != "" {
		s = fmt.Sprintf("(%s)", s)
	}
	return s
}

// analysisFinished announces an analysis that became current.
func (a *App) analysisFinished(r session.Result[services.Analysis]) {
	if r.Err != nil {
		a.printf("\nAnalysis #%d of %s failed: %s\n", r.Seq, r.Value.Path, describeError(r.Err))
		return
	}
	a.printf("\nAnalysis #%d of %s is ready: %s. Type 'status' to view or 'save' to keep it.\n",
		r.Seq, r.Value.Path, plantName(r.Value.Result))
}

// resume restores the stored session. When the server cannot be reached
// the cached account is used so that saved history stays browsable.
func (a *App) resume(ctx context.Context) {
	rctx, cancel := a.requestContext(ctx)
	defer cancel()

	u, err := a.auth.Resume(rctx)
	a.noteConnectivity(err)
	switch {
	case err == nil && u != nil:
		a.setUser(u)
		a.printf("Welcome back, %s!\n", u.DisplayName)
	case err == nil:
		a.println("Type 'register', 'login' or 'guest' to begin.")
	case errors.Is(err, client.ErrUnavailable):
		last, lErr := a.auth.LastUser(ctx)
		if lErr != nil || last == nil {
			a.println("Server unavailable. Try again later.")
			return
		}
		a.setUser(last)
		a.printf("Server unavailable; browsing cached history of %s.\n", last.DisplayName)
	default:
		a.println("Session expired, please log in again.")
	}
}

func (a *App) Run(ctx context.Context) {
	defer func() {
		a.analyses.Cancel()
		a.analyses.Wait()
		if err := a.auth.Close(ctx); err != nil {
			log.Printf("error closing client: %s", err.Error())
		}
		if a.db != nil {
			_ = a.db.Close()
		}
	}()

	watchCtx, stopWatch := context.WithCancel(ctx)
	defer stopWatch()

	a.println("Welcome to PlantVision CLI (type 'help' for commands)")
	a.resume(ctx)

	go a.StartOnlineStatusWatcher(watchCtx, a.config.OnlineCheckInterval)

	runREPL(ctx, a, a.getStatus, a.reader)
}

func (a *App) StartOnlineStatusWatcher(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			pctx, cancel := context.WithTimeout(ctx, 3*time.Second)
			err := a.auth.Ping(pctx)
			cancel()

			if err != nil {
				if a.currentMode() == ModeOnline {
					a.setMode(ModeOffline)
				}
			} else if a.currentMode() != ModeOnline {
				a.setMode(ModeOnline)
			}

		case <-ctx.Done():
			return
		}
	}
}

// describeError turns client errors into something a user can act on.
func describeError(err error) string {
	switch {
	case errors.Is(err, client.ErrUnavailable):
		return "server unavailable, try again later"
	case errors.Is(err, client.ErrUnauthorized):
		return "not authorized: " + err.Error()
	case errors.Is(err, context.DeadlineExceeded):
		return "timed out"
	default:
		return err.Error()
	}
}
