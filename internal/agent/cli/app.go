package cli

import (
	"bufio"
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/dmitrijs2005/workfolio/internal/agent/capture"
	"github.com/dmitrijs2005/workfolio/internal/agent/client"
	"github.com/dmitrijs2005/workfolio/internal/agent/config"
	"github.com/dmitrijs2005/workfolio/internal/agent/orchestrator"
	"github.com/dmitrijs2005/workfolio/internal/logging"
)

// sessionController is the slice of the orchestrator the commands need.
// Tests substitute a stub.
type sessionController interface {
	ClockIn(ctx context.Context) (string, time.Time, error)
	StartBreak(ctx context.Context) (time.Time, error)
	EndBreak(ctx context.Context) (int64, error)
	ClockOut(ctx context.Context) (*client.ClockOutSummary, error)
	State() orchestrator.State
	Shutdown()
}

type App struct {
	config   *config.Config
	client   client.Client
	orch     sessionController
	userName string
	role     string
	reader   *bufio.Reader
}

func NewApp(c *config.Config) (*App, error) {

	apiClient, err := client.NewWorkfolioClient(c.ServerEndpointAddr)
	if err != nil {
		return nil, err
	}

	capturer, err := capture.NewExecCapturer(c.ScreenshotDir)
	if err != nil {
		return nil, err
	}

	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))
	orch := orchestrator.NewOrchestrator(apiClient, capturer, c.ScreenshotInterval, logger)

	return &App{config: c, client: apiClient, orch: orch, reader: bufio.NewReader(os.Stdin)}, nil
}

func (a *App) isLoggedIn() bool {
	return a.userName != ""
}

func (a *App) isAdmin() bool {
	return a.role == "admin"
}

func (a *App) Run(ctx context.Context) {
	defer a.client.Close()
	defer a.orch.Shutdown()
	a.Root(ctx)
}
