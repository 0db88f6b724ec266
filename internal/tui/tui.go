package tui

import (
	"context"
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/labrat-client/internal/logger"
	"github.com/MKhiriev/labrat-client/internal/secrets"
	"github.com/MKhiriev/labrat-client/models"
)

// TUI is the interactive foreground of the client.
type TUI struct {
	remote    Remote
	secrets   secrets.Secrets
	baseURL   string
	buildInfo models.BuildInfo
	logger    *logger.Logger

	mu      sync.Mutex
	program *tea.Program
}

func New(remote Remote, store secrets.Secrets, baseURL string, info models.BuildInfo, log *logger.Logger) *TUI {
	return &TUI{
		remote:    remote,
		secrets:   store,
		baseURL:   baseURL,
		buildInfo: info,
		logger:    log,
	}
}

// Run shows the UI until the user quits or ctx is cancelled. It returns
// [ErrUserQuit] on a normal exit and bridge.ErrExited when the worker went
// away underneath it.
func (t *TUI) Run(ctx context.Context) error {
	model := newAppModel(ctx, t.remote, t.secrets, t.baseURL, t.buildInfo)
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))

	t.mu.Lock()
	t.program = p
	t.mu.Unlock()

	finalModel, runErr := p.Run()

	t.mu.Lock()
	t.program = nil
	t.mu.Unlock()

	if runErr != nil {
		return runErr
	}

	result, ok := finalModel.(appModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	return result.err
}

// Counters forwards the unread counters of the latest page to the running
// UI. It is a no-op when the UI is not running.
func (t *TUI) Counters(n models.Notifications) {
	t.send(countersMsg{counters: n})
}

// Notify forwards a notification poll result to the running UI. It is a
// no-op when the UI is not running.
func (t *TUI) Notify(others models.Others, err error) {
	t.send(notificationsMsg{others: others, err: err})
}

func (t *TUI) send(msg tea.Msg) {
	t.mu.Lock()
	p := t.program
	t.mu.Unlock()

	if p != nil {
		p.Send(msg)
	}
}
