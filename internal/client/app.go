package client

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/MKhiriev/labrat-client/internal/adapter"
	"github.com/MKhiriev/labrat-client/internal/bridge"
	"github.com/MKhiriev/labrat-client/internal/config"
	"github.com/MKhiriev/labrat-client/internal/logger"
	"github.com/MKhiriev/labrat-client/internal/secrets"
	"github.com/MKhiriev/labrat-client/internal/tui"
	"github.com/MKhiriev/labrat-client/internal/workers"
	"github.com/MKhiriev/labrat-client/models"
)

type App struct {
	bridge  *bridge.Bridge
	handle  *bridge.Handle
	secrets secrets.Secrets
	workers *workers.Workers
	ui      UI
	cookies string
	logger  *logger.Logger
}

// NewApp builds the credential store, starts the bridge worker and wires
// the terminal UI and the notification poller to it.
func NewApp(ctx context.Context, cfg *config.ClientConfig, info models.BuildInfo, log *logger.Logger) (*App, error) {
	store, err := newSecrets(ctx, cfg, log)
	if err != nil {
		return nil, fmt.Errorf("create credential store: %w", err)
	}

	counters := &countersRelay{}
	b, err := bridge.Spawn(adapter.NewHTTPFactory(cfg.Adapter, log),
		bridge.WithLogger(log),
		bridge.WithCountersSink(counters.forward),
	)
	if err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("start bridge: %w", err)
	}

	handle := b.Handle()
	ui := tui.New(handle, store, cfg.Adapter.BaseURL, info, log)

	return newApp(b, handle, store, ui, counters, cfg, log), nil
}

func newApp(b *bridge.Bridge, handle *bridge.Handle, store secrets.Secrets, ui UI, counters *countersRelay, cfg *config.ClientConfig, log *logger.Logger) *App {
	counters.set(ui.Counters)
	poller := workers.NewNotificationPoller(b.Handle(), cfg.Workers.PollInterval, ui.Notify, log)

	return &App{
		bridge:  b,
		handle:  handle,
		secrets: store,
		workers: workers.NewWorkers(poller),
		ui:      ui,
		cookies: cfg.App.Cookies,
		logger:  log,
	}
}

func newSecrets(ctx context.Context, cfg *config.ClientConfig, log *logger.Logger) (secrets.Secrets, error) {
	if cfg.Storage.DB.DSN == "" {
		log.Info().Msg("no credential database configured, cookies are kept in memory")
		return secrets.NewMemorySecrets(), nil
	}
	return secrets.NewSQLiteSecrets(ctx, cfg.Storage, cfg.App.SecretKey, log)
}

// Run implements [Client]. It blocks until the UI exits, then stops the
// background workers and shuts the bridge down. If the worker panicked,
// Run panics with the *bridge.WorkerPanic after cleaning up.
func (a *App) Run() error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	defer a.closeSecrets()
	defer a.bridge.Shutdown()
	defer a.handle.Release()

	if a.cookies != "" {
		if err := a.secrets.Set(ctx, a.cookies); err != nil {
			return fmt.Errorf("store session cookies: %w", err)
		}
		a.logger.Info().Msg("session cookies stored")
	}

	// A dead worker takes the UI down with it.
	go func() {
		select {
		case <-a.bridge.Done():
			cancel()
		case <-ctx.Done():
		}
	}()

	a.workers.Start(ctx)
	defer a.workers.Stop()

	err := a.ui.Run(ctx)
	if errors.Is(err, tui.ErrUserQuit) {
		a.logger.Info().Msg("user quit")
		return nil
	}
	return err
}

// countersRelay lets the bridge be spawned before the UI that shows its
// counters exists.
type countersRelay struct {
	mu   sync.RWMutex
	sink bridge.CountersSink
}

func (r *countersRelay) set(sink bridge.CountersSink) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sink = sink
}

func (r *countersRelay) forward(n models.Notifications) {
	r.mu.RLock()
	sink := r.sink
	r.mu.RUnlock()

	if sink != nil {
		sink(n)
	}
}

func (a *App) closeSecrets() {
	if err := a.secrets.Close(); err != nil {
		a.logger.Err(err).Msg("close credential store")
	}
}
