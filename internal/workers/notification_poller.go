// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/MKhiriev/labrat-client/internal/adapter"
	"github.com/MKhiriev/labrat-client/internal/bridge"
	"github.com/MKhiriev/labrat-client/internal/logger"
	"github.com/MKhiriev/labrat-client/models"
)

// DefaultPollInterval is used when the poller is given a non-positive
// interval.
const DefaultPollInterval = 5 * time.Minute

// Sink receives every poll result.
type Sink func(models.Others, error)

// NotificationPoller fetches the notification inbox on a ticker and hands
// each result to a sink.
type NotificationPoller struct {
	source   OthersSource
	interval time.Duration
	sink     Sink
	logger   *logger.Logger

	mu          sync.Mutex
	cancel      context.CancelFunc
	wg          sync.WaitGroup
	releaseOnce sync.Once
}

// NewNotificationPoller creates a poller reading from source. The poller
// owns source: Stop releases it.
func NewNotificationPoller(source OthersSource, interval time.Duration, sink Sink, log *logger.Logger) *NotificationPoller {
	if interval <= 0 {
		interval = DefaultPollInterval
	}
	if sink == nil {
		sink = func(models.Others, error) {}
	}

	return &NotificationPoller{
		source:   source,
		interval: interval,
		sink:     sink,
		logger:   log,
	}
}

// Start implements [Worker]. It stops a previous run, then polls every
// interval until ctx is cancelled, Stop is called, or the bridge exits.
func (p *NotificationPoller) Start(ctx context.Context) {
	p.halt()

	p.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	p.cancel = cancel
	p.wg.Add(1)
	p.mu.Unlock()

	go func() {
		defer p.wg.Done()
		t := time.NewTicker(p.interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				if !p.poll(jobCtx) {
					return
				}
			}
		}
	}()
}

// Stop implements [Worker]. It waits for the polling goroutine to exit and
// releases the source.
func (p *NotificationPoller) Stop() {
	p.halt()
	p.releaseOnce.Do(p.source.Release)
}

// poll runs one fetch. It reports false when polling should end.
func (p *NotificationPoller) poll(ctx context.Context) bool {
	others, err := p.source.Others(ctx)

	switch {
	case errors.Is(err, bridge.ErrExited):
		p.logger.Info().Msg("bridge exited, notification poller stopping")
		return false
	case ctx.Err() != nil:
		return false
	case errors.Is(err, adapter.ErrUnauthorized):
		p.logger.Debug().Msg("not logged in, skipping notifications")
	case err != nil:
		p.logger.Warn().Err(err).Msg("failed to poll notifications")
	}

	p.sink(others, err)
	return true
}

func (p *NotificationPoller) halt() {
	p.mu.Lock()
	cancel := p.cancel
	p.cancel = nil
	p.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	p.wg.Wait()
}
