// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package bridge

import (
	"context"
	"fmt"
	"runtime/debug"
	"sync"

	"github.com/MKhiriev/labrat-client/internal/adapter"
	"github.com/MKhiriev/labrat-client/internal/logger"
	"github.com/MKhiriev/labrat-client/models"
)

// Bridge owns the worker goroutine and one handle to it.
type Bridge struct {
	handle *Handle
	done   chan struct{}
	cancel context.CancelFunc
	logger *logger.Logger

	// failure is written by the worker goroutine before done is closed.
	failure *WorkerPanic

	shutdownOnce sync.Once
}

// Option configures Spawn.
type Option func(*options)

type options struct {
	logger   *logger.Logger
	counters CountersSink
}

// WithLogger sets the logger used by the worker. Defaults to [logger.Nop].
func WithLogger(l *logger.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// CountersSink receives the unread counters the site attached to a
// successful response. It runs on the calling goroutine, after the worker
// has handed the result over.
type CountersSink func(models.Notifications)

// WithCountersSink makes every handle report the counters of each successful
// read to sink.
func WithCountersSink(sink CountersSink) Option {
	return func(o *options) {
		o.counters = sink
	}
}

// Spawn builds the default client from factory and starts the worker with
// it. It fails with [ErrClientConstruction] if the client cannot be built;
// no goroutine is started in that case.
func Spawn(factory adapter.Factory, opts ...Option) (*Bridge, error) {
	o := options{logger: logger.Nop()}
	for _, opt := range opts {
		opt(&o)
	}

	api, err := factory.Default()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrClientConstruction, err)
	}

	log := o.logger.GetChildLogger()
	log.Logger = log.With().Str("component", "bridge").Logger()

	q := newQueue()
	q.producers = 1

	ctx, cancel := context.WithCancel(context.Background())
	b := &Bridge{
		handle: newHandle(q, factory, o.counters),
		done:   make(chan struct{}),
		cancel: cancel,
		logger: log,
	}

	go b.run(newWorker(ctx, q, api, log))

	return b, nil
}

func (b *Bridge) run(w *worker) {
	defer close(b.done)
	defer b.cancel()
	defer func() {
		if r := recover(); r != nil {
			b.failure = &WorkerPanic{Value: r, Stack: debug.Stack()}
			b.logger.Error().
				Interface("panic", r).
				Bytes("stack", b.failure.Stack).
				Msg("bridge worker panicked")
		}

		pending := w.queue.close()
		for _, env := range pending {
			env.abandon()
		}
		b.logger.Info().Int("dropped", len(pending)).Msg("request queue closed")
	}()

	w.run()
}

// Handle returns a new handle to the worker. The caller should Release it
// when done. Safe for concurrent use.
func (b *Bridge) Handle() *Handle {
	return b.handle.Clone()
}

// Done is closed once the worker goroutine has exited.
func (b *Bridge) Done() <-chan struct{} {
	return b.done
}

// Shutdown stops the worker and waits for it to exit. Requests still queued
// are dropped and their callers get [ErrExited].
//
// If the worker died from a panic, Shutdown panics with a *[WorkerPanic]
// carrying the original value. Calling Shutdown again repeats the same
// outcome.
func (b *Bridge) Shutdown() {
	b.shutdownOnce.Do(func() {
		b.handle.Stop()
		b.handle.Release()
	})

	<-b.done

	if b.failure != nil {
		panic(b.failure)
	}
}
