// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package bridge

import (
	"context"
	"time"

	"github.com/MKhiriev/labrat-client/internal/adapter"
	"github.com/MKhiriev/labrat-client/internal/logger"
	"github.com/MKhiriev/labrat-client/internal/utils"
)

// worker owns the current remote API client and serves envelopes from the
// queue one at a time. Only the worker goroutine touches api.
type worker struct {
	queue  *queue
	api    adapter.RemoteAPI
	logger *logger.Logger
	ctx    context.Context
}

func newWorker(ctx context.Context, q *queue, api adapter.RemoteAPI, log *logger.Logger) *worker {
	return &worker{
		queue:  q,
		api:    api,
		logger: log,
		ctx:    ctx,
	}
}

// run serves envelopes until a stop request arrives or every handle is
// released. Panics from the remote API are not recovered here.
func (w *worker) run() {
	w.logger.Info().Msg("bridge worker started")

	for {
		env, ok := w.queue.pop()
		if !ok {
			w.logger.Info().Msg("all handles released, bridge worker stopping")
			return
		}

		if _, stop := env.(stopRequest); stop {
			w.logger.Info().Msg("stop requested, bridge worker stopping")
			return
		}

		w.dispatch(env)
	}
}

func (w *worker) dispatch(env envelope) {
	// Resolves the reply if the call below panics; no-op after delivery.
	defer env.abandon()

	ctx := w.ctx
	log := w.logger.With().Str("op", env.op())
	if m, ok := env.(interface{ requestID() string }); ok {
		ctx = utils.WithRequestID(ctx, m.requestID())
		log = log.Str("request_id", m.requestID())
		if created, ok := utils.RequestIDTime(m.requestID()); ok {
			log = log.Dur("queued", time.Since(created))
		}
	}
	l := &logger.Logger{Logger: log.Logger()}
	ctx = l.WithContext(ctx)

	l.Debug().Msg("dispatching request")

	switch e := env.(type) {
	case *replaceRequest:
		w.api = e.api
		l.Info().Msg("client replaced")
		e.ack.send(struct{}{})
	case *journalRequest:
		deliver(e.reply)(w.api.Journal(ctx, e.key))
	case *viewRequest:
		deliver(e.reply)(w.api.View(ctx, e.key))
	case *replyRequest:
		e.reply.send(w.api.Reply(ctx, e.key, e.text))
	case *favRequest:
		deliver(e.reply)(w.api.Fav(ctx, e.key))
	case *unfavRequest:
		deliver(e.reply)(w.api.Unfav(ctx, e.key))
	case *othersRequest:
		deliver(e.reply)(w.api.Others(ctx))
	case *submissionsRequest:
		deliver(e.reply)(w.api.Submissions(ctx, e.key))
	case *clearSubmissionsRequest:
		e.reply.send(w.api.ClearSubmissions(ctx, e.keys))
	default:
		l.Error().Msgf("unknown request type %T", env)
	}
}

// deliver returns a function that sends a remote call's result into r.
// A consumer that stopped waiting is not an error.
func deliver[T any](r *reply[result[T]]) func(T, error) {
	return func(v T, err error) {
		r.send(result[T]{value: v, err: err})
	}
}
