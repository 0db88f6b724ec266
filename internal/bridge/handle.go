// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package bridge

import (
	"context"
	"fmt"
	"sync/atomic"

	"golang.org/x/net/http/httpguts"

	"github.com/MKhiriev/labrat-client/internal/adapter"
	"github.com/MKhiriev/labrat-client/internal/utils"
	"github.com/MKhiriev/labrat-client/models"
)

// Handle is a caller's connection to the bridge worker. Handles are safe for
// concurrent use; Clone gives each owner its own handle and Release gives it
// back. The worker stops on its own once every handle has been released.
//
// After Release, or once the worker has exited, every method fails with
// [ErrExited] and Stop does nothing.
type Handle struct {
	queue    *queue
	factory  adapter.Factory
	ids      *utils.UUIDGenerator
	counters CountersSink
	released atomic.Bool
}

func newHandle(q *queue, factory adapter.Factory, counters CountersSink) *Handle {
	return &Handle{
		queue:    q,
		factory:  factory,
		ids:      utils.NewUUIDGenerator(),
		counters: counters,
	}
}

// Clone returns a new handle to the same worker. Cloning a released handle,
// or any handle after the worker exited, yields a handle that is already
// released.
func (h *Handle) Clone() *Handle {
	c := &Handle{
		queue:    h.queue,
		factory:  h.factory,
		ids:      h.ids,
		counters: h.counters,
	}
	if h.released.Load() || !h.queue.acquire() {
		c.released.Store(true)
	}
	return c
}

// Release gives the handle back. Safe to call more than once.
func (h *Handle) Release() {
	if h.released.CompareAndSwap(false, true) {
		h.queue.release()
	}
}

// Journal fetches a journal entry.
func (h *Handle) Journal(ctx context.Context, key models.JournalKey) (models.Journal, error) {
	return call(ctx, h, func(m meta, r *reply[result[models.Response[models.Journal]]]) envelope {
		return &journalRequest{meta: m, key: key, reply: r}
	})
}

// View fetches a submission page.
func (h *Handle) View(ctx context.Context, key models.ViewKey) (models.View, error) {
	return call(ctx, h, func(m meta, r *reply[result[models.Response[models.View]]]) envelope {
		return &viewRequest{meta: m, key: key, reply: r}
	})
}

// Reply posts text as a reply to a comment.
func (h *Handle) Reply(ctx context.Context, key models.CommentReplyKey, text string) error {
	return callVoid(ctx, h, func(m meta, r *reply[error]) envelope {
		return &replyRequest{meta: m, key: key, text: text, reply: r}
	})
}

// Fav adds a submission to favorites and returns the updated page.
func (h *Handle) Fav(ctx context.Context, key models.FavKey) (models.View, error) {
	return call(ctx, h, func(m meta, r *reply[result[models.Response[models.View]]]) envelope {
		return &favRequest{meta: m, key: key, reply: r}
	})
}

// Unfav removes a submission from favorites and returns the updated page.
func (h *Handle) Unfav(ctx context.Context, key models.FavKey) (models.View, error) {
	return call(ctx, h, func(m meta, r *reply[result[models.Response[models.View]]]) envelope {
		return &unfavRequest{meta: m, key: key, reply: r}
	})
}

// Others fetches the non-submission notifications.
func (h *Handle) Others(ctx context.Context) (models.Others, error) {
	return call(ctx, h, func(m meta, r *reply[result[models.Response[models.Others]]]) envelope {
		return &othersRequest{meta: m, reply: r}
	})
}

// Submissions fetches one page of the submission inbox.
func (h *Handle) Submissions(ctx context.Context, key models.SubmissionsKey) (models.Submissions, error) {
	return call(ctx, h, func(m meta, r *reply[result[models.Response[models.Submissions]]]) envelope {
		return &submissionsRequest{meta: m, key: key, reply: r}
	})
}

// ClearSubmissions removes the given submissions from the inbox.
func (h *Handle) ClearSubmissions(ctx context.Context, keys []models.ViewKey) error {
	return callVoid(ctx, h, func(m meta, r *reply[error]) envelope {
		return &clearSubmissionsRequest{meta: m, keys: keys, reply: r}
	})
}

// Login builds an authenticated client from a raw Cookie header value and
// makes the worker use it for every request queued after this one.
// Requests already queued keep the previous client.
//
// Errors:
//   - [ErrInvalidCredentials] when cookies is not a valid header value;
//   - [ErrClientConstruction] wrapping the factory's error;
//   - [ErrExited] when the worker is gone.
func (h *Handle) Login(ctx context.Context, cookies string) error {
	if !httpguts.ValidHeaderFieldValue(cookies) {
		return fmt.Errorf("%w: cookie string is not a valid header value", ErrInvalidCredentials)
	}

	api, err := h.factory.WithCookies(cookies)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrClientConstruction, err)
	}

	return h.replace(ctx, api)
}

// Logout switches the worker back to an unauthenticated client.
func (h *Handle) Logout(ctx context.Context) error {
	api, err := h.factory.Default()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrClientConstruction, err)
	}

	return h.replace(ctx, api)
}

// Stop asks the worker to exit after the request it is currently serving.
// Requests still queued behind it are dropped. Stop does not wait.
func (h *Handle) Stop() {
	_ = h.send(stopRequest{})
}

func (h *Handle) replace(ctx context.Context, api adapter.RemoteAPI) error {
	ack := newReply[struct{}]()
	if err := h.send(&replaceRequest{meta: h.meta(), api: api, ack: ack}); err != nil {
		return err
	}

	_, err := ack.wait(ctx)
	return err
}

func (h *Handle) send(env envelope) error {
	if h.released.Load() || !h.queue.push(env) {
		return ErrExited
	}
	return nil
}

func (h *Handle) meta() meta {
	return meta{id: h.ids.Generate()}
}

// call queues the request built by build and waits for the page of its
// response. Remote API errors are returned as is. The counters of a
// successful response go to the handle's sink.
func call[T any](ctx context.Context, h *Handle, build func(meta, *reply[result[models.Response[T]]]) envelope) (T, error) {
	var zero T

	r := newReply[result[models.Response[T]]]()
	if err := h.send(build(h.meta(), r)); err != nil {
		return zero, err
	}

	res, err := r.wait(ctx)
	if err != nil {
		return zero, err
	}
	if res.err != nil {
		return zero, res.err
	}
	if h.counters != nil {
		h.counters(res.value.Notifications)
	}

	return res.value.Page, nil
}

func callVoid(ctx context.Context, h *Handle, build func(meta, *reply[error]) envelope) error {
	r := newReply[error]()
	if err := h.send(build(h.meta(), r)); err != nil {
		return err
	}

	remoteErr, err := r.wait(ctx)
	if err != nil {
		return err
	}
	return remoteErr
}
