// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package bridge

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/labrat-client/internal/adapter"
	"github.com/MKhiriev/labrat-client/internal/mock"
	"github.com/MKhiriev/labrat-client/internal/utils"
	"github.com/MKhiriev/labrat-client/models"
)

func TestHandle_Operations(t *testing.T) {
	ctx := context.Background()
	notes := models.Notifications{Submissions: 3, Notes: 1}

	t.Run("journal", func(t *testing.T) {
		_, _, api, b := setup(t)
		h := b.Handle()
		defer h.Release()

		want := models.Journal{Key: models.JournalKey{ID: 10}, Title: "hello"}
		api.EXPECT().Journal(gomock.Any(), models.JournalKey{ID: 10}).
			Return(models.Response[models.Journal]{Page: want, Notifications: notes}, nil)

		got, err := h.Journal(ctx, models.JournalKey{ID: 10})
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("view", func(t *testing.T) {
		_, _, api, b := setup(t)
		h := b.Handle()
		defer h.Release()

		want := models.View{Key: models.ViewKey{ID: 5}, Title: "art"}
		api.EXPECT().View(gomock.Any(), models.ViewKey{ID: 5}).
			Return(models.Response[models.View]{Page: want}, nil)

		got, err := h.View(ctx, models.ViewKey{ID: 5})
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("reply", func(t *testing.T) {
		_, _, api, b := setup(t)
		h := b.Handle()
		defer h.Release()

		key := models.CommentReplyKey{Target: models.CommentTargetView, ID: 5, CommentID: 77}
		api.EXPECT().Reply(gomock.Any(), key, "thanks").Return(nil)

		assert.NoError(t, h.Reply(ctx, key, "thanks"))
	})

	t.Run("fav and unfav", func(t *testing.T) {
		_, _, api, b := setup(t)
		h := b.Handle()
		defer h.Release()

		key := models.FavKey{ViewID: 5, Token: "tok"}
		faved := models.View{Key: models.ViewKey{ID: 5}, Faved: true}
		unfaved := models.View{Key: models.ViewKey{ID: 5}}
		gomock.InOrder(
			api.EXPECT().Fav(gomock.Any(), key).Return(models.Response[models.View]{Page: faved}, nil),
			api.EXPECT().Unfav(gomock.Any(), key).Return(models.Response[models.View]{Page: unfaved}, nil),
		)

		got, err := h.Fav(ctx, key)
		require.NoError(t, err)
		assert.True(t, got.Faved)

		got, err = h.Unfav(ctx, key)
		require.NoError(t, err)
		assert.False(t, got.Faved)
	})

	t.Run("others", func(t *testing.T) {
		_, _, api, b := setup(t)
		h := b.Handle()
		defer h.Release()

		want := models.Others{Shouts: []models.Comment{{ID: 1, Text: "hey"}}}
		api.EXPECT().Others(gomock.Any()).Return(models.Response[models.Others]{Page: want}, nil)

		got, err := h.Others(ctx)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("submissions", func(t *testing.T) {
		_, _, api, b := setup(t)
		h := b.Handle()
		defer h.Release()

		next := models.SubmissionsKey{Order: models.OrderOldest, From: 9, PerPage: models.DefaultSubmissionsPerPage}
		want := models.Submissions{
			Items: []models.Submission{{Key: models.ViewKey{ID: 8}}},
			Next:  &next,
		}
		api.EXPECT().Submissions(gomock.Any(), models.OldestSubmissions()).
			Return(models.Response[models.Submissions]{Page: want}, nil)

		got, err := h.Submissions(ctx, models.OldestSubmissions())
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("clear submissions", func(t *testing.T) {
		_, _, api, b := setup(t)
		h := b.Handle()
		defer h.Release()

		keys := []models.ViewKey{{ID: 1}, {ID: 2}}
		api.EXPECT().ClearSubmissions(gomock.Any(), keys).Return(nil)

		assert.NoError(t, h.ClearSubmissions(ctx, keys))
	})
}

func TestHandle_RemoteErrorsPassThrough(t *testing.T) {
	_, _, api, b := setup(t)
	h := b.Handle()
	defer h.Release()

	api.EXPECT().Others(gomock.Any()).Return(models.Response[models.Others]{}, adapter.ErrUnauthorized)
	api.EXPECT().Reply(gomock.Any(), gomock.Any(), gomock.Any()).Return(adapter.ErrForbidden)

	_, err := h.Others(context.Background())
	assert.Equal(t, adapter.ErrUnauthorized, err)

	err = h.Reply(context.Background(), models.CommentReplyKey{}, "x")
	assert.Equal(t, adapter.ErrForbidden, err)
}

func TestHandle_FIFO(t *testing.T) {
	_, _, api, b := setup(t)
	h := b.Handle()
	defer h.Release()

	var calls []uint64
	record := func(_ context.Context, key models.JournalKey) (models.Response[models.Journal], error) {
		calls = append(calls, key.ID)
		return models.Response[models.Journal]{Page: models.Journal{Key: key}}, nil
	}
	api.EXPECT().Journal(gomock.Any(), gomock.Any()).DoAndReturn(record).Times(5)

	for i := uint64(1); i <= 5; i++ {
		got, err := h.Journal(context.Background(), models.JournalKey{ID: i})
		require.NoError(t, err)
		assert.Equal(t, i, got.Key.ID)
	}

	h.Stop()
	waitDone(t, b)
	assert.Equal(t, []uint64{1, 2, 3, 4, 5}, calls)
}

func TestHandle_PipelinedFIFO(t *testing.T) {
	_, _, api, b := setup(t)
	h := b.Handle()
	defer h.Release()

	entered := make(chan struct{})
	unblock := make(chan struct{})

	var (
		mu     sync.Mutex
		served []uint64
	)
	api.EXPECT().Journal(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, key models.JournalKey) (models.Response[models.Journal], error) {
			if key.ID == 0 {
				close(entered)
				<-unblock
			}
			mu.Lock()
			served = append(served, key.ID)
			mu.Unlock()
			return models.Response[models.Journal]{Page: models.Journal{Key: key}}, nil
		}).Times(6)

	results := make(chan error, 6)
	issue := func(id uint64) {
		go func() {
			got, err := h.Journal(context.Background(), models.JournalKey{ID: id})
			if err == nil && got.Key.ID != id {
				err = fmt.Errorf("request %d got the answer for %d", id, got.Key.ID)
			}
			results <- err
		}()
	}

	issue(0)
	<-entered

	// Queue the rest one by one behind the blocked request.
	for i := uint64(1); i <= 5; i++ {
		issue(i)
		want := int(i)
		require.Eventually(t, func() bool { return b.handle.queue.len() == want }, waitTimeout, time.Millisecond)
	}

	close(unblock)
	for range 6 {
		require.NoError(t, <-results)
	}

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []uint64{0, 1, 2, 3, 4, 5}, served)
}

func TestHandle_LoginReplacesClient(t *testing.T) {
	ctrl, factory, anon, b := setup(t)
	h := b.Handle()
	defer h.Release()

	authed := mock.NewMockRemoteAPI(ctrl)

	gomock.InOrder(
		anon.EXPECT().Others(gomock.Any()).Return(models.Response[models.Others]{}, adapter.ErrUnauthorized),
		factory.EXPECT().WithCookies("a=1; b=2").Return(authed, nil),
		authed.EXPECT().Others(gomock.Any()).Return(models.Response[models.Others]{}, nil),
	)

	_, err := h.Others(context.Background())
	assert.ErrorIs(t, err, adapter.ErrUnauthorized)

	require.NoError(t, h.Login(context.Background(), "a=1; b=2"))

	_, err = h.Others(context.Background())
	assert.NoError(t, err)
}

func TestHandle_LoginAppliesToOtherClones(t *testing.T) {
	ctrl, factory, _, b := setup(t)
	h1 := b.Handle()
	defer h1.Release()
	h2 := h1.Clone()
	defer h2.Release()

	authed := mock.NewMockRemoteAPI(ctrl)
	factory.EXPECT().WithCookies("a=1").Return(authed, nil)
	authed.EXPECT().Submissions(gomock.Any(), gomock.Any()).Return(models.Response[models.Submissions]{}, nil)

	require.NoError(t, h1.Login(context.Background(), "a=1"))

	_, err := h2.Submissions(context.Background(), models.NewestSubmissions())
	assert.NoError(t, err)
}

func TestHandle_LoginInvalidHeader(t *testing.T) {
	_, _, _, b := setup(t)
	h := b.Handle()
	defer h.Release()

	for _, cookies := range []string{"a=1\r\nX-Evil: 1", "a=\x00"} {
		err := h.Login(context.Background(), cookies)
		assert.ErrorIs(t, err, ErrInvalidCredentials, "cookies %q", cookies)
	}
}

func TestHandle_LoginFactoryError(t *testing.T) {
	_, factory, _, b := setup(t)
	h := b.Handle()
	defer h.Release()

	factory.EXPECT().WithCookies("junk").Return(nil, adapter.ErrMalformedCookie)

	err := h.Login(context.Background(), "junk")
	assert.ErrorIs(t, err, ErrClientConstruction)
	assert.ErrorIs(t, err, adapter.ErrMalformedCookie)
}

func TestHandle_LoginAfterExit(t *testing.T) {
	_, factory, _, b := setup(t)
	h := b.Handle()
	defer h.Release()

	h.Stop()
	waitDone(t, b)

	factory.EXPECT().WithCookies("a=1").Return(mock.NewMockRemoteAPI(gomock.NewController(t)), nil)

	assert.ErrorIs(t, h.Login(context.Background(), "a=1"), ErrExited)
}

func TestHandle_Logout(t *testing.T) {
	ctrl, factory, _, b := setup(t)
	h := b.Handle()
	defer h.Release()

	anon := mock.NewMockRemoteAPI(ctrl)
	factory.EXPECT().Default().Return(anon, nil)
	anon.EXPECT().View(gomock.Any(), gomock.Any()).Return(models.Response[models.View]{}, nil)

	require.NoError(t, h.Logout(context.Background()))

	_, err := h.View(context.Background(), models.ViewKey{ID: 1})
	assert.NoError(t, err)
}

func TestHandle_Released(t *testing.T) {
	_, _, _, b := setup(t)

	h := b.Handle()
	h.Release()

	_, err := h.View(context.Background(), models.ViewKey{ID: 1})
	assert.ErrorIs(t, err, ErrExited)
	assert.ErrorIs(t, h.ClearSubmissions(context.Background(), nil), ErrExited)

	h.Stop()

	c := h.Clone()
	_, err = c.Others(context.Background())
	assert.ErrorIs(t, err, ErrExited)
	c.Release()

	select {
	case <-b.Done():
		t.Fatal("stop from a released handle reached the worker")
	case <-time.After(20 * time.Millisecond):
	}
}

func TestHandle_CallerCancelDoesNotStopWorker(t *testing.T) {
	_, _, api, b := setup(t)
	h := b.Handle()
	defer h.Release()

	entered := make(chan struct{})
	unblock := make(chan struct{})
	served := make(chan struct{})

	gomock.InOrder(
		api.EXPECT().View(gomock.Any(), models.ViewKey{ID: 1}).
			DoAndReturn(func(context.Context, models.ViewKey) (models.Response[models.View], error) {
				close(entered)
				<-unblock
				defer close(served)
				return models.Response[models.View]{}, nil
			}),
		api.EXPECT().View(gomock.Any(), models.ViewKey{ID: 2}).
			Return(models.Response[models.View]{Page: models.View{Title: "second"}}, nil),
	)

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() {
		_, err := h.View(ctx, models.ViewKey{ID: 1})
		errCh <- err
	}()

	<-entered
	cancel()
	assert.ErrorIs(t, <-errCh, context.Canceled)

	close(unblock)
	<-served

	got, err := h.View(context.Background(), models.ViewKey{ID: 2})
	require.NoError(t, err)
	assert.Equal(t, "second", got.Title)
}

func TestHandle_RequestIDInContext(t *testing.T) {
	_, _, api, b := setup(t)
	h := b.Handle()
	defer h.Release()

	var ids []string
	api.EXPECT().Others(gomock.Any()).
		DoAndReturn(func(ctx context.Context) (models.Response[models.Others], error) {
			id, ok := utils.GetRequestIDFromContext(ctx)
			assert.True(t, ok)
			ids = append(ids, id)
			return models.Response[models.Others]{}, nil
		}).
		Times(2)

	_, err := h.Others(context.Background())
	require.NoError(t, err)
	_, err = h.Others(context.Background())
	require.NoError(t, err)

	require.Len(t, ids, 2)
	assert.NotEqual(t, ids[0], ids[1])
}

func TestHandle_ConcurrentClones(t *testing.T) {
	const clones, perClone = 8, 25

	_, _, api, b := setup(t)

	api.EXPECT().Journal(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, key models.JournalKey) (models.Response[models.Journal], error) {
			return models.Response[models.Journal]{Page: models.Journal{Key: key, Title: fmt.Sprint(key.ID)}}, nil
		}).
		Times(clones * perClone)

	var wg sync.WaitGroup
	for c := 0; c < clones; c++ {
		h := b.Handle()
		wg.Add(1)
		go func(c int, h *Handle) {
			defer wg.Done()
			defer h.Release()

			for i := 0; i < perClone; i++ {
				id := uint64(c*1000 + i)
				got, err := h.Journal(context.Background(), models.JournalKey{ID: id})
				if assert.NoError(t, err) {
					assert.Equal(t, fmt.Sprint(id), got.Title)
				}
			}
		}(c, h)
	}
	wg.Wait()
}
