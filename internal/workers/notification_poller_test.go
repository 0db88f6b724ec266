// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/labrat-client/internal/adapter"
	"github.com/MKhiriev/labrat-client/internal/bridge"
	"github.com/MKhiriev/labrat-client/internal/logger"
	"github.com/MKhiriev/labrat-client/internal/mock"
	"github.com/MKhiriev/labrat-client/models"
)

// collector is a Sink that remembers what it was given.
type collector struct {
	mu      sync.Mutex
	results []models.Others
	errs    []error
}

func (c *collector) sink(o models.Others, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.results = append(c.results, o)
	c.errs = append(c.errs, err)
}

func (c *collector) count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.results)
}

func TestNotificationPoller_PollsAndPublishes(t *testing.T) {
	ctrl := gomock.NewController(t)
	source := mock.NewMockOthersSource(ctrl)

	want := models.Others{Watches: []models.User{{Slug: "fox"}}}
	source.EXPECT().Others(gomock.Any()).Return(want, nil).MinTimes(3)
	source.EXPECT().Release().Times(1)

	c := &collector{}
	p := NewNotificationPoller(source, 10*time.Millisecond, c.sink, logger.Nop())

	p.Start(context.Background())
	require.Eventually(t, func() bool { return c.count() >= 3 }, time.Second, 5*time.Millisecond)
	p.Stop()

	c.mu.Lock()
	defer c.mu.Unlock()
	assert.Equal(t, want, c.results[0])
	assert.NoError(t, c.errs[0])
}

func TestNotificationPoller_StopHaltsPolling(t *testing.T) {
	ctrl := gomock.NewController(t)
	source := mock.NewMockOthersSource(ctrl)

	var calls atomic.Int64
	source.EXPECT().Others(gomock.Any()).
		DoAndReturn(func(context.Context) (models.Others, error) {
			calls.Add(1)
			return models.Others{}, nil
		}).
		AnyTimes()
	source.EXPECT().Release().Times(1)

	p := NewNotificationPoller(source, 10*time.Millisecond, nil, logger.Nop())
	p.Start(context.Background())
	time.Sleep(30 * time.Millisecond)
	p.Stop()

	afterStop := calls.Load()
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, afterStop, calls.Load(), "no polls after Stop")

	// Second Stop does not release again.
	assert.NotPanics(t, p.Stop)
}

func TestNotificationPoller_StopBeforeStart(t *testing.T) {
	ctrl := gomock.NewController(t)
	source := mock.NewMockOthersSource(ctrl)
	source.EXPECT().Release().Times(1)

	p := NewNotificationPoller(source, time.Minute, nil, logger.Nop())

	assert.NotPanics(t, p.Stop)
}

func TestNotificationPoller_ContextCancel(t *testing.T) {
	ctrl := gomock.NewController(t)
	source := mock.NewMockOthersSource(ctrl)
	source.EXPECT().Others(gomock.Any()).Return(models.Others{}, nil).AnyTimes()
	source.EXPECT().Release().Times(1)

	p := NewNotificationPoller(source, 5*time.Millisecond, nil, logger.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	p.Start(ctx)
	cancel()

	done := make(chan struct{})
	go func() {
		p.Stop()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Stop did not return after context cancel")
	}
}

func TestNotificationPoller_PublishesErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	source := mock.NewMockOthersSource(ctrl)

	source.EXPECT().Others(gomock.Any()).Return(models.Others{}, adapter.ErrUnauthorized).MinTimes(1)
	source.EXPECT().Release()

	c := &collector{}
	p := NewNotificationPoller(source, 5*time.Millisecond, c.sink, logger.Nop())
	p.Start(context.Background())
	require.Eventually(t, func() bool { return c.count() >= 1 }, time.Second, time.Millisecond)
	p.Stop()

	c.mu.Lock()
	defer c.mu.Unlock()
	assert.True(t, errors.Is(c.errs[0], adapter.ErrUnauthorized))
}

func TestNotificationPoller_EndsWhenBridgeExits(t *testing.T) {
	ctrl := gomock.NewController(t)
	factory := mock.NewMockFactory(ctrl)
	api := mock.NewMockRemoteAPI(ctrl)
	factory.EXPECT().Default().Return(api, nil)
	api.EXPECT().Others(gomock.Any()).Return(models.Response[models.Others]{}, nil).AnyTimes()

	b, err := bridge.Spawn(factory)
	require.NoError(t, err)

	c := &collector{}
	p := NewNotificationPoller(b.Handle(), 5*time.Millisecond, c.sink, logger.Nop())
	p.Start(context.Background())
	require.Eventually(t, func() bool { return c.count() >= 1 }, time.Second, time.Millisecond)

	b.Shutdown()

	// The next tick sees ErrExited and the goroutine ends on its own.
	seen := c.count()
	time.Sleep(30 * time.Millisecond)
	assert.LessOrEqual(t, c.count(), seen+1)

	p.Stop()
}
