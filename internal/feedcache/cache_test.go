package feedcache

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"krux_server/internal/domain"
)

func TestCacheEmptyIsStale(t *testing.T) {
	c := New(time.Minute)

	_, ok := c.Get()
	assert.False(t, ok)
}

func TestCacheServesFreshPage(t *testing.T) {
	c := New(time.Minute)
	c.Set(domain.Page{Stories: []domain.Story{{ID: 1}}, HasMore: true})

	page, ok := c.Get()
	require.True(t, ok)
	assert.Len(t, page.Stories, 1)
	assert.True(t, page.HasMore)
}

func TestCacheExpires(t *testing.T) {
	c := New(10 * time.Millisecond)
	c.Set(domain.Page{Stories: []domain.Story{{ID: 1}}})

	assert.Eventually(t, func() bool {
		_, ok := c.Get()
		return !ok
	}, time.Second, 5*time.Millisecond)
}

type countingRefreshable struct {
	calls atomic.Int32
	err   error
}

func (c *countingRefreshable) Refresh(_ context.Context) error {
	c.calls.Add(1)
	return c.err
}

func TestRefresherRunsImmediatelyAndOnTick(t *testing.T) {
	target := &countingRefreshable{}
	r := NewRefresher(target, 20*time.Millisecond, slog.New(slog.NewTextHandler(io.Discard, nil)))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- r.Start(ctx) }()

	assert.Eventually(t, func() bool {
		return target.calls.Load() >= 2
	}, time.Second, 5*time.Millisecond)

	cancel()
	assert.ErrorIs(t, <-done, context.Canceled)
}

func TestRefresherKeepsGoingAfterFailure(t *testing.T) {
	target := &countingRefreshable{err: errors.New("store down")}
	r := NewRefresher(target, 10*time.Millisecond, slog.New(slog.NewTextHandler(io.Discard, nil)))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = r.Start(ctx) }()

	assert.Eventually(t, func() bool {
		return target.calls.Load() >= 3
	}, time.Second, 5*time.Millisecond)
}
