package app_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"workdesk/internal/workspace/app"
)

func TestAutosaver_Trigger(t *testing.T) {
	ctx := context.Background()

	t.Run("runs the save once", func(t *testing.T) {
		var calls atomic.Int32
		saver := app.NewAutosaver(time.Hour, func(_ context.Context) error {
			calls.Add(1)
			return nil
		})

		assert.True(t, saver.Trigger(ctx))
		assert.Equal(t, int32(1), calls.Load())
	})

	t.Run("skips while a save is in flight", func(t *testing.T) {
		started := make(chan struct{})
		release := make(chan struct{})
		saver := app.NewAutosaver(time.Hour, func(_ context.Context) error {
			close(started)
			<-release
			return nil
		})

		go saver.Trigger(ctx)
		<-started

		assert.False(t, saver.Trigger(ctx), "overlapping trigger must be skipped")

		close(release)
	})

	t.Run("save errors do not break the loop", func(t *testing.T) {
		saver := app.NewAutosaver(time.Hour, func(_ context.Context) error {
			return errors.New("disk full")
		})

		assert.True(t, saver.Trigger(ctx))
		assert.True(t, saver.Trigger(ctx))
	})
}

func TestAutosaver_Run(t *testing.T) {
	t.Run("ticks until stopped", func(t *testing.T) {
		var calls atomic.Int32
		saver := app.NewAutosaver(5*time.Millisecond, func(_ context.Context) error {
			calls.Add(1)
			return nil
		})

		go saver.Run(context.Background())

		require.Eventually(t, func() bool {
			return calls.Load() >= 2
		}, time.Second, time.Millisecond)

		saver.Stop()
		after := calls.Load()
		time.Sleep(20 * time.Millisecond)
		assert.Equal(t, after, calls.Load(), "no ticks after stop")
	})

	t.Run("reset shortens the interval", func(t *testing.T) {
		var calls atomic.Int32
		saver := app.NewAutosaver(time.Hour, func(_ context.Context) error {
			calls.Add(1)
			return nil
		})

		go saver.Run(context.Background())
		defer saver.Stop()

		saver.Reset(5 * time.Millisecond)

		require.Eventually(t, func() bool {
			return calls.Load() >= 1
		}, time.Second, time.Millisecond)
	})

	t.Run("context cancellation stops the loop", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		saver := app.NewAutosaver(5*time.Millisecond, func(_ context.Context) error {
			return nil
		})

		done := make(chan struct{})
		go func() {
			saver.Run(ctx)
			close(done)
		}()

		cancel()

		select {
		case <-done:
		case <-time.After(time.Second):
			t.Fatal("autosave loop did not stop on context cancellation")
		}
	})
}
