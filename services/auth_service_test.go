package services

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSweepEveryPurgesImmediatelyAndOnTick(t *testing.T) {
	var calls int32
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan struct{})
	go func() {
		sweepEvery(ctx, 5*time.Millisecond, func() error {
			if atomic.AddInt32(&calls, 1) >= 3 {
				cancel()
			}
			return nil
		})
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("sweep did not stop after cancellation")
	}

	assert.GreaterOrEqual(t, atomic.LoadInt32(&calls), int32(3))
}

func TestSweepEveryKeepsGoingAfterPurgeError(t *testing.T) {
	var calls int32
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan struct{})
	go func() {
		sweepEvery(ctx, 5*time.Millisecond, func() error {
			if atomic.AddInt32(&calls, 1) >= 2 {
				cancel()
			}
			return errors.New("db unavailable")
		})
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("sweep stopped on purge error")
	}

	assert.GreaterOrEqual(t, atomic.LoadInt32(&calls), int32(2))
}
