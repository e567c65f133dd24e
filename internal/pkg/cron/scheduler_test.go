package cron

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRunOnce(t *testing.T) {
	t.Parallel()

	s := NewScheduler()

	var first, second atomic.Int32
	s.AddJob("first", time.Hour, func(ctx context.Context) error {
		first.Add(1)
		return nil
	})
	s.AddJob("second", time.Hour, func(ctx context.Context) error {
		second.Add(1)
		return errors.New("boom")
	})

	s.RunOnce(context.Background())

	assert.Equal(t, int32(1), first.Load())
	// A failing job does not stop the remaining ones
	assert.Equal(t, int32(1), second.Load())

	s.RunOnce(context.Background())
	assert.Equal(t, int32(2), first.Load())
}

func TestStartRunsJobImmediately(t *testing.T) {
	t.Parallel()

	s := NewScheduler()

	ran := make(chan struct{}, 1)
	s.AddJob("immediate", time.Hour, func(ctx context.Context) error {
		select {
		case ran <- struct{}{}:
		default:
		}
		return nil
	})

	s.Start()
	defer s.Stop()

	select {
	case <-ran:
	case <-time.After(2 * time.Second):
		t.Fatal("job did not run on start")
	}
}

func TestStopWaitsForJobs(t *testing.T) {
	t.Parallel()

	s := NewScheduler()
	s.AddJob("noop", time.Hour, func(ctx context.Context) error {
		return nil
	})
	s.Start()

	done := make(chan struct{})
	go func() {
		s.Stop()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Stop did not return")
	}
}
