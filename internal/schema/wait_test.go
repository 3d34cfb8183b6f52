package schema

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/chatapp-rt/backend/internal/config"
)

var testCreds = config.Credentials{
	Host: "localhost", Port: "3306", User: "root", Password: "secret", Database: "chatapp",
}

// newTestWaiter fails the first failures attempts, then succeeds, recording
// attempt and sleep counts.
func newTestWaiter(retries, failures int, attempts, sleeps *int) *Waiter {
	return &Waiter{
		Retries: retries,
		Delay:   5 * time.Second,
		connect: func(ctx context.Context, dsn string) error {
			*attempts++
			if *attempts <= failures {
				return errors.New("connection refused")
			}
			return nil
		},
		sleep: func(ctx context.Context, d time.Duration) error {
			*sleeps++
			return nil
		},
	}
}

func TestWaitSucceedsImmediately(t *testing.T) {
	var attempts, sleeps int
	w := newTestWaiter(30, 0, &attempts, &sleeps)

	err := w.Wait(context.Background(), testCreds)
	assert.NoError(t, err)
	assert.Equal(t, 1, attempts)
	assert.Equal(t, 0, sleeps)
}

func TestWaitSucceedsAfterRetries(t *testing.T) {
	var attempts, sleeps int
	w := newTestWaiter(30, 2, &attempts, &sleeps)

	err := w.Wait(context.Background(), testCreds)
	assert.NoError(t, err)
	assert.Equal(t, 3, attempts)
	assert.Equal(t, 2, sleeps)
}

func TestWaitExhaustsAttempts(t *testing.T) {
	var attempts, sleeps int
	w := newTestWaiter(5, 100, &attempts, &sleeps)

	err := w.Wait(context.Background(), testCreds)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "after 5 attempts")
	assert.Equal(t, 5, attempts)
	// No sleep after the final attempt.
	assert.Equal(t, 4, sleeps)
}

func TestWaitStopsOnCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var attempts, sleeps int
	w := newTestWaiter(30, 100, &attempts, &sleeps)

	err := w.Wait(ctx, testCreds)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, attempts)
	assert.Equal(t, 0, sleeps)
}

func TestWaitCancelledDuringDelay(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	var attempts int
	w := &Waiter{
		Retries: 30,
		Delay:   time.Minute,
		connect: func(ctx context.Context, dsn string) error {
			attempts++
			return errors.New("connection refused")
		},
		sleep: sleepContext,
	}

	start := time.Now()
	err := w.Wait(ctx, testCreds)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Equal(t, 1, attempts)
	// The minute-long delay must be cut short by the context.
	assert.Less(t, time.Since(start), 10*time.Second)
}

func TestApplyRejectsInvalidDatabaseName(t *testing.T) {
	creds := testCreds
	creds.Database = "chatapp;DROP DATABASE chatapp"

	err := Apply(context.Background(), creds)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid database name")
}
