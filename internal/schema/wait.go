package schema

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/chatapp-rt/backend/internal/config"
)

// connectFunc dials the server once and reports whether it accepted the
// connection. Injectable so the polling logic is testable without a server.
type connectFunc func(ctx context.Context, dsn string) error

// Waiter polls the server until it accepts connections. The delay between
// attempts is constant: failures here are expected while the container boots,
// so there is nothing to back off from.
type Waiter struct {
	Retries int
	Delay   time.Duration

	connect connectFunc
	sleep   func(ctx context.Context, d time.Duration) error
}

// NewWaiter creates a Waiter with the given bounds.
func NewWaiter(retries int, delay time.Duration) *Waiter {
	return &Waiter{
		Retries: retries,
		Delay:   delay,
		connect: pingServer,
		sleep:   sleepContext,
	}
}

// sleepContext sleeps for d unless the context ends first.
func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func pingServer(ctx context.Context, dsn string) error {
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return err
	}
	defer db.Close()
	return db.PingContext(ctx)
}

// Wait blocks until the server accepts a connection with the given
// credentials or the attempt budget is exhausted.
func (w *Waiter) Wait(ctx context.Context, creds config.Credentials) error {
	log.Info("Waiting for MySQL server to be ready...")

	for attempt := 1; attempt <= w.Retries; attempt++ {
		if err := w.connect(ctx, creds.ServerDSN()); err == nil {
			log.Infof("MySQL is ready (attempt %d)", attempt)
			return nil
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		log.Infof("Waiting... (%d/%d)", attempt, w.Retries)
		if attempt < w.Retries {
			if err := w.sleep(ctx, w.Delay); err != nil {
				return err
			}
		}
	}
	return fmt.Errorf("unable to connect to MySQL server after %d attempts", w.Retries)
}
