// Package schema waits for the MySQL server and creates the chat database.
package schema

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/go-sql-driver/mysql" // MySQL driver
	log "github.com/sirupsen/logrus"

	"github.com/chatapp-rt/backend/internal/config"
)

// Apply creates the target database if missing, switches to it on a single
// pinned connection and applies every table statement inside one transaction.
// Any failure rolls the transaction back; the connection is closed on every
// path.
func Apply(ctx context.Context, creds config.Credentials) error {
	if !config.ValidIdentifier(creds.Database) {
		return fmt.Errorf("invalid database name %q", creds.Database)
	}

	db, err := sql.Open("mysql", creds.ServerDSN())
	if err != nil {
		return fmt.Errorf("failed to connect to MySQL server: %w", err)
	}
	defer db.Close()

	// USE only applies to the connection it runs on, so pin one instead of
	// going through the pool.
	conn, err := db.Conn(ctx)
	if err != nil {
		return fmt.Errorf("failed to connect to MySQL server: %w", err)
	}
	defer conn.Close()

	log.Info("Connected to MySQL server")

	if _, err := conn.ExecContext(ctx, "CREATE DATABASE IF NOT EXISTS "+creds.Database); err != nil {
		return fmt.Errorf("failed to create database %s: %w", creds.Database, err)
	}
	if _, err := conn.ExecContext(ctx, "USE "+creds.Database); err != nil {
		return fmt.Errorf("failed to select database %s: %w", creds.Database, err)
	}
	log.Infof("Database %s created/selected", creds.Database)

	tx, err := conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	for _, stmt := range Statements {
		if _, err := tx.ExecContext(ctx, stmt.SQL); err != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				log.Warnf("Rollback failed: %v", rbErr)
			}
			return fmt.Errorf("failed to create %s table: %w", stmt.Name, err)
		}
		log.Infof("%s table created", stmt.Name)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit schema: %w", err)
	}
	return nil
}
