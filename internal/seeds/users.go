// Package seeds creates initial records in a freshly provisioned database.
package seeds

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	log "github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"github.com/chatapp-rt/backend/internal/models"
)

// EnsureAdminUser creates the initial admin account unless a user with the
// given username already exists, and returns the account either way.
func EnsureAdminUser(ctx context.Context, db *sql.DB, username, email, password string) (*models.User, error) {
	var user models.User
	err := db.QueryRowContext(ctx,
		"SELECT user_id, username, email FROM Users WHERE username = ?", username).
		Scan(&user.ID, &user.Username, &user.Email)
	if err == nil {
		log.Infof("Admin user already exists: %s", user.Username)
		return &user, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("failed to look up admin user: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash admin password: %w", err)
	}

	res, err := db.ExecContext(ctx,
		"INSERT INTO Users (username, email, password_hash) VALUES (?, ?, ?)",
		username, email, string(hash))
	if err != nil {
		return nil, fmt.Errorf("failed to create admin user: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to read admin user id: %w", err)
	}

	log.Infof("Admin user created: %s", username)
	return &models.User{ID: int(id), Username: username, Email: email}, nil
}
