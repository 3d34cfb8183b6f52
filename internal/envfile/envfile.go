// Package envfile persists the resolved connection parameters to the
// project's .env file so the backend picks them up without copy-paste.
package envfile

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"

	"github.com/chatapp-rt/backend/internal/config"
)

// FindProjectRoot walks up from the working directory to the nearest
// directory containing go.mod, which marks the backend checkout.
func FindProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			// Hit the filesystem root without finding go.mod.
			return "", os.ErrNotExist
		}
		dir = parent
	}
}

// Write merges the DB_* keys into the .env file at the project root, keeping
// any unrelated keys already there. When no project root is found the file is
// written to the working directory. Returns the path written.
func Write(creds config.Credentials) (string, error) {
	root, err := FindProjectRoot()
	if err != nil {
		root = "."
	}
	path := filepath.Join(root, ".env")

	envMap, err := godotenv.Read(path)
	if err != nil {
		envMap = map[string]string{}
	}
	envMap["DB_HOST"] = creds.Host
	envMap["DB_PORT"] = creds.Port
	envMap["DB_USER"] = creds.User
	envMap["DB_PASSWORD"] = creds.Password
	envMap["DB_NAME"] = creds.Database

	if err := godotenv.Write(envMap, path); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", path, err)
	}
	return path, nil
}
