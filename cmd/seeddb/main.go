// Command seeddb creates the initial admin account in a database previously
// provisioned by the setup wizard.
package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"

	log "github.com/sirupsen/logrus"

	_ "github.com/go-sql-driver/mysql" // MySQL driver

	"github.com/chatapp-rt/backend/internal/config"
	"github.com/chatapp-rt/backend/internal/seeds"
)

func main() {
	// Parse command line flags
	username := flag.String("username", "admin", "Admin username")
	email := flag.String("email", "admin@chatapp.local", "Admin email")
	password := flag.String("password", "", "Admin password (required)")
	flag.Parse()

	if *password == "" {
		log.Fatal("-password is required")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to initialize configuration: %v", err)
	}

	creds := cfg.Credentials()
	db, err := sql.Open("mysql", creds.DSN())
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatalf("Failed to ping database: %v", err)
	}

	user, err := seeds.EnsureAdminUser(context.Background(), db, *username, *email, *password)
	if err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}

	fmt.Printf("Admin user ready: %s (id %d)\n", user.Username, user.ID)
}
