package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"

	"github.com/chatapp-rt/backend/internal/config"
	"github.com/chatapp-rt/backend/internal/docker"
	"github.com/chatapp-rt/backend/internal/envfile"
	"github.com/chatapp-rt/backend/internal/prompt"
	"github.com/chatapp-rt/backend/internal/schema"
)

const banner = `
============================================================
  REAL-TIME CHAT APPLICATION - DATABASE SETUP WIZARD
============================================================
`

func main() {
	// Parse command line flags
	writeEnv := flag.Bool("write-env", false, "Write the resulting DB_* values to the project .env file")
	flag.Parse()

	fmt.Print(banner)

	ctx := context.Background()

	// Docker is a hard precondition: abort before prompting for anything.
	cli := docker.New()
	if err := cli.Preflight(ctx); err != nil {
		log.Fatalf("Preflight failed: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to initialize configuration: %v", err)
	}
	if level, err := log.ParseLevel(cfg.LogLevel); err == nil {
		log.SetLevel(level)
	}

	creds, err := prompt.New().Collect(cfg)
	if errors.Is(err, prompt.ErrDeclined) {
		fmt.Println("Setup cancelled by user.")
		return
	}
	if err != nil {
		log.Fatalf("Failed to read configuration: %v", err)
	}

	if err := cli.Ensure(ctx, docker.RunOptions{
		Name:          config.ContainerName,
		Image:         config.MySQLImage,
		RootPassword:  creds.Password,
		Database:      creds.Database,
		HostPort:      creds.Port,
		ContainerPort: config.MySQLPort,
	}); err != nil {
		log.Fatalf("Container provisioning failed: %v", err)
	}

	waiter := schema.NewWaiter(cfg.WaitRetries, cfg.WaitDelay)
	if err := waiter.Wait(ctx, *creds); err != nil {
		log.Fatalf("Readiness wait failed: %v", err)
	}

	if err := schema.Apply(ctx, *creds); err != nil {
		log.Errorf("Schema setup failed: %v", err)
		os.Exit(1)
	}

	fmt.Println("\nDATABASE SETUP COMPLETED SUCCESSFULLY!")
	fmt.Println("\nAdd the following to your backend .env file:")
	fmt.Printf("DB_HOST=%s\n", creds.Host)
	fmt.Printf("DB_PORT=%s\n", creds.Port)
	fmt.Printf("DB_USER=%s\n", creds.User)
	fmt.Printf("DB_PASSWORD=%s\n", creds.Password)
	fmt.Printf("DB_NAME=%s\n", creds.Database)

	if *writeEnv {
		path, err := envfile.Write(*creds)
		if err != nil {
			log.Fatalf("Failed to update env file: %v", err)
		}
		fmt.Printf("\nSaved to %s\n", path)
	}
}
