package config

import (
	"fmt"
	"net"
	"regexp"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/go-sql-driver/mysql"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

// Fixed provisioning parameters. The container name is reserved: the wizard
// always provisions into this container, so renaming it orphans the previous
// one.
const (
	ContainerName = "chatapp-mysql"
	MySQLImage    = "mysql:8.0"
	MySQLPort     = 3306
)

// Config holds the wizard defaults. Every value can be pre-set through the
// environment (or a .env file); the interactive prompts offer these as
// defaults rather than bypassing confirmation.
type Config struct {
	DBHost     string `env:"DB_HOST" envDefault:"localhost"`
	DBPort     string `env:"DB_PORT" envDefault:"3306"`
	DBUser     string `env:"DB_USER" envDefault:"root"`
	DBPassword string `env:"DB_PASSWORD"`
	DBName     string `env:"DB_NAME" envDefault:"chatapp"`

	// Readiness polling: constant delay between a bounded number of attempts.
	WaitRetries int           `env:"DB_WAIT_RETRIES" envDefault:"30"`
	WaitDelay   time.Duration `env:"DB_WAIT_DELAY" envDefault:"5s"`

	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
}

// Load creates a new configuration from environment variables
func Load() (*Config, error) {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Debug(".env file not found")
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg, nil
}

// Credentials returns the connection parameters currently configured, without
// going through the interactive prompts. The non-interactive tools use this.
func (c *Config) Credentials() Credentials {
	return Credentials{
		Host:     c.DBHost,
		Port:     c.DBPort,
		User:     c.DBUser,
		Password: c.DBPassword,
		Database: c.DBName,
	}
}

// Credentials are the connection parameters collected by the wizard.
type Credentials struct {
	Host     string
	Port     string
	User     string
	Password string
	Database string
}

// Addr returns the host:port pair for the server.
func (c Credentials) Addr() string {
	return net.JoinHostPort(c.Host, c.Port)
}

// ServerDSN returns a DSN for the server itself, with no database selected.
// The readiness poll and the CREATE DATABASE step use this one.
func (c Credentials) ServerDSN() string {
	return c.dsn("")
}

// DSN returns a DSN with the target database selected.
func (c Credentials) DSN() string {
	return c.dsn(c.Database)
}

func (c Credentials) dsn(dbName string) string {
	mc := mysql.NewConfig()
	mc.User = c.User
	mc.Passwd = c.Password
	mc.Net = "tcp"
	mc.Addr = c.Addr()
	mc.DBName = dbName
	return mc.FormatDSN()
}

var identifierPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// ValidIdentifier reports whether name is safe to interpolate into a
// CREATE DATABASE or USE statement. Database names cannot be bound as query
// parameters, so anything outside this pattern is rejected up front.
func ValidIdentifier(name string) bool {
	return identifierPattern.MatchString(name)
}
