// Package prompt implements the interactive part of the setup wizard.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/chatapp-rt/backend/internal/config"
)

// ErrDeclined is returned by Collect when the user rejects the confirmation
// prompt. It is a clean abort, not a failure.
var ErrDeclined = errors.New("setup cancelled by user")

const divider = "============================================================"

// Prompter reads wizard input from a terminal or any reader.
type Prompter struct {
	in           *bufio.Reader
	out          io.Writer
	readPassword func() (string, error)
}

// New creates a Prompter on stdin/stdout with masked password input when
// stdin is a terminal.
func New() *Prompter {
	p := NewWithIO(os.Stdin, os.Stdout)
	p.readPassword = p.readPasswordMasked
	return p
}

// NewWithIO creates a Prompter on arbitrary streams. Password input is read
// as a plain line, which is what tests and piped input need.
func NewWithIO(in io.Reader, out io.Writer) *Prompter {
	p := &Prompter{in: bufio.NewReader(in), out: out}
	p.readPassword = p.readLine
	return p
}

func (p *Prompter) readLine() (string, error) {
	text, err := p.in.ReadString('\n')
	if err != nil {
		// A final line without a trailing newline still counts. A bare EOF
		// means input is exhausted: report it, or a caller that re-prompts
		// would loop forever.
		if !errors.Is(err, io.EOF) || text == "" {
			return "", err
		}
	}
	return strings.TrimSpace(text), nil
}

func (p *Prompter) readPasswordMasked() (string, error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return p.readLine()
	}
	b, err := term.ReadPassword(fd)
	fmt.Fprintln(p.out)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Line prompts for a single value, returning def when the input is empty.
func (p *Prompter) Line(label, def string) (string, error) {
	if def != "" {
		fmt.Fprintf(p.out, "%s (default: %s): ", label, def)
	} else {
		fmt.Fprintf(p.out, "%s: ", label)
	}

	text, err := p.readLine()
	if err != nil {
		return "", err
	}
	if text == "" {
		return def, nil
	}
	return text, nil
}

// Password prompts for a password without echoing it back.
func (p *Prompter) Password(label string) (string, error) {
	fmt.Fprintf(p.out, "%s: ", label)
	return p.readPassword()
}

// Confirm asks a yes/no question. Only "yes" and "y" count as affirmative;
// anything else, including an empty line, is a decline.
func (p *Prompter) Confirm(label string) (bool, error) {
	answer, err := p.Line(label+" (yes/no)", "")
	if err != nil {
		return false, err
	}
	switch strings.ToLower(answer) {
	case "yes", "y":
		return true, nil
	}
	return false, nil
}

// Collect walks through the credential prompts, shows a masked summary and
// asks for confirmation. Defaults come from cfg. Returns ErrDeclined when the
// user does not confirm; no side effects have happened at that point.
func (p *Prompter) Collect(cfg *config.Config) (*config.Credentials, error) {
	fmt.Fprintln(p.out, divider)
	fmt.Fprintln(p.out, "STEP 1: MySQL Configuration")
	fmt.Fprintln(p.out, divider)
	fmt.Fprintln(p.out)

	host, err := p.Line("MySQL Host", cfg.DBHost)
	if err != nil {
		return nil, err
	}
	port, err := p.Line("MySQL Port", cfg.DBPort)
	if err != nil {
		return nil, err
	}

	fmt.Fprintln(p.out, "\nEnter MySQL credentials (root user for the Docker container):")
	user, err := p.Line("MySQL Username", cfg.DBUser)
	if err != nil {
		return nil, err
	}

	password := cfg.DBPassword
	for password == "" {
		password, err = p.Password("MySQL Password (used to secure the MySQL container)")
		if err != nil {
			return nil, err
		}
		if password == "" {
			fmt.Fprintln(p.out, "Password must not be empty.")
		}
	}

	dbName, err := p.Line("Database Name", cfg.DBName)
	if err != nil {
		return nil, err
	}
	if !config.ValidIdentifier(dbName) {
		return nil, fmt.Errorf("invalid database name %q: letters, digits and underscores only", dbName)
	}

	fmt.Fprintln(p.out)
	fmt.Fprintln(p.out, divider)
	fmt.Fprintln(p.out, "CONFIGURATION SUMMARY")
	fmt.Fprintln(p.out, divider)
	fmt.Fprintf(p.out, "MySQL Host:     %s\n", host)
	fmt.Fprintf(p.out, "MySQL Port:     %s\n", port)
	fmt.Fprintf(p.out, "MySQL User:     %s\n", user)
	fmt.Fprintf(p.out, "Password:       %s\n", strings.Repeat("*", len(password)))
	fmt.Fprintf(p.out, "Database Name:  %s\n", dbName)
	fmt.Fprintln(p.out, divider)
	fmt.Fprintln(p.out)

	ok, err := p.Confirm("Proceed with these settings?")
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrDeclined
	}

	return &config.Credentials{
		Host:     host,
		Port:     port,
		User:     user,
		Password: password,
		Database: dbName,
	}, nil
}
