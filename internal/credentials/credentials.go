// Package credentials keeps the controller username and password in a local
// file.
//
// The file holds each value compressed and base64 encoded. This only stops
// casual plaintext exposure. It is NOT encryption and must not be treated
// as secure storage: anyone who can read the file can recover the password.
package credentials

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/paularlott/logger"
	"golang.org/x/term"

	"github.com/martinsuchenak/vedgeip/internal/log"
)

// Credentials is a username/password pair held in memory for one run
type Credentials struct {
	Username string
	Password string
}

// Empty reports whether no username was loaded
func (c Credentials) Empty() bool {
	return c.Username == "" && c.Password == ""
}

// PasswordReader reads a password without echoing it
type PasswordReader func() ([]byte, error)

// Store reads and writes the obscured credential file
type Store struct {
	path         string
	logger       logger.Logger
	in           io.Reader
	out          io.Writer
	readPassword PasswordReader
}

// Option configures a Store
type Option func(*Store)

// WithPrompt sets where prompts are read from and written to
func WithPrompt(in io.Reader, out io.Writer) Option {
	return func(s *Store) {
		s.in = in
		s.out = out
	}
}

// WithPasswordReader replaces the terminal password reader
func WithPasswordReader(fn PasswordReader) Option {
	return func(s *Store) {
		s.readPassword = fn
	}
}

// NewStore creates a store for the credential file at path
func NewStore(path string, logger logger.Logger, opts ...Option) *Store {
	s := &Store{
		path:   path,
		logger: log.OrNop(logger),
		in:     os.Stdin,
		out:    os.Stdout,
		readPassword: func() ([]byte, error) {
			return term.ReadPassword(int(os.Stdin.Fd()))
		},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Path returns the credential file path
func (s *Store) Path() string {
	return s.path
}

// Exists reports whether the credential file is present
func (s *Store) Exists() bool {
	_, err := os.Stat(s.path)
	return err == nil
}

// Prompt asks for a username and password and writes them to the file.
// Failures are logged and returned; a partial write leaves the file in an
// undefined state.
func (s *Store) Prompt() error {
	reader := bufio.NewReader(s.in)

	fmt.Fprint(s.out, "Enter your username: ")
	username, err := reader.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		s.logger.Error("Error reading username", "error", err)
		return fmt.Errorf("reading username: %w", err)
	}
	username = strings.TrimRight(username, "\r\n")

	fmt.Fprint(s.out, "Enter your password: ")
	password, err := s.readPassword()
	fmt.Fprintln(s.out)
	if err != nil {
		s.logger.Error("Error reading password", "error", err)
		return fmt.Errorf("reading password: %w", err)
	}

	if err := s.Save(Credentials{Username: username, Password: string(password)}); err != nil {
		return err
	}
	return nil
}

// Save writes creds to the file, one obscured value per line
func (s *Store) Save(creds Credentials) error {
	content := Encode(creds.Username) + "\n" + Encode(creds.Password) + "\n"
	if err := os.WriteFile(s.path, []byte(content), 0o600); err != nil {
		s.logger.Error("Error writing to file", "path", s.path, "error", err)
		return fmt.Errorf("writing credential file: %w", err)
	}
	s.logger.Info("Credentials stored", "path", s.path)
	return nil
}

// Load reads the credential file. Any failure is logged and yields empty
// credentials so the run carries on unauthenticated.
func (s *Store) Load() Credentials {
	creds, err := s.read()
	if err != nil {
		s.logger.Error("Error reading from file", "path", s.path, "error", err)
		return Credentials{}
	}
	return creds
}

func (s *Store) read() (Credentials, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return Credentials{}, err
	}

	lines := strings.Split(string(data), "\n")
	if len(lines) < 2 {
		return Credentials{}, fmt.Errorf("expected 2 lines, found %d", len(lines))
	}

	username, err := Decode(strings.TrimSpace(lines[0]))
	if err != nil {
		return Credentials{}, fmt.Errorf("username: %w", err)
	}
	password, err := Decode(strings.TrimSpace(lines[1]))
	if err != nil {
		return Credentials{}, fmt.Errorf("password: %w", err)
	}
	return Credentials{Username: username, Password: password}, nil
}
