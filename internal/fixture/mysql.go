// Package fixture provides suite fixtures backed by external resources.
package fixture

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"strings"
	"unicode"

	"github.com/go-sql-driver/mysql"
)

// Database is a scratch MySQL database created by Setup and dropped by
// Teardown. Setup and Teardown match the fixture signature, so failures are
// kept in Err for the test body to assert on.
type Database struct {
	settings Settings
	name     string
	server   *sql.DB
	conn     *sql.DB
	err      error
}

// NewDatabase creates a Database for suite. The process id is the worker
// part of the name, so isolated children never share a database.
func NewDatabase(settings Settings, suite string) *Database {
	return &Database{
		settings: settings,
		name:     DatabaseName(settings.Prefix, suite, os.Getpid()),
	}
}

// DatabaseName returns "<prefix>_<suite>_<worker>" reduced to characters
// MySQL accepts unquoted.
func DatabaseName(prefix, suite string, worker int) string {
	clean := strings.Map(func(r rune) rune {
		if r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)) {
			return unicode.ToLower(r)
		}
		return '_'
	}, suite)
	return fmt.Sprintf("%s_%s_%d", prefix, clean, worker)
}

// Name returns the database name.
func (d *Database) Name() string {
	return d.name
}

// Conn returns the connection to the scratch database, or nil when Setup
// failed.
func (d *Database) Conn() *sql.DB {
	return d.conn
}

// Err returns the error of the last Setup or Teardown.
func (d *Database) Err() error {
	return d.err
}

// Setup creates the database and connects to it.
func (d *Database) Setup() {
	d.err = d.setup()
}

// Teardown drops the database and closes every connection.
func (d *Database) Teardown() {
	d.err = d.teardown()
}

func (d *Database) setup() error {
	if !isValidDatabaseName(d.name) {
		return fmt.Errorf("invalid database name: %s", d.name)
	}

	server, err := sql.Open("mysql", d.settings.ServerDSN())
	if err != nil {
		return fmt.Errorf("failed to connect to database server: %w", err)
	}
	if err := server.Ping(); err != nil {
		server.Close()
		return fmt.Errorf("failed to ping database server: %w", err)
	}
	d.server = server

	if _, err := server.Exec(fmt.Sprintf("CREATE DATABASE IF NOT EXISTS `%s`", d.name)); err != nil {
		return fmt.Errorf("failed to create database %s: %w", d.name, err)
	}

	conn, err := sql.Open("mysql", d.settings.DSN(d.name))
	if err != nil {
		return fmt.Errorf("failed to open database %s: %w", d.name, err)
	}
	d.conn = conn
	return nil
}

func (d *Database) teardown() error {
	var errs []error
	if d.conn != nil {
		if err := d.conn.Close(); err != nil {
			errs = append(errs, err)
		}
		d.conn = nil
	}
	if d.server != nil {
		if _, err := d.server.Exec(fmt.Sprintf("DROP DATABASE IF EXISTS `%s`", d.name)); err != nil {
			var mysqlErr *mysql.MySQLError
			if errors.As(err, &mysqlErr) {
				errs = append(errs, fmt.Errorf("drop %s: mysql error %d: %s", d.name, mysqlErr.Number, mysqlErr.Message))
			} else {
				errs = append(errs, fmt.Errorf("drop %s: %w", d.name, err))
			}
		}
		if err := d.server.Close(); err != nil {
			errs = append(errs, err)
		}
		d.server = nil
	}
	return errors.Join(errs...)
}

// isValidDatabaseName accepts 1-64 characters of letters, digits and
// underscores.
func isValidDatabaseName(name string) bool {
	if len(name) == 0 || len(name) > 64 {
		return false
	}
	for _, r := range name {
		if r != '_' && !(r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r))) {
			return false
		}
	}
	return true
}
