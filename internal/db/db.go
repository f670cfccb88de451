// internal/db/db.go

// Package db owns the shared database handle. Nothing is dialed at startup:
// the first caller that needs the database triggers the connection attempt,
// and a failed attempt is retried by whichever caller comes next.
package db

import (
	"context"
	"crypto/tls"
	"database/sql"
	"fmt"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/rs/zerolog"

	"github.com/leadbridge/whatsapp-leads-api/internal/config"
)

const (
	connectTimeout = 5 * time.Second
	healthTimeout  = 2 * time.Second
)

// Manager hands out a single pooled *sql.DB. The handle is memoized only
// after a successful ping, so callers never reuse a half-opened pool, and
// the mutex guarantees at most one establishment attempt is in flight.
type Manager struct {
	cfg    *config.Config
	logger zerolog.Logger

	mu sync.Mutex
	db *sql.DB
}

func NewManager(cfg *config.Config, logger zerolog.Logger) *Manager {
	return &Manager{cfg: cfg, logger: logger}
}

// Get returns the shared handle, establishing it on first use.
func (m *Manager) Get(ctx context.Context) (*sql.DB, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.db != nil {
		return m.db, nil
	}

	if missing := m.cfg.Missing(); len(missing) > 0 {
		return nil, fmt.Errorf("missing configuration: %s", strings.Join(missing, ", "))
	}

	connCfg, err := m.connConfig()
	if err != nil {
		return nil, err
	}

	db := stdlib.OpenDB(*connCfg)
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(30 * time.Minute)

	pingCtx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		db.Close()
		return nil, fmt.Errorf("connect to %s: %w", m.cfg.DBHost, err)
	}

	m.logger.Info().
		Str("host", m.cfg.DBHost).
		Str("database", m.cfg.DBName).
		Msg("✅ connected to database")

	m.db = db
	return db, nil
}

// Health runs a trivial round-trip query against the shared handle.
func (m *Manager) Health(ctx context.Context) error {
	db, err := m.Get(ctx)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, healthTimeout)
	defer cancel()

	var one int
	return db.QueryRowContext(ctx, "SELECT 1").Scan(&one)
}

func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.db != nil {
		m.db.Close()
		m.db = nil
	}
}

// connConfig builds the pgx configuration from the environment settings.
// The DSN itself always says sslmode=disable; TLS is switched on by setting
// TLSConfig explicitly, which keeps the min/max version knobs in one place.
func (m *Manager) connConfig() (*pgx.ConnConfig, error) {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(m.cfg.DBUser, m.cfg.DBPassword),
		Host:     m.cfg.DBHost + ":" + m.cfg.DBPort,
		Path:     "/" + m.cfg.DBName,
		RawQuery: "sslmode=disable",
	}

	connCfg, err := pgx.ParseConfig(u.String())
	if err != nil {
		return nil, fmt.Errorf("parse connection config: %w", err)
	}

	tlsCfg, err := m.tlsConfig()
	if err != nil {
		return nil, err
	}
	connCfg.TLSConfig = tlsCfg

	return connCfg, nil
}

func (m *Manager) tlsConfig() (*tls.Config, error) {
	if !m.cfg.DBSSL {
		return nil, nil
	}

	tc := &tls.Config{
		ServerName:         m.cfg.DBHost,
		InsecureSkipVerify: m.cfg.DBSSLSkipVerify,
	}
	if v := m.cfg.DBTLSMinVersion; v != "" {
		ver, err := tlsVersion(v)
		if err != nil {
			return nil, err
		}
		tc.MinVersion = ver
	}
	if v := m.cfg.DBTLSMaxVersion; v != "" {
		ver, err := tlsVersion(v)
		if err != nil {
			return nil, err
		}
		tc.MaxVersion = ver
	}
	return tc, nil
}

func tlsVersion(s string) (uint16, error) {
	switch s {
	case "1.0":
		return tls.VersionTLS10, nil
	case "1.1":
		return tls.VersionTLS11, nil
	case "1.2":
		return tls.VersionTLS12, nil
	case "1.3":
		return tls.VersionTLS13, nil
	}
	return 0, fmt.Errorf("unsupported TLS version %q", s)
}
