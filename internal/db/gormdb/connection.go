package gormdb

import (
	"errors"
	"fmt"
	"strings"

	"github.com/oggyb/modelkit/internal/db"
	"github.com/oggyb/modelkit/internal/dburl"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var (
	// ErrInvalidURL is returned for strings without a dialect scheme.
	ErrInvalidURL = errors.New("invalid database url")
	// ErrUnsupportedDialect is returned for dialects without a GORM driver here.
	ErrUnsupportedDialect = errors.New("unsupported database dialect")
)

type GormDB struct {
	conn *gorm.DB
}

type options struct {
	log     logger.Interface
	sslMode string
}

// Option configures New.
type Option func(*options)

// WithLogger routes GORM's logging through log. Without it GORM keeps its
// default logger.
func WithLogger(log logger.Interface) Option {
	return func(o *options) { o.log = log }
}

// WithSSLMode adds sslmode=mode to the connection URL unless the URL
// already sets one. Empty mode is a no-op.
func WithSSLMode(mode string) Option {
	return func(o *options) { o.sslMode = mode }
}

// New opens a GORM connection for a dialect[+driver]:// database URL.
func New(url string, opts ...Option) (*GormDB, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	dialector, err := dialectorFor(url, o.sslMode)
	if err != nil {
		return nil, err
	}

	cfg := &gorm.Config{
		PrepareStmt:            true,
		SkipDefaultTransaction: true,
	}
	if o.log != nil {
		cfg.Logger = o.log
	}

	conn, err := gorm.Open(dialector, cfg)
	if err != nil {
		return nil, err
	}
	return &GormDB{conn: conn}, nil
}

// dialectorFor picks the GORM dialector for url. The driver part of the
// scheme names a client library and is dropped; GORM brings its own.
func dialectorFor(url, sslMode string) (gorm.Dialector, error) {
	dialect, _, ok := dburl.SplitScheme(url)
	if !ok {
		return nil, ErrInvalidURL
	}

	switch dialect {
	case "postgres", "postgresql":
		_, rest, _ := strings.Cut(url, "://")
		return postgres.Open(withSSLMode("postgres://"+rest, sslMode)), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedDialect, dialect)
	}
}

func withSSLMode(dsn, mode string) string {
	if mode == "" {
		return dsn
	}
	_, query, hasQuery := strings.Cut(dsn, "?")
	if !hasQuery {
		return dsn + "?sslmode=" + mode
	}
	for _, kv := range strings.Split(query, "&") {
		if strings.HasPrefix(kv, "sslmode=") {
			return dsn
		}
	}
	return dsn + "&sslmode=" + mode
}

func (g *GormDB) Conn() any {
	return g.conn
}

// verify it satisfies db.DB
var _ db.DB = (*GormDB)(nil)
