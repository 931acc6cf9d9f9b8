package postgres

//nolint:revive
import (
	"context"
	"fmt"
	"hotie/config"
	"net"
	"net/url"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

const (
	postgresMaxIdleConnection = 10
	postgresMaxOpenConnection = 10
)

type Connection struct {
	Read  *sqlx.DB
	Write *sqlx.DB
}

// Transactor runs a unit of work inside a single write transaction.
type Transactor interface {
	WithTx(ctx context.Context, fn func(tx *sqlx.Tx) error) error
}

func New(config *config.Config) *Connection {
	return &Connection{
		Read:  connect(readEndpoint(config), config.DB.Postgres.MaxRetry, config.DB.Postgres.RetryWaitTime),
		Write: connect(writeEndpoint(config), config.DB.Postgres.MaxRetry, config.DB.Postgres.RetryWaitTime),
	}
}

// NewTransactor exposes the write connection as a Transactor.
func NewTransactor(conn *Connection) Transactor {
	return conn
}

// WithTx commits when fn returns nil and rolls back otherwise, including when
// ctx is cancelled before the commit.
func (c *Connection) WithTx(ctx context.Context, fn func(tx *sqlx.Tx) error) error {
	tx, err := c.Write.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer tx.Rollback() //nolint:errcheck

	if err := fn(tx); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// endpoint is one side of the read/write split.
type endpoint struct {
	role     string
	host     string
	port     string
	username string
	password string
	dbName   string
	sslMode  string
}

func (e endpoint) descriptor() string {
	dsn := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(e.username, e.password),
		Host:     net.JoinHostPort(e.host, e.port),
		Path:     e.dbName,
		RawQuery: url.Values{"sslmode": {e.sslMode}}.Encode(),
	}

	return dsn.String()
}

func writeEndpoint(cfg *config.Config) endpoint {
	write := cfg.DB.Postgres.Write

	return endpoint{
		role:     "write",
		host:     write.Host,
		port:     write.Port,
		username: write.Username,
		password: write.Password,
		dbName:   cfg.DB.Postgres.Prefix + write.Name,
		sslMode:  write.SSLMode,
	}
}

func readEndpoint(cfg *config.Config) endpoint {
	read := cfg.DB.Postgres.Read

	return endpoint{
		role:     "read",
		host:     read.Host,
		port:     read.Port,
		username: read.Username,
		password: read.Password,
		dbName:   cfg.DB.Postgres.Prefix + read.Name,
		sslMode:  read.SSLMode,
	}
}

// connect retries until the database accepts connections and gives up the
// process after MaxRetry attempts.
func connect(e endpoint, maxRetry, waitTime int) *sqlx.DB {
	logger := log.With().
		Str("name", e.role).
		Str("host", e.host).
		Str("port", e.port).
		Str("dbName", e.dbName).
		Logger()

	for retry := range maxRetry {
		sqlDB, err := sqlx.Connect("postgres", e.descriptor())
		if err == nil {
			logger.Info().Msg("Connected to database")

			sqlDB.SetMaxIdleConns(postgresMaxIdleConnection)
			sqlDB.SetMaxOpenConns(postgresMaxOpenConnection)

			return sqlDB
		}

		logger.Error().Err(err).Int("attempt", retry+1).Msg("Failed connecting to database, retrying")

		time.Sleep(time.Duration(waitTime) * time.Second)
	}

	logger.Fatal().Msg("Giving up connecting to database")

	return nil
}
