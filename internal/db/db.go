package db

import (
	"fmt"
	"net/url"
	"time"

	"github.com/vibe-gaming/clan-api/internal/config"

	"github.com/go-sql-driver/mysql"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
)

const DuplicateEntry = 1062

// New opens the pooled store handle shared by every request. Connections are
// checked out per statement or transaction and returned by database/sql.
func New(cfg config.Database) (*sqlx.DB, error) {
	driverName, dsn, err := DSN(cfg)
	if err != nil {
		return nil, err
	}

	dbConn, err := sqlx.Connect(driverName, dsn)
	if err != nil {
		return nil, fmt.Errorf("db connection failed: %w", err)
	}

	dbConn.SetMaxIdleConns(cfg.MaxIdleConnections)
	dbConn.SetMaxOpenConns(cfg.MaxOpenConnections)
	dbConn.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	if err := dbConn.Ping(); err != nil {
		return nil, err
	}

	return dbConn, nil
}

// DSN returns the database/sql driver name and connection string for cfg.
func DSN(cfg config.Database) (string, string, error) {
	switch cfg.Driver {
	case config.DriverMySQL, "":
		location, err := time.LoadLocation(cfg.TimeZone)
		if err != nil {
			return "", "", fmt.Errorf("time load location failed: %w", err)
		}
		conf := mysql.NewConfig()
		conf.Net = cfg.Net
		conf.Addr = cfg.Server
		conf.User = cfg.User
		conf.Passwd = cfg.Password
		conf.DBName = cfg.DBName
		conf.Timeout = cfg.Timeout
		conf.Loc = location
		conf.ParseTime = true
		return "mysql", conf.FormatDSN(), nil
	case config.DriverPostgres:
		q := url.Values{}
		q.Set("sslmode", cfg.SSLMode)
		q.Set("connect_timeout", fmt.Sprintf("%d", int(cfg.Timeout.Seconds())))
		if cfg.TimeZone != "" {
			q.Set("timezone", cfg.TimeZone)
		}
		u := url.URL{
			Scheme:   "postgres",
			User:     url.UserPassword(cfg.User, cfg.Password),
			Host:     cfg.Server,
			Path:     "/" + cfg.DBName,
			RawQuery: q.Encode(),
		}
		return "pgx", u.String(), nil
	default:
		return "", "", fmt.Errorf("unsupported db driver %q", cfg.Driver)
	}
}

// Dialect maps a driver name to the goose dialect used for migrations.
func Dialect(driverName string) string {
	if driverName == "pgx" {
		return "postgres"
	}
	return driverName
}
