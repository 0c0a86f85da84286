package db

import (
	"strings"
	"testing"
	"time"

	"github.com/vibe-gaming/clan-api/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDSN_MySQL(t *testing.T) {
	driver, dsn, err := DSN(config.Database{
		Driver:   config.DriverMySQL,
		Net:      "tcp",
		Server:   "localhost:3306",
		DBName:   "clans",
		User:     "root",
		Password: "secret",
		TimeZone: "UTC",
		Timeout:  2 * time.Second,
	})
	require.NoError(t, err)

	assert.Equal(t, "mysql", driver)
	assert.True(t, strings.HasPrefix(dsn, "root:secret@tcp(localhost:3306)/clans?"))
	assert.Contains(t, dsn, "parseTime=true")
}

func TestDSN_Postgres(t *testing.T) {
	driver, dsn, err := DSN(config.Database{
		Driver:   config.DriverPostgres,
		Server:   "db:5432",
		DBName:   "clandb",
		User:     "postgres",
		Password: "p@ss",
		SSLMode:  "disable",
		Timeout:  2 * time.Second,
	})
	require.NoError(t, err)

	assert.Equal(t, "pgx", driver)
	assert.True(t, strings.HasPrefix(dsn, "postgres://postgres:p%40ss@db:5432/clandb?"))
	assert.Contains(t, dsn, "sslmode=disable")
	assert.Contains(t, dsn, "connect_timeout=2")
}

func TestDSN_UnknownDriver(t *testing.T) {
	_, _, err := DSN(config.Database{Driver: "oracle"})
	assert.Error(t, err)
}

func TestDSN_BadTimeZone(t *testing.T) {
	_, _, err := DSN(config.Database{Driver: config.DriverMySQL, TimeZone: "Mars/Olympus"})
	assert.Error(t, err)
}

func TestDialect(t *testing.T) {
	assert.Equal(t, "postgres", Dialect("pgx"))
	assert.Equal(t, "mysql", Dialect("mysql"))
}

func TestMigrationsEmbedded(t *testing.T) {
	data, err := migrations.ReadFile("migrations/00001_create_clans.sql")
	require.NoError(t, err)
	assert.Contains(t, string(data), "CREATE TABLE IF NOT EXISTS clans")
}
