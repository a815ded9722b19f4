package database

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mbolis/survey-backend/config"
)

func TestMySQLDSN(t *testing.T) {
	dsn := MySQLDSN(config.Config{
		DBHost:     "db.internal",
		DBPort:     3306,
		DBUser:     "survey",
		DBPassword: "secret",
		DBName:     "surveys",
	})

	assert.Contains(t, dsn, "survey:secret@tcp(db.internal:3306)/surveys?")
	assert.Contains(t, dsn, "parseTime=true")
	assert.Contains(t, dsn, "clientFoundRows=true")
	assert.Contains(t, dsn, "charset=utf8mb4")
}

func TestOpenSQLiteMigrates(t *testing.T) {
	cfg := config.Config{
		DBDriver: config.DriverSQLite,
		DBPath:   filepath.Join(t.TempDir(), "survey.sqlite"),
	}

	db, err := Open(cfg)
	require.NoError(t, err)

	var tables []string
	err = db.Select(&tables, `SELECT name FROM sqlite_master WHERE type = 'table' AND name IN ('Survey', 'OnlineSurvey') ORDER BY name`)
	require.NoError(t, err)
	assert.Equal(t, []string{"OnlineSurvey", "Survey"}, tables)
	assert.Equal(t, MaxOpenConns, db.Stats().MaxOpenConnections)
	require.NoError(t, db.Close())

	// a second open finds the schema up to date
	db, err = Open(cfg)
	require.NoError(t, err)
	require.NoError(t, db.Close())
}

func TestOpenUnknownDriver(t *testing.T) {
	_, err := Open(config.Config{DBDriver: "oracle"})
	assert.Error(t, err)
}
