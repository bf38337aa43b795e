package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatDSN(t *testing.T) {
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_PORT", "")
	t.Setenv("DB_USER", "talon")
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("DB_NAME", "talon")
	t.Setenv("DB_SSLMODE", "")

	assert.Equal(t,
		"host=db.internal port=5432 user=talon password=secret dbname=talon sslmode=disable",
		FormatDSN(),
	)
}

func TestFormatDSN_CustomPortAndSSL(t *testing.T) {
	t.Setenv("DB_HOST", "localhost")
	t.Setenv("DB_PORT", "6543")
	t.Setenv("DB_USER", "u")
	t.Setenv("DB_PASSWORD", "p")
	t.Setenv("DB_NAME", "n")
	t.Setenv("DB_SSLMODE", "require")

	dsn := FormatDSN()
	assert.Contains(t, dsn, "port=6543")
	assert.Contains(t, dsn, "sslmode=require")
}
