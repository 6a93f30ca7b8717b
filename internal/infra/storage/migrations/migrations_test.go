package migrations

import (
	"io/fs"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedMigrations(t *testing.T) {
	entries, err := fs.ReadDir(embedded, dir)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	for _, e := range entries {
		body, err := fs.ReadFile(embedded, dir+"/"+e.Name())
		require.NoError(t, err)
		assert.Contains(t, string(body), "-- +goose Up", e.Name())
		assert.Contains(t, string(body), "-- +goose Down", e.Name())
	}
}

func TestInitMigrationConstraints(t *testing.T) {
	body, err := fs.ReadFile(embedded, dir+"/00001_init.sql")
	require.NoError(t, err)

	schema := string(body)
	assert.True(t, strings.Contains(schema, "UNIQUE (date, start_time)"))
	assert.True(t, strings.Contains(schema, "UNIQUE (slot_id)"))
	assert.True(t, strings.Contains(schema, "UNIQUE (username)"))
	assert.True(t, strings.Contains(schema, "UNIQUE (email)"))
}
