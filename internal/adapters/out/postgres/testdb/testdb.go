// Package testdb opens a migrated in-memory sqlite database for tests.
package testdb

import (
	"fmt"
	"testing"

	"courierhub/internal/adapters/out/postgres"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// Open returns a private database that lives until the test ends. A single
// connection is used, so everything must run inside one transaction at a time.
func Open(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := postgres.Open("sqlite", dsn, postgres.PoolConfig{MaxOpenConns: 1}, nil)
	require.NoError(t, err)
	require.NoError(t, postgres.Migrate(db))

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}
