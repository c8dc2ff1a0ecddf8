package migration

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func TestGormAutoMigrateStrategy(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	s := NewGormAutoMigrateStrategy()
	require.NoError(t, s.Migrate(db))
	assert.Equal(t, "gorm_auto_migrate", s.GetName())

	for _, table := range []string{"partners", "menu_items", "offers", "qr_codes", "qr_groups", "partner_subscriptions", "plans", "scan_counters"} {
		assert.True(t, db.Migrator().HasTable(table), table)
	}
}

func TestEmbeddedScripts(t *testing.T) {
	entries, err := scripts.ReadDir(scriptsDir)
	require.NoError(t, err)
	require.NotEmpty(t, entries)
	assert.Equal(t, "00001_init.sql", entries[0].Name())
}
