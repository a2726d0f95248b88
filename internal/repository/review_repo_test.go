package repository

import (
	"strings"
	"testing"

	"progee-api/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/utils/tests"
)

func dryRunDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(tests.DummyDialector{}, &gorm.Config{DryRun: true})
	require.NoError(t, err)
	return db
}

// The vote ledger's duplicate check is only safe if the review row stays
// pinned for the whole transaction, so the lookup must emit FOR UPDATE.
func TestLockForUpdateEmitsLockingClause(t *testing.T) {
	db := dryRunDB(t)

	var review model.Review
	stmt := lockForUpdate(db).First(&review, "id = ?", uuid.New()).Statement

	sql := stmt.SQL.String()
	require.True(t, strings.Contains(sql, "FOR UPDATE"),
		"query %q is missing the row lock", sql)
}

// A plain lookup must not carry the lock; only the vote path pays for it.
func TestFindByIDQueryIsUnlocked(t *testing.T) {
	db := dryRunDB(t)

	var review model.Review
	stmt := db.First(&review, "id = ?", uuid.New()).Statement

	require.False(t, strings.Contains(stmt.SQL.String(), "FOR UPDATE"))
}
