package repositories

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", t.Name(), time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err, "open sqlite")
	return db
}

func mustExec(t *testing.T, db *gorm.DB, q string, args ...interface{}) {
	t.Helper()
	require.NoError(t, db.Exec(q, args...).Error, "exec failed: query=%s", q)
}

func createUserTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE users (
		id TEXT PRIMARY KEY,
		username TEXT NOT NULL,
		email TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		profile_image_url TEXT,
		is_active BOOLEAN NOT NULL DEFAULT 0,
		is_staff BOOLEAN NOT NULL DEFAULT 0,
		is_superuser BOOLEAN NOT NULL DEFAULT 0,
		created_at DATETIME,
		updated_at DATETIME
	);`)
}

func createEmailOTPTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE email_otps (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		code TEXT NOT NULL,
		created_at DATETIME,
		expires_at DATETIME NOT NULL
	);`)
}

func createAuthTokenTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE auth_tokens (
		id TEXT PRIMARY KEY,
		key TEXT NOT NULL UNIQUE,
		user_id TEXT NOT NULL UNIQUE,
		created_at DATETIME
	);`)
}
