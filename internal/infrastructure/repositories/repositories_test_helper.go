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

func createUsersTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE users (
		id TEXT PRIMARY KEY,
		name TEXT,
		email TEXT UNIQUE,
		password_hash TEXT,
		role TEXT,
		created_at DATETIME,
		updated_at DATETIME,
		deleted_at DATETIME
	);`)
}

func createGalleriesTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE galleries (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		user_id TEXT NOT NULL,
		name TEXT NOT NULL,
		slug TEXT UNIQUE NOT NULL,
		description TEXT,
		is_approved BOOLEAN NOT NULL DEFAULT 0,
		approved_at DATETIME,
		status TEXT NOT NULL DEFAULT 'active',
		created_at DATETIME,
		updated_at DATETIME
	);`)
}

func createArtistsTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE artists (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		slug TEXT UNIQUE NOT NULL,
		photo TEXT,
		biography TEXT,
		created_at DATETIME,
		updated_at DATETIME
	);`)
}

func createArtworksTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE artworks (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		title TEXT NOT NULL,
		slug TEXT UNIQUE NOT NULL,
		artist_id INTEGER NOT NULL,
		gallery_id INTEGER NOT NULL,
		category TEXT,
		style TEXT,
		theme TEXT,
		price_min NUMERIC,
		price_max NUMERIC,
		medium TEXT,
		dimensions TEXT,
		description TEXT,
		featured_image TEXT,
		additional_images TEXT DEFAULT '[]',
		is_approved BOOLEAN NOT NULL DEFAULT 0,
		approved_at DATETIME,
		created_at DATETIME,
		updated_at DATETIME
	);`)
}

func createInquiriesTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE inquiries (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		first_name TEXT NOT NULL,
		last_name TEXT NOT NULL,
		email TEXT NOT NULL,
		company TEXT,
		message TEXT,
		artwork_ids TEXT NOT NULL DEFAULT '[]',
		status TEXT NOT NULL DEFAULT 'pending_verification',
		email_verified_at DATETIME,
		verification_token TEXT,
		created_at DATETIME,
		updated_at DATETIME
	);`)
}

func createInquiryLogsTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE inquiry_logs (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		inquiry_id INTEGER NOT NULL,
		action TEXT NOT NULL,
		details TEXT DEFAULT '{}',
		created_at DATETIME
	);`)
}

func createActionLogsTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE action_logs (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		user_id TEXT,
		action TEXT NOT NULL,
		subject_type TEXT,
		subject_id INTEGER,
		details TEXT DEFAULT '{}',
		ip_address TEXT,
		user_agent TEXT,
		created_at DATETIME
	);`)
}

func createSavedArtworksTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE saved_artworks (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		session_id TEXT NOT NULL,
		artwork_id INTEGER NOT NULL,
		created_at DATETIME,
		UNIQUE(session_id, artwork_id)
	);`)
}
