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

func createInvoiceTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE invoices (
		id TEXT PRIMARY KEY,
		merchant_address TEXT NOT NULL,
		customer_email TEXT,
		amount TEXT NOT NULL,
		token_address TEXT NOT NULL,
		memo TEXT,
		status TEXT NOT NULL,
		paid_at DATETIME,
		payer_address TEXT,
		tempo_tx_hash TEXT,
		payment_link TEXT,
		tempo_chain_id TEXT,
		tempo_rpc TEXT,
		created_at DATETIME,
		updated_at DATETIME,
		deleted_at DATETIME
	);`)
}

func createContactTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE contacts (
		id TEXT PRIMARY KEY,
		owner_wallet TEXT NOT NULL,
		name TEXT NOT NULL,
		wallet_address TEXT NOT NULL,
		email TEXT,
		created_at DATETIME,
		updated_at DATETIME,
		deleted_at DATETIME
	);`)
}
