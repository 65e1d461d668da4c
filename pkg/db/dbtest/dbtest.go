// Package dbtest opens throwaway in-memory sqlite catalogs for tests.
package dbtest

import (
	"fmt"
	"testing"

	"catalog_service/pkg/db"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"gorm.io/gorm"
)

// Logger returns a logrus logger that discards its output.
func Logger() *logrus.Logger {
	logger, _ := test.NewNullLogger()
	return logger
}

// Open returns a migrated, empty catalog private to t. It is closed when t finishes.
func Open(t testing.TB) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=1", uuid.NewString())
	gdb, err := db.Open(db.DriverSQLite, dsn, Logger())
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	t.Cleanup(func() { _ = db.Close(gdb) })

	if err := db.Migrate(gdb); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	return gdb
}
