package services

import (
	"path/filepath"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/adjeiboateng/brightkids_backend/models"
)

// openTestDB returns an isolated file-backed SQLite database in a temp
// directory, migrated with the full schema.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dir := t.TempDir()
	dsn := filepath.Join(dir, "test.db")
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := gdb.AutoMigrate(
		&models.PendingTransaction{},
		&models.CodeClubRegistration{},
		&models.ChildRegistration{},
		&models.Product{},
		&models.ShopOrder{},
		&models.ShopOrderItem{},
		&models.FeeInvoice{},
		&models.ProgramPrice{},
		&models.DiscountCode{},
	); err != nil {
		t.Fatalf("auto-migrate: %v", err)
	}
	return gdb
}
