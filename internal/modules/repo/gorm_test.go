package repo

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"github.com/workdesk/workdesk/internal/modules/model"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	// every pooled connection to :memory: would see its own empty database
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(model.All()...))
	t.Cleanup(func() { _ = sqlDB.Close() })
	return db
}

func gormFactory[E any, P model.RecordPtr[E]](t *testing.T) func(Clock) Store[E] {
	return func(now Clock) Store[E] {
		return NewGormStore[E, P](newTestDB(t), now)
	}
}

func TestGormStore(t *testing.T) {
	runStoreSuite(t, backend{
		name:     "sqlite",
		tasks:    gormFactory[model.Task](t),
		users:    gormFactory[model.User](t),
		invoices: gormFactory[model.Invoice](t),
		tickets:  gormFactory[model.SupportTicket](t),
	})
}
