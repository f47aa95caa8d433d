package repository

import (
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"infinityqr-go/internal/model"
	"infinityqr-go/pkg/logging"
)

// InitDB opens the embedded sqlite database and migrates the schema. All
// persisted relational state is local to one profile; there is no server
// database.
func InitDB(dbPath string, logger *zap.Logger, atomicLogLevel zap.AtomicLevel) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logging.NewGormLogger(logger, logging.ToGormLogLevel(atomicLogLevel.Level())),
	})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(&model.URLMapping{}, &model.DailyStat{}, &model.User{}); err != nil {
		return nil, err
	}

	return db, nil
}
