package db

import (
	"context"
	"fmt"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// NewMySQL returns a connected GORM DB instance. The connection is verified
// with a ping bounded by connectTimeout; a failure here is meant to abort
// startup.
func NewMySQL(dsn string, connectTimeout time.Duration) (*gorm.DB, error) {
	// TranslateError maps driver errors like duplicate-key violations onto
	// gorm.ErrDuplicatedKey so callers don't inspect MySQL error numbers.
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, fmt.Errorf("connect mysql: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("access sql db: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()
	if err := sqlDB.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("ping mysql: %w", err)
	}

	return db, nil
}
