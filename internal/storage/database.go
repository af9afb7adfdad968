// Package storage loads cash events from a sqlite database.
package storage

import (
	"fmt"

	"github.com/envelope-zero/cashflow/internal/models"
	"github.com/glebarez/sqlite"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// Load reads all cash events from the cash_events table of the sqlite
// database at dsn, in insertion order. The database is an input source
// only, nothing is ever written to it. A row whose frequency or type
// token does not parse fails the whole load.
func Load(dsn string) ([]models.CashEvent, error) {
	config := &gorm.Config{
		Logger: &logger{
			Logger: log.Logger,
		},
	}

	db, err := gorm.Open(sqlite.Open(dsn), config)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database object: %w", err)
	}
	defer sqlDB.Close()

	var events []models.CashEvent
	err = db.Order("rowid").Find(&events).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load cash events: %w", err)
	}

	return events, nil
}
