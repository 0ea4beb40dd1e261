/*
Copyright (C) 2026 Friends Incode

SPDX-License-Identifier: AGPL-3.0-or-later
*/

package store

import (
	"context"

	"gorm.io/gorm"

	"github.com/friendsincode/openhours/internal/models"
)

// GormStore reads the schedule catalog from a relational table, for
// deployments running against postgres/mysql/sqlite instead of DynamoDB.
type GormStore struct {
	db *gorm.DB
}

// NewGormStore wraps an established gorm connection.
func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

// Migrate creates the schedule_records table.
func (g *GormStore) Migrate() error {
	return g.db.AutoMigrate(&models.ScheduleRecord{})
}

// Fetch applies the candidate predicate in SQL and orders by update time so
// the fold resolves duplicates most-recently-updated last.
func (g *GormStore) Fetch(ctx context.Context, weekday, formattedDate, scope string) ([]models.ScheduleRecord, error) {
	db := g.db.WithContext(ctx)

	predicate := db.
		Where("kind = ?", models.KindEmergencyAll).
		Or("kind IN ? AND scope = ?", []models.RecordKind{models.KindEmergency, models.KindWeather}, scope).
		Or("kind = ? AND weekday = ? AND scope = ?", models.KindWeeklyHours, weekday, scope).
		Or("kind = ? AND date = ? AND scope = ?", models.KindHoliday, formattedDate, scope)

	var records []models.ScheduleRecord
	if err := db.Where(predicate).Order("updated_at ASC, id ASC").Find(&records).Error; err != nil {
		return nil, &DataAccessError{Op: "select", Err: err}
	}
	return records, nil
}

// Put upserts records by primary key.
func (g *GormStore) Put(ctx context.Context, records ...models.ScheduleRecord) error {
	for _, rec := range records {
		if err := g.db.WithContext(ctx).Save(&rec).Error; err != nil {
			return &DataAccessError{Op: "save", Err: err}
		}
	}
	return nil
}
