/*
Copyright (C) 2026 Friends Incode

SPDX-License-Identifier: AGPL-3.0-or-later
*/

// Package importer loads schedule records from a YAML fixture into a record
// store, for seeding new deployments and building test catalogs.
package importer

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/friendsincode/openhours/internal/models"
	"github.com/friendsincode/openhours/internal/store"
)

// Fixture is the YAML document layout.
type Fixture struct {
	Records []models.ScheduleRecord `yaml:"records"`
}

var validKinds = map[models.RecordKind]bool{
	models.KindEmergencyAll: true,
	models.KindEmergency:    true,
	models.KindWeather:      true,
	models.KindHoliday:      true,
	models.KindWeeklyHours:  true,
}

// Load parses a fixture file and normalizes its records: IDs are generated
// when absent, update times stamped, kinds validated.
func Load(path string) ([]models.ScheduleRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read fixture: %w", err)
	}

	var fixture Fixture
	if err := yaml.Unmarshal(data, &fixture); err != nil {
		return nil, fmt.Errorf("parse fixture: %w", err)
	}
	if len(fixture.Records) == 0 {
		return nil, fmt.Errorf("fixture %s contains no records", path)
	}

	now := time.Now()
	for i := range fixture.Records {
		rec := &fixture.Records[i]
		if !validKinds[rec.Kind] {
			return nil, fmt.Errorf("record %d: unknown kind %q", i, rec.Kind)
		}
		if rec.Scope == "" && rec.Kind != models.KindEmergencyAll {
			return nil, fmt.Errorf("record %d: scope required for kind %q", i, rec.Kind)
		}
		if rec.ID == "" {
			rec.ID = uuid.NewString()
		}
		if rec.CreatedAt.IsZero() {
			rec.CreatedAt = now
		}
		if rec.UpdatedAt.IsZero() {
			rec.UpdatedAt = now
		}
	}
	return fixture.Records, nil
}

// Import loads a fixture and writes its records to the store.
func Import(ctx context.Context, st store.RecordStore, path string, logger zerolog.Logger) (int, error) {
	records, err := Load(path)
	if err != nil {
		return 0, err
	}

	if err := st.Put(ctx, records...); err != nil {
		return 0, fmt.Errorf("write records: %w", err)
	}

	logger.Info().Int("count", len(records)).Str("fixture", path).Msg("schedule records imported")
	return len(records), nil
}
