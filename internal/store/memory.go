/*
Copyright (C) 2026 Friends Incode

SPDX-License-Identifier: AGPL-3.0-or-later
*/

package store

import (
	"context"
	"sync"
	"time"

	"github.com/friendsincode/openhours/internal/models"
)

// MemoryStore keeps schedule records in process. Used by tests and by the
// one-shot CLI check against a fixture file; it is not a cross-invocation
// cache for the server path.
type MemoryStore struct {
	mu      sync.RWMutex
	records map[string]models.ScheduleRecord
}

// NewMemoryStore creates an empty in-memory catalog.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{records: make(map[string]models.ScheduleRecord)}
}

// Fetch returns candidate records per the shared predicate.
func (m *MemoryStore) Fetch(ctx context.Context, weekday, formattedDate, scope string) ([]models.ScheduleRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, &DataAccessError{Op: "fetch", Err: err}
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	var out []models.ScheduleRecord
	for _, rec := range m.records {
		if Matches(rec, weekday, formattedDate, scope) {
			out = append(out, rec)
		}
	}
	sortByUpdate(out)
	return out, nil
}

// Put upserts records, stamping update times when absent.
func (m *MemoryStore) Put(ctx context.Context, records ...models.ScheduleRecord) error {
	if err := ctx.Err(); err != nil {
		return &DataAccessError{Op: "put", Err: err}
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	for _, rec := range records {
		if rec.UpdatedAt.IsZero() {
			rec.UpdatedAt = time.Now()
		}
		m.records[rec.ID] = rec
	}
	return nil
}
