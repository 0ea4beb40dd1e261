/*
Copyright (C) 2026 Friends Incode

SPDX-License-Identifier: AGPL-3.0-or-later
*/

package models

import (
	"strings"
	"time"
)

// RecordKind identifies the closure/schedule rule a record carries.
type RecordKind string

const (
	// Manually toggled closures.
	KindEmergencyAll RecordKind = "EmergencyAll" // Affects every scope
	KindEmergency    RecordKind = "Emergency"    // Scope-specific
	KindWeather      RecordKind = "Weather"

	// Date/time matched closures and open windows.
	KindHoliday     RecordKind = "Holiday"
	KindWeeklyHours RecordKind = "WHC" // Recurring weekly open-hours window
)

// ScheduleRecord is one row of the open-hours catalog.
//
// Weekday applies only to WeeklyHours records and Date only to Holiday
// records. StartTime/EndTime are required for Holiday and WeeklyHours,
// irrelevant for the flag-driven kinds. ActiveFlag is required for
// EmergencyAll/Emergency/Weather; a Holiday or WeeklyHours record is
// considered active by presence plus date/weekday match alone.
type ScheduleRecord struct {
	ID        string     `gorm:"type:uuid;primaryKey" yaml:"id" dynamodbav:"id"`
	Kind      RecordKind `gorm:"type:varchar(32);index:idx_schedule_records_kind;not null" yaml:"kind" dynamodbav:"type"`
	Scope     string     `gorm:"type:varchar(64);index:idx_schedule_records_scope;not null" yaml:"scope" dynamodbav:"WHCType"`
	Weekday   string     `gorm:"type:varchar(16)" yaml:"weekday,omitempty" dynamodbav:"day,omitempty"`
	Date      string     `gorm:"type:varchar(16)" yaml:"date,omitempty" dynamodbav:"date,omitempty"` // MM-DD-YYYY
	StartTime string     `gorm:"type:varchar(32)" yaml:"start_time,omitempty" dynamodbav:"startTime,omitempty"`
	EndTime   string     `gorm:"type:varchar(32)" yaml:"end_time,omitempty" dynamodbav:"endTime,omitempty"`

	// Message is opaque prompt text, possibly SSML. Passed through verbatim.
	Message string `gorm:"type:text" yaml:"message,omitempty" dynamodbav:"message,omitempty"`

	// ActiveFlag holds the stored "TRUE"/"FALSE" literal. Compared
	// case-insensitively; anything but "true" (including absent) is
	// inactive.
	ActiveFlag string `gorm:"type:varchar(8)" yaml:"active_flag,omitempty" dynamodbav:"activeFlag,omitempty"`

	CreatedAt time.Time `yaml:"-" dynamodbav:"createdAt,unixtime"`
	UpdatedAt time.Time `yaml:"-" dynamodbav:"updatedAt,unixtime"`
}

// TableName returns the table name for GORM.
func (ScheduleRecord) TableName() string {
	return "schedule_records"
}

// Active reports whether the stored flag literal marks the record active.
func (r ScheduleRecord) Active() bool {
	return strings.EqualFold(strings.TrimSpace(r.ActiveFlag), "true")
}

// WeekdayNames lists weekday names in the storage format, indexed by
// time.Weekday.
var WeekdayNames = [7]string{
	"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday",
}

// DateFormat is the layout of Date fields and formatted-date filters,
// MM-DD-YYYY as stored in the catalog.
const DateFormat = "01-02-2006"
