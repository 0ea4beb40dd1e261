/*
Copyright (C) 2026 Friends Incode

SPDX-License-Identifier: AGPL-3.0-or-later
*/

package api

import "github.com/friendsincode/openhours/internal/models"

// Flag literals the consuming call-flow platform expects. Its contact
// attributes are weakly typed strings, so booleans cross the boundary as
// "TRUE"/"FALSE" and only here.
const (
	FlagTrue  = "TRUE"
	FlagFalse = "FALSE"
)

// DecisionPayload is the outbound decision bundle, field for field what the
// call-routing layer reads.
type DecisionPayload struct {
	EmergencyAllFlag      string `json:"emergencyAllFlag"`
	EmergencyAllMessage   string `json:"emergencyAllMessage"`
	EmergencyFlag         string `json:"emergencyFlag"`
	EmergencyMessage      string `json:"emergencyMessage"`
	WeatherFlag           string `json:"weatherFlag"`
	WeatherMessage        string `json:"weatherMessage"`
	HolidayFlag           string `json:"holidayFlag"`
	HolidayMessage        string `json:"holidayMessage"`
	WorkingHoursFlag      string `json:"workingHoursFlag"`
	WorkingHoursMessage   string `json:"workingHoursMessage"`
	EarlyWorkingHoursFlag string `json:"earlyWorkingHoursFlag"`
}

// ErrorPayload replaces the decision bundle on any internal failure.
// Callers distinguish the two shapes by checking ErrorOccured.
type ErrorPayload struct {
	ErrorOccured string `json:"ErrorOccured"`
	ErrorMessage string `json:"ErrorMessage"`
}

// NewDecisionPayload serializes a decision for the outbound boundary.
func NewDecisionPayload(d models.Decision) DecisionPayload {
	return DecisionPayload{
		EmergencyAllFlag:      flag(d.EmergencyAll),
		EmergencyAllMessage:   d.EmergencyAllMessage,
		EmergencyFlag:         flag(d.Emergency),
		EmergencyMessage:      d.EmergencyMessage,
		WeatherFlag:           flag(d.Weather),
		WeatherMessage:        d.WeatherMessage,
		HolidayFlag:           flag(d.Holiday),
		HolidayMessage:        d.HolidayMessage,
		WorkingHoursFlag:      flag(d.WorkingHours),
		WorkingHoursMessage:   d.WorkingHoursMessage,
		EarlyWorkingHoursFlag: flag(d.EarlyWorkingHours),
	}
}

func flag(b bool) string {
	if b {
		return FlagTrue
	}
	return FlagFalse
}
