package models

// Decision is the outcome of one open-hours evaluation. Flags are native
// booleans internally; the outbound boundary renders them as the
// "TRUE"/"FALSE" literals the call-flow platform expects.
//
// Category slots are independent: an emergency record never clears the
// holiday fields and vice versa. Callers deciding final routing apply their
// own priority across categories (emergencyAll > emergency > weather >
// holiday > workingHours); the evaluator does not collapse them.
type Decision struct {
	EmergencyAll        bool
	EmergencyAllMessage string

	Emergency        bool
	EmergencyMessage string

	Weather        bool
	WeatherMessage string

	Holiday        bool
	HolidayMessage string

	WorkingHours bool
	// WorkingHoursMessage starts as the scope's closed-office prompt and is
	// replaced only when an open window provides its own prompt.
	WorkingHoursMessage string

	// EarlyWorkingHours is raised when the current instant falls within the
	// configured margin before an opening bound, independent of the
	// open/closed state.
	EarlyWorkingHours bool
}
