package constants

const (
	// DateFormat is the layout for calendar-day strings. Days are
	// compared in the host's local time zone.
	DateFormat = "2006-01-02"

	// MaxHabitNameLen is the maximum habit name length in runes,
	// counted after trimming surrounding whitespace.
	MaxHabitNameLen = 30

	// TickInterval is the cron spec for the periodic daily-grant check.
	TickInterval = "@every 1m"
)
