package constants

const (
	// ContextTokenData is the echo context key the auth middleware stores the
	// parsed token claims under.
	ContextTokenData = "token_data"

	ScopeTokenAccess = "access"

	// DateLayout is the calendar-date wire format used everywhere an
	// appointment or record date crosses a boundary.
	DateLayout = "2006-01-02"
	// TimeLayout is the display time-of-day format carried on appointments,
	// e.g. "10:00 AM".
	TimeLayout = "3:04 PM"

	RedisKeyTokenBlacklist = "auth:blacklist:"
	RedisKeyOnboardingSeen = "onboarding:seen:"

	DefaultPage  = 1
	DefaultLimit = 20
	MaxLimit     = 100
)
