package constants

const (
	EnvDevelopment = "development"
	EnvTest        = "test"
	EnvProduction  = "production"

	// Every listing in the directory and the admin screens pages by 50.
	DefaultPage     = 1
	DefaultPageSize = 50
	MaxPageSize     = 50

	SearchResultLimit     = 50
	SuggestionLimitPerSet = 3
	SuggestionMinLength   = 2
	NaicLookupLimit       = 20
	CarrierAuditLimit     = 10

	HeaderXRequestID = "X-Request-ID"

	ContextKeyUserID    = "user_id"
	ContextKeyUsername  = "username"
	ContextKeyUserRole  = "user_role"
	ContextKeySessionID = "session_id"
	ContextKeyShowAds   = "show_ads"

	TableNaic     = "naic"
	TablePayers   = "payers"
	TableCarriers = "carriers"
	TableAuditLog = "audit_log"
	TableUsers    = "users"
	TableSessions = "sessions"

	ErrMsgInternalServerError = "Internal server error occurred"
)
