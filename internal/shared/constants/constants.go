package constants

const (
	// Environment constants
	EnvDevelopment = "development"
	EnvTest        = "test"
	EnvProduction  = "production"

	APIVersionPrefix = "/api/v1"

	// HTTP Headers
	HeaderAuthorization = "Authorization"
	HeaderXRequestID    = "X-Request-ID"

	// Context keys
	ContextKeyRequestID = "request_id"

	// Database table names
	TableUsers               = "users"
	TableRoles               = "roles"
	TablePasswordResetTokens = "password_reset_tokens"
	TableTickets             = "tickets"
	TableTicketComments      = "ticket_comments"
	TableCasbinRule          = "casbin_rule"

	ErrMsgInternalServerError = "Internal server error occurred"
)
