package constants

// Catalog field limits
const (
	NameMaxLen = 30
	SlugMaxLen = 30
)

// Cart constants
const (
	CartMinQuantity = 1
)

// User status constants
const (
	UserStatusActive   = "active"
	UserStatusDisabled = "disabled"
)

// Pagination defaults
const (
	DefaultPage     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// Queue names
const (
	QueueDefault = "default"
)

// Async task type names
const (
	TaskUserLoginLog = "user:login_log"
)

// JWT token types
const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)
