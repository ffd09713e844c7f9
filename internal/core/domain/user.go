package domain

// User represents an application user account.
type User struct {
	UserID       string `json:"userID"` // Primary key (UUID)
	Username     string `json:"username"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"` // Never serialized
	AuthProvider string `json:"authProvider,omitempty"`
	ProviderID   string `json:"-"`
	AuditFields
}
