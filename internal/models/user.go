package models

// User represents one row of the users table.
type User struct {
	UserID       string `json:"userID"` // Primary Key (UUID)
	Username     string `json:"username"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`            // Empty for external auth users
	AuthProvider string `json:"authProvider"` // Empty for local accounts
	ProviderID   string `json:"providerID"`
	AuditFields
}
