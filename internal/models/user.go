package models

// User represents a registered user of the app.
//
// The whole user sequence is persisted as JSON under a single store key, so
// the password travels with the record as-is (see the auth service note).
// Handlers must blank it before returning a user in a response.
type User struct {
	ID       string `json:"id"`
	Username string `json:"username" validate:"required,min=3,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}
