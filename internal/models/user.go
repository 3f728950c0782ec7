package models

// User represents a registered account. The password hash never leaves the
// server; JSON serialization skips it.
type User struct {
	ID       int    `json:"id" db:"id"`
	Username string `json:"username" db:"username"`
	Email    string `json:"email" db:"email"`
	Hash     string `json:"-" db:"hash"`
}
