// Package models contains the persistent entities of the account service.
package models

import "time"

// User is a registered account. PasswordHash holds the bcrypt hash of the
// password; plaintext is never stored.
type User struct {
	ID           string
	FirstName    string
	LastName     string
	Email        string
	PasswordHash string
	Phone        string
	CreatedAt    time.Time
}
