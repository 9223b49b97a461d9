package models

import "time"

// Organisation is a tenancy unit owned by exactly one user.
type Organisation struct {
	ID          string
	Name        string
	Description string
	OwnerID     string
	CreatedAt   time.Time
}
