package models

import "time"

// Account is a registered user. ID is the durable identifier every ownership
// decision is keyed on. DisplayID is a short numeric label shown to the user
// instead of the UUID; it is random, not guaranteed unique, and must never
// be used for lookups.
type Account struct {
	ID           string
	Phone        string
	PasswordHash string
	DisplayID    int
	CreatedAt    time.Time
}
