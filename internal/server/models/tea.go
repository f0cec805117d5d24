package models

import "time"

// Tea is a single inventory item, always owned by exactly one account.
// Transport-level shapes live in the HTTP layer; models stay tag-free.
type Tea struct {
	ID        string
	OwnerID   string
	Name      string
	Price     float64
	CreatedAt time.Time
}
