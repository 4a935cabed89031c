package entity

import (
	"time"
)

// Event categories. The type column is not constrained to these values;
// the two public listing endpoints filter on them by convention.
const (
	EventTypeFree = "FREE"
	EventTypePro  = "PRO"
)

// Event is a catalog record. Date stays a string end to end, matching the
// wire contract (clients send arbitrary display dates).
type Event struct {
	ID        string
	Name      string
	ImageURL  string
	Price     float64
	Date      string
	Info      string
	Type      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
