package model

import "time"

// TA represents a teaching assistant. Labs and tutorials may only be taught by TAs.
type TA struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
