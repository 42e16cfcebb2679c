package model

import "time"

// Hall represents a standalone lecture hall outside the building/room
// hierarchy. Sessions placed in a hall are labeled by the hall name alone.
type Hall struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Capacity  int       `json:"capacity"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
