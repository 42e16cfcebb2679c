package model

import "time"

// Instructor represents a lecturer. Lectures may only be taught by instructors.
type Instructor struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
