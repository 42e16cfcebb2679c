package model

import "time"

// Room types as used by the upstream scheduler's room requirements.
const (
	RoomTypeTheater   = "Theater"
	RoomTypeClassroom = "Classroom"
	RoomTypeLab       = "Lab"
	RoomTypeStudio    = "Drawing Studio"
	RoomTypeHall      = "Hall"
)

// Room represents a schedulable room inside a building.
type Room struct {
	ID         int       `json:"id"`
	BuildingID int       `json:"building_id"`
	Number     string    `json:"number"`
	Type       string    `json:"type"`
	Capacity   int       `json:"capacity"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`

	// BuildingName is populated on joined reads, empty otherwise.
	BuildingName string `json:"building_name,omitempty"`
}
