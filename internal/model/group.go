package model

import "time"

// Group represents a lecture group within a level. All sections of a group
// attend the group's lectures together.
type Group struct {
	ID          int       `json:"id"`
	LevelID     int       `json:"level_id"`
	Number      int       `json:"number"`
	NumStudents int       `json:"num_students"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
