package model

import "time"

// Section represents the smallest student unit, nested under a group.
// Labs and tutorials are scheduled per section.
type Section struct {
	ID          int       `json:"id"`
	LevelID     int       `json:"level_id"`
	GroupID     int       `json:"group_id"`
	Number      int       `json:"number"`
	NumStudents int       `json:"num_students"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
