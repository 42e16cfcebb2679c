package model

import "time"

// Level represents an academic year level (e.g. "Level 1").
type Level struct {
	ID                  int       `json:"id"`
	Name                string    `json:"name"`
	Specialization      *string   `json:"specialization,omitempty"`
	NumSections         int       `json:"num_sections"`
	NumGroupsPerSection int       `json:"num_groups_per_section"`
	TotalStudents       int       `json:"total_students"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}
