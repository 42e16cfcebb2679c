package model

import "time"

// Course represents a taught course bound to a level. Instructor and TA
// qualification sets are many-to-many links.
type Course struct {
	ID            int       `json:"id"`
	Code          string    `json:"code"`
	Name          string    `json:"name"`
	LevelID       int       `json:"level_id"`
	LectureSlots  int       `json:"lecture_slots"`
	LabSlots      float64   `json:"lab_slots"`
	TutorialSlots float64   `json:"tutorial_slots"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`

	// Qualified staff, populated on joined reads and accepted on writes.
	InstructorIDs []int `json:"instructor_ids"`
	TAIDs         []int `json:"ta_ids"`
}
