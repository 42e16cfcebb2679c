package model

import "time"

// Session types produced by the upstream scheduler.
const (
	SessionLecture  = "LECTURE"
	SessionLab      = "LAB"
	SessionTutorial = "TUTORIAL"
)

// ScheduleEntry is one persisted session assignment as produced by the
// external CSP scheduler. Day and block numbering follow the scheduler's
// fixed 45-minute block contract.
type ScheduleEntry struct {
	ID             int       `json:"id"`
	CourseID       int       `json:"course_id"`
	GroupID        int       `json:"group_id"`
	SectionID      *int      `json:"section_id,omitempty"` // nil for lectures
	InstructorID   *int      `json:"instructor_id,omitempty"`
	TAID           *int      `json:"ta_id,omitempty"`
	RoomID         int       `json:"room_id"`
	Day            string    `json:"day"`
	StartBlock     int       `json:"start_block"`
	DurationBlocks int       `json:"duration_blocks"`
	SessionType    string    `json:"session_type"`
	CreatedAt      time.Time `json:"created_at"`
}

// SessionView is the flat, denormalized session record consumed by the grid
// builder and returned by the schedule listing endpoint. Hierarchy is
// located by level name and group/section number rather than by ID, matching
// the scheduler's output format.
type SessionView struct {
	Day            string  `json:"day"`
	StartBlock     int     `json:"start_block"`
	DurationBlocks int     `json:"duration_blocks"`
	StartTime      string  `json:"start_time"`
	EndTime        string  `json:"end_time"`
	SessionType    string  `json:"session_type"`
	CourseCode     string  `json:"course_code"`
	CourseName     string  `json:"course_name"`
	InstructorOrTA string  `json:"instructor_or_ta"`
	RoomNumber     string  `json:"room_number"`
	RoomType       string  `json:"room_type"`
	BuildingName   string  `json:"building_name"`
	LevelID        int     `json:"level_id"`
	LevelName      string  `json:"level_name"`
	GroupNumber    int     `json:"group_number"`
	SectionNumber  *int    `json:"section_number,omitempty"` // nil for lectures
}
