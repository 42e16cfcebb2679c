package timegrid

// CellKind tags the role of a body cell.
type CellKind string

const (
	CellEmpty   CellKind = "empty"
	CellSession CellKind = "session"
	CellBreak   CellKind = "break"
)

// CellContent is the display payload of a session cell.
type CellContent struct {
	CourseCode  string `json:"course_code"`
	CourseName  string `json:"course_name"`
	SessionType string `json:"session_type"`
	Staff       string `json:"staff"`
	Location    string `json:"location"`
}

// Cell is one rendered grid cell. Cells suppressed by a rowspan from the row
// above are not emitted at all, mirroring HTML table semantics.
type Cell struct {
	Kind    CellKind     `json:"kind"`
	ColSpan int          `json:"colspan"`
	RowSpan int          `json:"rowspan"`
	Content *CellContent `json:"content,omitempty"`
}

// Row is one body row of a day: either a teaching slot or a break.
type Row struct {
	Kind      RowKind `json:"kind"`
	Block     int     `json:"block"` // -1 for break rows
	StartTime string  `json:"start_time"`
	EndTime   string  `json:"end_time"`
	Cells     []Cell  `json:"cells"`
}

// DayGrid is the full 11-row layout of one teaching day.
type DayGrid struct {
	Day  string `json:"day"`
	Rows []Row  `json:"rows"`
}

// HeaderCell is one merged cell of the three-tier column header.
type HeaderCell struct {
	Label string `json:"label"`
	Span  int    `json:"span"`
}

// Grid is the complete structured timetable: a three-row hierarchical header
// plus one DayGrid per teaching day. It is a plain value object — rendering
// to HTML, text or anything else is a separate step.
type Grid struct {
	// Empty marks a grid built from a missing or empty session list. Headers
	// are still populated from the roster; Days is nil. Renderers show a
	// "no schedule data" placeholder instead of a body.
	Empty bool `json:"empty"`

	Columns       int          `json:"columns"`
	LevelHeader   []HeaderCell `json:"level_header"`
	GroupHeader   []HeaderCell `json:"group_header"`
	SectionHeader []HeaderCell `json:"section_header"`
	Days          []DayGrid    `json:"days,omitempty"`
}
