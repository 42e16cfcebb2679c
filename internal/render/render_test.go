package render

import (
	"strings"
	"testing"

	"github.com/campusgrid/timetable-backend/internal/model"
	"github.com/campusgrid/timetable-backend/internal/timegrid"
)

func testRoster() timegrid.Roster {
	return timegrid.Roster{
		Levels:   []model.Level{{ID: 1, Name: "Level 1"}},
		Groups:   []model.Group{{ID: 10, LevelID: 1, Number: 1}},
		Sections: []model.Section{{ID: 1, LevelID: 1, GroupID: 10, Number: 0}, {ID: 2, LevelID: 1, GroupID: 10, Number: 1}},
	}
}

func testSessions() []model.SessionView {
	return []model.SessionView{{
		Day: "Sunday", LevelName: "Level 1", GroupNumber: 1,
		SessionType: model.SessionLecture, StartBlock: 0, DurationBlocks: 2,
		CourseCode: "MATH101", CourseName: "Calculus & Series",
		InstructorOrTA: "Dr. Ahmed", BuildingName: "Main", RoomNumber: "A1",
		RoomType: model.RoomTypeClassroom,
	}}
}

func TestHTMLContainsMergedLectureCell(t *testing.T) {
	g := timegrid.Build(testRoster(), testSessions())
	out := HTML(g)

	if !strings.Contains(out, `colspan="2"`) || !strings.Contains(out, `rowspan="2"`) {
		t.Error("merged lecture cell spans missing from HTML output")
	}
	if !strings.Contains(out, "MATH101") || !strings.Contains(out, "Main / A1") {
		t.Error("lecture payload missing from HTML output")
	}
	// HTML metacharacters in payloads must be escaped.
	if !strings.Contains(out, "Calculus &amp; Series") {
		t.Error("course name not HTML-escaped")
	}
	if !strings.Contains(out, `<th class="day" rowspan="11">Sunday</th>`) {
		t.Error("day header cell missing")
	}
}

func TestHTMLPlaceholderForEmptyGrid(t *testing.T) {
	g := timegrid.Build(testRoster(), nil)
	out := HTML(g)

	if !strings.Contains(out, PlaceholderText) {
		t.Error("placeholder text missing for empty schedule")
	}
	// Headers still present so the roster structure is visible.
	if !strings.Contains(out, "Level 1") || !strings.Contains(out, "Sec 0") {
		t.Error("roster headers missing from placeholder table")
	}
	if strings.Contains(out, "Sunday") {
		t.Error("placeholder table should not carry day rows")
	}
}

func TestTextRendering(t *testing.T) {
	g := timegrid.Build(testRoster(), testSessions())
	out := Text(g)

	if !strings.Contains(out, "Sunday") {
		t.Fatal("day heading missing")
	}
	// The 2-block lecture is expanded into both pair rows.
	if got := strings.Count(out, "MATH101 Lectu"); got < 2 {
		t.Errorf("lecture appears %d times in text grid, want at least 2 (one per pair row)", got)
	}
}

func TestTextPlaceholder(t *testing.T) {
	g := timegrid.Build(testRoster(), nil)
	if got := Text(g); !strings.Contains(got, PlaceholderText) {
		t.Errorf("text placeholder missing, got %q", got)
	}
}

func TestDenseExpandsSpans(t *testing.T) {
	g := timegrid.Build(testRoster(), testSessions())
	sunday := g.Days[0]
	dense := Dense(g, sunday)

	// Rows 0 and 1 (blocks 0 and 1) carry the lecture in both columns.
	for _, r := range []int{0, 1} {
		for _, c := range []int{0, 1} {
			if dense[r][c] != "MATH101 Lecture" {
				t.Errorf("dense[%d][%d] = %q, want lecture", r, c, dense[r][c])
			}
		}
	}
	// Row 3 (block 2, after the break) is empty.
	for _, c := range []int{0, 1} {
		if dense[3][c] != "" {
			t.Errorf("dense[3][%d] = %q, want empty", c, dense[3][c])
		}
	}
}
