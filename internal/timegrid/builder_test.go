package timegrid

import (
	"reflect"
	"testing"

	"github.com/campusgrid/timetable-backend/internal/model"
)

// demoRoster builds a small roster: Level 1 with one group of two sections,
// Level 2 with two groups of one section each.
func demoRoster() Roster {
	return Roster{
		Levels: []model.Level{
			{ID: 1, Name: "Level 1"},
			{ID: 2, Name: "Level 2"},
		},
		Groups: []model.Group{
			{ID: 10, LevelID: 1, Number: 1},
			{ID: 20, LevelID: 2, Number: 1},
			{ID: 21, LevelID: 2, Number: 2},
		},
		Sections: []model.Section{
			{ID: 100, LevelID: 1, GroupID: 10, Number: 0},
			{ID: 101, LevelID: 1, GroupID: 10, Number: 1},
			{ID: 200, LevelID: 2, GroupID: 20, Number: 0},
			{ID: 210, LevelID: 2, GroupID: 21, Number: 0},
		},
	}
}

func intp(n int) *int { return &n }

func lecture(day, level string, group, block, duration int) model.SessionView {
	return model.SessionView{
		Day: day, LevelName: level, GroupNumber: group,
		SessionType: model.SessionLecture,
		StartBlock:  block, DurationBlocks: duration,
		CourseCode: "MATH101", CourseName: "Calculus",
		InstructorOrTA: "Dr. Ahmed", BuildingName: "Main", RoomNumber: "A1",
		RoomType: model.RoomTypeClassroom,
	}
}

func lab(day, level string, group, section, block, duration int) model.SessionView {
	return model.SessionView{
		Day: day, LevelName: level, GroupNumber: group, SectionNumber: intp(section),
		SessionType: model.SessionLab,
		StartBlock:  block, DurationBlocks: duration,
		CourseCode: "CS102", CourseName: "Programming",
		InstructorOrTA: "Eng. Sara", BuildingName: "Labs", RoomNumber: "L3",
		RoomType: model.RoomTypeLab,
	}
}

// dayGrid returns the DayGrid for the named day.
func dayGrid(t *testing.T, g *Grid, day string) DayGrid {
	t.Helper()
	for _, d := range g.Days {
		if d.Day == day {
			return d
		}
	}
	t.Fatalf("day %s not found in grid", day)
	return DayGrid{}
}

// slotRow returns the teaching row for the given block.
func slotRow(t *testing.T, dg DayGrid, block int) Row {
	t.Helper()
	for _, r := range dg.Rows {
		if r.Kind == RowSlot && r.Block == block {
			return r
		}
	}
	t.Fatalf("block %d not found on %s", block, dg.Day)
	return Row{}
}

func TestSectionHeaderMatchesRosterSectionCount(t *testing.T) {
	g := Build(demoRoster(), nil)
	if len(g.SectionHeader) != 4 {
		t.Fatalf("section header columns = %d, want 4", len(g.SectionHeader))
	}
	if g.Columns != 4 {
		t.Fatalf("columns = %d, want 4", g.Columns)
	}
	for _, h := range g.SectionHeader {
		if h.Span != 1 {
			t.Errorf("section header %q span = %d, want 1", h.Label, h.Span)
		}
	}
}

func TestHeaderSpans(t *testing.T) {
	g := Build(demoRoster(), nil)

	wantLevels := []HeaderCell{{Label: "Level 1", Span: 2}, {Label: "Level 2", Span: 2}}
	if !reflect.DeepEqual(g.LevelHeader, wantLevels) {
		t.Errorf("level header = %+v, want %+v", g.LevelHeader, wantLevels)
	}

	wantGroups := []HeaderCell{
		{Label: "Group 1", Span: 2},
		{Label: "Group 1", Span: 1},
		{Label: "Group 2", Span: 1},
	}
	if !reflect.DeepEqual(g.GroupHeader, wantGroups) {
		t.Errorf("group header = %+v, want %+v", g.GroupHeader, wantGroups)
	}
}

func TestEmptySessionListYieldsPlaceholder(t *testing.T) {
	g := Build(demoRoster(), nil)
	if !g.Empty {
		t.Fatal("grid should be marked empty")
	}
	if g.Days != nil {
		t.Fatal("placeholder grid must not carry day rows")
	}
	// Headers still reflect the roster.
	if len(g.SectionHeader) != 4 {
		t.Fatalf("placeholder lost headers: %d columns", len(g.SectionHeader))
	}
}

func TestLectureSpansAllGroupSections(t *testing.T) {
	sessions := []model.SessionView{lecture("Sunday", "Level 1", 1, 0, 2)}
	g := Build(demoRoster(), sessions)

	sunday := dayGrid(t, g, "Sunday")

	// Block 0: one merged lecture cell over Level 1/Group 1, empty cells for
	// the two Level 2 columns.
	row0 := slotRow(t, sunday, 0)
	if len(row0.Cells) != 3 {
		t.Fatalf("block 0 cells = %d, want 3", len(row0.Cells))
	}
	lec := row0.Cells[0]
	if lec.Kind != CellSession || lec.ColSpan != 2 || lec.RowSpan != 2 {
		t.Fatalf("lecture cell = %+v, want session colspan=2 rowspan=2", lec)
	}
	if lec.Content.SessionType != "Lecture" || lec.Content.CourseCode != "MATH101" {
		t.Errorf("lecture content = %+v", lec.Content)
	}
	for _, c := range row0.Cells[1:] {
		if c.Kind != CellEmpty {
			t.Errorf("expected empty cell outside the lecture group, got %+v", c)
		}
	}

	// Block 1: both Level 1 columns are covered by the rowspan — only the
	// two Level 2 empties remain.
	row1 := slotRow(t, sunday, 1)
	if len(row1.Cells) != 2 {
		t.Fatalf("block 1 cells = %d, want 2", len(row1.Cells))
	}

	// Block 2 (after the break) is unaffected: four empty cells.
	row2 := slotRow(t, sunday, 2)
	if len(row2.Cells) != 4 {
		t.Fatalf("block 2 cells = %d, want 4", len(row2.Cells))
	}

	// Monday through Thursday carry no session cells at all.
	for _, day := range Days[1:] {
		dg := dayGrid(t, g, day)
		for _, r := range dg.Rows {
			for _, c := range r.Cells {
				if c.Kind == CellSession {
					t.Fatalf("unexpected session cell on %s", day)
				}
			}
		}
	}
}

func TestTwoBlockLabSkipsBreakRow(t *testing.T) {
	// Block 2 starts the second pair; its partner row (block 3) sits after
	// the first break row in the layout.
	sessions := []model.SessionView{lab("Monday", "Level 2", 2, 0, 2, 2)}
	g := Build(demoRoster(), sessions)

	monday := dayGrid(t, g, "Monday")

	row2 := slotRow(t, monday, 2)
	if len(row2.Cells) != 4 {
		t.Fatalf("block 2 cells = %d, want 4", len(row2.Cells))
	}
	labCell := row2.Cells[3] // last column: Level 2 / Group 2 / Sec 0
	if labCell.Kind != CellSession || labCell.ColSpan != 1 || labCell.RowSpan != 2 {
		t.Fatalf("lab cell = %+v, want session colspan=1 rowspan=2", labCell)
	}
	if labCell.Content.SessionType != "Lab" {
		t.Errorf("lab label = %q", labCell.Content.SessionType)
	}

	// Block 3: the lab column is suppressed, three cells remain.
	row3 := slotRow(t, monday, 3)
	if len(row3.Cells) != 3 {
		t.Fatalf("block 3 cells = %d, want 3", len(row3.Cells))
	}

	// Block 4 is unaffected: full width again.
	row4 := slotRow(t, monday, 4)
	if len(row4.Cells) != 4 {
		t.Fatalf("block 4 cells = %d, want 4", len(row4.Cells))
	}
}

func TestOneBlockSessionHasNoRowspan(t *testing.T) {
	sessions := []model.SessionView{lab("Tuesday", "Level 1", 1, 1, 5, 1)}
	g := Build(demoRoster(), sessions)

	row := slotRow(t, dayGrid(t, g, "Tuesday"), 5)
	cell := row.Cells[1]
	if cell.Kind != CellSession || cell.RowSpan != 1 {
		t.Fatalf("cell = %+v, want rowspan=1", cell)
	}
	// Next teaching row is untouched.
	row6 := slotRow(t, dayGrid(t, g, "Tuesday"), 6)
	if len(row6.Cells) != 4 {
		t.Fatalf("block 6 cells = %d, want 4", len(row6.Cells))
	}
}

func TestOddStartTwoBlockSessionClampedToPair(t *testing.T) {
	// A 2-block session starting on an odd block would cross a break; the
	// builder clamps it to a single row instead.
	sessions := []model.SessionView{lab("Sunday", "Level 1", 1, 0, 1, 2)}
	g := Build(demoRoster(), sessions)

	row1 := slotRow(t, dayGrid(t, g, "Sunday"), 1)
	if row1.Cells[0].RowSpan != 1 {
		t.Fatalf("odd-start 2-block session rowspan = %d, want 1", row1.Cells[0].RowSpan)
	}
	row2 := slotRow(t, dayGrid(t, g, "Sunday"), 2)
	if len(row2.Cells) != 4 {
		t.Fatalf("block 2 cells = %d, want 4 (no column may be suppressed)", len(row2.Cells))
	}
}

func TestUnknownHierarchySessionIsSkipped(t *testing.T) {
	sessions := []model.SessionView{
		lecture("Sunday", "Level 99", 1, 0, 2), // unknown level
		lab("Sunday", "Level 1", 7, 0, 2, 2),   // unknown group
		lab("Sunday", "Level 1", 1, 9, 4, 1),   // unknown section
	}
	g := Build(demoRoster(), sessions)

	for _, dg := range g.Days {
		for _, r := range dg.Rows {
			for _, c := range r.Cells {
				if c.Kind == CellSession {
					t.Fatalf("session with unknown locator rendered on %s: %+v", dg.Day, c)
				}
			}
		}
	}
}

func TestLecturePrecedesSectionSession(t *testing.T) {
	// A section lab colliding with a group lecture at the same block must be
	// shadowed by the lecture: the whole group slice is the lecture cell.
	sessions := []model.SessionView{
		lab("Wednesday", "Level 1", 1, 0, 0, 2),
		lecture("Wednesday", "Level 1", 1, 0, 2),
	}
	g := Build(demoRoster(), sessions)

	row0 := slotRow(t, dayGrid(t, g, "Wednesday"), 0)
	if row0.Cells[0].ColSpan != 2 || row0.Cells[0].Content.SessionType != "Lecture" {
		t.Fatalf("group slice cell = %+v, want the lecture spanning both sections", row0.Cells[0])
	}
	for _, c := range row0.Cells[1:] {
		if c.Kind == CellSession {
			t.Fatalf("section session rendered despite lecture: %+v", c)
		}
	}
}

func TestFirstMatchWinsOnConflict(t *testing.T) {
	first := lecture("Sunday", "Level 1", 1, 0, 1)
	second := lecture("Sunday", "Level 1", 1, 0, 1)
	second.CourseCode = "PHYS202"
	g := Build(demoRoster(), []model.SessionView{first, second})

	row0 := slotRow(t, dayGrid(t, g, "Sunday"), 0)
	if row0.Cells[0].Content.CourseCode != "MATH101" {
		t.Fatalf("conflict resolution picked %q, want first declared MATH101",
			row0.Cells[0].Content.CourseCode)
	}
}

func TestBuildIsIdempotent(t *testing.T) {
	sessions := []model.SessionView{
		lecture("Sunday", "Level 1", 1, 0, 2),
		lab("Monday", "Level 2", 1, 0, 2, 2),
		lab("Tuesday", "Level 1", 1, 1, 5, 1),
	}
	a := Build(demoRoster(), sessions)
	b := Build(demoRoster(), sessions)
	if !reflect.DeepEqual(a, b) {
		t.Fatal("two builds over identical inputs differ")
	}
}

func TestBreakRowsSpanAllColumns(t *testing.T) {
	g := Build(demoRoster(), []model.SessionView{lecture("Sunday", "Level 1", 1, 0, 2)})
	dg := dayGrid(t, g, "Sunday")

	breaks := 0
	for _, r := range dg.Rows {
		if r.Kind == RowBreak {
			breaks++
			if len(r.Cells) != 1 || r.Cells[0].ColSpan != g.Columns || r.Cells[0].Kind != CellBreak {
				t.Fatalf("break row cells = %+v", r.Cells)
			}
		}
	}
	if breaks != 3 {
		t.Fatalf("break rows = %d, want 3", breaks)
	}
	if len(dg.Rows) != 11 {
		t.Fatalf("day rows = %d, want 11", len(dg.Rows))
	}
}

func TestSpecExampleWeek(t *testing.T) {
	// Level 1 / Group 1 with sections {0,1}; a single 2-block Sunday lecture
	// at block 0. The first two teaching rows carry one merged cell; the rest
	// of the week is empty for the group.
	roster := Roster{
		Levels:   []model.Level{{ID: 1, Name: "Level 1"}},
		Groups:   []model.Group{{ID: 10, LevelID: 1, Number: 1}},
		Sections: []model.Section{{ID: 100, LevelID: 1, GroupID: 10, Number: 0}, {ID: 101, LevelID: 1, GroupID: 10, Number: 1}},
	}
	g := Build(roster, []model.SessionView{lecture("Sunday", "Level 1", 1, 0, 2)})

	sunday := dayGrid(t, g, "Sunday")
	row0 := slotRow(t, sunday, 0)
	if len(row0.Cells) != 1 || row0.Cells[0].ColSpan != 2 || row0.Cells[0].RowSpan != 2 {
		t.Fatalf("block 0 = %+v, want single colspan=2 rowspan=2 cell", row0.Cells)
	}
	row1 := slotRow(t, sunday, 1)
	if len(row1.Cells) != 0 {
		t.Fatalf("block 1 cells = %d, want 0 (both columns suppressed)", len(row1.Cells))
	}
	for _, block := range []int{2, 3, 4, 5, 6, 7} {
		r := slotRow(t, sunday, block)
		for _, c := range r.Cells {
			if c.Kind != CellEmpty {
				t.Fatalf("block %d should be empty, got %+v", block, c)
			}
		}
	}
	for _, day := range []string{"Monday", "Tuesday", "Wednesday", "Thursday"} {
		dg := dayGrid(t, g, day)
		for _, r := range dg.Rows {
			for _, c := range r.Cells {
				if c.Kind == CellSession {
					t.Fatalf("unexpected session on %s", day)
				}
			}
		}
	}
}

func TestLocationLabels(t *testing.T) {
	hall := lab("Sunday", "Level 1", 1, 0, 0, 1)
	hall.RoomType = model.RoomTypeHall
	hall.RoomNumber = "Grand Hall"
	hall.BuildingName = "Auditoriums"

	g := Build(demoRoster(), []model.SessionView{hall})
	row := slotRow(t, dayGrid(t, g, "Sunday"), 0)
	if got := row.Cells[0].Content.Location; got != "Grand Hall" {
		t.Errorf("hall location = %q, want bare hall name", got)
	}

	room := lab("Sunday", "Level 1", 1, 0, 0, 1)
	g = Build(demoRoster(), []model.SessionView{room})
	row = slotRow(t, dayGrid(t, g, "Sunday"), 0)
	if got := row.Cells[0].Content.Location; got != "Labs / L3" {
		t.Errorf("room location = %q, want \"Labs / L3\"", got)
	}
}
