package timegrid

import (
	"fmt"

	"github.com/campusgrid/timetable-backend/internal/model"
)

// cellState tracks per-day occupancy of each (row, column) position.
type cellState uint8

const (
	stateFree cellState = iota
	stateRendered
	stateCovered // suppressed by a rowspan from the teaching row above
)

// slotKey addresses one group's session bucket within a day.
type slotKey struct {
	Day   string
	Level string
	Group int
}

// Build assembles the merged weekly grid from the roster and the flat
// session list produced by the upstream scheduler.
//
// It never fails on well-typed input: sessions whose hierarchy locator does
// not resolve against the roster are silently skipped, and an empty session
// list yields a placeholder grid with headers but no body. Given identical
// inputs the output is identical — all derived state is rebuilt per call.
func Build(roster Roster, sessions []model.SessionView) *Grid {
	index := buildIndex(roster)

	grid := &Grid{}
	for _, lvl := range index {
		grid.Columns += lvl.span()
		grid.LevelHeader = append(grid.LevelHeader, HeaderCell{Label: lvl.Name, Span: lvl.span()})
		for _, g := range lvl.Groups {
			grid.GroupHeader = append(grid.GroupHeader, HeaderCell{
				Label: fmt.Sprintf("Group %d", g.Number),
				Span:  g.span(),
			})
			for _, s := range g.Sections {
				grid.SectionHeader = append(grid.SectionHeader, HeaderCell{
					Label: fmt.Sprintf("Sec %d", s),
					Span:  1,
				})
			}
		}
	}

	if len(sessions) == 0 {
		grid.Empty = true
		return grid
	}

	// Bucket sessions per (day, level, group), preserving input order so the
	// first-match lookup semantics of the scheduler contract hold.
	buckets := make(map[slotKey][]*model.SessionView)
	for i := range sessions {
		s := &sessions[i]
		k := slotKey{Day: s.Day, Level: s.LevelName, Group: s.GroupNumber}
		buckets[k] = append(buckets[k], s)
	}

	for _, day := range Days {
		grid.Days = append(grid.Days, buildDay(day, index, buckets, grid.Columns))
	}
	return grid
}

// buildDay lays out the 11 fixed rows of one day. The occupancy buffer is
// reallocated here, so markers can never leak across days.
func buildDay(day string, index []indexedLevel, buckets map[slotKey][]*model.SessionView, columns int) DayGrid {
	occupied := make([][]cellState, len(dayLayout))
	for i := range occupied {
		occupied[i] = make([]cellState, columns)
	}

	dg := DayGrid{Day: day}
	for rowIdx, spec := range dayLayout {
		row := Row{Kind: spec.Kind, Block: spec.Block, StartTime: spec.Start, EndTime: spec.End}

		if spec.Kind == RowBreak {
			row.Cells = []Cell{{Kind: CellBreak, ColSpan: columns, RowSpan: 1}}
			dg.Rows = append(dg.Rows, row)
			continue
		}

		col := 0
		for _, lvl := range index {
			for _, grp := range lvl.Groups {
				bucket := buckets[slotKey{Day: day, Level: lvl.Name, Group: grp.Number}]
				span := grp.span()

				// A group lecture claims the entire group slice; no section
				// cell is considered at this block once one is found.
				if lec := findLecture(bucket, spec.Block); lec != nil && occupied[rowIdx][col] == stateFree {
					row.Cells = append(row.Cells, sessionCell(lec, span, claimNextRow(occupied, rowIdx, col, span, lec)))
					markRendered(occupied, rowIdx, col, span)
					col += span
					continue
				}

				for _, sec := range grp.Sections {
					if occupied[rowIdx][col] == stateCovered {
						col++
						continue
					}
					if s := findSectionSession(bucket, sec, spec.Block); s != nil {
						row.Cells = append(row.Cells, sessionCell(s, 1, claimNextRow(occupied, rowIdx, col, 1, s)))
					} else {
						row.Cells = append(row.Cells, Cell{Kind: CellEmpty, ColSpan: 1, RowSpan: 1})
					}
					occupied[rowIdx][col] = stateRendered
					col++
				}
			}
		}
		dg.Rows = append(dg.Rows, row)
	}
	return dg
}

// claimNextRow marks the following teaching row as covered for a 2-block
// session and returns the visual rowspan. A 2-block session only ever spans
// the two rows of its block pair; a malformed one starting on an odd block
// is clamped to a single row rather than crossing a break.
func claimNextRow(occupied [][]cellState, rowIdx, col, span int, s *model.SessionView) int {
	if s.DurationBlocks != 2 || !pairStart(dayLayout[rowIdx].Block) {
		return 1
	}
	next := nextTeachingRow(rowIdx)
	if next < 0 {
		return 1
	}
	for c := col; c < col+span; c++ {
		occupied[next][c] = stateCovered
	}
	return 2
}

func markRendered(occupied [][]cellState, rowIdx, col, span int) {
	for c := col; c < col+span; c++ {
		occupied[rowIdx][c] = stateRendered
	}
}

// findLecture returns the first lecture in the bucket starting at block, by
// input order. The scheduler guarantees at most one true match; ties are not
// reconciled here.
func findLecture(bucket []*model.SessionView, block int) *model.SessionView {
	for _, s := range bucket {
		if s.SessionType == model.SessionLecture && s.StartBlock == block {
			return s
		}
	}
	return nil
}

// findSectionSession returns the first lab/tutorial for the given section
// starting at block, by input order.
func findSectionSession(bucket []*model.SessionView, section, block int) *model.SessionView {
	for _, s := range bucket {
		if s.SessionType == model.SessionLecture {
			continue
		}
		if s.SectionNumber != nil && *s.SectionNumber == section && s.StartBlock == block {
			return s
		}
	}
	return nil
}

func sessionCell(s *model.SessionView, colSpan, rowSpan int) Cell {
	return Cell{
		Kind:    CellSession,
		ColSpan: colSpan,
		RowSpan: rowSpan,
		Content: &CellContent{
			CourseCode:  s.CourseCode,
			CourseName:  s.CourseName,
			SessionType: sessionTypeLabel(s.SessionType),
			Staff:       s.InstructorOrTA,
			Location:    locationLabel(s),
		},
	}
}

// sessionTypeLabel converts the scheduler's uppercase type tag into the
// display form.
func sessionTypeLabel(t string) string {
	switch t {
	case model.SessionLecture:
		return "Lecture"
	case model.SessionLab:
		return "Lab"
	case model.SessionTutorial:
		return "Tutorial"
	default:
		return t
	}
}

// locationLabel formats the venue: standalone halls show their identifier
// alone, regular rooms show "building / room".
func locationLabel(s *model.SessionView) string {
	if s.RoomType == model.RoomTypeHall || s.BuildingName == "" {
		return s.RoomNumber
	}
	return s.BuildingName + " / " + s.RoomNumber
}
