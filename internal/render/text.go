package render

import (
	"fmt"
	"strings"

	"github.com/campusgrid/timetable-backend/internal/timegrid"
)

const textCellWidth = 14

// Text renders the grid as a fixed-width terminal table, one block per line.
// Spanned cells are expanded into every column they cover, which keeps the
// output greppable.
func Text(g *timegrid.Grid) string {
	var b strings.Builder

	if g.Empty {
		b.WriteString(PlaceholderText + "\n")
		return b.String()
	}

	labels := make([]string, 0, g.Columns)
	i := 0
	for _, lh := range g.LevelHeader {
		for _, gh := range groupSlice(g, &i, lh.Span) {
			labels = append(labels, gh)
		}
	}

	for _, day := range g.Days {
		b.WriteString(day.Day + "\n")
		writeTextRow(&b, "Time", labels)
		dense := Dense(g, day)
		for i, row := range day.Rows {
			if row.Kind == timegrid.RowBreak {
				writeTextRow(&b, "Break", dense[i])
				continue
			}
			writeTextRow(&b, row.StartTime+"-"+row.EndTime, dense[i])
		}
		b.WriteString("\n")
	}
	return b.String()
}

// groupSlice builds the per-column labels from the section header tier.
func groupSlice(g *timegrid.Grid, cursor *int, span int) []string {
	out := make([]string, 0, span)
	for k := 0; k < span; k++ {
		out = append(out, g.SectionHeader[*cursor].Label)
		*cursor++
	}
	return out
}

// Dense expands one day into a [row][column] matrix of cell labels, with
// spans materialized into every covered position. Empty cells are "".
func Dense(g *timegrid.Grid, day timegrid.DayGrid) [][]string {
	matrix := make([][]string, len(day.Rows))
	for i := range matrix {
		matrix[i] = make([]string, g.Columns)
	}
	claimed := make([][]bool, len(day.Rows))
	for i := range claimed {
		claimed[i] = make([]bool, g.Columns)
	}

	for ri, row := range day.Rows {
		col := 0
		for _, cell := range row.Cells {
			for claimed[ri][col] {
				col++
			}
			label := ""
			if cell.Kind == timegrid.CellSession {
				label = cell.Content.CourseCode + " " + cell.Content.SessionType
			}
			for r := ri; r < ri+cell.RowSpan && r < len(day.Rows); r++ {
				for c := col; c < col+cell.ColSpan; c++ {
					matrix[r][c] = label
					claimed[r][c] = true
				}
			}
			col += cell.ColSpan
		}
	}
	return matrix
}

func writeTextRow(b *strings.Builder, label string, cells []string) {
	fmt.Fprintf(b, "%-12s", label)
	for _, c := range cells {
		fmt.Fprintf(b, "| %-*s", textCellWidth, truncate(c, textCellWidth))
	}
	b.WriteString("|\n")
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-1] + "…"
}
