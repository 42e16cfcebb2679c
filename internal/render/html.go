// Package render turns the structured timetable grid into presentation
// formats. The layout algorithm lives in timegrid; everything here is a pure
// function over its value objects.
package render

import (
	"fmt"
	"html"
	"strings"

	"github.com/campusgrid/timetable-backend/internal/timegrid"
)

// PlaceholderText is shown when the grid was built from an empty schedule.
const PlaceholderText = "No schedule data available"

// HTML renders the grid as a complete <table> element with merged cells,
// matching the shape the admin dashboard displays.
func HTML(g *timegrid.Grid) string {
	var b strings.Builder

	b.WriteString(`<table class="schedule-grid">`)
	writeHeader(&b, g)

	b.WriteString("<tbody>")
	if g.Empty {
		fmt.Fprintf(&b, `<tr><td class="placeholder" colspan="%d">%s</td></tr>`,
			g.Columns+2, PlaceholderText)
	} else {
		for _, day := range g.Days {
			writeDay(&b, day)
		}
	}
	b.WriteString("</tbody></table>")

	return b.String()
}

func writeHeader(b *strings.Builder, g *timegrid.Grid) {
	b.WriteString("<thead><tr>")
	b.WriteString(`<th rowspan="3">Day</th><th rowspan="3">Time</th>`)
	for _, h := range g.LevelHeader {
		fmt.Fprintf(b, `<th colspan="%d">%s</th>`, h.Span, html.EscapeString(h.Label))
	}
	b.WriteString("</tr><tr>")
	for _, h := range g.GroupHeader {
		fmt.Fprintf(b, `<th colspan="%d">%s</th>`, h.Span, html.EscapeString(h.Label))
	}
	b.WriteString("</tr><tr>")
	for _, h := range g.SectionHeader {
		fmt.Fprintf(b, "<th>%s</th>", html.EscapeString(h.Label))
	}
	b.WriteString("</tr></thead>")
}

func writeDay(b *strings.Builder, day timegrid.DayGrid) {
	for i, row := range day.Rows {
		b.WriteString("<tr>")
		if i == 0 {
			fmt.Fprintf(b, `<th class="day" rowspan="%d">%s</th>`,
				len(day.Rows), html.EscapeString(day.Day))
		}

		if row.Kind == timegrid.RowBreak {
			fmt.Fprintf(b, `<th class="time">Break</th>`)
		} else {
			fmt.Fprintf(b, `<th class="time">%s&ndash;%s</th>`, row.StartTime, row.EndTime)
		}

		for _, cell := range row.Cells {
			writeCell(b, cell)
		}
		b.WriteString("</tr>")
	}
}

func writeCell(b *strings.Builder, cell timegrid.Cell) {
	attrs := ""
	if cell.ColSpan > 1 {
		attrs += fmt.Sprintf(` colspan="%d"`, cell.ColSpan)
	}
	if cell.RowSpan > 1 {
		attrs += fmt.Sprintf(` rowspan="%d"`, cell.RowSpan)
	}

	switch cell.Kind {
	case timegrid.CellSession:
		c := cell.Content
		fmt.Fprintf(b,
			`<td class="session %s"%s><strong>%s</strong><br>%s<br><em>%s</em><br>%s<br>%s</td>`,
			strings.ToLower(c.SessionType), attrs,
			html.EscapeString(c.CourseCode),
			html.EscapeString(c.CourseName),
			html.EscapeString(c.SessionType),
			html.EscapeString(c.Staff),
			html.EscapeString(c.Location),
		)
	case timegrid.CellBreak:
		fmt.Fprintf(b, `<td class="break"%s></td>`, attrs)
	default:
		fmt.Fprintf(b, `<td class="empty"%s></td>`, attrs)
	}
}
