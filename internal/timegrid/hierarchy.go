package timegrid

import (
	"sort"

	"github.com/campusgrid/timetable-backend/internal/model"
)

// Roster bundles the read-only hierarchy inputs the builder consumes. The
// column structure is derived from the roster alone, never from sessions, so
// every declared section gets a column even in an empty week.
type Roster struct {
	Levels   []model.Level
	Groups   []model.Group
	Sections []model.Section
}

// indexedGroup is one group column slice: its number and the ascending
// section numbers underneath it.
type indexedGroup struct {
	Number   int
	Sections []int
}

// indexedLevel is one level column slice in display order.
type indexedLevel struct {
	Name   string
	Groups []indexedGroup
}

// span returns the group's column width (one column per section).
func (g *indexedGroup) span() int {
	return len(g.Sections)
}

// span returns the level's total column width.
func (l *indexedLevel) span() int {
	total := 0
	for i := range l.Groups {
		total += l.Groups[i].span()
	}
	return total
}

// buildIndex assembles the ordered hierarchy index: levels in roster order,
// groups and sections ascending by number. Groups without sections and
// levels without populated groups contribute zero columns and are dropped.
// The same index drives both header emission and body cell placement, so the
// two passes can never disagree on column order.
func buildIndex(roster Roster) []indexedLevel {
	groupsByLevel := make(map[int][]model.Group)
	for _, g := range roster.Groups {
		groupsByLevel[g.LevelID] = append(groupsByLevel[g.LevelID], g)
	}

	sectionsByGroup := make(map[int][]int)
	for _, s := range roster.Sections {
		sectionsByGroup[s.GroupID] = append(sectionsByGroup[s.GroupID], s.Number)
	}

	var index []indexedLevel
	for _, lvl := range roster.Levels {
		groups := groupsByLevel[lvl.ID]
		sort.Slice(groups, func(i, j int) bool { return groups[i].Number < groups[j].Number })

		il := indexedLevel{Name: lvl.Name}
		for _, g := range groups {
			sections := sectionsByGroup[g.ID]
			if len(sections) == 0 {
				continue
			}
			sort.Ints(sections)
			il.Groups = append(il.Groups, indexedGroup{Number: g.Number, Sections: sections})
		}
		if len(il.Groups) == 0 {
			continue
		}
		index = append(index, il)
	}
	return index
}
