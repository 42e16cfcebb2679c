package timegrid

import (
	"reflect"
	"testing"

	"github.com/campusgrid/timetable-backend/internal/model"
)

func TestBuildIndexOrdering(t *testing.T) {
	roster := Roster{
		Levels: []model.Level{{ID: 2, Name: "Level 2"}, {ID: 1, Name: "Level 1"}},
		Groups: []model.Group{
			{ID: 11, LevelID: 1, Number: 2},
			{ID: 10, LevelID: 1, Number: 1},
			{ID: 20, LevelID: 2, Number: 1},
		},
		Sections: []model.Section{
			{ID: 3, GroupID: 10, Number: 2},
			{ID: 1, GroupID: 10, Number: 0},
			{ID: 2, GroupID: 10, Number: 1},
			{ID: 4, GroupID: 11, Number: 0},
			{ID: 5, GroupID: 20, Number: 1},
			{ID: 6, GroupID: 20, Number: 0},
		},
	}

	index := buildIndex(roster)

	// Levels keep roster order; groups and sections sort ascending.
	if len(index) != 2 || index[0].Name != "Level 2" || index[1].Name != "Level 1" {
		t.Fatalf("level order = %+v", index)
	}
	if got := index[0].Groups[0].Sections; !reflect.DeepEqual(got, []int{0, 1}) {
		t.Errorf("Level 2 group sections = %v", got)
	}
	l1 := index[1]
	if len(l1.Groups) != 2 || l1.Groups[0].Number != 1 || l1.Groups[1].Number != 2 {
		t.Fatalf("Level 1 groups = %+v", l1.Groups)
	}
	if got := l1.Groups[0].Sections; !reflect.DeepEqual(got, []int{0, 1, 2}) {
		t.Errorf("Level 1 group 1 sections = %v", got)
	}
	if l1.span() != 4 {
		t.Errorf("Level 1 span = %d, want 4", l1.span())
	}
}

func TestBuildIndexDropsEmptyBranches(t *testing.T) {
	roster := Roster{
		Levels: []model.Level{
			{ID: 1, Name: "Populated"},
			{ID: 2, Name: "No Sections"},
			{ID: 3, Name: "No Groups"},
		},
		Groups: []model.Group{
			{ID: 10, LevelID: 1, Number: 1},
			{ID: 11, LevelID: 1, Number: 2}, // no sections — dropped
			{ID: 20, LevelID: 2, Number: 1}, // no sections — level dropped
		},
		Sections: []model.Section{{ID: 1, GroupID: 10, Number: 0}},
	}

	index := buildIndex(roster)
	if len(index) != 1 || index[0].Name != "Populated" {
		t.Fatalf("index = %+v, want only the populated level", index)
	}
	if len(index[0].Groups) != 1 {
		t.Fatalf("groups = %+v, want the sectioned group only", index[0].Groups)
	}
}
