package service

import (
	"errors"
	"testing"

	"github.com/campusgrid/timetable-backend/internal/model"
)

func intPtr(v int) *int { return &v }

func validLab() model.ScheduleEntry {
	return model.ScheduleEntry{
		CourseID: 1, GroupID: 1, SectionID: intPtr(3), TAID: intPtr(2), RoomID: 4,
		Day: "Monday", StartBlock: 2, DurationBlocks: 2, SessionType: model.SessionLab,
	}
}

func TestValidateEntryAcceptsWellFormedSessions(t *testing.T) {
	lab := validLab()
	if err := validateEntry(0, &lab); err != nil {
		t.Fatalf("lab rejected: %v", err)
	}

	lecture := validLab()
	lecture.SessionType = model.SessionLecture
	lecture.SectionID = nil
	if err := validateEntry(0, &lecture); err != nil {
		t.Fatalf("lecture rejected: %v", err)
	}
}

func TestValidateEntryRejectsContractViolations(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*model.ScheduleEntry)
	}{
		{"unknown day", func(e *model.ScheduleEntry) { e.Day = "Friday" }},
		{"negative block", func(e *model.ScheduleEntry) { e.StartBlock = -1 }},
		{"block past day end", func(e *model.ScheduleEntry) { e.StartBlock = 8 }},
		{"zero duration", func(e *model.ScheduleEntry) { e.DurationBlocks = 0 }},
		{"three blocks", func(e *model.ScheduleEntry) { e.DurationBlocks = 3 }},
		{"runs past day end", func(e *model.ScheduleEntry) { e.StartBlock = 7; e.DurationBlocks = 2 }},
		{"unknown type", func(e *model.ScheduleEntry) { e.SessionType = "SEMINAR" }},
		{"lab without section", func(e *model.ScheduleEntry) { e.SectionID = nil }},
		{"lecture with section", func(e *model.ScheduleEntry) {
			e.SessionType = model.SessionLecture
		}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			e := validLab()
			tc.mutate(&e)

			err := validateEntry(4, &e)
			if err == nil {
				t.Fatal("expected rejection")
			}
			var ae *AssignmentError
			if !errors.As(err, &ae) {
				t.Fatalf("expected AssignmentError, got %T", err)
			}
			if ae.Index != 4 {
				t.Fatalf("Index = %d, want 4", ae.Index)
			}
		})
	}
}

func TestFillClockTimes(t *testing.T) {
	v := model.SessionView{StartBlock: 2, DurationBlocks: 2}
	fillClockTimes(&v)
	if v.StartTime != "10:45" || v.EndTime != "12:15" {
		t.Fatalf("got %s-%s, want 10:45-12:15", v.StartTime, v.EndTime)
	}

	single := model.SessionView{StartBlock: 7, DurationBlocks: 1}
	fillClockTimes(&single)
	if single.StartTime != "15:00" || single.EndTime != "15:45" {
		t.Fatalf("got %s-%s, want 15:00-15:45", single.StartTime, single.EndTime)
	}
}

func TestFillClockTimesIgnoresOutOfRangeBlocks(t *testing.T) {
	v := model.SessionView{StartBlock: 99, DurationBlocks: 1}
	fillClockTimes(&v)
	if v.StartTime != "" || v.EndTime != "" {
		t.Fatalf("expected blank times, got %s-%s", v.StartTime, v.EndTime)
	}
}
