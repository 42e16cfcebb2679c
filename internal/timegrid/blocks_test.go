package timegrid

import "testing"

func TestDayLayoutShape(t *testing.T) {
	if len(dayLayout) != 11 {
		t.Fatalf("day layout rows = %d, want 11", len(dayLayout))
	}

	slots, breaks := 0, 0
	for _, r := range dayLayout {
		switch r.Kind {
		case RowSlot:
			slots++
		case RowBreak:
			breaks++
		}
	}
	if slots != BlocksPerDay || breaks != 3 {
		t.Fatalf("slots=%d breaks=%d, want 8 and 3", slots, breaks)
	}

	// Slot rows carry the canonical block clock.
	for _, r := range dayLayout {
		if r.Kind != RowSlot {
			continue
		}
		bt := BlockTimes[r.Block]
		if r.Start != bt.Start || r.End != bt.End {
			t.Errorf("block %d layout times %s-%s differ from BlockTimes %s-%s",
				r.Block, r.Start, r.End, bt.Start, bt.End)
		}
	}
}

func TestNextTeachingRowSkipsBreaks(t *testing.T) {
	// Row 1 holds block 1; the row after it is a break, then block 2.
	if got := nextTeachingRow(1); dayLayout[got].Block != 2 {
		t.Errorf("after block 1 came block %d, want 2", dayLayout[got].Block)
	}
	// Row 0 (block 0) is directly followed by block 1.
	if got := nextTeachingRow(0); dayLayout[got].Block != 1 {
		t.Errorf("after block 0 came block %d, want 1", dayLayout[got].Block)
	}
	// The last row has no successor.
	if got := nextTeachingRow(len(dayLayout) - 1); got != -1 {
		t.Errorf("successor of the last row = %d, want -1", got)
	}
}

func TestPairStart(t *testing.T) {
	for _, b := range []int{0, 2, 4, 6} {
		if !pairStart(b) {
			t.Errorf("block %d should start a pair", b)
		}
	}
	for _, b := range []int{1, 3, 5, 7} {
		if pairStart(b) {
			t.Errorf("block %d should not start a pair", b)
		}
	}
}

func TestValidDay(t *testing.T) {
	for _, d := range Days {
		if !ValidDay(d) {
			t.Errorf("%s should be a teaching day", d)
		}
	}
	if ValidDay("Friday") || ValidDay("") {
		t.Error("non-teaching day accepted")
	}
}
