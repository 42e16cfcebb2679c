package timegrid

// Days is the fixed teaching week in display order.
var Days = []string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday"}

// BlocksPerDay is the number of 45-minute teaching blocks per day.
const BlocksPerDay = 8

// BlockTime holds the wall-clock bounds of one teaching block.
type BlockTime struct {
	Start string
	End   string
}

// BlockTimes maps block index to clock times. Must match the upstream
// scheduler's block numbering exactly.
var BlockTimes = [BlocksPerDay]BlockTime{
	{"09:00", "09:45"},
	{"09:45", "10:30"},
	{"10:45", "11:30"},
	{"11:30", "12:15"},
	{"12:30", "13:15"},
	{"13:15", "14:00"},
	{"14:15", "15:00"},
	{"15:00", "15:45"},
}

// RowKind distinguishes teaching rows from break rows in the day layout.
type RowKind string

const (
	RowSlot  RowKind = "slot"
	RowBreak RowKind = "break"
)

// rowSpec describes one row of the fixed 11-row day layout.
type rowSpec struct {
	Kind  RowKind
	Block int // teaching block index, -1 for break rows
	Start string
	End   string
}

// dayLayout is the fixed 11-row day: four block pairs with a break row after
// each of the first three pairs.
var dayLayout = []rowSpec{
	{RowSlot, 0, "09:00", "09:45"},
	{RowSlot, 1, "09:45", "10:30"},
	{RowBreak, -1, "10:30", "10:45"},
	{RowSlot, 2, "10:45", "11:30"},
	{RowSlot, 3, "11:30", "12:15"},
	{RowBreak, -1, "12:15", "12:30"},
	{RowSlot, 4, "12:30", "13:15"},
	{RowSlot, 5, "13:15", "14:00"},
	{RowBreak, -1, "14:00", "14:15"},
	{RowSlot, 6, "14:15", "15:00"},
	{RowSlot, 7, "15:00", "15:45"},
}

// pairStart reports whether block b is the first block of its pair. Only
// pair-start blocks may host a 2-block session; the pair boundary coincides
// with a break row and a session never crosses it.
func pairStart(b int) bool {
	return b%2 == 0
}

// nextTeachingRow returns the index of the teaching row following layout row
// i, skipping any break row in between. Returns -1 past the end of the day.
func nextTeachingRow(i int) int {
	for j := i + 1; j < len(dayLayout); j++ {
		if dayLayout[j].Kind == RowSlot {
			return j
		}
	}
	return -1
}

// ValidDay reports whether day is one of the five teaching days.
func ValidDay(day string) bool {
	for _, d := range Days {
		if d == day {
			return true
		}
	}
	return false
}
