package domain

import "time"

// RushHour is a weekly special-pricing window. From and To are "HH:MM" UTC
// wall-clock strings and the window is half-open [From, To). A window with
// From > To never matches; midnight-crossing windows must be split in two.
type RushHour struct {
	ID      string `json:"id"`
	WeekDay int    `json:"weekDay"` // 0=Sunday .. 6=Saturday
	From    string `json:"from"`
	To      string `json:"to"`
}

// Matches reports whether t falls inside the window. Comparison happens on
// the UTC weekday and "HH:MM" rendering of t, so lexicographic ordering is
// chronological ordering.
func (r *RushHour) Matches(t time.Time) bool {
	u := t.UTC()
	if int(u.Weekday()) != r.WeekDay {
		return false
	}
	hhmm := u.Format("15:04")
	return r.From <= hhmm && hhmm < r.To
}

// Vacation is a date range with special pricing. From and To are
// "YYYY-MM-DD" strings and the range is inclusive on both ends.
type Vacation struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	From string `json:"from"`
	To   string `json:"to"`
}

// Contains reports whether the UTC calendar date of t falls inside the range
func (v *Vacation) Contains(t time.Time) bool {
	date := t.UTC().Format("2006-01-02")
	return v.From <= date && date <= v.To
}
