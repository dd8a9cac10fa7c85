package misscheck

import "time"

// Window is the half-open time-of-day interval (Start, End] scanned on one
// invocation, plus the civil date used for dose-log lookups. Start and End
// are zero-padded HH:MM:SS strings in the configured zone; Today is
// YYYY-MM-DD.
type Window struct {
	Start string
	End   string
	Today string

	prevDay string
}

// ComputeWindow derives the scan interval from the current instant.
// Start = now-lookbackLow (exclusive), End = now-lookbackHigh (inclusive),
// both rendered as time-of-day in loc. Because each bound is formatted from
// a real instant, a lookback that crosses midnight still yields a valid
// time-of-day (e.g. 23:30:00), never a negative or >24h component.
//
// Today is the civil date of the End instant: that is the date the evaluated
// doses were scheduled on, and the date convention dose logs are written with.
func ComputeWindow(now time.Time, loc *time.Location, lookbackLow, lookbackHigh time.Duration) Window {
	start := now.Add(-lookbackLow).In(loc)
	end := now.Add(-lookbackHigh).In(loc)
	return Window{
		Start:   start.Format("15:04:05"),
		End:     end.Format("15:04:05"),
		Today:   end.Format("2006-01-02"),
		prevDay: end.AddDate(0, 0, -1).Format("2006-01-02"),
	}
}

// DateFor returns the civil date the given HH:MM:SS schedule time falls on.
// In a same-day window that is always Today. When the window wraps midnight
// (Start sorts after End), the late-evening segment above Start belongs to
// the previous civil day; the inclusive End itself is still Today.
func (w Window) DateFor(scheduleTime string) string {
	if w.Start > w.End && scheduleTime > w.Start {
		return w.prevDay
	}
	return w.Today
}
