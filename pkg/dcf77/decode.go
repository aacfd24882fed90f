package dcf77

import "time"

// centuryBase anchors the two-digit broadcast year. The century itself is
// not transmitted; deriving it from weekday cross-checks over a wider window
// would be possible but is deliberately not attempted.
const centuryBase = 2000

// Decode validates f and returns the broadcast minute as a time.Time in the
// fixed CET or CEST zone. The checks run in a fixed order and the first
// failure is returned; callers may rely on which error a multiply-invalid
// frame produces.
func Decode(f Frame) (time.Time, error) {
	if f.Bit(layout.startOfMinute) != 0 {
		return time.Time{}, structuralErr(f, "start-of-minute marker")
	}
	if f.Bit(layout.cest) == f.Bit(layout.cet) {
		return time.Time{}, consistencyErr(f, "CET/CEST flags")
	}
	if f.Bit(layout.startOfTime) != 1 {
		return time.Time{}, structuralErr(f, "start-of-time marker")
	}
	minute := f.bcd(layout.minute)
	if !f.parityMatches(layout.minute, layout.minuteParity) {
		return time.Time{}, parityErr(f, "minutes")
	}
	hour := f.bcd(layout.hour)
	if !f.parityMatches(layout.hour, layout.hourParity) {
		return time.Time{}, parityErr(f, "hours")
	}
	day := f.bcd(layout.day)
	weekday := f.bcd(layout.weekday)
	month := f.bcd(layout.month)
	year := centuryBase + f.bcd(layout.year)
	if !f.parityMatches(dateSpan(), layout.dateParity) {
		return time.Time{}, parityErr(f, "date")
	}
	if f.Bit(layout.endOfMinute) != 0 {
		return time.Time{}, structuralErr(f, "end-of-minute marker")
	}

	summer := f.Bit(layout.cest) == 1
	t := time.Date(year, time.Month(month), day, hour, minute, 0, 0, zoneFor(summer))
	// time.Date normalizes out-of-range components, so an impossible date
	// (day 31 in a 30-day month, BCD garbage that slipped past parity)
	// shows up as a component mismatch.
	if t.Year() != year || t.Month() != time.Month(month) || t.Day() != day ||
		t.Hour() != hour || t.Minute() != minute {
		return time.Time{}, structuralErr(f, "invalid calendar date")
	}
	if isoWeekday(t) != weekday {
		return time.Time{}, consistencyErr(f, "weekday")
	}
	if summerTimeActive(t.UTC()) != summer {
		return time.Time{}, consistencyErr(f, "timezone offset")
	}
	if _, ok := nextTransition(t.UTC()); ok {
		announced := f.Bit(layout.announce) == 1
		if announced != announceExpected(t.UTC()) {
			return time.Time{}, consistencyErr(f, "summer-time announcement")
		}
	}
	return t, nil
}

// isoWeekday maps time.Weekday onto the broadcast numbering 1=Monday ..
// 7=Sunday.
func isoWeekday(t time.Time) int {
	if wd := int(t.Weekday()); wd != 0 {
		return wd
	}
	return 7
}
