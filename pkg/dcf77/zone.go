package dcf77

import "time"

// Decoded times carry fixed-offset zones so the repeated hour of the autumn
// fallback keeps a distinguishable offset, which a tzdata lookup by wall
// clock cannot guarantee.
var (
	zoneCET  = time.FixedZone("CET", 1*60*60)
	zoneCEST = time.FixedZone("CEST", 2*60*60)
)

// euTransition returns the instant at which Central Europe switches to or
// from summer time in the given year and month (March or October): 01:00 UTC
// on the month's last Sunday. The rule has applied EU-wide since 1996, which
// covers the whole century the frame can express.
func euTransition(year int, month time.Month) time.Time {
	last := time.Date(year, month+1, 1, 1, 0, 0, 0, time.UTC).AddDate(0, 0, -1)
	return last.AddDate(0, 0, -int(last.Weekday()))
}

// summerTimeActive reports whether CEST is in effect at the given instant.
func summerTimeActive(utc time.Time) bool {
	spring := euTransition(utc.Year(), time.March)
	fall := euTransition(utc.Year(), time.October)
	return !utc.Before(spring) && utc.Before(fall)
}

// nextTransition returns the first daylight-saving transition strictly after
// utc. The EU rule has no sunset clause, so ok is always true; callers still
// treat a false as "nothing to announce".
func nextTransition(utc time.Time) (time.Time, bool) {
	for year := utc.Year(); ; year++ {
		for _, month := range []time.Month{time.March, time.October} {
			if tr := euTransition(year, month); tr.After(utc) {
				return tr, true
			}
		}
	}
}

// announceExpected reports whether the summer-time-announcement bit must be
// set for a frame broadcast at the given instant: a transition follows
// within one hour.
func announceExpected(utc time.Time) bool {
	tr, ok := nextTransition(utc)
	return ok && tr.Sub(utc) <= time.Hour
}

// zoneFor returns the fixed zone matching the summer-time flag.
func zoneFor(summer bool) *time.Location {
	if summer {
		return zoneCEST
	}
	return zoneCET
}
