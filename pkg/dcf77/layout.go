package dcf77

// span addresses an inclusive bit range of a frame; bit i carries the value
// broadcast during second i.
type span struct {
	lo, hi uint
}

// layout fixes the DCF77 bit positions. Both Decode and Encode read field
// placement from this table only; the numbers appear nowhere else.
var layout = struct {
	startOfMinute uint // always 0
	announce      uint // set during the hour before a summer-time change
	cest          uint // summer time in effect
	cet           uint // standard time in effect, complement of cest
	leapSecond    uint // leap second announced, not validated further
	startOfTime   uint // always 1
	minute        span
	minuteParity  uint
	hour          span
	hourParity    uint
	day           span
	weekday       span // 1=Monday .. 7=Sunday
	month         span
	year          span // year within the century
	dateParity    uint // covers day through year
	endOfMinute   uint // always 0
}{
	startOfMinute: 0,
	announce:      16,
	cest:          17,
	cet:           18,
	leapSecond:    19,
	startOfTime:   20,
	minute:        span{21, 27},
	minuteParity:  28,
	hour:          span{29, 34},
	hourParity:    35,
	day:           span{36, 41},
	weekday:       span{42, 44},
	month:         span{45, 49},
	year:          span{50, 57},
	dateParity:    58,
	endOfMinute:   59,
}

// dateSpan is the range covered by the date parity bit.
func dateSpan() span {
	return span{layout.day.lo, layout.year.hi}
}
