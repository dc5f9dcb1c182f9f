package booking

// TimeRange is a same-day interval. Cross-midnight ranges are not modelled.
type TimeRange struct {
	start ClockTime
	end   ClockTime
}

func NewTimeRange(start, end ClockTime) TimeRange {
	return TimeRange{start: start, end: end}
}

func ParseTimeRange(start, end string) (TimeRange, error) {
	s, err := ParseClockTime(start)
	if err != nil {
		return TimeRange{}, err
	}
	e, err := ParseClockTime(end)
	if err != nil {
		return TimeRange{}, err
	}
	return TimeRange{start: s, end: e}, nil
}

func (r TimeRange) Start() ClockTime { return r.start }
func (r TimeRange) End() ClockTime   { return r.end }

// Conflicts uses three OR'd tests: start inside occupied, end inside occupied,
// or r covering occupied. Touching at a boundary (r.start == occupied.end or
// r.end == occupied.start) is not a conflict.
func (r TimeRange) Conflicts(occupied TimeRange) bool {
	s, e := r.start.minutes, r.end.minutes
	os, oe := occupied.start.minutes, occupied.end.minutes

	return (s >= os && s < oe) ||
		(e > os && e <= oe) ||
		(s <= os && e >= oe)
}

// IsSlotAvailable reports whether candidate is clear of every occupied range.
func IsSlotAvailable(candidate TimeRange, occupied []TimeRange) bool {
	for _, o := range occupied {
		if candidate.Conflicts(o) {
			return false
		}
	}
	return true
}

// TimeSlots lists hourly "HH:00" starts in [firstHour, lastHour).
func TimeSlots(firstHour, lastHour int) []string {
	if lastHour <= firstHour {
		return []string{}
	}
	slots := make([]string, 0, lastHour-firstHour)
	for h := firstHour; h < lastHour; h++ {
		slots = append(slots, ClockTime{minutes: h * 60}.String())
	}
	return slots
}

// NextDays lists n consecutive days starting with from.
func NextDays(from Date, n int) []Date {
	if n <= 0 {
		return []Date{}
	}
	days := make([]Date, n)
	for i := range n {
		days[i] = from.AddDays(i)
	}
	return days
}
