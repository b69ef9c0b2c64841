package availability

import "time"

// Weekday names a recurring day of the week a photographer publishes
// availability for. Values match what profile edits submit.
type Weekday string

const (
	Sunday    Weekday = "SUNDAY"
	Monday    Weekday = "MONDAY"
	Tuesday   Weekday = "TUESDAY"
	Wednesday Weekday = "WEDNESDAY"
	Thursday  Weekday = "THURSDAY"
	Friday    Weekday = "FRIDAY"
	Saturday  Weekday = "SATURDAY"
)

var weekdayByTime = map[time.Weekday]Weekday{
	time.Sunday:    Sunday,
	time.Monday:    Monday,
	time.Tuesday:   Tuesday,
	time.Wednesday: Wednesday,
	time.Thursday:  Thursday,
	time.Friday:    Friday,
	time.Saturday:  Saturday,
}

// WeekdayOf maps a calendar date to its availability weekday.
func WeekdayOf(t time.Time) Weekday {
	return weekdayByTime[t.Weekday()]
}

func (w Weekday) String() string {
	return string(w)
}

func (w Weekday) IsValid() bool {
	switch w {
	case Sunday, Monday, Tuesday, Wednesday, Thursday, Friday, Saturday:
		return true
	default:
		return false
	}
}

// TimeBucket is the time-of-day unit a slot (and a reservation) occupies.
// Buckets are atomic: FULL_DAY does not decompose into the two half days.
type TimeBucket string

const (
	HalfDayMorning TimeBucket = "HALF_DAY_MORNING"
	HalfDayNoon    TimeBucket = "HALF_DAY_NOON"
	FullDay        TimeBucket = "FULL_DAY"
	Night          TimeBucket = "NIGHT"
	FullDayNight   TimeBucket = "FULL_DAY_NIGHT"
)

func (b TimeBucket) String() string {
	return string(b)
}

func (b TimeBucket) IsValid() bool {
	switch b {
	case HalfDayMorning, HalfDayNoon, FullDay, Night, FullDayNight:
		return true
	default:
		return false
	}
}
