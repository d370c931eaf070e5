package value

import (
	"strconv"
	"strings"
)

var monthDays = [...]int{0, 31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// isLeapYear reports whether year is a Gregorian leap year, using the
// corrected predicate from spec.md §9 (the original's `year % 4` truthy
// check is backwards — it must be `year % 4 == 0`).
func isLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// Date represents a PDS date value: a year, an optional month, and a
// day that is either day-of-month (month present) or day-of-year
// (month absent).
type Date struct {
	year  int
	month int // 0 means absent (day-of-year form)
	day   int
}

// NewDate constructs a Date. hasMonth distinguishes "month omitted"
// (day-of-year form, day ranges 1..365/366) from an explicit month
// (day ranges 1..daysInMonth). When validate is true, all fields are
// range-checked (spec.md §3 Invariant 7).
func NewDate(year, month int, hasMonth bool, day int, validate bool) (*Date, error) {
	if validate {
		leap := isLeapYear(year)
		var maxDay int
		if !hasMonth {
			maxDay = 365
			if leap {
				maxDay = 366
			}
		} else {
			if month < 1 || month > 12 {
				return nil, validationErrorf("month %d is not between 1 and 12", month)
			}
			maxDay = monthDays[month]
			if month == 2 && leap {
				maxDay++
			}
		}
		if day < 1 || day > maxDay {
			return nil, validationErrorf("day %d is not between 1 and %d", day, maxDay)
		}
	}
	m := month
	if !hasMonth {
		m = 0
	}
	return &Date{year: year, month: m, day: day}, nil
}

func (d *Date) Year() int  { return d.year }
func (d *Date) Day() int   { return d.day }

// Month returns the month and whether it is present; when it is not
// present, Day is a day-of-year value.
func (d *Date) Month() (month int, ok bool) {
	if d.month == 0 {
		return 0, false
	}
	return d.month, true
}

func (d *Date) String() string {
	if d.month == 0 {
		return strconv.Itoa(d.year) + "-" + pad3(d.day)
	}
	return strconv.Itoa(d.year) + "-" + pad2(d.month) + "-" + pad2(d.day)
}

func (d *Date) Equal(other Value) bool {
	o, ok := other.(*Date)
	return ok && d.year == o.year && d.month == o.month && d.day == o.day
}

func (*Date) isValue()  {}
func (*Date) isScalar() {}

func pad2(n int) string {
	s := strconv.Itoa(n)
	if len(s) < 2 {
		return "0" + s
	}
	return s
}

func pad3(n int) string {
	s := strconv.Itoa(n)
	for len(s) < 3 {
		s = "0" + s
	}
	return s
}

// Time represents a PDS time value: hour, minute, optional fractional
// second, and either a UTC flag or a signed zone offset (mutually
// exclusive on emit).
type Time struct {
	hour, minute int
	second       float64
	hasSecond    bool
	utc          bool
	hasZone      bool
	zoneHour     int
	zoneMinute   int
	hasZoneMin   bool
}

// NewTime constructs a Time. If utc is true, any zone is discarded on
// construction (mirroring the original's "UTC wins" rule). When
// validate is true, every field range in spec.md §3 is checked.
func NewTime(hour, minute int, second float64, hasSecond, utc bool, zoneHour int, hasZone bool, zoneMinute int, hasZoneMin bool, validate bool) (*Time, error) {
	if validate {
		if hour < 0 || hour > 23 {
			return nil, validationErrorf("hour %d is not between 0 and 23", hour)
		}
		if minute < 0 || minute > 59 {
			return nil, validationErrorf("minute %d is not between 0 and 59", minute)
		}
		if hasSecond && (second < 0 || second >= 60) {
			return nil, validationErrorf("second %v is not between 0 and 60", second)
		}
		if !utc && hasZone {
			if zoneHour < -12 || zoneHour > 12 {
				return nil, validationErrorf("zone hour %d is not between -12 and 12", zoneHour)
			}
			if hasZoneMin && (zoneMinute < 0 || zoneMinute > 59) {
				return nil, validationErrorf("zone minute %d is not between 0 and 59", zoneMinute)
			}
		}
	}
	t := &Time{hour: hour, minute: minute, second: second, hasSecond: hasSecond, utc: utc}
	if !utc {
		t.hasZone = hasZone
		t.zoneHour = zoneHour
		t.hasZoneMin = hasZoneMin
		t.zoneMinute = zoneMinute
	}
	return t, nil
}

func (t *Time) Hour() int   { return t.hour }
func (t *Time) Minute() int { return t.minute }

// Second returns the fractional second and whether it is present.
func (t *Time) Second() (float64, bool) { return t.second, t.hasSecond }

func (t *Time) UTC() bool { return t.utc }

// Zone returns the signed zone-hour offset, the zone-minute offset (if
// present), and whether a zone is present at all. Never both UTC and a
// zone are present (mutually exclusive on emit, per spec.md §3).
func (t *Time) Zone() (hour, minute int, hasMinute, ok bool) {
	return t.zoneHour, t.zoneMinute, t.hasZoneMin, t.hasZone
}

func (t *Time) String() string {
	var sb strings.Builder
	sb.WriteString(pad2(t.hour))
	sb.WriteByte(':')
	sb.WriteString(pad2(t.minute))
	if t.hasSecond {
		sb.WriteByte(':')
		sb.WriteString(formatSeconds(t.second))
	}
	switch {
	case t.utc:
		sb.WriteByte('Z')
	case t.hasZone:
		sb.WriteString(formatSignedInt2(t.zoneHour))
		if t.hasZoneMin {
			sb.WriteByte(':')
			sb.WriteString(pad2(t.zoneMinute))
		}
	}
	return sb.String()
}

// formatSeconds renders a fractional second with trailing zeroes (and
// a lone trailing dot) trimmed, per spec.md §4.5.
func formatSeconds(s float64) string {
	str := strconv.FormatFloat(s, 'f', 12, 64)
	str = strings.TrimRight(str, "0")
	str = strings.TrimRight(str, ".")
	if str == "" || str == "-" {
		str = "0"
	}
	if len(str) < 2 || str[1] == '.' {
		str = "0" + str
	}
	return str
}

func formatSignedInt2(n int) string {
	if n < 0 {
		return "-" + pad2(-n)
	}
	return "+" + pad2(n)
}

func (t *Time) Equal(other Value) bool {
	o, ok := other.(*Time)
	if !ok {
		return false
	}
	return t.hour == o.hour && t.minute == o.minute &&
		t.hasSecond == o.hasSecond && t.second == o.second &&
		t.utc == o.utc && t.hasZone == o.hasZone &&
		t.zoneHour == o.zoneHour && t.hasZoneMin == o.hasZoneMin && t.zoneMinute == o.zoneMinute
}

func (*Time) isValue()  {}
func (*Time) isScalar() {}

// DateTime represents a PDS date-time value: a Date composed with a Time.
type DateTime struct {
	date *Date
	time *Time
}

// NewDateTime constructs a DateTime from its Date and Time fields.
func NewDateTime(year, month int, hasMonth bool, day int, hour, minute int, second float64, hasSecond, utc bool, zoneHour int, hasZone bool, zoneMinute int, hasZoneMin bool, validate bool) (*DateTime, error) {
	d, err := NewDate(year, month, hasMonth, day, validate)
	if err != nil {
		return nil, err
	}
	t, err := NewTime(hour, minute, second, hasSecond, utc, zoneHour, hasZone, zoneMinute, hasZoneMin, validate)
	if err != nil {
		return nil, err
	}
	return &DateTime{date: d, time: t}, nil
}

func (dt *DateTime) Date() *Date { return dt.date }
func (dt *DateTime) Time() *Time { return dt.time }

func (dt *DateTime) String() string { return dt.date.String() + "T" + dt.time.String() }

func (dt *DateTime) Equal(other Value) bool {
	o, ok := other.(*DateTime)
	return ok && dt.date.Equal(o.date) && dt.time.Equal(o.time)
}

func (*DateTime) isValue()  {}
func (*DateTime) isScalar() {}
