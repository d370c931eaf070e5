package lexer

import (
	"strconv"

	"github.com/pds-tools/odl/token"
)

// scanNumberOrTemporal dispatches among date_time, time, date,
// based_integer, real and integer — the priority order spec.md §4.1
// assigns to tokens that may start with an unsigned digit.
func (l *Lexer) scanNumberOrTemporal() (token.Item, error) {
	if end, y, mo, day, doy, ok := tryDate(l.input, l.pos); ok {
		if end < len(l.input) && (l.input[end] == 'T' || l.input[end] == 't') {
			if tEnd, h, mi, sec, hasSec, utc, hasZone, zh, zm, hasZm, ok2 := tryTime(l.input, end+1); ok2 {
				l.pos = tEnd
				it := l.item(token.DATE_TIME, l.input[l.start:l.pos])
				it.Year, it.Month, it.Day, it.DayOfYear = y, mo, day, doy
				it.Hour, it.Minute, it.Second, it.HasSecond = h, mi, sec, hasSec
				it.UTC, it.HasZone, it.ZoneHour, it.ZoneMinute, it.HasZoneMinute = utc, hasZone, zh, zm, hasZm
				return it, nil
			}
		}
		l.pos = end
		it := l.item(token.DATE, l.input[l.start:l.pos])
		it.Year, it.Month, it.Day, it.DayOfYear = y, mo, day, doy
		return it, nil
	}

	if end, h, mi, sec, hasSec, utc, hasZone, zh, zm, hasZm, ok := tryTime(l.input, l.pos); ok {
		l.pos = end
		it := l.item(token.TIME, l.input[l.start:l.pos])
		it.Hour, it.Minute, it.Second, it.HasSecond = h, mi, sec, hasSec
		it.UTC, it.HasZone, it.ZoneHour, it.ZoneMinute, it.HasZoneMinute = utc, hasZone, zh, zm, hasZm
		return it, nil
	}

	if end, radix, digits, ok := tryBasedInteger(l.input, l.pos); ok {
		l.pos = end
		it := l.item(token.BASED_INTEGER, l.input[l.start:l.pos])
		it.Radix = radix
		it.Digits = digits
		return it, nil
	}

	return l.scanSignedNumber()
}

// scanSignedNumber scans real or integer; sign and/or leading '.' have
// already been validated present by the caller's lookahead.
func (l *Lexer) scanSignedNumber() (token.Item, error) {
	if l.input[l.pos] == '+' || l.input[l.pos] == '-' {
		l.pos++
	}

	isReal := false

	if l.pos < len(l.input) && l.input[l.pos] == '.' {
		isReal = true
		l.pos++
		for l.pos < len(l.input) && isDigit(l.input[l.pos]) {
			l.pos++
		}
	} else {
		for l.pos < len(l.input) && isDigit(l.input[l.pos]) {
			l.pos++
		}
		if l.pos < len(l.input) && l.input[l.pos] == '.' {
			isReal = true
			l.pos++
			for l.pos < len(l.input) && isDigit(l.input[l.pos]) {
				l.pos++
			}
		}
	}

	if l.pos < len(l.input) && (l.input[l.pos] == 'e' || l.input[l.pos] == 'E') {
		save := l.pos
		j := l.pos + 1
		if j < len(l.input) && (l.input[j] == '+' || l.input[j] == '-') {
			j++
		}
		if j < len(l.input) && isDigit(l.input[j]) {
			for j < len(l.input) && isDigit(l.input[j]) {
				j++
			}
			l.pos = j
			isReal = true
		} else {
			l.pos = save
		}
	}

	raw := l.input[l.start:l.pos]
	if isReal {
		return l.item(token.REAL, raw), nil
	}
	return l.item(token.INTEGER, raw), nil
}

// scanUintAt parses a run of ASCII digits starting at i. ok is false if
// there is no digit at i.
func scanUintAt(s string, i int) (value, end int, ok bool) {
	start := i
	for i < len(s) && isDigit(s[i]) {
		value = value*10 + int(s[i]-'0')
		i++
	}
	if i == start {
		return 0, start, false
	}
	return value, i, true
}

// tryDate attempts to match the "date" grammar at i: either a
// three-field calendar date (year-month-day) or a two-field
// day-of-year date (year-day), per spec.md §9's disambiguation rule.
func tryDate(s string, i int) (end, year, month, day int, dayOfYear, ok bool) {
	y, j, ok1 := scanUintAt(s, i)
	if !ok1 || j >= len(s) || s[j] != '-' {
		return i, 0, 0, 0, false, false
	}
	j++
	f2, j2, ok2 := scanUintAt(s, j)
	if !ok2 {
		return i, 0, 0, 0, false, false
	}
	if j2 < len(s) && s[j2] == '-' {
		j2++
		f3, j3, ok3 := scanUintAt(s, j2)
		if !ok3 {
			return i, 0, 0, 0, false, false
		}
		return j3, y, f2, f3, false, true
	}
	return j2, y, 0, f2, true, true
}

// tryTime attempts to match the "time" grammar at i: hour:minute,
// optional :second(.frac), optional Z or signed zone offset.
func tryTime(s string, i int) (end, hour, minute int, second float64, hasSecond, utc, hasZone bool, zoneHour, zoneMinute int, hasZoneMinute, ok bool) {
	h, j, ok1 := scanUintAt(s, i)
	if !ok1 || j >= len(s) || s[j] != ':' {
		return i, 0, 0, 0, false, false, false, 0, 0, false, false
	}
	j++
	m, j2, ok2 := scanUintAt(s, j)
	if !ok2 {
		return i, 0, 0, 0, false, false, false, 0, 0, false, false
	}
	j = j2

	var sec float64
	gotSec := false
	if j < len(s) && s[j] == ':' {
		secEnd, value, ok3 := scanSecondsAt(s, j+1)
		if !ok3 {
			return i, 0, 0, 0, false, false, false, 0, 0, false, false
		}
		j = secEnd
		sec = value
		gotSec = true
	}

	utcFlag := false
	zoneFlag := false
	zoneMinFlag := false
	var zh, zm int
	if j < len(s) && (s[j] == 'Z' || s[j] == 'z') {
		utcFlag = true
		j++
	} else if j < len(s) && (s[j] == '+' || s[j] == '-') {
		sign := s[j]
		zhVal, j3, ok4 := scanUintAt(s, j+1)
		if !ok4 {
			return i, 0, 0, 0, false, false, false, 0, 0, false, false
		}
		j = j3
		if sign == '-' {
			zhVal = -zhVal
		}
		zh = zhVal
		zoneFlag = true
		if j < len(s) && s[j] == ':' {
			zmVal, j4, ok5 := scanUintAt(s, j+1)
			if !ok5 {
				return i, 0, 0, 0, false, false, false, 0, 0, false, false
			}
			j = j4
			zm = zmVal
			zoneMinFlag = true
		}
	}

	return j, h, m, sec, gotSec, utcFlag, zoneFlag, zh, zm, zoneMinFlag, true
}

// scanSecondsAt parses "digits(.digits)?" or ".digits" starting at i,
// returning the parsed float and the end offset.
func scanSecondsAt(s string, i int) (end int, value float64, ok bool) {
	start := i
	intLen := 0
	for i < len(s) && isDigit(s[i]) {
		i++
		intLen++
	}
	fracStart := -1
	fracLen := 0
	if i < len(s) && s[i] == '.' {
		i++
		fracStart = i
		for i < len(s) && isDigit(s[i]) {
			i++
			fracLen++
		}
	}
	if intLen == 0 && fracLen == 0 {
		return start, 0, false
	}
	raw := s[start:i]
	v, perr := strconv.ParseFloat(raw, 64)
	if perr != nil {
		return start, 0, false
	}
	_ = fracStart
	return i, v, true
}

// tryBasedInteger attempts to match "radix#digits#" at i.
func tryBasedInteger(s string, i int) (end, radix int, digits string, ok bool) {
	r, j, ok1 := scanUintAt(s, i)
	if !ok1 || j >= len(s) || s[j] != '#' {
		return i, 0, "", false
	}
	j++
	digStart := j
	if j < len(s) && (s[j] == '+' || s[j] == '-') {
		j++
	}
	digDigitsStart := j
	for j < len(s) && isHexDigit(s[j]) {
		j++
	}
	if j == digDigitsStart || j >= len(s) || s[j] != '#' {
		return i, 0, "", false
	}
	digitsStr := s[digStart:j]
	end = j + 1
	return end, r, digitsStr, true
}
