package value

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDateCalendarForm(t *testing.T) {
	d, err := NewDate(2020, 1, true, 2, true)
	require.NoError(t, err)
	assert.Equal(t, "2020-01-02", d.String())
	month, ok := d.Month()
	assert.True(t, ok)
	assert.Equal(t, 1, month)
}

func TestNewDateDayOfYearForm(t *testing.T) {
	d, err := NewDate(2020, 0, false, 60, true)
	require.NoError(t, err)
	assert.Equal(t, "2020-060", d.String())
	_, ok := d.Month()
	assert.False(t, ok)
}

func TestLeapYearBoundary(t *testing.T) {
	tests := []struct {
		year    int
		leapDay bool
	}{
		{2000, true},  // divisible by 400
		{1900, false}, // divisible by 100, not 400
		{2400, true},  // divisible by 400
		{2024, true},  // divisible by 4, not 100
		{2023, false}, // not divisible by 4
	}
	for _, tt := range tests {
		_, err := NewDate(tt.year, 2, true, 29, true)
		if tt.leapDay {
			assert.NoErrorf(t, err, "year %d should accept Feb 29", tt.year)
		} else {
			assert.Errorf(t, err, "year %d should reject Feb 29", tt.year)
		}
	}
}

func TestDayOfYear366OnlyInLeapYear(t *testing.T) {
	_, err := NewDate(2020, 0, false, 366, true)
	require.NoError(t, err)

	_, err = NewDate(2021, 0, false, 366, true)
	require.Error(t, err)
}

func TestDateMonthBounds(t *testing.T) {
	_, err := NewDate(2020, 13, true, 1, true)
	require.Error(t, err)
	_, err = NewDate(2020, 0, true, 1, true)
	require.Error(t, err)
}

func TestNewTimeHourBounds(t *testing.T) {
	_, err := NewTime(24, 0, 0, false, false, 0, false, 0, false, true)
	require.Error(t, err, "hour 24 must be rejected")

	_, err = NewTime(23, 59, 0, false, false, 0, false, 0, false, true)
	require.NoError(t, err)
}

func TestTimeStringForms(t *testing.T) {
	utc, err := NewTime(12, 30, 0, true, true, 0, false, 0, false, true)
	require.NoError(t, err)
	assert.Equal(t, "12:30:00Z", utc.String())

	zoned, err := NewTime(8, 15, 0, false, false, 5, true, 30, true, true)
	require.NoError(t, err)
	assert.Equal(t, "08:15+05:30", zoned.String())

	zonedNoMin, err := NewTime(9, 0, 0, false, false, -8, true, 0, false, true)
	require.NoError(t, err)
	assert.Equal(t, "09:00-08", zonedNoMin.String())
}

func TestTimeFractionalSecondTrimming(t *testing.T) {
	tm, err := NewTime(1, 2, 3.5, true, false, 0, false, 0, false, true)
	require.NoError(t, err)
	assert.Equal(t, "01:02:03.5", tm.String())

	whole, err := NewTime(1, 2, 3, true, false, 0, false, 0, false, true)
	require.NoError(t, err)
	assert.Equal(t, "01:02:03", whole.String())
}

func TestUTCDiscardsZone(t *testing.T) {
	tm, err := NewTime(10, 0, 0, false, true, 5, true, 0, false, true)
	require.NoError(t, err)
	_, _, _, hasZone := tm.Zone()
	assert.False(t, hasZone, "UTC wins over any zone offset")
}

func TestNewDateTime(t *testing.T) {
	dt, err := NewDateTime(2020, 1, true, 2, 12, 30, 0, true, true, 0, false, 0, false, true)
	require.NoError(t, err)
	assert.Equal(t, "2020-01-02T12:30:00Z", dt.String())
}
