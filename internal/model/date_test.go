package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateIsValid(t *testing.T) {
	cases := []struct {
		name string
		date Date
		want bool
	}{
		{"leap century", Date{2, 29, 2000}, true},
		{"non-leap century", Date{2, 29, 1900}, false},
		{"leap year", Date{2, 29, 2008}, true},
		{"common year", Date{2, 29, 2009}, false},
		{"feb 28", Date{2, 28, 2009}, true},
		{"feb 30 leap", Date{2, 30, 2008}, false},
		{"april 30", Date{4, 30, 2014}, true},
		{"april 31", Date{4, 31, 2014}, false},
		{"june 31", Date{6, 31, 2014}, false},
		{"september 31", Date{9, 31, 2014}, false},
		{"november 31", Date{11, 31, 2014}, false},
		{"october 31", Date{10, 31, 2014}, true},
		{"january 32", Date{1, 32, 2014}, false},
		{"day zero", Date{1, 0, 2014}, false},
		{"negative day", Date{3, -1, 2014}, false},
		{"month zero", Date{0, 10, 2014}, false},
		{"month 13", Date{13, 10, 2014}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.date.IsValid(), tc.date.String())
		})
	}
}

func TestDateIsInTheFuture(t *testing.T) {
	now := time.Date(2026, time.October, 16, 9, 0, 0, 0, time.Local)

	assert.False(t, Date{10, 16, 2026}.IsInTheFuture(now), "today is not future")
	assert.False(t, Date{10, 15, 2026}.IsInTheFuture(now))
	assert.False(t, Date{1, 15, 2005}.IsInTheFuture(now))
	assert.True(t, Date{10, 17, 2026}.IsInTheFuture(now))
	assert.True(t, Date{1, 1, 2027}.IsInTheFuture(now))
	assert.False(t, Date{2, 30, 2027}.IsInTheFuture(now), "invalid dates fail closed")

	// Same date re-evaluated at a later moment.
	later := now.AddDate(0, 0, 2)
	assert.False(t, Date{10, 17, 2026}.IsInTheFuture(later))
}

func TestDateIsWithinSixMonthsOf(t *testing.T) {
	now := time.Date(2026, time.October, 16, 9, 0, 0, 0, time.Local)

	assert.True(t, Date{10, 17, 2026}.IsWithinSixMonthsOf(now))
	assert.True(t, Date{4, 16, 2027}.IsWithinSixMonthsOf(now), "boundary day is inclusive")
	assert.False(t, Date{4, 17, 2027}.IsWithinSixMonthsOf(now))
	assert.False(t, Date{10, 16, 2026}.IsWithinSixMonthsOf(now), "today is not future")
	assert.False(t, Date{7, 1, 2027}.IsWithinSixMonthsOf(now))
}

func TestDateIsWithinMonthsClampsMonthEnd(t *testing.T) {
	now := time.Date(2026, time.August, 31, 12, 0, 0, 0, time.Local)

	assert.True(t, Date{2, 28, 2027}.IsWithinSixMonthsOf(now))
	assert.False(t, Date{3, 1, 2027}.IsWithinSixMonthsOf(now))

	leap := time.Date(2027, time.August, 31, 12, 0, 0, 0, time.Local)
	assert.True(t, Date{2, 29, 2028}.IsWithinSixMonthsOf(leap))
	assert.True(t, Date{11, 30, 2027}.IsWithinMonthsOf(leap, 3))
	assert.False(t, Date{12, 1, 2027}.IsWithinMonthsOf(leap, 3))
}

func TestAddMonths(t *testing.T) {
	assert.Equal(t, Date{4, 16, 2027}, AddMonths(Date{10, 16, 2026}, 6))
	assert.Equal(t, Date{1, 31, 2027}, AddMonths(Date{12, 31, 2026}, 1))
	assert.Equal(t, Date{2, 28, 2027}, AddMonths(Date{12, 31, 2026}, 2))
	assert.Equal(t, Date{12, 15, 2026}, AddMonths(Date{12, 15, 2026}, 0))
}

func TestCompare(t *testing.T) {
	a := Date{3, 14, 2027}
	assert.Equal(t, 0, Compare(a, Date{3, 14, 2027}))
	assert.Equal(t, -1, Compare(a, Date{3, 15, 2027}))
	assert.Equal(t, -1, Compare(a, Date{4, 1, 2027}))
	assert.Equal(t, -1, Compare(a, Date{1, 1, 2028}))
	assert.Equal(t, 1, Compare(a, Date{12, 31, 2026}))
	assert.True(t, a.Equal(Date{3, 14, 2027}))
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("03/04/2027")
	require.NoError(t, err)
	assert.Equal(t, Date{Month: 3, Day: 4, Year: 2027}, d)
	assert.Equal(t, "3/4/2027", d.String())

	// Shape only; 2/30 parses and is rejected by IsValid.
	d, err = ParseDate("2/30/2027")
	require.NoError(t, err)
	assert.False(t, d.IsValid())

	for _, bad := range []string{"", "3/4", "3/4/2027/1", "a/4/2027", "3//2027"} {
		_, err := ParseDate(bad)
		assert.Error(t, err, bad)
	}
}
