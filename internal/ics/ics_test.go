package ics

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eventcal/internal/model"
)

func sampleEvents() []model.Event {
	return []model.Event{
		{
			Date:     model.Date{Month: 11, Day: 2, Year: 2026},
			Start:    model.Morning,
			Location: model.AllisonRoadClassroom,
			Contact:  model.Contact{Department: model.CS, Email: "cs@rutgers.edu"},
			Duration: 30,
		},
		{
			Date:     model.Date{Month: 12, Day: 24, Year: 2026},
			Start:    model.Evening,
			Location: model.BeckHall,
			Contact:  model.Contact{Department: model.BAIT, Email: "bait@rutgers.edu"},
			Duration: 120,
		},
	}
}

var wideWindow = ExpandConfig{
	DisplayLocation: time.Local,
	RangeStart:      time.Date(2026, time.January, 1, 0, 0, 0, 0, time.Local),
	RangeEnd:        time.Date(2027, time.December, 31, 0, 0, 0, 0, time.Local),
}

func utcStamp(t time.Time) string {
	return t.UTC().Format("20060102T150405Z")
}

func calendarBody(vevents ...string) []byte {
	lines := []string{"BEGIN:VCALENDAR", "VERSION:2.0", "PRODID:-//test//EN"}
	for _, v := range vevents {
		lines = append(lines, strings.Split(v, "\n")...)
	}
	lines = append(lines, "END:VCALENDAR", "")
	return []byte(strings.Join(lines, "\r\n"))
}

func TestUIDIsStableAndKeyed(t *testing.T) {
	e := sampleEvents()[0]
	other := e
	other.Contact = model.Contact{Department: model.EE, Email: "ee@rutgers.edu"}
	other.Duration = 90
	assert.Equal(t, UID(e), UID(other), "UID follows event identity only")

	moved := e
	moved.Start = model.Afternoon
	assert.NotEqual(t, UID(e), UID(moved))
}

func TestExportRoundTrip(t *testing.T) {
	events := sampleEvents()
	body := Export(events, time.Date(2026, time.October, 16, 12, 0, 0, 0, time.UTC))

	text := string(body)
	assert.Equal(t, 2, strings.Count(text, "BEGIN:VEVENT"))
	assert.Contains(t, text, "ORGANIZER:mailto:cs@rutgers.edu")
	assert.Contains(t, text, "CATEGORIES:BAIT")
	assert.Contains(t, text, "UID:"+UID(events[0]))

	parsed, err := ParseICS(body)
	require.NoError(t, err)
	require.Len(t, parsed, 2)

	res, err := ExpandOccurrences(parsed, wideWindow)
	require.NoError(t, err)
	require.Len(t, res.Occurrences, 2)

	got := []model.Event{ToEvent(res.Occurrences[0]), ToEvent(res.Occurrences[1])}
	assert.Equal(t, events, got)
}

func TestExportFileAndLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "calendar.ics")
	events := sampleEvents()

	require.NoError(t, ExportFile(path, events, time.Now()))

	got, err := LoadFile(path, wideWindow)
	require.NoError(t, err)
	assert.Equal(t, events, got)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.ics"), wideWindow)
	assert.Error(t, err)
}

func TestExpandRecurring(t *testing.T) {
	first := time.Date(2026, time.October, 20, 10, 30, 0, 0, time.UTC)
	skipped := first.AddDate(0, 0, 14)
	body := calendarBody(strings.Join([]string{
		"BEGIN:VEVENT",
		"UID:weekly-seminar",
		"DTSTAMP:" + utcStamp(first),
		"DTSTART:" + utcStamp(first),
		"DTEND:" + utcStamp(first.Add(45*time.Minute)),
		"LOCATION:HLL114",
		"ORGANIZER:mailto:math@rutgers.edu",
		"RRULE:FREQ=WEEKLY;COUNT=10",
		"EXDATE:" + utcStamp(skipped),
		"END:VEVENT",
	}, "\n"))

	parsed, err := ParseICS(body)
	require.NoError(t, err)
	require.Len(t, parsed, 1)
	assert.Equal(t, "FREQ=WEEKLY;COUNT=10", parsed[0].RawRRule)
	require.Len(t, parsed[0].ExDates, 1)

	res, err := ExpandOccurrences(parsed, ExpandConfig{
		DisplayLocation: time.UTC,
		RangeStart:      time.Date(2026, time.October, 16, 0, 0, 0, 0, time.UTC),
		RangeEnd:        time.Date(2026, time.November, 30, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	assert.Empty(t, res.TruncatedEvents)

	var days []int
	for _, occ := range res.Occurrences {
		e := ToEvent(occ)
		assert.Equal(t, model.Morning, e.Start)
		assert.Equal(t, model.HillCenter, e.Location)
		assert.Equal(t, model.MATH, e.Contact.Department)
		assert.Equal(t, 45, e.Duration)
		days = append(days, e.Date.Month*100+e.Date.Day)
	}
	assert.Equal(t, []int{1020, 1027, 1110, 1117, 1124}, days)
}

func TestExpandCap(t *testing.T) {
	first := time.Date(2026, time.October, 20, 14, 30, 0, 0, time.UTC)
	parsed := []ParsedEvent{{
		UID:      "daily",
		Start:    first,
		End:      first.Add(time.Hour),
		RawRRule: "FREQ=DAILY",
	}}

	res, err := ExpandOccurrences(parsed, ExpandConfig{
		DisplayLocation:        time.UTC,
		RangeStart:             first,
		RangeEnd:               first.AddDate(0, 1, 0),
		MaxOccurrencesPerEvent: 3,
	})
	require.NoError(t, err)
	assert.Len(t, res.Occurrences, 3)
	assert.Equal(t, []string{"daily"}, res.TruncatedEvents)
}

func TestExpandSkipsOutOfRangeAndBadRule(t *testing.T) {
	at := time.Date(2028, time.January, 5, 18, 30, 0, 0, time.UTC)
	parsed := []ParsedEvent{
		{UID: "late", Start: at, End: at.Add(time.Hour)},
		{UID: "broken", Start: at, End: at.Add(time.Hour), RawRRule: "FREQ=SOMETIMES"},
	}
	res, err := ExpandOccurrences(parsed, wideWindow)
	require.NoError(t, err)
	assert.Empty(t, res.Occurrences)

	_, err = ExpandOccurrences(parsed, ExpandConfig{
		RangeStart: at,
		RangeEnd:   at.Add(-time.Hour),
	})
	assert.Error(t, err)
}

func TestToEventLeavesUnmappedFieldsZero(t *testing.T) {
	start := time.Date(2026, time.November, 3, 9, 0, 0, 0, time.UTC)
	e := ToEvent(model.Occurrence{
		Start:     start,
		End:       start.Add(50 * time.Minute),
		Location:  "Somewhere else",
		Organizer: "MAILTO:Math@rutgers.edu",
	})

	assert.Equal(t, model.Date{Month: 11, Day: 3, Year: 2026}, e.Date)
	assert.False(t, e.Start.Valid())
	assert.False(t, e.Location.Valid())
	assert.Equal(t, model.MATH, e.Contact.Department)
	assert.Equal(t, "Math@rutgers.edu", e.Contact.Email)
	assert.Equal(t, 50, e.Duration)
}

func TestParseICSErrors(t *testing.T) {
	_, err := ParseICS(nil)
	assert.Error(t, err)

	at := time.Date(2026, time.November, 3, 10, 30, 0, 0, time.UTC)
	body := calendarBody(strings.Join([]string{
		"BEGIN:VEVENT",
		"DTSTART:" + utcStamp(at),
		"DTEND:" + utcStamp(at.Add(time.Hour)),
		"END:VEVENT",
	}, "\n"))
	parsed, err := ParseICS(body)
	require.NoError(t, err)
	assert.Empty(t, parsed, "VEVENT without UID is skipped")
}

func TestWindow(t *testing.T) {
	now := time.Date(2026, time.August, 31, 9, 15, 0, 0, time.Local)
	w := Window(now, 6)
	assert.Equal(t, now, w.RangeStart)
	assert.Equal(t, time.Date(2027, time.February, 28, 23, 59, 0, 0, time.Local), w.RangeEnd)
	assert.Equal(t, time.Local, w.DisplayLocation)
}
