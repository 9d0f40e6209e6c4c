package model

import (
	"cmp"
	"time"
)

// Event is a scheduled booking of a room for one timeslot on one day.
// Identity is (Date, Start, Location); Contact and Duration are payload.
type Event struct {
	Date     Date
	Start    Timeslot
	Location Location
	Contact  Contact
	// Duration in minutes.
	Duration int
}

// Key is the comparable identity of an event, usable as a map key.
type Key struct {
	Date     Date
	Start    Timeslot
	Location Location
}

func (e Event) Key() Key {
	return Key{Date: e.Date, Start: e.Start, Location: e.Location}
}

// Equal reports whether two events occupy the same room, day and timeslot.
func (e Event) Equal(o Event) bool {
	return e.Key() == o.Key()
}

// CompareEvents orders by date, then by timeslot. It is a display order and
// does not agree with Equal: events in different rooms may compare as 0.
func CompareEvents(a, b Event) int {
	if c := Compare(a.Date, b.Date); c != 0 {
		return c
	}
	return cmp.Compare(a.Start, b.Start)
}

// End returns the 24-hour wall-clock time at which the event finishes.
func (e Event) End() (hour, minute int) {
	h, m := e.Start.Start()
	total := h*60 + m + e.Duration
	return (total / 60) % 24, total % 60
}

// StartsAt returns the start instant on the event's day in loc.
func (e Event) StartsAt(loc *time.Location) time.Time {
	h, m := e.Start.Start()
	return e.Date.At(h, m, loc)
}

// EndsAt returns the end instant, which may fall on the next day.
func (e Event) EndsAt(loc *time.Location) time.Time {
	return e.StartsAt(loc).Add(time.Duration(e.Duration) * time.Minute)
}

// String renders the console form:
//
//	[Event Date: 3/14/2027] [Start: 10:30am] [11:30am] @ARC103 (Allison Road Classroom, Busch) [Contact: Computer Science, cs@rutgers.edu]
func (e Event) String() string {
	sh, sm := e.Start.Start()
	eh, em := e.End()
	return "[Event Date: " + e.Date.String() + "] " +
		"[Start: " + Clock(sh, sm) + "] " +
		"[" + Clock(eh, em) + "] " +
		"@" + e.Location.String() + " " +
		e.Contact.String()
}

// Occurrence is a single concrete instance of an imported calendar entry
// after recurrence expansion, in local wall-clock time.
type Occurrence struct {
	UID string

	Location   string
	Organizer  string
	Categories string

	Start time.Time
	End   time.Time
}
