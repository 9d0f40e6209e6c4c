package model

import (
	"fmt"
	"strings"
)

// Timeslot is one of the three fixed event start times.
type Timeslot int

const (
	Morning Timeslot = iota + 1
	Afternoon
	Evening
)

type timeslotInfo struct {
	name   string
	hour   int
	minute int
}

var timeslots = map[Timeslot]timeslotInfo{
	Morning:   {name: "morning", hour: 10, minute: 30},
	Afternoon: {name: "afternoon", hour: 14, minute: 30},
	Evening:   {name: "evening", hour: 18, minute: 30},
}

func Timeslots() []Timeslot {
	return []Timeslot{Morning, Afternoon, Evening}
}

// ParseTimeslot accepts "morning", "afternoon" or "evening" in any case.
func ParseTimeslot(s string) (Timeslot, bool) {
	s = strings.ToLower(s)
	for _, t := range Timeslots() {
		if timeslots[t].name == s {
			return t, true
		}
	}
	return 0, false
}

// TimeslotAt finds the timeslot starting at hour:minute (24-hour clock).
func TimeslotAt(hour, minute int) (Timeslot, bool) {
	for _, t := range Timeslots() {
		info := timeslots[t]
		if info.hour == hour && info.minute == minute {
			return t, true
		}
	}
	return 0, false
}

func (t Timeslot) Valid() bool {
	_, ok := timeslots[t]
	return ok
}

// Start returns the start time on a 24-hour clock.
func (t Timeslot) Start() (hour, minute int) {
	info := timeslots[t]
	return info.hour, info.minute
}

func (t Timeslot) String() string {
	if !t.Valid() {
		return "unknown"
	}
	return timeslots[t].name
}

// Clock renders a 24-hour wall-clock time as "h:mmam"/"h:mmpm".
// Hours past midnight wrap around.
func Clock(hour, minute int) string {
	hour %= 24
	suffix := "am"
	if hour >= 12 {
		suffix = "pm"
	}
	h := hour % 12
	if h == 0 {
		h = 12
	}
	return fmt.Sprintf("%d:%02d%s", h, minute, suffix)
}
