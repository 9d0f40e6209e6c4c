package calendar

import (
	"time"

	"eventcal/internal/model"
)

const (
	DefaultHorizonMonths = 6
	DefaultMinDuration   = 30
	DefaultMaxDuration   = 120
)

// Rules decide whether a candidate event may be admitted.
type Rules struct {
	// Domain is the required contact email suffix.
	Domain string
	// HorizonMonths bounds how far ahead an event may be booked.
	HorizonMonths int
	// MinDuration and MaxDuration bound the event length in minutes, inclusive.
	MinDuration int
	MaxDuration int
}

func DefaultRules() Rules {
	return Rules{
		Domain:        model.InstitutionalDomain,
		HorizonMonths: DefaultHorizonMonths,
		MinDuration:   DefaultMinDuration,
		MaxDuration:   DefaultMaxDuration,
	}
}

// CheckDate requires d to be viable at now: a real date, strictly after
// today and within the horizon. Failures are *DateError.
func (r Rules) CheckDate(d model.Date, now time.Time) error {
	switch {
	case !d.IsValid():
		return &DateError{Date: d, Err: ErrInvalidDate}
	case !d.IsInTheFuture(now):
		return &DateError{Date: d, Err: ErrNotFuture}
	case !d.IsWithinMonthsOf(now, r.HorizonMonths):
		return &DateError{Date: d, Err: ErrBeyondHorizon}
	}
	return nil
}

func (r Rules) CheckContact(c model.Contact) error {
	if !c.IsValidFor(r.Domain) {
		return ErrInvalidContact
	}
	return nil
}

func (r Rules) CheckDuration(minutes int) error {
	if minutes < r.MinDuration || minutes > r.MaxDuration {
		return ErrInvalidDuration
	}
	return nil
}

// CheckEvent runs every admission rule in order: date, timeslot,
// location, contact, duration. The first failure is returned.
func (r Rules) CheckEvent(e model.Event, now time.Time) error {
	if err := r.CheckSchedule(e, now); err != nil {
		return err
	}
	return r.CheckDuration(e.Duration)
}

// CheckSchedule runs every rule that precedes the duration check.
func (r Rules) CheckSchedule(e model.Event, now time.Time) error {
	if err := r.CheckDate(e.Date, now); err != nil {
		return err
	}
	if !e.Start.Valid() {
		return ErrInvalidTimeslot
	}
	if !e.Location.Valid() {
		return ErrInvalidLocation
	}
	return r.CheckContact(e.Contact)
}
