package calendar

import (
	"errors"

	"eventcal/internal/model"
)

var (
	ErrInvalidDate     = errors.New("invalid calendar date")
	ErrNotFuture       = errors.New("event date must be a future date")
	ErrBeyondHorizon   = errors.New("event date is beyond the scheduling horizon")
	ErrInvalidTimeslot = errors.New("invalid timeslot")
	ErrInvalidLocation = errors.New("invalid location")
	ErrInvalidContact  = errors.New("invalid contact information")
	ErrInvalidDuration = errors.New("event duration out of range")
	ErrDuplicate       = errors.New("event is already on the calendar")
	ErrNotFound        = errors.New("event is not on the calendar")
	ErrEmpty           = errors.New("event calendar is empty")
)

// DateError ties a date rejection to the offending date.
type DateError struct {
	Date model.Date
	Err  error
}

func (e *DateError) Error() string {
	return e.Date.String() + ": " + e.Err.Error()
}

func (e *DateError) Unwrap() error {
	return e.Err
}
