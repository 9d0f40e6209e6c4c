package organizer

import (
	"errors"
	"fmt"

	"eventcal/internal/calendar"
)

// describe turns a rejection into the operator-facing message.
func (o *Organizer) describe(err error) string {
	var de *calendar.DateError
	if errors.As(err, &de) {
		switch {
		case errors.Is(err, calendar.ErrNotFuture):
			return de.Date.String() + ": Event date must be a future date!"
		case errors.Is(err, calendar.ErrBeyondHorizon):
			return fmt.Sprintf("%s: Event date must be within %d months!", de.Date, o.rules.HorizonMonths)
		default:
			return de.Date.String() + ": Invalid calendar date!"
		}
	}

	var te *TokenError
	if errors.As(err, &te) {
		switch {
		case errors.Is(err, ErrMalformedDate):
			return te.Token + ": Invalid calendar date!"
		case errors.Is(err, ErrMalformedDuration):
			return o.durationMessage()
		case errors.Is(err, ErrMissingArguments):
			return "Missing data for command " + te.Token + "."
		default:
			return te.Token + " is not a valid token."
		}
	}

	switch {
	case errors.Is(err, calendar.ErrInvalidTimeslot):
		return "Invalid timeslot!"
	case errors.Is(err, calendar.ErrInvalidLocation):
		return "Invalid location!"
	case errors.Is(err, calendar.ErrInvalidContact):
		return "Invalid contact information!"
	case errors.Is(err, calendar.ErrInvalidDuration):
		return o.durationMessage()
	case errors.Is(err, calendar.ErrDuplicate):
		return "The event is already on the calendar."
	case errors.Is(err, calendar.ErrNotFound):
		return "Cannot remove; event is not in the calendar!"
	case errors.Is(err, calendar.ErrEmpty):
		return "Event calendar is empty!"
	default:
		return err.Error()
	}
}

func (o *Organizer) durationMessage() string {
	return fmt.Sprintf("Event duration must be at least %d minutes and at most %d minutes",
		o.rules.MinDuration, o.rules.MaxDuration)
}

// reason is the metrics label for a rejection.
func reason(err error) string {
	switch {
	case errors.Is(err, calendar.ErrNotFuture):
		return "not_future"
	case errors.Is(err, calendar.ErrBeyondHorizon):
		return "beyond_horizon"
	case errors.Is(err, calendar.ErrInvalidDate), errors.Is(err, ErrMalformedDate):
		return "invalid_date"
	case errors.Is(err, calendar.ErrInvalidTimeslot):
		return "invalid_timeslot"
	case errors.Is(err, calendar.ErrInvalidLocation):
		return "invalid_location"
	case errors.Is(err, calendar.ErrInvalidContact):
		return "invalid_contact"
	case errors.Is(err, calendar.ErrInvalidDuration), errors.Is(err, ErrMalformedDuration):
		return "invalid_duration"
	case errors.Is(err, calendar.ErrDuplicate):
		return "duplicate"
	case errors.Is(err, calendar.ErrNotFound):
		return "not_found"
	case errors.Is(err, ErrMissingArguments):
		return "missing_arguments"
	default:
		return "unknown_command"
	}
}
