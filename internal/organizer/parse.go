package organizer

import (
	"strconv"
	"strings"

	"eventcal/internal/model"
)

// Kind identifies a command.
type Kind int

const (
	KindAdd Kind = iota + 1
	KindRemove
	KindPrint
	KindPrintByDate
	KindPrintByCampus
	KindPrintByDepartment
	KindQuit
)

var kinds = map[string]Kind{
	"A":  KindAdd,
	"R":  KindRemove,
	"P":  KindPrint,
	"PE": KindPrintByDate,
	"PC": KindPrintByCampus,
	"PD": KindPrintByDepartment,
	"Q":  KindQuit,
}

// Request is one parsed command line. Lookups that fail (timeslot, room,
// department) leave the zero value so the admission rules report them in
// their usual order.
type Request struct {
	Kind  Kind
	Token string

	Date       model.Date
	Timeslot   model.Timeslot
	Location   model.Location
	Department model.Department
	Email      string

	// DurationToken is the raw duration argument of A. Duration holds its
	// value when it is numeric.
	DurationToken string
	Duration      int
	durationErr   error
}

// Event builds the candidate event an A or R request describes.
func (r Request) Event() model.Event {
	return model.Event{
		Date:     r.Date,
		Start:    r.Timeslot,
		Location: r.Location,
		Contact:  model.Contact{Department: r.Department, Email: r.Email},
		Duration: r.Duration,
	}
}

// Parse tokenizes a command line on whitespace. Command tokens are
// case-sensitive; arguments beyond those a command needs are ignored.
func Parse(line string) (Request, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return Request{}, &TokenError{Token: line, Err: ErrUnknownCommand}
	}

	req := Request{Token: fields[0]}
	kind, ok := kinds[fields[0]]
	if !ok {
		return req, &TokenError{Token: fields[0], Err: ErrUnknownCommand}
	}
	req.Kind = kind
	args := fields[1:]

	switch kind {
	case KindAdd:
		if len(args) < 6 {
			return req, &TokenError{Token: req.Token, Err: ErrMissingArguments}
		}
		if err := req.parseSlot(args[:3]); err != nil {
			return req, err
		}
		req.Department, _ = model.ParseDepartment(args[3])
		req.Email = args[4]
		// A non-numeric duration is reported at the duration step of
		// admission, after every other rule has passed.
		req.DurationToken = args[5]
		if n, err := strconv.Atoi(args[5]); err == nil {
			req.Duration = n
		} else {
			req.durationErr = &TokenError{Token: args[5], Err: ErrMalformedDuration}
		}
	case KindRemove:
		if len(args) < 3 {
			return req, &TokenError{Token: req.Token, Err: ErrMissingArguments}
		}
		if err := req.parseSlot(args[:3]); err != nil {
			return req, err
		}
	}
	return req, nil
}

// parseSlot reads the date, timeslot and room code shared by A and R.
func (r *Request) parseSlot(args []string) error {
	d, err := model.ParseDate(args[0])
	if err != nil {
		return &TokenError{Token: args[0], Err: ErrMalformedDate}
	}
	r.Date = d
	r.Timeslot, _ = model.ParseTimeslot(args[1])
	r.Location, _ = model.ParseLocation(args[2])
	return nil
}
