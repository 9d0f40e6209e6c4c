package organizer

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"eventcal/internal/calendar"
	"eventcal/internal/clock"
	appLog "eventcal/internal/log"
	"eventcal/internal/metrics"
	"eventcal/internal/model"
)

// Organizer reads commands, applies them to a Calendar and renders the
// result as text. It is not safe for concurrent use.
type Organizer struct {
	cal   *calendar.Calendar
	rules calendar.Rules
	clock clock.Clock
	out   io.Writer
	stats *metrics.Metrics
}

type Option func(*Organizer)

func WithRules(r calendar.Rules) Option {
	return func(o *Organizer) { o.rules = r }
}

func WithClock(c clock.Clock) Option {
	return func(o *Organizer) { o.clock = c }
}

func WithOutput(w io.Writer) Option {
	return func(o *Organizer) { o.out = w }
}

// WithMetrics counts commands, rejections and the stored event total.
func WithMetrics(m *metrics.Metrics) Option {
	return func(o *Organizer) { o.stats = m }
}

func New(cal *calendar.Calendar, opts ...Option) *Organizer {
	o := &Organizer{
		cal:   cal,
		rules: calendar.DefaultRules(),
		clock: clock.NewSystem(),
		out:   os.Stdout,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Calendar exposes the registry the organizer drives.
func (o *Organizer) Calendar() *calendar.Calendar {
	return o.cal
}

// Admit validates e against the rules at the current moment and stores it.
func (o *Organizer) Admit(e model.Event) error {
	if err := o.rules.CheckEvent(e, o.clock.Now()); err != nil {
		return err
	}
	if !o.cal.Add(e) {
		return calendar.ErrDuplicate
	}
	return nil
}

// admitRequest is Admit for a parsed A line, whose duration may not be a
// number.
func (o *Organizer) admitRequest(req Request) error {
	if req.durationErr == nil {
		return o.Admit(req.Event())
	}
	if err := o.rules.CheckSchedule(req.Event(), o.clock.Now()); err != nil {
		return err
	}
	return req.durationErr
}

// Withdraw removes the stored event with e's date, timeslot and room.
// Only the date's calendar validity is checked: unlike Admit, the future
// and horizon rules do not apply, so an event that has since moved into
// the past can still be withdrawn, and a date beyond the horizon is simply
// not found.
func (o *Organizer) Withdraw(e model.Event) error {
	if !e.Date.IsValid() {
		return &calendar.DateError{Date: e.Date, Err: calendar.ErrInvalidDate}
	}
	if !e.Start.Valid() {
		return calendar.ErrInvalidTimeslot
	}
	if !e.Location.Valid() {
		return calendar.ErrInvalidLocation
	}
	if !o.cal.Remove(e) {
		return calendar.ErrNotFound
	}
	return nil
}

// Seed admits imported candidates one by one. Rejections are logged and
// skipped. It returns the number admitted.
func (o *Organizer) Seed(events []model.Event) int {
	admitted := 0
	for _, e := range events {
		if err := o.Admit(e); err != nil {
			appLog.Warn("seed event rejected", "event", e.Key(), "reason", o.describe(err))
			o.stats.ObserveRejection(reason(err))
			continue
		}
		admitted++
	}
	o.stats.ObserveSeeded(admitted)
	o.stats.SetEvents(o.cal.Count())
	appLog.Info("seed completed", "admitted", admitted, "rejected", len(events)-admitted)
	return admitted
}

// Handle parses and executes one command line and returns its output.
// ErrQuit is returned after Q; every other outcome is reported in the text.
func (o *Organizer) Handle(line string) (string, error) {
	req, err := Parse(line)
	if req.Kind == 0 {
		o.stats.ObserveCommand("unknown")
	} else {
		o.stats.ObserveCommand(req.Token)
	}
	if err != nil {
		appLog.Debug("command rejected", "line", line, "err", err)
		o.stats.ObserveRejection(reason(err))
		return o.describe(err), nil
	}
	return o.Execute(req)
}

// Execute runs a parsed request.
func (o *Organizer) Execute(req Request) (string, error) {
	switch req.Kind {
	case KindAdd:
		e := req.Event()
		if err := o.admitRequest(req); err != nil {
			appLog.Debug("add rejected", "event", e.Key(), "err", err)
			o.stats.ObserveRejection(reason(err))
			return o.describe(err), nil
		}
		appLog.Debug("event admitted", "event", e.Key(), "count", o.cal.Count())
		o.stats.SetEvents(o.cal.Count())
		return "Event added to the calendar.", nil
	case KindRemove:
		e := req.Event()
		if err := o.Withdraw(e); err != nil {
			appLog.Debug("remove rejected", "event", e.Key(), "err", err)
			o.stats.ObserveRejection(reason(err))
			return o.describe(err), nil
		}
		appLog.Debug("event removed", "event", e.Key(), "count", o.cal.Count())
		o.stats.SetEvents(o.cal.Count())
		return "Event has been removed from the calendar!", nil
	case KindPrint:
		return o.listing(calendar.OrderCanonical), nil
	case KindPrintByDate:
		return o.listing(calendar.OrderDate), nil
	case KindPrintByCampus:
		return o.listing(calendar.OrderCampus), nil
	case KindPrintByDepartment:
		return o.listing(calendar.OrderDepartment), nil
	case KindQuit:
		return "Event Organizer terminated.", ErrQuit
	default:
		return o.describe(&TokenError{Token: req.Token, Err: ErrUnknownCommand}), nil
	}
}

var headers = map[calendar.Order]string{
	calendar.OrderCanonical:  "* Event calendar *",
	calendar.OrderDate:       "* Event calendar by event date and start time *",
	calendar.OrderCampus:     "* Event calendar by campus and building *",
	calendar.OrderDepartment: "* Event calendar by department *",
}

func (o *Organizer) listing(order calendar.Order) string {
	events, err := o.cal.List(order)
	if err != nil {
		return o.describe(err)
	}
	var b strings.Builder
	b.WriteString(headers[order])
	for _, e := range events {
		b.WriteString("\n")
		b.WriteString(e.String())
	}
	b.WriteString("\n* end of event calendar *")
	return b.String()
}

// Run reads commands from in until Q, end of input, or ctx is canceled.
// Output lines go to the organizer's writer. Lines are read on a separate
// goroutine so cancellation does not wait for a pending read; that reader
// exits once in returns.
func (o *Organizer) Run(ctx context.Context, in io.Reader) error {
	fmt.Fprintln(o.out, "Event organizer running...")
	fmt.Fprintln(o.out)

	done := make(chan struct{})
	defer close(done)
	lines, readErr := readLines(in, done)

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		var line string
		select {
		case <-ctx.Done():
			return ctx.Err()
		case l, ok := <-lines:
			if !ok {
				if err := <-readErr; err != nil {
					return fmt.Errorf("read commands: %w", err)
				}
				appLog.Info("command input closed", "events", o.cal.Count())
				return nil
			}
			line = strings.TrimSpace(l)
		}
		if line == "" {
			continue
		}
		text, err := o.Handle(line)
		if text != "" {
			fmt.Fprintln(o.out, text)
		}
		if errors.Is(err, ErrQuit) {
			appLog.Info("organizer terminated by command", "events", o.cal.Count())
			return nil
		}
	}
}

// readLines scans in on its own goroutine. The error channel receives the
// scanner's result before lines is closed at end of input.
func readLines(in io.Reader, done <-chan struct{}) (<-chan string, <-chan error) {
	lines := make(chan string)
	errc := make(chan error, 1)
	go func() {
		defer close(lines)
		sc := bufio.NewScanner(in)
		for sc.Scan() {
			select {
			case lines <- sc.Text():
			case <-done:
				return
			}
		}
		errc <- sc.Err()
	}()
	return lines, errc
}
