package ics

import (
	"errors"
	"time"

	"github.com/teambition/rrule-go"

	appLog "eventcal/internal/log"
	"eventcal/internal/model"
)

const defaultMaxOccurrencesPerEvent = 500

// ExpandConfig controls how recurrence expansion is performed.
type ExpandConfig struct {
	// DisplayLocation is the zone occurrences are converted to.
	// If nil, time.Local is used.
	DisplayLocation *time.Location

	// RangeStart / RangeEnd define the inclusive window for occurrence starts.
	RangeStart time.Time
	RangeEnd   time.Time

	// MaxOccurrencesPerEvent caps the expansion of a single RRULE.
	// If zero, defaultMaxOccurrencesPerEvent is used.
	MaxOccurrencesPerEvent int
}

// ExpandResult wraps the expanded occurrences and the UIDs whose
// expansion hit the cap.
type ExpandResult struct {
	Occurrences     []model.Occurrence
	TruncatedEvents []string
}

// ExpandOccurrences turns parsed events into concrete occurrences whose
// start falls inside [RangeStart, RangeEnd]. Single events pass through;
// RRULE events are expanded with EXDATEs removed. Output keeps input order,
// and each recurring event's occurrences are chronological.
func ExpandOccurrences(events []ParsedEvent, cfg ExpandConfig) (ExpandResult, error) {
	var result ExpandResult

	if cfg.RangeEnd.Before(cfg.RangeStart) {
		return result, errors.New("expand: RangeEnd is before RangeStart")
	}
	if cfg.DisplayLocation == nil {
		cfg.DisplayLocation = time.Local
	}
	if cfg.MaxOccurrencesPerEvent <= 0 {
		cfg.MaxOccurrencesPerEvent = defaultMaxOccurrencesPerEvent
	}

	for _, ev := range events {
		if ev.RawRRule == "" {
			if inRange(ev.Start, cfg) {
				result.Occurrences = append(result.Occurrences, makeOccurrence(ev, ev.Start, ev.End, cfg.DisplayLocation))
			}
			continue
		}

		occ, hitCap := expandRecurring(ev, cfg)
		result.Occurrences = append(result.Occurrences, occ...)
		if hitCap {
			result.TruncatedEvents = append(result.TruncatedEvents, ev.UID)
			appLog.Warn("expand: truncated occurrences due to cap", "uid", ev.UID, "cap", cfg.MaxOccurrencesPerEvent)
		}
	}

	return result, nil
}

func expandRecurring(ev ParsedEvent, cfg ExpandConfig) ([]model.Occurrence, bool) {
	r, err := rrule.StrToRRule(ev.RawRRule)
	if err != nil {
		appLog.Error("expand: failed to parse RRULE", err, "uid", ev.UID, "rrule", ev.RawRRule)
		return nil, false
	}
	r.DTStart(ev.Start)

	var set rrule.Set
	set.RRule(r)
	for _, ex := range ev.ExDates {
		set.ExDate(ex.In(ev.Start.Location()))
	}

	starts := set.Between(cfg.RangeStart.In(ev.Start.Location()), cfg.RangeEnd.In(ev.Start.Location()), true)
	hitCap := false
	if len(starts) > cfg.MaxOccurrencesPerEvent {
		starts = starts[:cfg.MaxOccurrencesPerEvent]
		hitCap = true
	}

	length := ev.End.Sub(ev.Start)
	out := make([]model.Occurrence, 0, len(starts))
	for _, s := range starts {
		out = append(out, makeOccurrence(ev, s, s.Add(length), cfg.DisplayLocation))
	}
	return out, hitCap
}

func inRange(t time.Time, cfg ExpandConfig) bool {
	return !t.Before(cfg.RangeStart) && !t.After(cfg.RangeEnd)
}

func makeOccurrence(ev ParsedEvent, start, end time.Time, loc *time.Location) model.Occurrence {
	start = start.In(loc)
	return model.Occurrence{
		UID:        ev.UID,
		Location:   ev.Location,
		Organizer:  ev.Organizer,
		Categories: ev.Categories,
		Start:      start,
		End:        end.In(loc),
	}
}
