package ics

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	appLog "eventcal/internal/log"
	"eventcal/internal/model"
)

// ToEvent maps an occurrence onto a candidate event. Fields that do not
// map (an unknown start time, room or department) are left zero so the
// admission rules reject the candidate with the usual reason.
func ToEvent(occ model.Occurrence) model.Event {
	var e model.Event
	e.Date = model.DateOf(occ.Start)
	if ts, ok := model.TimeslotAt(occ.Start.Hour(), occ.Start.Minute()); ok {
		e.Start = ts
	}
	if fields := strings.Fields(occ.Location); len(fields) > 0 {
		if loc, ok := model.ParseLocation(fields[0]); ok {
			e.Location = loc
		}
	}

	email := occ.Organizer
	if len(email) >= len("mailto:") && strings.EqualFold(email[:len("mailto:")], "mailto:") {
		email = email[len("mailto:"):]
	}
	e.Contact.Email = email

	// CATEGORIES wins; otherwise the email local part names the department.
	dept, ok := model.ParseDepartment(strings.TrimSpace(occ.Categories))
	if !ok {
		local, _, _ := strings.Cut(email, "@")
		dept, _ = model.ParseDepartment(local)
	}
	e.Contact.Department = dept

	e.Duration = int(occ.End.Sub(occ.Start) / time.Minute)
	return e
}

// Window returns an expansion config covering now through the last day of
// the booking horizon, in local time.
func Window(now time.Time, months int) ExpandConfig {
	last := model.AddMonths(model.DateOf(now), months)
	return ExpandConfig{
		DisplayLocation: time.Local,
		RangeStart:      now,
		RangeEnd:        last.At(23, 59, now.Location()),
	}
}

// LoadFile reads an iCalendar file and returns one candidate event per
// occurrence inside cfg's window, in file order.
func LoadFile(path string, cfg ExpandConfig) ([]model.Event, error) {
	body, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("ics seed %s: %w", path, err)
	}
	return decode(path, body, cfg)
}

// Load reads a seed from a local path, a file:// URL, or an http(s) feed
// fetched through f.
func Load(ctx context.Context, f *Fetcher, src string, cfg ExpandConfig) ([]model.Event, error) {
	if !IsRemote(src) {
		return LoadFile(strings.TrimPrefix(src, "file://"), cfg)
	}
	res, err := f.Fetch(ctx, src)
	if err != nil {
		return nil, fmt.Errorf("ics seed %s: %w", redactURL(src), err)
	}
	return decode(redactURL(src), res.Body, cfg)
}

func decode(origin string, body []byte, cfg ExpandConfig) ([]model.Event, error) {
	parsed, err := ParseICS(body)
	if err != nil {
		return nil, fmt.Errorf("ics seed %s: %w", origin, err)
	}
	res, err := ExpandOccurrences(parsed, cfg)
	if err != nil {
		return nil, fmt.Errorf("ics seed %s: %w", origin, err)
	}

	events := make([]model.Event, 0, len(res.Occurrences))
	for _, occ := range res.Occurrences {
		events = append(events, ToEvent(occ))
	}
	appLog.Info("ics seed loaded", "source", origin, "vevent_count", len(parsed),
		"candidate_count", len(events), "truncated_count", len(res.TruncatedEvents))
	return events, nil
}
