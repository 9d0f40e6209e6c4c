package ics

import (
	"fmt"
	"time"

	ical "github.com/arran4/golang-ical"
	"github.com/google/uuid"

	"eventcal/internal/config"
	appLog "eventcal/internal/log"
	"eventcal/internal/model"
)

const productID = "-//eventcal//Event Organizer//EN"

// UID derives a stable iCalendar UID from the event identity, so the same
// (date, timeslot, room) always exports under the same UID.
func UID(e model.Event) string {
	k := e.Key()
	name := fmt.Sprintf("eventcal:%s/%s/%s", k.Date, k.Start, k.Location.Room())
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte(name)).String()
}

// Export renders events as a VCALENDAR, one VEVENT each, in the given order.
// Wall-clock times are taken in the host's local zone; stamp becomes DTSTAMP.
func Export(events []model.Event, stamp time.Time) []byte {
	cal := ical.NewCalendar()
	cal.SetMethod(ical.MethodPublish)
	cal.SetProductId(productID)

	for _, e := range events {
		ve := cal.AddEvent(UID(e))
		ve.SetDtStampTime(stamp)
		ve.SetStartAt(e.StartsAt(time.Local))
		ve.SetEndAt(e.EndsAt(time.Local))
		ve.SetSummary(e.Contact.Department.Name() + " event")
		ve.SetLocation(e.Location.String())
		ve.SetProperty(ical.ComponentPropertyOrganizer, "mailto:"+e.Contact.Email)
		ve.SetProperty(ical.ComponentPropertyCategories, e.Contact.Department.String())
	}

	return []byte(cal.Serialize())
}

// ExportFile writes Export's output to path atomically with 0600 perms.
func ExportFile(path string, events []model.Event, stamp time.Time) error {
	if err := config.WriteFileAtomic(path, Export(events, stamp)); err != nil {
		return fmt.Errorf("ics export %s: %w", path, err)
	}
	appLog.Info("ics export completed", "path", path, "event_count", len(events))
	return nil
}
