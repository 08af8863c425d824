package schedule

import (
	"time"

	"github.com/nubarber/booking-api/internal/models"
)

// SlotStepMinutes is the spacing between candidate start times. It is fixed
// regardless of service duration: a 45-minute service still only starts on
// :00/:30 boundaries, so the tail of a window may go unused.
const SlotStepMinutes = 30

// GenerateSlots returns the bookable start times ("HH:MM", ascending) for one
// staff member on one date, for a service of the given duration. A time-off
// entry on that date, a missing weekday entry, or a non-working weekday all
// yield an empty sequence.
func GenerateSlots(
	availability []models.WeeklyAvailability,
	timeOff []models.TimeOffEntry,
	date time.Time,
	durationMin int,
) []string {

	for _, off := range timeOff {
		if SameDay(off.Date, date) {
			return []string{}
		}
	}

	day := dayEntry(availability, date.Weekday().String())
	if day == nil || !day.IsWorking {
		return []string{}
	}

	start, err := clockOn(date, day.StartTime)
	if err != nil {
		return []string{}
	}
	end, err := clockOn(date, day.EndTime)
	if err != nil {
		return []string{}
	}

	duration := time.Duration(durationMin) * time.Minute
	step := SlotStepMinutes * time.Minute

	slots := []string{}
	for cur := start; !cur.Add(duration).After(end); cur = cur.Add(step) {
		slots = append(slots, cur.Format("15:04"))
	}

	return slots
}

// SameDay reports whether two instants fall on the same calendar day,
// ignoring time of day.
func SameDay(a, b time.Time) bool {
	return a.Format("2006-01-02") == b.Format("2006-01-02")
}

func dayEntry(availability []models.WeeklyAvailability, dayName string) *models.WeeklyAvailability {
	for i := range availability {
		if availability[i].Day == dayName {
			return &availability[i]
		}
	}
	return nil
}

// clockOn places a wall-clock "HH:MM" string on the given date.
func clockOn(date time.Time, hm string) (time.Time, error) {
	t, err := time.Parse("15:04", hm)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(
		date.Year(), date.Month(), date.Day(),
		t.Hour(), t.Minute(), 0, 0,
		date.Location(),
	), nil
}
