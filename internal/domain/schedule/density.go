package schedule

import (
	"time"

	"github.com/nubarber/booking-api/internal/models"
)

// LoadLevel is the calendar heatmap marker derived from a day's density.
type LoadLevel string

const (
	LoadHigh   LoadLevel = "high"
	LoadMedium LoadLevel = "medium"
	LoadLow    LoadLevel = "low"
	LoadNone   LoadLevel = "none"
)

// ComputeDensity maps each calendar day that has at least one booking to a
// load percentage: bookings that day divided by the theoretical slot count of
// every staff member working that weekday. Days without bookings are absent
// from the result. The date key is taken straight from the stored booking
// timestamp; no timezone conversion happens here.
func ComputeDensity(
	bookings []models.Booking,
	staff []models.StaffMember,
) map[string]float64 {

	daily := map[string]int{}
	for _, b := range bookings {
		daily[b.BookingTime.Format("2006-01-02")]++
	}

	density := make(map[string]float64, len(daily))
	for dayKey, count := range daily {
		day, err := time.Parse("2006-01-02", dayKey)
		if err != nil {
			continue
		}
		dayName := day.Weekday().String()

		totalSlots := 0
		for _, member := range staff {
			entry := dayEntry(member.Availability, dayName)
			if entry == nil || !entry.IsWorking {
				continue
			}
			totalSlots += windowMinutes(entry.StartTime, entry.EndTime) / SlotStepMinutes
		}

		if totalSlots > 0 {
			density[dayKey] = float64(count) / float64(totalSlots) * 100
		} else {
			density[dayKey] = 0
		}
	}

	return density
}

// LevelFor buckets a density percentage into its heatmap marker. The
// thresholds are fixed: >=75 high, >=40 medium, >0 low, otherwise none.
func LevelFor(density float64) LoadLevel {
	switch {
	case density >= 75:
		return LoadHigh
	case density >= 40:
		return LoadMedium
	case density > 0:
		return LoadLow
	default:
		return LoadNone
	}
}

func windowMinutes(startHM, endHM string) int {
	start, err := time.Parse("15:04", startHM)
	if err != nil {
		return 0
	}
	end, err := time.Parse("15:04", endHM)
	if err != nil {
		return 0
	}
	return int(end.Sub(start).Minutes())
}
