package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nubarber/booking-api/internal/models"
)

func staffWorking(n int, startHM, endHM string) []models.StaffMember {
	staff := make([]models.StaffMember, 0, n)
	for i := 0; i < n; i++ {
		staff = append(staff, models.StaffMember{
			ID:           uint(i + 1),
			Availability: fullWeek(startHM, endHM),
		})
	}
	return staff
}

func bookingAt(ts time.Time) models.Booking {
	return models.Booking{BookingTime: ts}
}

func TestComputeDensity_Basic(t *testing.T) {
	// Monday, two staff, 09:00-17:00 each: 16 slots per head, 32 total.
	bookings := []models.Booking{
		bookingAt(monday.Add(9 * time.Hour)),
		bookingAt(monday.Add(10 * time.Hour)),
	}

	density := ComputeDensity(bookings, staffWorking(2, "09:00", "17:00"))

	require.Len(t, density, 1)
	assert.InDelta(t, 6.25, density["2026-03-02"], 0.0001)
}

func TestComputeDensity_DaysWithoutBookingsAbsent(t *testing.T) {
	bookings := []models.Booking{
		bookingAt(monday.Add(9 * time.Hour)),
	}

	density := ComputeDensity(bookings, staffWorking(1, "09:00", "17:00"))

	require.Len(t, density, 1)
	_, ok := density["2026-03-03"]
	assert.False(t, ok)
}

func TestComputeDensity_NoWorkingStaffYieldsZero(t *testing.T) {
	// Saturday bookings exist but nobody works Saturdays: the day still
	// appears, pinned at zero.
	saturday := time.Date(2026, 3, 7, 10, 0, 0, 0, time.UTC)
	bookings := []models.Booking{bookingAt(saturday)}

	density := ComputeDensity(bookings, staffWorking(2, "09:00", "17:00"))

	require.Contains(t, density, "2026-03-07")
	assert.Zero(t, density["2026-03-07"])
}

func TestComputeDensity_MultipleDays(t *testing.T) {
	tuesday := monday.AddDate(0, 0, 1)

	bookings := []models.Booking{
		bookingAt(monday.Add(9 * time.Hour)),
		bookingAt(monday.Add(10 * time.Hour)),
		bookingAt(tuesday.Add(11 * time.Hour)),
	}

	density := ComputeDensity(bookings, staffWorking(1, "09:00", "17:00"))

	require.Len(t, density, 2)
	assert.InDelta(t, 12.5, density["2026-03-02"], 0.0001)
	assert.InDelta(t, 6.25, density["2026-03-03"], 0.0001)
}

func TestComputeDensity_EmptyBookings(t *testing.T) {
	density := ComputeDensity(nil, staffWorking(3, "09:00", "17:00"))
	assert.Empty(t, density)
}

func TestLevelFor(t *testing.T) {
	assert.Equal(t, LoadHigh, LevelFor(100))
	assert.Equal(t, LoadHigh, LevelFor(75))
	assert.Equal(t, LoadMedium, LevelFor(74.9))
	assert.Equal(t, LoadMedium, LevelFor(40))
	assert.Equal(t, LoadLow, LevelFor(39.9))
	assert.Equal(t, LoadLow, LevelFor(0.1))
	assert.Equal(t, LoadNone, LevelFor(0))
}
