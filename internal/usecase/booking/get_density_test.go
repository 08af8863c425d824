package booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nubarber/booking-api/internal/domain/schedule"
	"github.com/nubarber/booking-api/internal/models"
)

func TestGetDensity_LevelsAttached(t *testing.T) {
	repo := newFakeRepo()
	repo.staff = []models.StaffMember{
		{ID: 2, ShopID: 10, Availability: []models.WeeklyAvailability{
			{Day: "Monday", IsWorking: true, StartTime: "09:00", EndTime: "10:00"},
		}},
	}

	// Two bookings in a two-slot day: 100% load.
	monday := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	for _, hm := range []time.Duration{9 * time.Hour, 9*time.Hour + 30*time.Minute} {
		require.NoError(t, repo.CreateBooking(context.Background(), &models.Booking{
			ShopID:      10,
			BookingTime: monday.Add(hm),
			Status:      "pending",
		}))
	}

	uc := NewGetDensity(repo)
	load, err := uc.Execute(context.Background(), 10)
	require.NoError(t, err)

	require.Contains(t, load, "2026-03-02")
	assert.InDelta(t, 100, load["2026-03-02"].Density, 0.0001)
	assert.Equal(t, schedule.LoadHigh, load["2026-03-02"].Level)
}

func TestGetDensity_EmptyShop(t *testing.T) {
	uc := NewGetDensity(newFakeRepo())

	load, err := uc.Execute(context.Background(), 10)
	require.NoError(t, err)
	assert.Empty(t, load)
}

func TestGetAvailability_UsesServiceDuration(t *testing.T) {
	repo := newFakeRepo()
	repo.services = []models.Service{
		{ID: 1, ShopID: 10, Name: "Beard Trim", DurationMin: 60, Price: 15, Active: true},
	}
	repo.staff = []models.StaffMember{
		{ID: 2, ShopID: 10, Availability: []models.WeeklyAvailability{
			{Day: "Monday", IsWorking: true, StartTime: "09:00", EndTime: "10:30"},
		}},
	}

	uc := NewGetAvailability(repo)
	slots, err := uc.Execute(context.Background(), schedule.AvailabilityInput{
		ShopID:    10,
		StaffID:   2,
		ServiceID: 1,
		Date:      time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"09:00", "09:30"}, slots)
}
