package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nubarber/booking-api/internal/models"
)

func fullWeek(startHM, endHM string) []models.WeeklyAvailability {
	days := []string{
		"Sunday", "Monday", "Tuesday", "Wednesday",
		"Thursday", "Friday", "Saturday",
	}
	out := make([]models.WeeklyAvailability, 0, len(days))
	for _, d := range days {
		working := d != "Saturday" && d != "Sunday"
		entry := models.WeeklyAvailability{Day: d, IsWorking: working}
		if working {
			entry.StartTime = startHM
			entry.EndTime = endHM
		}
		out = append(out, entry)
	}
	return out
}

// 2026-03-02 is a Monday.
var monday = time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

func TestGenerateSlots_FullDay(t *testing.T) {
	slots := GenerateSlots(fullWeek("09:00", "17:00"), nil, monday, 30)

	require.Len(t, slots, 16)
	assert.Equal(t, "09:00", slots[0])
	assert.Equal(t, "09:30", slots[1])
	assert.Equal(t, "16:30", slots[15])
}

func TestGenerateSlots_LongServiceStillStepsOnHalfHours(t *testing.T) {
	slots := GenerateSlots(fullWeek("09:00", "10:00"), nil, monday, 45)

	// Only 09:00 fits: a 45-minute service starting 09:30 would end 10:15.
	require.Len(t, slots, 1)
	assert.Equal(t, "09:00", slots[0])
}

func TestGenerateSlots_DurationLongerThanWindow(t *testing.T) {
	slots := GenerateSlots(fullWeek("09:00", "10:00"), nil, monday, 90)
	assert.Empty(t, slots)
}

func TestGenerateSlots_LastSlotTouchesClose(t *testing.T) {
	slots := GenerateSlots(fullWeek("09:00", "10:00"), nil, monday, 60)

	// 09:00 ends exactly at close and is allowed.
	require.Len(t, slots, 1)
	assert.Equal(t, "09:00", slots[0])
}

func TestGenerateSlots_NonWorkingDay(t *testing.T) {
	saturday := time.Date(2026, 3, 7, 0, 0, 0, 0, time.UTC)
	slots := GenerateSlots(fullWeek("09:00", "17:00"), nil, saturday, 30)
	assert.Empty(t, slots)
}

func TestGenerateSlots_MissingDayEntry(t *testing.T) {
	availability := []models.WeeklyAvailability{
		{Day: "Tuesday", IsWorking: true, StartTime: "09:00", EndTime: "17:00"},
	}
	slots := GenerateSlots(availability, nil, monday, 30)
	assert.Empty(t, slots)
}

func TestGenerateSlots_TimeOffBlocksWholeDay(t *testing.T) {
	timeOff := []models.TimeOffEntry{
		{StaffID: 1, Date: monday.Add(5 * time.Hour)},
	}
	slots := GenerateSlots(fullWeek("09:00", "17:00"), timeOff, monday, 30)
	assert.Empty(t, slots)
}

func TestGenerateSlots_TimeOffOtherDayIgnored(t *testing.T) {
	timeOff := []models.TimeOffEntry{
		{StaffID: 1, Date: monday.AddDate(0, 0, 1)},
	}
	slots := GenerateSlots(fullWeek("09:00", "17:00"), timeOff, monday, 30)
	assert.Len(t, slots, 16)
}

func TestGenerateSlots_MalformedClock(t *testing.T) {
	availability := []models.WeeklyAvailability{
		{Day: "Monday", IsWorking: true, StartTime: "9am", EndTime: "17:00"},
	}
	slots := GenerateSlots(availability, nil, monday, 30)
	assert.Empty(t, slots)
}

func TestGenerateSlots_AllSlotsEndWithinWindow(t *testing.T) {
	slots := GenerateSlots(fullWeek("08:15", "12:05"), nil, monday, 30)

	end, err := time.Parse("15:04", "12:05")
	require.NoError(t, err)

	for _, s := range slots {
		start, err := time.Parse("15:04", s)
		require.NoError(t, err)
		assert.False(t, start.Add(30*time.Minute).After(end), "slot %s overruns the window", s)
	}
	require.NotEmpty(t, slots)
	assert.Equal(t, "08:15", slots[0])
}

func TestSameDay(t *testing.T) {
	a := time.Date(2026, 3, 2, 23, 59, 0, 0, time.UTC)
	b := time.Date(2026, 3, 2, 0, 1, 0, 0, time.UTC)
	c := time.Date(2026, 3, 3, 0, 1, 0, 0, time.UTC)

	assert.True(t, SameDay(a, b))
	assert.False(t, SameDay(a, c))
}
