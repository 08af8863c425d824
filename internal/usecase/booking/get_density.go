package booking

import (
	"context"

	"github.com/nubarber/booking-api/internal/domain/schedule"
)

// DayLoad is one calendar day's heatmap entry.
type DayLoad struct {
	Density float64            `json:"density"`
	Level   schedule.LoadLevel `json:"level"`
}

type GetDensity struct {
	repo schedule.Repository
}

func NewGetDensity(repo schedule.Repository) *GetDensity {
	return &GetDensity{repo: repo}
}

// Execute aggregates every booking of the shop into a per-day load map keyed
// by "YYYY-MM-DD". Days with no bookings do not appear.
func (uc *GetDensity) Execute(
	ctx context.Context,
	shopID uint,
) (map[string]DayLoad, error) {

	bookings, err := uc.repo.ListBookings(ctx, shopID)
	if err != nil {
		return nil, err
	}

	staff, err := uc.repo.ListStaff(ctx, shopID)
	if err != nil {
		return nil, err
	}

	density := schedule.ComputeDensity(bookings, staff)

	out := make(map[string]DayLoad, len(density))
	for day, d := range density {
		out[day] = DayLoad{Density: d, Level: schedule.LevelFor(d)}
	}
	return out, nil
}
