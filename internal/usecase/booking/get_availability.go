package booking

import (
	"context"

	"github.com/nubarber/booking-api/internal/domain/schedule"
	"github.com/nubarber/booking-api/internal/httperr"
)

type GetAvailability struct {
	repo schedule.Repository
}

func NewGetAvailability(repo schedule.Repository) *GetAvailability {
	return &GetAvailability{repo: repo}
}

func (uc *GetAvailability) Execute(
	ctx context.Context,
	in schedule.AvailabilityInput,
) ([]string, error) {

	service, err := uc.repo.GetService(ctx, in.ShopID, in.ServiceID)
	if err != nil {
		return nil, httperr.ErrBusiness("service_not_found")
	}

	staff, err := uc.repo.GetStaffMember(ctx, in.ShopID, in.StaffID)
	if err != nil {
		return nil, httperr.ErrBusiness("staff_not_found")
	}

	timeOff, err := uc.repo.ListTimeOffForStaff(ctx, in.ShopID, in.StaffID)
	if err != nil {
		return nil, err
	}

	return schedule.GenerateSlots(
		staff.Availability,
		timeOff,
		in.Date,
		service.DurationMin,
	), nil
}
