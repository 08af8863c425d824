package schedule

import "time"

type AvailabilityInput struct {
	ShopID    uint
	StaffID   uint
	ServiceID uint
	Date      time.Time
}
