package models

import "time"

type StaffMember struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	ShopID uint `gorm:"index" json:"shop_id"`

	Name      string `gorm:"size:100;not null" json:"name"`
	Title     string `gorm:"size:100" json:"title"`
	AvatarURL string `gorm:"size:255" json:"avatar_url"`

	Availability []WeeklyAvailability `gorm:"foreignKey:StaffID;constraint:OnDelete:CASCADE;" json:"availability"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// WeeklyAvailability holds one weekday window of a staff member's recurring
// schedule. At most one row exists per staff member per weekday; the whole
// set is replaced on save. Start/end are wall-clock "HH:MM" strings and are
// meaningless when IsWorking is false.
type WeeklyAvailability struct {
	ID      uint `gorm:"primaryKey" json:"-"`
	StaffID uint `gorm:"uniqueIndex:idx_staff_day" json:"-"`

	Day       string `gorm:"size:10;uniqueIndex:idx_staff_day" json:"day"`
	IsWorking bool   `json:"is_working"`
	StartTime string `gorm:"size:5" json:"start_time"`
	EndTime   string `gorm:"size:5" json:"end_time"`
}
