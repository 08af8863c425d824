package models

import "time"

// TimeOffEntry blocks a staff member's whole calendar day. Only the date
// portion of Date is meaningful.
type TimeOffEntry struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	ShopID uint `gorm:"index" json:"shop_id"`

	StaffID   uint      `json:"staff_id"`
	StaffName string    `gorm:"size:100" json:"staff_name"`
	Date      time.Time `json:"date"`
	Reason    string    `gorm:"size:255" json:"reason"`

	CreatedAt time.Time `json:"created_at"`
}
