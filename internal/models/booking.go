package models

import "time"

type Booking struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	ShopID uint `gorm:"index" json:"shop_id"`

	StaffID   uint   `json:"staff_id"`
	StaffName string `gorm:"size:100" json:"staff_name"`

	ServiceID   uint   `json:"service_id"`
	ServiceName string `gorm:"size:100" json:"service_name"`

	BookingTime time.Time `json:"booking_time"`

	CustomerName  string  `gorm:"size:100" json:"customer_name"`
	CustomerEmail string  `gorm:"size:100" json:"customer_email"`
	Price         float64 `json:"price"`

	Status string `gorm:"size:10;default:'pending'" json:"status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
