package dto

import "time"

type BookingListDTO struct {
	ID           uint      `json:"id"`
	BookingTime  time.Time `json:"booking_time"`
	Status       string    `json:"status"`
	CustomerName string    `json:"customer_name"`
	ServiceName  string    `json:"service_name"`
	StaffName    string    `json:"staff_name"`
	Price        float64   `json:"price"`
}
