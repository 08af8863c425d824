package models

import "time"

type Shop struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"size:100;not null" json:"name"`
	Slug        string `gorm:"size:100;uniqueIndex;not null" json:"slug"`
	Address     string `gorm:"size:255" json:"address"`
	Headline    string `gorm:"size:150" json:"headline"`
	Description string `gorm:"size:500" json:"description"`

	// Region selects which database the shop's tenant data lives in.
	Region string `gorm:"size:10;default:'us'" json:"region"`

	StripeAccountID string `gorm:"size:64" json:"-"`
	StripeConnected bool   `gorm:"default:false" json:"stripe_connected"`

	GMBRefreshToken string `gorm:"size:512" json:"-"`
	GMBConnected    bool   `gorm:"default:false" json:"gmb_connected"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
