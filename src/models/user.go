package models

import (
	"ibs/src/types"
)

type User struct {
	ID          uint   `gorm:"primarykey" json:"id"`
	Email       string `gorm:"uniqueIndex" json:"email,omitempty"`
	DisplayName string `json:"display_name,omitempty"`
	Role        string `gorm:"default:'USER'" json:"role,omitempty"`
	UID         string `json:"uid,omitempty"`
	IsApproved  bool   `gorm:"default:false" json:"is_approved"`

	Bookings []Booking `gorm:"foreignKey:user_id" json:"bookings,omitempty"`

	types.Timestamps
}
