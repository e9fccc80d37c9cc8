package models

import (
	"time"

	"ibs/src/types"
)

type Booking struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	UserID    uint      `gorm:"not null" json:"user_id,omitempty"`
	StartDate time.Time `gorm:"type:date;not null" json:"start_date,omitempty"`
	EndDate   time.Time `gorm:"type:date;not null" json:"end_date,omitempty"`
	Status    string    `gorm:"default:'PENDING_APPROVAL'" json:"status,omitempty"`

	User  *User         `gorm:"foreignKey:user_id" json:"user,omitempty"`
	Items []BookingItem `gorm:"foreignKey:booking_id;constraint:OnDelete:CASCADE" json:"items,omitempty"`

	types.Timestamps
}

type BookingItem struct {
	ID        uint `gorm:"primarykey" json:"id"`
	BookingID uint `gorm:"not null" json:"booking_id,omitempty"`
	ItemID    uint `gorm:"not null" json:"item_id,omitempty"`
	Quantity  uint `gorm:"not null" json:"quantity,omitempty"`

	Booking *Booking `gorm:"foreignKey:booking_id" json:"booking,omitempty"`
	Item    *Item    `gorm:"foreignKey:item_id;constraint:OnDelete:CASCADE" json:"item,omitempty"`

	types.Timestamps
}

// Overlaps reports whether the booking's [StartDate, EndDate] interval
// touches the given closed interval. Boundary dates count as overlapping.
func (b Booking) Overlaps(start, end time.Time) bool {
	return !(b.EndDate.Before(start) || end.Before(b.StartDate))
}
