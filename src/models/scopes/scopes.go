package scopes

import (
	"ibs/src/types"

	"gorm.io/gorm"
)

func WithID(id uint) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("id = ?", id)
	}
}

// HoldingStock keeps only bookings whose status claims stock. Pending
// bookings do not hold units.
func HoldingStock(db *gorm.DB) *gorm.DB {
	return db.Where("status <> ?", string(types.BOOKING_PENDING_APPROVAL))
}

// OverlappingRange keeps bookings whose closed date interval touches the
// given one. Boundary dates count.
func OverlappingRange(start, end any) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("NOT (end_date < ? OR ? < start_date)", start, end)
	}
}
