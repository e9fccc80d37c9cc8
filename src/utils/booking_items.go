package utils

import (
	"ibs/src/db"
	"ibs/src/models"
	"ibs/src/types"

	"gorm.io/gorm"
)

func GetAllBookingItems() ([]models.BookingItem, error) {
	db := db.GetDb()
	var items []models.BookingItem
	err := db.
		Model(&models.BookingItem{}).
		Preload("Item").
		Find(&items).
		Error
	return items, err
}

func GetBookingItem(id uint) (*models.BookingItem, error) {
	db := db.GetDb()
	var item models.BookingItem
	err := db.
		Model(&models.BookingItem{}).
		Where(&models.BookingItem{ID: id}).
		Preload("Item").
		Preload("Booking").
		First(&item).
		Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func GetBookingItemsByBooking(bookingId uint) ([]models.BookingItem, error) {
	db := db.GetDb()
	var items []models.BookingItem
	err := db.
		Model(&models.BookingItem{}).
		Where(&models.BookingItem{BookingID: bookingId}).
		Preload("Item").
		Find(&items).
		Error
	return items, err
}

// GetBookingItemsByUser returns every line item across all of one user's
// bookings, joined through the bookings table.
func GetBookingItemsByUser(userId uint) ([]models.BookingItem, error) {
	db := db.GetDb()
	var items []models.BookingItem
	err := db.
		Model(&models.BookingItem{}).
		Joins("JOIN bookings ON bookings.id = booking_items.booking_id").
		Where("bookings.user_id = ?", userId).
		Preload("Item").
		Preload("Booking").
		Find(&items).
		Error
	return items, err
}

func CreateBookingItem(params *types.CreateBookingItemRequestBody) (*models.BookingItem, error) {
	db := db.GetDb()
	row := models.BookingItem{
		BookingID: params.BookingID,
		ItemID:    params.ItemID,
		Quantity:  params.Quantity,
	}
	err := db.Transaction(func(tx *gorm.DB) error {
		var booking models.Booking
		if err := tx.
			Model(&models.Booking{}).
			Where(&models.Booking{ID: params.BookingID}).
			First(&booking).
			Error; err != nil {
			return err
		}
		return tx.Create(&row).Error
	})
	if err != nil {
		return nil, err
	}
	return GetBookingItem(row.ID)
}

func CreateBookingItemsBulk(bookingId uint, lines []types.BookingLine) ([]models.BookingItem, error) {
	db := db.GetDb()
	err := db.Transaction(func(tx *gorm.DB) error {
		var booking models.Booking
		if err := tx.
			Model(&models.Booking{}).
			Where(&models.Booking{ID: bookingId}).
			First(&booking).
			Error; err != nil {
			return err
		}
		return createLines(tx, bookingId, lines)
	})
	if err != nil {
		return nil, err
	}
	return GetBookingItemsByBooking(bookingId)
}

func UpdateBookingItem(id uint, params *types.UpdateBookingItemRequestBody) (*models.BookingItem, error) {
	if params.ItemID == nil && params.Quantity == nil {
		return nil, ErrNoFields
	}
	updates := map[string]any{}
	if params.ItemID != nil {
		updates["item_id"] = *params.ItemID
	}
	if params.Quantity != nil {
		updates["quantity"] = *params.Quantity
	}
	db := db.GetDb()
	err := db.Transaction(func(tx *gorm.DB) error {
		var row models.BookingItem
		if err := tx.
			Model(&models.BookingItem{}).
			Where(&models.BookingItem{ID: id}).
			First(&row).
			Error; err != nil {
			return err
		}
		return tx.
			Model(&models.BookingItem{}).
			Where(&models.BookingItem{ID: id}).
			Updates(updates).
			Error
	})
	if err != nil {
		return nil, err
	}
	return GetBookingItem(id)
}

func UpdateBookingItemQuantity(id uint, quantity uint) (*models.BookingItem, error) {
	params := types.UpdateBookingItemRequestBody{Quantity: &quantity}
	return UpdateBookingItem(id, &params)
}

func DeleteBookingItem(id uint) error {
	db := db.GetDb()
	return db.Transaction(func(tx *gorm.DB) error {
		var row models.BookingItem
		if err := tx.
			Model(&models.BookingItem{}).
			Where(&models.BookingItem{ID: id}).
			First(&row).
			Error; err != nil {
			return err
		}
		return tx.Delete(&models.BookingItem{}, id).Error
	})
}

func DeleteBookingItemsByBooking(bookingId uint) error {
	db := db.GetDb()
	return db.
		Where("booking_id = ?", bookingId).
		Delete(&models.BookingItem{}).
		Error
}

// AuthorizeLineAccess resolves the line's parent booking and applies the
// same owner-or-admin rule as bookings.
func AuthorizeLineAccess(email string, role types.UserRole, line *models.BookingItem) error {
	if role.IsAdmin() {
		return nil
	}
	booking := line.Booking
	if booking == nil {
		loaded, err := GetBooking(line.BookingID)
		if err != nil {
			return err
		}
		booking = loaded
	}
	return AuthorizeBookingAccess(email, role, booking)
}
