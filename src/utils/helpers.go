package utils

import (
	"context"
	"fmt"
	"log"
	"time"

	"ibs/src/config"
	"ibs/src/db"
	"ibs/src/lib"
	"ibs/src/lib/mailer"
	"ibs/src/models"
	"ibs/src/models/scopes"
	"ibs/src/types"

	"gorm.io/gorm"
)

func ParseBookingDate(value string) (time.Time, error) {
	t, err := time.Parse(config.DATE_PARSE_FORMAT, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", value, err)
	}
	return t, nil
}

// StatusTransition describes one status update against the previously
// persisted value.
type StatusTransition struct {
	From    types.BookingStatus
	To      types.BookingStatus
	Changed bool
}

func NewStatusTransition(from, to types.BookingStatus) StatusTransition {
	return StatusTransition{From: from, To: to, Changed: from != to}
}

// ShouldNotify reports whether this transition warrants mailing the booking
// owner. Only actual changes into an approval decision count.
func (t StatusTransition) ShouldNotify() bool {
	if !t.Changed {
		return false
	}
	return t.To == types.BOOKING_RESERVED || t.To == types.BOOKING_CANCELLED
}

// transitionFromUpdates derives the status transition a partial update will
// cause. Updates that do not touch status yield a no-op transition.
func transitionFromUpdates(prior string, updates map[string]any) StatusTransition {
	newStatus, ok := updates["status"].(string)
	if !ok {
		return StatusTransition{From: types.BookingStatus(prior), To: types.BookingStatus(prior)}
	}
	return NewStatusTransition(types.BookingStatus(prior), types.BookingStatus(newStatus))
}

var notifyStatusChange = mailer.NotifyStatusChange

// dispatchStatusNotification mails the booking owner in the background when
// the transition warrants it. Failures are logged and swallowed.
func dispatchStatusNotification(booking *models.Booking, transition StatusTransition) {
	if !transition.ShouldNotify() || booking.User == nil {
		return
	}
	input := &mailer.StatusChangeInput{
		BookingID: booking.ID,
		Recipient: booking.User.Email,
		NewStatus: string(transition.To),
		StartDate: booking.StartDate.Format(config.DATE_PARSE_FORMAT),
		EndDate:   booking.EndDate.Format(config.DATE_PARSE_FORMAT),
		Lines:     booking.Items,
	}
	go func() {
		if err := notifyStatusChange(input); err != nil {
			log.Printf("Could not notify owner of Booking [%d]: %s\n", booking.ID, err.Error())
		}
	}()
}

func UserByEmail(email string) (*models.User, error) {
	db := db.GetDb()
	var user models.User
	err := db.
		Model(&models.User{}).
		Where(&models.User{Email: email}).
		First(&user).
		Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// AuthorizeBookingAccess allows admins through unconditionally; everyone
// else must own the booking. Ownership is resolved by looking up the
// authenticated principal's user row by email.
func AuthorizeBookingAccess(email string, role types.UserRole, booking *models.Booking) error {
	if role.IsAdmin() {
		return nil
	}
	user, err := UserByEmail(email)
	if err != nil {
		return err
	}
	if user.ID != booking.UserID {
		return ErrAccessDenied
	}
	return nil
}

func GetAllBookings() ([]models.Booking, error) {
	db := db.GetDb()
	var bookings []models.Booking
	err := db.
		Model(&models.Booking{}).
		Preload("User").
		Preload("Items").
		Preload("Items.Item").
		Order("created_at DESC").
		Find(&bookings).
		Error
	return bookings, err
}

func GetBooking(id uint) (*models.Booking, error) {
	db := db.GetDb()
	var booking models.Booking
	err := db.
		Model(&models.Booking{}).
		Scopes(scopes.WithID(id)).
		Preload("User").
		Preload("Items").
		Preload("Items.Item").
		First(&booking).
		Error
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

func GetUserBookings(userId uint) ([]models.Booking, error) {
	db := db.GetDb()
	var bookings []models.Booking
	err := db.
		Model(&models.Booking{}).
		Where(&models.Booking{UserID: userId}).
		Preload("User").
		Preload("Items").
		Preload("Items.Item").
		Order("created_at DESC").
		Find(&bookings).
		Error
	return bookings, err
}

// CreateCompleteBooking inserts the booking header and its line items as one
// unit. A failed line insert rolls the header back; no orphaned headers.
func CreateCompleteBooking(params *types.CreateBookingRequestBody, userId uint) (*models.Booking, error) {
	startDate, err := ParseBookingDate(params.StartDate)
	if err != nil {
		return nil, err
	}
	endDate, err := ParseBookingDate(params.EndDate)
	if err != nil {
		return nil, err
	}
	status := types.BookingStatus(params.Status)
	if params.Status == "" {
		status = types.BOOKING_PENDING_APPROVAL
	}
	if !status.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, params.Status)
	}
	if params.UserID != 0 {
		userId = params.UserID
	}

	db := db.GetDb()
	booking := models.Booking{
		UserID:    userId,
		StartDate: startDate,
		EndDate:   endDate,
		Status:    string(status),
	}
	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&booking).Error; err != nil {
			return fmt.Errorf("error in Booking transaction: %w", err)
		}
		if err := createLines(tx, booking.ID, params.Items); err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		log.Printf("CreateCompleteBooking failed: %s\n", err.Error())
		return nil, err
	}
	lib.InvalidateAvailabilityCache(context.Background())
	return GetBooking(booking.ID)
}

func createLines(tx *gorm.DB, bookingId uint, lines []types.BookingLine) error {
	rows := make([]models.BookingItem, 0, len(lines))
	for _, line := range lines {
		rows = append(rows, models.BookingItem{
			BookingID: bookingId,
			ItemID:    line.ItemID,
			Quantity:  line.Quantity,
		})
	}
	if err := tx.Create(&rows).Error; err != nil {
		return fmt.Errorf("error in BookingItem transaction: %w", err)
	}
	return nil
}

// UpdateCompleteBooking applies a partial header update; when items are
// supplied the existing line collection is replaced wholesale. A status
// change through this path notifies the owner exactly like the narrow
// status update does.
func UpdateCompleteBooking(id uint, params *types.UpdateBookingRequestBody) (*models.Booking, error) {
	if params.Empty() {
		return nil, ErrNoFields
	}
	updates := map[string]any{}
	if params.StartDate != nil {
		startDate, err := ParseBookingDate(*params.StartDate)
		if err != nil {
			return nil, err
		}
		updates["start_date"] = startDate
	}
	if params.EndDate != nil {
		endDate, err := ParseBookingDate(*params.EndDate)
		if err != nil {
			return nil, err
		}
		updates["end_date"] = endDate
	}
	if params.Status != nil {
		status := types.BookingStatus(*params.Status)
		if !status.Valid() {
			return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, *params.Status)
		}
		updates["status"] = string(status)
	}

	db := db.GetDb()
	var transition StatusTransition
	err := db.Transaction(func(tx *gorm.DB) error {
		var booking models.Booking
		if err := tx.
			Model(&models.Booking{}).
			Where(&models.Booking{ID: id}).
			First(&booking).
			Error; err != nil {
			return err
		}
		transition = transitionFromUpdates(booking.Status, updates)
		if len(updates) > 0 {
			if err := tx.
				Model(&models.Booking{}).
				Where(&models.Booking{ID: id}).
				Updates(updates).
				Error; err != nil {
				return err
			}
		}
		if params.Items != nil {
			if err := tx.
				Where("booking_id = ?", id).
				Delete(&models.BookingItem{}).
				Error; err != nil {
				return err
			}
			if err := createLines(tx, id, *params.Items); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	lib.InvalidateAvailabilityCache(context.Background())
	booking, err := GetBooking(id)
	if err != nil {
		return nil, err
	}
	if transition.Changed {
		log.Printf("Booking [%d] status: %s -> %s\n", id, transition.From, transition.To)
	}
	dispatchStatusNotification(booking, transition)
	return booking, nil
}

// UpdateBookingStatus persists a narrow status change and, when the value
// actually moved into RESERVED or CANCELLED, dispatches one best-effort
// notification to the owner. Dispatch failures never surface to the caller.
func UpdateBookingStatus(id uint, newStatus string) (*models.Booking, StatusTransition, error) {
	status := types.BookingStatus(newStatus)
	if !status.Valid() {
		return nil, StatusTransition{}, fmt.Errorf("%w: %q", ErrInvalidStatus, newStatus)
	}

	booking, err := GetBooking(id)
	if err != nil {
		return nil, StatusTransition{}, err
	}
	transition := NewStatusTransition(types.BookingStatus(booking.Status), status)
	if transition.Changed {
		db := db.GetDb()
		err = db.
			Model(&models.Booking{}).
			Where(&models.Booking{ID: id}).
			Update("status", string(status)).
			Error
		if err != nil {
			return nil, transition, err
		}
		log.Printf("Booking [%d] status: %s -> %s\n", id, transition.From, transition.To)
		lib.InvalidateAvailabilityCache(context.Background())
		booking, err = GetBooking(id)
		if err != nil {
			return nil, transition, err
		}
	}

	dispatchStatusNotification(booking, transition)
	return booking, transition, nil
}

func DeleteBooking(id uint) error {
	db := db.GetDb()
	err := db.Transaction(func(tx *gorm.DB) error {
		var booking models.Booking
		if err := tx.
			Model(&models.Booking{}).
			Where(&models.Booking{ID: id}).
			First(&booking).
			Error; err != nil {
			return err
		}
		if err := tx.
			Where("booking_id = ?", id).
			Delete(&models.BookingItem{}).
			Error; err != nil {
			return err
		}
		return tx.Delete(&models.Booking{}, id).Error
	})
	if err != nil {
		return err
	}
	lib.InvalidateAvailabilityCache(context.Background())
	return nil
}

// CloseOverdueBookings moves IN_PROGRESS bookings whose end date has passed
// into CLOSED. Runs from the scheduler.
func CloseOverdueBookings() {
	db := db.GetDb()
	err := db.Transaction(func(tx *gorm.DB) error {
		res := tx.
			Model(&models.Booking{}).
			Where("status = ?", string(types.BOOKING_IN_PROGRESS)).
			Where("end_date < ?", time.Now()).
			Update("status", string(types.BOOKING_CLOSED))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected > 0 {
			log.Printf("Closed %d overdue bookings\n", res.RowsAffected)
		}
		return nil
	})
	if err != nil {
		log.Printf("Error while closing overdue bookings: %s\n", err.Error())
	}
}
