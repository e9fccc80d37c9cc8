package models

import (
	"ibs/src/types"

	"github.com/google/uuid"
)

// Notification records one status-change mail dispatch attempt.
type Notification struct {
	ID        uuid.UUID `gorm:"primarykey;type:uuid;default:gen_random_uuid()" json:"id"`
	BookingID uint      `json:"booking_id"`
	Recipient string    `json:"recipient"`
	Status    string    `json:"status"`
	Subject   string    `json:"subject"`
	Delivered bool      `json:"delivered"`
	Error     *string   `json:"error,omitempty"`

	types.Timestamps
}
