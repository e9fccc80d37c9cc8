package types

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"gorm.io/gorm"
)

type Timestamps struct {
	CreatedAt time.Time      `gorm:"autoCreateTime:nano" json:"created_at,omitempty"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime:nano" json:"updated_at,omitempty"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty,omitnil"`
}

type Claims struct {
	Email string `json:"email"`
	Role  string `json:"role"`
	UID   string `json:"uid"`
	jwt.RegisteredClaims
}

type BookingStatus string

const (
	BOOKING_RESERVED         BookingStatus = "RESERVED"
	BOOKING_CANCELLED        BookingStatus = "CANCELLED"
	BOOKING_PENDING_APPROVAL BookingStatus = "PENDING_APPROVAL"
	BOOKING_IN_PROGRESS      BookingStatus = "IN_PROGRESS"
	BOOKING_CLOSED           BookingStatus = "CLOSED"
	BOOKING_IN_QUEUE         BookingStatus = "IN_QUEUE"
)

// BookingStatuses lists every status a booking may hold, in seed order.
var BookingStatuses = []BookingStatus{
	BOOKING_RESERVED,
	BOOKING_CANCELLED,
	BOOKING_PENDING_APPROVAL,
	BOOKING_IN_PROGRESS,
	BOOKING_CLOSED,
	BOOKING_IN_QUEUE,
}

func (s BookingStatus) Valid() bool {
	for _, known := range BookingStatuses {
		if s == known {
			return true
		}
	}
	return false
}

type UserRole string

const (
	ROLE_USER        UserRole = "USER"
	ROLE_ADMIN       UserRole = "ADMIN"
	ROLE_SUPER_ADMIN UserRole = "SUPER_ADMIN"
)

func (r UserRole) IsAdmin() bool {
	return r == ROLE_ADMIN || r == ROLE_SUPER_ADMIN
}

type SimpleRequestParams struct {
	ID uint `uri:"id" binding:"required"`
}

type BookingLine struct {
	ItemID   uint `json:"item_id" binding:"required"`
	Quantity uint `json:"quantity" binding:"required,min=1"`
}

type CreateBookingRequestBody struct {
	UserID    uint          `json:"user_id,omitempty"`
	StartDate string        `json:"start_date" binding:"required,bookingdate"`
	EndDate   string        `json:"end_date" binding:"required,bookingdate,gtedate=StartDate"`
	Status    string        `json:"status,omitempty"`
	Items     []BookingLine `json:"items" binding:"required,min=1,dive"`
}

type UpdateBookingRequestBody struct {
	StartDate *string        `json:"start_date,omitempty" binding:"omitempty,bookingdate"`
	EndDate   *string        `json:"end_date,omitempty" binding:"omitempty,bookingdate"`
	Status    *string        `json:"status,omitempty"`
	Items     *[]BookingLine `json:"items,omitempty" binding:"omitempty,min=1,dive"`
}

func (b UpdateBookingRequestBody) Empty() bool {
	return b.StartDate == nil && b.EndDate == nil && b.Status == nil && b.Items == nil
}

type UpdateBookingStatusRequestBody struct {
	Status string `json:"status" binding:"required"`
}

type CreateBookingItemRequestBody struct {
	BookingID uint `json:"booking_id" binding:"required"`
	ItemID    uint `json:"item_id" binding:"required"`
	Quantity  uint `json:"quantity" binding:"required,min=1"`
}

type CreateBookingItemsBulkRequestBody struct {
	BookingID uint          `json:"booking_id" binding:"required"`
	Items     []BookingLine `json:"items" binding:"required,min=1,dive"`
}

type UpdateBookingItemRequestBody struct {
	ItemID   *uint `json:"item_id,omitempty"`
	Quantity *uint `json:"quantity,omitempty" binding:"omitempty,min=1"`
}

type UpdateQuantityRequestBody struct {
	Quantity *uint `json:"quantity" binding:"required,min=1"`
}

type CreateItemRequestBody struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description,omitempty"`
	ImageURL    *string `json:"image_url,omitempty"`
	Price       float64 `json:"price,omitempty"`
	Quantity    uint    `json:"quantity" binding:"required,min=1"`
	CategoryID  *uint   `json:"category_id,omitempty"`
	Size        *string `json:"size,omitempty"`
	Color       *string `json:"color,omitempty"`
	Location    *string `json:"location,omitempty"`
	Available   *bool   `json:"available,omitempty"`
}

type UpdateItemRequestBody struct {
	Name        *string  `json:"name,omitempty"`
	Description *string  `json:"description,omitempty"`
	ImageURL    *string  `json:"image_url,omitempty"`
	Price       *float64 `json:"price,omitempty"`
	Quantity    *uint    `json:"quantity,omitempty"`
	CategoryID  *uint    `json:"category_id,omitempty"`
	Size        *string  `json:"size,omitempty"`
	Color       *string  `json:"color,omitempty"`
	Location    *string  `json:"location,omitempty"`
	Available   *bool    `json:"available,omitempty"`
}

type CreateCategoryRequestBody struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description,omitempty"`
}

type AvailabilityQueryParams struct {
	StartDate string `form:"startDate" binding:"required"`
	EndDate   string `form:"endDate" binding:"required"`
}

// ItemAvailability is an Item projection annotated with the remaining
// bookable units over a requested date range.
type ItemAvailability struct {
	ID                uint    `json:"id"`
	Name              string  `json:"name"`
	Description       string  `json:"description,omitempty"`
	ImageURL          *string `json:"image_url,omitempty"`
	Price             float64 `json:"price"`
	Quantity          uint    `json:"quantity"`
	CategoryID        *uint   `json:"category_id,omitempty"`
	Size              *string `json:"size,omitempty"`
	Color             *string `json:"color,omitempty"`
	Location          *string `json:"location,omitempty"`
	AvailableQuantity uint    `json:"available_quantity"`
	IsAvailable       bool    `json:"is_available"`
}

type UpdateUserRequestBody struct {
	DisplayName *string `json:"display_name,omitempty"`
	Role        *string `json:"role,omitempty"`
	IsApproved  *bool   `json:"is_approved,omitempty"`
}
