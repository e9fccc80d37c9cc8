package utils

import (
	"testing"
	"time"

	"ibs/src/models"
	"ibs/src/types"

	"github.com/stretchr/testify/assert"
)

func date(value string) time.Time {
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		panic(err)
	}
	return t
}

func confirmedBooking(start, end string, lines ...models.BookingItem) models.Booking {
	return models.Booking{
		StartDate: date(start),
		EndDate:   date(end),
		Status:    string(types.BOOKING_RESERVED),
		Items:     lines,
	}
}

func line(itemId, qty uint) models.BookingItem {
	return models.BookingItem{ItemID: itemId, Quantity: qty}
}

func TestComputeAvailabilityOverlapReducesQuantity(t *testing.T) {
	items := []models.Item{{ID: 1, Name: "Cloak", Quantity: 5}}
	bookings := []models.Booking{
		confirmedBooking("2025-01-01", "2025-01-10", line(1, 3)),
	}

	result := ComputeAvailability(items, bookings, date("2025-01-05"), date("2025-01-15"))

	assert.Len(t, result, 1)
	assert.Equal(t, uint(2), result[0].AvailableQuantity)
	assert.True(t, result[0].IsAvailable)
}

func TestComputeAvailabilityNoOverlapKeepsFullStock(t *testing.T) {
	items := []models.Item{{ID: 1, Name: "Cloak", Quantity: 5}}
	bookings := []models.Booking{
		confirmedBooking("2025-01-01", "2025-01-10", line(1, 3)),
	}

	result := ComputeAvailability(items, bookings, date("2025-02-01"), date("2025-02-10"))

	assert.Equal(t, uint(5), result[0].AvailableQuantity)
	assert.True(t, result[0].IsAvailable)
}

func TestComputeAvailabilityBoundaryTouchCountsAsOverlap(t *testing.T) {
	items := []models.Item{{ID: 1, Name: "Cloak", Quantity: 5}}
	bookings := []models.Booking{
		confirmedBooking("2025-01-01", "2025-01-10", line(1, 3)),
	}

	// Requested range starts exactly on the existing booking's end date.
	result := ComputeAvailability(items, bookings, date("2025-01-10"), date("2025-01-20"))

	assert.Equal(t, uint(2), result[0].AvailableQuantity)
}

func TestComputeAvailabilityClampsAtZero(t *testing.T) {
	items := []models.Item{{ID: 1, Name: "Cloak", Quantity: 2}}
	bookings := []models.Booking{
		confirmedBooking("2025-01-01", "2025-01-10", line(1, 2)),
		confirmedBooking("2025-01-03", "2025-01-08", line(1, 4)),
	}

	result := ComputeAvailability(items, bookings, date("2025-01-05"), date("2025-01-06"))

	assert.Equal(t, uint(0), result[0].AvailableQuantity)
	assert.False(t, result[0].IsAvailable)
}

func TestComputeAvailabilityDuplicateLinesAreSummed(t *testing.T) {
	items := []models.Item{{ID: 1, Name: "Cloak", Quantity: 10}}
	bookings := []models.Booking{
		confirmedBooking("2025-01-01", "2025-01-10", line(1, 2), line(1, 3)),
	}

	result := ComputeAvailability(items, bookings, date("2025-01-01"), date("2025-01-02"))

	assert.Equal(t, uint(5), result[0].AvailableQuantity)
}

func TestComputeAvailabilityAnnotatesEveryItem(t *testing.T) {
	items := []models.Item{
		{ID: 1, Name: "Cloak", Quantity: 5},
		{ID: 2, Name: "Sword", Quantity: 1},
		{ID: 3, Name: "Hat", Quantity: 0},
	}
	bookings := []models.Booking{
		confirmedBooking("2025-01-01", "2025-01-10", line(2, 1)),
	}

	result := ComputeAvailability(items, bookings, date("2025-01-01"), date("2025-01-05"))

	assert.Len(t, result, 3)
	assert.Equal(t, uint(5), result[0].AvailableQuantity)
	assert.Equal(t, uint(0), result[1].AvailableQuantity)
	assert.False(t, result[1].IsAvailable)
	assert.Equal(t, uint(0), result[2].AvailableQuantity)
	assert.False(t, result[2].IsAvailable)
}

func TestBookingOverlaps(t *testing.T) {
	b := models.Booking{StartDate: date("2025-03-10"), EndDate: date("2025-03-20")}

	assert.True(t, b.Overlaps(date("2025-03-15"), date("2025-03-25")))
	assert.True(t, b.Overlaps(date("2025-03-20"), date("2025-03-30")))
	assert.True(t, b.Overlaps(date("2025-03-01"), date("2025-03-10")))
	assert.False(t, b.Overlaps(date("2025-03-21"), date("2025-03-30")))
	assert.False(t, b.Overlaps(date("2025-03-01"), date("2025-03-09")))
}
