package utils

import (
	"testing"
	"time"

	"ibs/src/db"
	"ibs/src/lib/mailer"
	"ibs/src/types"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestStatusTransitionDetectsChange(t *testing.T) {
	tr := NewStatusTransition(types.BOOKING_PENDING_APPROVAL, types.BOOKING_RESERVED)
	assert.True(t, tr.Changed)
	assert.Equal(t, types.BOOKING_PENDING_APPROVAL, tr.From)
	assert.Equal(t, types.BOOKING_RESERVED, tr.To)
}

func TestStatusTransitionSameValueIsNoop(t *testing.T) {
	tr := NewStatusTransition(types.BOOKING_RESERVED, types.BOOKING_RESERVED)
	assert.False(t, tr.Changed)
	assert.False(t, tr.ShouldNotify())
}

func TestStatusTransitionNotifiesOnDecisionsOnly(t *testing.T) {
	cases := []struct {
		from   types.BookingStatus
		to     types.BookingStatus
		notify bool
	}{
		{types.BOOKING_PENDING_APPROVAL, types.BOOKING_RESERVED, true},
		{types.BOOKING_PENDING_APPROVAL, types.BOOKING_CANCELLED, true},
		{types.BOOKING_IN_QUEUE, types.BOOKING_RESERVED, true},
		{types.BOOKING_PENDING_APPROVAL, types.BOOKING_IN_QUEUE, false},
		{types.BOOKING_RESERVED, types.BOOKING_IN_PROGRESS, false},
		{types.BOOKING_IN_PROGRESS, types.BOOKING_CLOSED, false},
		{types.BOOKING_RESERVED, types.BOOKING_RESERVED, false},
	}
	for _, c := range cases {
		tr := NewStatusTransition(c.from, c.to)
		assert.Equalf(t, c.notify, tr.ShouldNotify(), "%s -> %s", c.from, c.to)
	}
}

func TestParseBookingDate(t *testing.T) {
	parsed, err := ParseBookingDate("2025-06-01")
	assert.Nil(t, err)
	assert.Equal(t, 2025, parsed.Year())

	_, err = ParseBookingDate("01/06/2025")
	assert.NotNil(t, err)

	_, err = ParseBookingDate("")
	assert.NotNil(t, err)
}

func TestBookingStatusValid(t *testing.T) {
	for _, status := range types.BookingStatuses {
		assert.True(t, status.Valid())
	}
	assert.False(t, types.BookingStatus("APPROVED").Valid())
	assert.False(t, types.BookingStatus("").Valid())
	assert.False(t, types.BookingStatus("reserved").Valid())
}

func TestTransitionFromUpdates(t *testing.T) {
	tr := transitionFromUpdates("PENDING_APPROVAL", map[string]any{"status": "RESERVED"})
	assert.True(t, tr.Changed)
	assert.True(t, tr.ShouldNotify())

	tr = transitionFromUpdates("RESERVED", map[string]any{"status": "RESERVED"})
	assert.False(t, tr.Changed)
	assert.False(t, tr.ShouldNotify())

	tr = transitionFromUpdates("PENDING_APPROVAL", map[string]any{"start_date": "2025-06-01"})
	assert.False(t, tr.Changed)
	assert.False(t, tr.ShouldNotify())

	tr = transitionFromUpdates("IN_PROGRESS", map[string]any{"status": "CLOSED"})
	assert.True(t, tr.Changed)
	assert.False(t, tr.ShouldNotify())
}

var bookingColumns = []string{"id", "user_id", "start_date", "end_date", "status", "created_at", "updated_at"}

func bookingRow(status string, updatedAt time.Time) *sqlmock.Rows {
	start := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)
	return sqlmock.NewRows(bookingColumns).
		AddRow(1, 1, start, end, status, start, updatedAt)
}

func expectBookingLoad(mock sqlmock.Sqlmock, status string, updatedAt time.Time) {
	mock.ExpectQuery(`SELECT (.+) FROM "bookings"`).
		WillReturnRows(bookingRow(status, updatedAt))
	mock.ExpectQuery(`SELECT (.+) FROM "booking_items"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "booking_id", "item_id", "quantity"}))
	mock.ExpectQuery(`SELECT (.+) FROM "users"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "email"}).
			AddRow(1, "owner@example.com"))
}

func TestUpdateCompleteBookingNotifiesOwnerOnApproval(t *testing.T) {
	_, mock, err := db.GetMockDB()
	assert.Nil(t, err)

	notified := make(chan *mailer.StatusChangeInput, 1)
	orig := notifyStatusChange
	notifyStatusChange = func(input *mailer.StatusChangeInput) error {
		notified <- input
		return nil
	}
	defer func() { notifyStatusChange = orig }()

	updatedAt := time.Date(2025, 5, 20, 12, 0, 0, 0, time.UTC)
	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT (.+) FROM "bookings"`).
		WillReturnRows(bookingRow("PENDING_APPROVAL", updatedAt))
	mock.ExpectExec(`UPDATE "bookings" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()
	expectBookingLoad(mock, "RESERVED", updatedAt.Add(time.Minute))

	status := "RESERVED"
	booking, err := UpdateCompleteBooking(1, &types.UpdateBookingRequestBody{Status: &status})
	assert.Nil(t, err)
	assert.Equal(t, "RESERVED", booking.Status)

	select {
	case input := <-notified:
		assert.Equal(t, "owner@example.com", input.Recipient)
		assert.Equal(t, "RESERVED", input.NewStatus)
		assert.Equal(t, uint(1), input.BookingID)
	case <-time.After(2 * time.Second):
		t.Fatal("expected a notification dispatch for the status change")
	}
	assert.Nil(t, mock.ExpectationsWereMet())
}

func TestUpdateBookingStatusReturnsPersistedRow(t *testing.T) {
	_, mock, err := db.GetMockDB()
	assert.Nil(t, err)

	staleTime := time.Date(2025, 5, 20, 12, 0, 0, 0, time.UTC)
	reloadTime := staleTime.Add(time.Minute)

	expectBookingLoad(mock, "RESERVED", staleTime)
	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "bookings" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()
	expectBookingLoad(mock, "IN_PROGRESS", reloadTime)

	booking, transition, err := UpdateBookingStatus(1, "IN_PROGRESS")
	assert.Nil(t, err)
	assert.True(t, transition.Changed)
	assert.False(t, transition.ShouldNotify())
	assert.Equal(t, "IN_PROGRESS", booking.Status)
	assert.True(t, booking.UpdatedAt.Equal(reloadTime))
	assert.Nil(t, mock.ExpectationsWereMet())
}
