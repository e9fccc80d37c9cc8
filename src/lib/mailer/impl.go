package mailer

import (
	"fmt"
	"log"
	"os"
	"strings"

	"ibs/src/db"
	"ibs/src/lib"
	"ibs/src/models"
)

// StatusChangeInput carries everything needed to tell a booking owner about
// an approval decision. Line items arrive with their Item association
// resolved so names can be printed.
type StatusChangeInput struct {
	BookingID uint
	Recipient string
	NewStatus string
	StartDate string
	EndDate   string
	Lines     []models.BookingItem
}

// NotifyStatusChange composes and sends the status-change mail, then records
// the attempt in the notifications table. Delivery is best effort: the error
// return exists for logging only and must never abort the status update that
// triggered it.
func NotifyStatusChange(input *StatusChangeInput) error {
	subject := fmt.Sprintf("Booking #%d is now %s", input.BookingID, input.NewStatus)
	var sb strings.Builder
	fmt.Fprintf(&sb, "Hello,\n\nYour booking #%d for %s to %s has been updated to %s.\n\nItems:\n",
		input.BookingID, input.StartDate, input.EndDate, input.NewStatus)
	for _, line := range input.Lines {
		name := fmt.Sprintf("item #%d", line.ItemID)
		if line.Item != nil && line.Item.Name != "" {
			name = line.Item.Name
		}
		fmt.Fprintf(&sb, "  - %d x %s\n", line.Quantity, name)
	}
	sb.WriteString("\nThank you.\n")

	sendErr := lib.SendMail(&lib.SendMailInput{
		From:     os.Getenv("MAIL_FROM"),
		FromName: os.Getenv("MAIL_FROM_NAME"),
		To:       []string{input.Recipient},
		Subject:  subject,
		Body:     sb.String(),
	})

	record := models.Notification{
		BookingID: input.BookingID,
		Recipient: input.Recipient,
		Status:    input.NewStatus,
		Subject:   subject,
		Delivered: sendErr == nil,
	}
	if sendErr != nil {
		msg := sendErr.Error()
		record.Error = &msg
	}
	if err := db.GetDb().Create(&record).Error; err != nil {
		log.Printf("Could not record notification for Booking [%d]: %s\n", input.BookingID, err.Error())
	}
	return sendErr
}
