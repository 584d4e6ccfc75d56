package booking

import (
	"context"
	"time"

	"sportbook/internal/email"
)

type Clock interface {
	Now() time.Time
}

type RealClock struct{}

func (RealClock) Now() time.Time { return time.Now() }

// Notifier is satisfied by *email.Service.
type Notifier interface {
	SendBookingConfirmation(ctx context.Context, n email.BookingNotice) error
	SendCancellation(ctx context.Context, n email.BookingNotice) error
	SendStatusUpdate(ctx context.Context, n email.BookingNotice) error
}

var _ Notifier = (*email.Service)(nil)

func noticeFor(d *BookingWithDetails) email.BookingNotice {
	return email.BookingNotice{
		To:           d.UserEmail,
		Name:         d.UserName,
		BookingID:    d.ID,
		VenueName:    d.VenueName,
		VenueAddress: d.VenueAddress,
		Date:         d.SlotDate.String(),
		StartTime:    d.StartTime,
		EndTime:      d.EndTime,
		TotalPrice:   d.TotalPrice,
		RefundAmount: d.RefundAmount,
		Status:       string(d.Status),
	}
}
