package booking

import (
	"time"

	"sportbook/internal/pricing"
	"sportbook/internal/slot"
)

type Status string

const (
	StatusPending   Status = "PENDING"
	StatusConfirmed Status = "CONFIRMED"
	StatusCancelled Status = "CANCELLED"
	StatusCompleted Status = "COMPLETED"
)

var transitions = map[Status][]Status{
	StatusPending:   {StatusConfirmed, StatusCancelled},
	StatusConfirmed: {StatusCancelled, StatusCompleted},
}

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled, StatusCompleted:
		return true
	}
	return false
}

// IsActive reports whether the booking still holds its slot.
func (s Status) IsActive() bool {
	return s == StatusPending || s == StatusConfirmed
}

func (s Status) CanTransitionTo(next Status) bool {
	for _, allowed := range transitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "PENDING"
	PaymentPaid     PaymentStatus = "PAID"
	PaymentRefunded PaymentStatus = "REFUNDED"
	PaymentFailed   PaymentStatus = "FAILED"
)

type Booking struct {
	ID            int           `db:"id" json:"id"`
	UserID        int           `db:"user_id" json:"user_id"`
	SlotID        int           `db:"slot_id" json:"slot_id"`
	Status        Status        `db:"status" json:"status" example:"PENDING"`
	TotalPrice    float64       `db:"total_price" json:"total_price" example:"80"`
	PaymentStatus PaymentStatus `db:"payment_status" json:"payment_status" example:"PENDING"`
	RefundAmount  *float64      `db:"refund_amount" json:"refund_amount,omitempty" example:"40"`
	CancelledAt   *time.Time    `db:"cancelled_at" json:"cancelled_at,omitempty"`
	CreatedAt     time.Time     `db:"created_at" json:"created_at"`
	UpdatedAt     time.Time     `db:"updated_at" json:"updated_at"`
}

type BookingWithDetails struct {
	Booking
	SlotDate     pricing.Date `db:"slot_date" json:"slot_date" swaggertype:"string" example:"2025-03-01"`
	StartTime    string       `db:"start_time" json:"start_time" example:"10:00"`
	EndTime      string       `db:"end_time" json:"end_time" example:"12:00"`
	VenueID      int          `db:"venue_id" json:"venue_id"`
	VenueName    string       `db:"venue_name" json:"venue_name"`
	VenueAddress string       `db:"venue_address" json:"venue_address"`
	UserName     string       `db:"user_name" json:"user_name"`
	UserEmail    string       `db:"user_email" json:"user_email"`
}

type Availability struct {
	Available bool       `json:"available"`
	Reason    string     `json:"reason,omitempty" example:"Slot already has an active booking"`
	Slot      *slot.Slot `json:"slot,omitempty"`
}

type CreateBookingRequest struct {
	SlotID int `json:"slot_id" binding:"required,gt=0" example:"12"`
}

type UpdateStatusRequest struct {
	Status Status `json:"status" binding:"required" example:"CONFIRMED"`
}

type Filter struct {
	Status  *Status
	VenueID *int
	UserID  *int
	From    *pricing.Date
	To      *pricing.Date
	SortBy  string
	Order   string
	Page    int
	Limit   int
}

type GroupBy string

const (
	GroupByDay   GroupBy = "day"
	GroupByVenue GroupBy = "venue"
)

type StatsByDay struct {
	Day               pricing.Date `db:"bucket" json:"day" swaggertype:"string"`
	BookingsCreated   int          `db:"bookings_created" json:"bookings_created"`
	BookingsCancelled int          `db:"bookings_cancelled" json:"bookings_cancelled"`
	BookingsCompleted int          `db:"bookings_completed" json:"bookings_completed"`
	Revenue           float64      `db:"revenue" json:"revenue"`
}

type StatsByVenue struct {
	VenueID           int     `db:"venue_id" json:"venue_id"`
	VenueName         string  `db:"venue_name" json:"venue_name"`
	BookingsCreated   int     `db:"bookings_created" json:"bookings_created"`
	BookingsCancelled int     `db:"bookings_cancelled" json:"bookings_cancelled"`
	BookingsCompleted int     `db:"bookings_completed" json:"bookings_completed"`
	Revenue           float64 `db:"revenue" json:"revenue"`
}

// Analytics holds exactly one of ByDay or ByVenue depending on GroupBy.
type Analytics struct {
	GroupBy GroupBy        `json:"group_by" example:"day"`
	From    pricing.Date   `json:"from" swaggertype:"string" example:"2025-03-01"`
	To      pricing.Date   `json:"to" swaggertype:"string" example:"2025-03-31"`
	ByDay   []StatsByDay   `json:"by_day,omitempty"`
	ByVenue []StatsByVenue `json:"by_venue,omitempty"`
}
