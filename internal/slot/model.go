package slot

import (
	"time"

	"sportbook/internal/pricing"
)

type Status string

const (
	StatusAvailable Status = "AVAILABLE"
	StatusBooked    Status = "BOOKED"
	StatusBlocked   Status = "BLOCKED"
)

func (s Status) Valid() bool {
	switch s {
	case StatusAvailable, StatusBooked, StatusBlocked:
		return true
	}
	return false
}

type Slot struct {
	ID        int          `db:"id" json:"id"`
	VenueID   int          `db:"venue_id" json:"venue_id"`
	Date      pricing.Date `db:"date" json:"date" swaggertype:"string" example:"2025-03-01"`
	StartTime string       `db:"start_time" json:"start_time" example:"10:00"`
	EndTime   string       `db:"end_time" json:"end_time" example:"12:00"`
	Status    Status       `db:"status" json:"status" example:"AVAILABLE"`
	CreatedAt time.Time    `db:"created_at" json:"created_at"`
	UpdatedAt time.Time    `db:"updated_at" json:"updated_at"`
}

// Interval returns the slot span in minutes since midnight of its date.
func (s *Slot) Interval() (Interval, error) {
	return IntervalOf(s.StartTime, s.EndTime)
}

// DurationHours honours next-day rollover.
func (s *Slot) DurationHours() (float64, error) {
	return pricing.SpanHours(s.StartTime, s.EndTime)
}

type CreateSlotRequest struct {
	Date      string  `json:"date" binding:"required" example:"2025-03-01"`
	StartTime string  `json:"start_time" binding:"required" example:"10:00"`
	EndTime   string  `json:"end_time" binding:"required" example:"12:00"`
	Status    *Status `json:"status,omitempty" example:"AVAILABLE"`
}

type TimeRange struct {
	StartTime string `json:"start_time" binding:"required" example:"18:00"`
	EndTime   string `json:"end_time" binding:"required" example:"19:00"`
}

type BulkCreateRequest struct {
	Dates     []string    `json:"dates" binding:"required,min=1,max=93,dive,required"`
	TimeSlots []TimeRange `json:"time_slots" binding:"required,min=1,max=96,dive"`
	Status    *Status     `json:"status,omitempty"`
}

type BulkCreateResult struct {
	CreatedCount int    `json:"created_count" example:"5"`
	SkippedCount int    `json:"skipped_count" example:"1"`
	Slots        []Slot `json:"slots"`
}

type UpdateSlotRequest struct {
	Date      *string `json:"date,omitempty"`
	StartTime *string `json:"start_time,omitempty"`
	EndTime   *string `json:"end_time,omitempty"`
	Status    *Status `json:"status,omitempty"`
}

type Filter struct {
	Date   *pricing.Date
	From   *pricing.Date
	To     *pricing.Date
	Status *Status
	Page   int
	Limit  int
}
