package venue

import (
	"time"

	"github.com/lib/pq"
)

type SportType string

const (
	SportFootball    SportType = "FOOTBALL"
	SportCricket     SportType = "CRICKET"
	SportBadminton   SportType = "BADMINTON"
	SportTennis      SportType = "TENNIS"
	SportBasketball  SportType = "BASKETBALL"
	SportVolleyball  SportType = "VOLLEYBALL"
	SportTableTennis SportType = "TABLE_TENNIS"
	SportSquash      SportType = "SQUASH"
	SportSwimming    SportType = "SWIMMING"
	SportOther       SportType = "OTHER"
)

func (s SportType) Valid() bool {
	switch s {
	case SportFootball, SportCricket, SportBadminton, SportTennis, SportBasketball,
		SportVolleyball, SportTableTennis, SportSquash, SportSwimming, SportOther:
		return true
	}
	return false
}

type Venue struct {
	ID            int            `db:"id" json:"id"`
	Name          string         `db:"name" json:"name"`
	Description   string         `db:"description" json:"description"`
	SportType     SportType      `db:"sport_type" json:"sport_type" example:"BADMINTON"`
	Address       string         `db:"address" json:"address"`
	City          string         `db:"city" json:"city"`
	PricePerHour  float64        `db:"price_per_hour" json:"price_per_hour" example:"40"`
	Amenities     pq.StringArray `db:"amenities" json:"amenities" swaggertype:"array,string"`
	IsActive      bool           `db:"is_active" json:"is_active"`
	AverageRating float64        `db:"average_rating" json:"average_rating" example:"4.5"`
	ReviewCount   int            `db:"review_count" json:"review_count"`
	CreatedAt     time.Time      `db:"created_at" json:"created_at"`
	UpdatedAt     time.Time      `db:"updated_at" json:"updated_at"`
}

type CreateVenueRequest struct {
	Name         string    `json:"name" binding:"required,min=2,max=150" example:"Smash Arena"`
	Description  string    `json:"description" binding:"max=2000"`
	SportType    SportType `json:"sport_type" binding:"required" example:"BADMINTON"`
	Address      string    `json:"address" binding:"required,max=255"`
	City         string    `json:"city" binding:"required,max=100" example:"Pune"`
	PricePerHour float64   `json:"price_per_hour" binding:"required,gt=0" example:"40"`
	Amenities    []string  `json:"amenities" binding:"max=30,dive,min=1,max=50"`
}

type UpdateVenueRequest struct {
	Name         *string    `json:"name" binding:"omitempty,min=2,max=150"`
	Description  *string    `json:"description" binding:"omitempty,max=2000"`
	SportType    *SportType `json:"sport_type"`
	Address      *string    `json:"address" binding:"omitempty,max=255"`
	City         *string    `json:"city" binding:"omitempty,max=100"`
	PricePerHour *float64   `json:"price_per_hour" binding:"omitempty,gt=0"`
	Amenities    []string   `json:"amenities" binding:"omitempty,max=30,dive,min=1,max=50"`
	IsActive     *bool      `json:"is_active"`
}

type Filter struct {
	SportType       *SportType
	City            *string
	Search          *string
	MinPrice        *float64
	MaxPrice        *float64
	IncludeInactive bool
	SortBy          string
	Order           string
	Page            int
	Limit           int
}
