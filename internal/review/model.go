package review

import "time"

type Review struct {
	ID        int       `db:"id" json:"id"`
	UserID    int       `db:"user_id" json:"user_id"`
	VenueID   int       `db:"venue_id" json:"venue_id"`
	Rating    int       `db:"rating" json:"rating" example:"5"`
	Comment   *string   `db:"comment" json:"comment,omitempty" example:"Great courts, friendly staff"`
	UserName  string    `db:"user_name" json:"user_name" example:"Asha"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

type CreateReviewRequest struct {
	Rating  int     `json:"rating" binding:"required,min=1,max=5" example:"5"`
	Comment *string `json:"comment,omitempty" binding:"omitempty,max=2000"`
}

type UpdateReviewRequest struct {
	Rating  *int    `json:"rating,omitempty" binding:"omitempty,min=1,max=5" example:"4"`
	Comment *string `json:"comment,omitempty" binding:"omitempty,max=2000"`
}

type Filter struct {
	SortBy string
	Order  string
	Page   int
	Limit  int
}
