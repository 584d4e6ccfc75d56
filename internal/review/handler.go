package review

import (
	"net/http"

	"sportbook/internal/api"
	"sportbook/internal/auth"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// ListVenueReviews godoc
// @Summary      List venue reviews
// @Tags         reviews
// @Produce      json
// @Param        venueID  path      int     true   "Venue ID"
// @Param        sort_by  query     string  false  "created_at | rating"
// @Param        order    query     string  false  "asc | desc"
// @Param        page     query     int     false  "Page"
// @Param        limit    query     int     false  "Page size"
// @Success      200      {object}  api.ListResponse[Review]
// @Failure      404      {object}  api.ErrorResponse
// @Router       /venues/{venueID}/reviews [get]
func (h *Handler) ListVenueReviews(c *gin.Context) {
	venueID, err := api.IDParam(c, "venueID")
	if err != nil {
		api.RespondError(c, err)
		return
	}

	var f Filter
	if f.Page, f.Limit, err = api.Page(c); err != nil {
		api.RespondError(c, err)
		return
	}
	f.SortBy = c.Query("sort_by")
	f.Order = c.Query("order")

	actor, _ := auth.GetActor(c)
	reviews, total, err := h.service.ListVenueReviews(c.Request.Context(), actor, venueID, f)
	if err != nil {
		api.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, api.NewList(reviews, f.Page, f.Limit, total))
}

// GetReview godoc
// @Summary      Get review
// @Tags         reviews
// @Produce      json
// @Param        reviewID  path      int  true  "Review ID"
// @Success      200       {object}  Review
// @Failure      404       {object}  api.ErrorResponse
// @Router       /reviews/{reviewID} [get]
func (h *Handler) GetReview(c *gin.Context) {
	id, err := api.IDParam(c, "reviewID")
	if err != nil {
		api.RespondError(c, err)
		return
	}

	rv, err := h.service.GetReview(c.Request.Context(), id)
	if err != nil {
		api.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, rv)
}

// CreateReview godoc
// @Summary      Review a venue
// @Description  Requires a completed booking at the venue. One review per user and venue.
// @Tags         reviews
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        venueID  path      int                  true  "Venue ID"
// @Param        request  body      CreateReviewRequest  true  "Review"
// @Success      201      {object}  Review
// @Failure      400      {object}  api.ErrorResponse
// @Failure      403      {object}  api.ErrorResponse
// @Failure      404      {object}  api.ErrorResponse
// @Failure      409      {object}  api.ErrorResponse
// @Router       /venues/{venueID}/reviews [post]
func (h *Handler) CreateReview(c *gin.Context) {
	actor, err := auth.GetActor(c)
	if err != nil {
		api.RespondError(c, err)
		return
	}
	venueID, err := api.IDParam(c, "venueID")
	if err != nil {
		api.RespondError(c, err)
		return
	}

	var req CreateReviewRequest
	if !api.BindJSON(c, &req) {
		return
	}

	rv, err := h.service.CreateReview(c.Request.Context(), actor, venueID, req)
	if err != nil {
		api.RespondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, rv)
}

// UpdateReview godoc
// @Summary      Update review
// @Tags         reviews
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        reviewID  path      int                  true  "Review ID"
// @Param        request   body      UpdateReviewRequest  true  "Fields to change"
// @Success      200       {object}  Review
// @Failure      403       {object}  api.ErrorResponse
// @Failure      404       {object}  api.ErrorResponse
// @Router       /reviews/{reviewID} [put]
func (h *Handler) UpdateReview(c *gin.Context) {
	actor, err := auth.GetActor(c)
	if err != nil {
		api.RespondError(c, err)
		return
	}
	id, err := api.IDParam(c, "reviewID")
	if err != nil {
		api.RespondError(c, err)
		return
	}

	var req UpdateReviewRequest
	if !api.BindJSON(c, &req) {
		return
	}

	rv, err := h.service.UpdateReview(c.Request.Context(), actor, id, req)
	if err != nil {
		api.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, rv)
}

// DeleteReview godoc
// @Summary      Delete review
// @Tags         reviews
// @Security     BearerAuth
// @Produce      json
// @Param        reviewID  path      int  true  "Review ID"
// @Success      200       {object}  api.MessageResponse
// @Failure      403       {object}  api.ErrorResponse
// @Failure      404       {object}  api.ErrorResponse
// @Router       /reviews/{reviewID} [delete]
func (h *Handler) DeleteReview(c *gin.Context) {
	actor, err := auth.GetActor(c)
	if err != nil {
		api.RespondError(c, err)
		return
	}
	id, err := api.IDParam(c, "reviewID")
	if err != nil {
		api.RespondError(c, err)
		return
	}

	if err := h.service.DeleteReview(c.Request.Context(), actor, id); err != nil {
		api.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, api.MessageResponse{Message: "Review deleted"})
}
