package venue

import (
	"net/http"
	"strings"

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

// actor returns the caller, or an anonymous actor on public routes.
func actor(c *gin.Context) auth.Actor {
	a, _ := auth.GetActor(c)
	return a
}

// ListVenues godoc
// @Summary      List venues
// @Description  Lists active venues with optional filters. Admins may pass include_inactive=true.
// @Tags         venues
// @Produce      json
// @Param        sport_type        query     string  false  "Sport type"
// @Param        city              query     string  false  "City (case-insensitive)"
// @Param        search            query     string  false  "Search in name and description"
// @Param        min_price         query     number  false  "Minimum price per hour"
// @Param        max_price         query     number  false  "Maximum price per hour"
// @Param        include_inactive  query     bool    false  "Include deactivated venues (admin)"
// @Param        sort_by           query     string  false  "name | price | rating | created_at"
// @Param        order             query     string  false  "asc | desc"
// @Param        page              query     int     false  "Page"
// @Param        limit             query     int     false  "Page size"
// @Success      200  {object}  api.ListResponse[Venue]
// @Failure      400  {object}  api.ErrorResponse
// @Router       /venues [get]
func (h *Handler) ListVenues(c *gin.Context) {
	f, err := parseFilter(c)
	if err != nil {
		api.RespondError(c, err)
		return
	}

	venues, total, err := h.service.List(c.Request.Context(), actor(c), f)
	if err != nil {
		api.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, api.NewList(venues, f.Page, f.Limit, total))
}

func parseFilter(c *gin.Context) (Filter, error) {
	var f Filter
	var err error

	if f.Page, f.Limit, err = api.Page(c); err != nil {
		return f, err
	}
	if st := api.QueryStringPtr(c, "sport_type"); st != nil {
		sport := SportType(strings.ToUpper(*st))
		f.SportType = &sport
	}
	f.City = api.QueryStringPtr(c, "city")
	f.Search = api.QueryStringPtr(c, "search")
	if f.MinPrice, err = api.QueryFloatPtr(c, "min_price"); err != nil {
		return f, err
	}
	if f.MaxPrice, err = api.QueryFloatPtr(c, "max_price"); err != nil {
		return f, err
	}
	f.IncludeInactive = c.Query("include_inactive") == "true"
	f.SortBy = c.Query("sort_by")
	f.Order = c.Query("order")
	return f, nil
}

// GetVenue godoc
// @Summary      Get venue
// @Tags         venues
// @Produce      json
// @Param        venueID  path      int  true  "Venue ID"
// @Success      200      {object}  Venue
// @Failure      404      {object}  api.ErrorResponse
// @Router       /venues/{venueID} [get]
func (h *Handler) GetVenue(c *gin.Context) {
	id, err := api.IDParam(c, "venueID")
	if err != nil {
		api.RespondError(c, err)
		return
	}

	v, err := h.service.Get(c.Request.Context(), actor(c), id)
	if err != nil {
		api.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, v)
}

// CreateVenue godoc
// @Summary      Create venue
// @Tags         admin
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        request  body      CreateVenueRequest  true  "Venue"
// @Success      201      {object}  Venue
// @Failure      400      {object}  api.ErrorResponse
// @Failure      403      {object}  api.ErrorResponse
// @Router       /admin/venues [post]
func (h *Handler) CreateVenue(c *gin.Context) {
	var req CreateVenueRequest
	if !api.BindJSON(c, &req) {
		return
	}

	v, err := h.service.Create(c.Request.Context(), actor(c), req)
	if err != nil {
		api.RespondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, v)
}

// UpdateVenue godoc
// @Summary      Update venue
// @Tags         admin
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        venueID  path      int                 true  "Venue ID"
// @Param        request  body      UpdateVenueRequest  true  "Fields to change"
// @Success      200      {object}  Venue
// @Failure      400      {object}  api.ErrorResponse
// @Failure      404      {object}  api.ErrorResponse
// @Router       /admin/venues/{venueID} [put]
func (h *Handler) UpdateVenue(c *gin.Context) {
	id, err := api.IDParam(c, "venueID")
	if err != nil {
		api.RespondError(c, err)
		return
	}

	var req UpdateVenueRequest
	if !api.BindJSON(c, &req) {
		return
	}

	v, err := h.service.Update(c.Request.Context(), actor(c), id, req)
	if err != nil {
		api.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, v)
}

// DeleteVenue godoc
// @Summary      Deactivate venue
// @Tags         admin
// @Security     BearerAuth
// @Produce      json
// @Param        venueID  path      int  true  "Venue ID"
// @Success      200      {object}  api.MessageResponse
// @Failure      404      {object}  api.ErrorResponse
// @Router       /admin/venues/{venueID} [delete]
func (h *Handler) DeleteVenue(c *gin.Context) {
	id, err := api.IDParam(c, "venueID")
	if err != nil {
		api.RespondError(c, err)
		return
	}

	if err := h.service.Delete(c.Request.Context(), actor(c), id); err != nil {
		api.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, api.MessageResponse{Message: "Venue deactivated"})
}
