package booking

import (
	"net/http"
	"strings"

	"sportbook/internal/api"
	"sportbook/internal/auth"
	"sportbook/internal/pricing"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func queryDate(c *gin.Context, key string) (*pricing.Date, error) {
	t, err := api.QueryDatePtr(c, key)
	if err != nil || t == nil {
		return nil, err
	}
	d := pricing.DateOf(*t)
	return &d, nil
}

func parseFilter(c *gin.Context, admin bool) (Filter, error) {
	var f Filter
	var err error

	if f.Page, f.Limit, err = api.Page(c); err != nil {
		return f, err
	}
	if raw := c.Query("status"); raw != "" {
		st := Status(strings.ToUpper(raw))
		f.Status = &st
	}
	if f.From, err = queryDate(c, "from"); err != nil {
		return f, err
	}
	if f.To, err = queryDate(c, "to"); err != nil {
		return f, err
	}
	if f.VenueID, err = api.QueryIntPtr(c, "venue_id"); err != nil {
		return f, err
	}
	if admin {
		if f.UserID, err = api.QueryIntPtr(c, "user_id"); err != nil {
			return f, err
		}
	}
	f.SortBy = c.Query("sort_by")
	f.Order = c.Query("order")
	return f, nil
}

// CheckAvailability godoc
// @Summary      Check slot availability
// @Description  Reports whether the slot can be booked now and, if not, why.
// @Tags         slots
// @Produce      json
// @Param        slotID  path      int  true  "Slot ID"
// @Success      200     {object}  Availability
// @Failure      400     {object}  api.ErrorResponse
// @Router       /slots/{slotID}/availability [get]
func (h *Handler) CheckAvailability(c *gin.Context) {
	slotID, err := api.IDParam(c, "slotID")
	if err != nil {
		api.RespondError(c, err)
		return
	}

	availability, err := h.service.CheckAvailability(c.Request.Context(), slotID)
	if err != nil {
		api.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, availability)
}

// CreateBooking godoc
// @Summary      Book a slot
// @Description  Reserves the slot and creates a PENDING booking priced from the venue hourly rate.
// @Tags         bookings
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        request  body      CreateBookingRequest  true  "Slot to book"
// @Success      201      {object}  Booking
// @Failure      400      {object}  api.ErrorResponse
// @Failure      404      {object}  api.ErrorResponse
// @Failure      409      {object}  api.ErrorResponse
// @Router       /bookings [post]
func (h *Handler) CreateBooking(c *gin.Context) {
	actor, err := auth.GetActor(c)
	if err != nil {
		api.RespondError(c, err)
		return
	}

	var req CreateBookingRequest
	if !api.BindJSON(c, &req) {
		return
	}

	b, err := h.service.CreateBooking(c.Request.Context(), actor, req.SlotID)
	if err != nil {
		api.RespondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, b)
}

// ListMyBookings godoc
// @Summary      List my bookings
// @Tags         bookings
// @Security     BearerAuth
// @Produce      json
// @Param        status    query     string  false  "PENDING | CONFIRMED | CANCELLED | COMPLETED"
// @Param        venue_id  query     int     false  "Venue ID"
// @Param        from      query     string  false  "Slot date from (YYYY-MM-DD)"
// @Param        to        query     string  false  "Slot date to (YYYY-MM-DD)"
// @Param        sort_by   query     string  false  "created_at | date | total_price | status"
// @Param        order     query     string  false  "asc | desc"
// @Param        page      query     int     false  "Page"
// @Param        limit     query     int     false  "Page size"
// @Success      200       {object}  api.ListResponse[BookingWithDetails]
// @Failure      400       {object}  api.ErrorResponse
// @Failure      401       {object}  api.ErrorResponse
// @Router       /bookings [get]
func (h *Handler) ListMyBookings(c *gin.Context) {
	actor, err := auth.GetActor(c)
	if err != nil {
		api.RespondError(c, err)
		return
	}

	f, err := parseFilter(c, false)
	if err != nil {
		api.RespondError(c, err)
		return
	}

	bookings, total, err := h.service.ListMyBookings(c.Request.Context(), actor, f)
	if err != nil {
		api.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, api.NewList(bookings, f.Page, f.Limit, total))
}

// GetBooking godoc
// @Summary      Get booking
// @Tags         bookings
// @Security     BearerAuth
// @Produce      json
// @Param        bookingID  path      int  true  "Booking ID"
// @Success      200        {object}  BookingWithDetails
// @Failure      403        {object}  api.ErrorResponse
// @Failure      404        {object}  api.ErrorResponse
// @Router       /bookings/{bookingID} [get]
func (h *Handler) GetBooking(c *gin.Context) {
	actor, err := auth.GetActor(c)
	if err != nil {
		api.RespondError(c, err)
		return
	}
	id, err := api.IDParam(c, "bookingID")
	if err != nil {
		api.RespondError(c, err)
		return
	}

	b, err := h.service.GetBooking(c.Request.Context(), actor, id)
	if err != nil {
		api.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, b)
}

// CancelBooking godoc
// @Summary      Cancel booking
// @Description  Frees the slot and refunds 100% more than 24h ahead, 50% from 12h to 24h, nothing under 12h.
// @Tags         bookings
// @Security     BearerAuth
// @Produce      json
// @Param        bookingID  path      int  true  "Booking ID"
// @Success      200        {object}  Booking
// @Failure      400        {object}  api.ErrorResponse
// @Failure      403        {object}  api.ErrorResponse
// @Failure      404        {object}  api.ErrorResponse
// @Router       /bookings/{bookingID}/cancel [post]
func (h *Handler) CancelBooking(c *gin.Context) {
	actor, err := auth.GetActor(c)
	if err != nil {
		api.RespondError(c, err)
		return
	}
	id, err := api.IDParam(c, "bookingID")
	if err != nil {
		api.RespondError(c, err)
		return
	}

	b, err := h.service.CancelBooking(c.Request.Context(), actor, id)
	if err != nil {
		api.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, b)
}

// ListBookings godoc
// @Summary      List all bookings
// @Tags         admin
// @Security     BearerAuth
// @Produce      json
// @Param        status    query     string  false  "PENDING | CONFIRMED | CANCELLED | COMPLETED"
// @Param        venue_id  query     int     false  "Venue ID"
// @Param        user_id   query     int     false  "User ID"
// @Param        from      query     string  false  "Slot date from (YYYY-MM-DD)"
// @Param        to        query     string  false  "Slot date to (YYYY-MM-DD)"
// @Param        sort_by   query     string  false  "created_at | date | total_price | status"
// @Param        order     query     string  false  "asc | desc"
// @Param        page      query     int     false  "Page"
// @Param        limit     query     int     false  "Page size"
// @Success      200       {object}  api.ListResponse[BookingWithDetails]
// @Failure      400       {object}  api.ErrorResponse
// @Failure      403       {object}  api.ErrorResponse
// @Router       /admin/bookings [get]
func (h *Handler) ListBookings(c *gin.Context) {
	actor, err := auth.GetActor(c)
	if err != nil {
		api.RespondError(c, err)
		return
	}

	f, err := parseFilter(c, true)
	if err != nil {
		api.RespondError(c, err)
		return
	}

	bookings, total, err := h.service.ListBookings(c.Request.Context(), actor, f)
	if err != nil {
		api.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, api.NewList(bookings, f.Page, f.Limit, total))
}

// UpdateStatus godoc
// @Summary      Set booking status
// @Description  Admin overwrite. CONFIRMED also marks the booking PAID.
// @Tags         admin
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        bookingID  path      int                  true  "Booking ID"
// @Param        request    body      UpdateStatusRequest  true  "New status"
// @Success      200        {object}  Booking
// @Failure      400        {object}  api.ErrorResponse
// @Failure      403        {object}  api.ErrorResponse
// @Failure      404        {object}  api.ErrorResponse
// @Failure      409        {object}  api.ErrorResponse
// @Router       /admin/bookings/{bookingID}/status [patch]
func (h *Handler) UpdateStatus(c *gin.Context) {
	actor, err := auth.GetActor(c)
	if err != nil {
		api.RespondError(c, err)
		return
	}
	id, err := api.IDParam(c, "bookingID")
	if err != nil {
		api.RespondError(c, err)
		return
	}

	var req UpdateStatusRequest
	if !api.BindJSON(c, &req) {
		return
	}

	b, err := h.service.UpdateBookingStatus(c.Request.Context(), actor, id, Status(strings.ToUpper(string(req.Status))))
	if err != nil {
		api.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, b)
}

// Analytics godoc
// @Summary      Booking analytics
// @Description  Created, cancelled and completed counts plus revenue, grouped by creation day or by venue.
// @Tags         admin
// @Security     BearerAuth
// @Produce      json
// @Param        group_by  query     string  false  "day | venue"
// @Param        from      query     string  false  "From (YYYY-MM-DD), default 30 days before to"
// @Param        to        query     string  false  "To (YYYY-MM-DD), default today"
// @Success      200       {object}  Analytics
// @Failure      400       {object}  api.ErrorResponse
// @Failure      403       {object}  api.ErrorResponse
// @Router       /admin/analytics/bookings [get]
func (h *Handler) Analytics(c *gin.Context) {
	actor, err := auth.GetActor(c)
	if err != nil {
		api.RespondError(c, err)
		return
	}

	from, err := queryDate(c, "from")
	if err != nil {
		api.RespondError(c, err)
		return
	}
	to, err := queryDate(c, "to")
	if err != nil {
		api.RespondError(c, err)
		return
	}

	stats, err := h.service.Analytics(c.Request.Context(), actor, GroupBy(strings.ToLower(c.Query("group_by"))), from, to)
	if err != nil {
		api.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}
