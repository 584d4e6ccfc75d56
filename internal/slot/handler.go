package slot

import (
	"net/http"
	"strings"

	"sportbook/internal/api"
	"sportbook/internal/apperr"
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

func actor(c *gin.Context) auth.Actor {
	a, _ := auth.GetActor(c)
	return a
}

func queryDate(c *gin.Context, key string) (*pricing.Date, error) {
	raw := c.Query(key)
	if raw == "" {
		return nil, nil
	}
	d, err := pricing.ParseDate(raw)
	if err != nil {
		return nil, apperr.BadRequest("invalid " + key + ", expected YYYY-MM-DD")
	}
	return &d, nil
}

// ListSlots godoc
// @Summary      List venue slots
// @Tags         slots
// @Produce      json
// @Param        venueID  path      int     true   "Venue ID"
// @Param        date     query     string  false  "Exact date (YYYY-MM-DD)"
// @Param        from     query     string  false  "From date (inclusive)"
// @Param        to       query     string  false  "To date (inclusive)"
// @Param        status   query     string  false  "AVAILABLE | BOOKED | BLOCKED"
// @Param        page     query     int     false  "Page"
// @Param        limit    query     int     false  "Page size"
// @Success      200      {object}  api.ListResponse[Slot]
// @Failure      400      {object}  api.ErrorResponse
// @Failure      404      {object}  api.ErrorResponse
// @Router       /venues/{venueID}/slots [get]
func (h *Handler) ListSlots(c *gin.Context) {
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
	for key, dst := range map[string]**pricing.Date{"date": &f.Date, "from": &f.From, "to": &f.To} {
		if *dst, err = queryDate(c, key); err != nil {
			api.RespondError(c, err)
			return
		}
	}
	if raw := c.Query("status"); raw != "" {
		st := Status(strings.ToUpper(raw))
		f.Status = &st
	}

	slots, total, err := h.service.ListSlots(c.Request.Context(), actor(c), venueID, f)
	if err != nil {
		api.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, api.NewList(slots, f.Page, f.Limit, total))
}

// GetSlot godoc
// @Summary      Get slot
// @Tags         slots
// @Produce      json
// @Param        slotID  path      int  true  "Slot ID"
// @Success      200     {object}  Slot
// @Failure      404     {object}  api.ErrorResponse
// @Router       /slots/{slotID} [get]
func (h *Handler) GetSlot(c *gin.Context) {
	id, err := api.IDParam(c, "slotID")
	if err != nil {
		api.RespondError(c, err)
		return
	}

	s, err := h.service.GetSlot(c.Request.Context(), id)
	if err != nil {
		api.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, s)
}

// CreateSlot godoc
// @Summary      Create slot
// @Tags         admin
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        venueID  path      int                true  "Venue ID"
// @Param        request  body      CreateSlotRequest  true  "Slot"
// @Success      201      {object}  Slot
// @Failure      400      {object}  api.ErrorResponse
// @Failure      404      {object}  api.ErrorResponse
// @Failure      409      {object}  api.ErrorResponse
// @Router       /admin/venues/{venueID}/slots [post]
func (h *Handler) CreateSlot(c *gin.Context) {
	venueID, err := api.IDParam(c, "venueID")
	if err != nil {
		api.RespondError(c, err)
		return
	}

	var req CreateSlotRequest
	if !api.BindJSON(c, &req) {
		return
	}

	s, err := h.service.CreateSlot(c.Request.Context(), actor(c), venueID, req)
	if err != nil {
		api.RespondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, s)
}

// CreateBulkSlots godoc
// @Summary      Bulk-create slots
// @Description  Creates every date x time range combination. Combinations overlapping an existing slot are skipped.
// @Tags         admin
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        venueID  path      int                true  "Venue ID"
// @Param        request  body      BulkCreateRequest  true  "Dates and time ranges"
// @Success      201      {object}  BulkCreateResult
// @Failure      400      {object}  api.ErrorResponse
// @Failure      404      {object}  api.ErrorResponse
// @Router       /admin/venues/{venueID}/slots/bulk [post]
func (h *Handler) CreateBulkSlots(c *gin.Context) {
	venueID, err := api.IDParam(c, "venueID")
	if err != nil {
		api.RespondError(c, err)
		return
	}

	var req BulkCreateRequest
	if !api.BindJSON(c, &req) {
		return
	}

	result, err := h.service.CreateBulkSlots(c.Request.Context(), actor(c), venueID, req)
	if err != nil {
		api.RespondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, result)
}

// UpdateSlot godoc
// @Summary      Update slot
// @Tags         admin
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        slotID   path      int                true  "Slot ID"
// @Param        request  body      UpdateSlotRequest  true  "Fields to change"
// @Success      200      {object}  Slot
// @Failure      400      {object}  api.ErrorResponse
// @Failure      404      {object}  api.ErrorResponse
// @Failure      409      {object}  api.ErrorResponse
// @Router       /admin/slots/{slotID} [put]
func (h *Handler) UpdateSlot(c *gin.Context) {
	id, err := api.IDParam(c, "slotID")
	if err != nil {
		api.RespondError(c, err)
		return
	}

	var req UpdateSlotRequest
	if !api.BindJSON(c, &req) {
		return
	}

	s, err := h.service.UpdateSlot(c.Request.Context(), actor(c), id, req)
	if err != nil {
		api.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, s)
}

// DeleteSlot godoc
// @Summary      Delete slot
// @Tags         admin
// @Security     BearerAuth
// @Produce      json
// @Param        slotID  path      int  true  "Slot ID"
// @Success      200     {object}  api.MessageResponse
// @Failure      400     {object}  api.ErrorResponse
// @Failure      404     {object}  api.ErrorResponse
// @Router       /admin/slots/{slotID} [delete]
func (h *Handler) DeleteSlot(c *gin.Context) {
	id, err := api.IDParam(c, "slotID")
	if err != nil {
		api.RespondError(c, err)
		return
	}

	if err := h.service.DeleteSlot(c.Request.Context(), actor(c), id); err != nil {
		api.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, api.MessageResponse{Message: "Slot deleted"})
}
