package server

import (
	"context"
	"net/http"
	"time"

	"sportbook/internal/api"
	"sportbook/internal/apperr"
	"sportbook/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type pinger interface {
	PingContext(ctx context.Context) error
}

type mailer interface {
	Send(ctx context.Context, to, name, subject, body string) error
	QueueLength(ctx context.Context) int64
}

type SystemHandler struct {
	db    pinger
	email mailer
}

func NewSystemHandler(db pinger, email mailer) *SystemHandler {
	return &SystemHandler{db: db, email: email}
}

type testEmailRequest struct {
	Email string `json:"email" binding:"required,email" example:"admin@sportbook.app"`
}

// @Summary      Health check
// @Description  Reports whether the API and its database are reachable.
// @Tags         system
// @Produce      json
// @Success      200 {object} api.HealthResponse
// @Failure      503 {object} api.HealthResponse
// @Router       /health [get]
func (h *SystemHandler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	if err := h.db.PingContext(ctx); err != nil {
		logger.Warn("health check: database unreachable", "error", err)
		c.JSON(http.StatusServiceUnavailable, api.HealthResponse{Status: "degraded", Database: "unreachable"})
		return
	}

	c.JSON(http.StatusOK, api.HealthResponse{Status: "ok", Database: "ok"})
}

// @Summary      Queue a test email
// @Tags         system
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body testEmailRequest true "Recipient"
// @Success      202 {object} api.MessageResponse
// @Failure      400 {object} api.ErrorResponse
// @Failure      500 {object} api.ErrorResponse
// @Router       /admin/test-email [post]
func (h *SystemHandler) TestEmail(c *gin.Context) {
	var req testEmailRequest
	if !api.BindJSON(c, &req) {
		return
	}

	if err := h.email.Send(c.Request.Context(), req.Email, "Admin", "Test email from SportBook", "Email delivery is working."); err != nil {
		api.RespondError(c, apperr.Internal(err))
		return
	}

	c.JSON(http.StatusAccepted, api.MessageResponse{Message: "Email queued"})
}

// @Summary      Prometheus metrics
// @Description  Exposes Prometheus metrics in text format
// @Tags         system
// @Produce      text/plain
// @Success      200 {string} string
// @Router       /metrics [get]
func (h *SystemHandler) Metrics() gin.HandlerFunc {
	prom := promhttp.Handler()
	return func(c *gin.Context) {
		// refreshes the email queue gauge before the scrape
		h.email.QueueLength(c.Request.Context())
		prom.ServeHTTP(c.Writer, c.Request)
	}
}
