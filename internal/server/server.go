package server

import (
	"context"
	"net/http"
	"time"

	"sportbook/internal/auth"
	"sportbook/internal/booking"
	"sportbook/internal/config"
	"sportbook/internal/db"
	"sportbook/internal/email"
	"sportbook/internal/review"
	"sportbook/internal/slot"
	"sportbook/internal/user"
	"sportbook/internal/venue"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
)

type Server struct {
	router *gin.Engine
	http   *http.Server
	db     *sqlx.DB
	config *config.Config
	email  *email.Service
	stop   context.CancelFunc
}

// handlers groups everything the router needs so tests can build a router
// around mocked services.
type handlers struct {
	users    *user.Handler
	venues   *venue.Handler
	slots    *slot.Handler
	bookings *booking.Handler
	reviews  *review.Handler
	system   *SystemHandler
}

func New(database *sqlx.DB, cfg *config.Config, emailService *email.Service, tokens *auth.TokenManager, loc *time.Location) *Server {
	tx := db.NewTxManager(database)

	userRepo := user.NewRepository(database)
	venueRepo := venue.NewRepository(database)
	slotRepo := slot.NewRepository(database)
	bookingRepo := booking.NewRepository(database)
	reviewRepo := review.NewRepository(database)

	h := handlers{
		users:  user.NewHandler(user.NewService(userRepo, tokens)),
		venues: venue.NewHandler(venue.NewService(venueRepo)),
		slots:  slot.NewHandler(slot.NewService(slotRepo, venueRepo, tx)),
		bookings: booking.NewHandler(booking.NewService(
			bookingRepo, slotRepo, venueRepo, tx, booking.RealClock{}, emailService, loc,
		)),
		reviews: review.NewHandler(review.NewService(reviewRepo, venueRepo)),
		system:  NewSystemHandler(database, emailService),
	}

	ctx, stop := context.WithCancel(context.Background())
	router := newRouter(ctx, h, tokens, cfg)

	return &Server{
		router: router,
		db:     database,
		config: cfg,
		email:  emailService,
		stop:   stop,
	}
}

// newRouter builds the route table. Background work started by middleware
// ends with ctx.
func newRouter(ctx context.Context, h handlers, tokens *auth.TokenManager, cfg *config.Config) *gin.Engine {
	router := gin.New()
	router.Use(
		gin.Recovery(),
		RequestIDMiddleware(),
		RequestLoggingMiddleware(),
		MetricsMiddleware(),
		corsMiddleware(),
	)
	if cfg.RateLimitRPS > 0 {
		router.Use(RateLimitMiddleware(ctx, cfg.RateLimitRPS, cfg.RateLimitBurst))
	}

	router.GET("/health", h.system.Health)
	router.GET("/metrics", h.system.Metrics())
	SetupSwagger(router)

	public := router.Group("/auth")
	{
		public.POST("/register", h.users.Register)
		public.POST("/login", h.users.Login)
		public.POST("/refresh", h.users.RefreshToken)
	}

	// Catalogue reads are open; handlers pick up an optional bearer token
	// so admins can see inactive venues.
	catalogue := router.Group("/")
	catalogue.Use(auth.OptionalAuthMiddleware(tokens))
	{
		catalogue.GET("/venues", h.venues.ListVenues)
		catalogue.GET("/venues/:venueID", h.venues.GetVenue)
		catalogue.GET("/venues/:venueID/slots", h.slots.ListSlots)
		catalogue.GET("/venues/:venueID/reviews", h.reviews.ListVenueReviews)
		catalogue.GET("/slots/:slotID", h.slots.GetSlot)
		catalogue.GET("/slots/:slotID/availability", h.bookings.CheckAvailability)
		catalogue.GET("/reviews/:reviewID", h.reviews.GetReview)
	}

	authMiddleware := auth.AuthMiddleware(tokens)
	protected := router.Group("/")
	protected.Use(authMiddleware)
	{
		protected.GET("/me", h.users.GetMe)

		protected.POST("/bookings", h.bookings.CreateBooking)
		protected.GET("/bookings", h.bookings.ListMyBookings)
		protected.GET("/bookings/:bookingID", h.bookings.GetBooking)
		protected.POST("/bookings/:bookingID/cancel", h.bookings.CancelBooking)

		protected.POST("/venues/:venueID/reviews", h.reviews.CreateReview)
		protected.PUT("/reviews/:reviewID", h.reviews.UpdateReview)
		protected.DELETE("/reviews/:reviewID", h.reviews.DeleteReview)
	}

	admin := router.Group("/admin")
	admin.Use(authMiddleware, auth.RequireRole(auth.RoleAdmin))
	{
		admin.POST("/venues", h.venues.CreateVenue)
		admin.PUT("/venues/:venueID", h.venues.UpdateVenue)
		admin.DELETE("/venues/:venueID", h.venues.DeleteVenue)

		admin.POST("/venues/:venueID/slots", h.slots.CreateSlot)
		admin.POST("/venues/:venueID/slots/bulk", h.slots.CreateBulkSlots)
		admin.PUT("/slots/:slotID", h.slots.UpdateSlot)
		admin.DELETE("/slots/:slotID", h.slots.DeleteSlot)

		admin.GET("/bookings", h.bookings.ListBookings)
		admin.PATCH("/bookings/:bookingID/status", h.bookings.UpdateStatus)
		admin.GET("/analytics/bookings", h.bookings.Analytics)

		admin.POST("/test-email", h.system.TestEmail)
	}

	return router
}

func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) Start(port string) error {
	s.http = &http.Server{
		Addr:              ":" + port,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s.http.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	if s.stop != nil {
		s.stop()
	}
	if s.http == nil {
		return nil
	}
	return s.http.Shutdown(ctx)
}

func corsMiddleware() gin.HandlerFunc {
	cc := cors.DefaultConfig()
	cc.AllowAllOrigins = true
	cc.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	cc.AllowHeaders = append(cc.AllowHeaders, "Authorization", "Accept", "Cache-Control", "X-Requested-With", requestIDHeader)
	cc.ExposeHeaders = []string{requestIDHeader}
	cc.MaxAge = 12 * time.Hour
	return cors.New(cc)
}
