package ginserver

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	gin "github.com/gin-gonic/gin"

	"chaletbay/internal/infra/config"
	"chaletbay/internal/infra/obs"
)

type BookingHTTP interface {
	List(c *gin.Context)
	Create(c *gin.Context)
	Get(c *gin.Context)
	Update(c *gin.Context)
	Delete(c *gin.Context)
	Quote(c *gin.Context)
	RecordPayment(c *gin.Context)
	RemovePayment(c *gin.Context)
	SetDiscount(c *gin.Context)
	SetCleaningFee(c *gin.Context)
}

type CalendarHTTP interface {
	Month(c *gin.Context)
}

type ReportHTTP interface {
	MonthlySummary(c *gin.Context)
	Collections(c *gin.Context)
}

type MessageHTTP interface {
	Messages(c *gin.Context)
}

type AuthHTTP interface {
	Login(c *gin.Context)
	Logout(c *gin.Context)
}

type Handlers struct {
	Booking        BookingHTTP
	Calendar       CalendarHTTP
	Report         ReportHTTP
	Message        MessageHTTP
	Auth           AuthHTTP
	AuthMiddleware gin.HandlerFunc
}

func NewServer(cfg config.Config, obsMW obs.Middleware, health obs.HealthHandlers, h Handlers) *http.Server {
	mode := configureGinMode(cfg.Env)
	if obsMW.Logger != nil {
		obsMW.Logger.Info("gin initialized", "mode", mode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(obsMW.RequestID())
	router.Use(obsMW.LoggerMiddleware())
	router.Use(cors.New(cors.Config{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders: []string{
			"Content-Length",
			"Content-Type",
			"X-Request-ID",
		},
		MaxAge: 12 * time.Hour,
	}))

	router.GET("/livez", health.Livez)
	router.GET("/readyz", health.Readyz)

	api := router.Group("/api/v1")
	if h.Auth != nil {
		api.POST("/auth/login", h.Auth.Login)
		api.POST("/auth/logout", h.Auth.Logout)
	}

	protected := api.Group("")
	if h.AuthMiddleware != nil {
		protected.Use(h.AuthMiddleware)
	}
	if h.Booking != nil {
		protected.GET("/bookings", h.Booking.List)
		protected.POST("/bookings", h.Booking.Create)
		protected.GET("/bookings/:id", h.Booking.Get)
		protected.PATCH("/bookings/:id", h.Booking.Update)
		protected.DELETE("/bookings/:id", h.Booking.Delete)
		protected.POST("/bookings/:id/payments", h.Booking.RecordPayment)
		protected.DELETE("/bookings/:id/payments/:paymentID", h.Booking.RemovePayment)
		protected.PUT("/bookings/:id/discount", h.Booking.SetDiscount)
		protected.PUT("/bookings/:id/cleaning-fee", h.Booking.SetCleaningFee)
		protected.POST("/quotes", h.Booking.Quote)
	}
	if h.Message != nil {
		protected.GET("/bookings/:id/messages", h.Message.Messages)
	}
	if h.Calendar != nil {
		protected.GET("/calendar/:year/:month", h.Calendar.Month)
	}
	if h.Report != nil {
		protected.GET("/reports/:year/:month/summary", h.Report.MonthlySummary)
		protected.GET("/reports/:year/:month/collections", h.Report.Collections)
	}

	return &http.Server{Addr: cfg.HTTPAddr, Handler: router}
}

func configureGinMode(env string) string {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "debug":
		gin.SetMode(gin.DebugMode)
		return gin.DebugMode
	case "test", "testing":
		gin.SetMode(gin.TestMode)
		return gin.TestMode
	default:
		gin.SetMode(gin.ReleaseMode)
		return gin.ReleaseMode
	}
}
