package routes

import (
	"net/http"
	"time"

	"medicare/handlers"
	"medicare/middleware"
	"medicare/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterAppointmentRoutes registers the public availability endpoints.
func RegisterAppointmentRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/appointments", hb.Appointment.GetAppointments)
	r.GET("/appointmentSpecialty", hb.Appointment.GetSpecialties)
}

// RegisterBookingRoutes registers the booking endpoints. Listing bookings
// by email requires a bearer token matching that email.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.POST("/booking", hb.Booking.CreateBooking)
	r.GET("/booking/:id", hb.Booking.GetBookingByID)
	r.GET("/booking", middleware.VerifyJWT(), hb.Booking.GetBookingsByEmail)
}

// RegisterPaymentRoutes registers the payment endpoints. Listing the
// payments behind a booking requires a bearer token.
func RegisterPaymentRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.POST("/create-payment-intent", hb.Payment.CreateIntent)
	r.POST("/payments", hb.Payment.RecordPayment)
	r.GET("/payments/:bookingId", middleware.VerifyJWT(), hb.Payment.GetPayments)
}

// RegisterUserRoutes registers user, token and admin-role endpoints.
func RegisterUserRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/jwt", hb.User.IssueToken)
	r.GET("/users", hb.User.GetUsers)
	r.POST("/users", hb.User.RegisterUser)
	r.GET("/users/admin/:email", middleware.VerifyJWT(), hb.User.CheckAdmin)
	r.PUT("/users/admin/:id",
		middleware.VerifyJWT(),
		middleware.VerifyAdmin(hb.UserService, hb.AuthCache),
		hb.User.MakeAdmin,
	)
}

// RegisterDoctorRoutes registers the admin-only doctor endpoints.
func RegisterDoctorRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/doctors")
	{
		api.Use(middleware.VerifyJWT(), middleware.VerifyAdmin(hb.UserService, hb.AuthCache))
		api.GET("", hb.Doctor.GetDoctors)
		api.POST("", hb.Doctor.CreateDoctor)
		api.DELETE("/:id", hb.Doctor.DeleteDoctor)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/health", func(c *gin.Context) {
		status := utils.CheckHealth(c.Request.Context(), hb.MongoClient, hb.AuthCache)
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "Medicare server is running",
			"checks":  status,
		})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r, hb)
	RegisterAppointmentRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterPaymentRoutes(r, hb)
	RegisterUserRoutes(r, hb)
	RegisterDoctorRoutes(r, hb)
}
