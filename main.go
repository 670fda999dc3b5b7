// File: medicare/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"medicare/config"
	"medicare/database"
	appointmentRepo "medicare/database/repository/appointment"
	bookingRepo "medicare/database/repository/booking"
	doctorRepo "medicare/database/repository/doctor"
	paymentRepo "medicare/database/repository/payment"
	userRepoPkg "medicare/database/repository/user"
	"medicare/handlers"
	"medicare/middleware"
	"medicare/routes"
	"medicare/services/availability"
	"medicare/services/booking"
	"medicare/services/doctor"
	"medicare/services/payment"
	"medicare/services/user"
	"medicare/utils"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v76"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	client, err := database.Connect(context.Background())
	if err != nil {
		logger.Sugar().Fatalf("main: failed to connect to MongoDB: %v", err)
	}
	utils.InitAuthCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())
	stripe.Key = config.AppConfig.StripeKey

	// repositories.
	apptRepo := appointmentRepo.NewMongoAppointmentRepo(client)
	bkRepo := bookingRepo.NewMongoBookingRepo(client)
	usrRepo := userRepoPkg.NewMongoUserRepo(client)
	docRepo := doctorRepo.NewMongoDoctorRepo(client)
	payRepo := paymentRepo.NewMongoPaymentRepo(client)

	// services.
	availabilityService := &availability.DefaultAvailabilityService{
		AppointmentRepo: apptRepo,
		BookingRepo:     bkRepo,
	}
	bookingService := &booking.DefaultBookingService{Repo: bkRepo}
	paymentService := &payment.DefaultPaymentService{Repo: payRepo}
	userService := &user.DefaultUserService{Repo: usrRepo, Cache: utils.GetAuthCacheClient()}
	doctorService := &doctor.DefaultDoctorService{Repo: docRepo}

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		Appointment: handlers.NewAppointmentHandler(availabilityService, logger),
		Booking:     handlers.NewBookingHandler(bookingService, logger),
		Payment:     handlers.NewPaymentHandler(paymentService, logger),
		User:        handlers.NewUserHandler(userService, logger),
		Doctor:      handlers.NewDoctorHandler(doctorService, logger),
		UserService: userService,
		AuthCache:   utils.GetAuthCacheClient(),
		MongoClient: client,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "5000"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}
	if err := database.Disconnect(ctx, client); err != nil {
		logger.Sugar().Warnf("main: failed to disconnect from MongoDB: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
