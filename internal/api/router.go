package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/medicore/hospital-api/docs"
	"github.com/medicore/hospital-api/internal/api/handler"
	"github.com/medicore/hospital-api/internal/api/middleware"
	"github.com/medicore/hospital-api/internal/core/domain"
	"github.com/medicore/hospital-api/internal/core/ports"
	"github.com/medicore/hospital-api/internal/core/service"
	mongodb "github.com/medicore/hospital-api/internal/infrastructure/db/mongo"
	redisdb "github.com/medicore/hospital-api/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, jwtSecret string, audit ports.AuditSink, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("hospital"))

	// --- Repositories ---
	accountRepo := mongodb.NewAccountRepository(db)
	profileRepo := mongodb.NewProfileRepository(db)
	billingRepo := mongodb.NewBillingRepository(db)
	insuranceRepo := mongodb.NewInsuranceRepository(db)
	revenueRepo := mongodb.NewRevenueRepository(db)
	appointmentRepo := mongodb.NewAppointmentRepository(db)
	prescriptionRepo := mongodb.NewPrescriptionRepository(db)

	// --- Services ---
	tokenService := service.NewTokenService(jwtSecret, 24*time.Hour)
	throttle := redisdb.NewLoginThrottle(rdb)
	authService := service.NewAuthService(accountRepo, profileRepo, tokenService, throttle, audit)
	billingService := service.NewBillingService(billingRepo)
	insuranceService := service.NewInsuranceService(insuranceRepo)
	revenueService := service.NewRevenueService(revenueRepo)
	patientService := service.NewPatientService(accountRepo, profileRepo, appointmentRepo, prescriptionRepo)
	doctorService := service.NewDoctorService(profileRepo)
	adminService := service.NewAdminService(accountRepo, billingRepo, insuranceRepo, revenueRepo)

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(authService)
	billingHandler := handler.NewBillingHandler(billingService)
	insuranceHandler := handler.NewInsuranceHandler(insuranceService)
	revenueHandler := handler.NewRevenueHandler(revenueService)
	patientHandler := handler.NewPatientHandler(patientService)
	doctorHandler := handler.NewDoctorHandler(doctorService)
	adminHandler := handler.NewAdminHandler(adminService)

	authGate := middleware.Auth(tokenService)

	// --- Public routes ---
	apiGroup := e.Group("/api")
	apiGroup.POST("/signup", authHandler.Signup)
	apiGroup.POST("/login", authHandler.Login)

	// --- Protected routes ---
	billing := apiGroup.Group("/billing", authGate)
	billing.GET("", billingHandler.List)
	billing.POST("", billingHandler.Create)
	billing.PUT("/:id", billingHandler.Update)
	billing.DELETE("/:id", billingHandler.Delete)

	insurance := apiGroup.Group("/insurance", authGate)
	insurance.GET("", insuranceHandler.List)
	insurance.POST("", insuranceHandler.Create)
	insurance.PUT("/:id", insuranceHandler.Update)
	insurance.DELETE("/:id", insuranceHandler.Delete)

	revenue := apiGroup.Group("/revenue", authGate)
	revenue.GET("", revenueHandler.List)
	revenue.POST("", revenueHandler.Create)

	patient := apiGroup.Group("/patient", authGate)
	patient.GET("/profile", patientHandler.Profile)
	patient.PUT("/profile", patientHandler.UpdateProfile)
	patient.GET("/appointments", patientHandler.Appointments)
	patient.GET("/care-team", patientHandler.CareTeam)
	patient.GET("/prescriptions", patientHandler.Prescriptions)
	patient.GET("/available-slots", patientHandler.AvailableSlots)
	patient.POST("/book-appointment", patientHandler.BookAppointment)

	doctor := apiGroup.Group("/doctor", authGate)
	doctor.GET("/all", doctorHandler.All)

	admin := apiGroup.Group("/admin", authGate, middleware.RBAC(domain.RoleAdmin))
	admin.GET("/stats", adminHandler.Stats)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)

	// --- Operational endpoints ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
