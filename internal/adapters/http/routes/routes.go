package routes

import (
	"crewledger/internal/adapters/http/handlers"
	"crewledger/internal/adapters/http/middleware"
	"crewledger/internal/adapters/persistence/repositories"
	"crewledger/internal/config"
	"crewledger/internal/core/services"
	"crewledger/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"gorm.io/gorm"
)

// Setup configures all routes for the application
func Setup(app *fiber.App, db *gorm.DB, cfg *config.Config) {
	// Initialize repositories
	userRepo := repositories.NewUserRepository(db)
	companyRepo := repositories.NewCompanyRepository(db)
	sessionRepo := repositories.NewSessionRepository(db)
	txRepo := repositories.NewTransactionRepository(db)
	personnelRepo := repositories.NewPersonnelRepository(db)
	paymentRepo := repositories.NewPaymentRepository(db)
	timesheetRepo := repositories.NewTimesheetRepository(db)
	projectRepo := repositories.NewProjectRepository(db)
	notifyRepo := repositories.NewNotificationRepository(db)
	messageRepo := repositories.NewMessageRepository(db)

	// Initialize services
	notifyService := services.NewNotificationService(notifyRepo, userRepo)
	authService := services.NewAuthService(userRepo, companyRepo, sessionRepo, cfg)
	userService := services.NewUserService(userRepo)
	txService := services.NewTransactionService(txRepo)
	financeService := services.NewFinanceService(db)
	personnelService := services.NewPersonnelService(personnelRepo)
	paymentService := services.NewPaymentService(paymentRepo, personnelRepo, notifyService)
	timesheetService := services.NewTimesheetService(timesheetRepo, projectRepo, notifyService)
	projectService := services.NewProjectService(projectRepo)
	messageService := services.NewMessageService(messageRepo, userRepo, notifyService)

	// Initialize handlers
	deps := &handlerSet{
		resolver:     authService,
		health:       handlers.NewHealthHandler(cfg),
		auth:         handlers.NewAuthHandler(authService),
		user:         handlers.NewUserHandler(userService),
		transaction:  handlers.NewTransactionHandler(txService, financeService),
		personnel:    handlers.NewPersonnelHandler(personnelService),
		payment:      handlers.NewPaymentHandler(paymentService),
		timesheet:    handlers.NewTimesheetHandler(timesheetService),
		project:      handlers.NewProjectHandler(projectService),
		notification: handlers.NewNotificationHandler(notifyService),
		message:      handlers.NewMessageHandler(messageService),
	}

	register(app, deps)
}

// handlerSet bundles everything route registration needs
type handlerSet struct {
	resolver     middleware.SessionResolver
	health       *handlers.HealthHandler
	auth         *handlers.AuthHandler
	user         *handlers.UserHandler
	transaction  *handlers.TransactionHandler
	personnel    *handlers.PersonnelHandler
	payment      *handlers.PaymentHandler
	timesheet    *handlers.TimesheetHandler
	project      *handlers.ProjectHandler
	notification *handlers.NotificationHandler
	message      *handlers.MessageHandler
}

func register(app *fiber.App, deps *handlerSet) {
	// Health check & root routes
	app.Get("/", deps.health.Root)
	app.Get("/health", deps.health.HealthCheck)

	// Swagger documentation
	app.Get("/swagger/*", swagger.HandlerDefault)

	api := app.Group("/api")

	// Auth routes (public, tighter rate limit)
	authRoutes := api.Group("/auth")
	setupAuthRoutes(authRoutes, deps)

	// Everything below requires a session
	protected := api.Group("", middleware.AuthMiddleware(deps.resolver))

	setupTransactionRoutes(protected.Group("/transactions"), deps.transaction)
	protected.Get("/financial-summary", deps.transaction.Summary)

	setupPersonnelRoutes(protected.Group("/personnel", middleware.AdminOnly()), deps.personnel)
	setupPaymentRoutes(protected.Group("/personnel-payments", middleware.AdminOnly()), deps.payment)
	setupTimesheetRoutes(protected.Group("/timesheets"), deps.timesheet)
	setupProjectRoutes(protected.Group("/projects"), deps.project)
	setupNotificationRoutes(protected.Group("/notifications"), deps.notification)
	setupMessageRoutes(protected.Group("/messages"), deps.message)

	protected.Get("/directory", deps.user.Directory)

	// Admin routes
	adminRoutes := protected.Group("/admin", middleware.AdminOnly())
	setupAdminRoutes(adminRoutes, deps.user)

	// Unmatched routes get the standard 404 body
	app.Use(response.EndpointNotFound)
}

// setupAuthRoutes configures authentication routes
func setupAuthRoutes(router fiber.Router, deps *handlerSet) {
	limited := middleware.AuthRateLimiter()
	authed := middleware.AuthMiddleware(deps.resolver)

	// Public routes
	router.Post("/register", limited, deps.auth.Register)
	router.Post("/login", limited, deps.auth.Login)
	router.Post("/forgot-password", limited, deps.auth.ForgotPassword)
	router.Post("/reset-password", limited, deps.auth.ResetPassword)
	router.Post("/verify-email", limited, deps.auth.VerifyEmail)

	// Logout tolerates missing tokens, no guard needed
	router.Post("/logout", deps.auth.Logout)

	// Protected routes
	router.Get("/user", authed, deps.auth.GetUser)
	router.Put("/user", authed, deps.auth.UpdateProfile)
	router.Put("/password", authed, deps.auth.ChangePassword)
	router.Post("/logout-all", authed, deps.auth.LogoutAll)
	router.Post("/verify-email/request", authed, deps.auth.RequestEmailVerification)
}

// setupTransactionRoutes configures ledger routes
func setupTransactionRoutes(router fiber.Router, h *handlers.TransactionHandler) {
	router.Post("/", h.Create)
	router.Get("/", h.List)
	router.Get("/:id", h.Get)
	router.Put("/:id", h.Update)
	router.Delete("/:id", h.Delete)
}

// setupPersonnelRoutes configures personnel roster routes
func setupPersonnelRoutes(router fiber.Router, h *handlers.PersonnelHandler) {
	router.Post("/", h.Create)
	router.Get("/", h.List)
	router.Get("/:id", h.Get)
	router.Put("/:id", h.Update)
	router.Delete("/:id", h.Delete)
}

// setupPaymentRoutes configures personnel payment routes
func setupPaymentRoutes(router fiber.Router, h *handlers.PaymentHandler) {
	router.Post("/", h.Create)
	router.Get("/", h.List)
	router.Get("/:id", h.Get)
}

// setupTimesheetRoutes configures timesheet routes
func setupTimesheetRoutes(router fiber.Router, h *handlers.TimesheetHandler) {
	router.Post("/", h.Create)
	router.Get("/", h.List)
	router.Get("/:id", h.Get)
	router.Put("/:id", h.Update)
	router.Delete("/:id", h.Delete)
	router.Patch("/:id/status", middleware.AdminOnly(), h.Review)
}

// setupProjectRoutes configures project routes
func setupProjectRoutes(router fiber.Router, h *handlers.ProjectHandler) {
	router.Post("/", middleware.AdminOnly(), h.Create)
	router.Get("/", h.List)
	router.Get("/:id", h.Get)
	router.Put("/:id", middleware.AdminOnly(), h.Update)
	router.Delete("/:id", middleware.AdminOnly(), h.Delete)
}

// setupNotificationRoutes configures notification routes
func setupNotificationRoutes(router fiber.Router, h *handlers.NotificationHandler) {
	router.Get("/", h.List)
	router.Post("/read-all", h.MarkAllRead)
	router.Patch("/:id/read", h.MarkRead)
}

// setupMessageRoutes configures messaging routes
func setupMessageRoutes(router fiber.Router, h *handlers.MessageHandler) {
	router.Post("/", h.Send)
	router.Get("/", h.List)
	router.Patch("/:id/read", h.MarkRead)
}

// setupAdminRoutes configures the admin panel routes
func setupAdminRoutes(router fiber.Router, h *handlers.UserHandler) {
	router.Get("/users", h.List)
	router.Patch("/users/:id/role", h.SetRole)
	router.Patch("/users/:id/active", h.SetActive)
}
