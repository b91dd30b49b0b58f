package routes

import (
	"context"
	"log"
	_ "okbikes_admin/docs" // This will be auto-generated
	"okbikes_admin/internal/adapter/http/handlers"
	"okbikes_admin/internal/adapter/http/middleware"
	"okbikes_admin/internal/adapter/persistence/repository"
	"okbikes_admin/internal/infrastructure/config"
	"okbikes_admin/internal/infrastructure/database"
	"okbikes_admin/internal/infrastructure/documents"
	"okbikes_admin/internal/infrastructure/notify"
	"okbikes_admin/internal/infrastructure/rentalapi"
	"okbikes_admin/internal/usecase"
	"okbikes_admin/internal/usecase/interfaces"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.New()

const sessionJanitorInterval = time.Minute

// Run will start the server
func Run() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load the configuration: %v", err)
	}

	setMiddlewares(cfg)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	if err := getRoutes(cfg); err != nil {
		log.Fatalf("Failed to wire the application: %v", err)
	}

	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes(cfg config.Config) error {
	client, err := rentalapi.NewClient(cfg.RentalAPIBaseURL, cfg.RentalAPITimeout)
	if err != nil {
		return err
	}

	hub := notify.NewHub()
	workflowUseCase := usecase.NewBookingWorkflowUseCase(client, client, hub)

	// Ending a session drops its open booking views and closes its sockets.
	onSessionEnd := func(sessionID string) {
		workflowUseCase.DropSession(sessionID)
		hub.CloseSession(sessionID)
	}

	sessionRepo, err := newSessionRepository(cfg, onSessionEnd)
	if err != nil {
		return err
	}

	sessionUseCase := usecase.NewSessionUseCase(sessionRepo, client, cfg.SessionTTL, onSessionEnd)
	bookingUseCase := usecase.NewBookingUseCase(client, client)
	invoiceUseCase := usecase.NewInvoiceUseCase(workflowUseCase, documents.NewInvoiceRenderer(cfg.InvoiceLocation))
	fleetUseCase := usecase.NewFleetUseCase(client)
	dashboardUseCase := usecase.NewDashboardUseCase(client, client, client)

	guard := middleware.NewSessionGuard(sessionUseCase, cfg.SessionCookieSecure)

	sessionHandler := handlers.NewSessionHandler(sessionUseCase, guard)
	bookingHandler := handlers.NewBookingHandler(bookingUseCase)
	bookingViewHandler := handlers.NewBookingViewHandler(workflowUseCase)
	invoiceHandler := handlers.NewInvoiceHandler(invoiceUseCase)
	fleetHandler := handlers.NewFleetHandler(fleetUseCase)
	dashboardHandler := handlers.NewDashboardHandler(dashboardUseCase)
	notificationHandler := handlers.NewNotificationHandler(hub, cfg.CORSAllowedOrigins)

	// Public routes
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addAuthRoutes(v1, guard, sessionHandler)

	// Routes behind the session guard
	private := v1.Group("", guard.Require())
	addBookingRoutes(private, bookingHandler, bookingViewHandler, invoiceHandler)
	addFleetRoutes(private, fleetHandler)
	private.GET(PathDashboard, dashboardHandler.Stats)
	private.GET(PathNotifications, notificationHandler.Stream)
	return nil
}

// newSessionRepository picks the session store. The in-memory store runs a
// janitor that purges expired sessions; DynamoDB reaps them by TTL.
func newSessionRepository(cfg config.Config, onPurge func(sessionID string)) (interfaces.ISessionRepository, error) {
	if cfg.SessionStore != config.SessionStoreDynamoDB {
		repo := repository.NewSessionMemoryRepository()
		go repo.RunJanitor(context.Background(), sessionJanitorInterval, onPurge)
		log.Printf("[session][store] memory janitor_interval=%s", sessionJanitorInterval)
		return repo, nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 45*time.Second)
	defer cancel()
	ddb, err := database.NewDynamoDBClient(ctx)
	if err != nil {
		return nil, err
	}
	if database.LocalEndpoint() {
		if err := database.EnsureSessionsTable(ctx, ddb, cfg.SessionsTable); err != nil {
			return nil, err
		}
	}
	log.Printf("[session][store] dynamodb table=%s", cfg.SessionsTable)
	return repository.NewSessionDynamoRepository(ddb, cfg.SessionsTable), nil
}

func setMiddlewares(cfg config.Config) {
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
	router.Use(middleware.RequestID())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSAllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", middleware.SessionHeader, middleware.RequestIDHeader},
		ExposeHeaders:    []string{middleware.RequestIDHeader, "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
}
