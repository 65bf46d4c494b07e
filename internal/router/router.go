package router

import (
	"database/sql"
	"time"

	"slotmanager_backend/internal/handlers"
	"slotmanager_backend/internal/middleware"
	"slotmanager_backend/internal/repositories"
	"slotmanager_backend/internal/services"

	"github.com/gin-gonic/gin"
)

// Config carries the externally supplied settings the route graph needs.
type Config struct {
	JWTSecret     string
	JWTExpiration time.Duration
}

// Setup initializes the routing for the application and wires the
// repository/service/handler graph.
func Setup(engine *gin.Engine, db *sql.DB, cfg Config) {
	// Repositories
	authRepo := repositories.NewAuthRepository(db)
	regionRepo := repositories.NewRegionRepository(db)
	clientRepo := repositories.NewClientRepository(db)
	operatorRepo := repositories.NewOperatorRepository(db)
	machineRepo := repositories.NewMachineRepository(db)
	readingRepo := repositories.NewReadingRepository(db)
	linkRepo := repositories.NewLinkRepository(db)

	// Services
	authService := services.NewAuthService(authRepo, db, cfg.JWTSecret, cfg.JWTExpiration)
	regionService := services.NewRegionService(regionRepo, db)
	clientService := services.NewClientService(clientRepo, db)
	operatorService := services.NewOperatorService(operatorRepo, db)
	machineService := services.NewMachineService(machineRepo, clientRepo, regionRepo, operatorRepo, db)
	readingService := services.NewReadingService(readingRepo, machineRepo, clientRepo, operatorRepo, db)
	reportService := services.NewReportService(readingRepo, machineRepo, clientRepo, regionRepo, operatorRepo)
	linkService := services.NewLinkService(linkRepo, clientRepo, operatorRepo, db)
	backupService := services.NewBackupService(regionRepo, clientRepo, operatorRepo, machineRepo, readingRepo, db)

	// Handlers
	authHandler := handlers.NewAuthHandler(authService)
	regionHandler := handlers.NewRegionHandler(regionService)
	clientHandler := handlers.NewClientHandler(clientService)
	operatorHandler := handlers.NewOperatorHandler(operatorService)
	machineHandler := handlers.NewMachineHandler(machineService)
	readingHandler := handlers.NewReadingHandler(readingService)
	reportHandler := handlers.NewReportHandler(reportService)
	linkHandler := handlers.NewLinkHandler(linkService)
	backupHandler := handlers.NewBackupHandler(backupService)

	api := engine.Group("/api")

	SetupAuthRoutes(api, authHandler, cfg.JWTSecret)

	authenticated := api.Group("")
	authenticated.Use(middleware.AuthMiddleware(cfg.JWTSecret))
	{
		SetupRegionRoutes(authenticated, regionHandler)
		SetupClientRoutes(authenticated, clientHandler)
		SetupOperatorRoutes(authenticated, operatorHandler)
		SetupMachineRoutes(authenticated, machineHandler)
		SetupReadingRoutes(authenticated, readingHandler)
		SetupLinkRoutes(authenticated, linkHandler)
		SetupReportRoutes(authenticated, reportHandler)
		SetupBackupRoutes(authenticated, backupHandler)
	}
}
