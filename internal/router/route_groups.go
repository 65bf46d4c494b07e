package router

import (
	"slotmanager_backend/internal/handlers"
	"slotmanager_backend/internal/middleware"

	"github.com/gin-gonic/gin"
)

// SetupAuthRoutes sets up the authentication routes. Register and login are
// public; /auth/me requires a valid token.
func SetupAuthRoutes(apiGroup *gin.RouterGroup, authHandler *handlers.AuthHandler, jwtSecret string) {
	authRoutes := apiGroup.Group("/auth")
	{
		authRoutes.POST("/register", authHandler.RegisterUser)
		authRoutes.POST("/login", authHandler.LoginUser)

		authRequired := authRoutes.Group("")
		authRequired.Use(middleware.AuthMiddleware(jwtSecret))
		{
			authRequired.GET("/me", authHandler.GetCurrentUser)
		}
	}
}

// SetupRegionRoutes sets up the region routes.
func SetupRegionRoutes(authenticatedGroup *gin.RouterGroup, regionHandler *handlers.RegionHandler) {
	regionRoutes := authenticatedGroup.Group("/regions")
	{
		regionRoutes.POST("", regionHandler.CreateRegion)
		regionRoutes.GET("", regionHandler.GetRegions)
		regionRoutes.PUT("/:id", regionHandler.UpdateRegion)
		regionRoutes.DELETE("/:id", regionHandler.DeleteRegion)
	}
}

// SetupClientRoutes sets up the client routes.
func SetupClientRoutes(authenticatedGroup *gin.RouterGroup, clientHandler *handlers.ClientHandler) {
	clientRoutes := authenticatedGroup.Group("/clients")
	{
		clientRoutes.POST("", clientHandler.CreateClient)
		clientRoutes.GET("", clientHandler.GetClients)
		clientRoutes.PUT("/:id", clientHandler.UpdateClient)
		clientRoutes.DELETE("/:id", clientHandler.DeleteClient)
	}
}

// SetupOperatorRoutes sets up the operator routes.
func SetupOperatorRoutes(authenticatedGroup *gin.RouterGroup, operatorHandler *handlers.OperatorHandler) {
	operatorRoutes := authenticatedGroup.Group("/operators")
	{
		operatorRoutes.POST("", operatorHandler.CreateOperator)
		operatorRoutes.GET("", operatorHandler.GetOperators)
		operatorRoutes.PUT("/:id", operatorHandler.UpdateOperator)
		operatorRoutes.DELETE("/:id", operatorHandler.DeleteOperator)
	}
}

// SetupMachineRoutes sets up the machine routes.
func SetupMachineRoutes(authenticatedGroup *gin.RouterGroup, machineHandler *handlers.MachineHandler) {
	machineRoutes := authenticatedGroup.Group("/machines")
	{
		machineRoutes.POST("", machineHandler.CreateMachine)
		machineRoutes.GET("", machineHandler.GetMachines)
		machineRoutes.PUT("/:id", machineHandler.UpdateMachine)
		machineRoutes.DELETE("/:id", machineHandler.DeleteMachine)
	}
}

// SetupReadingRoutes sets up the reading routes. Readings have no update
// route; derived fields are immutable after creation.
func SetupReadingRoutes(authenticatedGroup *gin.RouterGroup, readingHandler *handlers.ReadingHandler) {
	readingRoutes := authenticatedGroup.Group("/readings")
	{
		readingRoutes.POST("", readingHandler.CreateReading)
		readingRoutes.GET("", readingHandler.GetReadings)
		readingRoutes.POST("/import", readingHandler.ImportReadings)
		readingRoutes.DELETE("/:id", readingHandler.DeleteReading)
	}
}

// SetupLinkRoutes sets up the client-operator link routes.
func SetupLinkRoutes(authenticatedGroup *gin.RouterGroup, linkHandler *handlers.LinkHandler) {
	linkRoutes := authenticatedGroup.Group("/links")
	{
		linkRoutes.POST("", linkHandler.CreateLink)
		linkRoutes.GET("", linkHandler.GetLinks)
		linkRoutes.DELETE("/:id", linkHandler.DeleteLink)
	}
}

// SetupReportRoutes sets up the report routes.
func SetupReportRoutes(authenticatedGroup *gin.RouterGroup, reportHandler *handlers.ReportHandler) {
	reportRoutes := authenticatedGroup.Group("/reports")
	{
		reportRoutes.GET("/dashboard", reportHandler.GetDashboard)
		reportRoutes.GET("/by-machine/:id", reportHandler.GetMachineReport)
		reportRoutes.GET("/by-client/:id", reportHandler.GetClientReport)
		reportRoutes.GET("/by-region/:id", reportHandler.GetRegionReport)
	}
}

// SetupBackupRoutes sets up the backup export/import routes.
func SetupBackupRoutes(authenticatedGroup *gin.RouterGroup, backupHandler *handlers.BackupHandler) {
	backupRoutes := authenticatedGroup.Group("/backup")
	{
		backupRoutes.GET("/export", backupHandler.ExportBackup)
		backupRoutes.POST("/import", backupHandler.ImportBackup)
	}
}
