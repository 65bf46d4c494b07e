package main

import (
	"net/http"
	"os"
	"strings"
	"time"

	"slotmanager_backend/internal/database"
	"slotmanager_backend/internal/router"
	"slotmanager_backend/pkg/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	utils.InitLogger()

	// .env is optional; real deployments configure through the environment.
	_ = godotenv.Load()

	dbCfg := database.Config{
		Host:       utils.Getenv("DB_HOST", "localhost"),
		Port:       utils.Getenv("DB_PORT", "5432"),
		User:       utils.Getenv("DB_USER", "slotmanager"),
		Password:   utils.Getenv("DB_PASSWORD", "slotmanager"),
		Name:       utils.Getenv("DB_NAME", "slotmanager_db"),
		SSLMode:    utils.Getenv("DB_SSLMODE", "disable"),
		SchemaPath: utils.Getenv("DB_SCHEMA_PATH", ""),
	}

	db, err := database.Connect(dbCfg)
	if err != nil {
		utils.LogFatal(err, "Failed to initialize database")
	}
	defer db.Close()
	utils.LogInfo("Database initialized", map[string]interface{}{"host": dbCfg.Host, "name": dbCfg.Name})

	engine := gin.Default()
	engine.Use(utils.GinLogger())

	corsAllowedOriginsEnv := os.Getenv("CORS_ALLOWED_ORIGINS")
	var allowedOrigins []string
	if corsAllowedOriginsEnv != "" {
		allowedOrigins = strings.Split(corsAllowedOriginsEnv, ",")
	} else {
		allowedOrigins = []string{"http://localhost:3000"}
	}

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = allowedOrigins
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	corsConfig.AllowCredentials = true
	engine.Use(cors.New(corsConfig))

	engine.GET("/api", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "SlotManager API", "status": "running"})
	})

	router.Setup(engine, db, router.Config{
		JWTSecret:     utils.Getenv("JWT_SECRET", "change-me-in-production"),
		JWTExpiration: 7 * 24 * time.Hour,
	})

	port := utils.Getenv("PORT", "8080")
	utils.LogInfo("Server starting", map[string]interface{}{"port": port})

	if err := engine.Run(":" + port); err != nil {
		utils.LogFatal(err, "Failed to start server")
	}
}
