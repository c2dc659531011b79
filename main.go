package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"gorm.io/gorm"

	"github.com/SRAJAN1405/hotel/config"
	"github.com/SRAJAN1405/hotel/models"
	"github.com/SRAJAN1405/hotel/router"
	"github.com/SRAJAN1405/hotel/services"
	"github.com/SRAJAN1405/hotel/utils"
)

func init() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found or error loading: %v", err)
	}

	utils.InitLogger()

	for _, envVar := range []string{"CASHFREE_APP_ID", "CASHFREE_SECRET_KEY"} {
		if os.Getenv(envVar) == "" {
			log.Printf("Warning: required environment variable %s is not set", envVar)
		}
	}
}

func main() {
	conn, err := config.InitDB()
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to connect to database: %v", err)
	}
	utils.InitDB(conn)
	db := utils.GetDB()

	if os.Getenv("GIN_MODE") == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	autoMigrate(db)

	if err := services.GetCashfreeService().ValidateConfig(); err != nil {
		utils.ErrorLogger.Errorf("Cashfree configuration incomplete: %v", err)
	}

	r := router.SetupRouter(db)

	r.SetTrustedProxies([]string{"127.0.0.1", "localhost"})

	port := config.ServerPort()
	utils.InfoLogger.Printf("Listening on port %s", port)
	if err := r.Run(":" + port); err != nil {
		utils.ErrorLogger.Fatal(err)
	}
}

func autoMigrate(db *gorm.DB) {
	err := db.AutoMigrate(
		&models.Reservation{},
		&models.MenuItem{},
		&models.Order{},
		&models.OrderItem{},
	)
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to AutoMigrate: %v", err)
	}
	utils.InfoLogger.Println("AutoMigrate completed.")
}
