package main

import (
	"log"

	"github.com/BiblioDesk/BiblioDesk-Backend/src/config"
	"github.com/BiblioDesk/BiblioDesk-Backend/src/db"
	"github.com/BiblioDesk/BiblioDesk-Backend/src/middleware"
	"github.com/BiblioDesk/BiblioDesk-Backend/src/models"
	"github.com/BiblioDesk/BiblioDesk-Backend/src/routes"
	"github.com/BiblioDesk/BiblioDesk-Backend/src/seed"
	"github.com/BiblioDesk/BiblioDesk-Backend/src/services"
	"github.com/gin-gonic/gin"
)

func main() {

	// Configuration
	cfg := config.Load()

	// Database connection
	database, err := db.Connect(cfg.DatabaseDSN)
	if err != nil {
		log.Fatalf("Error connecting to database: %v\n", err)
	}

	// Auto-migrate models
	if err := database.AutoMigrate(
		&models.UserModel{},
		&models.MemberModel{},
		&models.BookModel{},
		&models.BorrowRecordModel{},
	); err != nil {
		log.Fatalf("Error during auto-migration: %v\n", err)
	}

	// Token signing key for the auth middleware
	middleware.SetSecretKey(cfg.JWTSecret)

	// Bootstrap data
	seed.Seed(database, cfg)

	// Gin router setup
	router := gin.Default()
	router.Use(middleware.SetupCORS())

	// Services setup
	bookService := services.NewBookService(database)
	memberService := services.NewMemberService(database)
	borrowService := services.NewBorrowService(database, cfg.BorrowLimit, bookService)
	userService := services.NewUserService(database, cfg.TokenTTL)
	reportService := services.NewReportService(database, bookService, borrowService)

	// Routes setup
	routes.SetupUserRoutes(router, userService)
	routes.SetupBookRoutes(router, bookService, borrowService)
	routes.SetupMemberRoutes(router, memberService)
	routes.SetupReportRoutes(router, reportService, borrowService)

	router.GET("/", func(c *gin.Context) {
		c.String(200, "Library API is running")
	})

	// Server run
	if err := router.Run(cfg.ServerAddr); err != nil {
		log.Fatalf("Error starting server on %s: %v\n", cfg.ServerAddr, err)
	}
}
