package routes

import (
	"github.com/BiblioDesk/BiblioDesk-Backend/src/controllers"
	"github.com/BiblioDesk/BiblioDesk-Backend/src/middleware"
	"github.com/BiblioDesk/BiblioDesk-Backend/src/services"
	"github.com/gin-gonic/gin"
)

func SetupReportRoutes(router *gin.Engine, service *services.ReportService, borrowService *services.BorrowService) {
	reportController := controllers.NewReportController(service, borrowService)

	// Protected routes
	borrows := router.Group("/api/borrows")
	borrows.Use(middleware.AuthMiddleware())
	{
		borrows.GET("/", reportController.ListBorrowRecords)
	}

	reports := router.Group("/api/reports")
	reports.Use(middleware.AuthMiddleware())
	{
		reports.GET("/borrows/", reportController.ExportBorrowLedger)
		reports.POST("/books/import/", reportController.ImportBooks)
	}
}
