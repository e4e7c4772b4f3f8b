package routes

import (
	"github.com/BiblioDesk/BiblioDesk-Backend/src/controllers"
	"github.com/BiblioDesk/BiblioDesk-Backend/src/middleware"
	"github.com/BiblioDesk/BiblioDesk-Backend/src/services"
	"github.com/gin-gonic/gin"
)

func SetupBookRoutes(router *gin.Engine, service *services.BookService, borrowService *services.BorrowService) {
	bookController := controllers.NewBookController(service, borrowService)

	// Protected routes
	books := router.Group("/api/books")
	books.Use(middleware.AuthMiddleware())
	{
		books.GET("/", bookController.GetAllBooks)
		books.POST("/", bookController.CreateBook)
		books.GET("/:id/", bookController.GetBookByID)
		books.PUT("/:id/", bookController.UpdateBook)
		books.PATCH("/:id/", bookController.UpdateBook)
		books.DELETE("/:id/", bookController.DeleteBook)
		books.POST("/:id/borrow/", bookController.BorrowBook)
		books.POST("/:id/return_book/", bookController.ReturnBook)
	}
}
