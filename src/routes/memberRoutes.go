package routes

import (
	"github.com/BiblioDesk/BiblioDesk-Backend/src/controllers"
	"github.com/BiblioDesk/BiblioDesk-Backend/src/middleware"
	"github.com/BiblioDesk/BiblioDesk-Backend/src/services"
	"github.com/gin-gonic/gin"
)

func SetupMemberRoutes(router *gin.Engine, service *services.MemberService) {
	memberController := controllers.NewMemberController(service)

	// Protected routes
	members := router.Group("/api/members")
	members.Use(middleware.AuthMiddleware())
	{
		members.GET("/", memberController.GetAllMembers)
		members.POST("/", memberController.CreateMember)
		members.GET("/:id/", memberController.GetMemberByID)
		members.PUT("/:id/", memberController.UpdateMember)
		members.PATCH("/:id/", memberController.UpdateMember)
		members.DELETE("/:id/", memberController.DeleteMember)
	}
}
