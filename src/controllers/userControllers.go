package controllers

import (
	"net/http"
	"strconv"

	"github.com/BiblioDesk/BiblioDesk-Backend/src/models"
	"github.com/BiblioDesk/BiblioDesk-Backend/src/responses"
	"github.com/BiblioDesk/BiblioDesk-Backend/src/services"
	"github.com/gin-gonic/gin"
)

type UserController struct {
	service *services.UserService
}

func NewUserController(service *services.UserService) *UserController {
	return &UserController{service: service}
}

// AuthenticateUser handles POST requests to exchange credentials for a token
func (c *UserController) AuthenticateUser(ctx *gin.Context) {
	var req models.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		responses.Error(ctx, http.StatusBadRequest, err.Error())
		return
	}

	var msgs []string
	if req.Username == "" {
		msgs = append(msgs, "username: This field is required.")
	}
	if req.Password == "" {
		msgs = append(msgs, "password: This field is required.")
	}
	if len(msgs) > 0 {
		responses.Error(ctx, http.StatusBadRequest, msgs...)
		return
	}

	token, err := c.service.AuthenticateUser(req.Username, req.Password)
	if err != nil {
		responses.Error(ctx, statusFromError(err), err.Error())
		return
	}
	responses.JSON(ctx, http.StatusOK, gin.H{"token": token})
}

// GetAllUsers handles GET requests to retrieve all admin users
func (c *UserController) GetAllUsers(ctx *gin.Context) {
	users, err := c.service.GetAllUsers()
	if err != nil {
		responses.Error(ctx, statusFromError(err), err.Error())
		return
	}

	// Never expose password hashes
	result := make([]models.RegisterResponse, 0, len(users))
	for _, user := range users {
		result = append(result, models.RegisterResponse{ID: user.Id, Username: user.Username})
	}
	responses.JSON(ctx, http.StatusOK, result)
}

// CreateUser handles POST requests to create a new admin user
func (c *UserController) CreateUser(ctx *gin.Context) {
	var user models.UserModel
	if err := ctx.ShouldBindJSON(&user); err != nil {
		responses.Error(ctx, http.StatusBadRequest, err.Error())
		return
	}

	var msgs []string
	if user.Username == "" {
		msgs = append(msgs, "username: This field is required.")
	}
	if user.Password == "" {
		msgs = append(msgs, "password: This field is required.")
	}
	if len(msgs) > 0 {
		responses.Error(ctx, http.StatusBadRequest, msgs...)
		return
	}

	createdUser, err := c.service.CreateUser(&user)
	if err != nil {
		responses.Error(ctx, statusFromError(err), err.Error())
		return
	}
	responses.JSON(ctx, http.StatusCreated, models.RegisterResponse{
		ID:       createdUser.Id,
		Username: createdUser.Username,
	})
}

// DeleteUser handles DELETE requests to remove an admin user by its ID
func (c *UserController) DeleteUser(ctx *gin.Context) {
	idParam := ctx.Param("id")
	id, err := strconv.Atoi(idParam)
	if err != nil {
		responses.Error(ctx, http.StatusBadRequest, "Invalid user ID")
		return
	}

	if err := c.service.DeleteUser(id); err != nil {
		responses.Error(ctx, statusFromError(err), err.Error())
		return
	}
	responses.JSON(ctx, http.StatusOK, nil)
}
