package controllers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/BiblioDesk/BiblioDesk-Backend/src/models"
	"github.com/BiblioDesk/BiblioDesk-Backend/src/responses"
	"github.com/BiblioDesk/BiblioDesk-Backend/src/services"
	"github.com/gin-gonic/gin"
)

type MemberController struct {
	service *services.MemberService
}

func NewMemberController(service *services.MemberService) *MemberController {
	return &MemberController{service: service}
}

// GetAllMembers handles GET requests to retrieve all member records
func (c *MemberController) GetAllMembers(ctx *gin.Context) {
	members, err := c.service.GetAllMembers()
	if err != nil {
		responses.Error(ctx, statusFromError(err), err.Error())
		return
	}
	responses.JSON(ctx, http.StatusOK, members)
}

// GetMemberByID handles GET requests to retrieve a member by its ID
func (c *MemberController) GetMemberByID(ctx *gin.Context) {
	idParam := ctx.Param("id")
	id, err := strconv.Atoi(idParam)
	if err != nil {
		responses.Error(ctx, http.StatusBadRequest, "Invalid member ID")
		return
	}

	member, err := c.service.GetMemberByID(id)
	if err != nil {
		responses.Error(ctx, statusFromError(err), err.Error())
		return
	}
	responses.JSON(ctx, http.StatusOK, member)
}

// CreateMember handles POST requests to create a new member record
func (c *MemberController) CreateMember(ctx *gin.Context) {
	var member models.MemberModel
	if err := ctx.ShouldBindJSON(&member); err != nil {
		responses.Error(ctx, http.StatusBadRequest, err.Error())
		return
	}

	if msgs := validateMember(&member); len(msgs) > 0 {
		responses.Error(ctx, http.StatusBadRequest, msgs...)
		return
	}

	createdMember, err := c.service.CreateMember(&member)
	if err != nil {
		responses.Error(ctx, statusFromError(err), err.Error())
		return
	}
	responses.JSON(ctx, http.StatusCreated, createdMember)
}

// UpdateMember handles PUT and PATCH requests to update an existing member record
func (c *MemberController) UpdateMember(ctx *gin.Context) {
	idParam := ctx.Param("id")
	id, err := strconv.Atoi(idParam)
	if err != nil {
		responses.Error(ctx, http.StatusBadRequest, "Invalid member ID")
		return
	}

	var member models.MemberModel
	if err := ctx.ShouldBindJSON(&member); err != nil {
		responses.Error(ctx, http.StatusBadRequest, err.Error())
		return
	}

	if member.Email != "" && !strings.Contains(member.Email, "@") {
		responses.Error(ctx, http.StatusBadRequest, "email: Enter a valid email address.")
		return
	}

	updatedMember, err := c.service.UpdateMember(id, &member)
	if err != nil {
		responses.Error(ctx, statusFromError(err), err.Error())
		return
	}
	responses.JSON(ctx, http.StatusOK, updatedMember)
}

// DeleteMember handles DELETE requests to remove a member record by its ID
func (c *MemberController) DeleteMember(ctx *gin.Context) {
	idParam := ctx.Param("id")
	id, err := strconv.Atoi(idParam)
	if err != nil {
		responses.Error(ctx, http.StatusBadRequest, "Invalid member ID")
		return
	}

	if err := c.service.DeleteMember(id); err != nil {
		responses.Error(ctx, statusFromError(err), err.Error())
		return
	}
	responses.JSON(ctx, http.StatusOK, nil)
}

func validateMember(member *models.MemberModel) []string {
	var msgs []string
	if member.Name == "" {
		msgs = append(msgs, "name: This field is required.")
	}
	if member.Email == "" {
		msgs = append(msgs, "email: This field is required.")
	} else if !strings.Contains(member.Email, "@") {
		msgs = append(msgs, "email: Enter a valid email address.")
	}
	return msgs
}
