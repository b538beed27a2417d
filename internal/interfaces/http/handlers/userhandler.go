package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"quickdesk/internal/application/user/usecases"
	"quickdesk/internal/interfaces/http/middleware"
	"quickdesk/internal/shared/errors"
	"quickdesk/internal/shared/logger"
	"quickdesk/internal/shared/sanitize"
	"quickdesk/internal/shared/utils"
)

type UpdateProfileRequest struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required,email"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required"`
}

type ChangeRoleRequest struct {
	Role string `json:"role" binding:"required,oneof=user agent admin"`
}

type UserHandler struct {
	getProfileUC     usecases.GetProfileExecutor
	updateProfileUC  usecases.UpdateProfileExecutor
	changePasswordUC usecases.ChangePasswordExecutor
	changeRoleUC     usecases.ChangeRoleExecutor
	deleteUserUC     usecases.DeleteUserExecutor
	listUsersUC      usecases.ListUsersExecutor
	logger           logger.Interface
}

func NewUserHandler(
	getProfileUC usecases.GetProfileExecutor,
	updateProfileUC usecases.UpdateProfileExecutor,
	changePasswordUC usecases.ChangePasswordExecutor,
	changeRoleUC usecases.ChangeRoleExecutor,
	deleteUserUC usecases.DeleteUserExecutor,
	listUsersUC usecases.ListUsersExecutor,
	logger logger.Interface,
) *UserHandler {
	return &UserHandler{
		getProfileUC:     getProfileUC,
		updateProfileUC:  updateProfileUC,
		changePasswordUC: changePasswordUC,
		changeRoleUC:     changeRoleUC,
		deleteUserUC:     deleteUserUC,
		listUsersUC:      listUsersUC,
		logger:           logger,
	}
}

// GetProfile handles GET /users/me
func (h *UserHandler) GetProfile(c *gin.Context) {
	actorID, _ := middleware.ActorID(c)

	result, err := h.getProfileUC.Execute(c.Request.Context(), usecases.GetProfileQuery{UserID: actorID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// UpdateProfile handles PUT /users/me
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	actorID, _ := middleware.ActorID(c)

	result, err := h.updateProfileUC.Execute(c.Request.Context(), usecases.UpdateProfileCommand{
		UserID: actorID,
		Name:   sanitize.Text(req.Name),
		Email:  sanitize.Text(req.Email),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Profile updated successfully!", result)
}

// ChangePassword handles PUT /users/me/password
func (h *UserHandler) ChangePassword(c *gin.Context) {
	var req ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	actorID, _ := middleware.ActorID(c)

	err := h.changePasswordUC.Execute(c.Request.Context(), usecases.ChangePasswordCommand{
		UserID:          actorID,
		CurrentPassword: req.CurrentPassword,
		NewPassword:     req.NewPassword,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Password changed successfully!", nil)
}

// ListUsers handles GET /users
func (h *UserHandler) ListUsers(c *gin.Context) {
	actorRole, _ := middleware.ActorRole(c)

	result, err := h.listUsersUC.Execute(c.Request.Context(), usecases.ListUsersQuery{ActorRole: actorRole})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ChangeRole handles PATCH /users/:id/role
func (h *UserHandler) ChangeRole(c *gin.Context) {
	targetID, err := parseUserID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req ChangeRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	actorID, _ := middleware.ActorID(c)
	actorRole, _ := middleware.ActorRole(c)

	result, err := h.changeRoleUC.Execute(c.Request.Context(), usecases.ChangeRoleCommand{
		ActorID:   actorID,
		ActorRole: actorRole,
		TargetID:  targetID,
		NewRole:   req.Role,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK,
		"Role for "+result.Name+" updated to \""+result.Role+"\".", result)
}

// DeleteUser handles DELETE /users/:id
func (h *UserHandler) DeleteUser(c *gin.Context) {
	targetID, err := parseUserID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	actorID, _ := middleware.ActorID(c)
	actorRole, _ := middleware.ActorRole(c)

	result, err := h.deleteUserUC.Execute(c.Request.Context(), usecases.DeleteUserCommand{
		ActorID:   actorID,
		ActorRole: actorRole,
		TargetID:  targetID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "User deleted successfully and their tickets updated.", result)
}

func parseUserID(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, errors.NewValidationError("invalid user ID")
	}
	return uint(id), nil
}
