package controllers

import (
	"github.com/gin-gonic/gin"

	"shopmart/libs"
	"shopmart/models"
	"shopmart/services"
)

type UserController struct {
	userService *services.UserService
}

func NewUserController(userService *services.UserService) *UserController {
	return &UserController{userService: userService}
}

// GetProfile godoc
// @Summary Get profile
// @Description Get the caller's profile
// @Tags Users
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Response
// @Router /users/me [get]
func (ctrl *UserController) GetProfile(c *gin.Context) {
	user, err := ctrl.userService.GetProfile(c.Request.Context(), c.GetString("user_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(200, models.Response{Success: true, Message: "Profile retrieved", Data: user})
}

// UploadAvatar godoc
// @Summary Upload avatar
// @Description Upload a profile image for the caller
// @Tags Users
// @Security BearerAuth
// @Accept multipart/form-data
// @Produce json
// @Param avatar formData file true "Avatar file"
// @Success 200 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /users/me/avatar [post]
func (ctrl *UserController) UploadAvatar(c *gin.Context) {
	file, err := c.FormFile("avatar")
	if err != nil {
		c.JSON(400, models.ErrorResponse{Success: false, Message: "Avatar file required"})
		return
	}

	url, err := libs.UploadImage(c, file, "avatars")
	if err != nil {
		c.JSON(400, models.ErrorResponse{Success: false, Message: err.Error()})
		return
	}

	user, err := ctrl.userService.UpdateAvatar(c.Request.Context(), c.GetString("user_id"), url)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(200, models.Response{Success: true, Message: "Avatar updated", Data: user})
}

// AddAddress godoc
// @Summary Add address
// @Description Add a delivery address for the caller
// @Tags Users
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.AddressRequest true "Address"
// @Success 201 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /users/me/addresses [post]
func (ctrl *UserController) AddAddress(c *gin.Context) {
	var req models.AddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, models.ErrorResponse{Success: false, Message: "Invalid request", Error: err.Error()})
		return
	}

	addr, err := ctrl.userService.AddAddress(c.Request.Context(), c.GetString("user_id"), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(201, models.Response{Success: true, Message: "Address added", Data: addr})
}

// ListAddresses godoc
// @Summary List addresses
// @Description List the caller's delivery addresses
// @Tags Users
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Response
// @Router /users/me/addresses [get]
func (ctrl *UserController) ListAddresses(c *gin.Context) {
	addresses, err := ctrl.userService.ListAddresses(c.Request.Context(), c.GetString("user_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(200, models.Response{Success: true, Message: "Addresses retrieved", Data: addresses})
}

// UpdateAddress godoc
// @Summary Update address
// @Description Update one of the caller's delivery addresses
// @Tags Users
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Address ID"
// @Param request body models.AddressRequest true "Address"
// @Success 200 {object} models.Response
// @Failure 403 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /users/me/addresses/{id} [put]
func (ctrl *UserController) UpdateAddress(c *gin.Context) {
	var req models.AddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, models.ErrorResponse{Success: false, Message: "Invalid request", Error: err.Error()})
		return
	}

	addr, err := ctrl.userService.UpdateAddress(c.Request.Context(), c.Param("id"), c.GetString("user_id"), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(200, models.Response{Success: true, Message: "Address updated", Data: addr})
}

// DeleteAddress godoc
// @Summary Delete address
// @Description Delete one of the caller's delivery addresses
// @Tags Users
// @Security BearerAuth
// @Produce json
// @Param id path string true "Address ID"
// @Success 200 {object} models.Response
// @Failure 403 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /users/me/addresses/{id} [delete]
func (ctrl *UserController) DeleteAddress(c *gin.Context) {
	if err := ctrl.userService.DeleteAddress(c.Request.Context(), c.Param("id"), c.GetString("user_id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(200, models.Response{Success: true, Message: "Address deleted successfully"})
}
