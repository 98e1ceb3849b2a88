package controllers

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"shopmart/config"
	"shopmart/models"
	"shopmart/services"
)

type AuthController struct {
	authService *services.AuthService
}

func NewAuthController(authService *services.AuthService) *AuthController {
	return &AuthController{authService: authService}
}

// Signup godoc
// @Summary Register new user
// @Description Register a new account with name, email and password
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body models.SignupRequest true "Signup Request"
// @Success 201 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Failure 409 {object} models.ErrorResponse
// @Router /auth/signup [post]
func (ctrl *AuthController) Signup(c *gin.Context) {
	var req models.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, models.ErrorResponse{Success: false, Message: "Invalid request", Error: err.Error()})
		return
	}

	result, err := ctrl.authService.Signup(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(201, models.Response{Success: true, Message: "Signup successful", Data: result})
}

// Login godoc
// @Summary User login
// @Description Login with email and password
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body models.LoginRequest true "Login Request"
// @Success 200 {object} models.Response
// @Failure 401 {object} models.ErrorResponse
// @Router /auth/login [post]
func (ctrl *AuthController) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, models.ErrorResponse{Success: false, Message: "Invalid request", Error: err.Error()})
		return
	}

	result, err := ctrl.authService.Login(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(200, models.Response{Success: true, Message: "Login successful", Data: result})
}

// Logout godoc
// @Summary User logout
// @Description Acknowledge logout; bearer tokens are discarded client-side
// @Tags Authentication
// @Produce json
// @Success 200 {object} models.Response
// @Router /auth/logout [post]
func (ctrl *AuthController) Logout(c *gin.Context) {
	c.JSON(200, models.Response{Success: true, Message: "Logout successful"})
}

// SendVerificationOTP godoc
// @Summary Send verification OTP
// @Description Email a one-time code for account verification
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body models.OTPRequest true "OTP Request"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /auth/verify [post]
func (ctrl *AuthController) SendVerificationOTP(c *gin.Context) {
	var req models.OTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, models.ErrorResponse{Success: false, Message: "Invalid request", Error: err.Error()})
		return
	}

	if err := ctrl.authService.SendVerificationOTP(c.Request.Context(), req.Email); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(200, models.Response{Success: true, Message: "OTP sent to email"})
}

// VerifyOTP godoc
// @Summary Verify account OTP
// @Description Verify the emailed code and mark the account as verified
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body models.VerifyOTPRequest true "Verify Request"
// @Success 200 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /auth/verify-otp [post]
func (ctrl *AuthController) VerifyOTP(c *gin.Context) {
	var req models.VerifyOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, models.ErrorResponse{Success: false, Message: "Invalid request", Error: err.Error()})
		return
	}

	if err := ctrl.authService.VerifyOTP(c.Request.Context(), req.Email, req.OTP); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(200, models.Response{Success: true, Message: "OTP verified successfully"})
}

// SendResetOTP godoc
// @Summary Send password reset OTP
// @Description Email a one-time code for password reset
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body models.OTPRequest true "OTP Request"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /auth/reset-otp [post]
func (ctrl *AuthController) SendResetOTP(c *gin.Context) {
	var req models.OTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, models.ErrorResponse{Success: false, Message: "Invalid request", Error: err.Error()})
		return
	}

	if err := ctrl.authService.SendResetOTP(c.Request.Context(), req.Email); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(200, models.Response{Success: true, Message: "Reset OTP sent to email"})
}

// VerifyResetOTP godoc
// @Summary Verify reset OTP
// @Description Verify the reset code; a successful verification authorizes one password reset
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body models.VerifyOTPRequest true "Verify Request"
// @Success 200 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /auth/verify-reset-otp [post]
func (ctrl *AuthController) VerifyResetOTP(c *gin.Context) {
	var req models.VerifyOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, models.ErrorResponse{Success: false, Message: "Invalid request", Error: err.Error()})
		return
	}

	if err := ctrl.authService.VerifyResetOTP(c.Request.Context(), req.Email, req.OTP); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(200, models.Response{Success: true, Message: "OTP verified successfully, you can now reset your password"})
}

// ResetPassword godoc
// @Summary Reset password
// @Description Set a new password after a verified reset OTP
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body models.ResetPasswordRequest true "Reset Request"
// @Success 200 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /auth/reset-password [post]
func (ctrl *AuthController) ResetPassword(c *gin.Context) {
	var req models.ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, models.ErrorResponse{Success: false, Message: "Invalid request", Error: err.Error()})
		return
	}

	if err := ctrl.authService.ResetPassword(c.Request.Context(), req); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(200, models.Response{Success: true, Message: "Password reset successful, you can now log in"})
}

// GoogleLogin godoc
// @Summary Start Google OAuth
// @Description Redirect to the Google consent screen
// @Tags Authentication
// @Success 307
// @Router /auth/google [get]
func (ctrl *AuthController) GoogleLogin(c *gin.Context) {
	state := uuid.NewString()
	c.SetCookie("oauth_state", state, 600, "/", "", config.AppConfig.AppEnv == "production", true)
	c.Redirect(307, ctrl.authService.GoogleAuthURL(state))
}

// GoogleCallback godoc
// @Summary Google OAuth callback
// @Description Exchange the authorization code, sign the user in and redirect to the frontend
// @Tags Authentication
// @Success 307
// @Failure 400 {object} models.ErrorResponse
// @Router /auth/google/callback [get]
func (ctrl *AuthController) GoogleCallback(c *gin.Context) {
	state, err := c.Cookie("oauth_state")
	if err != nil || state == "" || state != c.Query("state") {
		c.JSON(400, models.ErrorResponse{Success: false, Message: "Invalid OAuth state"})
		return
	}

	code := c.Query("code")
	if code == "" {
		c.JSON(400, models.ErrorResponse{Success: false, Message: "Missing authorization code"})
		return
	}

	result, err := ctrl.authService.GoogleCallback(c.Request.Context(), code)
	if err != nil {
		respondError(c, err)
		return
	}

	c.Redirect(307, fmt.Sprintf("%s/dashboard?token=%s", config.AppConfig.FrontendURL, result.Token))
}
