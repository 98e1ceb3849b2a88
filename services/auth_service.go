package services

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"

	"shopmart/config"
	"shopmart/models"
	"shopmart/repositories"
	"shopmart/utils"
)

const otpTTL = 10 * time.Minute

type AuthService struct {
	userRepo *repositories.UserRepository
	email    *models.EmailService
	oauth    *oauth2.Config
}

func NewAuthService() *AuthService {
	email, err := models.NewEmailService()
	if err != nil {
		log.Println("Email service disabled:", err)
	}

	cfg := config.AppConfig
	return &AuthService{
		userRepo: repositories.NewUserRepository(),
		email:    email,
		oauth: &oauth2.Config{
			ClientID:     cfg.GoogleClientID,
			ClientSecret: cfg.GoogleClientSecret,
			RedirectURL:  cfg.GoogleRedirectURL,
			Scopes:       []string{"openid", "profile", "email"},
			Endpoint:     google.Endpoint,
		},
	}
}

func (s *AuthService) Signup(ctx context.Context, req models.SignupRequest) (*models.LoginResponse, error) {
	existing, err := s.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	hashed, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		ID:       uuid.NewString(),
		Name:     req.Name,
		Email:    req.Email,
		Password: hashed,
		Role:     "user",
		Provider: "local",
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	token, err := utils.GenerateToken(user.ID, user.Email, user.Role)
	if err != nil {
		return nil, err
	}
	return &models.LoginResponse{Token: token, User: *user}, nil
}

func (s *AuthService) Login(ctx context.Context, req models.LoginRequest) (*models.LoginResponse, error) {
	user, err := s.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}

	valid, err := utils.VerifyPassword(user.Password, req.Password)
	if err != nil || !valid {
		return nil, ErrInvalidCredentials
	}

	token, err := utils.GenerateToken(user.ID, user.Email, user.Role)
	if err != nil {
		return nil, err
	}
	return &models.LoginResponse{Token: token, User: *user}, nil
}

// OTP flows. Codes live in redis under a purpose-scoped key with a 10 minute
// TTL; a successful reset verification leaves a one-shot marker that
// ResetPassword consumes.

func otpKey(purpose, email string) string {
	return fmt.Sprintf("otp:%s:%s", purpose, email)
}

func (s *AuthService) sendOTP(ctx context.Context, email, purpose, subject string) error {
	if models.RedisClient == nil || s.email == nil {
		return ErrOTPUnavailable
	}

	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}

	otp, err := utils.GenerateOTP()
	if err != nil {
		return err
	}
	if err := models.RedisClient.Set(ctx, otpKey(purpose, email), otp, otpTTL).Err(); err != nil {
		return err
	}
	return s.email.SendOTPEmail(email, otp, subject)
}

func (s *AuthService) checkOTP(ctx context.Context, email, purpose, otp string) error {
	if models.RedisClient == nil {
		return ErrOTPUnavailable
	}

	stored, err := models.RedisClient.Get(ctx, otpKey(purpose, email)).Result()
	if err != nil || stored == "" || stored != otp {
		return ErrInvalidOTP
	}
	return models.RedisClient.Del(ctx, otpKey(purpose, email)).Err()
}

func (s *AuthService) SendVerificationOTP(ctx context.Context, email string) error {
	return s.sendOTP(ctx, email, "verify", "Email Verification OTP")
}

func (s *AuthService) VerifyOTP(ctx context.Context, email, otp string) error {
	if err := s.checkOTP(ctx, email, "verify", otp); err != nil {
		return err
	}

	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}
	return s.userRepo.MarkVerified(ctx, user.ID)
}

func (s *AuthService) SendResetOTP(ctx context.Context, email string) error {
	return s.sendOTP(ctx, email, "reset", "Password Reset OTP")
}

func (s *AuthService) VerifyResetOTP(ctx context.Context, email, otp string) error {
	if err := s.checkOTP(ctx, email, "reset", otp); err != nil {
		return err
	}
	return models.RedisClient.Set(ctx, otpKey("reset-verified", email), "1", otpTTL).Err()
}

func (s *AuthService) ResetPassword(ctx context.Context, req models.ResetPasswordRequest) error {
	if req.NewPassword != req.ConfirmPassword {
		return ErrPasswordMismatch
	}
	if models.RedisClient == nil {
		return ErrOTPUnavailable
	}

	verified, err := models.RedisClient.Get(ctx, otpKey("reset-verified", req.Email)).Result()
	if err != nil || verified != "1" {
		return ErrOTPNotVerified
	}

	user, err := s.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}

	hashed, err := utils.HashPassword(req.NewPassword)
	if err != nil {
		return err
	}
	if err := s.userRepo.UpdatePassword(ctx, user.ID, hashed); err != nil {
		return err
	}

	// one-shot marker: a verified OTP authorizes exactly one reset
	return models.RedisClient.Del(ctx, otpKey("reset-verified", req.Email)).Err()
}

// GoogleAuthURL returns the consent-screen redirect for the OAuth code flow.
func (s *AuthService) GoogleAuthURL(state string) string {
	return s.oauth.AuthCodeURL(state, oauth2.AccessTypeOffline)
}

type googleUserInfo struct {
	ID      string `json:"id"`
	Email   string `json:"email"`
	Name    string `json:"name"`
	Picture string `json:"picture"`
}

// GoogleCallback exchanges the authorization code, fetches the Google profile
// and signs the user in, creating a pre-verified account on first sight.
func (s *AuthService) GoogleCallback(ctx context.Context, code string) (*models.LoginResponse, error) {
	token, err := s.oauth.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("oauth exchange failed: %w", err)
	}

	info, err := s.fetchGoogleUser(ctx, token)
	if err != nil {
		return nil, err
	}

	user, err := s.userRepo.FindByEmail(ctx, info.Email)
	if err != nil {
		return nil, err
	}

	if user == nil {
		user = &models.User{
			ID:         uuid.NewString(),
			Name:       info.Name,
			Email:      info.Email,
			Role:       "user",
			Provider:   "google",
			GoogleID:   &info.ID,
			AvatarURL:  info.Picture,
			IsVerified: true,
		}
		if err := s.userRepo.Create(ctx, user); err != nil {
			return nil, err
		}
	} else if err := s.userRepo.LinkGoogleAccount(ctx, user.ID, info.ID); err != nil {
		return nil, err
	}

	jwtToken, err := utils.GenerateToken(user.ID, user.Email, user.Role)
	if err != nil {
		return nil, err
	}
	return &models.LoginResponse{Token: jwtToken, User: *user}, nil
}

func (s *AuthService) fetchGoogleUser(ctx context.Context, token *oauth2.Token) (*googleUserInfo, error) {
	client := s.oauth.Client(ctx, token)
	resp, err := client.Get("https://www.googleapis.com/oauth2/v2/userinfo")
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("userinfo request failed: %s: %s", resp.Status, body)
	}

	info := &googleUserInfo{}
	if err := json.NewDecoder(resp.Body).Decode(info); err != nil {
		return nil, err
	}
	return info, nil
}
