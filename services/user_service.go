package services

import (
	"context"

	"github.com/google/uuid"

	"shopmart/models"
	"shopmart/repositories"
)

type UserService struct {
	userRepo *repositories.UserRepository
}

func NewUserService() *UserService {
	return &UserService{
		userRepo: repositories.NewUserRepository(),
	}
}

func (s *UserService) GetProfile(ctx context.Context, userID string) (*models.User, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

func (s *UserService) UpdateAvatar(ctx context.Context, userID, avatarURL string) (*models.User, error) {
	user, err := s.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	user.AvatarURL = avatarURL
	if err := s.userRepo.UpdateProfile(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) AddAddress(ctx context.Context, userID string, req models.AddressRequest) (*models.Address, error) {
	addr := &models.Address{
		ID:      uuid.NewString(),
		UserID:  userID,
		Title:   req.Title,
		Line1:   req.Line1,
		Line2:   req.Line2,
		City:    req.City,
		State:   req.State,
		ZipCode: req.ZipCode,
		Country: req.Country,
	}
	if err := s.userRepo.CreateAddress(ctx, addr); err != nil {
		return nil, err
	}
	return addr, nil
}

func (s *UserService) ListAddresses(ctx context.Context, userID string) ([]models.Address, error) {
	return s.userRepo.FindAddressesByUser(ctx, userID)
}

func (s *UserService) UpdateAddress(ctx context.Context, addressID, userID string, req models.AddressRequest) (*models.Address, error) {
	addr, err := s.ownedAddress(ctx, addressID, userID)
	if err != nil {
		return nil, err
	}

	addr.Title = req.Title
	addr.Line1 = req.Line1
	addr.Line2 = req.Line2
	addr.City = req.City
	addr.State = req.State
	addr.ZipCode = req.ZipCode
	addr.Country = req.Country

	if err := s.userRepo.UpdateAddress(ctx, addr); err != nil {
		return nil, err
	}
	return addr, nil
}

func (s *UserService) DeleteAddress(ctx context.Context, addressID, userID string) error {
	if _, err := s.ownedAddress(ctx, addressID, userID); err != nil {
		return err
	}
	return s.userRepo.DeleteAddress(ctx, addressID)
}

func (s *UserService) ownedAddress(ctx context.Context, addressID, userID string) (*models.Address, error) {
	addr, err := s.userRepo.FindAddress(ctx, addressID)
	if err != nil {
		return nil, err
	}
	if addr == nil {
		return nil, ErrAddressNotFound
	}
	if addr.UserID != userID {
		return nil, ErrForbidden
	}
	return addr, nil
}
