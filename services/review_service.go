package services

import (
	"context"

	"github.com/google/uuid"

	"shopmart/models"
	"shopmart/repositories"
)

type ReviewService struct {
	reviewRepo  *repositories.ReviewRepository
	productRepo *repositories.ProductRepository
	userRepo    *repositories.UserRepository
}

func NewReviewService() *ReviewService {
	return &ReviewService{
		reviewRepo:  repositories.NewReviewRepository(),
		productRepo: repositories.NewProductRepository(),
		userRepo:    repositories.NewUserRepository(),
	}
}

func (s *ReviewService) Add(ctx context.Context, userID string, req models.CreateReviewRequest) (*models.Review, error) {
	product, err := s.productRepo.FindByID(ctx, req.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}

	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	review := &models.Review{
		ID:        uuid.NewString(),
		ProductID: req.ProductID,
		UserID:    userID,
		UserName:  user.Name,
		Text:      req.Text,
		Rating:    req.Rating,
	}
	if err := s.reviewRepo.Create(ctx, review); err != nil {
		return nil, err
	}
	return review, nil
}

func (s *ReviewService) ListByUser(ctx context.Context, userID string) ([]models.Review, error) {
	return s.reviewRepo.FindByUser(ctx, userID)
}

func (s *ReviewService) Update(ctx context.Context, reviewID, userID string, req models.UpdateReviewRequest) (*models.Review, error) {
	review, err := s.reviewRepo.FindByID(ctx, reviewID)
	if err != nil {
		return nil, err
	}
	if review == nil {
		return nil, ErrReviewNotFound
	}
	if review.UserID != userID {
		return nil, ErrForbidden
	}

	if req.Text != "" {
		review.Text = req.Text
	}
	if req.Rating != nil {
		review.Rating = *req.Rating
	}

	if err := s.reviewRepo.Update(ctx, review); err != nil {
		return nil, err
	}
	return review, nil
}

func (s *ReviewService) Delete(ctx context.Context, reviewID, userID string) error {
	review, err := s.reviewRepo.FindByID(ctx, reviewID)
	if err != nil {
		return err
	}
	if review == nil {
		return ErrReviewNotFound
	}
	if review.UserID != userID {
		return ErrForbidden
	}
	return s.reviewRepo.Delete(ctx, reviewID)
}
