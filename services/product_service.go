package services

import (
	"context"

	"github.com/google/uuid"

	"shopmart/models"
	"shopmart/repositories"
)

type ProductService struct {
	productRepo *repositories.ProductRepository
}

func NewProductService() *ProductService {
	return &ProductService{
		productRepo: repositories.NewProductRepository(),
	}
}

func (s *ProductService) GetAll(ctx context.Context) ([]models.Product, error) {
	return s.productRepo.FindAll(ctx)
}

func (s *ProductService) GetByID(ctx context.Context, id string) (*models.Product, error) {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}
	return product, nil
}

func (s *ProductService) GetBySeller(ctx context.Context, sellerID string) ([]models.Product, error) {
	return s.productRepo.FindBySeller(ctx, sellerID)
}

func (s *ProductService) GetByCategory(ctx context.Context, category string) ([]models.Product, error) {
	return s.productRepo.FindByCategory(ctx, category)
}

func (s *ProductService) Categories(ctx context.Context) ([]string, error) {
	return s.productRepo.Categories(ctx)
}

func (s *ProductService) Create(ctx context.Context, seller *models.User, req models.CreateProductRequest) (*models.Product, error) {
	existing, err := s.productRepo.FindBySeller(ctx, seller.ID)
	if err != nil {
		return nil, err
	}
	for _, p := range existing {
		if p.Name == req.Name {
			return nil, ErrProductExists
		}
	}

	product := &models.Product{
		ID:              uuid.NewString(),
		Name:            req.Name,
		Description:     req.Description,
		Images:          req.Images,
		Categories:      req.Categories,
		Rating:          req.Rating,
		Stock:           req.Stock,
		SellerID:        seller.ID,
		SellerName:      seller.Name,
		SellerContact:   seller.Email,
		Details:         req.Details,
		Specifications:  req.Specifications,
		TechnicalInfo:   req.TechnicalInfo,
		PriceOriginal:   req.PriceOriginal,
		PriceDiscounted: req.PriceDiscounted,
		SizeOrType:      req.SizeOrType,
	}

	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

// Update applies a partial update; sellers can only touch their own products.
func (s *ProductService) Update(ctx context.Context, id, sellerID string, req models.UpdateProductRequest) (*models.Product, error) {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil || product.SellerID != sellerID {
		return nil, ErrProductNotFound
	}

	if req.Name != "" {
		product.Name = req.Name
	}
	if req.Description != "" {
		product.Description = req.Description
	}
	if req.Images != nil {
		product.Images = req.Images
	}
	if req.Categories != nil {
		product.Categories = req.Categories
	}
	if req.Rating != nil {
		product.Rating = *req.Rating
	}
	if req.Stock != nil {
		product.Stock = *req.Stock
	}
	if req.Details != "" {
		product.Details = req.Details
	}
	if req.Specifications != "" {
		product.Specifications = req.Specifications
	}
	if req.TechnicalInfo != "" {
		product.TechnicalInfo = req.TechnicalInfo
	}
	if req.PriceOriginal != nil {
		product.PriceOriginal = *req.PriceOriginal
	}
	if req.PriceDiscounted != nil {
		product.PriceDiscounted = req.PriceDiscounted
	}
	if req.SizeOrType != nil {
		product.SizeOrType = req.SizeOrType
	}

	if err := s.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

func (s *ProductService) Delete(ctx context.Context, id, sellerID string) error {
	deleted, err := s.productRepo.DeleteBySeller(ctx, id, sellerID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrProductNotFound
	}
	return nil
}
