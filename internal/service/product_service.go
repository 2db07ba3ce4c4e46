package service

import (
	"errors"

	"go-fichas-ws/internal/model"
	"go-fichas-ws/internal/repository"
	"go-fichas-ws/internal/ws"
	"go-fichas-ws/pkg/validator"

	"github.com/google/uuid"
)

var ErrProductNotFound = errors.New("product not found")

type ProductService interface {
	Create(userID uuid.UUID, req *model.Product) error
	List(userID uuid.UUID, categoryID *uuid.UUID) ([]model.Product, error)
	Delete(id, userID uuid.UUID) error
}

type productService struct {
	productRepo  repository.ProductRepository
	categoryRepo repository.CategoryRepository
	hub          *ws.Hub
}

func NewProductService(productRepo repository.ProductRepository, categoryRepo repository.CategoryRepository, hub *ws.Hub) ProductService {
	return &productService{productRepo: productRepo, categoryRepo: categoryRepo, hub: hub}
}

func (s *productService) Create(userID uuid.UUID, req *model.Product) error {
	req.UserID = userID
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return validationError(errs)
	}

	if req.CategoryID != nil {
		if _, err := s.categoryRepo.FindByID(*req.CategoryID, userID); err != nil {
			return ErrCategoryNotFound
		}
	}

	if err := s.productRepo.Create(req); err != nil {
		return err
	}

	if s.hub != nil {
		s.hub.Notify("product", "created", req)
	}
	return nil
}

func (s *productService) List(userID uuid.UUID, categoryID *uuid.UUID) ([]model.Product, error) {
	return s.productRepo.FindAll(userID, categoryID)
}

func (s *productService) Delete(id, userID uuid.UUID) error {
	if err := s.productRepo.Delete(id, userID); err != nil {
		return err
	}
	if s.hub != nil {
		s.hub.Notify("product", "deleted", id)
	}
	return nil
}
