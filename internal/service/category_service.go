package service

import (
	"errors"

	"go-fichas-ws/internal/model"
	"go-fichas-ws/internal/repository"
	"go-fichas-ws/internal/ws"
	"go-fichas-ws/pkg/validator"

	"github.com/google/uuid"
)

var ErrCategoryNotFound = errors.New("category not found")

type CategoryService interface {
	Create(userID uuid.UUID, name string) (*model.Category, error)
	List(userID uuid.UUID) ([]model.Category, error)
	Rename(id, userID uuid.UUID, name string) error
	Delete(id, userID uuid.UUID) error
}

type categoryService struct {
	categoryRepo repository.CategoryRepository
	hub          *ws.Hub
}

func NewCategoryService(categoryRepo repository.CategoryRepository, hub *ws.Hub) CategoryService {
	return &categoryService{categoryRepo: categoryRepo, hub: hub}
}

func (s *categoryService) Create(userID uuid.UUID, name string) (*model.Category, error) {
	category := &model.Category{Name: name, UserID: userID}
	if errs := validator.ValidateStruct(category); len(errs) > 0 {
		return nil, validationError(errs)
	}

	if err := s.categoryRepo.Create(category); err != nil {
		return nil, err
	}

	if s.hub != nil {
		s.hub.Notify("category", "created", category)
	}
	return category, nil
}

func (s *categoryService) List(userID uuid.UUID) ([]model.Category, error) {
	return s.categoryRepo.FindAll(userID)
}

func (s *categoryService) Rename(id, userID uuid.UUID, name string) error {
	if name == "" {
		return validationError([]*validator.ErrorResponse{{FailedField: "Category.Name", Tag: "required"}})
	}
	if err := s.categoryRepo.Rename(id, userID, name); err != nil {
		return err
	}
	if s.hub != nil {
		s.hub.Notify("category", "updated", id)
	}
	return nil
}

func (s *categoryService) Delete(id, userID uuid.UUID) error {
	if err := s.categoryRepo.Delete(id, userID); err != nil {
		return err
	}
	if s.hub != nil {
		s.hub.Notify("category", "deleted", id)
	}
	return nil
}
