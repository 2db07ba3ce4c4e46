package service

import (
	"go-fichas-ws/internal/model"
	"go-fichas-ws/internal/repository"
	"go-fichas-ws/internal/ws"
	"go-fichas-ws/pkg/validator"

	"github.com/google/uuid"
)

type ChipService interface {
	Create(userID uuid.UUID, value int64, date string, clientID uuid.UUID) (*model.Chip, error)
	List(userID uuid.UUID) ([]model.Chip, error)
	Delete(id, userID uuid.UUID) error
}

type chipService struct {
	chipRepo   repository.ChipRepository
	clientRepo repository.ClientRepository
	hub        *ws.Hub
}

func NewChipService(chipRepo repository.ChipRepository, clientRepo repository.ClientRepository, hub *ws.Hub) ChipService {
	return &chipService{chipRepo: chipRepo, clientRepo: clientRepo, hub: hub}
}

func (s *chipService) Create(userID uuid.UUID, value int64, date string, clientID uuid.UUID) (*model.Chip, error) {
	when, err := model.ParseDate(date)
	if err != nil {
		return nil, ErrBadDate
	}

	chip := &model.Chip{Value: value, Date: when, ClientID: clientID, UserID: userID}
	if errs := validator.ValidateStruct(chip); len(errs) > 0 {
		return nil, validationError(errs)
	}

	// Chips only exist against a registered client
	if _, err := s.clientRepo.FindByID(clientID, userID); err != nil {
		return nil, ErrClientNotFound
	}

	if err := s.chipRepo.Create(chip); err != nil {
		return nil, err
	}

	if s.hub != nil {
		s.hub.Notify("chip", "created", chip)
	}
	return chip, nil
}

func (s *chipService) List(userID uuid.UUID) ([]model.Chip, error) {
	return s.chipRepo.FindAll(userID)
}

func (s *chipService) Delete(id, userID uuid.UUID) error {
	if err := s.chipRepo.Delete(id, userID); err != nil {
		return err
	}
	if s.hub != nil {
		s.hub.Notify("chip", "deleted", id)
	}
	return nil
}
