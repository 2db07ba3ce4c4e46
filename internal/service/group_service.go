package service

import (
	"errors"

	"go-fichas-ws/internal/model"
	"go-fichas-ws/internal/repository"
	"go-fichas-ws/internal/ws"
	"go-fichas-ws/pkg/validator"

	"github.com/google/uuid"
)

var ErrGroupNotFound = errors.New("group not found")

type GroupService interface {
	Create(userID uuid.UUID, name string) (*model.Group, error)
	List(userID uuid.UUID) ([]model.Group, error)
	Rename(id, userID uuid.UUID, name string) error
	Delete(id, userID uuid.UUID) error
}

type groupService struct {
	groupRepo repository.GroupRepository
	hub       *ws.Hub
}

func NewGroupService(groupRepo repository.GroupRepository, hub *ws.Hub) GroupService {
	return &groupService{groupRepo: groupRepo, hub: hub}
}

func (s *groupService) Create(userID uuid.UUID, name string) (*model.Group, error) {
	group := &model.Group{Name: name, UserID: userID}
	if errs := validator.ValidateStruct(group); len(errs) > 0 {
		return nil, validationError(errs)
	}

	if err := s.groupRepo.Create(group); err != nil {
		return nil, err
	}

	if s.hub != nil {
		s.hub.Notify("group", "created", group)
	}
	return group, nil
}

func (s *groupService) List(userID uuid.UUID) ([]model.Group, error) {
	return s.groupRepo.FindAll(userID)
}

func (s *groupService) Rename(id, userID uuid.UUID, name string) error {
	if name == "" {
		return validationError([]*validator.ErrorResponse{{FailedField: "Group.Name", Tag: "required"}})
	}
	if err := s.groupRepo.Rename(id, userID, name); err != nil {
		return err
	}
	if s.hub != nil {
		s.hub.Notify("group", "updated", id)
	}
	return nil
}

func (s *groupService) Delete(id, userID uuid.UUID) error {
	if err := s.groupRepo.Delete(id, userID); err != nil {
		return err
	}
	if s.hub != nil {
		s.hub.Notify("group", "deleted", id)
	}
	return nil
}
