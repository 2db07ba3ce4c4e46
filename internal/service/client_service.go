package service

import (
	"errors"

	"go-fichas-ws/internal/balance"
	"go-fichas-ws/internal/model"
	"go-fichas-ws/internal/repository"
	"go-fichas-ws/internal/ws"
	"go-fichas-ws/pkg/validator"

	"github.com/google/uuid"
)

var (
	ErrClientNotFound = errors.New("client not found")
	ErrClientExists   = errors.New("client name already registered")
)

// ClientWithBalance is a client row plus the derived money view the listing
// screens show: credit issued, order totals and the running balance.
type ClientWithBalance struct {
	model.Client
	TotalChips  int64 `json:"total_chips"`
	TotalOrders int64 `json:"total_orders"`
	Balance     int64 `json:"balance"`
}

type ClientService interface {
	Create(userID uuid.UUID, name string, groupID *uuid.UUID) (*model.Client, error)
	List(userID uuid.UUID, groupID *uuid.UUID) ([]ClientWithBalance, error)
	Find(id, userID uuid.UUID) (*ClientWithBalance, error)
	Delete(id, userID uuid.UUID) error
}

type clientService struct {
	clientRepo repository.ClientRepository
	groupRepo  repository.GroupRepository
	hub        *ws.Hub
}

func NewClientService(clientRepo repository.ClientRepository, groupRepo repository.GroupRepository, hub *ws.Hub) ClientService {
	return &clientService{clientRepo: clientRepo, groupRepo: groupRepo, hub: hub}
}

func (s *clientService) Create(userID uuid.UUID, name string, groupID *uuid.UUID) (*model.Client, error) {
	client := &model.Client{Name: name, UserID: userID, GroupID: groupID}
	if errs := validator.ValidateStruct(client); len(errs) > 0 {
		return nil, validationError(errs)
	}

	// Client names are unique per owner
	if existing, _ := s.clientRepo.FindByName(name, userID); existing != nil && existing.ID != uuid.Nil {
		return nil, ErrClientExists
	}

	if groupID != nil {
		if _, err := s.groupRepo.FindByID(*groupID, userID); err != nil {
			return nil, ErrGroupNotFound
		}
	}

	if err := s.clientRepo.Create(client); err != nil {
		return nil, err
	}

	if s.hub != nil {
		s.hub.Notify("client", "created", client)
	}
	return client, nil
}

func (s *clientService) List(userID uuid.UUID, groupID *uuid.UUID) ([]ClientWithBalance, error) {
	clients, err := s.clientRepo.FindAll(userID, groupID)
	if err != nil {
		return nil, err
	}

	out := make([]ClientWithBalance, len(clients))
	for i, c := range clients {
		out[i] = withBalance(c)
	}
	return out, nil
}

func (s *clientService) Find(id, userID uuid.UUID) (*ClientWithBalance, error) {
	client, err := s.clientRepo.FindByID(id, userID)
	if err != nil {
		return nil, ErrClientNotFound
	}
	c := withBalance(*client)
	return &c, nil
}

func (s *clientService) Delete(id, userID uuid.UUID) error {
	if err := s.clientRepo.Delete(id, userID); err != nil {
		return err
	}
	if s.hub != nil {
		s.hub.Notify("client", "deleted", id)
	}
	return nil
}

func withBalance(c model.Client) ClientWithBalance {
	totalChips := balance.SumChips(c.Chips)
	totalOrders := balance.SumOrders(c.Orders)
	return ClientWithBalance{
		Client:      c,
		TotalChips:  totalChips,
		TotalOrders: totalOrders,
		Balance:     totalChips - totalOrders,
	}
}
