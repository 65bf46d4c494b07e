package services

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"slotmanager_backend/internal/commission"
	"slotmanager_backend/internal/models"
	"slotmanager_backend/internal/repositories"

	"github.com/google/uuid"
)

// --- Custom Service Errors for Client ---
var (
	ErrClientNotFound   = errors.New("client not found")
	ErrClientValidation = errors.New("client data validation error")
)

// --- Client DTOs ---
type CreateClientRequest struct {
	Name            string  `json:"name" binding:"required"`
	CommissionType  string  `json:"commission_type" binding:"required"`
	CommissionValue float64 `json:"commission_value"`
	Phone           *string `json:"phone"`
	Email           *string `json:"email"`
}

// --- ClientService Interface ---
type ClientService interface {
	CreateClient(req CreateClientRequest) (*models.Client, error)
	GetClientByID(clientID string) (*models.Client, error)
	GetClients() ([]models.Client, error)
	UpdateClient(clientID string, req CreateClientRequest) (*models.Client, error)
	DeleteClient(clientID string) error
}

type clientService struct {
	clientRepo repositories.ClientRepository
	db         *sql.DB
}

// NewClientService creates a new instance of ClientService.
func NewClientService(repo repositories.ClientRepository, db *sql.DB) ClientService {
	return &clientService{clientRepo: repo, db: db}
}

// validateCommissionPolicy ensures the type is one of the two known policy
// kinds. The value itself is not clamped; percentages outside [0,100] are a
// data-entry concern, not rejected here.
func validateCommissionPolicy(commissionType string) error {
	switch commission.PolicyType(commissionType) {
	case commission.PolicyPercentage, commission.PolicyFixed:
		return nil
	}
	return fmt.Errorf("commission_type must be %q or %q, got %q",
		commission.PolicyPercentage, commission.PolicyFixed, commissionType)
}

func (s *clientService) validate(req CreateClientRequest) error {
	if strings.TrimSpace(req.Name) == "" {
		return fmt.Errorf("%w: name cannot be empty", ErrClientValidation)
	}
	if err := validateCommissionPolicy(req.CommissionType); err != nil {
		return fmt.Errorf("%w: %v", ErrClientValidation, err)
	}
	return nil
}

func (s *clientService) CreateClient(req CreateClientRequest) (*models.Client, error) {
	if err := s.validate(req); err != nil {
		return nil, err
	}

	client := &models.Client{
		ID:              uuid.NewString(),
		Name:            req.Name,
		CommissionType:  req.CommissionType,
		CommissionValue: req.CommissionValue,
		Phone:           req.Phone,
		Email:           req.Email,
		CreatedAt:       time.Now().UTC(),
	}

	if err := s.clientRepo.CreateClient(s.db, client); err != nil {
		return nil, fmt.Errorf("failed to create client in repository: %w", err)
	}
	return client, nil
}

func (s *clientService) GetClientByID(clientID string) (*models.Client, error) {
	client, err := s.clientRepo.GetClientByID(clientID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrClientNotFound
		}
		return nil, fmt.Errorf("failed to get client by ID: %w", err)
	}
	return client, nil
}

func (s *clientService) GetClients() ([]models.Client, error) {
	clients, err := s.clientRepo.GetClients()
	if err != nil {
		return nil, fmt.Errorf("failed to get clients: %w", err)
	}
	return clients, nil
}

func (s *clientService) UpdateClient(clientID string, req CreateClientRequest) (*models.Client, error) {
	client, err := s.clientRepo.GetClientByID(clientID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrClientNotFound
		}
		return nil, fmt.Errorf("failed to find client for update: %w", err)
	}

	if err := s.validate(req); err != nil {
		return nil, err
	}

	// Full replace of mutable fields. Stored readings keep the commission
	// amounts computed under the old policy; nothing is recomputed.
	client.Name = req.Name
	client.CommissionType = req.CommissionType
	client.CommissionValue = req.CommissionValue
	client.Phone = req.Phone
	client.Email = req.Email

	if err := s.clientRepo.UpdateClient(s.db, client); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrClientNotFound
		}
		return nil, fmt.Errorf("failed to update client in repository: %w", err)
	}
	return client, nil
}

func (s *clientService) DeleteClient(clientID string) error {
	// No cascade: machines owned by this client are left in place with a
	// dangling client_id. Reading ingestion for such machines fails with a
	// client-not-found error until the machine is repointed.
	err := s.clientRepo.DeleteClient(s.db, clientID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrClientNotFound
		}
		return fmt.Errorf("failed to delete client: %w", err)
	}
	return nil
}
