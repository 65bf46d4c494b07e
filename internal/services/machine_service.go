package services

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"slotmanager_backend/internal/models"
	"slotmanager_backend/internal/repositories"

	"github.com/google/uuid"
)

// --- Custom Service Errors for Machine ---
var (
	ErrMachineNotFound   = errors.New("machine not found")
	ErrMachineValidation = errors.New("machine data validation error")
)

// --- Machine DTOs ---
type CreateMachineRequest struct {
	Code       string  `json:"code" binding:"required"`
	Name       string  `json:"name" binding:"required"`
	Multiplier float64 `json:"multiplier" binding:"required"`
	ClientID   string  `json:"client_id" binding:"required"`
	RegionID   string  `json:"region_id" binding:"required"`
	OperatorID *string `json:"operator_id"`
	Active     *bool   `json:"active"`
}

// --- MachineService Interface ---
type MachineService interface {
	CreateMachine(req CreateMachineRequest) (*models.Machine, error)
	GetMachineByID(machineID string) (*models.Machine, error)
	GetMachines() ([]models.Machine, error)
	UpdateMachine(machineID string, req CreateMachineRequest) (*models.Machine, error)
	DeleteMachine(machineID string) error
}

type machineService struct {
	machineRepo  repositories.MachineRepository
	clientRepo   repositories.ClientRepository
	regionRepo   repositories.RegionRepository
	operatorRepo repositories.OperatorRepository
	db           *sql.DB
}

// NewMachineService creates a new instance of MachineService.
func NewMachineService(
	machineRepo repositories.MachineRepository,
	clientRepo repositories.ClientRepository,
	regionRepo repositories.RegionRepository,
	operatorRepo repositories.OperatorRepository,
	db *sql.DB,
) MachineService {
	return &machineService{
		machineRepo:  machineRepo,
		clientRepo:   clientRepo,
		regionRepo:   regionRepo,
		operatorRepo: operatorRepo,
		db:           db,
	}
}

// validateReferences checks client_id and region_id resolve at creation time.
// References are not re-checked afterwards; deleting a client or region later
// leaves a dangling machine reference, which is accepted behavior.
func (s *machineService) validateReferences(req CreateMachineRequest) error {
	if _, err := s.clientRepo.GetClientByID(req.ClientID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return fmt.Errorf("%w: client %s does not exist", ErrMachineValidation, req.ClientID)
		}
		return fmt.Errorf("failed to check client reference: %w", err)
	}
	if _, err := s.regionRepo.GetRegionByID(req.RegionID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return fmt.Errorf("%w: region %s does not exist", ErrMachineValidation, req.RegionID)
		}
		return fmt.Errorf("failed to check region reference: %w", err)
	}
	if req.OperatorID != nil && *req.OperatorID != "" {
		if _, err := s.operatorRepo.GetOperatorByID(*req.OperatorID); err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				return fmt.Errorf("%w: operator %s does not exist", ErrMachineValidation, *req.OperatorID)
			}
			return fmt.Errorf("failed to check operator reference: %w", err)
		}
	}
	return nil
}

func (s *machineService) validate(req CreateMachineRequest) error {
	if strings.TrimSpace(req.Code) == "" {
		return fmt.Errorf("%w: code cannot be empty", ErrMachineValidation)
	}
	if strings.TrimSpace(req.Name) == "" {
		return fmt.Errorf("%w: name cannot be empty", ErrMachineValidation)
	}
	if req.Multiplier <= 0 {
		return fmt.Errorf("%w: multiplier must be positive", ErrMachineValidation)
	}
	return s.validateReferences(req)
}

func (s *machineService) CreateMachine(req CreateMachineRequest) (*models.Machine, error) {
	if err := s.validate(req); err != nil {
		return nil, err
	}

	active := true
	if req.Active != nil {
		active = *req.Active
	}
	var operatorID *string
	if req.OperatorID != nil && *req.OperatorID != "" {
		operatorID = req.OperatorID
	}

	machine := &models.Machine{
		ID:         uuid.NewString(),
		Code:       req.Code,
		Name:       req.Name,
		Multiplier: req.Multiplier,
		ClientID:   req.ClientID,
		RegionID:   req.RegionID,
		OperatorID: operatorID,
		Active:     active,
		CreatedAt:  time.Now().UTC(),
	}

	if err := s.machineRepo.CreateMachine(s.db, machine); err != nil {
		return nil, fmt.Errorf("failed to create machine in repository: %w", err)
	}
	return machine, nil
}

func (s *machineService) GetMachineByID(machineID string) (*models.Machine, error) {
	machine, err := s.machineRepo.GetMachineByID(machineID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrMachineNotFound
		}
		return nil, fmt.Errorf("failed to get machine by ID: %w", err)
	}
	return machine, nil
}

func (s *machineService) GetMachines() ([]models.Machine, error) {
	machines, err := s.machineRepo.GetMachines()
	if err != nil {
		return nil, fmt.Errorf("failed to get machines: %w", err)
	}
	return machines, nil
}

func (s *machineService) UpdateMachine(machineID string, req CreateMachineRequest) (*models.Machine, error) {
	machine, err := s.machineRepo.GetMachineByID(machineID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrMachineNotFound
		}
		return nil, fmt.Errorf("failed to find machine for update: %w", err)
	}

	if err := s.validate(req); err != nil {
		return nil, err
	}

	machine.Code = req.Code
	machine.Name = req.Name
	machine.Multiplier = req.Multiplier
	machine.ClientID = req.ClientID
	machine.RegionID = req.RegionID
	if req.OperatorID != nil && *req.OperatorID != "" {
		machine.OperatorID = req.OperatorID
	} else {
		machine.OperatorID = nil
	}
	if req.Active != nil {
		machine.Active = *req.Active
	}

	if err := s.machineRepo.UpdateMachine(s.db, machine); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrMachineNotFound
		}
		return nil, fmt.Errorf("failed to update machine in repository: %w", err)
	}
	return machine, nil
}

func (s *machineService) DeleteMachine(machineID string) error {
	// Readings referencing this machine stay in place; historical reports by
	// client or region simply no longer find the machine in scope.
	err := s.machineRepo.DeleteMachine(s.db, machineID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrMachineNotFound
		}
		return fmt.Errorf("failed to delete machine: %w", err)
	}
	return nil
}
