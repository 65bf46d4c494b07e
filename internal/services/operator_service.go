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

// --- Custom Service Errors for Operator ---
var (
	ErrOperatorNotFound   = errors.New("operator not found")
	ErrOperatorValidation = errors.New("operator data validation error")
)

// --- Operator DTOs ---
type CreateOperatorRequest struct {
	Name            string  `json:"name" binding:"required"`
	CommissionType  string  `json:"commission_type" binding:"required"`
	CommissionValue float64 `json:"commission_value"`
	Phone           *string `json:"phone"`
}

// --- OperatorService Interface ---
type OperatorService interface {
	CreateOperator(req CreateOperatorRequest) (*models.Operator, error)
	GetOperators() ([]models.Operator, error)
	UpdateOperator(operatorID string, req CreateOperatorRequest) (*models.Operator, error)
	DeleteOperator(operatorID string) error
}

type operatorService struct {
	operatorRepo repositories.OperatorRepository
	db           *sql.DB
}

// NewOperatorService creates a new instance of OperatorService.
func NewOperatorService(repo repositories.OperatorRepository, db *sql.DB) OperatorService {
	return &operatorService{operatorRepo: repo, db: db}
}

func (s *operatorService) validate(req CreateOperatorRequest) error {
	if strings.TrimSpace(req.Name) == "" {
		return fmt.Errorf("%w: name cannot be empty", ErrOperatorValidation)
	}
	if err := validateCommissionPolicy(req.CommissionType); err != nil {
		return fmt.Errorf("%w: %v", ErrOperatorValidation, err)
	}
	return nil
}

func (s *operatorService) CreateOperator(req CreateOperatorRequest) (*models.Operator, error) {
	if err := s.validate(req); err != nil {
		return nil, err
	}

	operator := &models.Operator{
		ID:              uuid.NewString(),
		Name:            req.Name,
		CommissionType:  req.CommissionType,
		CommissionValue: req.CommissionValue,
		Phone:           req.Phone,
		CreatedAt:       time.Now().UTC(),
	}

	if err := s.operatorRepo.CreateOperator(s.db, operator); err != nil {
		return nil, fmt.Errorf("failed to create operator in repository: %w", err)
	}
	return operator, nil
}

func (s *operatorService) GetOperators() ([]models.Operator, error) {
	operators, err := s.operatorRepo.GetOperators()
	if err != nil {
		return nil, fmt.Errorf("failed to get operators: %w", err)
	}
	return operators, nil
}

func (s *operatorService) UpdateOperator(operatorID string, req CreateOperatorRequest) (*models.Operator, error) {
	operator, err := s.operatorRepo.GetOperatorByID(operatorID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrOperatorNotFound
		}
		return nil, fmt.Errorf("failed to find operator for update: %w", err)
	}

	if err := s.validate(req); err != nil {
		return nil, err
	}

	operator.Name = req.Name
	operator.CommissionType = req.CommissionType
	operator.CommissionValue = req.CommissionValue
	operator.Phone = req.Phone

	if err := s.operatorRepo.UpdateOperator(s.db, operator); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrOperatorNotFound
		}
		return nil, fmt.Errorf("failed to update operator in repository: %w", err)
	}
	return operator, nil
}

func (s *operatorService) DeleteOperator(operatorID string) error {
	// Machines referencing this operator keep their operator_id. Ingestion
	// treats the dangling reference as "no operator" (zero commission).
	err := s.operatorRepo.DeleteOperator(s.db, operatorID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrOperatorNotFound
		}
		return fmt.Errorf("failed to delete operator: %w", err)
	}
	return nil
}
