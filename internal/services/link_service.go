package services

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"slotmanager_backend/internal/models"
	"slotmanager_backend/internal/repositories"

	"github.com/google/uuid"
)

// --- Custom Service Errors for Link ---
var (
	ErrLinkNotFound   = errors.New("link not found")
	ErrLinkExists     = errors.New("client is already linked to this operator")
	ErrLinkValidation = errors.New("link data validation error")
)

// --- Link DTOs ---
type CreateLinkRequest struct {
	ClientID   string `json:"client_id" binding:"required"`
	OperatorID string `json:"operator_id" binding:"required"`
}

// --- LinkService Interface ---
type LinkService interface {
	CreateLink(req CreateLinkRequest) (*models.ClientOperatorLink, error)
	GetLinks() ([]models.ClientOperatorLink, error)
	DeleteLink(linkID string) error
}

type linkService struct {
	linkRepo     repositories.LinkRepository
	clientRepo   repositories.ClientRepository
	operatorRepo repositories.OperatorRepository
	db           *sql.DB
}

// NewLinkService creates a new instance of LinkService.
func NewLinkService(
	linkRepo repositories.LinkRepository,
	clientRepo repositories.ClientRepository,
	operatorRepo repositories.OperatorRepository,
	db *sql.DB,
) LinkService {
	return &linkService{
		linkRepo:     linkRepo,
		clientRepo:   clientRepo,
		operatorRepo: operatorRepo,
		db:           db,
	}
}

func (s *linkService) CreateLink(req CreateLinkRequest) (*models.ClientOperatorLink, error) {
	if _, err := s.clientRepo.GetClientByID(req.ClientID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrClientNotFound
		}
		return nil, fmt.Errorf("failed to check client reference: %w", err)
	}
	if _, err := s.operatorRepo.GetOperatorByID(req.OperatorID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrOperatorNotFound
		}
		return nil, fmt.Errorf("failed to check operator reference: %w", err)
	}

	// Fast-path duplicate check for a friendly error. Not the correctness
	// mechanism: two concurrent creates both pass this lookup, and the unique
	// index on (client_id, operator_id) rejects the loser.
	if _, err := s.linkRepo.GetLinkByPair(req.ClientID, req.OperatorID); err == nil {
		return nil, ErrLinkExists
	} else if !errors.Is(err, repositories.ErrNotFound) {
		return nil, fmt.Errorf("failed to check existing link: %w", err)
	}

	link := &models.ClientOperatorLink{
		ID:         uuid.NewString(),
		ClientID:   req.ClientID,
		OperatorID: req.OperatorID,
		CreatedAt:  time.Now().UTC(),
	}

	if err := s.linkRepo.CreateLink(s.db, link); err != nil {
		if errors.Is(err, repositories.ErrDuplicateKey) {
			return nil, ErrLinkExists
		}
		return nil, fmt.Errorf("failed to create link in repository: %w", err)
	}
	return link, nil
}

func (s *linkService) GetLinks() ([]models.ClientOperatorLink, error) {
	links, err := s.linkRepo.GetLinks()
	if err != nil {
		return nil, fmt.Errorf("failed to get links: %w", err)
	}
	return links, nil
}

func (s *linkService) DeleteLink(linkID string) error {
	err := s.linkRepo.DeleteLink(s.db, linkID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrLinkNotFound
		}
		return fmt.Errorf("failed to delete link: %w", err)
	}
	return nil
}
