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

// --- Custom Service Errors for Region ---
var (
	ErrRegionNotFound   = errors.New("region not found")
	ErrRegionValidation = errors.New("region data validation error")
)

// --- Region DTOs ---
type CreateRegionRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description *string `json:"description"`
}

// --- RegionService Interface ---
type RegionService interface {
	CreateRegion(req CreateRegionRequest) (*models.Region, error)
	GetRegions() ([]models.Region, error)
	UpdateRegion(regionID string, req CreateRegionRequest) (*models.Region, error)
	DeleteRegion(regionID string) error
}

type regionService struct {
	regionRepo repositories.RegionRepository
	db         *sql.DB
}

// NewRegionService creates a new instance of RegionService.
func NewRegionService(repo repositories.RegionRepository, db *sql.DB) RegionService {
	return &regionService{regionRepo: repo, db: db}
}

func (s *regionService) CreateRegion(req CreateRegionRequest) (*models.Region, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, fmt.Errorf("%w: name cannot be empty", ErrRegionValidation)
	}

	region := &models.Region{
		ID:          uuid.NewString(),
		Name:        req.Name,
		Description: req.Description,
		CreatedAt:   time.Now().UTC(),
	}

	if err := s.regionRepo.CreateRegion(s.db, region); err != nil {
		return nil, fmt.Errorf("failed to create region in repository: %w", err)
	}
	return region, nil
}

func (s *regionService) GetRegions() ([]models.Region, error) {
	regions, err := s.regionRepo.GetRegions()
	if err != nil {
		return nil, fmt.Errorf("failed to get regions: %w", err)
	}
	return regions, nil
}

func (s *regionService) UpdateRegion(regionID string, req CreateRegionRequest) (*models.Region, error) {
	region, err := s.regionRepo.GetRegionByID(regionID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrRegionNotFound
		}
		return nil, fmt.Errorf("failed to find region for update: %w", err)
	}

	if strings.TrimSpace(req.Name) == "" {
		return nil, fmt.Errorf("%w: name cannot be empty", ErrRegionValidation)
	}
	region.Name = req.Name
	region.Description = req.Description

	if err := s.regionRepo.UpdateRegion(s.db, region); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrRegionNotFound
		}
		return nil, fmt.Errorf("failed to update region in repository: %w", err)
	}
	return region, nil
}

func (s *regionService) DeleteRegion(regionID string) error {
	// No cascade: machines referencing this region keep their dangling
	// region_id. That is accepted behavior, mirrored by reporting which
	// treats an absent scope entity as not found.
	err := s.regionRepo.DeleteRegion(s.db, regionID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrRegionNotFound
		}
		return fmt.Errorf("failed to delete region: %w", err)
	}
	return nil
}
