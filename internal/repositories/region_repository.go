package repositories

import (
	"database/sql"
	"errors"
	"fmt"

	"slotmanager_backend/internal/models"
)

// RegionRepository defines the interface for region persistence.
type RegionRepository interface {
	CreateRegion(executor SQLExecutor, region *models.Region) error
	GetRegionByID(id string) (*models.Region, error)
	GetRegions() ([]models.Region, error)
	UpdateRegion(executor SQLExecutor, region *models.Region) error
	DeleteRegion(executor SQLExecutor, id string) error
	CountRegions() (int, error)
}

type regionRepository struct {
	db *sql.DB
}

// NewRegionRepository creates a new instance of RegionRepository.
func NewRegionRepository(db *sql.DB) RegionRepository {
	return &regionRepository{db: db}
}

func (r *regionRepository) CreateRegion(executor SQLExecutor, region *models.Region) error {
	query := `INSERT INTO regions (id, name, description, created_at) VALUES ($1, $2, $3, $4)`

	_, err := executor.Exec(query, region.ID, region.Name, region.Description, region.CreatedAt)
	if err != nil {
		return fmt.Errorf("%w: creating region: %v", ErrDatabaseError, err)
	}
	return nil
}

func (r *regionRepository) GetRegionByID(id string) (*models.Region, error) {
	region := &models.Region{}
	query := `SELECT id, name, description, created_at FROM regions WHERE id = $1`

	err := r.db.QueryRow(query, id).Scan(&region.ID, &region.Name, &region.Description, &region.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: getting region by ID %s: %v", ErrDatabaseError, id, err)
	}
	return region, nil
}

func (r *regionRepository) GetRegions() ([]models.Region, error) {
	regions := []models.Region{}
	query := `SELECT id, name, description, created_at FROM regions ORDER BY name ASC`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("%w: querying regions: %v", ErrDatabaseError, err)
	}
	defer rows.Close()

	for rows.Next() {
		var region models.Region
		if err := rows.Scan(&region.ID, &region.Name, &region.Description, &region.CreatedAt); err != nil {
			return nil, fmt.Errorf("%w: scanning region: %v", ErrDatabaseError, err)
		}
		regions = append(regions, region)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating region rows: %v", ErrDatabaseError, err)
	}
	return regions, nil
}

func (r *regionRepository) UpdateRegion(executor SQLExecutor, region *models.Region) error {
	query := `UPDATE regions SET name = $1, description = $2 WHERE id = $3`

	result, err := executor.Exec(query, region.Name, region.Description, region.ID)
	if err != nil {
		return fmt.Errorf("%w: updating region ID %s: %v", ErrDatabaseError, region.ID, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: getting rows affected for updating region ID %s: %v", ErrDatabaseError, region.ID, err)
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *regionRepository) DeleteRegion(executor SQLExecutor, id string) error {
	query := `DELETE FROM regions WHERE id = $1`

	result, err := executor.Exec(query, id)
	if err != nil {
		return fmt.Errorf("%w: deleting region ID %s: %v", ErrDatabaseError, id, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: getting rows affected for deleting region ID %s: %v", ErrDatabaseError, id, err)
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *regionRepository) CountRegions() (int, error) {
	var count int
	if err := r.db.QueryRow(`SELECT COUNT(*) FROM regions`).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: counting regions: %v", ErrDatabaseError, err)
	}
	return count, nil
}
