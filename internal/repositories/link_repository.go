package repositories

import (
	"database/sql"
	"errors"
	"fmt"

	"slotmanager_backend/internal/models"

	"github.com/lib/pq"
)

// LinkRepository defines the interface for client-operator link persistence.
// The unique index on (client_id, operator_id) is the real guard against
// concurrent duplicate creation; callers treat ErrDuplicateKey as a conflict.
type LinkRepository interface {
	CreateLink(executor SQLExecutor, link *models.ClientOperatorLink) error
	GetLinkByPair(clientID, operatorID string) (*models.ClientOperatorLink, error)
	GetLinks() ([]models.ClientOperatorLink, error)
	DeleteLink(executor SQLExecutor, id string) error
}

type linkRepository struct {
	db *sql.DB
}

// NewLinkRepository creates a new instance of LinkRepository.
func NewLinkRepository(db *sql.DB) LinkRepository {
	return &linkRepository{db: db}
}

func (r *linkRepository) CreateLink(executor SQLExecutor, link *models.ClientOperatorLink) error {
	query := `INSERT INTO client_operator_links (id, client_id, operator_id, created_at)
	          VALUES ($1, $2, $3, $4)`

	_, err := executor.Exec(query, link.ID, link.ClientID, link.OperatorID, link.CreatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code.Name() == "unique_violation" {
			return fmt.Errorf("%w: %s (constraint: %s)", ErrDuplicateKey, pqErr.Message, pqErr.Constraint)
		}
		return fmt.Errorf("%w: creating link: %v", ErrDatabaseError, err)
	}
	return nil
}

func (r *linkRepository) GetLinkByPair(clientID, operatorID string) (*models.ClientOperatorLink, error) {
	link := &models.ClientOperatorLink{}
	query := `SELECT id, client_id, operator_id, created_at FROM client_operator_links
	          WHERE client_id = $1 AND operator_id = $2`

	err := r.db.QueryRow(query, clientID, operatorID).Scan(&link.ID, &link.ClientID, &link.OperatorID, &link.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: getting link by pair: %v", ErrDatabaseError, err)
	}
	return link, nil
}

func (r *linkRepository) GetLinks() ([]models.ClientOperatorLink, error) {
	links := []models.ClientOperatorLink{}
	query := `SELECT id, client_id, operator_id, created_at FROM client_operator_links ORDER BY created_at DESC`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("%w: querying links: %v", ErrDatabaseError, err)
	}
	defer rows.Close()

	for rows.Next() {
		var link models.ClientOperatorLink
		if err := rows.Scan(&link.ID, &link.ClientID, &link.OperatorID, &link.CreatedAt); err != nil {
			return nil, fmt.Errorf("%w: scanning link: %v", ErrDatabaseError, err)
		}
		links = append(links, link)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating link rows: %v", ErrDatabaseError, err)
	}
	return links, nil
}

func (r *linkRepository) DeleteLink(executor SQLExecutor, id string) error {
	query := `DELETE FROM client_operator_links WHERE id = $1`

	result, err := executor.Exec(query, id)
	if err != nil {
		return fmt.Errorf("%w: deleting link ID %s: %v", ErrDatabaseError, id, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: getting rows affected for deleting link ID %s: %v", ErrDatabaseError, id, err)
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
