package repositories

import (
	"database/sql"
	"errors"
	"fmt"

	"slotmanager_backend/internal/models"
)

// ClientRepository defines the interface for client (venue owner) persistence.
type ClientRepository interface {
	CreateClient(executor SQLExecutor, client *models.Client) error
	GetClientByID(id string) (*models.Client, error)
	GetClients() ([]models.Client, error)
	UpdateClient(executor SQLExecutor, client *models.Client) error
	DeleteClient(executor SQLExecutor, id string) error
	CountClients() (int, error)
}

type clientRepository struct {
	db *sql.DB
}

// NewClientRepository creates a new instance of ClientRepository.
func NewClientRepository(db *sql.DB) ClientRepository {
	return &clientRepository{db: db}
}

func (r *clientRepository) CreateClient(executor SQLExecutor, client *models.Client) error {
	query := `INSERT INTO clients (id, name, commission_type, commission_value, phone, email, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := executor.Exec(query,
		client.ID, client.Name, client.CommissionType, client.CommissionValue,
		client.Phone, client.Email, client.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("%w: creating client: %v", ErrDatabaseError, err)
	}
	return nil
}

func (r *clientRepository) GetClientByID(id string) (*models.Client, error) {
	client := &models.Client{}
	query := `SELECT id, name, commission_type, commission_value, phone, email, created_at
	          FROM clients WHERE id = $1`

	err := r.db.QueryRow(query, id).Scan(
		&client.ID, &client.Name, &client.CommissionType, &client.CommissionValue,
		&client.Phone, &client.Email, &client.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: getting client by ID %s: %v", ErrDatabaseError, id, err)
	}
	return client, nil
}

func (r *clientRepository) GetClients() ([]models.Client, error) {
	clients := []models.Client{}
	query := `SELECT id, name, commission_type, commission_value, phone, email, created_at
	          FROM clients ORDER BY name ASC`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("%w: querying clients: %v", ErrDatabaseError, err)
	}
	defer rows.Close()

	for rows.Next() {
		var client models.Client
		if err := rows.Scan(
			&client.ID, &client.Name, &client.CommissionType, &client.CommissionValue,
			&client.Phone, &client.Email, &client.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("%w: scanning client: %v", ErrDatabaseError, err)
		}
		clients = append(clients, client)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating client rows: %v", ErrDatabaseError, err)
	}
	return clients, nil
}

func (r *clientRepository) UpdateClient(executor SQLExecutor, client *models.Client) error {
	query := `UPDATE clients SET name = $1, commission_type = $2, commission_value = $3, phone = $4, email = $5
	          WHERE id = $6`

	result, err := executor.Exec(query,
		client.Name, client.CommissionType, client.CommissionValue,
		client.Phone, client.Email, client.ID,
	)
	if err != nil {
		return fmt.Errorf("%w: updating client ID %s: %v", ErrDatabaseError, client.ID, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: getting rows affected for updating client ID %s: %v", ErrDatabaseError, client.ID, err)
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *clientRepository) DeleteClient(executor SQLExecutor, id string) error {
	query := `DELETE FROM clients WHERE id = $1`

	result, err := executor.Exec(query, id)
	if err != nil {
		return fmt.Errorf("%w: deleting client ID %s: %v", ErrDatabaseError, id, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: getting rows affected for deleting client ID %s: %v", ErrDatabaseError, id, err)
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *clientRepository) CountClients() (int, error) {
	var count int
	if err := r.db.QueryRow(`SELECT COUNT(*) FROM clients`).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: counting clients: %v", ErrDatabaseError, err)
	}
	return count, nil
}
