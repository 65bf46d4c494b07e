package repositories

import (
	"database/sql"
	"errors"
	"fmt"

	"slotmanager_backend/internal/models"
)

// OperatorRepository defines the interface for operator persistence.
type OperatorRepository interface {
	CreateOperator(executor SQLExecutor, operator *models.Operator) error
	GetOperatorByID(id string) (*models.Operator, error)
	GetOperators() ([]models.Operator, error)
	UpdateOperator(executor SQLExecutor, operator *models.Operator) error
	DeleteOperator(executor SQLExecutor, id string) error
	CountOperators() (int, error)
}

type operatorRepository struct {
	db *sql.DB
}

// NewOperatorRepository creates a new instance of OperatorRepository.
func NewOperatorRepository(db *sql.DB) OperatorRepository {
	return &operatorRepository{db: db}
}

func (r *operatorRepository) CreateOperator(executor SQLExecutor, operator *models.Operator) error {
	query := `INSERT INTO operators (id, name, commission_type, commission_value, phone, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := executor.Exec(query,
		operator.ID, operator.Name, operator.CommissionType, operator.CommissionValue,
		operator.Phone, operator.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("%w: creating operator: %v", ErrDatabaseError, err)
	}
	return nil
}

func (r *operatorRepository) GetOperatorByID(id string) (*models.Operator, error) {
	operator := &models.Operator{}
	query := `SELECT id, name, commission_type, commission_value, phone, created_at
	          FROM operators WHERE id = $1`

	err := r.db.QueryRow(query, id).Scan(
		&operator.ID, &operator.Name, &operator.CommissionType, &operator.CommissionValue,
		&operator.Phone, &operator.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: getting operator by ID %s: %v", ErrDatabaseError, id, err)
	}
	return operator, nil
}

func (r *operatorRepository) GetOperators() ([]models.Operator, error) {
	operators := []models.Operator{}
	query := `SELECT id, name, commission_type, commission_value, phone, created_at
	          FROM operators ORDER BY name ASC`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("%w: querying operators: %v", ErrDatabaseError, err)
	}
	defer rows.Close()

	for rows.Next() {
		var operator models.Operator
		if err := rows.Scan(
			&operator.ID, &operator.Name, &operator.CommissionType, &operator.CommissionValue,
			&operator.Phone, &operator.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("%w: scanning operator: %v", ErrDatabaseError, err)
		}
		operators = append(operators, operator)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating operator rows: %v", ErrDatabaseError, err)
	}
	return operators, nil
}

func (r *operatorRepository) UpdateOperator(executor SQLExecutor, operator *models.Operator) error {
	query := `UPDATE operators SET name = $1, commission_type = $2, commission_value = $3, phone = $4
	          WHERE id = $5`

	result, err := executor.Exec(query,
		operator.Name, operator.CommissionType, operator.CommissionValue,
		operator.Phone, operator.ID,
	)
	if err != nil {
		return fmt.Errorf("%w: updating operator ID %s: %v", ErrDatabaseError, operator.ID, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: getting rows affected for updating operator ID %s: %v", ErrDatabaseError, operator.ID, err)
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *operatorRepository) DeleteOperator(executor SQLExecutor, id string) error {
	query := `DELETE FROM operators WHERE id = $1`

	result, err := executor.Exec(query, id)
	if err != nil {
		return fmt.Errorf("%w: deleting operator ID %s: %v", ErrDatabaseError, id, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: getting rows affected for deleting operator ID %s: %v", ErrDatabaseError, id, err)
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *operatorRepository) CountOperators() (int, error) {
	var count int
	if err := r.db.QueryRow(`SELECT COUNT(*) FROM operators`).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: counting operators: %v", ErrDatabaseError, err)
	}
	return count, nil
}
