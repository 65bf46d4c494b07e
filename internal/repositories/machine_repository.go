package repositories

import (
	"database/sql"
	"errors"
	"fmt"

	"slotmanager_backend/internal/models"
)

// MachineRepository defines the interface for machine persistence.
type MachineRepository interface {
	CreateMachine(executor SQLExecutor, machine *models.Machine) error
	GetMachineByID(id string) (*models.Machine, error)
	GetMachines() ([]models.Machine, error)
	GetMachinesByClientID(clientID string) ([]models.Machine, error)
	GetMachinesByRegionID(regionID string) ([]models.Machine, error)
	UpdateMachine(executor SQLExecutor, machine *models.Machine) error
	DeleteMachine(executor SQLExecutor, id string) error
	CountActiveMachines() (int, error)
}

type machineRepository struct {
	db *sql.DB
}

// NewMachineRepository creates a new instance of MachineRepository.
func NewMachineRepository(db *sql.DB) MachineRepository {
	return &machineRepository{db: db}
}

const machineColumns = `id, code, name, multiplier, client_id, region_id, operator_id, active, created_at`

func (r *machineRepository) CreateMachine(executor SQLExecutor, machine *models.Machine) error {
	query := `INSERT INTO machines (id, code, name, multiplier, client_id, region_id, operator_id, active, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err := executor.Exec(query,
		machine.ID, machine.Code, machine.Name, machine.Multiplier,
		machine.ClientID, machine.RegionID, machine.OperatorID, machine.Active, machine.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("%w: creating machine: %v", ErrDatabaseError, err)
	}
	return nil
}

func (r *machineRepository) scanMachine(row *sql.Row) (*models.Machine, error) {
	machine := &models.Machine{}
	err := row.Scan(
		&machine.ID, &machine.Code, &machine.Name, &machine.Multiplier,
		&machine.ClientID, &machine.RegionID, &machine.OperatorID, &machine.Active, &machine.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return machine, nil
}

func (r *machineRepository) GetMachineByID(id string) (*models.Machine, error) {
	query := `SELECT ` + machineColumns + ` FROM machines WHERE id = $1`

	machine, err := r.scanMachine(r.db.QueryRow(query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: getting machine by ID %s: %v", ErrDatabaseError, id, err)
	}
	return machine, nil
}

func (r *machineRepository) queryMachines(query string, args ...interface{}) ([]models.Machine, error) {
	machines := []models.Machine{}

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: querying machines: %v", ErrDatabaseError, err)
	}
	defer rows.Close()

	for rows.Next() {
		var machine models.Machine
		if err := rows.Scan(
			&machine.ID, &machine.Code, &machine.Name, &machine.Multiplier,
			&machine.ClientID, &machine.RegionID, &machine.OperatorID, &machine.Active, &machine.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("%w: scanning machine: %v", ErrDatabaseError, err)
		}
		machines = append(machines, machine)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating machine rows: %v", ErrDatabaseError, err)
	}
	return machines, nil
}

func (r *machineRepository) GetMachines() ([]models.Machine, error) {
	return r.queryMachines(`SELECT ` + machineColumns + ` FROM machines ORDER BY code ASC`)
}

func (r *machineRepository) GetMachinesByClientID(clientID string) ([]models.Machine, error) {
	return r.queryMachines(`SELECT `+machineColumns+` FROM machines WHERE client_id = $1 ORDER BY code ASC`, clientID)
}

func (r *machineRepository) GetMachinesByRegionID(regionID string) ([]models.Machine, error) {
	return r.queryMachines(`SELECT `+machineColumns+` FROM machines WHERE region_id = $1 ORDER BY code ASC`, regionID)
}

func (r *machineRepository) UpdateMachine(executor SQLExecutor, machine *models.Machine) error {
	query := `UPDATE machines SET code = $1, name = $2, multiplier = $3, client_id = $4,
	            region_id = $5, operator_id = $6, active = $7
	          WHERE id = $8`

	result, err := executor.Exec(query,
		machine.Code, machine.Name, machine.Multiplier, machine.ClientID,
		machine.RegionID, machine.OperatorID, machine.Active, machine.ID,
	)
	if err != nil {
		return fmt.Errorf("%w: updating machine ID %s: %v", ErrDatabaseError, machine.ID, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: getting rows affected for updating machine ID %s: %v", ErrDatabaseError, machine.ID, err)
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *machineRepository) DeleteMachine(executor SQLExecutor, id string) error {
	query := `DELETE FROM machines WHERE id = $1`

	result, err := executor.Exec(query, id)
	if err != nil {
		return fmt.Errorf("%w: deleting machine ID %s: %v", ErrDatabaseError, id, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: getting rows affected for deleting machine ID %s: %v", ErrDatabaseError, id, err)
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *machineRepository) CountActiveMachines() (int, error) {
	var count int
	if err := r.db.QueryRow(`SELECT COUNT(*) FROM machines WHERE active = TRUE`).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: counting active machines: %v", ErrDatabaseError, err)
	}
	return count, nil
}
