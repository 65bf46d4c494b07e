package repositories

import (
	"database/sql"
	"fmt"

	"slotmanager_backend/internal/models"

	"github.com/lib/pq"
)

// ReadingRepository defines the interface for reading persistence. Readings
// are insert-and-delete only; derived fields are never updated.
type ReadingRepository interface {
	CreateReading(executor SQLExecutor, reading *models.Reading) error
	GetReadings(limit int) ([]models.Reading, error)
	GetReadingsByMachineID(machineID string, limit int) ([]models.Reading, error)
	GetReadingsByMachineIDs(machineIDs []string, limit int) ([]models.Reading, error)
	DeleteReading(executor SQLExecutor, id string) error
	CountReadings() (int, error)
}

type readingRepository struct {
	db *sql.DB
}

// NewReadingRepository creates a new instance of ReadingRepository.
func NewReadingRepository(db *sql.DB) ReadingRepository {
	return &readingRepository{db: db}
}

const readingColumns = `id, machine_id, previous_in, previous_out, current_in, current_out,
	gross_value, client_commission, operator_commission, net_value, reading_date, created_at`

func (r *readingRepository) CreateReading(executor SQLExecutor, reading *models.Reading) error {
	query := `INSERT INTO readings (id, machine_id, previous_in, previous_out, current_in, current_out,
	            gross_value, client_commission, operator_commission, net_value, reading_date, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`

	_, err := executor.Exec(query,
		reading.ID, reading.MachineID,
		reading.PreviousIn, reading.PreviousOut, reading.CurrentIn, reading.CurrentOut,
		reading.GrossValue, reading.ClientCommission, reading.OperatorCommission, reading.NetValue,
		reading.ReadingDate, reading.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("%w: creating reading: %v", ErrDatabaseError, err)
	}
	return nil
}

func (r *readingRepository) queryReadings(query string, args ...interface{}) ([]models.Reading, error) {
	readings := []models.Reading{}

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: querying readings: %v", ErrDatabaseError, err)
	}
	defer rows.Close()

	for rows.Next() {
		var reading models.Reading
		if err := rows.Scan(
			&reading.ID, &reading.MachineID,
			&reading.PreviousIn, &reading.PreviousOut, &reading.CurrentIn, &reading.CurrentOut,
			&reading.GrossValue, &reading.ClientCommission, &reading.OperatorCommission, &reading.NetValue,
			&reading.ReadingDate, &reading.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("%w: scanning reading: %v", ErrDatabaseError, err)
		}
		readings = append(readings, reading)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating reading rows: %v", ErrDatabaseError, err)
	}
	return readings, nil
}

func (r *readingRepository) GetReadings(limit int) ([]models.Reading, error) {
	query := `SELECT ` + readingColumns + ` FROM readings ORDER BY reading_date DESC LIMIT $1`
	return r.queryReadings(query, limit)
}

func (r *readingRepository) GetReadingsByMachineID(machineID string, limit int) ([]models.Reading, error) {
	query := `SELECT ` + readingColumns + ` FROM readings WHERE machine_id = $1 ORDER BY reading_date DESC LIMIT $2`
	return r.queryReadings(query, machineID, limit)
}

func (r *readingRepository) GetReadingsByMachineIDs(machineIDs []string, limit int) ([]models.Reading, error) {
	if len(machineIDs) == 0 {
		return []models.Reading{}, nil
	}
	query := `SELECT ` + readingColumns + ` FROM readings WHERE machine_id = ANY($1) ORDER BY reading_date DESC LIMIT $2`
	return r.queryReadings(query, pq.Array(machineIDs), limit)
}

func (r *readingRepository) DeleteReading(executor SQLExecutor, id string) error {
	query := `DELETE FROM readings WHERE id = $1`

	result, err := executor.Exec(query, id)
	if err != nil {
		return fmt.Errorf("%w: deleting reading ID %s: %v", ErrDatabaseError, id, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: getting rows affected for deleting reading ID %s: %v", ErrDatabaseError, id, err)
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *readingRepository) CountReadings() (int, error) {
	var count int
	if err := r.db.QueryRow(`SELECT COUNT(*) FROM readings`).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: counting readings: %v", ErrDatabaseError, err)
	}
	return count, nil
}
