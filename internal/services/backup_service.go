package services

import (
	"database/sql"
	"fmt"
	"time"

	"slotmanager_backend/internal/models"
	"slotmanager_backend/internal/repositories"
)

// backupFetchLimit bounds the reading export; effectively "everything" at
// current data volumes.
const backupFetchLimit = 100000

// --- BackupService Interface ---
//
// Export emits the same five-array document the legacy converter produces, so
// a converted backup round-trips through Import unchanged.
type BackupService interface {
	Export() (*models.BackupDocument, error)
	Import(doc *models.BackupDocument) (*models.BackupImportResult, error)
}

type backupService struct {
	regionRepo  repositories.RegionRepository
	clientRepo  repositories.ClientRepository
	opRepo      repositories.OperatorRepository
	machineRepo repositories.MachineRepository
	readingRepo repositories.ReadingRepository
	db          *sql.DB
	now         func() time.Time
}

// NewBackupService creates a new instance of BackupService.
func NewBackupService(
	regionRepo repositories.RegionRepository,
	clientRepo repositories.ClientRepository,
	opRepo repositories.OperatorRepository,
	machineRepo repositories.MachineRepository,
	readingRepo repositories.ReadingRepository,
	db *sql.DB,
) BackupService {
	return &backupService{
		regionRepo:  regionRepo,
		clientRepo:  clientRepo,
		opRepo:      opRepo,
		machineRepo: machineRepo,
		readingRepo: readingRepo,
		db:          db,
		now:         time.Now,
	}
}

func (s *backupService) Export() (*models.BackupDocument, error) {
	regions, err := s.regionRepo.GetRegions()
	if err != nil {
		return nil, fmt.Errorf("failed to export regions: %w", err)
	}
	clients, err := s.clientRepo.GetClients()
	if err != nil {
		return nil, fmt.Errorf("failed to export clients: %w", err)
	}
	operators, err := s.opRepo.GetOperators()
	if err != nil {
		return nil, fmt.Errorf("failed to export operators: %w", err)
	}
	machines, err := s.machineRepo.GetMachines()
	if err != nil {
		return nil, fmt.Errorf("failed to export machines: %w", err)
	}
	readings, err := s.readingRepo.GetReadings(backupFetchLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to export readings: %w", err)
	}

	return &models.BackupDocument{
		Regions:   regions,
		Clients:   clients,
		Operators: operators,
		Machines:  machines,
		Readings:  readings,
	}, nil
}

// Import inserts every record of the document, preserving the caller's ids
// (converted backups carry freshly generated ones). Records are committed one
// by one; a failed record is logged into the result and never aborts the rest.
func (s *backupService) Import(doc *models.BackupDocument) (*models.BackupImportResult, error) {
	result := &models.BackupImportResult{
		Imported: map[string]int{"regions": 0, "clients": 0, "operators": 0, "machines": 0, "readings": 0},
		Errors:   []string{},
	}

	for i := range doc.Regions {
		region := doc.Regions[i]
		s.defaultTime(&region.CreatedAt)
		if err := s.regionRepo.CreateRegion(s.db, &region); err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("region %s: %v", region.ID, err))
			continue
		}
		result.Imported["regions"]++
	}

	for i := range doc.Clients {
		client := doc.Clients[i]
		s.defaultTime(&client.CreatedAt)
		if err := s.clientRepo.CreateClient(s.db, &client); err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("client %s: %v", client.ID, err))
			continue
		}
		result.Imported["clients"]++
	}

	for i := range doc.Operators {
		operator := doc.Operators[i]
		s.defaultTime(&operator.CreatedAt)
		if err := s.opRepo.CreateOperator(s.db, &operator); err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("operator %s: %v", operator.ID, err))
			continue
		}
		result.Imported["operators"]++
	}

	for i := range doc.Machines {
		machine := doc.Machines[i]
		s.defaultTime(&machine.CreatedAt)
		if err := s.machineRepo.CreateMachine(s.db, &machine); err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("machine %s: %v", machine.ID, err))
			continue
		}
		result.Imported["machines"]++
	}

	for i := range doc.Readings {
		reading := doc.Readings[i]
		s.defaultTime(&reading.CreatedAt)
		s.defaultTime(&reading.ReadingDate)
		if err := s.readingRepo.CreateReading(s.db, &reading); err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("reading %s: %v", reading.ID, err))
			continue
		}
		result.Imported["readings"]++
	}

	return result, nil
}

func (s *backupService) defaultTime(t *time.Time) {
	if t.IsZero() {
		*t = s.now().UTC()
	}
}
