package services

import (
	"errors"
	"fmt"

	"slotmanager_backend/internal/commission"
	"slotmanager_backend/internal/models"
	"slotmanager_backend/internal/repositories"
)

// --- ReportService Interface ---
//
// Every report re-scans the stored readings for its scope and sums the
// per-reading monetary fields as stored (already rounded at ingestion).
// Aggregates never re-derive from raw meters, so totals can drift from a
// raw-meter computation by accumulated rounding; that is kept for
// compatibility with legacy-imported readings.
type ReportService interface {
	Dashboard() (*models.DashboardStats, error)
	MachineReport(machineID string) (*models.MachineReport, error)
	ClientReport(clientID string) (*models.ClientReport, error)
	RegionReport(regionID string) (*models.RegionReport, error)
}

type reportService struct {
	readingRepo  repositories.ReadingRepository
	machineRepo  repositories.MachineRepository
	clientRepo   repositories.ClientRepository
	regionRepo   repositories.RegionRepository
	operatorRepo repositories.OperatorRepository
}

// NewReportService creates a new instance of ReportService.
func NewReportService(
	readingRepo repositories.ReadingRepository,
	machineRepo repositories.MachineRepository,
	clientRepo repositories.ClientRepository,
	regionRepo repositories.RegionRepository,
	operatorRepo repositories.OperatorRepository,
) ReportService {
	return &reportService{
		readingRepo:  readingRepo,
		machineRepo:  machineRepo,
		clientRepo:   clientRepo,
		regionRepo:   regionRepo,
		operatorRepo: operatorRepo,
	}
}

// dashboardFetchLimit is larger than the scoped limit: the dashboard sums the
// whole system.
const dashboardFetchLimit = 10000

func (s *reportService) Dashboard() (*models.DashboardStats, error) {
	totalMachines, err := s.machineRepo.CountActiveMachines()
	if err != nil {
		return nil, fmt.Errorf("failed to count machines: %w", err)
	}
	totalClients, err := s.clientRepo.CountClients()
	if err != nil {
		return nil, fmt.Errorf("failed to count clients: %w", err)
	}
	totalOperators, err := s.operatorRepo.CountOperators()
	if err != nil {
		return nil, fmt.Errorf("failed to count operators: %w", err)
	}

	readings, err := s.readingRepo.GetReadings(dashboardFetchLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to get readings: %w", err)
	}

	var gross, commissions, net float64
	for _, r := range readings {
		gross += r.GrossValue
		commissions += r.ClientCommission + r.OperatorCommission
		net += r.NetValue
	}

	return &models.DashboardStats{
		TotalMachines:    totalMachines,
		TotalClients:     totalClients,
		TotalOperators:   totalOperators,
		TotalReadings:    len(readings),
		TotalGross:       commission.Round2(gross),
		TotalCommissions: commission.Round2(commissions),
		TotalNet:         commission.Round2(net),
	}, nil
}

func (s *reportService) MachineReport(machineID string) (*models.MachineReport, error) {
	machine, err := s.machineRepo.GetMachineByID(machineID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrMachineNotFound
		}
		return nil, fmt.Errorf("failed to resolve machine: %w", err)
	}

	readings, err := s.readingRepo.GetReadingsByMachineID(machineID, readingFetchLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to get readings for machine: %w", err)
	}

	var gross, net float64
	for _, r := range readings {
		gross += r.GrossValue
		net += r.NetValue
	}

	return &models.MachineReport{
		Machine:       machine,
		Readings:      readings,
		TotalGross:    commission.Round2(gross),
		TotalNet:      commission.Round2(net),
		TotalReadings: len(readings),
	}, nil
}

func (s *reportService) ClientReport(clientID string) (*models.ClientReport, error) {
	client, err := s.clientRepo.GetClientByID(clientID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrClientNotFound
		}
		return nil, fmt.Errorf("failed to resolve client: %w", err)
	}

	machines, err := s.machineRepo.GetMachinesByClientID(clientID)
	if err != nil {
		return nil, fmt.Errorf("failed to get machines for client: %w", err)
	}

	readings, err := s.readingRepo.GetReadingsByMachineIDs(machineIDs(machines), readingFetchLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to get readings for client: %w", err)
	}

	var gross, clientCommission float64
	for _, r := range readings {
		gross += r.GrossValue
		clientCommission += r.ClientCommission
	}

	return &models.ClientReport{
		Client:          client,
		Machines:        machines,
		Readings:        readings,
		TotalGross:      commission.Round2(gross),
		TotalCommission: commission.Round2(clientCommission),
		TotalReadings:   len(readings),
	}, nil
}

func (s *reportService) RegionReport(regionID string) (*models.RegionReport, error) {
	region, err := s.regionRepo.GetRegionByID(regionID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrRegionNotFound
		}
		return nil, fmt.Errorf("failed to resolve region: %w", err)
	}

	machines, err := s.machineRepo.GetMachinesByRegionID(regionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get machines for region: %w", err)
	}

	readings, err := s.readingRepo.GetReadingsByMachineIDs(machineIDs(machines), readingFetchLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to get readings for region: %w", err)
	}

	var gross, net float64
	for _, r := range readings {
		gross += r.GrossValue
		net += r.NetValue
	}

	return &models.RegionReport{
		Region:        region,
		Machines:      machines,
		Readings:      readings,
		TotalGross:    commission.Round2(gross),
		TotalNet:      commission.Round2(net),
		TotalMachines: len(machines),
	}, nil
}

func machineIDs(machines []models.Machine) []string {
	ids := make([]string, 0, len(machines))
	for _, m := range machines {
		ids = append(ids, m.ID)
	}
	return ids
}
