package services

import (
	"database/sql"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"slotmanager_backend/internal/commission"
	"slotmanager_backend/internal/models"
	"slotmanager_backend/internal/repositories"
	"slotmanager_backend/pkg/utils"

	"github.com/google/uuid"
)

// --- Custom Service Errors for Reading ---
var (
	ErrReadingNotFound   = errors.New("reading not found")
	ErrReadingValidation = errors.New("reading data validation error")
)

// readingFetchLimit caps how many raw readings a single list call returns.
const readingFetchLimit = 1000

// --- Reading DTOs ---
type CreateReadingRequest struct {
	MachineID   string     `json:"machine_id" binding:"required"`
	PreviousIn  float64    `json:"previous_in"`
	PreviousOut float64    `json:"previous_out"`
	CurrentIn   float64    `json:"current_in"`
	CurrentOut  float64    `json:"current_out"`
	ReadingDate *time.Time `json:"reading_date"`
}

// ImportResult reports a batch import: how many rows made it in and one
// message per failed row. Partial failure is not an error.
type ImportResult struct {
	Imported int      `json:"imported"`
	Errors   []string `json:"errors"`
}

// --- ReadingService Interface ---
type ReadingService interface {
	CreateReading(req CreateReadingRequest) (*models.Reading, error)
	GetReadings() ([]models.Reading, error)
	DeleteReading(readingID string) error
	ImportReadingsCSV(r io.Reader) (*ImportResult, error)
}

type readingService struct {
	readingRepo  repositories.ReadingRepository
	machineRepo  repositories.MachineRepository
	clientRepo   repositories.ClientRepository
	operatorRepo repositories.OperatorRepository
	db           *sql.DB
	newID        func() string
	now          func() time.Time
}

// NewReadingService creates a new instance of ReadingService.
func NewReadingService(
	readingRepo repositories.ReadingRepository,
	machineRepo repositories.MachineRepository,
	clientRepo repositories.ClientRepository,
	operatorRepo repositories.OperatorRepository,
	db *sql.DB,
) ReadingService {
	return &readingService{
		readingRepo:  readingRepo,
		machineRepo:  machineRepo,
		clientRepo:   clientRepo,
		operatorRepo: operatorRepo,
		db:           db,
		newID:        uuid.NewString,
		now:          time.Now,
	}
}

// resolveOperatorPolicy looks up the machine's operator if one is linked.
// A machine with no operator_id, or with an operator_id pointing at a deleted
// operator, yields no policy (zero commission). The dangling-reference case is
// deliberate legacy behavior; the warning is there for product review.
func (s *readingService) resolveOperatorPolicy(machine *models.Machine) (*commission.Policy, error) {
	if machine.OperatorID == nil || *machine.OperatorID == "" {
		return nil, nil
	}
	operator, err := s.operatorRepo.GetOperatorByID(*machine.OperatorID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			utils.LogInfo("machine references a missing operator, commission defaults to 0", map[string]interface{}{
				"machine_id":  machine.ID,
				"operator_id": *machine.OperatorID,
			})
			return nil, nil
		}
		return nil, fmt.Errorf("failed to resolve operator: %w", err)
	}
	policy := operator.CommissionPolicy()
	return &policy, nil
}

// buildReading resolves the reading's references, runs the calculator and
// assembles the record to persist. Shared by single creation and batch import.
func (s *readingService) buildReading(req CreateReadingRequest) (*models.Reading, error) {
	machine, err := s.machineRepo.GetMachineByID(req.MachineID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrMachineNotFound
		}
		return nil, fmt.Errorf("failed to resolve machine: %w", err)
	}

	client, err := s.clientRepo.GetClientByID(machine.ClientID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			// A dangling client reference is a hard failure, unlike the
			// operator case: every reading must have a client commission policy.
			return nil, ErrClientNotFound
		}
		return nil, fmt.Errorf("failed to resolve client: %w", err)
	}

	operatorPolicy, err := s.resolveOperatorPolicy(machine)
	if err != nil {
		return nil, err
	}

	result := commission.Calculate(
		commission.Meters{
			PreviousIn:  req.PreviousIn,
			PreviousOut: req.PreviousOut,
			CurrentIn:   req.CurrentIn,
			CurrentOut:  req.CurrentOut,
		},
		machine.Multiplier,
		client.CommissionPolicy(),
		operatorPolicy,
	)

	readingDate := s.now().UTC()
	if req.ReadingDate != nil {
		readingDate = *req.ReadingDate
	}

	return &models.Reading{
		ID:                 s.newID(),
		MachineID:          req.MachineID,
		PreviousIn:         req.PreviousIn,
		PreviousOut:        req.PreviousOut,
		CurrentIn:          req.CurrentIn,
		CurrentOut:         req.CurrentOut,
		GrossValue:         result.GrossValue,
		ClientCommission:   result.ClientCommission,
		OperatorCommission: result.OperatorCommission,
		NetValue:           result.NetValue,
		ReadingDate:        readingDate,
		CreatedAt:          s.now().UTC(),
	}, nil
}

func (s *readingService) CreateReading(req CreateReadingRequest) (*models.Reading, error) {
	reading, err := s.buildReading(req)
	if err != nil {
		return nil, err
	}
	if err := s.readingRepo.CreateReading(s.db, reading); err != nil {
		return nil, fmt.Errorf("failed to create reading in repository: %w", err)
	}
	return reading, nil
}

func (s *readingService) GetReadings() ([]models.Reading, error) {
	readings, err := s.readingRepo.GetReadings(readingFetchLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to get readings: %w", err)
	}
	return readings, nil
}

func (s *readingService) DeleteReading(readingID string) error {
	err := s.readingRepo.DeleteReading(s.db, readingID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrReadingNotFound
		}
		return fmt.Errorf("failed to delete reading: %w", err)
	}
	return nil
}

// parseReadingDate accepts RFC 3339 timestamps and bare dates.
func parseReadingDate(value string) (*time.Time, error) {
	if strings.TrimSpace(value) == "" {
		return nil, nil
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, value); err == nil {
			return &t, nil
		}
	}
	return nil, fmt.Errorf("unparseable reading_date %q", value)
}

func parseMeterField(fields map[string]string, name string) (float64, error) {
	raw, ok := fields[name]
	if !ok {
		return 0, fmt.Errorf("missing column %s", name)
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q", name, raw)
	}
	return v, nil
}

// ImportReadingsCSV ingests readings from a CSV document with a header row of
// machine_id, previous_in, previous_out, current_in, current_out and an
// optional reading_date. Rows are processed independently and committed one by
// one; a failed row is recorded and the batch continues. Only an unreadable
// header fails the whole call.
func (s *readingService) ImportReadingsCSV(r io.Reader) (*ImportResult, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("%w: unable to read CSV header: %v", ErrReadingValidation, err)
	}
	for i := range header {
		header[i] = strings.TrimSpace(strings.ToLower(header[i]))
	}

	result := &ImportResult{Errors: []string{}}
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("Error in row: %v", err))
			continue
		}

		fields := map[string]string{}
		for i, value := range record {
			if i < len(header) {
				fields[header[i]] = value
			}
		}

		req, err := parseImportRow(fields)
		if err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("Error in row: %v", err))
			continue
		}

		reading, err := s.buildReading(*req)
		if err != nil {
			if errors.Is(err, ErrMachineNotFound) {
				result.Errors = append(result.Errors, fmt.Sprintf("Machine %s not found", req.MachineID))
			} else {
				result.Errors = append(result.Errors, fmt.Sprintf("Error in row: %v", err))
			}
			continue
		}
		if err := s.readingRepo.CreateReading(s.db, reading); err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("Error in row: %v", err))
			continue
		}
		result.Imported++
	}
	return result, nil
}

func parseImportRow(fields map[string]string) (*CreateReadingRequest, error) {
	machineID := strings.TrimSpace(fields["machine_id"])
	if machineID == "" {
		return nil, errors.New("missing machine_id")
	}

	req := &CreateReadingRequest{MachineID: machineID}

	var err error
	if req.PreviousIn, err = parseMeterField(fields, "previous_in"); err != nil {
		return nil, err
	}
	if req.PreviousOut, err = parseMeterField(fields, "previous_out"); err != nil {
		return nil, err
	}
	if req.CurrentIn, err = parseMeterField(fields, "current_in"); err != nil {
		return nil, err
	}
	if req.CurrentOut, err = parseMeterField(fields, "current_out"); err != nil {
		return nil, err
	}
	if req.ReadingDate, err = parseReadingDate(fields["reading_date"]); err != nil {
		return nil, err
	}
	return req, nil
}
