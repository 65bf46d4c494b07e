package services

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"slotmanager_backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

var testNow = time.Date(2025, 11, 2, 10, 0, 0, 0, time.UTC)

// newTestReadingService wires a reading service over in-memory fakes with a
// deterministic clock and id sequence.
func newTestReadingService(
	readingRepo *fakeReadingRepo,
	machineRepo *fakeMachineRepo,
	clientRepo *fakeClientRepo,
	operatorRepo *fakeOperatorRepo,
) *readingService {
	idSeq := 0
	return &readingService{
		readingRepo:  readingRepo,
		machineRepo:  machineRepo,
		clientRepo:   clientRepo,
		operatorRepo: operatorRepo,
		newID: func() string {
			idSeq++
			return fmt.Sprintf("reading-%d", idSeq)
		},
		now: func() time.Time { return testNow },
	}
}

func TestCreateReading_ComputesAndStoresDerivedFields(t *testing.T) {
	readingRepo := &fakeReadingRepo{}
	machineRepo := newFakeMachineRepo(models.Machine{
		ID: "m1", Code: "001", Multiplier: 0.10, ClientID: "c1", RegionID: "r1", Active: true,
	})
	clientRepo := newFakeClientRepo(models.Client{
		ID: "c1", Name: "Bar do Zé", CommissionType: "percentage", CommissionValue: 10,
	})
	svc := newTestReadingService(readingRepo, machineRepo, clientRepo, newFakeOperatorRepo())

	reading, err := svc.CreateReading(CreateReadingRequest{
		MachineID:   "m1",
		PreviousIn:  1000,
		PreviousOut: 800,
		CurrentIn:   1300,
		CurrentOut:  900,
	})
	require.NoError(t, err)

	assert.Equal(t, "reading-1", reading.ID)
	assert.Equal(t, 20.00, reading.GrossValue)
	assert.Equal(t, 2.00, reading.ClientCommission)
	assert.Equal(t, 0.00, reading.OperatorCommission)
	assert.Equal(t, 18.00, reading.NetValue)
	assert.Equal(t, testNow, reading.ReadingDate, "reading_date defaults to now")
	require.Len(t, readingRepo.readings, 1)
	assert.Equal(t, *reading, readingRepo.readings[0])
}

func TestCreateReading_WithOperatorCommission(t *testing.T) {
	readingRepo := &fakeReadingRepo{}
	machineRepo := newFakeMachineRepo(models.Machine{
		ID: "m1", Multiplier: 0.10, ClientID: "c1", RegionID: "r1", OperatorID: strPtr("o1"), Active: true,
	})
	clientRepo := newFakeClientRepo(models.Client{
		ID: "c1", CommissionType: "fixed", CommissionValue: 5.00,
	})
	operatorRepo := newFakeOperatorRepo(models.Operator{
		ID: "o1", CommissionType: "percentage", CommissionValue: 50,
	})
	svc := newTestReadingService(readingRepo, machineRepo, clientRepo, operatorRepo)

	reading, err := svc.CreateReading(CreateReadingRequest{
		MachineID:   "m1",
		PreviousIn:  1000,
		PreviousOut: 800,
		CurrentIn:   1300,
		CurrentOut:  900,
	})
	require.NoError(t, err)

	assert.Equal(t, 20.00, reading.GrossValue)
	assert.Equal(t, 5.00, reading.ClientCommission)
	assert.Equal(t, 10.00, reading.OperatorCommission)
	assert.Equal(t, 5.00, reading.NetValue)
}

func TestCreateReading_DanglingOperatorYieldsZeroCommission(t *testing.T) {
	readingRepo := &fakeReadingRepo{}
	machineRepo := newFakeMachineRepo(models.Machine{
		ID: "m1", Multiplier: 0.10, ClientID: "c1", RegionID: "r1", OperatorID: strPtr("gone"), Active: true,
	})
	clientRepo := newFakeClientRepo(models.Client{
		ID: "c1", CommissionType: "percentage", CommissionValue: 10,
	})
	svc := newTestReadingService(readingRepo, machineRepo, clientRepo, newFakeOperatorRepo())

	reading, err := svc.CreateReading(CreateReadingRequest{
		MachineID:   "m1",
		PreviousIn:  1000,
		PreviousOut: 800,
		CurrentIn:   1300,
		CurrentOut:  900,
	})
	require.NoError(t, err)

	assert.Equal(t, 0.00, reading.OperatorCommission)
	assert.Equal(t, 18.00, reading.NetValue)
}

func TestCreateReading_MachineNotFound(t *testing.T) {
	svc := newTestReadingService(&fakeReadingRepo{}, newFakeMachineRepo(), newFakeClientRepo(), newFakeOperatorRepo())

	_, err := svc.CreateReading(CreateReadingRequest{MachineID: "nope"})
	assert.ErrorIs(t, err, ErrMachineNotFound)
}

func TestCreateReading_DanglingClientFails(t *testing.T) {
	machineRepo := newFakeMachineRepo(models.Machine{
		ID: "m1", Multiplier: 0.10, ClientID: "deleted-client", RegionID: "r1", Active: true,
	})
	svc := newTestReadingService(&fakeReadingRepo{}, machineRepo, newFakeClientRepo(), newFakeOperatorRepo())

	_, err := svc.CreateReading(CreateReadingRequest{MachineID: "m1"})
	assert.ErrorIs(t, err, ErrClientNotFound)
}

func TestCreateReading_ExplicitReadingDate(t *testing.T) {
	readingRepo := &fakeReadingRepo{}
	machineRepo := newFakeMachineRepo(models.Machine{
		ID: "m1", Multiplier: 0.10, ClientID: "c1", RegionID: "r1", Active: true,
	})
	clientRepo := newFakeClientRepo(models.Client{ID: "c1", CommissionType: "percentage", CommissionValue: 10})
	svc := newTestReadingService(readingRepo, machineRepo, clientRepo, newFakeOperatorRepo())

	date := time.Date(2025, 10, 1, 0, 0, 0, 0, time.UTC)
	reading, err := svc.CreateReading(CreateReadingRequest{MachineID: "m1", ReadingDate: &date})
	require.NoError(t, err)

	assert.Equal(t, date, reading.ReadingDate)
	assert.Equal(t, testNow, reading.CreatedAt)
}

func TestImportReadingsCSV_PartialFailure(t *testing.T) {
	readingRepo := &fakeReadingRepo{}
	machineRepo := newFakeMachineRepo(models.Machine{
		ID: "m1", Multiplier: 0.10, ClientID: "c1", RegionID: "r1", Active: true,
	})
	clientRepo := newFakeClientRepo(models.Client{ID: "c1", CommissionType: "percentage", CommissionValue: 10})
	svc := newTestReadingService(readingRepo, machineRepo, clientRepo, newFakeOperatorRepo())

	csvData := "machine_id,previous_in,previous_out,current_in,current_out\n" +
		"m1,1000,800,1300,900\n" +
		"ghost,0,0,100,50\n" +
		"m1,1300,900,1500,950\n"

	result, err := svc.ImportReadingsCSV(strings.NewReader(csvData))
	require.NoError(t, err)

	assert.Equal(t, 2, result.Imported)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, "Machine ghost not found", result.Errors[0])
	assert.Len(t, readingRepo.readings, 2)
}

func TestImportReadingsCSV_HeaderCaseAndReadingDate(t *testing.T) {
	readingRepo := &fakeReadingRepo{}
	machineRepo := newFakeMachineRepo(models.Machine{
		ID: "m1", Multiplier: 0.10, ClientID: "c1", RegionID: "r1", Active: true,
	})
	clientRepo := newFakeClientRepo(models.Client{ID: "c1", CommissionType: "percentage", CommissionValue: 10})
	svc := newTestReadingService(readingRepo, machineRepo, clientRepo, newFakeOperatorRepo())

	csvData := "Machine_ID,Previous_In,Previous_Out,Current_In,Current_Out,Reading_Date\n" +
		"m1,1000,800,1300,900,2025-10-15\n"

	result, err := svc.ImportReadingsCSV(strings.NewReader(csvData))
	require.NoError(t, err)

	assert.Equal(t, 1, result.Imported)
	assert.Empty(t, result.Errors)
	require.Len(t, readingRepo.readings, 1)
	assert.Equal(t, time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC), readingRepo.readings[0].ReadingDate)
}

func TestImportReadingsCSV_BadNumberReported(t *testing.T) {
	readingRepo := &fakeReadingRepo{}
	machineRepo := newFakeMachineRepo(models.Machine{
		ID: "m1", Multiplier: 0.10, ClientID: "c1", RegionID: "r1", Active: true,
	})
	clientRepo := newFakeClientRepo(models.Client{ID: "c1", CommissionType: "percentage", CommissionValue: 10})
	svc := newTestReadingService(readingRepo, machineRepo, clientRepo, newFakeOperatorRepo())

	csvData := "machine_id,previous_in,previous_out,current_in,current_out\n" +
		"m1,abc,800,1300,900\n"

	result, err := svc.ImportReadingsCSV(strings.NewReader(csvData))
	require.NoError(t, err)

	assert.Equal(t, 0, result.Imported)
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "Error in row:")
}

func TestImportReadingsCSV_UnreadableHeader(t *testing.T) {
	svc := newTestReadingService(&fakeReadingRepo{}, newFakeMachineRepo(), newFakeClientRepo(), newFakeOperatorRepo())

	_, err := svc.ImportReadingsCSV(strings.NewReader(""))
	assert.ErrorIs(t, err, ErrReadingValidation)
}

func TestDeleteReading(t *testing.T) {
	readingRepo := &fakeReadingRepo{readings: []models.Reading{{ID: "x"}}}
	svc := newTestReadingService(readingRepo, newFakeMachineRepo(), newFakeClientRepo(), newFakeOperatorRepo())

	require.NoError(t, svc.DeleteReading("x"))
	assert.Empty(t, readingRepo.readings)

	assert.ErrorIs(t, svc.DeleteReading("x"), ErrReadingNotFound)
}
