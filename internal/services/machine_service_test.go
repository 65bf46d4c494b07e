package services

import (
	"testing"

	"slotmanager_backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestMachineService(machineRepo *fakeMachineRepo) MachineService {
	clientRepo := newFakeClientRepo(models.Client{ID: "c1", Name: "Bar"})
	regionRepo := newFakeRegionRepo(models.Region{ID: "r1", Name: "Norte"})
	operatorRepo := newFakeOperatorRepo(models.Operator{ID: "o1", Name: "João"})
	return NewMachineService(machineRepo, clientRepo, regionRepo, operatorRepo, nil)
}

func validMachineRequest() CreateMachineRequest {
	return CreateMachineRequest{
		Code:       "001",
		Name:       "Halloween",
		Multiplier: 0.10,
		ClientID:   "c1",
		RegionID:   "r1",
	}
}

func TestCreateMachine(t *testing.T) {
	machineRepo := newFakeMachineRepo()
	svc := newTestMachineService(machineRepo)

	machine, err := svc.CreateMachine(validMachineRequest())
	require.NoError(t, err)

	assert.NotEmpty(t, machine.ID)
	assert.Equal(t, "001", machine.Code)
	assert.True(t, machine.Active, "machines default to active")
	assert.Nil(t, machine.OperatorID)

	stored, err := machineRepo.GetMachineByID(machine.ID)
	require.NoError(t, err)
	assert.Equal(t, machine.Code, stored.Code)
}

func TestCreateMachine_ValidatesReferences(t *testing.T) {
	svc := newTestMachineService(newFakeMachineRepo())

	req := validMachineRequest()
	req.ClientID = "ghost"
	_, err := svc.CreateMachine(req)
	assert.ErrorIs(t, err, ErrMachineValidation)

	req = validMachineRequest()
	req.RegionID = "ghost"
	_, err = svc.CreateMachine(req)
	assert.ErrorIs(t, err, ErrMachineValidation)

	req = validMachineRequest()
	req.OperatorID = strPtr("ghost")
	_, err = svc.CreateMachine(req)
	assert.ErrorIs(t, err, ErrMachineValidation)
}

func TestCreateMachine_ValidatesFields(t *testing.T) {
	svc := newTestMachineService(newFakeMachineRepo())

	req := validMachineRequest()
	req.Multiplier = 0
	_, err := svc.CreateMachine(req)
	assert.ErrorIs(t, err, ErrMachineValidation)

	req = validMachineRequest()
	req.Code = "  "
	_, err = svc.CreateMachine(req)
	assert.ErrorIs(t, err, ErrMachineValidation)
}

func TestCreateMachine_EmptyOperatorIDTreatedAsUnset(t *testing.T) {
	svc := newTestMachineService(newFakeMachineRepo())

	req := validMachineRequest()
	req.OperatorID = strPtr("")
	machine, err := svc.CreateMachine(req)
	require.NoError(t, err)
	assert.Nil(t, machine.OperatorID)
}

func TestUpdateMachine_NotFound(t *testing.T) {
	svc := newTestMachineService(newFakeMachineRepo())

	_, err := svc.UpdateMachine("ghost", validMachineRequest())
	assert.ErrorIs(t, err, ErrMachineNotFound)
}

func TestDeleteMachine(t *testing.T) {
	machineRepo := newFakeMachineRepo(models.Machine{ID: "m1", ClientID: "c1", RegionID: "r1"})
	svc := newTestMachineService(machineRepo)

	require.NoError(t, svc.DeleteMachine("m1"))
	assert.ErrorIs(t, svc.DeleteMachine("m1"), ErrMachineNotFound)
}
