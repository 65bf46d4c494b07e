package services

import (
	"fmt"

	"slotmanager_backend/internal/models"
	"slotmanager_backend/internal/repositories"
)

// In-memory repository fakes shared by the service tests. They keep records
// in insertion order and mirror the real repositories' sentinel errors.

type fakeReadingRepo struct {
	readings  []models.Reading
	createErr error
}

func (f *fakeReadingRepo) CreateReading(_ repositories.SQLExecutor, reading *models.Reading) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.readings = append(f.readings, *reading)
	return nil
}

func (f *fakeReadingRepo) GetReadings(limit int) ([]models.Reading, error) {
	if len(f.readings) > limit {
		return f.readings[:limit], nil
	}
	return f.readings, nil
}

func (f *fakeReadingRepo) GetReadingsByMachineID(machineID string, limit int) ([]models.Reading, error) {
	return f.GetReadingsByMachineIDs([]string{machineID}, limit)
}

func (f *fakeReadingRepo) GetReadingsByMachineIDs(machineIDs []string, limit int) ([]models.Reading, error) {
	wanted := make(map[string]bool, len(machineIDs))
	for _, id := range machineIDs {
		wanted[id] = true
	}
	var out []models.Reading
	for _, r := range f.readings {
		if wanted[r.MachineID] && len(out) < limit {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeReadingRepo) DeleteReading(_ repositories.SQLExecutor, id string) error {
	for i, r := range f.readings {
		if r.ID == id {
			f.readings = append(f.readings[:i], f.readings[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("%w: reading %s", repositories.ErrNotFound, id)
}

func (f *fakeReadingRepo) CountReadings() (int, error) {
	return len(f.readings), nil
}

type fakeMachineRepo struct {
	machines map[string]models.Machine
}

func newFakeMachineRepo(machines ...models.Machine) *fakeMachineRepo {
	f := &fakeMachineRepo{machines: map[string]models.Machine{}}
	for _, m := range machines {
		f.machines[m.ID] = m
	}
	return f
}

func (f *fakeMachineRepo) CreateMachine(_ repositories.SQLExecutor, machine *models.Machine) error {
	f.machines[machine.ID] = *machine
	return nil
}

func (f *fakeMachineRepo) GetMachineByID(id string) (*models.Machine, error) {
	m, ok := f.machines[id]
	if !ok {
		return nil, fmt.Errorf("%w: machine %s", repositories.ErrNotFound, id)
	}
	return &m, nil
}

func (f *fakeMachineRepo) GetMachines() ([]models.Machine, error) {
	var out []models.Machine
	for _, m := range f.machines {
		out = append(out, m)
	}
	return out, nil
}

func (f *fakeMachineRepo) GetMachinesByClientID(clientID string) ([]models.Machine, error) {
	var out []models.Machine
	for _, m := range f.machines {
		if m.ClientID == clientID {
			out = append(out, m)
		}
	}
	return out, nil
}

func (f *fakeMachineRepo) GetMachinesByRegionID(regionID string) ([]models.Machine, error) {
	var out []models.Machine
	for _, m := range f.machines {
		if m.RegionID == regionID {
			out = append(out, m)
		}
	}
	return out, nil
}

func (f *fakeMachineRepo) UpdateMachine(_ repositories.SQLExecutor, machine *models.Machine) error {
	if _, ok := f.machines[machine.ID]; !ok {
		return fmt.Errorf("%w: machine %s", repositories.ErrNotFound, machine.ID)
	}
	f.machines[machine.ID] = *machine
	return nil
}

func (f *fakeMachineRepo) DeleteMachine(_ repositories.SQLExecutor, id string) error {
	if _, ok := f.machines[id]; !ok {
		return fmt.Errorf("%w: machine %s", repositories.ErrNotFound, id)
	}
	delete(f.machines, id)
	return nil
}

func (f *fakeMachineRepo) CountActiveMachines() (int, error) {
	count := 0
	for _, m := range f.machines {
		if m.Active {
			count++
		}
	}
	return count, nil
}

type fakeClientRepo struct {
	clients map[string]models.Client
}

func newFakeClientRepo(clients ...models.Client) *fakeClientRepo {
	f := &fakeClientRepo{clients: map[string]models.Client{}}
	for _, c := range clients {
		f.clients[c.ID] = c
	}
	return f
}

func (f *fakeClientRepo) CreateClient(_ repositories.SQLExecutor, client *models.Client) error {
	f.clients[client.ID] = *client
	return nil
}

func (f *fakeClientRepo) GetClientByID(id string) (*models.Client, error) {
	c, ok := f.clients[id]
	if !ok {
		return nil, fmt.Errorf("%w: client %s", repositories.ErrNotFound, id)
	}
	return &c, nil
}

func (f *fakeClientRepo) GetClients() ([]models.Client, error) {
	var out []models.Client
	for _, c := range f.clients {
		out = append(out, c)
	}
	return out, nil
}

func (f *fakeClientRepo) UpdateClient(_ repositories.SQLExecutor, client *models.Client) error {
	if _, ok := f.clients[client.ID]; !ok {
		return fmt.Errorf("%w: client %s", repositories.ErrNotFound, client.ID)
	}
	f.clients[client.ID] = *client
	return nil
}

func (f *fakeClientRepo) DeleteClient(_ repositories.SQLExecutor, id string) error {
	if _, ok := f.clients[id]; !ok {
		return fmt.Errorf("%w: client %s", repositories.ErrNotFound, id)
	}
	delete(f.clients, id)
	return nil
}

func (f *fakeClientRepo) CountClients() (int, error) {
	return len(f.clients), nil
}

type fakeOperatorRepo struct {
	operators map[string]models.Operator
}

func newFakeOperatorRepo(operators ...models.Operator) *fakeOperatorRepo {
	f := &fakeOperatorRepo{operators: map[string]models.Operator{}}
	for _, o := range operators {
		f.operators[o.ID] = o
	}
	return f
}

func (f *fakeOperatorRepo) CreateOperator(_ repositories.SQLExecutor, operator *models.Operator) error {
	f.operators[operator.ID] = *operator
	return nil
}

func (f *fakeOperatorRepo) GetOperatorByID(id string) (*models.Operator, error) {
	o, ok := f.operators[id]
	if !ok {
		return nil, fmt.Errorf("%w: operator %s", repositories.ErrNotFound, id)
	}
	return &o, nil
}

func (f *fakeOperatorRepo) GetOperators() ([]models.Operator, error) {
	var out []models.Operator
	for _, o := range f.operators {
		out = append(out, o)
	}
	return out, nil
}

func (f *fakeOperatorRepo) UpdateOperator(_ repositories.SQLExecutor, operator *models.Operator) error {
	if _, ok := f.operators[operator.ID]; !ok {
		return fmt.Errorf("%w: operator %s", repositories.ErrNotFound, operator.ID)
	}
	f.operators[operator.ID] = *operator
	return nil
}

func (f *fakeOperatorRepo) DeleteOperator(_ repositories.SQLExecutor, id string) error {
	if _, ok := f.operators[id]; !ok {
		return fmt.Errorf("%w: operator %s", repositories.ErrNotFound, id)
	}
	delete(f.operators, id)
	return nil
}

func (f *fakeOperatorRepo) CountOperators() (int, error) {
	return len(f.operators), nil
}

type fakeRegionRepo struct {
	regions map[string]models.Region
}

func newFakeRegionRepo(regions ...models.Region) *fakeRegionRepo {
	f := &fakeRegionRepo{regions: map[string]models.Region{}}
	for _, r := range regions {
		f.regions[r.ID] = r
	}
	return f
}

func (f *fakeRegionRepo) CreateRegion(_ repositories.SQLExecutor, region *models.Region) error {
	f.regions[region.ID] = *region
	return nil
}

func (f *fakeRegionRepo) GetRegionByID(id string) (*models.Region, error) {
	r, ok := f.regions[id]
	if !ok {
		return nil, fmt.Errorf("%w: region %s", repositories.ErrNotFound, id)
	}
	return &r, nil
}

func (f *fakeRegionRepo) GetRegions() ([]models.Region, error) {
	var out []models.Region
	for _, r := range f.regions {
		out = append(out, r)
	}
	return out, nil
}

func (f *fakeRegionRepo) UpdateRegion(_ repositories.SQLExecutor, region *models.Region) error {
	if _, ok := f.regions[region.ID]; !ok {
		return fmt.Errorf("%w: region %s", repositories.ErrNotFound, region.ID)
	}
	f.regions[region.ID] = *region
	return nil
}

func (f *fakeRegionRepo) DeleteRegion(_ repositories.SQLExecutor, id string) error {
	if _, ok := f.regions[id]; !ok {
		return fmt.Errorf("%w: region %s", repositories.ErrNotFound, id)
	}
	delete(f.regions, id)
	return nil
}

func (f *fakeRegionRepo) CountRegions() (int, error) {
	return len(f.regions), nil
}
