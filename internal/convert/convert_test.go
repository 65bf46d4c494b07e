package convert

import (
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var convertTestNow = time.Date(2025, 11, 2, 12, 0, 0, 0, time.UTC)

func newTestConverter() *Converter {
	idSeq := 0
	return &Converter{
		newID: func() string {
			idSeq++
			return fmt.Sprintf("id-%d", idSeq)
		},
		now: func() time.Time { return convertTestNow },
	}
}

func TestConvert_RegionsAndClients(t *testing.T) {
	c := newTestConverter()

	doc := c.Convert(&LegacyBackup{
		Regions: []LegacyRegion{
			{ID: "10", Name: "Norte", Description: "zona norte", CreatedAt: "2024-01-05T08:00:00"},
		},
		Clients: []LegacyClient{
			{ID: "20", Name: "Bar do Zé", Commission: 15, Contact: "9999-0000", Email: "ze@example.com", RegionID: "10", CreatedAt: "2024-02-01"},
		},
	})

	require.Len(t, doc.Regions, 1)
	region := doc.Regions[0]
	assert.Equal(t, "Norte", region.Name)
	require.NotNil(t, region.Description)
	assert.Equal(t, "zona norte", *region.Description)
	assert.Equal(t, time.Date(2024, 1, 5, 8, 0, 0, 0, time.UTC), region.CreatedAt)

	require.Len(t, doc.Clients, 1)
	client := doc.Clients[0]
	assert.Equal(t, "Bar do Zé", client.Name)
	assert.Equal(t, "percentage", client.CommissionType, "legacy flat commission becomes a percentage policy")
	assert.Equal(t, 15.0, client.CommissionValue)
	require.NotNil(t, client.Phone)
	assert.Equal(t, "9999-0000", *client.Phone)
	assert.NotEqual(t, "20", client.ID, "legacy ids are replaced")
}

func TestConvert_SharedProfileYieldsOneOperator(t *testing.T) {
	c := newTestConverter()

	doc := c.Convert(&LegacyBackup{
		ImpersonationProfiles: []LegacyImpersonationProfile{
			{ID: "p1", Name: "João", Phone: "1111"},
		},
		ManagerClients: []LegacyManagerClient{
			{ClientID: "c1", ImpersonationProfileID: "p1", CommissionPercentage: 30, CreatedAt: "2024-03-01"},
			{ClientID: "c2", ImpersonationProfileID: "p1", CommissionPercentage: 45, CreatedAt: "2024-03-02"},
		},
	})

	require.Len(t, doc.Operators, 1)
	operator := doc.Operators[0]
	assert.Equal(t, "João", operator.Name)
	assert.Equal(t, 30.0, operator.CommissionValue, "first link wins")
	assert.Equal(t, "percentage", operator.CommissionType)
}

func TestConvert_UnnamedProfileGetsPlaceholderName(t *testing.T) {
	c := newTestConverter()

	doc := c.Convert(&LegacyBackup{
		ManagerClients: []LegacyManagerClient{
			{ClientID: "c1", ImpersonationProfileID: "p-missing", CommissionPercentage: 10},
		},
	})

	require.Len(t, doc.Operators, 1)
	assert.Equal(t, "Operador 1", doc.Operators[0].Name)
}

func TestConvert_NoLinksSynthesizesDefaultOperator(t *testing.T) {
	c := newTestConverter()

	doc := c.Convert(&LegacyBackup{})

	require.Len(t, doc.Operators, 1)
	operator := doc.Operators[0]
	assert.Equal(t, "Sem Operador", operator.Name)
	assert.Equal(t, 0.0, operator.CommissionValue)
	assert.Equal(t, convertTestNow, operator.CreatedAt)
}

func TestConvert_MachineResolution(t *testing.T) {
	c := newTestConverter()

	doc := c.Convert(&LegacyBackup{
		Regions: []LegacyRegion{
			{ID: "r1", Name: "Norte"},
			{ID: "r2", Name: "Sul"},
		},
		Clients: []LegacyClient{
			{ID: "c1", Name: "Com Região", RegionID: "r2"},
			{ID: "c2", Name: "Sem Região"},
		},
		Machines: []LegacyMachine{
			{ID: "m1", SerialNumber: "SN-7", Model: "Halloween", Multiplicity: 0.25, ClientID: "c1"},
			{ID: "m2", ClientID: "c2"},
			{ID: "m3", ClientID: "orphan"},
		},
	})

	require.Len(t, doc.Machines, 2, "machine with unresolvable client is dropped")

	first := doc.Machines[0]
	assert.Equal(t, "SN-7", first.Code)
	assert.Equal(t, "Halloween", first.Name)
	assert.Equal(t, 0.25, first.Multiplier)
	assert.Equal(t, doc.Clients[0].ID, first.ClientID)
	assert.Equal(t, doc.Regions[1].ID, first.RegionID, "region comes from the owning client")
	assert.True(t, first.Active)

	second := doc.Machines[1]
	assert.Equal(t, "m2", second.Code, "code falls back to the legacy id")
	assert.Equal(t, "Máquina m2", second.Name)
	assert.Equal(t, 0.01, second.Multiplier, "multiplier defaults when absent")
	assert.Equal(t, doc.Regions[0].ID, second.RegionID, "clientless region falls back to the first converted region")
}

func TestConvert_MachineOperatorLinkLastWriteWins(t *testing.T) {
	c := newTestConverter()

	doc := c.Convert(&LegacyBackup{
		Regions: []LegacyRegion{{ID: "r1", Name: "Norte"}},
		Clients: []LegacyClient{{ID: "c1", Name: "Bar", RegionID: "r1"}},
		ImpersonationProfiles: []LegacyImpersonationProfile{
			{ID: "p1", Name: "João"},
			{ID: "p2", Name: "Maria"},
		},
		ManagerClients: []LegacyManagerClient{
			{ClientID: "c1", ImpersonationProfileID: "p1", CommissionPercentage: 30},
			{ClientID: "c1", ImpersonationProfileID: "p2", CommissionPercentage: 40},
		},
		Machines: []LegacyMachine{{ID: "m1", ClientID: "c1"}},
	})

	require.Len(t, doc.Operators, 2)
	require.Len(t, doc.Machines, 1)
	require.NotNil(t, doc.Machines[0].OperatorID)
	assert.Equal(t, doc.Operators[1].ID, *doc.Machines[0].OperatorID, "later link overwrites the client's operator")
}

func TestConvert_ReadingReconstruction(t *testing.T) {
	c := newTestConverter()

	doc := c.Convert(&LegacyBackup{
		Regions:  []LegacyRegion{{ID: "r1", Name: "Norte"}},
		Clients:  []LegacyClient{{ID: "c1", Name: "Bar", RegionID: "r1"}},
		Machines: []LegacyMachine{{ID: "m1", ClientID: "c1", Multiplicity: 0.10}},
		Readings: []LegacyReading{
			{MachineID: "m1", Profit: 50, CommissionValue: -5, OperatorCommissionValue: 2.5, Multiplier: 0.10, CreatedAt: "2024-06-01T00:00:00"},
			{MachineID: "dropped", Profit: 10, Multiplier: 0.10},
		},
	})

	require.Len(t, doc.Readings, 1, "readings of unresolved machines are dropped")
	reading := doc.Readings[0]

	assert.Equal(t, doc.Machines[0].ID, reading.MachineID)
	assert.Equal(t, 50.0, reading.GrossValue, "gross is copied, not recomputed")
	assert.Equal(t, 5.0, reading.ClientCommission, "commission signs are normalized to positive")
	assert.Equal(t, 2.5, reading.OperatorCommission)
	assert.Equal(t, 42.5, reading.NetValue)

	// difference = 50 / 0.10 = 500; meters rebuilt around the 1000/800 baseline
	assert.Equal(t, 1000.0, reading.PreviousIn)
	assert.Equal(t, 800.0, reading.PreviousOut)
	assert.Equal(t, 1700.0, reading.CurrentIn)
	assert.Equal(t, 800.0, reading.CurrentOut)

	assert.Equal(t, time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), reading.ReadingDate)
	assert.Equal(t, reading.ReadingDate, reading.CreatedAt)
}

func TestConvert_ZeroProfitReadingGetsFixedMeters(t *testing.T) {
	c := newTestConverter()

	doc := c.Convert(&LegacyBackup{
		Regions:  []LegacyRegion{{ID: "r1", Name: "Norte"}},
		Clients:  []LegacyClient{{ID: "c1", Name: "Bar", RegionID: "r1"}},
		Machines: []LegacyMachine{{ID: "m1", ClientID: "c1"}},
		Readings: []LegacyReading{{MachineID: "m1", Profit: 0}},
	})

	require.Len(t, doc.Readings, 1)
	reading := doc.Readings[0]
	assert.Equal(t, 1200.0, reading.CurrentIn)
	assert.Equal(t, 1000.0, reading.CurrentOut)
	assert.Equal(t, 0.0, reading.GrossValue)
}

func TestConvert_NegativeProfitShiftsOutMeter(t *testing.T) {
	c := newTestConverter()

	doc := c.Convert(&LegacyBackup{
		Regions:  []LegacyRegion{{ID: "r1", Name: "Norte"}},
		Clients:  []LegacyClient{{ID: "c1", Name: "Bar", RegionID: "r1"}},
		Machines: []LegacyMachine{{ID: "m1", ClientID: "c1", Multiplicity: 0.10}},
		Readings: []LegacyReading{{MachineID: "m1", Profit: -50, Multiplier: 0.10}},
	})

	require.Len(t, doc.Readings, 1)
	reading := doc.Readings[0]
	// difference = -500; the in meter stays at baseline, the out meter absorbs it
	assert.Equal(t, 1000.0, reading.CurrentIn)
	assert.Equal(t, 1500.0, reading.CurrentOut)
	assert.Equal(t, -50.0, reading.GrossValue)
}

func TestLegacyID_UnmarshalMixedTypes(t *testing.T) {
	var backup LegacyBackup
	raw := `{"clients": [{"id": 42, "name": "Numérico"}, {"id": "abc", "name": "Textual"}]}`
	require.NoError(t, json.Unmarshal([]byte(raw), &backup))

	require.Len(t, backup.Clients, 2)
	assert.Equal(t, legacyID("42"), backup.Clients[0].ID)
	assert.Equal(t, legacyID("abc"), backup.Clients[1].ID)
}
