// Package convert transforms backups exported by the legacy manager system
// into the current backup document schema, so historical data can be loaded
// through the regular backup import.
package convert

import (
	"encoding/json"
	"fmt"
	"time"

	"slotmanager_backend/internal/models"

	"github.com/google/uuid"
)

// legacyID tolerates the legacy export's mixed id types: older dumps carry
// numeric ids, newer ones strings.
type legacyID string

func (l *legacyID) UnmarshalJSON(data []byte) error {
	if len(data) == 0 {
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*l = legacyID(s)
		return nil
	}
	if string(data) == "null" {
		*l = ""
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*l = legacyID(n.String())
	return nil
}

// LegacyBackup is the old manager system's export format. Only the fields
// the conversion consumes are declared.
type LegacyBackup struct {
	Regions               []LegacyRegion               `json:"regions"`
	Clients               []LegacyClient               `json:"clients"`
	Machines              []LegacyMachine              `json:"machines"`
	Readings              []LegacyReading              `json:"readings"`
	ImpersonationProfiles []LegacyImpersonationProfile `json:"impersonation_profiles"`
	ManagerClients        []LegacyManagerClient        `json:"manager_clients"`
}

type LegacyRegion struct {
	ID          legacyID `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	CreatedAt   string   `json:"created_at"`
}

type LegacyClient struct {
	ID         legacyID `json:"id"`
	Name       string   `json:"name"`
	Commission float64  `json:"commission"`
	Contact    string   `json:"contact"`
	Email      string   `json:"email"`
	RegionID   legacyID `json:"region_id"`
	CreatedAt  string   `json:"created_at"`
}

type LegacyMachine struct {
	ID           legacyID `json:"id"`
	SerialNumber string   `json:"serial_number"`
	Model        string   `json:"model"`
	Multiplicity float64  `json:"multiplicity"`
	ClientID     legacyID `json:"client_id"`
	CreatedAt    string   `json:"created_at"`
}

type LegacyReading struct {
	MachineID               legacyID `json:"machine_id"`
	Profit                  float64  `json:"profit"`
	CommissionValue         float64  `json:"commission_value"`
	OperatorCommissionValue float64  `json:"operator_commission_value"`
	Multiplier              float64  `json:"multiplier"`
	CreatedAt               string   `json:"created_at"`
}

type LegacyImpersonationProfile struct {
	ID    legacyID `json:"id"`
	Name  string   `json:"name"`
	Phone string   `json:"phone"`
}

type LegacyManagerClient struct {
	ClientID               legacyID `json:"client_id"`
	ImpersonationProfileID legacyID `json:"impersonation_profile_id"`
	CommissionPercentage   float64  `json:"commission_percentage"`
	CreatedAt              string   `json:"created_at"`
}

// Converter rewrites a LegacyBackup into a models.BackupDocument. Every
// converted record gets a fresh id; cross-references are remapped through
// the id maps built as each entity kind is processed.
type Converter struct {
	newID func() string
	now   func() time.Time
}

func NewConverter() *Converter {
	return &Converter{
		newID: uuid.NewString,
		now:   time.Now,
	}
}

// Convert produces a backup document from a legacy export. Machines whose
// client cannot be resolved are dropped, as are readings whose machine was
// dropped. Gross and commission figures on readings are copied verbatim
// from the legacy record, never recomputed.
func (c *Converter) Convert(old *LegacyBackup) *models.BackupDocument {
	doc := &models.BackupDocument{
		Regions:   []models.Region{},
		Clients:   []models.Client{},
		Operators: []models.Operator{},
		Machines:  []models.Machine{},
		Readings:  []models.Reading{},
	}

	regionIDMap := make(map[legacyID]string)
	clientIDMap := make(map[legacyID]string)
	machineIDMap := make(map[legacyID]string)
	operatorIDMap := make(map[legacyID]string)
	firstRegionID := ""

	for _, region := range old.Regions {
		newID := c.newID()
		regionIDMap[region.ID] = newID
		if firstRegionID == "" {
			firstRegionID = newID
		}
		description := region.Description
		doc.Regions = append(doc.Regions, models.Region{
			ID:          newID,
			Name:        region.Name,
			Description: &description,
			CreatedAt:   c.parseLegacyTime(region.CreatedAt),
		})
	}

	legacyClientRegion := make(map[legacyID]legacyID)
	for _, client := range old.Clients {
		newID := c.newID()
		clientIDMap[client.ID] = newID
		legacyClientRegion[client.ID] = client.RegionID
		phone := client.Contact
		email := client.Email
		doc.Clients = append(doc.Clients, models.Client{
			ID:              newID,
			Name:            client.Name,
			CommissionType:  "percentage",
			CommissionValue: client.Commission,
			Phone:           &phone,
			Email:           &email,
			CreatedAt:       c.parseLegacyTime(client.CreatedAt),
		})
	}

	profiles := make(map[legacyID]LegacyImpersonationProfile)
	for _, profile := range old.ImpersonationProfiles {
		profiles[profile.ID] = profile
	}

	// The first manager-client link that references a profile defines that
	// operator's commission; later links with the same profile are ignored.
	for _, mc := range old.ManagerClients {
		profileID := mc.ImpersonationProfileID
		if profileID == "" {
			continue
		}
		if _, seen := operatorIDMap[profileID]; seen {
			continue
		}
		newID := c.newID()
		operatorIDMap[profileID] = newID

		profile := profiles[profileID]
		name := profile.Name
		if name == "" {
			name = fmt.Sprintf("Operador %d", len(doc.Operators)+1)
		}
		phone := profile.Phone
		doc.Operators = append(doc.Operators, models.Operator{
			ID:              newID,
			Name:            name,
			CommissionType:  "percentage",
			CommissionValue: mc.CommissionPercentage,
			Phone:           &phone,
			CreatedAt:       c.parseLegacyTime(mc.CreatedAt),
		})
	}

	if len(doc.Operators) == 0 {
		phone := ""
		doc.Operators = append(doc.Operators, models.Operator{
			ID:              c.newID(),
			Name:            "Sem Operador",
			CommissionType:  "percentage",
			CommissionValue: 0,
			Phone:           &phone,
			CreatedAt:       c.now(),
		})
	}

	clientOperators := make(map[legacyID]string)
	for _, mc := range old.ManagerClients {
		if mc.ClientID == "" || mc.ImpersonationProfileID == "" {
			continue
		}
		if operatorID, ok := operatorIDMap[mc.ImpersonationProfileID]; ok {
			clientOperators[mc.ClientID] = operatorID
		}
	}

	for _, machine := range old.Machines {
		newClientID, ok := clientIDMap[machine.ClientID]
		if !ok {
			continue
		}
		newID := c.newID()
		machineIDMap[machine.ID] = newID

		regionID := firstRegionID
		if legacyRegionID := legacyClientRegion[machine.ClientID]; legacyRegionID != "" {
			if mapped, ok := regionIDMap[legacyRegionID]; ok {
				regionID = mapped
			}
		}

		code := machine.SerialNumber
		if code == "" {
			code = string(machine.ID)
		}
		name := machine.Model
		if name == "" {
			name = fmt.Sprintf("Máquina %s", machine.ID)
		}
		multiplier := machine.Multiplicity
		if multiplier == 0 {
			multiplier = 0.01
		}

		var operatorID *string
		if mapped, ok := clientOperators[machine.ClientID]; ok {
			operatorID = &mapped
		}

		doc.Machines = append(doc.Machines, models.Machine{
			ID:         newID,
			Code:       code,
			Name:       name,
			Multiplier: multiplier,
			ClientID:   newClientID,
			RegionID:   regionID,
			OperatorID: operatorID,
			Active:     true,
			CreatedAt:  c.parseLegacyTime(machine.CreatedAt),
		})
	}

	for _, reading := range old.Readings {
		machineID, ok := machineIDMap[reading.MachineID]
		if !ok {
			continue
		}

		profit := reading.Profit
		clientCommission := abs(reading.CommissionValue)
		operatorCommission := abs(reading.OperatorCommissionValue)
		multiplier := reading.Multiplier
		if multiplier == 0 {
			multiplier = 0.01
		}

		// The legacy export only records profit, not raw counters, so the
		// meters are reconstructed as synthetic values that reproduce the
		// recorded profit under the reading's multiplier.
		previousIn := 1000.0
		previousOut := 800.0
		var currentIn, currentOut float64
		if multiplier > 0 && profit != 0 {
			difference := profit / multiplier
			currentIn = previousIn + max0(difference+200)
			currentOut = previousOut + max0(-difference+200)
		} else {
			currentIn = 1200.0
			currentOut = 1000.0
		}

		readingDate := c.parseLegacyTime(reading.CreatedAt)
		doc.Readings = append(doc.Readings, models.Reading{
			ID:                 c.newID(),
			MachineID:          machineID,
			PreviousIn:         previousIn,
			PreviousOut:        previousOut,
			CurrentIn:          currentIn,
			CurrentOut:         currentOut,
			GrossValue:         profit,
			ClientCommission:   clientCommission,
			OperatorCommission: operatorCommission,
			NetValue:           profit - clientCommission - operatorCommission,
			ReadingDate:        readingDate,
			CreatedAt:          readingDate,
		})
	}

	return doc
}

var legacyTimeLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05.999999",
	"2006-01-02T15:04:05",
	"2006-01-02",
}

func (c *Converter) parseLegacyTime(value string) time.Time {
	for _, layout := range legacyTimeLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t
		}
	}
	return c.now()
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

func max0(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}
