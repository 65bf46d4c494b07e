package models

import "time"

// Reading is one meter collection for a machine. The four monetary fields
// are derived once at creation and stored immutably; later changes to the
// machine's multiplier or commission policies never trigger a recomputation.
type Reading struct {
	ID                 string    `json:"id" db:"id"`
	MachineID          string    `json:"machine_id" db:"machine_id"`
	PreviousIn         float64   `json:"previous_in" db:"previous_in"`
	PreviousOut        float64   `json:"previous_out" db:"previous_out"`
	CurrentIn          float64   `json:"current_in" db:"current_in"`
	CurrentOut         float64   `json:"current_out" db:"current_out"`
	GrossValue         float64   `json:"gross_value" db:"gross_value"`
	ClientCommission   float64   `json:"client_commission" db:"client_commission"`
	OperatorCommission float64   `json:"operator_commission" db:"operator_commission"`
	NetValue           float64   `json:"net_value" db:"net_value"`
	ReadingDate        time.Time `json:"reading_date" db:"reading_date"`
	CreatedAt          time.Time `json:"created_at" db:"created_at"`
}
