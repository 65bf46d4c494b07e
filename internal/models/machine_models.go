package models

import "time"

// Machine is a slot machine placed with a client in a region. The multiplier
// is the coin denomination applied to meter deltas (e.g. 0.01, 0.10, 1.00).
type Machine struct {
	ID         string    `json:"id" db:"id"`
	Code       string    `json:"code" db:"code"`
	Name       string    `json:"name" db:"name"`
	Multiplier float64   `json:"multiplier" db:"multiplier"`
	ClientID   string    `json:"client_id" db:"client_id"`
	RegionID   string    `json:"region_id" db:"region_id"`
	OperatorID *string   `json:"operator_id,omitempty" db:"operator_id"`
	Active     bool      `json:"active" db:"active"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
}
