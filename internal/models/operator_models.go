package models

import (
	"time"

	"slotmanager_backend/internal/commission"
)

// Operator is a field agent who services machines and optionally takes a
// cut of their revenue.
type Operator struct {
	ID              string    `json:"id" db:"id"`
	Name            string    `json:"name" db:"name"`
	CommissionType  string    `json:"commission_type" db:"commission_type"`
	CommissionValue float64   `json:"commission_value" db:"commission_value"`
	Phone           *string   `json:"phone,omitempty" db:"phone"`
	CreatedAt       time.Time `json:"created_at" db:"created_at"`
}

// CommissionPolicy returns the operator's commission terms as a calculator policy.
func (o *Operator) CommissionPolicy() commission.Policy {
	return commission.Policy{
		Type:  commission.PolicyType(o.CommissionType),
		Value: o.CommissionValue,
	}
}
