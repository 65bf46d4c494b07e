package models

import (
	"time"

	"slotmanager_backend/internal/commission"
)

// Client is a venue owner that hosts machines and receives a commission
// on their gross revenue.
type Client struct {
	ID              string    `json:"id" db:"id"`
	Name            string    `json:"name" db:"name"`
	CommissionType  string    `json:"commission_type" db:"commission_type"`
	CommissionValue float64   `json:"commission_value" db:"commission_value"`
	Phone           *string   `json:"phone,omitempty" db:"phone"`
	Email           *string   `json:"email,omitempty" db:"email"`
	CreatedAt       time.Time `json:"created_at" db:"created_at"`
}

// CommissionPolicy returns the client's commission terms as a calculator policy.
func (c *Client) CommissionPolicy() commission.Policy {
	return commission.Policy{
		Type:  commission.PolicyType(c.CommissionType),
		Value: c.CommissionValue,
	}
}
