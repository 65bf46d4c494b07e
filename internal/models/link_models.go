package models

import "time"

// ClientOperatorLink associates an operator with a client. At most one link
// may exist per (client, operator) pair; the unique index on the table is the
// real guard against concurrent duplicate creation.
type ClientOperatorLink struct {
	ID         string    `json:"id" db:"id"`
	ClientID   string    `json:"client_id" db:"client_id"`
	OperatorID string    `json:"operator_id" db:"operator_id"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
}
