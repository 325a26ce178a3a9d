package models

import (
	"time"

	"github.com/gocql/gocql"
)

type Buyer struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// OrderLine captures the unit price as it was at checkout time, so orders
// stay auditable after catalog price changes.
type OrderLine struct {
	ProductID string `json:"productId"`
	Qty       int    `json:"qty"`
	UnitPrice int64  `json:"unitPrice"`
}

type Order struct {
	ID        gocql.UUID  `json:"id"`
	Items     []OrderLine `json:"items"`
	Total     int64       `json:"total"`
	Buyer     Buyer       `json:"user"`
	CreatedAt time.Time   `json:"created_at"`
}

// Receipt is never persisted, it only travels back to the caller.
type Receipt struct {
	Total     int64     `json:"total"`
	Timestamp time.Time `json:"timestamp"`
	Message   string    `json:"message"`
}
