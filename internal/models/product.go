package models

import (
	"time"

	"github.com/gocql/gocql"
)

// Product prices are stored in the smallest currency unit (cents).
type Product struct {
	ID        gocql.UUID `json:"id"`
	Name      string     `json:"name"`
	Price     int64      `json:"price"`
	Image     string     `json:"image"`
	CreatedAt *time.Time `json:"created_at,omitempty"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}
