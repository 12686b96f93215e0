package client

import (
	"time"

	"github.com/shopspring/decimal"
)

// Record carries the fields common to every resource
type Record struct {
	ID        string    `json:"id"`
	OwnerID   string    `json:"owner_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Service is a bookable service
type Service struct {
	Record
	Name            string          `json:"name"`
	Description     string          `json:"description"`
	Price           decimal.Decimal `json:"price"`
	DurationMinutes int             `json:"duration_minutes"`
}

// Product is a sellable item
type Product struct {
	Record
	Name          string          `json:"name"`
	Description   string          `json:"description"`
	Price         decimal.Decimal `json:"price"`
	Cost          decimal.Decimal `json:"cost"`
	StockQuantity int             `json:"stock_quantity"`
}

// Customer is a client of the account owner's business. The wire resource
// is named "clients"; the Go type avoids colliding with the SDK Client.
type Customer struct {
	Record
	Name      string     `json:"name"`
	Phone     string     `json:"phone"`
	Email     string     `json:"email"`
	BirthDate *time.Time `json:"birth_date"`
	Notes     string     `json:"notes"`
}

// Professional is a staff member
type Professional struct {
	Record
	Name              string          `json:"name"`
	Phone             string          `json:"phone"`
	Email             string          `json:"email"`
	Specialty         string          `json:"specialty"`
	CommissionPercent decimal.Decimal `json:"commission_percent"`
}

// Appointment books a client with a service at a given time
type Appointment struct {
	Record
	ClientID       string          `json:"client_id"`
	ServiceID      string          `json:"service_id"`
	ProfessionalID *string         `json:"professional_id"`
	StartsAt       time.Time       `json:"starts_at"`
	Status         string          `json:"status"`
	Price          decimal.Decimal `json:"price"`
	Notes          string          `json:"notes"`
}

// FinancialEntry is one income or expense record
type FinancialEntry struct {
	Record
	Kind        string          `json:"kind"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Category    string          `json:"category"`
	EntryDate   time.Time       `json:"entry_date"`
}
