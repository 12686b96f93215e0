package resource

import "github.com/shopspring/decimal"

// Service is a bookable service offered by the account owner, e.g. a haircut.
type Service struct {
	OwnedRecord
	Name            string          `gorm:"size:200;not null" json:"name"`
	Description     string          `gorm:"size:500" json:"description"`
	Price           decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"price"`
	DurationMinutes int             `gorm:"not null" json:"duration_minutes"`
}

// TableName returns the table name for GORM
func (Service) TableName() string { return "services" }
