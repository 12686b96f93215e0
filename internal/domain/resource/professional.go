package resource

import "github.com/shopspring/decimal"

// Professional is a staff member who performs services for clients.
type Professional struct {
	OwnedRecord
	Name              string          `gorm:"size:200;not null" json:"name"`
	Phone             string          `gorm:"size:50" json:"phone"`
	Email             string          `gorm:"size:200" json:"email"`
	Specialty         string          `gorm:"size:200" json:"specialty"`
	CommissionPercent decimal.Decimal `gorm:"type:decimal(5,2)" json:"commission_percent"`
}

// TableName returns the table name for GORM
func (Professional) TableName() string { return "professionals" }
