package resource

import "github.com/shopspring/decimal"

// Product is a sellable item tracked by the account owner.
type Product struct {
	OwnedRecord
	Name          string          `gorm:"size:200;not null" json:"name"`
	Description   string          `gorm:"size:500" json:"description"`
	Price         decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"price"`
	Cost          decimal.Decimal `gorm:"type:decimal(15,2)" json:"cost"`
	StockQuantity int             `gorm:"not null;default:0" json:"stock_quantity"`
}

// TableName returns the table name for GORM
func (Product) TableName() string { return "products" }
