package resource

import (
	"time"

	"github.com/shopspring/decimal"
)

// EntryKind distinguishes money coming in from money going out
type EntryKind string

// Financial entry kinds
const (
	EntryIncome  EntryKind = "income"
	EntryExpense EntryKind = "expense"
)

// FinancialEntry is a single income or expense record in the owner's ledger.
type FinancialEntry struct {
	OwnedRecord
	Kind        EntryKind       `gorm:"size:10;not null;index" json:"kind"`
	Description string          `gorm:"size:500;not null" json:"description"`
	Amount      decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"amount"`
	Category    string          `gorm:"size:100" json:"category"`
	EntryDate   time.Time       `gorm:"not null;index" json:"entry_date"`
}

// TableName returns the table name for GORM
func (FinancialEntry) TableName() string { return "financial_entries" }
