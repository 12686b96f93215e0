package resource

import "time"

// Client is a customer of the account owner's business. Clients do not log
// in themselves; they only exist inside the owner's book.
type Client struct {
	OwnedRecord
	Name      string     `gorm:"size:200;not null" json:"name"`
	Phone     string     `gorm:"size:50" json:"phone"`
	Email     string     `gorm:"size:200" json:"email"`
	BirthDate *time.Time `json:"birth_date"`
	Notes     string     `gorm:"size:1000" json:"notes"`
}

// TableName returns the table name for GORM
func (Client) TableName() string { return "clients" }
