package resource

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AppointmentStatus represents the lifecycle state of an appointment
type AppointmentStatus string

// Appointment statuses
const (
	AppointmentScheduled AppointmentStatus = "scheduled"
	AppointmentConfirmed AppointmentStatus = "confirmed"
	AppointmentDone      AppointmentStatus = "done"
	AppointmentCancelled AppointmentStatus = "cancelled"
)

// Appointment books a client with a service at a given time, optionally
// assigned to a professional. The client/service/professional references are
// opaque ids within the same owner's data; no cross-table check is performed.
type Appointment struct {
	OwnedRecord
	ClientID       uuid.UUID         `gorm:"type:uuid;not null;index" json:"client_id"`
	ServiceID      uuid.UUID         `gorm:"type:uuid;not null" json:"service_id"`
	ProfessionalID *uuid.UUID        `gorm:"type:uuid" json:"professional_id"`
	StartsAt       time.Time         `gorm:"not null;index" json:"starts_at"`
	Status         AppointmentStatus `gorm:"size:20;not null;default:scheduled" json:"status"`
	Price          decimal.Decimal   `gorm:"type:decimal(15,2)" json:"price"`
	Notes          string            `gorm:"size:1000" json:"notes"`
}

// TableName returns the table name for GORM
func (Appointment) TableName() string { return "appointments" }
