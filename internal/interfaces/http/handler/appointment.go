package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/salonsuite/backend/internal/application/crud"
	"github.com/salonsuite/backend/internal/domain/resource"
	"github.com/salonsuite/backend/internal/interfaces/http/dto"
)

// CreateAppointmentRequest is the create schema for appointments
type CreateAppointmentRequest struct {
	ClientID       string    `json:"client_id" binding:"required,uuid"`
	ServiceID      string    `json:"service_id" binding:"required,uuid"`
	ProfessionalID *string   `json:"professional_id" binding:"omitempty,uuid"`
	StartsAt       time.Time `json:"starts_at" binding:"required"`
	Status         string    `json:"status" binding:"omitempty,oneof=scheduled confirmed done cancelled"`
	Price          *float64  `json:"price" binding:"omitempty,gte=0"`
	Notes          string    `json:"notes" binding:"max=1000"`
}

// Record builds a new appointment from the validated input
func (r CreateAppointmentRequest) Record() *resource.Appointment {
	appointment := &resource.Appointment{
		ClientID:  uuid.MustParse(r.ClientID),
		ServiceID: uuid.MustParse(r.ServiceID),
		StartsAt:  r.StartsAt,
		Status:    resource.AppointmentScheduled,
		Notes:     r.Notes,
	}
	if r.ProfessionalID != nil {
		id := uuid.MustParse(*r.ProfessionalID)
		appointment.ProfessionalID = &id
	}
	if r.Status != "" {
		appointment.Status = resource.AppointmentStatus(r.Status)
	}
	if r.Price != nil {
		appointment.Price = decimal.NewFromFloat(*r.Price)
	}
	return appointment
}

// UpdateAppointmentRequest is the update schema for appointments
type UpdateAppointmentRequest struct {
	ClientID       *string    `json:"client_id" binding:"omitempty,uuid"`
	ServiceID      *string    `json:"service_id" binding:"omitempty,uuid"`
	ProfessionalID *string    `json:"professional_id" binding:"omitempty,uuid"`
	StartsAt       *time.Time `json:"starts_at"`
	Status         *string    `json:"status" binding:"omitempty,oneof=scheduled confirmed done cancelled"`
	Price          *float64   `json:"price" binding:"omitempty,gte=0"`
	Notes          *string    `json:"notes" binding:"omitempty,max=1000"`
}

// Patch returns the column-keyed changes the client actually sent
func (r UpdateAppointmentRequest) Patch() map[string]any {
	patch := make(map[string]any)
	if r.ClientID != nil {
		patch["client_id"] = uuid.MustParse(*r.ClientID)
	}
	if r.ServiceID != nil {
		patch["service_id"] = uuid.MustParse(*r.ServiceID)
	}
	if r.ProfessionalID != nil {
		patch["professional_id"] = uuid.MustParse(*r.ProfessionalID)
	}
	if r.StartsAt != nil {
		patch["starts_at"] = *r.StartsAt
	}
	if r.Status != nil {
		patch["status"] = *r.Status
	}
	if r.Price != nil {
		patch["price"] = decimal.NewFromFloat(*r.Price)
	}
	if r.Notes != nil {
		patch["notes"] = *r.Notes
	}
	return patch
}

// appointmentFilters narrows list queries by status when requested
func appointmentFilters(c *gin.Context) (map[string]any, *dto.FieldError) {
	status := c.Query("status")
	if status == "" {
		return nil, nil
	}
	switch resource.AppointmentStatus(status) {
	case resource.AppointmentScheduled, resource.AppointmentConfirmed,
		resource.AppointmentDone, resource.AppointmentCancelled:
		return map[string]any{"status": status}, nil
	default:
		return nil, &dto.FieldError{Field: "status", Message: "Must be one of: scheduled confirmed done cancelled"}
	}
}

// NewAppointmentHandler creates the handler for the appointments resource
func NewAppointmentHandler(svc *crud.Service[resource.Appointment]) *ResourceHandler[resource.Appointment, CreateAppointmentRequest, UpdateAppointmentRequest] {
	return NewResourceHandler[resource.Appointment, CreateAppointmentRequest, UpdateAppointmentRequest]("appointments", svc, appointmentFilters)
}
