package handler

import (
	"github.com/shopspring/decimal"

	"github.com/salonsuite/backend/internal/application/crud"
	"github.com/salonsuite/backend/internal/domain/resource"
)

// CreateProfessionalRequest is the create schema for professionals
type CreateProfessionalRequest struct {
	Name              string   `json:"name" binding:"required,min=1,max=200"`
	Phone             string   `json:"phone" binding:"max=50"`
	Email             string   `json:"email" binding:"omitempty,email,max=200"`
	Specialty         string   `json:"specialty" binding:"max=200"`
	CommissionPercent *float64 `json:"commission_percent" binding:"omitempty,gte=0,lte=100"`
}

// Record builds a new professional from the validated input
func (r CreateProfessionalRequest) Record() *resource.Professional {
	professional := &resource.Professional{
		Name:      r.Name,
		Phone:     r.Phone,
		Email:     r.Email,
		Specialty: r.Specialty,
	}
	if r.CommissionPercent != nil {
		professional.CommissionPercent = decimal.NewFromFloat(*r.CommissionPercent)
	}
	return professional
}

// UpdateProfessionalRequest is the update schema for professionals
type UpdateProfessionalRequest struct {
	Name              *string  `json:"name" binding:"omitempty,min=1,max=200"`
	Phone             *string  `json:"phone" binding:"omitempty,max=50"`
	Email             *string  `json:"email" binding:"omitempty,email,max=200"`
	Specialty         *string  `json:"specialty" binding:"omitempty,max=200"`
	CommissionPercent *float64 `json:"commission_percent" binding:"omitempty,gte=0,lte=100"`
}

// Patch returns the column-keyed changes the client actually sent
func (r UpdateProfessionalRequest) Patch() map[string]any {
	patch := make(map[string]any)
	if r.Name != nil {
		patch["name"] = *r.Name
	}
	if r.Phone != nil {
		patch["phone"] = *r.Phone
	}
	if r.Email != nil {
		patch["email"] = *r.Email
	}
	if r.Specialty != nil {
		patch["specialty"] = *r.Specialty
	}
	if r.CommissionPercent != nil {
		patch["commission_percent"] = decimal.NewFromFloat(*r.CommissionPercent)
	}
	return patch
}

// NewProfessionalHandler creates the handler for the professionals resource
func NewProfessionalHandler(svc *crud.Service[resource.Professional]) *ResourceHandler[resource.Professional, CreateProfessionalRequest, UpdateProfessionalRequest] {
	return NewResourceHandler[resource.Professional, CreateProfessionalRequest, UpdateProfessionalRequest]("professionals", svc, nil)
}
