package handler

import (
	"github.com/shopspring/decimal"

	"github.com/salonsuite/backend/internal/application/crud"
	"github.com/salonsuite/backend/internal/domain/resource"
)

// CreateServiceRequest is the create schema for services
type CreateServiceRequest struct {
	Name            string  `json:"name" binding:"required,min=1,max=200"`
	Description     string  `json:"description" binding:"max=500"`
	Price           float64 `json:"price" binding:"required,gt=0"`
	DurationMinutes int     `json:"duration_minutes" binding:"required,gt=0"`
}

// Record builds a new service from the validated input
func (r CreateServiceRequest) Record() *resource.Service {
	return &resource.Service{
		Name:            r.Name,
		Description:     r.Description,
		Price:           decimal.NewFromFloat(r.Price),
		DurationMinutes: r.DurationMinutes,
	}
}

// UpdateServiceRequest is the update schema for services; every field is
// optional and owner_id is not part of the schema
type UpdateServiceRequest struct {
	Name            *string  `json:"name" binding:"omitempty,min=1,max=200"`
	Description     *string  `json:"description" binding:"omitempty,max=500"`
	Price           *float64 `json:"price" binding:"omitempty,gt=0"`
	DurationMinutes *int     `json:"duration_minutes" binding:"omitempty,gt=0"`
}

// Patch returns the column-keyed changes the client actually sent
func (r UpdateServiceRequest) Patch() map[string]any {
	patch := make(map[string]any)
	if r.Name != nil {
		patch["name"] = *r.Name
	}
	if r.Description != nil {
		patch["description"] = *r.Description
	}
	if r.Price != nil {
		patch["price"] = decimal.NewFromFloat(*r.Price)
	}
	if r.DurationMinutes != nil {
		patch["duration_minutes"] = *r.DurationMinutes
	}
	return patch
}

// NewServiceHandler creates the handler for the services resource
func NewServiceHandler(svc *crud.Service[resource.Service]) *ResourceHandler[resource.Service, CreateServiceRequest, UpdateServiceRequest] {
	return NewResourceHandler[resource.Service, CreateServiceRequest, UpdateServiceRequest]("services", svc, nil)
}
