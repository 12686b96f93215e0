package handler

import (
	"time"

	"github.com/salonsuite/backend/internal/application/crud"
	"github.com/salonsuite/backend/internal/domain/resource"
)

// CreateClientRequest is the create schema for clients
type CreateClientRequest struct {
	Name      string     `json:"name" binding:"required,min=1,max=200"`
	Phone     string     `json:"phone" binding:"max=50"`
	Email     string     `json:"email" binding:"omitempty,email,max=200"`
	BirthDate *time.Time `json:"birth_date"`
	Notes     string     `json:"notes" binding:"max=1000"`
}

// Record builds a new client from the validated input
func (r CreateClientRequest) Record() *resource.Client {
	return &resource.Client{
		Name:      r.Name,
		Phone:     r.Phone,
		Email:     r.Email,
		BirthDate: r.BirthDate,
		Notes:     r.Notes,
	}
}

// UpdateClientRequest is the update schema for clients
type UpdateClientRequest struct {
	Name      *string    `json:"name" binding:"omitempty,min=1,max=200"`
	Phone     *string    `json:"phone" binding:"omitempty,max=50"`
	Email     *string    `json:"email" binding:"omitempty,email,max=200"`
	BirthDate *time.Time `json:"birth_date"`
	Notes     *string    `json:"notes" binding:"omitempty,max=1000"`
}

// Patch returns the column-keyed changes the client actually sent
func (r UpdateClientRequest) Patch() map[string]any {
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
	if r.BirthDate != nil {
		patch["birth_date"] = *r.BirthDate
	}
	if r.Notes != nil {
		patch["notes"] = *r.Notes
	}
	return patch
}

// NewClientHandler creates the handler for the clients resource
func NewClientHandler(svc *crud.Service[resource.Client]) *ResourceHandler[resource.Client, CreateClientRequest, UpdateClientRequest] {
	return NewResourceHandler[resource.Client, CreateClientRequest, UpdateClientRequest]("clients", svc, nil)
}
