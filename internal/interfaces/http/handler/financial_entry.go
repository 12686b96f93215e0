package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/salonsuite/backend/internal/application/crud"
	"github.com/salonsuite/backend/internal/domain/resource"
	"github.com/salonsuite/backend/internal/interfaces/http/dto"
)

// CreateFinancialEntryRequest is the create schema for financial entries
type CreateFinancialEntryRequest struct {
	Kind        string     `json:"kind" binding:"required,oneof=income expense"`
	Description string     `json:"description" binding:"required,min=1,max=500"`
	Amount      float64    `json:"amount" binding:"required,gt=0"`
	Category    string     `json:"category" binding:"max=100"`
	EntryDate   *time.Time `json:"entry_date"`
}

// Record builds a new financial entry from the validated input. A missing
// entry date defaults to now.
func (r CreateFinancialEntryRequest) Record() *resource.FinancialEntry {
	entry := &resource.FinancialEntry{
		Kind:        resource.EntryKind(r.Kind),
		Description: r.Description,
		Amount:      decimal.NewFromFloat(r.Amount),
		Category:    r.Category,
		EntryDate:   time.Now().UTC(),
	}
	if r.EntryDate != nil {
		entry.EntryDate = *r.EntryDate
	}
	return entry
}

// UpdateFinancialEntryRequest is the update schema for financial entries
type UpdateFinancialEntryRequest struct {
	Kind        *string    `json:"kind" binding:"omitempty,oneof=income expense"`
	Description *string    `json:"description" binding:"omitempty,min=1,max=500"`
	Amount      *float64   `json:"amount" binding:"omitempty,gt=0"`
	Category    *string    `json:"category" binding:"omitempty,max=100"`
	EntryDate   *time.Time `json:"entry_date"`
}

// Patch returns the column-keyed changes the client actually sent
func (r UpdateFinancialEntryRequest) Patch() map[string]any {
	patch := make(map[string]any)
	if r.Kind != nil {
		patch["kind"] = *r.Kind
	}
	if r.Description != nil {
		patch["description"] = *r.Description
	}
	if r.Amount != nil {
		patch["amount"] = decimal.NewFromFloat(*r.Amount)
	}
	if r.Category != nil {
		patch["category"] = *r.Category
	}
	if r.EntryDate != nil {
		patch["entry_date"] = *r.EntryDate
	}
	return patch
}

// financialEntryFilters narrows list queries by kind when requested
func financialEntryFilters(c *gin.Context) (map[string]any, *dto.FieldError) {
	kind := c.Query("kind")
	if kind == "" {
		return nil, nil
	}
	switch resource.EntryKind(kind) {
	case resource.EntryIncome, resource.EntryExpense:
		return map[string]any{"kind": kind}, nil
	default:
		return nil, &dto.FieldError{Field: "kind", Message: "Must be one of: income expense"}
	}
}

// NewFinancialEntryHandler creates the handler for the financial entries resource
func NewFinancialEntryHandler(svc *crud.Service[resource.FinancialEntry]) *ResourceHandler[resource.FinancialEntry, CreateFinancialEntryRequest, UpdateFinancialEntryRequest] {
	return NewResourceHandler[resource.FinancialEntry, CreateFinancialEntryRequest, UpdateFinancialEntryRequest]("financial-entries", svc, financialEntryFilters)
}
