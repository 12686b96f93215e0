package handler

import (
	"github.com/shopspring/decimal"

	"github.com/salonsuite/backend/internal/application/crud"
	"github.com/salonsuite/backend/internal/domain/resource"
)

// CreateProductRequest is the create schema for products
type CreateProductRequest struct {
	Name          string   `json:"name" binding:"required,min=1,max=200"`
	Description   string   `json:"description" binding:"max=500"`
	Price         float64  `json:"price" binding:"required,gt=0"`
	Cost          *float64 `json:"cost" binding:"omitempty,gte=0"`
	StockQuantity *int     `json:"stock_quantity" binding:"omitempty,gte=0"`
}

// Record builds a new product from the validated input
func (r CreateProductRequest) Record() *resource.Product {
	product := &resource.Product{
		Name:        r.Name,
		Description: r.Description,
		Price:       decimal.NewFromFloat(r.Price),
	}
	if r.Cost != nil {
		product.Cost = decimal.NewFromFloat(*r.Cost)
	}
	if r.StockQuantity != nil {
		product.StockQuantity = *r.StockQuantity
	}
	return product
}

// UpdateProductRequest is the update schema for products
type UpdateProductRequest struct {
	Name          *string  `json:"name" binding:"omitempty,min=1,max=200"`
	Description   *string  `json:"description" binding:"omitempty,max=500"`
	Price         *float64 `json:"price" binding:"omitempty,gt=0"`
	Cost          *float64 `json:"cost" binding:"omitempty,gte=0"`
	StockQuantity *int     `json:"stock_quantity" binding:"omitempty,gte=0"`
}

// Patch returns the column-keyed changes the client actually sent
func (r UpdateProductRequest) Patch() map[string]any {
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
	if r.Cost != nil {
		patch["cost"] = decimal.NewFromFloat(*r.Cost)
	}
	if r.StockQuantity != nil {
		patch["stock_quantity"] = *r.StockQuantity
	}
	return patch
}

// NewProductHandler creates the handler for the products resource
func NewProductHandler(svc *crud.Service[resource.Product]) *ResourceHandler[resource.Product, CreateProductRequest, UpdateProductRequest] {
	return NewResourceHandler[resource.Product, CreateProductRequest, UpdateProductRequest]("products", svc, nil)
}
