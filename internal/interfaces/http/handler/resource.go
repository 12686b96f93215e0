package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/salonsuite/backend/internal/application/crud"
	"github.com/salonsuite/backend/internal/interfaces/http/dto"
	"github.com/salonsuite/backend/internal/interfaces/http/middleware"
)

// RecordRequest is a create-schema DTO that yields a new record. Binding
// into the typed struct drops unknown fields, so a client-supplied owner_id
// never survives this boundary.
type RecordRequest[T any] interface {
	Record() *T
}

// PatchRequest is an update-schema DTO that yields a column-keyed patch of
// only the fields the client actually sent.
type PatchRequest interface {
	Patch() map[string]any
}

// FilterFunc extracts validated list filters from the request. A non-nil
// field error rejects the request with a 422 before any store access.
type FilterFunc func(c *gin.Context) (map[string]any, *dto.FieldError)

// ResourceHandler is the HTTP face of the CRUD engine, instantiated once per
// resource type with its create and update schemas.
type ResourceHandler[T any, C RecordRequest[T], U PatchRequest] struct {
	BaseHandler
	name    string
	svc     *crud.Service[T]
	filters FilterFunc
}

// NewResourceHandler creates a handler for one resource type. name is the
// route segment, e.g. "services". filters may be nil.
func NewResourceHandler[T any, C RecordRequest[T], U PatchRequest](
	name string,
	svc *crud.Service[T],
	filters FilterFunc,
) *ResourceHandler[T, C, U] {
	return &ResourceHandler[T, C, U]{name: name, svc: svc, filters: filters}
}

// RegisterRoutes registers the five CRUD routes under the resource segment
func (h *ResourceHandler[T, C, U]) RegisterRoutes(rg *gin.RouterGroup) {
	g := rg.Group("/" + h.name)
	g.GET("", h.List)
	g.POST("", h.Create)
	g.GET("/:id", h.Get)
	g.PUT("/:id", h.Update)
	g.DELETE("/:id", h.Delete)
}

// List returns all of the principal's records, ordered per resource config
func (h *ResourceHandler[T, C, U]) List(c *gin.Context) {
	principal, err := middleware.CurrentPrincipal(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var filters map[string]any
	if h.filters != nil {
		var fieldErr *dto.FieldError
		filters, fieldErr = h.filters(c)
		if fieldErr != nil {
			h.ValidationFailed(c, []dto.FieldError{*fieldErr})
			return
		}
	}

	records, err := h.svc.List(c.Request.Context(), principal, filters)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, records)
}

// Get returns a single record by id
func (h *ResourceHandler[T, C, U]) Get(c *gin.Context) {
	principal, err := middleware.CurrentPrincipal(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}
	id, ok := h.recordID(c)
	if !ok {
		return
	}

	record, err := h.svc.Get(c.Request.Context(), principal, id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, record)
}

// Create validates the create schema and inserts a new owned record. On a
// validation failure the store is never touched.
func (h *ResourceHandler[T, C, U]) Create(c *gin.Context) {
	principal, err := middleware.CurrentPrincipal(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req C
	if err := c.ShouldBindJSON(&req); err != nil {
		if fieldErrors, ok := FormatValidationErrors(err); ok {
			h.ValidationFailed(c, fieldErrors)
			return
		}
		h.BadRequest(c, "Request body could not be parsed")
		return
	}

	record, err := h.svc.Create(c.Request.Context(), principal, req.Record())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, record)
}

// Update validates the update schema and applies the patch to the
// principal's record
func (h *ResourceHandler[T, C, U]) Update(c *gin.Context) {
	principal, err := middleware.CurrentPrincipal(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}
	id, ok := h.recordID(c)
	if !ok {
		return
	}

	var req U
	if err := c.ShouldBindJSON(&req); err != nil {
		if fieldErrors, ok := FormatValidationErrors(err); ok {
			h.ValidationFailed(c, fieldErrors)
			return
		}
		h.BadRequest(c, "Request body could not be parsed")
		return
	}

	record, err := h.svc.Update(c.Request.Context(), principal, id, req.Patch())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, record)
}

// Delete removes the principal's record and confirms with the id only
func (h *ResourceHandler[T, C, U]) Delete(c *gin.Context) {
	principal, err := middleware.CurrentPrincipal(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}
	id, ok := h.recordID(c)
	if !ok {
		return
	}

	if err := h.svc.Delete(c.Request.Context(), principal, id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.Deleted(c, id.String())
}

// recordID parses the id path parameter. A malformed id is a fatal request
// error, not a lookup miss.
func (h *ResourceHandler[T, C, U]) recordID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid resource ID")
		return uuid.Nil, false
	}
	return id, true
}
