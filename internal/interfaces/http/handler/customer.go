package handler

import (
	"github.com/gin-gonic/gin"

	customerapp "github.com/crm/backend/internal/application/customer"
	"github.com/crm/backend/internal/interfaces/http/dto"
	"github.com/crm/backend/internal/interfaces/http/router"
)

// CustomerHandler handles customer-related API endpoints
type CustomerHandler struct {
	BaseHandler
	customerService   *customerapp.CustomerService
	enrichmentService *customerapp.EnrichmentService
}

// NewCustomerHandler creates a new CustomerHandler
func NewCustomerHandler(customerService *customerapp.CustomerService, enrichmentService *customerapp.EnrichmentService) *CustomerHandler {
	return &CustomerHandler{
		customerService:   customerService,
		enrichmentService: enrichmentService,
	}
}

// RegisterRoutes implements router.RouteRegistrar
func (h *CustomerHandler) RegisterRoutes(rg *gin.RouterGroup) {
	router.NewDomainGroup("customer", "/customers").
		GET("", h.List).
		POST("", h.Create).
		GET("/:id", h.Get).
		PUT("/:id", h.Update).
		DELETE("/:id", h.Delete).
		GET("/:id/products", h.GetWithProducts).
		RegisterRoutes(rg)
}

// List returns all customers with their product references
func (h *CustomerHandler) List(c *gin.Context) {
	customers, err := h.customerService.List(c.Request.Context())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, customers)
}

// Create stores a new customer
func (h *CustomerHandler) Create(c *gin.Context) {
	var req CustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	created, err := h.customerService.Create(c.Request.Context(), req.ToPayload())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Created(c, created)
}

// Get returns one customer by id, product references unenriched
func (h *CustomerHandler) Get(c *gin.Context) {
	var uri dto.IDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		h.BadRequest(c, "invalid customer id")
		return
	}

	found, err := h.customerService.GetByID(c.Request.Context(), uri.ID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, found)
}

// Update replaces every mutable field of a stored customer, product
// references included
func (h *CustomerHandler) Update(c *gin.Context) {
	var uri dto.IDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		h.BadRequest(c, "invalid customer id")
		return
	}

	var req CustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	updated, err := h.customerService.Update(c.Request.Context(), uri.ID, req.ToPayload())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, updated)
}

// Delete removes a customer and its product references
func (h *CustomerHandler) Delete(c *gin.Context) {
	var uri dto.IDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		h.BadRequest(c, "invalid customer id")
		return
	}

	deleted, err := h.customerService.Delete(c.Request.Context(), uri.ID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	if !deleted {
		h.NotFound(c, "customer not found")
		return
	}
	h.NoContent(c)
}

// GetWithProducts returns one customer with product references enriched
// against the remote catalog
func (h *CustomerHandler) GetWithProducts(c *gin.Context) {
	var uri dto.IDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		h.BadRequest(c, "invalid customer id")
		return
	}

	enriched, err := h.enrichmentService.Enrich(c.Request.Context(), uri.ID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, enriched)
}
