package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/hapkiduki/shipping-console/internal/application/dto"
	"github.com/hapkiduki/shipping-console/internal/application/port"
	"github.com/hapkiduki/shipping-console/internal/application/service"
	"github.com/hapkiduki/shipping-console/internal/domain/entity"
	"github.com/hapkiduki/shipping-console/pkg/validation"
)

// CustomerHandler serves the customer and contract endpoints.
type CustomerHandler struct {
	customers *service.CustomerService
	validator *validation.Validator
	logger    port.Logger
}

// NewCustomerHandler creates a CustomerHandler.
func NewCustomerHandler(customers *service.CustomerService, validator *validation.Validator, logger port.Logger) *CustomerHandler {
	return &CustomerHandler{customers: customers, validator: validator, logger: logger}
}

// Routes mounts the handler under /customers.
func (h *CustomerHandler) Routes(r chi.Router) {
	r.Get("/", h.List)
	r.Post("/", h.Create)
	r.Route("/{customerID}", func(r chi.Router) {
		r.Get("/", h.Get)
		r.Patch("/", h.Update)
		r.Post("/contracts", h.AddContract)
		r.Patch("/contracts/{contractID}", h.UpdateContract)
	})
}

// List handles GET /customers.
func (h *CustomerHandler) List(w http.ResponseWriter, r *http.Request) {
	customers, err := h.customers.List(r.Context())
	if err != nil {
		handleError(w, r, h.logger, err)
		return
	}
	if customers == nil {
		customers = []*entity.Customer{}
	}
	respond(w, r, http.StatusOK, customers)
}

// Get handles GET /customers/{customerID}.
func (h *CustomerHandler) Get(w http.ResponseWriter, r *http.Request) {
	customer, err := h.customers.Get(r.Context(), chi.URLParam(r, "customerID"))
	if err != nil {
		handleError(w, r, h.logger, err)
		return
	}
	respond(w, r, http.StatusOK, customer)
}

// Create handles POST /customers.
func (h *CustomerHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateCustomerRequest
	if !bind(w, r, h.validator, &req) {
		return
	}

	customer, err := h.customers.Create(r.Context(), req.ToInput())
	if err != nil {
		handleError(w, r, h.logger, err)
		return
	}
	respond(w, r, http.StatusCreated, customer)
}

// Update handles PATCH /customers/{customerID}.
func (h *CustomerHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req dto.UpdateCustomerRequest
	if !bind(w, r, h.validator, &req) {
		return
	}

	customer, err := h.customers.Update(r.Context(), chi.URLParam(r, "customerID"), req.ToCustomerUpdate())
	if err != nil {
		handleError(w, r, h.logger, err)
		return
	}
	respond(w, r, http.StatusOK, customer)
}

// AddContract handles POST /customers/{customerID}/contracts.
func (h *CustomerHandler) AddContract(w http.ResponseWriter, r *http.Request) {
	var req dto.AddContractRequest
	if !bind(w, r, h.validator, &req) {
		return
	}

	contract, err := h.customers.AddContract(r.Context(), chi.URLParam(r, "customerID"), entity.ContractServiceType(req.ServiceType))
	if err != nil {
		handleError(w, r, h.logger, err)
		return
	}
	respond(w, r, http.StatusCreated, contract)
}

// UpdateContract handles PATCH /customers/{customerID}/contracts/{contractID}.
func (h *CustomerHandler) UpdateContract(w http.ResponseWriter, r *http.Request) {
	var req dto.UpdateContractRequest
	if !bind(w, r, h.validator, &req) {
		return
	}

	contract, err := h.customers.UpdateContract(r.Context(),
		chi.URLParam(r, "customerID"),
		chi.URLParam(r, "contractID"),
		req.ToContractUpdate(),
	)
	if err != nil {
		handleError(w, r, h.logger, err)
		return
	}
	respond(w, r, http.StatusOK, contract)
}

// Countries handles GET /countries.
func (h *CustomerHandler) Countries(w http.ResponseWriter, r *http.Request) {
	countries, err := h.customers.Countries(r.Context())
	if err != nil {
		handleError(w, r, h.logger, err)
		return
	}
	respond(w, r, http.StatusOK, countries)
}
