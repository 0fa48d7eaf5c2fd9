package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/hapkiduki/shipping-console/internal/application/dto"
	"github.com/hapkiduki/shipping-console/internal/application/port"
	"github.com/hapkiduki/shipping-console/internal/application/service"
	"github.com/hapkiduki/shipping-console/internal/domain/entity"
	"github.com/hapkiduki/shipping-console/pkg/validation"
)

// BusinessUnitHandler serves the business unit endpoints.
type BusinessUnitHandler struct {
	units     *service.BusinessUnitService
	validator *validation.Validator
	logger    port.Logger
}

// NewBusinessUnitHandler creates a BusinessUnitHandler.
func NewBusinessUnitHandler(units *service.BusinessUnitService, validator *validation.Validator, logger port.Logger) *BusinessUnitHandler {
	return &BusinessUnitHandler{units: units, validator: validator, logger: logger}
}

// Routes mounts the handler under /business-units.
func (h *BusinessUnitHandler) Routes(r chi.Router) {
	r.Get("/", h.Search)
	r.Post("/", h.Create)
	r.Get("/types", h.Types)
	r.Get("/statuses", h.Statuses)
	r.Get("/{code}", h.Get)
	r.Delete("/{code}", h.Delete)
}

// Search handles GET /business-units.
func (h *BusinessUnitHandler) Search(w http.ResponseWriter, r *http.Request) {
	filter, err := dto.BusinessUnitFilterFromQuery(r.URL.Query())
	if err != nil {
		handleError(w, r, h.logger, err)
		return
	}

	page, err := h.units.Search(r.Context(), filter)
	if err != nil {
		handleError(w, r, h.logger, err)
		return
	}
	respond(w, r, http.StatusOK, dto.NewPaginateResponse(page.Units, page.Total, page.Page, page.PageSize))
}

// Get handles GET /business-units/{code}.
func (h *BusinessUnitHandler) Get(w http.ResponseWriter, r *http.Request) {
	unit, err := h.units.Get(r.Context(), chi.URLParam(r, "code"))
	if err != nil {
		handleError(w, r, h.logger, err)
		return
	}
	respond(w, r, http.StatusOK, unit)
}

// Create handles POST /business-units.
func (h *BusinessUnitHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateBusinessUnitRequest
	if !bind(w, r, h.validator, &req) {
		return
	}

	unit, err := h.units.Create(r.Context(), req.ToInput())
	if err != nil {
		handleError(w, r, h.logger, err)
		return
	}
	respond(w, r, http.StatusCreated, unit)
}

// Delete handles DELETE /business-units/{code}.
func (h *BusinessUnitHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.units.Delete(r.Context(), chi.URLParam(r, "code")); err != nil {
		handleError(w, r, h.logger, err)
		return
	}
	respond(w, r, http.StatusOK, dto.MessageResponse{Message: "Business unit deleted"})
}

// Types handles GET /business-units/types.
func (h *BusinessUnitHandler) Types(w http.ResponseWriter, r *http.Request) {
	h.catalogue(w, r, h.units.Types)
}

// Statuses handles GET /business-units/statuses.
func (h *BusinessUnitHandler) Statuses(w http.ResponseWriter, r *http.Request) {
	h.catalogue(w, r, h.units.Statuses)
}

func (h *BusinessUnitHandler) catalogue(w http.ResponseWriter, r *http.Request, load func(ctx context.Context) ([]entity.CatalogEntry, error)) {
	entries, err := load(r.Context())
	if err != nil {
		handleError(w, r, h.logger, err)
		return
	}
	respond(w, r, http.StatusOK, entries)
}
