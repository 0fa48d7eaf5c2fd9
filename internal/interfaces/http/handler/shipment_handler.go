package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/hapkiduki/shipping-console/internal/application/dto"
	"github.com/hapkiduki/shipping-console/internal/application/port"
	"github.com/hapkiduki/shipping-console/internal/application/service"
	"github.com/hapkiduki/shipping-console/internal/domain/repository"
	"github.com/hapkiduki/shipping-console/internal/interfaces/http/middleware"
	"github.com/hapkiduki/shipping-console/pkg/validation"
)

// ShipmentHandler serves the shipment draft endpoints.
type ShipmentHandler struct {
	drafts    *service.DraftService
	validator *validation.Validator
	logger    port.Logger
}

// NewShipmentHandler creates a ShipmentHandler.
func NewShipmentHandler(drafts *service.DraftService, validator *validation.Validator, logger port.Logger) *ShipmentHandler {
	return &ShipmentHandler{drafts: drafts, validator: validator, logger: logger}
}

// Routes mounts the handler under /shipments.
func (h *ShipmentHandler) Routes(r chi.Router) {
	r.Route("/drafts", func(r chi.Router) {
		r.Post("/", h.StartDraft)
		r.Route("/{draftID}", func(r chi.Router) {
			r.Get("/", h.GetDraft)
			r.Patch("/", h.UpdateDraft)
			r.Delete("/", h.CancelDraft)
			r.Get("/weights", h.Weights)
			r.Post("/pieces", h.AddPiece)
			r.Patch("/pieces/{pieceID}", h.UpdatePiece)
			r.Delete("/pieces/{pieceID}", h.RemovePiece)
			r.Post("/submit", h.Submit)
		})
	})
}

// StartDraft handles POST /shipments/drafts.
func (h *ShipmentHandler) StartDraft(w http.ResponseWriter, r *http.Request) {
	draft, err := h.drafts.StartDraft(r.Context(), owner(r))
	if err != nil {
		handleError(w, r, h.logger, err)
		return
	}
	respond(w, r, http.StatusCreated, dto.ToDraftResponse(draft))
}

// GetDraft handles GET /shipments/drafts/{draftID}.
func (h *ShipmentHandler) GetDraft(w http.ResponseWriter, r *http.Request) {
	id, ok := h.draftID(w, r)
	if !ok {
		return
	}
	draft, err := h.drafts.GetDraft(r.Context(), owner(r), id)
	if err != nil {
		handleError(w, r, h.logger, err)
		return
	}
	respond(w, r, http.StatusOK, dto.ToDraftResponse(draft))
}

// UpdateDraft handles PATCH /shipments/drafts/{draftID}.
func (h *ShipmentHandler) UpdateDraft(w http.ResponseWriter, r *http.Request) {
	id, ok := h.draftID(w, r)
	if !ok {
		return
	}
	var req dto.UpdateDraftRequest
	if !bind(w, r, h.validator, &req) {
		return
	}

	draft, err := h.drafts.UpdateDetails(r.Context(), owner(r), id, req.ToDraftDetails())
	if err != nil {
		handleError(w, r, h.logger, err)
		return
	}
	respond(w, r, http.StatusOK, dto.ToDraftResponse(draft))
}

// CancelDraft handles DELETE /shipments/drafts/{draftID}.
func (h *ShipmentHandler) CancelDraft(w http.ResponseWriter, r *http.Request) {
	id, ok := h.draftID(w, r)
	if !ok {
		return
	}
	if err := h.drafts.Cancel(r.Context(), owner(r), id); err != nil {
		handleError(w, r, h.logger, err)
		return
	}
	respond(w, r, http.StatusOK, dto.MessageResponse{Message: "Shipment draft cancelled"})
}

// Weights handles GET /shipments/drafts/{draftID}/weights.
func (h *ShipmentHandler) Weights(w http.ResponseWriter, r *http.Request) {
	id, ok := h.draftID(w, r)
	if !ok {
		return
	}
	weights, err := h.drafts.Weights(r.Context(), owner(r), id)
	if err != nil {
		handleError(w, r, h.logger, err)
		return
	}
	respond(w, r, http.StatusOK, weights)
}

// AddPiece handles POST /shipments/drafts/{draftID}/pieces.
func (h *ShipmentHandler) AddPiece(w http.ResponseWriter, r *http.Request) {
	id, ok := h.draftID(w, r)
	if !ok {
		return
	}
	draft, piece, err := h.drafts.AddPiece(r.Context(), owner(r), id)
	if err != nil {
		handleError(w, r, h.logger, err)
		return
	}
	respond(w, r, http.StatusCreated, dto.AddPieceResponse{Piece: piece, Draft: dto.ToDraftResponse(draft)})
}

// UpdatePiece handles PATCH /shipments/drafts/{draftID}/pieces/{pieceID}.
// An unknown piece id returns the unchanged draft.
func (h *ShipmentHandler) UpdatePiece(w http.ResponseWriter, r *http.Request) {
	id, ok := h.draftID(w, r)
	if !ok {
		return
	}
	var req dto.UpdatePieceRequest
	if !bind(w, r, h.validator, &req) {
		return
	}

	draft, err := h.drafts.UpdatePiece(r.Context(), owner(r), id, chi.URLParam(r, "pieceID"), req.ToPieceUpdate())
	if err != nil {
		handleError(w, r, h.logger, err)
		return
	}
	respond(w, r, http.StatusOK, dto.ToDraftResponse(draft))
}

// RemovePiece handles DELETE /shipments/drafts/{draftID}/pieces/{pieceID}.
func (h *ShipmentHandler) RemovePiece(w http.ResponseWriter, r *http.Request) {
	id, ok := h.draftID(w, r)
	if !ok {
		return
	}
	draft, err := h.drafts.RemovePiece(r.Context(), owner(r), id, chi.URLParam(r, "pieceID"))
	if err != nil {
		handleError(w, r, h.logger, err)
		return
	}
	respond(w, r, http.StatusOK, dto.ToDraftResponse(draft))
}

// Submit handles POST /shipments/drafts/{draftID}/submit.
func (h *ShipmentHandler) Submit(w http.ResponseWriter, r *http.Request) {
	id, ok := h.draftID(w, r)
	if !ok {
		return
	}
	result, err := h.drafts.Submit(r.Context(), owner(r), id)
	if err != nil {
		handleError(w, r, h.logger, err)
		return
	}
	respond(w, r, http.StatusCreated, dto.ToSubmitResponse(result))
}

// draftID parses the draftID URL parameter. A malformed id is reported as
// not found.
func (h *ShipmentHandler) draftID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "draftID"))
	if err != nil {
		handleError(w, r, h.logger, repository.ErrDraftNotFound)
		return uuid.Nil, false
	}
	return id, true
}

// owner returns the session token of the caller, or "" outside Authenticate.
func owner(r *http.Request) string {
	if s, ok := middleware.SessionFromContext(r.Context()); ok {
		return s.Token
	}
	return ""
}
