package server

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/keelson/sitedesk/internal/domain/bid"
	"github.com/keelson/sitedesk/internal/domain/changeorder"
	"github.com/keelson/sitedesk/internal/domain/document"
	"github.com/keelson/sitedesk/internal/domain/inspection"
)

// writeDomainError maps the shared domain error shapes onto HTTP statuses.
func (s *Server) writeDomainError(w http.ResponseWriter, err error, invalid, notFound error, notFoundMsg, op string) {
	switch {
	case errors.Is(err, invalid):
		writeError(w, http.StatusBadRequest, "Missing required fields")
	case errors.Is(err, notFound):
		writeError(w, http.StatusNotFound, notFoundMsg)
	default:
		s.logger.Error(op+" failed", "error", err)
		writeError(w, http.StatusInternalServerError, op+" failed")
	}
}

// --- Documents ---

type documentPayload struct {
	ProjectID *string `json:"project_id"`
	Name      *string `json:"name"`
	Type      *string `json:"type"`
}

func (s *Server) handleListDocuments(w http.ResponseWriter, r *http.Request) {
	docs, err := s.services.Documents.List(r.Context())
	if err != nil {
		s.logger.Error("list documents failed", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to list documents")
		return
	}
	writeJSON(w, http.StatusOK, docs)
}

func (s *Server) handleCreateDocument(w http.ResponseWriter, r *http.Request) {
	var payload documentPayload
	if !decodeBody(w, r, &payload) {
		return
	}

	req := document.CreateRequest{}
	if payload.ProjectID != nil {
		req.ProjectID = *payload.ProjectID
	}
	if payload.Name != nil {
		req.Name = *payload.Name
	}
	if payload.Type != nil {
		req.Type = *payload.Type
	}

	doc, err := s.services.Documents.Create(r.Context(), req)
	if err != nil {
		s.writeDomainError(w, err, document.ErrInvalidInput, document.ErrDocumentNotFound, "Document not found", "create document")
		return
	}
	writeJSON(w, http.StatusCreated, doc)
}

func (s *Server) handleUpdateDocument(w http.ResponseWriter, r *http.Request) {
	var payload documentPayload
	if !decodeBody(w, r, &payload) {
		return
	}

	doc, err := s.services.Documents.Update(r.Context(), chi.URLParam(r, "id"), document.UpdateRequest{
		Name: payload.Name,
		Type: payload.Type,
	})
	if err != nil {
		s.writeDomainError(w, err, document.ErrInvalidInput, document.ErrDocumentNotFound, "Document not found", "update document")
		return
	}
	writeJSON(w, http.StatusOK, doc)
}

func (s *Server) handleDeleteDocument(w http.ResponseWriter, r *http.Request) {
	if err := s.services.Documents.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		s.writeDomainError(w, err, document.ErrInvalidInput, document.ErrDocumentNotFound, "Document not found", "delete document")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Document deleted successfully"})
}

// --- Bids ---

type bidPayload struct {
	ProjectID *string  `json:"project_id"`
	Title     *string  `json:"title"`
	Status    *string  `json:"status"`
	Amount    *float64 `json:"amount"`
}

func (s *Server) handleListBids(w http.ResponseWriter, r *http.Request) {
	bids, err := s.services.Bids.List(r.Context())
	if err != nil {
		s.logger.Error("list bids failed", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to list bids")
		return
	}
	writeJSON(w, http.StatusOK, bids)
}

func (s *Server) handleCreateBid(w http.ResponseWriter, r *http.Request) {
	var payload bidPayload
	if !decodeBody(w, r, &payload) {
		return
	}

	req := bid.CreateRequest{}
	if payload.ProjectID != nil {
		req.ProjectID = *payload.ProjectID
	}
	if payload.Title != nil {
		req.Title = *payload.Title
	}
	if payload.Status != nil {
		req.Status = *payload.Status
	}
	if payload.Amount != nil {
		req.Amount = *payload.Amount
	}

	b, err := s.services.Bids.Create(r.Context(), req)
	if err != nil {
		s.writeDomainError(w, err, bid.ErrInvalidInput, bid.ErrBidNotFound, "Bid not found", "create bid")
		return
	}
	writeJSON(w, http.StatusCreated, b)
}

func (s *Server) handleUpdateBid(w http.ResponseWriter, r *http.Request) {
	var payload bidPayload
	if !decodeBody(w, r, &payload) {
		return
	}

	b, err := s.services.Bids.Update(r.Context(), chi.URLParam(r, "id"), bid.UpdateRequest{
		Title:  payload.Title,
		Status: payload.Status,
		Amount: payload.Amount,
	})
	if err != nil {
		s.writeDomainError(w, err, bid.ErrInvalidInput, bid.ErrBidNotFound, "Bid not found", "update bid")
		return
	}
	writeJSON(w, http.StatusOK, b)
}

func (s *Server) handleDeleteBid(w http.ResponseWriter, r *http.Request) {
	if err := s.services.Bids.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		s.writeDomainError(w, err, bid.ErrInvalidInput, bid.ErrBidNotFound, "Bid not found", "delete bid")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Bid deleted successfully"})
}

// --- Change orders ---

type changeOrderPayload struct {
	ProjectID *string  `json:"project_id"`
	Title     *string  `json:"title"`
	Status    *string  `json:"status"`
	Amount    *float64 `json:"amount"`
}

func (s *Server) handleListChangeOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := s.services.ChangeOrders.List(r.Context())
	if err != nil {
		s.logger.Error("list change orders failed", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to list change orders")
		return
	}
	writeJSON(w, http.StatusOK, orders)
}

func (s *Server) handleCreateChangeOrder(w http.ResponseWriter, r *http.Request) {
	var payload changeOrderPayload
	if !decodeBody(w, r, &payload) {
		return
	}

	req := changeorder.CreateRequest{}
	if payload.ProjectID != nil {
		req.ProjectID = *payload.ProjectID
	}
	if payload.Title != nil {
		req.Title = *payload.Title
	}
	if payload.Status != nil {
		req.Status = *payload.Status
	}
	if payload.Amount != nil {
		req.Amount = *payload.Amount
	}

	co, err := s.services.ChangeOrders.Create(r.Context(), req)
	if err != nil {
		s.writeDomainError(w, err, changeorder.ErrInvalidInput, changeorder.ErrChangeOrderNotFound, "Change order not found", "create change order")
		return
	}
	writeJSON(w, http.StatusCreated, co)
}

func (s *Server) handleUpdateChangeOrder(w http.ResponseWriter, r *http.Request) {
	var payload changeOrderPayload
	if !decodeBody(w, r, &payload) {
		return
	}

	co, err := s.services.ChangeOrders.Update(r.Context(), chi.URLParam(r, "id"), changeorder.UpdateRequest{
		Title:  payload.Title,
		Status: payload.Status,
		Amount: payload.Amount,
	})
	if err != nil {
		s.writeDomainError(w, err, changeorder.ErrInvalidInput, changeorder.ErrChangeOrderNotFound, "Change order not found", "update change order")
		return
	}
	writeJSON(w, http.StatusOK, co)
}

func (s *Server) handleDeleteChangeOrder(w http.ResponseWriter, r *http.Request) {
	if err := s.services.ChangeOrders.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		s.writeDomainError(w, err, changeorder.ErrInvalidInput, changeorder.ErrChangeOrderNotFound, "Change order not found", "delete change order")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Change order deleted successfully"})
}

// --- Inspections ---

type inspectionPayload struct {
	ProjectID *string `json:"project_id"`
	Title     *string `json:"title"`
	Status    *string `json:"status"`
	Notes     *string `json:"notes"`
}

func (s *Server) handleListInspections(w http.ResponseWriter, r *http.Request) {
	inspections, err := s.services.Inspections.List(r.Context())
	if err != nil {
		s.logger.Error("list inspections failed", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to list inspections")
		return
	}
	writeJSON(w, http.StatusOK, inspections)
}

func (s *Server) handleCreateInspection(w http.ResponseWriter, r *http.Request) {
	var payload inspectionPayload
	if !decodeBody(w, r, &payload) {
		return
	}

	req := inspection.CreateRequest{}
	if payload.ProjectID != nil {
		req.ProjectID = *payload.ProjectID
	}
	if payload.Title != nil {
		req.Title = *payload.Title
	}
	if payload.Status != nil {
		req.Status = *payload.Status
	}
	if payload.Notes != nil {
		req.Notes = *payload.Notes
	}

	insp, err := s.services.Inspections.Create(r.Context(), req)
	if err != nil {
		s.writeDomainError(w, err, inspection.ErrInvalidInput, inspection.ErrInspectionNotFound, "Inspection not found", "create inspection")
		return
	}
	writeJSON(w, http.StatusCreated, insp)
}

func (s *Server) handleUpdateInspection(w http.ResponseWriter, r *http.Request) {
	var payload inspectionPayload
	if !decodeBody(w, r, &payload) {
		return
	}

	insp, err := s.services.Inspections.Update(r.Context(), chi.URLParam(r, "id"), inspection.UpdateRequest{
		Title:  payload.Title,
		Status: payload.Status,
		Notes:  payload.Notes,
	})
	if err != nil {
		s.writeDomainError(w, err, inspection.ErrInvalidInput, inspection.ErrInspectionNotFound, "Inspection not found", "update inspection")
		return
	}
	writeJSON(w, http.StatusOK, insp)
}

func (s *Server) handleDeleteInspection(w http.ResponseWriter, r *http.Request) {
	if err := s.services.Inspections.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		s.writeDomainError(w, err, inspection.ErrInvalidInput, inspection.ErrInspectionNotFound, "Inspection not found", "delete inspection")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Inspection deleted successfully"})
}
