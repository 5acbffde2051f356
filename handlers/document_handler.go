package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"mjtoys/config"
	"mjtoys/models"
	"mjtoys/render"
	"mjtoys/repository"
)

type DocumentHandler struct {
	Docs     repository.DocumentRepository
	Settings repository.SettingsRepository
}

// GenerateDocument renders an invoice or packing slip for an order, applying
// any field edits to a copy first, and records the result in history.
// History recording is best-effort: a failure is logged and the response is
// returned anyway.
func (h *DocumentHandler) GenerateDocument(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Type       string            `json:"type"`
		OrderData  *models.Order     `json:"order_data"`
		FieldEdits models.FieldEdits `json:"field_edits"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}
	if req.OrderData == nil {
		writeError(w, http.StatusBadRequest, "No order data provided")
		return
	}
	if req.Type == "" {
		req.Type = models.DocTypeInvoice
	}

	order := *req.OrderData
	if len(req.FieldEdits) > 0 {
		order = render.ApplyFieldEdits(order, req.FieldEdits)
	}

	// Settings are best-effort too: an unreachable store renders against
	// the built-in defaults.
	partial, err := h.Settings.GetSettings()
	if err != nil {
		config.GetLogger().WithField("order", order.OrderNumber).Warnf("settings load failed, using defaults: %v", err)
		partial = nil
	}
	settings := render.ResolveSettings(partial)

	htmlContent, err := render.Render(req.Type, order, settings)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	documentID := uuid.NewString()
	doc := &models.Document{
		DocumentID:   documentID,
		DocumentType: req.Type,
		OrderNumber:  order.OrderNumber,
		OrderData:    order,
		HTMLContent:  htmlContent,
	}
	if err := h.Docs.SaveDocument(doc); err != nil {
		config.GetLogger().WithField("document_id", documentID).Errorf("history save failed: %v", err)
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"document_id":  documentID,
		"html_content": htmlContent,
		"order_data":   order,
	})
}

// GetHistory lists all generated documents, newest first.
func (h *DocumentHandler) GetHistory(w http.ResponseWriter, r *http.Request) {
	docs, err := h.Docs.GetDocuments()
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if docs == nil {
		docs = []*models.Document{}
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"documents": docs})
}

// GetDocument fetches one history record by id.
func (h *DocumentHandler) GetDocument(w http.ResponseWriter, r *http.Request) {
	var req struct {
		DocumentID string `json:"document_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}
	if req.DocumentID == "" {
		writeError(w, http.StatusBadRequest, "No document_id provided")
		return
	}

	doc, err := h.Docs.GetDocumentByID(req.DocumentID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if doc == nil {
		writeError(w, http.StatusNotFound, "Document not found")
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"document": doc})
}

// SaveDocument stores a client-side render in history without generating
// markup on the server.
func (h *DocumentHandler) SaveDocument(w http.ResponseWriter, r *http.Request) {
	var doc models.Document
	if err := json.NewDecoder(r.Body).Decode(&doc); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}
	if doc.DocumentType != models.DocTypeInvoice && doc.DocumentType != models.DocTypePackingSlip {
		writeError(w, http.StatusBadRequest, "Unknown document type")
		return
	}
	if doc.DocumentID == "" {
		doc.DocumentID = uuid.NewString()
	}

	if err := h.Docs.SaveDocument(&doc); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"document_id": doc.DocumentID, "message": "Document saved"})
}
