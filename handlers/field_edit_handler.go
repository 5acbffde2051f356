package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"mjtoys/models"
	"mjtoys/repository"
)

type FieldEditHandler struct {
	Repo repository.FieldEditRepository
}

// SaveFieldEdit stores the full accumulated edit map for a document. A
// request without a document id gets a fresh one, so edits can start before
// the first render is saved.
func (h *FieldEditHandler) SaveFieldEdit(w http.ResponseWriter, r *http.Request) {
	var req struct {
		DocumentID string            `json:"document_id"`
		FieldEdits models.FieldEdits `json:"field_edits"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}
	if req.DocumentID == "" {
		req.DocumentID = uuid.NewString()
	}
	if req.FieldEdits == nil {
		req.FieldEdits = models.FieldEdits{}
	}

	if err := h.Repo.SaveFieldEdits(req.DocumentID, req.FieldEdits); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"document_id": req.DocumentID,
		"message":     "Field edits saved",
	})
}

// GetFieldEdits returns the stored edit map for a document; an unknown
// document yields an empty map.
func (h *FieldEditHandler) GetFieldEdits(w http.ResponseWriter, r *http.Request) {
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

	edits, err := h.Repo.GetFieldEdits(req.DocumentID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"field_edits": edits})
}
