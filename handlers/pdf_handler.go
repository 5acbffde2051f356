package handlers

import (
	"encoding/base64"
	"encoding/json"
	"net/http"
)

type PDFHandler struct {
	// Rasterize turns rendered HTML into PDF bytes; swapped out in tests.
	Rasterize func(htmlContent string) ([]byte, error)
}

// GeneratePDF rasterizes rendered document markup and returns the PDF as
// base64.
func (h *PDFHandler) GeneratePDF(w http.ResponseWriter, r *http.Request) {
	var req struct {
		HTMLContent string `json:"html_content"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}
	if req.HTMLContent == "" {
		writeError(w, http.StatusBadRequest, "No HTML content provided")
		return
	}

	pdfBytes, err := h.Rasterize(req.HTMLContent)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to generate PDF: "+err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"pdf_content": base64.StdEncoding.EncodeToString(pdfBytes),
	})
}
