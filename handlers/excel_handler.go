package handlers

import (
	"encoding/base64"
	"encoding/json"
	"net/http"

	"mjtoys/parser"
)

type ExcelHandler struct{}

// ParseExcel accepts a base64-encoded order spreadsheet and returns the
// normalized orders found in it. Unrecognizable files abort with no partial
// state.
func (h *ExcelHandler) ParseExcel(w http.ResponseWriter, r *http.Request) {
	var req struct {
		FileContent string `json:"file_content"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}
	if req.FileContent == "" {
		writeError(w, http.StatusBadRequest, "No file content provided")
		return
	}

	content, err := base64.StdEncoding.DecodeString(req.FileContent)
	if err != nil {
		writeError(w, http.StatusBadRequest, "file_content is not valid base64")
		return
	}

	orders, err := parser.ParseOrders(content)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"orders": orders})
}
