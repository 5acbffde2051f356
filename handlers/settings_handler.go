package handlers

import (
	"encoding/base64"
	"encoding/json"
	"net/http"

	"mjtoys/config"
	"mjtoys/models"
	"mjtoys/render"
	"mjtoys/repository"
)

type SettingsHandler struct {
	Repo repository.SettingsRepository

	// Upload pushes logo bytes to object storage and returns the public
	// URL; swapped out in tests.
	Upload func(imageBytes []byte, filename string) (string, error)

	// Delete removes a replaced logo object from storage. Best-effort:
	// failures are logged, never surfaced.
	Delete func(fileURL string) error
}

// GetSettings returns the stored partial profile, or the built-in defaults
// when nothing has been saved yet.
func (h *SettingsHandler) GetSettings(w http.ResponseWriter, r *http.Request) {
	settings, err := h.Repo.GetSettings()
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if settings == nil {
		settings = render.DefaultSettings()
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"settings": settings})
}

// UpdateSettings overwrites the stored profile with exactly what was sent,
// empty values included.
func (h *SettingsHandler) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Settings models.PartialSettings `json:"settings"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}
	if req.Settings == nil {
		req.Settings = models.PartialSettings{}
	}

	if err := h.Repo.SaveSettings(req.Settings); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Settings updated successfully"})
}

// UploadLogo stores a new company logo and points the profile at it.
func (h *SettingsHandler) UploadLogo(w http.ResponseWriter, r *http.Request) {
	var req struct {
		LogoContent string `json:"logo_content"`
		Filename    string `json:"filename"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}
	if req.LogoContent == "" {
		writeError(w, http.StatusBadRequest, "No logo content provided")
		return
	}
	if req.Filename == "" {
		req.Filename = "logo.png"
	}

	logoBytes, err := base64.StdEncoding.DecodeString(req.LogoContent)
	if err != nil {
		writeError(w, http.StatusBadRequest, "logo_content is not valid base64")
		return
	}

	logoURL, err := h.Upload(logoBytes, req.Filename)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	settings, err := h.Repo.GetSettings()
	if err != nil {
		config.GetLogger().Warnf("settings load failed during logo upload: %v", err)
		settings = nil
	}
	if settings == nil {
		settings = models.PartialSettings{}
	}
	// Only user-uploaded logos live in our bucket; the built-in default is
	// never a stored value, so it is never deleted here.
	if prev := settings["logo_url"]; prev != "" && prev != logoURL && h.Delete != nil {
		if err := h.Delete(prev); err != nil {
			config.GetLogger().Warnf("replaced logo cleanup failed: %v", err)
		}
	}
	settings["logo_url"] = logoURL
	if err := h.Repo.SaveSettings(settings); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"logo_url": logoURL})
}
