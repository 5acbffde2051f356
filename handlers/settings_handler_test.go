package handlers

import (
	"encoding/base64"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mjtoys/models"
)

func TestGetSettingsFallsBackToDefaults(t *testing.T) {
	h := &SettingsHandler{Repo: &fakeSettingsRepo{}}

	rec := httptestGet(t, h.GetSettings)
	require.Equal(t, http.StatusOK, rec.Code)

	settings, ok := decodeBody(t, rec)["settings"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "M&J Toys Inc.", settings["company_name"])
	assert.Equal(t, "CITY OF INDUSTR", settings["default_fob"])
}

func TestGetSettingsReturnsStoredPartial(t *testing.T) {
	h := &SettingsHandler{Repo: &fakeSettingsRepo{
		settings: models.PartialSettings{"company_name": "Acme Wholesale"},
	}}

	rec := httptestGet(t, h.GetSettings)
	require.Equal(t, http.StatusOK, rec.Code)

	settings, ok := decodeBody(t, rec)["settings"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "Acme Wholesale", settings["company_name"])
	// A stored partial is returned as-is, not merged with defaults here.
	assert.NotContains(t, settings, "default_fob")
}

func TestUpdateSettingsStoresExactlyWhatWasSent(t *testing.T) {
	repo := &fakeSettingsRepo{}
	h := &SettingsHandler{Repo: repo}

	rec := postJSON(t, h.UpdateSettings, map[string]interface{}{
		"settings": map[string]string{
			"company_name": "Acme Wholesale",
			"company_fax":  "",
		},
	})

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Settings updated successfully", decodeBody(t, rec)["message"])
	assert.Equal(t, models.PartialSettings{
		"company_name": "Acme Wholesale",
		"company_fax":  "",
	}, repo.settings)
}

func TestUpdateSettingsStoreFailure(t *testing.T) {
	h := &SettingsHandler{Repo: &fakeSettingsRepo{saveErr: errStoreDown}}
	rec := postJSON(t, h.UpdateSettings, map[string]interface{}{
		"settings": map[string]string{"company_name": "x"},
	})
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestUploadLogoStoresAndPointsSettingsAtURL(t *testing.T) {
	repo := &fakeSettingsRepo{settings: models.PartialSettings{"company_name": "Acme Wholesale"}}
	var gotBytes []byte
	var gotName string
	h := &SettingsHandler{
		Repo: repo,
		Upload: func(imageBytes []byte, filename string) (string, error) {
			gotBytes = imageBytes
			gotName = filename
			return "https://cdn.example.com/logos/new-logo.png", nil
		},
	}

	rec := postJSON(t, h.UploadLogo, map[string]string{
		"logo_content": base64.StdEncoding.EncodeToString([]byte("png bytes")),
		"filename":     "new-logo.png",
	})

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "https://cdn.example.com/logos/new-logo.png", decodeBody(t, rec)["logo_url"])
	assert.Equal(t, []byte("png bytes"), gotBytes)
	assert.Equal(t, "new-logo.png", gotName)

	// The logo URL lands in settings next to what was already there.
	assert.Equal(t, "https://cdn.example.com/logos/new-logo.png", repo.settings["logo_url"])
	assert.Equal(t, "Acme Wholesale", repo.settings["company_name"])
}

func TestUploadLogoDeletesReplacedLogo(t *testing.T) {
	repo := &fakeSettingsRepo{settings: models.PartialSettings{
		"logo_url": "https://cdn.example.com/logos/old-logo.png",
	}}
	var deleted []string
	h := &SettingsHandler{
		Repo: repo,
		Upload: func([]byte, string) (string, error) {
			return "https://cdn.example.com/logos/new-logo.png", nil
		},
		Delete: func(fileURL string) error {
			deleted = append(deleted, fileURL)
			return nil
		},
	}

	rec := postJSON(t, h.UploadLogo, map[string]string{
		"logo_content": base64.StdEncoding.EncodeToString([]byte("png bytes")),
		"filename":     "new-logo.png",
	})

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []string{"https://cdn.example.com/logos/old-logo.png"}, deleted)
	assert.Equal(t, "https://cdn.example.com/logos/new-logo.png", repo.settings["logo_url"])
}

func TestUploadLogoCleanupIsBestEffort(t *testing.T) {
	repo := &fakeSettingsRepo{settings: models.PartialSettings{
		"logo_url": "https://cdn.example.com/logos/old-logo.png",
	}}
	h := &SettingsHandler{
		Repo: repo,
		Upload: func([]byte, string) (string, error) {
			return "https://cdn.example.com/logos/new-logo.png", nil
		},
		Delete: func(string) error { return errStoreDown },
	}

	rec := postJSON(t, h.UploadLogo, map[string]string{
		"logo_content": base64.StdEncoding.EncodeToString([]byte("png bytes")),
	})

	// A failed cleanup never fails the upload.
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "https://cdn.example.com/logos/new-logo.png", repo.settings["logo_url"])
}

func TestUploadLogoSkipsDeleteWithoutPreviousLogo(t *testing.T) {
	repo := &fakeSettingsRepo{}
	var deleteCalls int
	h := &SettingsHandler{
		Repo: repo,
		Upload: func([]byte, string) (string, error) {
			return "https://cdn.example.com/logos/first-logo.png", nil
		},
		Delete: func(string) error {
			deleteCalls++
			return nil
		},
	}

	rec := postJSON(t, h.UploadLogo, map[string]string{
		"logo_content": base64.StdEncoding.EncodeToString([]byte("png bytes")),
	})

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 0, deleteCalls)
}

func TestUploadLogoValidation(t *testing.T) {
	h := &SettingsHandler{Repo: &fakeSettingsRepo{}}

	t.Run("missing content", func(t *testing.T) {
		rec := postJSON(t, h.UploadLogo, map[string]string{"filename": "logo.png"})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("bad base64", func(t *testing.T) {
		rec := postJSON(t, h.UploadLogo, map[string]string{"logo_content": "@@not-base64@@"})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestUploadLogoStorageFailure(t *testing.T) {
	h := &SettingsHandler{
		Repo: &fakeSettingsRepo{},
		Upload: func([]byte, string) (string, error) {
			return "", errStoreDown
		},
	}
	rec := postJSON(t, h.UploadLogo, map[string]string{
		"logo_content": base64.StdEncoding.EncodeToString([]byte("png bytes")),
	})
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
