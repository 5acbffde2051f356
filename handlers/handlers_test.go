package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"mjtoys/models"
)

// In-memory repository fakes shared by the handler tests.

type fakeDocumentRepo struct {
	docs    []*models.Document
	saveErr error
	getErr  error
}

func (f *fakeDocumentRepo) SaveDocument(doc *models.Document) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.docs = append(f.docs, doc)
	return nil
}

func (f *fakeDocumentRepo) GetDocuments() ([]*models.Document, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.docs, nil
}

func (f *fakeDocumentRepo) GetDocumentByID(id string) (*models.Document, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	for _, d := range f.docs {
		if d.DocumentID == id {
			return d, nil
		}
	}
	return nil, nil
}

type fakeSettingsRepo struct {
	settings models.PartialSettings
	getErr   error
	saveErr  error
}

func (f *fakeSettingsRepo) GetSettings() (models.PartialSettings, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.settings, nil
}

func (f *fakeSettingsRepo) SaveSettings(settings models.PartialSettings) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.settings = settings
	return nil
}

type fakeFieldEditRepo struct {
	edits   map[string]models.FieldEdits
	saveErr error
}

func (f *fakeFieldEditRepo) SaveFieldEdits(documentID string, edits models.FieldEdits) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	if f.edits == nil {
		f.edits = map[string]models.FieldEdits{}
	}
	f.edits[documentID] = edits
	return nil
}

func (f *fakeFieldEditRepo) GetFieldEdits(documentID string) (models.FieldEdits, error) {
	if e, ok := f.edits[documentID]; ok {
		return e, nil
	}
	return models.FieldEdits{}, nil
}

var errStoreDown = errors.New("store unavailable")

func postJSON(t *testing.T, handler http.HandlerFunc, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(payload))
	rec := httptest.NewRecorder()
	handler(rec, req)
	return rec
}

func httptestGet(t *testing.T, handler http.HandlerFunc) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	handler(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}
