package handlers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mjtoys/models"
)

func generateRequest(orderNumber string) map[string]interface{} {
	return map[string]interface{}{
		"type": models.DocTypeInvoice,
		"order_data": map[string]interface{}{
			"Order_number":   orderNumber,
			"Recipient_Name": "Jane Buyer",
			"line_items": []map[string]interface{}{
				{"line_number": "1", "Item_no": "TOY-88", "Ship_Qty": 5, "Net_Price": 10.0},
			},
		},
	}
}

func TestGenerateDocumentRendersAndRecordsHistory(t *testing.T) {
	docs := &fakeDocumentRepo{}
	h := &DocumentHandler{Docs: docs, Settings: &fakeSettingsRepo{}}

	rec := postJSON(t, h.GenerateDocument, generateRequest("118455"))
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	assert.NotEmpty(t, body["document_id"])
	assert.Contains(t, body["html_content"], "I N V O I C E")
	assert.Contains(t, body["html_content"], "*118455*")

	require.Len(t, docs.docs, 1)
	assert.Equal(t, "118455", docs.docs[0].OrderNumber)
	assert.Equal(t, models.DocTypeInvoice, docs.docs[0].DocumentType)
}

func TestGenerateDocumentDefaultsToInvoice(t *testing.T) {
	h := &DocumentHandler{Docs: &fakeDocumentRepo{}, Settings: &fakeSettingsRepo{}}

	req := generateRequest("1")
	delete(req, "type")
	rec := postJSON(t, h.GenerateDocument, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, decodeBody(t, rec)["html_content"], "I N V O I C E")
}

func TestGenerateDocumentAppliesEditsToACopy(t *testing.T) {
	h := &DocumentHandler{Docs: &fakeDocumentRepo{}, Settings: &fakeSettingsRepo{}}

	req := generateRequest("1")
	req["field_edits"] = map[string]string{"Recipient_Name": "John Replacement"}
	rec := postJSON(t, h.GenerateDocument, req)

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Contains(t, body["html_content"], "John Replacement")
	assert.NotContains(t, body["html_content"], "Jane Buyer")

	orderData, ok := body["order_data"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "John Replacement", orderData["Recipient_Name"])
}

func TestGenerateDocumentSurvivesHistoryFailure(t *testing.T) {
	h := &DocumentHandler{
		Docs:     &fakeDocumentRepo{saveErr: errStoreDown},
		Settings: &fakeSettingsRepo{},
	}

	rec := postJSON(t, h.GenerateDocument, generateRequest("1"))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, decodeBody(t, rec)["html_content"])
}

func TestGenerateDocumentFallsBackToDefaultSettings(t *testing.T) {
	h := &DocumentHandler{
		Docs:     &fakeDocumentRepo{},
		Settings: &fakeSettingsRepo{getErr: errStoreDown},
	}

	rec := postJSON(t, h.GenerateDocument, generateRequest("1"))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, decodeBody(t, rec)["html_content"], "M&amp;J Toys Inc.")
}

func TestGenerateDocumentUsesSavedSettings(t *testing.T) {
	h := &DocumentHandler{
		Docs:     &fakeDocumentRepo{},
		Settings: &fakeSettingsRepo{settings: models.PartialSettings{"company_name": "Acme Wholesale"}},
	}

	rec := postJSON(t, h.GenerateDocument, generateRequest("1"))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, decodeBody(t, rec)["html_content"], "Acme Wholesale")
}

func TestGenerateDocumentValidation(t *testing.T) {
	h := &DocumentHandler{Docs: &fakeDocumentRepo{}, Settings: &fakeSettingsRepo{}}

	t.Run("missing order data", func(t *testing.T) {
		rec := postJSON(t, h.GenerateDocument, map[string]interface{}{"type": "invoice"})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("unknown type", func(t *testing.T) {
		req := generateRequest("1")
		req["type"] = "receipt"
		rec := postJSON(t, h.GenerateDocument, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestGetHistoryNewestFirstAndEmpty(t *testing.T) {
	t.Run("empty store returns empty list", func(t *testing.T) {
		h := &DocumentHandler{Docs: &fakeDocumentRepo{}, Settings: &fakeSettingsRepo{}}
		req := httptestGet(t, h.GetHistory)
		require.Equal(t, http.StatusOK, req.Code)
		body := decodeBody(t, req)
		assert.Equal(t, []interface{}{}, body["documents"])
	})

	t.Run("returns stored documents", func(t *testing.T) {
		docs := &fakeDocumentRepo{docs: []*models.Document{
			{DocumentID: "a", DocumentType: models.DocTypeInvoice, OrderNumber: "1"},
			{DocumentID: "b", DocumentType: models.DocTypePackingSlip, OrderNumber: "2"},
		}}
		h := &DocumentHandler{Docs: docs, Settings: &fakeSettingsRepo{}}
		rec := httptestGet(t, h.GetHistory)
		require.Equal(t, http.StatusOK, rec.Code)
		list, ok := decodeBody(t, rec)["documents"].([]interface{})
		require.True(t, ok)
		assert.Len(t, list, 2)
	})
}

func TestGetDocument(t *testing.T) {
	docs := &fakeDocumentRepo{docs: []*models.Document{
		{DocumentID: "doc-1", DocumentType: models.DocTypeInvoice, OrderNumber: "118455"},
	}}
	h := &DocumentHandler{Docs: docs, Settings: &fakeSettingsRepo{}}

	t.Run("found", func(t *testing.T) {
		rec := postJSON(t, h.GetDocument, map[string]string{"document_id": "doc-1"})
		require.Equal(t, http.StatusOK, rec.Code)
		doc, ok := decodeBody(t, rec)["document"].(map[string]interface{})
		require.True(t, ok)
		assert.Equal(t, "doc-1", doc["document_id"])
	})

	t.Run("not found", func(t *testing.T) {
		rec := postJSON(t, h.GetDocument, map[string]string{"document_id": "missing"})
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "Document not found", decodeBody(t, rec)["error"])
	})

	t.Run("missing id", func(t *testing.T) {
		rec := postJSON(t, h.GetDocument, map[string]string{})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestSaveDocument(t *testing.T) {
	t.Run("stores a client render", func(t *testing.T) {
		docs := &fakeDocumentRepo{}
		h := &DocumentHandler{Docs: docs, Settings: &fakeSettingsRepo{}}
		rec := postJSON(t, h.SaveDocument, map[string]interface{}{
			"document_type": models.DocTypePackingSlip,
			"order_number":  "118455",
			"html_content":  "<html></html>",
		})
		require.Equal(t, http.StatusOK, rec.Code)
		assert.NotEmpty(t, decodeBody(t, rec)["document_id"])
		require.Len(t, docs.docs, 1)
	})

	t.Run("rejects unknown type", func(t *testing.T) {
		h := &DocumentHandler{Docs: &fakeDocumentRepo{}, Settings: &fakeSettingsRepo{}}
		rec := postJSON(t, h.SaveDocument, map[string]interface{}{"document_type": "receipt"})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
