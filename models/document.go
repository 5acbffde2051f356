package models

import "time"

// Document types accepted by the render and history endpoints.
const (
	DocTypeInvoice     = "invoice"
	DocTypePackingSlip = "packing_slip"
)

// Document is an immutable snapshot of a generated document. History is
// append-only: edits produce a new render, never an update in place.
type Document struct {
	DocumentID   string    `json:"document_id" bson:"_id" db:"document_id"`
	DocumentType string    `json:"document_type" bson:"document_type" db:"document_type"`
	OrderNumber  string    `json:"order_number" bson:"order_number" db:"order_number"`
	OrderData    Order     `json:"order_data" bson:"order_data" db:"order_data"`
	HTMLContent  string    `json:"html_content" bson:"html_content" db:"html_content"`
	CreatedAt    time.Time `json:"created_at" bson:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" bson:"updated_at" db:"updated_at"`
}

// FieldEdits maps a dotted field path ("PO_No", "line_items.0.Description")
// to a replacement display string. Saves transmit the full accumulated map,
// not a delta, so each save is a total overwrite per document.
type FieldEdits map[string]string
