package repository

import "mjtoys/models"

// DocumentRepository is the append-only history of generated documents.
// There is no update or delete: edits produce a new render and a new record.
type DocumentRepository interface {
	SaveDocument(doc *models.Document) error
	GetDocuments() ([]*models.Document, error)
	GetDocumentByID(id string) (*models.Document, error)
}
