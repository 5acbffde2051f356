package repository

import (
	"database/sql"
	"encoding/json"
	"time"

	"mjtoys/models"
)

type PostgresDocumentRepo struct {
	DB *sql.DB
}

func NewPostgresDocumentRepo(db *sql.DB) *PostgresDocumentRepo {
	return &PostgresDocumentRepo{DB: db}
}

func (r *PostgresDocumentRepo) SaveDocument(doc *models.Document) error {
	if doc.CreatedAt.IsZero() {
		doc.CreatedAt = time.Now().UTC()
	}
	doc.UpdatedAt = doc.CreatedAt

	orderJSON, err := json.Marshal(doc.OrderData)
	if err != nil {
		return err
	}

	_, err = r.DB.Exec(`
		INSERT INTO documents (document_id, document_type, order_number, order_data, html_content, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7)
	`, doc.DocumentID, doc.DocumentType, doc.OrderNumber, orderJSON, doc.HTMLContent, doc.CreatedAt, doc.UpdatedAt)
	return err
}

// GetDocuments returns all history records, newest first.
func (r *PostgresDocumentRepo) GetDocuments() ([]*models.Document, error) {
	rows, err := r.DB.Query(`
		SELECT document_id, document_type, order_number, order_data, html_content, created_at, updated_at
		FROM documents
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*models.Document
	for rows.Next() {
		doc, err := scanDocument(rows.Scan)
		if err != nil {
			return nil, err
		}
		out = append(out, doc)
	}
	return out, rows.Err()
}

func (r *PostgresDocumentRepo) GetDocumentByID(id string) (*models.Document, error) {
	row := r.DB.QueryRow(`
		SELECT document_id, document_type, order_number, order_data, html_content, created_at, updated_at
		FROM documents
		WHERE document_id=$1
	`, id)

	doc, err := scanDocument(row.Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return doc, nil
}

func scanDocument(scan func(dest ...interface{}) error) (*models.Document, error) {
	doc := &models.Document{}
	var orderJSON []byte
	if err := scan(&doc.DocumentID, &doc.DocumentType, &doc.OrderNumber, &orderJSON, &doc.HTMLContent, &doc.CreatedAt, &doc.UpdatedAt); err != nil {
		return nil, err
	}
	if len(orderJSON) > 0 {
		if err := json.Unmarshal(orderJSON, &doc.OrderData); err != nil {
			return nil, err
		}
	}
	return doc, nil
}
