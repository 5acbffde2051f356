package repository

import (
	"database/sql"
	"encoding/json"
	"time"

	"mjtoys/models"
)

type PostgresFieldEditRepo struct {
	DB *sql.DB
}

func NewPostgresFieldEditRepo(db *sql.DB) *PostgresFieldEditRepo {
	return &PostgresFieldEditRepo{DB: db}
}

// SaveFieldEdits stores the full edit map for a document, replacing any
// previous map.
func (r *PostgresFieldEditRepo) SaveFieldEdits(documentID string, edits models.FieldEdits) error {
	data, err := json.Marshal(edits)
	if err != nil {
		return err
	}

	_, err = r.DB.Exec(`
		INSERT INTO field_edits (document_id, edits, updated_at)
		VALUES ($1,$2,$3)
		ON CONFLICT (document_id) DO UPDATE SET edits=$2, updated_at=$3
	`, documentID, data, time.Now().UTC())
	return err
}

// GetFieldEdits returns the stored map, or an empty map when the document
// has no edits yet.
func (r *PostgresFieldEditRepo) GetFieldEdits(documentID string) (models.FieldEdits, error) {
	var data []byte
	err := r.DB.QueryRow(`
		SELECT edits FROM field_edits WHERE document_id=$1
	`, documentID).Scan(&data)
	if err != nil {
		if err == sql.ErrNoRows {
			return models.FieldEdits{}, nil
		}
		return nil, err
	}

	edits := models.FieldEdits{}
	if len(data) > 0 {
		if err := json.Unmarshal(data, &edits); err != nil {
			return nil, err
		}
	}
	return edits, nil
}
