package repository

import "mjtoys/models"

// FieldEditRepository keys edit maps by document. Each save overwrites the
// whole map; the client always transmits the full accumulated edits.
type FieldEditRepository interface {
	SaveFieldEdits(documentID string, edits models.FieldEdits) error
	GetFieldEdits(documentID string) (models.FieldEdits, error)
}
