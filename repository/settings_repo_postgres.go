package repository

import (
	"database/sql"
	"encoding/json"
	"time"

	"mjtoys/models"
)

// Single-row store keyed like the original settings table.
const settingKey = "company_settings"

type PostgresSettingsRepo struct {
	DB *sql.DB
}

func NewPostgresSettingsRepo(db *sql.DB) *PostgresSettingsRepo {
	return &PostgresSettingsRepo{DB: db}
}

func (r *PostgresSettingsRepo) GetSettings() (models.PartialSettings, error) {
	var data []byte
	err := r.DB.QueryRow(`
		SELECT data FROM settings WHERE setting_key=$1
	`, settingKey).Scan(&data)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	var settings models.PartialSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		return nil, err
	}
	return settings, nil
}

func (r *PostgresSettingsRepo) SaveSettings(settings models.PartialSettings) error {
	data, err := json.Marshal(settings)
	if err != nil {
		return err
	}

	_, err = r.DB.Exec(`
		INSERT INTO settings (setting_key, data, updated_at)
		VALUES ($1,$2,$3)
		ON CONFLICT (setting_key) DO UPDATE SET data=$2, updated_at=$3
	`, settingKey, data, time.Now().UTC())
	return err
}
