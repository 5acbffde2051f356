package repository

import "mjtoys/models"

// SettingsRepository stores the partial company profile. GetSettings returns
// nil when nothing has been saved yet; resolution against defaults happens
// in the render layer, not here.
type SettingsRepository interface {
	GetSettings() (models.PartialSettings, error)
	SaveSettings(settings models.PartialSettings) error
}
