package render

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"mjtoys/models"
)

func TestResolveSettingsNilUsesDefaults(t *testing.T) {
	resolved := ResolveSettings(nil)

	assert.Equal(t, "M&J Toys Inc.", resolved.CompanyName)
	assert.Equal(t, "MJTOYSINC.COM", resolved.CompanyWebsite)
	assert.Equal(t, "CITY OF INDUSTR", resolved.DefaultFOB)
	assert.NotEmpty(t, resolved.InvoiceFooter)
	assert.NotEmpty(t, resolved.PackingSlipFooter)
}

func TestResolveSettingsOverridesFieldByField(t *testing.T) {
	resolved := ResolveSettings(models.PartialSettings{
		"company_name": "Acme Wholesale",
		"default_fob":  "LOS ANGELES",
	})

	assert.Equal(t, "Acme Wholesale", resolved.CompanyName)
	assert.Equal(t, "LOS ANGELES", resolved.DefaultFOB)
	// Untouched fields keep their defaults.
	assert.Equal(t, "MJTOYSINC.COM", resolved.CompanyWebsite)
	assert.Equal(t, "(626) 330-3882", resolved.CompanyPhone)
}

func TestResolveSettingsEmptyStringStillOverrides(t *testing.T) {
	resolved := ResolveSettings(models.PartialSettings{
		"company_fax": "",
	})

	assert.Equal(t, "", resolved.CompanyFax)
	assert.Equal(t, "M&J Toys Inc.", resolved.CompanyName)
}

func TestResolveSettingsIgnoresUnknownKeys(t *testing.T) {
	resolved := ResolveSettings(models.PartialSettings{
		"something_else": "value",
	})

	assert.Equal(t, ResolveSettings(nil), resolved)
}

func TestDefaultSettingsReturnsACopy(t *testing.T) {
	a := DefaultSettings()
	a["company_name"] = "mutated"

	b := DefaultSettings()
	assert.Equal(t, "M&J Toys Inc.", b["company_name"])
}
