package render

import "mjtoys/models"

// Built-in company profile. Remote settings override these field by field; a
// field the user saved as an empty string overrides too.
var defaultSettings = map[string]string{
	"company_name":        "M&J Toys Inc.",
	"company_website":     "MJTOYSINC.COM",
	"company_address":     "16700 GALE AVE, CITY OF INDUSTRY, CA 91745",
	"company_phone":       "(626) 330-3882",
	"company_fax":         "(626) 330-3108",
	"logo_url":            "https://prompt-images-nerd.s3.us-east-1.amazonaws.com/logo_toys.png",
	"default_fob":         "CITY OF INDUSTR",
	"invoice_footer":      "ALL SALES ARE FINAL! Net prices included defective allowance discount. Please contact us with in 7 days to claim for missing or damage caused by the Carriers. Refused shipment will get bill for a 20% restocking fees, plus both ways freights. Payment received after 10 days from due date will be subject for a $50 fee, or 2%which ever is greater and additional periodic interest charges of up to 1.5% per month.",
	"packing_slip_footer": "Please carefully inspect the shipment quantities with this packing list , and before you sign complete on the BOL to the Carriers. Missing or damage found, your responsible to write on the BOL, and contact to us within 7 days.",
}

// DefaultSettings returns a copy of the built-in profile as a partial record,
// used when the settings store has never been written.
func DefaultSettings() models.PartialSettings {
	out := make(models.PartialSettings, len(defaultSettings))
	for k, v := range defaultSettings {
		out[k] = v
	}
	return out
}

// ResolveSettings merges a partial remote record over the built-in defaults.
// The merge is shallow and never fails: a nil record resolves to the defaults
// unchanged.
func ResolveSettings(remote models.PartialSettings) models.ResolvedSettings {
	merged := make(map[string]string, len(defaultSettings))
	for k, v := range defaultSettings {
		merged[k] = v
	}
	for k, v := range remote {
		merged[k] = v
	}
	return models.ResolvedSettings{
		CompanyName:       merged["company_name"],
		CompanyWebsite:    merged["company_website"],
		CompanyAddress:    merged["company_address"],
		CompanyPhone:      merged["company_phone"],
		CompanyFax:        merged["company_fax"],
		LogoURL:           merged["logo_url"],
		DefaultFOB:        merged["default_fob"],
		InvoiceFooter:     merged["invoice_footer"],
		PackingSlipFooter: merged["packing_slip_footer"],
	}
}
