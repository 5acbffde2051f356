package models

// PartialSettings is the company profile record exactly as the user saved it.
// Only saved keys are present; a present-but-empty value is kept as-is and
// overrides the built-in default at resolve time.
type PartialSettings map[string]string

// ResolvedSettings is the complete company profile every rendered document is
// parameterized with, produced by merging a PartialSettings record over the
// built-in defaults.
type ResolvedSettings struct {
	CompanyName       string `json:"company_name"`
	CompanyWebsite    string `json:"company_website"`
	CompanyAddress    string `json:"company_address"`
	CompanyPhone      string `json:"company_phone"`
	CompanyFax        string `json:"company_fax"`
	LogoURL           string `json:"logo_url"`
	DefaultFOB        string `json:"default_fob"`
	InvoiceFooter     string `json:"invoice_footer"`
	PackingSlipFooter string `json:"packing_slip_footer"`
}
