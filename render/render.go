// Package render turns a parsed order and the resolved company settings into
// a fixed-layout HTML document. Rendering is pure: the same order and
// settings always produce byte-identical output, and missing optional
// numbers come out as blank cells rather than errors.
package render

import (
	"bytes"
	"fmt"
	"html/template"

	"mjtoys/models"
)

type templateData struct {
	Order    models.Order
	Settings models.ResolvedSettings
}

var templateFuncs = template.FuncMap{
	"money2":    money2,
	"money3":    money3,
	"neg2":      neg2,
	"pricelist": pricelist,
	"floorPct":  floorPct,
	"blankInt":  blankInt,
}

var (
	invoiceTmpl     = template.Must(template.New(models.DocTypeInvoice).Funcs(templateFuncs).Parse(invoiceTemplate))
	packingSlipTmpl = template.Must(template.New(models.DocTypePackingSlip).Funcs(templateFuncs).Parse(packingSlipTemplate))
)

// Render produces the HTML document for the given type. It does not validate
// data quality: orders with missing identity fields still render, with the
// affected cells blank.
func Render(docType string, order models.Order, settings models.ResolvedSettings) (string, error) {
	var tmpl *template.Template
	switch docType {
	case models.DocTypeInvoice:
		tmpl = invoiceTmpl
	case models.DocTypePackingSlip:
		tmpl = packingSlipTmpl
	default:
		return "", fmt.Errorf("unknown document type %q", docType)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, templateData{Order: order, Settings: settings}); err != nil {
		return "", err
	}
	return buf.String(), nil
}
