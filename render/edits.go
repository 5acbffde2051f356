package render

import (
	"strconv"
	"strings"

	"mjtoys/models"
)

// ApplyFieldEdits overlays user edits onto a copy of the order and returns
// the copy; the canonical order is never mutated. Keys are the order's wire
// field names, with line items addressed as "line_items.<index>.<field>".
// Application is total-overwrite per path, so replaying the same map is
// idempotent. Unknown paths and out-of-range indices are ignored.
func ApplyFieldEdits(order models.Order, edits models.FieldEdits) models.Order {
	out := order
	out.LineItems = make([]models.LineItem, len(order.LineItems))
	copy(out.LineItems, order.LineItems)

	for key, value := range edits {
		parts := strings.Split(key, ".")
		if len(parts) == 3 && parts[0] == "line_items" {
			idx, err := strconv.Atoi(parts[1])
			if err != nil || idx < 0 || idx >= len(out.LineItems) {
				continue
			}
			setLineItemField(&out.LineItems[idx], parts[2], value)
			continue
		}
		setOrderField(&out, key, value)
	}
	return out
}

func setOrderField(o *models.Order, key, value string) {
	switch key {
	case "Order_number":
		o.OrderNumber = value
	case "Invoice_Date":
		o.InvoiceDate = value
	case "SO_Date":
		o.SODate = value
	case "Ship_Date":
		o.ShipDate = value
	case "Date_Paid":
		o.DatePaid = value
	case "Customer_ID":
		o.CustomerID = value
	case "SO_No":
		o.SONo = value
	case "PO_No":
		o.PONo = value
	case "Sales_rep":
		o.SalesRep = value
	case "ship_via":
		o.ShipVia = value
	case "Terms":
		o.Terms = value
	case "Recipient_Name":
		o.RecipientName = value
	case "Recipient_Company":
		o.RecipientCompany = value
	case "Address1":
		o.Address1 = value
	case "Address2":
		o.Address2 = value
	case "City":
		o.City = value
	case "State":
		o.State = value
	case "Postal_Code":
		o.PostalCode = value
	case "Country_Code":
		o.CountryCode = value
	case "Phone":
		o.Phone = value
	case "Fax":
		o.Fax = value
	case "Discount":
		setFloat(&o.Discount, value)
	case "Shipping_Handling":
		setFloat(&o.ShippingHandling, value)
	case "Total_WT":
		setFloat(&o.TotalWT, value)
	case "Vol":
		setFloat(&o.Vol, value)
	case "Total_Amount":
		setFloat(&o.TotalAmount, value)
	case "Total_Discount":
		setFloat(&o.TotalDiscount, value)
	case "Total_Discounted_Amount":
		setFloat(&o.TotalDiscountedAmount, value)
	case "Sales_Amount":
		setFloat(&o.SalesAmount, value)
	case "Total_Case":
		setInt(&o.TotalCase, value)
	case "Total_qty":
		setInt(&o.TotalQty, value)
	}
}

func setLineItemField(item *models.LineItem, field, value string) {
	switch field {
	case "line_number":
		item.LineNumber = value
	case "unit":
		item.Unit = value
	case "Item_no":
		item.ItemNo = value
	case "Description":
		item.Description = value
	case "Loc":
		item.Loc = value
	case "Order_Unit":
		if n, err := strconv.Atoi(value); err == nil {
			item.OrderUnit = n
		}
	case "Pack":
		if n, err := strconv.Atoi(value); err == nil {
			item.Pack = n
		}
	case "Ship_Qty":
		if n, err := strconv.Atoi(value); err == nil {
			item.ShipQty = n
		}
	case "Net_Price":
		setFloat(&item.NetPrice, value)
	case "Extended_Price":
		setFloat(&item.ExtendedPrice, value)
	case "Weight":
		setFloat(&item.Weight, value)
	case "Volume":
		setFloat(&item.Volume, value)
	}
}

func setFloat(dst **float64, value string) {
	if f, err := strconv.ParseFloat(value, 64); err == nil {
		*dst = &f
	}
}

func setInt(dst **int, value string) {
	if n, err := strconv.Atoi(value); err == nil {
		*dst = &n
	}
}
