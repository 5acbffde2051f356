package models

// Order is a normalized sales order parsed from an uploaded spreadsheet.
// Aggregate fields are precomputed by the parser and trusted at render time;
// optional numerics stay nil when the source column was absent.
type Order struct {
	OrderNumber string `json:"Order_number" bson:"order_number"`
	InvoiceDate string `json:"Invoice_Date" bson:"invoice_date"`
	SODate      string `json:"SO_Date" bson:"so_date"`
	ShipDate    string `json:"Ship_Date" bson:"ship_date"`
	DatePaid    string `json:"Date_Paid" bson:"date_paid"`
	CustomerID  string `json:"Customer_ID" bson:"customer_id"`
	SONo        string `json:"SO_No" bson:"so_no"`
	PONo        string `json:"PO_No" bson:"po_no"`
	SalesRep    string `json:"Sales_rep" bson:"sales_rep"`
	ShipVia     string `json:"ship_via" bson:"ship_via"`
	Terms       string `json:"Terms" bson:"terms"`

	RecipientName    string `json:"Recipient_Name" bson:"recipient_name"`
	RecipientCompany string `json:"Recipient_Company" bson:"recipient_company"`
	Address1         string `json:"Address1" bson:"address1"`
	Address2         string `json:"Address2" bson:"address2"`
	City             string `json:"City" bson:"city"`
	State            string `json:"State" bson:"state"`
	PostalCode       string `json:"Postal_Code" bson:"postal_code"`
	CountryCode      string `json:"Country_Code" bson:"country_code"`
	Phone            string `json:"Phone" bson:"phone"`
	Fax              string `json:"Fax" bson:"fax"`

	Discount         *float64 `json:"Discount,omitempty" bson:"discount,omitempty"`
	ShippingHandling *float64 `json:"Shipping_Handling,omitempty" bson:"shipping_handling,omitempty"`

	LineItems []LineItem `json:"line_items" bson:"line_items"`

	TotalCase             *int     `json:"Total_Case,omitempty" bson:"total_case,omitempty"`
	TotalWT               *float64 `json:"Total_WT,omitempty" bson:"total_wt,omitempty"`
	Vol                   *float64 `json:"Vol,omitempty" bson:"vol,omitempty"`
	TotalQty              *int     `json:"Total_qty,omitempty" bson:"total_qty,omitempty"`
	TotalAmount           *float64 `json:"Total_Amount,omitempty" bson:"total_amount,omitempty"`
	TotalDiscount         *float64 `json:"Total_Discount,omitempty" bson:"total_discount,omitempty"`
	TotalDiscountedAmount *float64 `json:"Total_Discounted_Amount,omitempty" bson:"total_discounted_amount,omitempty"`
	SalesAmount           *float64 `json:"Sales_Amount,omitempty" bson:"sales_amount,omitempty"`
}

// LineItem is one shipped line of an order. ExtendedPrice is computed
// upstream as ShipQty * NetPrice; the render layer only formats it.
type LineItem struct {
	LineNumber    string   `json:"line_number" bson:"line_number"`
	OrderUnit     int      `json:"Order_Unit" bson:"order_unit"`
	Unit          string   `json:"unit" bson:"unit"`
	Pack          int      `json:"Pack" bson:"pack"`
	ItemNo        string   `json:"Item_no" bson:"item_no"`
	Description   string   `json:"Description" bson:"description"`
	ShipQty       int      `json:"Ship_Qty" bson:"ship_qty"`
	NetPrice      *float64 `json:"Net_Price,omitempty" bson:"net_price,omitempty"`
	ExtendedPrice *float64 `json:"Extended_Price,omitempty" bson:"extended_price,omitempty"`
	Weight        *float64 `json:"Weight,omitempty" bson:"weight,omitempty"`
	Volume        *float64 `json:"Volume,omitempty" bson:"volume,omitempty"`
	Loc           string   `json:"Loc" bson:"loc"`
}
