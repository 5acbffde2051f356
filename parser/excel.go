// Package parser reads spreadsheet-encoded sales orders. Rows are grouped by
// order number and each group becomes one normalized Order with its line
// items and precomputed aggregates.
package parser

import (
	"bytes"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"mjtoys/models"
)

var dateColumns = map[string]bool{
	"Invoice_Date": true,
	"SO_Date":      true,
	"Date_Paid":    true,
	"Ship_Date":    true,
}

var dateLayouts = []string{
	"01/02/2006",
	"1/2/2006",
	"2006-01-02",
	"2006-01-02 15:04:05",
	"01-02-06",
	"1/2/06 15:04",
	time.RFC3339,
}

// ParseOrders reads the first sheet of an xlsx workbook and returns one order
// per distinct Order_number, sorted by order number. The sheet must carry a
// header row with an Order_number column.
func ParseOrders(content []byte) ([]models.Order, error) {
	f, err := excelize.OpenReader(bytes.NewReader(content))
	if err != nil {
		return nil, fmt.Errorf("not a readable spreadsheet: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, errors.New("spreadsheet has no sheets")
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, err
	}
	if len(rows) < 2 {
		return nil, errors.New("no order rows found in spreadsheet")
	}

	header := map[string]int{}
	for i, name := range rows[0] {
		header[strings.TrimSpace(name)] = i
	}
	if _, ok := header["Order_number"]; !ok {
		return nil, errors.New("spreadsheet has no Order_number column")
	}

	groups := map[string][][]string{}
	for _, row := range rows[1:] {
		orderNo := strings.TrimSpace(cell(row, header, "Order_number"))
		if orderNo == "" {
			continue
		}
		groups[orderNo] = append(groups[orderNo], row)
	}
	if len(groups) == 0 {
		return nil, errors.New("no orders found in spreadsheet")
	}

	numbers := make([]string, 0, len(groups))
	for n := range groups {
		numbers = append(numbers, n)
	}
	sort.Strings(numbers)

	orders := make([]models.Order, 0, len(numbers))
	for _, n := range numbers {
		orders = append(orders, buildOrder(n, groups[n], header))
	}
	return orders, nil
}

func buildOrder(orderNumber string, rows [][]string, header map[string]int) models.Order {
	first := rows[0]
	discount := floatCell(first, header, "Discount")
	shipping := floatCell(first, header, "Shipping_Handling")

	order := models.Order{
		OrderNumber:      orderNumber,
		InvoiceDate:      dateCell(first, header, "Invoice_Date"),
		SODate:           dateCell(first, header, "SO_Date"),
		ShipDate:         dateCell(first, header, "Ship_Date"),
		DatePaid:         dateCell(first, header, "Date_Paid"),
		CustomerID:       cell(first, header, "Customer_ID"),
		SONo:             cell(first, header, "SO_No"),
		PONo:             cell(first, header, "PO_No"),
		SalesRep:         cell(first, header, "Sales_rep"),
		ShipVia:          cell(first, header, "ship_via"),
		Terms:            cell(first, header, "Terms"),
		RecipientName:    cell(first, header, "Recipient_Name"),
		RecipientCompany: cell(first, header, "Recipient_Company"),
		Address1:         cell(first, header, "Address1"),
		Address2:         cell(first, header, "Address2"),
		City:             cell(first, header, "City"),
		State:            cell(first, header, "State"),
		PostalCode:       cell(first, header, "Postal_Code"),
		CountryCode:      cell(first, header, "Country_Code"),
		Phone:            cell(first, header, "Phone"),
		Fax:              cell(first, header, "Fax"),
		Discount:         &discount,
		ShippingHandling: &shipping,
	}

	totalAmount := decimal.Zero
	totalCase, totalQty := 0, 0
	totalWT, vol := decimal.Zero, decimal.Zero

	for i, row := range rows {
		orderUnit := intCell(row, header, "Order_Unit")
		pack := intCell(row, header, "Pack")
		shipQty := orderUnit * pack
		totalQty += shipQty
		totalCase += orderUnit

		netPrice := floatCell(row, header, "Net_Price")
		extended := decimal.NewFromFloat(netPrice).Mul(decimal.NewFromInt(int64(shipQty)))
		totalAmount = totalAmount.Add(extended)

		lineWeight := floatCell(row, header, "Total_WT")
		lineVolume := floatCell(row, header, "Vol")
		totalWT = totalWT.Add(decimal.NewFromFloat(lineWeight))
		vol = vol.Add(decimal.NewFromFloat(lineVolume))

		lineNumber := cell(row, header, "line_number")
		if lineNumber == "" {
			lineNumber = strconv.Itoa(i + 1)
		}
		unit := cell(row, header, "unit")
		if unit == "" {
			unit = "CS"
		}

		extendedF := extended.InexactFloat64()
		np := netPrice
		lw := lineWeight
		lv := lineVolume
		order.LineItems = append(order.LineItems, models.LineItem{
			LineNumber:    lineNumber,
			OrderUnit:     orderUnit,
			Unit:          unit,
			Pack:          pack,
			ItemNo:        cell(row, header, "Item_no"),
			Description:   cell(row, header, "Description"),
			ShipQty:       shipQty,
			NetPrice:      &np,
			ExtendedPrice: &extendedF,
			Weight:        &lw,
			Volume:        &lv,
			Loc:           cell(row, header, "Loc"),
		})
	}

	totalDiscount := totalAmount.Mul(decimal.NewFromFloat(discount)).Div(decimal.NewFromInt(100))
	discounted := totalAmount.Sub(totalDiscount).Add(decimal.NewFromFloat(shipping))

	totalAmountF := totalAmount.InexactFloat64()
	totalDiscountF := totalDiscount.InexactFloat64()
	discountedF := discounted.InexactFloat64()
	salesAmountF := totalAmountF
	totalWTF := totalWT.InexactFloat64()
	volF := vol.InexactFloat64()

	order.TotalCase = &totalCase
	order.TotalQty = &totalQty
	order.TotalWT = &totalWTF
	order.Vol = &volF
	order.TotalAmount = &totalAmountF
	order.TotalDiscount = &totalDiscountF
	order.TotalDiscountedAmount = &discountedF
	order.SalesAmount = &salesAmountF
	return order
}

func cell(row []string, header map[string]int, name string) string {
	idx, ok := header[name]
	if !ok || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

func intCell(row []string, header map[string]int, name string) int {
	s := cell(row, header, name)
	if s == "" {
		return 0
	}
	if n, err := strconv.Atoi(s); err == nil {
		return n
	}
	// Whole numbers sometimes come through as "12.0".
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return int(f)
	}
	return 0
}

func floatCell(row []string, header map[string]int, name string) float64 {
	s := cell(row, header, name)
	if s == "" {
		return 0
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return f
}

// dateCell normalizes a date cell to MM/DD/YYYY. Unparseable values come
// back empty rather than failing the whole parse.
func dateCell(row []string, header map[string]int, name string) string {
	if !dateColumns[name] {
		return cell(row, header, name)
	}
	s := cell(row, header, name)
	if s == "" {
		return ""
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format("01/02/2006")
		}
	}
	// Excel serial date fallback.
	if serial, err := strconv.ParseFloat(s, 64); err == nil && serial > 0 {
		if t, err := excelize.ExcelDateToTime(serial, false); err == nil {
			return t.Format("01/02/2006")
		}
	}
	return ""
}
