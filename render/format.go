package render

import "strconv"

// Pricelist column backs a fixed 14% discount out of the net price.
const pricelistFactor = 0.86

// Formatting helpers are guarded: a nil value renders as an empty cell, never
// "NaN" or a zero that was not in the data.

func money2(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', 2, 64)
}

func money3(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', 3, 64)
}

// neg2 renders the negated amount, used for the discount line.
func neg2(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(-*v, 'f', 2, 64)
}

// pricelist derives the pricelist cell from the net price.
func pricelist(net *float64) string {
	if net == nil {
		return ""
	}
	return strconv.FormatFloat(*net*pricelistFactor, 'f', 3, 64)
}

// floorPct renders the discount percentage as a floored integer; a missing
// discount shows as 0, matching the source documents.
func floorPct(v *float64) string {
	if v == nil {
		return "0"
	}
	return strconv.Itoa(int(*v))
}

func blankInt(v *int) string {
	if v == nil {
		return ""
	}
	return strconv.Itoa(*v)
}
