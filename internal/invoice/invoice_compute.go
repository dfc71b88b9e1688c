package invoice

// LineTotals breaks an item line into its base, discount and tax amounts.
type LineTotals struct {
	Base     float64
	Discount float64
	Tax      float64
	Total    float64
}

// ComputeLineTotals applies the percentage discount to the line base and the
// percentage tax to the discounted amount.
func ComputeLineTotals(quantity, unitPrice, discountPct, taxPct float64) LineTotals {
	base := quantity * unitPrice
	discount := base * discountPct / 100
	taxable := base - discount
	tax := taxable * taxPct / 100

	return LineTotals{
		Base:     base,
		Discount: discount,
		Tax:      tax,
		Total:    taxable + tax,
	}
}

// InvoiceTotals aggregates the line amounts and applies withholdings.
type InvoiceTotals struct {
	Subtotal      float64
	TotalDiscount float64
	TotalTaxes    float64
	Total         float64
}

func ComputeInvoiceTotals(lines []LineTotals, taxWithholding, icaWithholding float64) InvoiceTotals {
	var t InvoiceTotals
	for _, l := range lines {
		t.Subtotal += l.Base
		t.TotalDiscount += l.Discount
		t.TotalTaxes += l.Tax
	}
	t.Total = t.Subtotal - t.TotalDiscount + t.TotalTaxes - taxWithholding - icaWithholding
	return t
}
