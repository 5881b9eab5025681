package domain

import "github.com/govalues/decimal"

var (
	// DeliveryFee is charged once on every order of type delivery.
	DeliveryFee = decimal.MustNew(299, 2)
	// ServiceFeeRate applies to the subtotal of every order.
	ServiceFeeRate = decimal.MustNew(5, 2)
)

// InvoiceTotal is the financial breakdown of one order at full precision.
type InvoiceTotal struct {
	Subtotal    decimal.Decimal `json:"subtotal"`
	DeliveryFee decimal.Decimal `json:"delivery_fee"`
	ServiceFee  decimal.Decimal `json:"service_fee"`
	Total       decimal.Decimal `json:"total"`
}

// Display returns the breakdown rounded to cents.
func (t InvoiceTotal) Display() InvoiceTotal {
	return InvoiceTotal{
		Subtotal:    t.Subtotal.Round(2),
		DeliveryFee: t.DeliveryFee.Round(2),
		ServiceFee:  t.ServiceFee.Round(2),
		Total:       t.Total.Round(2),
	}
}

type Invoice struct {
	Order   Order        `json:"order"`
	Totals  InvoiceTotal `json:"totals"`
	Display InvoiceTotal `json:"display"`
}
