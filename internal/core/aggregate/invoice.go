package aggregate

import (
	"fmt"

	"github.com/MikeRez0/eatsadmin/internal/core/domain"
	"github.com/govalues/decimal"
)

// ComputeInvoice derives the financial breakdown of order. No rounding is
// applied; use InvoiceTotal.Display for presentation.
func ComputeInvoice(order domain.Order) (domain.InvoiceTotal, error) {
	if len(order.Items) == 0 {
		return domain.InvoiceTotal{}, fmt.Errorf("order %s: %w", order.ID, domain.ErrEmptyOrder)
	}

	subtotal := decimal.Zero
	for i, item := range order.Items {
		if item.Quantity < 1 {
			return domain.InvoiceTotal{}, fmt.Errorf("order %s item %d: %w", order.ID, i, domain.ErrInvalidQuantity)
		}
		if item.Price.IsNeg() {
			return domain.InvoiceTotal{}, fmt.Errorf("order %s item %d: %w", order.ID, i, domain.ErrNegativePrice)
		}

		qty, err := decimal.New(int64(item.Quantity), 0)
		if err != nil {
			return domain.InvoiceTotal{}, fmt.Errorf("math error:%w", err)
		}
		line, err := item.Price.Mul(qty)
		if err != nil {
			return domain.InvoiceTotal{}, fmt.Errorf("math error:%w", err)
		}
		subtotal, err = subtotal.Add(line)
		if err != nil {
			return domain.InvoiceTotal{}, fmt.Errorf("math error:%w", err)
		}
	}

	deliveryFee := decimal.Zero
	if order.DeliveryType == domain.DeliveryTypeDelivery {
		deliveryFee = domain.DeliveryFee
	}

	serviceFee, err := subtotal.Mul(domain.ServiceFeeRate)
	if err != nil {
		return domain.InvoiceTotal{}, fmt.Errorf("math error:%w", err)
	}

	total, err := subtotal.Add(deliveryFee)
	if err != nil {
		return domain.InvoiceTotal{}, fmt.Errorf("math error:%w", err)
	}
	total, err = total.Add(serviceFee)
	if err != nil {
		return domain.InvoiceTotal{}, fmt.Errorf("math error:%w", err)
	}

	return domain.InvoiceTotal{
		Subtotal:    subtotal,
		DeliveryFee: deliveryFee,
		ServiceFee:  serviceFee,
		Total:       total,
	}, nil
}

// BuildInvoice pairs order with its computed totals.
func BuildInvoice(order domain.Order) (domain.Invoice, error) {
	totals, err := ComputeInvoice(order)
	if err != nil {
		return domain.Invoice{}, err
	}
	return domain.Invoice{
		Order:   order.Clone(),
		Totals:  totals,
		Display: totals.Display(),
	}, nil
}
