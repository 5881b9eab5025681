package domain

import (
	"fmt"
	"time"

	"github.com/govalues/decimal"
)

type OrderStatus string

const (
	OrderStatusDelivered OrderStatus = "delivered"
	OrderStatusCanceled  OrderStatus = "canceled"
)

func ParseOrderStatus(s string) (OrderStatus, error) {
	switch st := OrderStatus(s); st {
	case OrderStatusDelivered, OrderStatusCanceled:
		return st, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownOrderStatus, s)
}

type DeliveryType string

const (
	DeliveryTypeDelivery DeliveryType = "delivery"
	DeliveryTypeTakeaway DeliveryType = "takeaway"
)

func ParseDeliveryType(s string) (DeliveryType, error) {
	switch dt := DeliveryType(s); dt {
	case DeliveryTypeDelivery, DeliveryTypeTakeaway:
		return dt, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownDeliveryType, s)
}

type PaymentMethod string

const (
	PaymentMethodCOD    PaymentMethod = "cod"
	PaymentMethodOnline PaymentMethod = "online"
)

func ParsePaymentMethod(s string) (PaymentMethod, error) {
	switch pm := PaymentMethod(s); pm {
	case PaymentMethodCOD, PaymentMethodOnline:
		return pm, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownPaymentMethod, s)
}

type OrderItem struct {
	Name     string          `json:"name"`
	Quantity int             `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
}

// Order is one delivery transaction. Orders are built once by a
// repository and never changed afterwards; CanceledBy is only set on
// canceled orders.
type Order struct {
	ID              string        `json:"id"`
	Customer        string        `json:"customer"`
	Restaurant      string        `json:"restaurant"`
	Items           []OrderItem   `json:"items"`
	Status          OrderStatus   `json:"status"`
	CanceledBy      string        `json:"canceled_by,omitempty"`
	PlacedAt        time.Time     `json:"placed_at"`
	DeliveryType    DeliveryType  `json:"delivery_type"`
	PaymentMethod   PaymentMethod `json:"payment_method"`
	DeliveryAddress string        `json:"delivery_address,omitempty"`
}

// Validate checks the record-level invariants a source must uphold.
// Item level checks belong to invoice computation.
func (o *Order) Validate() error {
	if o.ID == "" {
		return fmt.Errorf("%w: empty order id", ErrInvalidOrder)
	}
	if _, err := ParseOrderStatus(string(o.Status)); err != nil {
		return err
	}
	if o.Status == OrderStatusDelivered && o.CanceledBy != "" {
		return fmt.Errorf("%w: order %s delivered but canceled by %q", ErrInvalidOrder, o.ID, o.CanceledBy)
	}
	if _, err := ParseDeliveryType(string(o.DeliveryType)); err != nil {
		return err
	}
	if _, err := ParsePaymentMethod(string(o.PaymentMethod)); err != nil {
		return err
	}
	return nil
}

// Clone returns a copy that shares no item storage with o.
func (o Order) Clone() Order {
	items := make([]OrderItem, len(o.Items))
	copy(items, o.Items)
	o.Items = items
	return o
}
