package models

import "errors"

type OrderStatus string

const (
	OrderStatusOpen      OrderStatus = "open"
	OrderStatusClosed    OrderStatus = "closed"
	OrderStatusCancelled OrderStatus = "cancelled"
)

func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusOpen, OrderStatusClosed, OrderStatusCancelled:
		return true
	}
	return false
}

type OrderItemStatus string

const (
	OrderItemStatusPending   OrderItemStatus = "pending"
	OrderItemStatusInKitchen OrderItemStatus = "in_kitchen"
	OrderItemStatusServed    OrderItemStatus = "served"
	OrderItemStatusCancelled OrderItemStatus = "cancelled"
)

func (s OrderItemStatus) IsValid() bool {
	switch s {
	case OrderItemStatusPending, OrderItemStatusInKitchen, OrderItemStatusServed, OrderItemStatusCancelled:
		return true
	}
	return false
}

type PaymentMethod string

const (
	PaymentMethodCash       PaymentMethod = "cash"
	PaymentMethodCreditCard PaymentMethod = "credit_card"
	PaymentMethodOnline     PaymentMethod = "online"
	PaymentMethodOther      PaymentMethod = "other"
)

func (m PaymentMethod) IsValid() bool {
	switch m {
	case PaymentMethodCash, PaymentMethodCreditCard, PaymentMethodOnline, PaymentMethodOther:
		return true
	}
	return false
}

func (m *PaymentMethod) UnmarshalText(b []byte) error {
	v := PaymentMethod(b)
	if !v.IsValid() {
		return errors.New("invalid payment method")
	}
	*m = v
	return nil
}
