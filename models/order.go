package models

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "Pending"
	OrderStatusProcessing OrderStatus = "Processing"
	OrderStatusDelivered  OrderStatus = "Delivered"
	OrderStatusCancel     OrderStatus = "Cancel"
)

// FirstInvoice is the invoice number given to the first order of a store.
const FirstInvoice int64 = 10000

// Valid reports whether s is one of the known order statuses.
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPending, OrderStatusProcessing, OrderStatusDelivered, OrderStatusCancel:
		return true
	}
	return false
}

// UserInfo is the customer snapshot taken at checkout.
type UserInfo struct {
	Name    string `bson:"name,omitempty" json:"name,omitempty"`
	Email   string `bson:"email,omitempty" json:"email,omitempty"`
	Contact string `bson:"contact,omitempty" json:"contact,omitempty"`
	Address string `bson:"address,omitempty" json:"address,omitempty"`
	City    string `bson:"city,omitempty" json:"city,omitempty"`
	Country string `bson:"country,omitempty" json:"country,omitempty"`
	ZipCode string `bson:"zipCode,omitempty" json:"zipCode,omitempty"`
}

type Order struct {
	ID             primitive.ObjectID       `bson:"_id,omitempty" json:"_id"`
	User           *primitive.ObjectID      `bson:"user,omitempty" json:"user,omitempty"`
	Invoice        int64                    `bson:"invoice" json:"invoice"`
	Cart           []map[string]interface{} `bson:"cart" json:"cart"`
	UserInfo       UserInfo                 `bson:"user_info" json:"user_info"`
	SubTotal       float64                  `bson:"subTotal" json:"subTotal"`
	ShippingCost   float64                  `bson:"shippingCost" json:"shippingCost"`
	Discount       float64                  `bson:"discount" json:"discount"`
	Total          float64                  `bson:"total" json:"total"`
	ShippingOption string                   `bson:"shippingOption,omitempty" json:"shippingOption,omitempty"`
	PaymentMethod  string                   `bson:"paymentMethod" json:"paymentMethod"`
	CardInfo       map[string]interface{}   `bson:"cardInfo,omitempty" json:"cardInfo,omitempty"`
	Status         OrderStatus              `bson:"status,omitempty" json:"status,omitempty"`
	CreatedAt      time.Time                `bson:"createdAt" json:"createdAt"`
	UpdatedAt      time.Time                `bson:"updatedAt" json:"updatedAt"`
}

var (
	ErrInvalidStatus        = errors.New("invalid order status")
	ErrMissingPaymentMethod = errors.New("payment method is required")
)

// Validate checks the fields the store requires before an order is persisted.
func (o *Order) Validate() error {
	if o.PaymentMethod == "" {
		return ErrMissingPaymentMethod
	}
	if o.Status != "" && !o.Status.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidStatus, o.Status)
	}
	for name, v := range map[string]float64{
		"subTotal":     o.SubTotal,
		"shippingCost": o.ShippingCost,
		"discount":     o.Discount,
		"total":        o.Total,
	} {
		if v < 0 {
			return fmt.Errorf("%s must not be negative", name)
		}
	}
	return nil
}

// ComputeTotal returns subTotal + shippingCost - discount, rounded to cents.
func (o *Order) ComputeTotal() float64 {
	total := decimal.NewFromFloat(o.SubTotal).
		Add(decimal.NewFromFloat(o.ShippingCost)).
		Sub(decimal.NewFromFloat(o.Discount)).
		Round(2)
	f, _ := total.Float64()
	return f
}

// TotalMatches reports whether Total agrees with ComputeTotal to the cent.
func (o *Order) TotalMatches() bool {
	return decimal.NewFromFloat(o.Total).Round(2).Equal(decimal.NewFromFloat(o.ComputeTotal()))
}
