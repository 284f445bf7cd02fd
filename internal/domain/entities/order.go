package entities

import "time"

// Address is the shipping address captured at checkout. Street/district/city
// fields may be pre-filled from the postal-code lookup; the customer can
// still edit them before submission.

type Address struct {
	PostalCode string `json:"postal_code"`
	Street     string `json:"street"`
	Number     string `json:"number"`
	Complement string `json:"complement,omitempty"`
	District   string `json:"district"`
	City       string `json:"city"`
	State      string `json:"state"`
	Reference  string `json:"reference,omitempty"`
}

// Customer identifies the buyer on the order payload.

type Customer struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	CPF       string `json:"cpf"`
}

// OrderLine is an item as sent to the payment gateway. Depending on the
// coupon mode the unit price is either the discounted price or the original
// list price (with the discount absorbed into the shipping figure).

type OrderLine struct {
	ProductID      string `json:"product_id"`
	Name           string `json:"name"`
	UnitPriceCents int64  `json:"unit_price_cents"`
	Quantity       int    `json:"quantity"`
}

// Order is created once by the checkout payload builder and is immutable
// after submission except for status transitions driven by its charges.

type Order struct {
	ID                   string        `json:"id"`
	Customer             Customer      `json:"customer"`
	Address              Address       `json:"address"`
	Lines                []OrderLine   `json:"lines"`
	CouponCodes          []string      `json:"coupon_codes,omitempty"`
	ShippingFeeCents     int64         `json:"shipping_fee_cents"`
	TotalAtCreationCents int64         `json:"total_at_creation_cents"`
	ChosenPaymentMethod  PaymentMethod `json:"chosen_payment_method,omitempty"`
	CreatedAt            time.Time     `json:"created_at"`
}
