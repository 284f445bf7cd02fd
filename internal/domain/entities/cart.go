package entities

import "errors"

var (
	ErrCartLineNotFound = errors.New("cart line not found")
	ErrInvalidQuantity  = errors.New("invalid quantity")
	ErrInvalidUnitPrice = errors.New("invalid unit price")
)

// CartLine is a single product entry in the cart.
//
// Monetary representation:
//   - All prices are integer minor units (centavos). Conversion to display
//     currency happens only at the HTTP boundary.
//   - OriginalUnitPriceCents keeps the pre-discount list price so a coupon
//     removal can restore the exact previous state.

type CartLine struct {
	ProductID              string `json:"product_id"`
	Name                   string `json:"name"`
	UnitPriceCents         int64  `json:"unit_price_cents"`
	Quantity               int    `json:"quantity"`
	OriginalUnitPriceCents int64  `json:"original_unit_price_cents"`
}

// Cart is the session-scoped cart aggregate. Lines are mutated only through
// the Add/Increment/Decrement/Remove operations; quantity is always >= 1
// (a decrement to zero removes the line).

type Cart struct {
	SessionID string     `json:"session_id"`
	Lines     []CartLine `json:"lines"`
}

func (c *Cart) Add(productID, name string, unitPriceCents int64, quantity int) error {
	if quantity < 1 {
		return ErrInvalidQuantity
	}
	if unitPriceCents < 0 {
		return ErrInvalidUnitPrice
	}
	for i := range c.Lines {
		if c.Lines[i].ProductID == productID {
			c.Lines[i].Quantity += quantity
			return nil
		}
	}
	c.Lines = append(c.Lines, CartLine{
		ProductID:              productID,
		Name:                   name,
		UnitPriceCents:         unitPriceCents,
		Quantity:               quantity,
		OriginalUnitPriceCents: unitPriceCents,
	})
	return nil
}

func (c *Cart) Increment(productID string) error {
	for i := range c.Lines {
		if c.Lines[i].ProductID == productID {
			c.Lines[i].Quantity++
			return nil
		}
	}
	return ErrCartLineNotFound
}

// Decrement lowers the quantity by one; reaching zero removes the line.
func (c *Cart) Decrement(productID string) error {
	for i := range c.Lines {
		if c.Lines[i].ProductID == productID {
			c.Lines[i].Quantity--
			if c.Lines[i].Quantity == 0 {
				c.Lines = append(c.Lines[:i], c.Lines[i+1:]...)
			}
			return nil
		}
	}
	return ErrCartLineNotFound
}

func (c *Cart) Remove(productID string) error {
	for i := range c.Lines {
		if c.Lines[i].ProductID == productID {
			c.Lines = append(c.Lines[:i], c.Lines[i+1:]...)
			return nil
		}
	}
	return ErrCartLineNotFound
}

func (c *Cart) IsEmpty() bool {
	return len(c.Lines) == 0
}

// SubtotalCents sums unit price times quantity over all lines. The sum is
// commutative, so line order never affects the result.
func (c *Cart) SubtotalCents() int64 {
	var total int64
	for _, l := range c.Lines {
		total += l.UnitPriceCents * int64(l.Quantity)
	}
	return total
}
