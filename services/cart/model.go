package cart

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// CartLine is one product entry in the cart. Name, price and image are
// captured when the line is first added and never re-fetched afterwards.
type CartLine struct {
	ProductUID string  `json:"id"`
	Name       string  `json:"name"`
	Price      float64 `json:"price"`
	Image      string  `json:"image"`
	Quantity   int     `json:"quantity"`
}

func (l CartLine) GetPriceDisplay() string {
	return fmt.Sprintf("$%.2f", l.Price)
}

// Cart is an ordered sequence of lines, at most one per product.
type Cart struct {
	Lines []CartLine `json:"lines"`
}

func (crt Cart) IsEmpty() bool {
	return len(crt.Lines) == 0
}

func (crt Cart) ItemCount() int {
	count := 0
	for _, l := range crt.Lines {
		count += l.Quantity
	}
	return count
}

var (
	shippingFee = decimal.RequireFromString("5.99")
	taxRate     = decimal.RequireFromString("0.08")
)

type Summary struct {
	Subtotal decimal.Decimal
	Shipping decimal.Decimal
	Tax      decimal.Decimal
	Total    decimal.Decimal
}

// Summary derives subtotal, shipping, tax and total from the current lines.
// It is recomputed on every call so the amounts can never drift from the cart.
func (crt Cart) Summary() Summary {
	subtotal := decimal.Zero
	for _, l := range crt.Lines {
		subtotal = subtotal.Add(decimal.NewFromFloat(l.Price).Mul(decimal.NewFromInt(int64(l.Quantity))))
	}

	shipping := decimal.Zero
	if subtotal.IsPositive() {
		shipping = shippingFee
	}

	tax := subtotal.Mul(taxRate)

	return Summary{
		Subtotal: subtotal,
		Shipping: shipping,
		Tax:      tax,
		Total:    subtotal.Add(shipping).Add(tax),
	}
}

func (s Summary) GetSubtotalDisplay() string {
	return "$" + s.Subtotal.StringFixed(2)
}

func (s Summary) GetShippingDisplay() string {
	return "$" + s.Shipping.StringFixed(2)
}

func (s Summary) GetTaxDisplay() string {
	return "$" + s.Tax.StringFixed(2)
}

func (s Summary) GetTotalDisplay() string {
	return "$" + s.Total.StringFixed(2)
}
