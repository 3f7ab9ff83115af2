package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSummaryEmptyCart(t *testing.T) {
	crt := Cart{}

	summary := crt.Summary()

	assert.True(t, crt.IsEmpty())
	assert.Equal(t, 0, crt.ItemCount())
	assert.Equal(t, "$0.00", summary.GetSubtotalDisplay())
	assert.Equal(t, "$0.00", summary.GetShippingDisplay())
	assert.Equal(t, "$0.00", summary.GetTaxDisplay())
	assert.Equal(t, "$0.00", summary.GetTotalDisplay())
}

func TestSummaryFilledCart(t *testing.T) {
	crt := Cart{
		Lines: []CartLine{
			{ProductUID: "p1", Name: "Phone", Price: 10.00, Quantity: 2},
			{ProductUID: "p2", Name: "Case", Price: 5.00, Quantity: 1},
		},
	}

	summary := crt.Summary()

	assert.False(t, crt.IsEmpty())
	assert.Equal(t, 3, crt.ItemCount())
	assert.Equal(t, "$25.00", summary.GetSubtotalDisplay())
	assert.Equal(t, "$5.99", summary.GetShippingDisplay())
	assert.Equal(t, "$2.00", summary.GetTaxDisplay())
	assert.Equal(t, "$32.99", summary.GetTotalDisplay())
}

func TestSummaryShippingOnlyWhenNonEmpty(t *testing.T) {
	crt := Cart{
		Lines: []CartLine{
			{ProductUID: "p1", Name: "Sticker", Price: 0.50, Quantity: 1},
		},
	}

	summary := crt.Summary()

	assert.Equal(t, "$0.50", summary.GetSubtotalDisplay())
	assert.Equal(t, "$5.99", summary.GetShippingDisplay())
	assert.Equal(t, "$0.04", summary.GetTaxDisplay())
	assert.Equal(t, "$6.53", summary.GetTotalDisplay())
}
