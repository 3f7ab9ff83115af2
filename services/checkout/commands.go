package checkout

import (
	"context"

	"github.com/MarcGrol/shopfront/lib/mylog"
	"github.com/MarcGrol/shopfront/services/cart"
	"github.com/MarcGrol/shopfront/services/checkout/checkoutevents"
	"github.com/MarcGrol/shopfront/services/shopapi"
)

// The commerce API wants a shipping address and payment method up front.
// Collecting these is out of scope for now, so fixed values are sent.
var placeholderShippingAddress = shopapi.ShippingAddress{
	Address:    "123 Main St",
	City:       "Anytown",
	PostalCode: "12345",
	Country:    "USA",
}

const placeholderPaymentMethod = "PayPal"

// submitOrder turns the current cart into an order at the commerce API.
// The cart is only cleared after the API has accepted the order.
func (s *service) submitOrder(c context.Context) (string, error) {
	session, loggedIn, err := s.sessions.Current(c)
	if err != nil {
		return "", err
	}
	if !loggedIn {
		return "", ErrNotLoggedIn
	}

	crt, err := s.carts.CurrentCart(c)
	if err != nil {
		return "", err
	}
	if crt.IsEmpty() {
		return "", ErrEmptyCart
	}

	orderUID := s.uuider.Create()

	s.logger.Log(c, orderUID, mylog.SeverityInfo, "Submit order %s for user %s", orderUID, session.User.UID)

	err = s.client.SubmitOrder(c, session.Token, buildOrder(crt))
	if err != nil {
		s.logger.Log(c, orderUID, mylog.SeverityWarn, "Order %s failed: %s", orderUID, err)

		publishErr := s.publisher.Publish(c, checkoutevents.TopicName, checkoutevents.OrderFailed{
			UserUID: session.User.UID,
			Reason:  err.Error(),
		})
		if publishErr != nil {
			s.logger.Log(c, orderUID, mylog.SeverityError, "Error publishing order-failure: %s", publishErr)
		}

		return "", err
	}

	// Order accepted: the cart is done
	err = s.carts.Clear(c)
	if err != nil {
		return "", err
	}

	summary := crt.Summary()
	err = s.publisher.Publish(c, checkoutevents.TopicName, checkoutevents.OrderPlaced{
		OrderUID:   orderUID,
		UserUID:    session.User.UID,
		TotalPrice: summary.Total.InexactFloat64(),
	})
	if err != nil {
		s.logger.Log(c, orderUID, mylog.SeverityError, "Error publishing order-placement: %s", err)
	}

	return orderUID, nil
}

func buildOrder(crt cart.Cart) shopapi.Order {
	items := make([]shopapi.OrderItem, 0, len(crt.Lines))
	for _, l := range crt.Lines {
		items = append(items, shopapi.OrderItem{
			ProductUID: l.ProductUID,
			Name:       l.Name,
			Quantity:   l.Quantity,
			Price:      l.Price,
		})
	}

	summary := crt.Summary()

	return shopapi.Order{
		Items:           items,
		ShippingAddress: placeholderShippingAddress,
		PaymentMethod:   placeholderPaymentMethod,
		ItemsPrice:      summary.Subtotal.InexactFloat64(),
		TaxPrice:        summary.Tax.InexactFloat64(),
		ShippingPrice:   summary.Shipping.InexactFloat64(),
		TotalPrice:      summary.Total.InexactFloat64(),
	}
}
