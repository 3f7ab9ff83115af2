package cart

import (
	"context"
	"fmt"

	"github.com/MarcGrol/shopfront/lib/myhttp"
	"github.com/MarcGrol/shopfront/lib/mylog"
	"github.com/MarcGrol/shopfront/services/checkout/checkoutevents"
)

func (s *service) Subscribe(c context.Context) error {
	err := s.subscriber.CreateTopic(c, checkoutevents.TopicName)
	if err != nil {
		return fmt.Errorf("error creating topic %s: %s", checkoutevents.TopicName, err)
	}

	err = s.subscriber.Subscribe(c, checkoutevents.TopicName, myhttp.GuessHostnameWithScheme()+"/api/cart/event")
	if err != nil {
		return fmt.Errorf("error subscribing to topic %s: %s", checkoutevents.TopicName, err)
	}

	return nil
}

// OnOrderPlaced empties the cart. Clearing an already empty cart is a no-op,
// so redelivery of the same event is harmless.
func (s *service) OnOrderPlaced(c context.Context, topic string, event checkoutevents.OrderPlaced) error {
	s.logger.Log(c, event.OrderUID, mylog.SeverityInfo, "Order %s placed, clearing cart", event.OrderUID)

	return s.Clear(c)
}

func (s *service) OnOrderFailed(c context.Context, topic string, event checkoutevents.OrderFailed) error {
	// Keep the cart intact so the user can retry
	return nil
}
