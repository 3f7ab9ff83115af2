package cart

import (
	"context"

	"github.com/MarcGrol/shopfront/lib/myerrors"
	"github.com/MarcGrol/shopfront/lib/mylog"
	"github.com/MarcGrol/shopfront/services/cart/cartevents"
)

// cartKey is the single uid under which the cart is persisted
const cartKey = "cart"

// fetchCart never fails: an absent or unreadable persisted cart yields an empty one
func (s *service) fetchCart(c context.Context) Cart {
	crt, found, err := s.cartStore.Get(c, cartKey)
	if err != nil {
		s.logger.Log(c, cartKey, mylog.SeverityWarn, "Persisted cart is unreadable, starting empty: %s", err)
		return Cart{}
	}
	if !found {
		return Cart{}
	}
	return crt
}

// CurrentCart hydrates the cart from the persistent store.
func (s *service) CurrentCart(c context.Context) (Cart, error) {
	return s.fetchCart(c), nil
}

func (s *service) addLine(c context.Context, line CartLine) (Cart, error) {
	s.logger.Log(c, line.ProductUID, mylog.SeverityInfo, "Add product %s to cart", line.ProductUID)

	var crt Cart
	err := s.cartStore.RunInTransaction(c, func(c context.Context) error {
		crt = s.fetchCart(c)

		quantity := 1
		existing := false
		for i, l := range crt.Lines {
			if l.ProductUID == line.ProductUID {
				// First-add name, price and image win
				crt.Lines[i].Quantity++
				quantity = crt.Lines[i].Quantity
				existing = true
				break
			}
		}
		if !existing {
			line.Quantity = 1
			crt.Lines = append(crt.Lines, line)
		}

		err := s.cartStore.Put(c, cartKey, crt)
		if err != nil {
			return myerrors.NewInternalError(err)
		}

		err = s.publisher.Publish(c, cartevents.TopicName, cartevents.CartItemAdded{
			ProductUID: line.ProductUID,
			Quantity:   quantity,
		})
		if err != nil {
			return myerrors.NewInternalError(err)
		}

		return nil
	})
	if err != nil {
		return Cart{}, err
	}

	return crt, nil
}

func (s *service) changeQuantity(c context.Context, productUID string, delta int) (Cart, error) {
	s.logger.Log(c, productUID, mylog.SeverityInfo, "Change quantity of product %s by %d", productUID, delta)

	var crt Cart
	err := s.cartStore.RunInTransaction(c, func(c context.Context) error {
		crt = s.fetchCart(c)

		idx := -1
		for i, l := range crt.Lines {
			if l.ProductUID == productUID {
				idx = i
				break
			}
		}
		if idx < 0 {
			// unknown product: nothing to do
			return nil
		}

		newQuantity := crt.Lines[idx].Quantity + delta
		if newQuantity <= 0 {
			return s.removeLineInTransaction(c, &crt, productUID)
		}

		crt.Lines[idx].Quantity = newQuantity

		err := s.cartStore.Put(c, cartKey, crt)
		if err != nil {
			return myerrors.NewInternalError(err)
		}

		err = s.publisher.Publish(c, cartevents.TopicName, cartevents.CartQuantityChanged{
			ProductUID: productUID,
			Quantity:   newQuantity,
		})
		if err != nil {
			return myerrors.NewInternalError(err)
		}

		return nil
	})
	if err != nil {
		return Cart{}, err
	}

	return crt, nil
}

func (s *service) removeLine(c context.Context, productUID string) (Cart, error) {
	s.logger.Log(c, productUID, mylog.SeverityInfo, "Remove product %s from cart", productUID)

	var crt Cart
	err := s.cartStore.RunInTransaction(c, func(c context.Context) error {
		crt = s.fetchCart(c)
		return s.removeLineInTransaction(c, &crt, productUID)
	})
	if err != nil {
		return Cart{}, err
	}

	return crt, nil
}

func (s *service) removeLineInTransaction(c context.Context, crt *Cart, productUID string) error {
	remaining := make([]CartLine, 0, len(crt.Lines))
	removed := false
	for _, l := range crt.Lines {
		if l.ProductUID == productUID {
			removed = true
			continue
		}
		remaining = append(remaining, l)
	}
	if !removed {
		// unknown product: nothing to do
		return nil
	}
	crt.Lines = remaining

	err := s.cartStore.Put(c, cartKey, *crt)
	if err != nil {
		return myerrors.NewInternalError(err)
	}

	err = s.publisher.Publish(c, cartevents.TopicName, cartevents.CartItemRemoved{
		ProductUID: productUID,
	})
	if err != nil {
		return myerrors.NewInternalError(err)
	}

	return nil
}

// Clear drops the persisted cart entirely, so that an emptied cart and a
// never-filled cart are indistinguishable on the next hydration.
func (s *service) Clear(c context.Context) error {
	s.logger.Log(c, cartKey, mylog.SeverityInfo, "Clear cart")

	return s.cartStore.RunInTransaction(c, func(c context.Context) error {
		err := s.cartStore.Delete(c, cartKey)
		if err != nil {
			return myerrors.NewInternalError(err)
		}

		err = s.publisher.Publish(c, cartevents.TopicName, cartevents.CartCleared{})
		if err != nil {
			return myerrors.NewInternalError(err)
		}

		return nil
	})
}
