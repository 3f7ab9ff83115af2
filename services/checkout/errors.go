package checkout

import "errors"

var (
	// ErrNotLoggedIn indicates that checkout was attempted without an active session.
	ErrNotLoggedIn = errors.New("not logged in")

	// ErrEmptyCart indicates that checkout was attempted with nothing in the cart.
	ErrEmptyCart = errors.New("cart is empty")
)
