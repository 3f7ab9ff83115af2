package shopapi

import (
	"context"
)

// Client talks to the remote commerce API that owns products, accounts and orders.
//
//go:generate mockgen -source=api.go -package shopapi -destination client_mock.go Client
type Client interface {
	ListProducts(c context.Context) ([]Product, error)
	GetProduct(c context.Context, productUID string) (Product, error)
	Login(c context.Context, email string, password string) (string, error)
	GetCurrentUser(c context.Context, token string) (User, error)
	SubmitOrder(c context.Context, token string, order Order) error
}
