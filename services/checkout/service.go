package checkout

import (
	"context"

	"github.com/MarcGrol/shopfront/lib/mylog"
	"github.com/MarcGrol/shopfront/lib/mypublisher"
	"github.com/MarcGrol/shopfront/lib/myuuid"
	"github.com/MarcGrol/shopfront/services/cart"
	"github.com/MarcGrol/shopfront/services/session"
	"github.com/MarcGrol/shopfront/services/shopapi"
)

//go:generate mockgen -source=service.go -package checkout -destination cart_service_mock.go CartService
type CartService interface {
	CurrentCart(c context.Context) (cart.Cart, error)
	Clear(c context.Context) error
}

type service struct {
	sessions  session.Reader
	carts     CartService
	client    shopapi.Client
	publisher mypublisher.Publisher
	uuider    myuuid.UUIDer
	logger    mylog.Logger
}

// Use dependency injection to isolate the infrastructure and easy testing
func NewService(sessions session.Reader, carts CartService, client shopapi.Client, publisher mypublisher.Publisher, uuider myuuid.UUIDer) *service {
	return &service{
		sessions:  sessions,
		carts:     carts,
		client:    client,
		publisher: publisher,
		uuider:    uuider,
		logger:    mylog.New("checkout"),
	}
}
