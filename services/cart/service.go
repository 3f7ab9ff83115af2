package cart

import (
	"github.com/MarcGrol/shopfront/lib/mylog"
	"github.com/MarcGrol/shopfront/lib/mypublisher"
	"github.com/MarcGrol/shopfront/lib/mypubsub"
	"github.com/MarcGrol/shopfront/lib/mystore"
)

type service struct {
	cartStore  mystore.Store[Cart]
	publisher  mypublisher.Publisher
	subscriber mypubsub.PubSub
	logger     mylog.Logger
}

// Use dependency injection to isolate the infrastructure and easy testing
func NewService(store mystore.Store[Cart], subscriber mypubsub.PubSub, publisher mypublisher.Publisher) *service {
	return &service{
		cartStore:  store,
		publisher:  publisher,
		subscriber: subscriber,
		logger:     mylog.New("cart"),
	}
}
