package catalog

import (
	"github.com/MarcGrol/shopfront/lib/mylog"
	"github.com/MarcGrol/shopfront/services/shopapi"
)

type service struct {
	client shopapi.Client
	logger mylog.Logger
}

// Use dependency injection to isolate the infrastructure and easy testing
func NewService(client shopapi.Client) *service {
	return &service{
		client: client,
		logger: mylog.New("catalog"),
	}
}
