package session

import (
	"github.com/MarcGrol/shopfront/lib/mylog"
	"github.com/MarcGrol/shopfront/lib/mystore"
	"github.com/MarcGrol/shopfront/lib/myvault"
	"github.com/MarcGrol/shopfront/services/shopapi"
)

type service struct {
	userStore mystore.Store[shopapi.User]
	vault     myvault.VaultReadWriter
	client    shopapi.Client
	logger    mylog.Logger
}

// Use dependency injection to isolate the infrastructure and easy testing
func NewService(userStore mystore.Store[shopapi.User], vault myvault.VaultReadWriter, client shopapi.Client) *service {
	return &service{
		userStore: userStore,
		vault:     vault,
		client:    client,
		logger:    mylog.New("session"),
	}
}
