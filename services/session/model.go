package session

import (
	"context"

	"github.com/MarcGrol/shopfront/services/shopapi"
)

// Session is the authenticated state of the storefront: the bearer token
// obtained at login and the account it belongs to.
type Session struct {
	User  shopapi.User
	Token string
}

//go:generate mockgen -source=model.go -package session -destination reader_mock.go Reader
type Reader interface {
	Current(c context.Context) (Session, bool, error)
}
