package myvault

import (
	"context"

	"github.com/MarcGrol/shopfront/lib/mystore"
)

const (
	// CurrentToken is the uid under which the active credential is kept
	CurrentToken = "token"
)

type Token struct {
	AccessToken string
}

type VaultReader interface {
	Get(c context.Context, uid string) (Token, bool, error)
}

//go:generate mockgen -source=vault.go -package myvault -destination vault_mock.go VaultReadWriter
type VaultReadWriter interface {
	Get(c context.Context, uid string) (Token, bool, error)
	Put(c context.Context, uid string, value Token) error
	Delete(c context.Context, uid string) error
}

type vault struct {
	store mystore.Store[Token]
}

func New(c context.Context) (VaultReadWriter, func(), error) {
	store, cleanup, err := mystore.New[Token](c)
	if err != nil {
		return nil, nil, err
	}
	return &vault{store: store}, cleanup, nil
}

func NewWithStore(store mystore.Store[Token]) VaultReadWriter {
	return &vault{store: store}
}

func (v *vault) Get(c context.Context, uid string) (Token, bool, error) {
	return v.store.Get(c, uid)
}

func (v *vault) Put(c context.Context, uid string, value Token) error {
	return v.store.Put(c, uid, value)
}

func (v *vault) Delete(c context.Context, uid string) error {
	return v.store.Delete(c, uid)
}
