package contracttests

import (
	"context"

	"github.com/MarcGrol/shopfront/lib/mystore"
	"github.com/MarcGrol/shopfront/lib/myuuid"
	"github.com/MarcGrol/shopfront/services/shopapi"
)

// FakeCommerceAPI is an in-process stand-in for the remote commerce API.
// It answers with the same success and rejection semantics as the real one.
type FakeCommerceAPI struct {
	uuider       myuuid.RealUUIDer
	ProductStore *mystore.InMemoryStore[shopapi.Product]
	user         shopapi.User
	password     string
	tokens       map[string]bool
}

func NewFakeCommerceAPI() *FakeCommerceAPI {
	productStore, _, _ := mystore.NewInMemoryStore[shopapi.Product](context.Background())
	api := &FakeCommerceAPI{
		ProductStore: productStore,
		user: shopapi.User{
			UID:   "user-1",
			Name:  "John Doe",
			Email: "john@example.com",
		},
		password: "secret",
		tokens:   map[string]bool{},
	}

	for _, p := range []shopapi.Product{
		{UID: "p1", Name: "Phone", Price: 10.00, Image: "/img/phone.jpg", Description: "A phone", Category: "Electronics", CountInStock: 3},
		{UID: "p2", Name: "Case", Price: 5.00, Image: "/img/case.jpg", Description: "A case", Category: "Electronics", CountInStock: 1},
		{UID: "p3", Name: "Poster", Price: 2.50, Image: "/img/poster.jpg", Description: "A poster", Category: "Home", CountInStock: 0},
	} {
		_ = api.ProductStore.Put(context.Background(), p.UID, p)
	}

	return api
}

func (a *FakeCommerceAPI) ListProducts(c context.Context) ([]shopapi.Product, error) {
	return a.ProductStore.Query(c, nil, "Name")
}

func (a *FakeCommerceAPI) GetProduct(c context.Context, productUID string) (shopapi.Product, error) {
	product, exists, err := a.ProductStore.Get(c, productUID)
	if err != nil {
		return shopapi.Product{}, err
	}
	if !exists {
		return shopapi.Product{}, shopapi.RejectionError{Message: "Product not found"}
	}
	return product, nil
}

func (a *FakeCommerceAPI) Login(c context.Context, email string, password string) (string, error) {
	if email != a.user.Email || password != a.password {
		return "", shopapi.RejectionError{Message: "Invalid email or password"}
	}

	token := a.uuider.Create()
	a.tokens[token] = true

	return token, nil
}

func (a *FakeCommerceAPI) GetCurrentUser(c context.Context, token string) (shopapi.User, error) {
	if !a.tokens[token] {
		return shopapi.User{}, shopapi.RejectionError{Message: "Not authorized"}
	}
	return a.user, nil
}

func (a *FakeCommerceAPI) SubmitOrder(c context.Context, token string, order shopapi.Order) error {
	if !a.tokens[token] {
		return shopapi.RejectionError{Message: "Not authorized"}
	}
	if len(order.Items) == 0 {
		return shopapi.RejectionError{Message: "No order items"}
	}

	for _, item := range order.Items {
		product, exists, err := a.ProductStore.Get(c, item.ProductUID)
		if err != nil {
			return err
		}
		if !exists {
			return shopapi.RejectionError{Message: "Product not found"}
		}
		if item.Quantity > product.CountInStock {
			return shopapi.RejectionError{Message: "Out of stock"}
		}
	}

	for _, item := range order.Items {
		product, _, err := a.ProductStore.Get(c, item.ProductUID)
		if err != nil {
			return err
		}
		product.CountInStock -= item.Quantity
		err = a.ProductStore.Put(c, product.UID, product)
		if err != nil {
			return err
		}
	}

	return nil
}
