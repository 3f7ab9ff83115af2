package shopapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/MarcGrol/shopfront/lib/myhttpclient"
)

func TestClient(t *testing.T) {

	t.Run("List products", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		c, sut, sender := setup(ctrl)

		// given
		sender.EXPECT().Send(c, http.MethodGet, "http://shop.local/api/products", nil, nil).
			Return(200, []byte(`{"success":true,"data":[{"_id":"p1","name":"Tennis racket","price":169.00,"image":"racket.jpg","category":"sport","countInStock":3}]}`), nil)

		// when
		products, err := sut.ListProducts(c)

		// then
		assert.NoError(t, err)
		assert.Len(t, products, 1)
		assert.Equal(t, "p1", products[0].UID)
		assert.Equal(t, "Tennis racket", products[0].Name)
		assert.Equal(t, 169.00, products[0].Price)
	})

	t.Run("List products, service rejects", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		c, sut, sender := setup(ctrl)

		// given
		sender.EXPECT().Send(c, http.MethodGet, "http://shop.local/api/products", nil, nil).
			Return(500, []byte(`{"success":false}`), nil)

		// when
		_, err := sut.ListProducts(c)

		// then
		rejection := RejectionError{}
		assert.True(t, errors.As(err, &rejection))
		assert.Equal(t, "failed to load products", rejection.Message)
	})

	t.Run("Get product", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		c, sut, sender := setup(ctrl)

		// given
		sender.EXPECT().Send(c, http.MethodGet, "http://shop.local/api/products/p1", nil, nil).
			Return(200, []byte(`{"success":true,"data":{"_id":"p1","name":"Tennis racket","price":169.00,"description":"A fine racket"}}`), nil)

		// when
		product, err := sut.GetProduct(c, "p1")

		// then
		assert.NoError(t, err)
		assert.Equal(t, "A fine racket", product.Description)
	})

	t.Run("Login", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		c, sut, sender := setup(ctrl)

		// given
		sender.EXPECT().Send(c, http.MethodPost, "http://shop.local/api/auth/login", nil,
			[]byte(`{"email":"eva@shop.local","password":"secret"}`)).
			Return(200, []byte(`{"success":true,"token":"my-token"}`), nil)

		// when
		token, err := sut.Login(c, "eva@shop.local", "secret")

		// then
		assert.NoError(t, err)
		assert.Equal(t, "my-token", token)
	})

	t.Run("Login, wrong credentials", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		c, sut, sender := setup(ctrl)

		// given
		sender.EXPECT().Send(c, http.MethodPost, "http://shop.local/api/auth/login", nil, gomock.Any()).
			Return(401, []byte(`{"success":false,"message":"Invalid credentials"}`), nil)

		// when
		_, err := sut.Login(c, "eva@shop.local", "wrong")

		// then
		rejection := RejectionError{}
		assert.True(t, errors.As(err, &rejection))
		assert.Equal(t, "Invalid credentials", rejection.Message)
	})

	t.Run("Get current user sends bearer token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		c, sut, sender := setup(ctrl)

		// given
		sender.EXPECT().Send(c, http.MethodGet, "http://shop.local/api/auth/me",
			map[string]string{"Authorization": "Bearer my-token"}, nil).
			Return(200, []byte(`{"success":true,"data":{"_id":"u1","name":"Eva","email":"eva@shop.local"}}`), nil)

		// when
		user, err := sut.GetCurrentUser(c, "my-token")

		// then
		assert.NoError(t, err)
		assert.Equal(t, User{UID: "u1", Name: "Eva", Email: "eva@shop.local"}, user)
	})

	t.Run("Submit order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		c, sut, sender := setup(ctrl)

		// given
		sender.EXPECT().Send(c, http.MethodPost, "http://shop.local/api/orders",
			map[string]string{"Authorization": "Bearer my-token"}, gomock.Any()).
			Return(201, []byte(`{"success":true}`), nil)

		// when
		err := sut.SubmitOrder(c, "my-token", Order{PaymentMethod: "PayPal"})

		// then
		assert.NoError(t, err)
	})

	t.Run("Submit order, service unreachable", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		c, sut, sender := setup(ctrl)

		// given
		sender.EXPECT().Send(c, http.MethodPost, "http://shop.local/api/orders", gomock.Any(), gomock.Any()).
			Return(0, []byte{}, fmt.Errorf("connection refused"))

		// when
		err := sut.SubmitOrder(c, "my-token", Order{})

		// then
		assert.ErrorIs(t, err, ErrUnreachable)
	})

	t.Run("Submit order, out of stock", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		c, sut, sender := setup(ctrl)

		// given
		sender.EXPECT().Send(c, http.MethodPost, "http://shop.local/api/orders", gomock.Any(), gomock.Any()).
			Return(400, []byte(`{"success":false,"message":"Out of stock"}`), nil)

		// when
		err := sut.SubmitOrder(c, "my-token", Order{})

		// then
		rejection := RejectionError{}
		assert.True(t, errors.As(err, &rejection))
		assert.Equal(t, "Out of stock", rejection.Message)
	})
}

func setup(ctrl *gomock.Controller) (context.Context, Client, *myhttpclient.MockHTTPSender) {
	c := context.TODO()
	sender := myhttpclient.NewMockHTTPSender(ctrl)
	sut := NewClientWithBaseURL(sender, "http://shop.local/api")

	return c, sut, sender
}
