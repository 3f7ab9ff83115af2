package catalog

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/MarcGrol/shopfront/services/shopapi"
)

var (
	phone = shopapi.Product{
		UID:          "p1",
		Name:         "Phone",
		Price:        10.00,
		Image:        "/img/phone.jpg",
		Description:  "A phone",
		Category:     "Electronics",
		CountInStock: 3,
	}
)

func TestCatalogService(t *testing.T) {

	t.Run("Get product list page", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		_, router, client := setup(t, ctrl)

		// given
		client.EXPECT().ListProducts(gomock.Any()).Return([]shopapi.Product{phone}, nil)

		// when
		request, err := http.NewRequest(http.MethodGet, "/", nil)
		assert.NoError(t, err)
		response := httptest.NewRecorder()
		router.ServeHTTP(response, request)

		// then
		assert.Equal(t, 200, response.Code)
		assert.Contains(t, response.Body.String(), "Phone")
		assert.Contains(t, response.Body.String(), "$10.00")
	})

	t.Run("Product list unavailable when api is down", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		_, router, client := setup(t, ctrl)

		// given
		client.EXPECT().ListProducts(gomock.Any()).Return(nil, shopapi.ErrUnreachable)

		// when
		request, err := http.NewRequest(http.MethodGet, "/", nil)
		assert.NoError(t, err)
		response := httptest.NewRecorder()
		router.ServeHTTP(response, request)

		// then
		assert.Equal(t, 503, response.Code)
	})

	t.Run("Get product detail page", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		_, router, client := setup(t, ctrl)

		// given
		client.EXPECT().GetProduct(gomock.Any(), "p1").Return(phone, nil)

		// when
		request, err := http.NewRequest(http.MethodGet, "/products/p1", nil)
		assert.NoError(t, err)
		response := httptest.NewRecorder()
		router.ServeHTTP(response, request)

		// then
		assert.Equal(t, 200, response.Code)
		assert.Contains(t, response.Body.String(), "A phone")
	})

	t.Run("Unknown product yields not-found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		_, router, client := setup(t, ctrl)

		// given
		client.EXPECT().GetProduct(gomock.Any(), "unknown").
			Return(shopapi.Product{}, shopapi.RejectionError{Message: "Product not found"})

		// when
		request, err := http.NewRequest(http.MethodGet, "/products/unknown", nil)
		assert.NoError(t, err)
		response := httptest.NewRecorder()
		router.ServeHTTP(response, request)

		// then
		assert.Equal(t, 404, response.Code)
	})
}

func setup(t *testing.T, ctrl *gomock.Controller) (context.Context, *mux.Router, *shopapi.MockClient) {
	c := context.TODO()
	client := shopapi.NewMockClient(ctrl)

	sut := NewService(client)
	router := mux.NewRouter()

	err := sut.RegisterEndpoints(c, router)
	assert.NoError(t, err)

	return c, router, client
}
