package catalog

import (
	"context"
	"embed"
	"errors"
	"html/template"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/MarcGrol/shopfront/lib/mycontext"
	"github.com/MarcGrol/shopfront/lib/myerrors"
	"github.com/MarcGrol/shopfront/lib/myhttp"
	"github.com/MarcGrol/shopfront/services/shopapi"
)

//go:embed templates
var templateFolder embed.FS
var (
	productListPageTemplate   *template.Template
	productDetailPageTemplate *template.Template
)

func init() {
	productListPageTemplate = template.Must(template.ParseFS(templateFolder, "templates/product_list.html"))
	productDetailPageTemplate = template.Must(template.ParseFS(templateFolder, "templates/product_detail.html"))
}

func (s *service) RegisterEndpoints(c context.Context, router *mux.Router) error {
	router.HandleFunc("/", s.productListPage()).Methods("GET")
	router.HandleFunc("/products/{productUID}", s.productDetailPage()).Methods("GET")

	return nil
}

type productListPageData struct {
	Products []shopapi.Product
}

func (s *service) productListPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		products, err := s.client.ListProducts(c)
		if err != nil {
			errorWriter.WriteError(c, w, 1, myerrors.NewUnavailableError(err))
			return
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		err = productListPageTemplate.Execute(w, productListPageData{
			Products: products,
		})
		if err != nil {
			errorWriter.WriteError(c, w, 2, myerrors.NewInternalError(err))
			return
		}
	}
}

type productDetailPageData struct {
	Product shopapi.Product
}

func (s *service) productDetailPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		productUID := mux.Vars(r)["productUID"]

		product, err := s.client.GetProduct(c, productUID)
		if err != nil {
			errorWriter.WriteError(c, w, 1, mapClientError(err))
			return
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		err = productDetailPageTemplate.Execute(w, productDetailPageData{
			Product: product,
		})
		if err != nil {
			errorWriter.WriteError(c, w, 2, myerrors.NewInternalError(err))
			return
		}
	}
}

func mapClientError(err error) error {
	rejection := shopapi.RejectionError{}
	if errors.As(err, &rejection) {
		return myerrors.NewNotFoundError(err)
	}
	return myerrors.NewUnavailableError(err)
}
