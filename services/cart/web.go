package cart

import (
	"context"
	"embed"
	"html/template"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/MarcGrol/shopfront/lib/mycontext"
	"github.com/MarcGrol/shopfront/lib/myerrors"
	"github.com/MarcGrol/shopfront/lib/myhttp"
	"github.com/MarcGrol/shopfront/services/cart/cartevents"
	"github.com/MarcGrol/shopfront/services/checkout/checkoutevents"
)

//go:embed templates
var templateFolder embed.FS
var (
	cartPageTemplate *template.Template
)

func init() {
	cartPageTemplate = template.Must(template.ParseFS(templateFolder, "templates/cart.html"))
}

func (s *service) RegisterEndpoints(c context.Context, router *mux.Router) error {

	// Endpoints that compose the user-interface
	router.HandleFunc("/cart", s.cartPage()).Methods("GET")
	router.HandleFunc("/cart/items", s.addItemPage()).Methods("POST")
	router.HandleFunc("/cart/items/{productUID}/quantity", s.changeQuantityPage()).Methods("POST")
	router.HandleFunc("/cart/items/{productUID}/remove", s.removeItemPage()).Methods("POST")

	// Programmatic view on the same cart
	router.HandleFunc("/api/cart", s.getCartAPI()).Methods("GET")

	err := s.publisher.CreateTopic(c, cartevents.TopicName)
	if err != nil {
		return err
	}

	// Listen for completed checkouts
	router.HandleFunc("/api/cart/event", s.handleEventEnvelope()).Methods("POST")

	err = s.Subscribe(c)
	if err != nil {
		return err
	}

	return nil
}

type cartPageData struct {
	Cart    Cart
	Count   int
	Summary Summary
}

func (s *service) cartPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		crt := s.fetchCart(c)

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		err := cartPageTemplate.Execute(w, cartPageData{
			Cart:    crt,
			Count:   crt.ItemCount(),
			Summary: crt.Summary(),
		})
		if err != nil {
			errorWriter.WriteError(c, w, 1, myerrors.NewInternalError(err))
			return
		}
	}
}

func (s *service) addItemPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		line, err := parseAddLineForm(r)
		if err != nil {
			errorWriter.WriteError(c, w, 1, err)
			return
		}

		_, err = s.addLine(c, line)
		if err != nil {
			errorWriter.WriteError(c, w, 2, err)
			return
		}

		http.Redirect(w, r, "/cart", http.StatusSeeOther)
	}
}

func (s *service) changeQuantityPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		productUID := mux.Vars(r)["productUID"]

		delta, err := parseChangeQuantityForm(r)
		if err != nil {
			errorWriter.WriteError(c, w, 1, err)
			return
		}

		_, err = s.changeQuantity(c, productUID, delta)
		if err != nil {
			errorWriter.WriteError(c, w, 2, err)
			return
		}

		http.Redirect(w, r, "/cart", http.StatusSeeOther)
	}
}

func (s *service) removeItemPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		productUID := mux.Vars(r)["productUID"]

		_, err := s.removeLine(c, productUID)
		if err != nil {
			errorWriter.WriteError(c, w, 1, err)
			return
		}

		http.Redirect(w, r, "/cart", http.StatusSeeOther)
	}
}

type cartResponse struct {
	Lines    []CartLine `json:"lines"`
	Count    int        `json:"count"`
	Subtotal float64    `json:"subtotal"`
	Shipping float64    `json:"shipping"`
	Tax      float64    `json:"tax"`
	Total    float64    `json:"total"`
}

func (s *service) getCartAPI() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		crt := s.fetchCart(c)
		summary := crt.Summary()

		errorWriter.Write(c, w, http.StatusOK, cartResponse{
			Lines:    crt.Lines,
			Count:    crt.ItemCount(),
			Subtotal: summary.Subtotal.InexactFloat64(),
			Shipping: summary.Shipping.InexactFloat64(),
			Tax:      summary.Tax.InexactFloat64(),
			Total:    summary.Total.InexactFloat64(),
		})
	}
}

func (s *service) handleEventEnvelope() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		err := checkoutevents.DispatchEvent(c, r.Body, s)
		if err != nil {
			errorWriter.WriteError(c, w, 1, err)
			return
		}

		errorWriter.Write(c, w, http.StatusOK, myhttp.EmptyResponse{})
	}
}
