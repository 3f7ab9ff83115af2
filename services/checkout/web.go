package checkout

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/MarcGrol/shopfront/lib/mycontext"
	"github.com/MarcGrol/shopfront/lib/myerrors"
	"github.com/MarcGrol/shopfront/lib/myhttp"
	"github.com/MarcGrol/shopfront/services/checkout/checkoutevents"
	"github.com/MarcGrol/shopfront/services/shopapi"
)

//go:embed templates
var templateFolder embed.FS
var (
	confirmationPageTemplate *template.Template
)

func init() {
	confirmationPageTemplate = template.Must(template.ParseFS(templateFolder, "templates/confirmation.html"))
}

func (s *service) RegisterEndpoints(c context.Context, router *mux.Router) error {
	router.HandleFunc("/checkout", s.checkoutSubmit()).Methods("POST")

	err := s.publisher.CreateTopic(c, checkoutevents.TopicName)
	if err != nil {
		return fmt.Errorf("error creating topic %s: %s", checkoutevents.TopicName, err)
	}

	return nil
}

type confirmationPageData struct {
	OrderUID string
}

func (s *service) checkoutSubmit() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		orderUID, err := s.submitOrder(c)
		if err != nil {
			if errors.Is(err, ErrNotLoggedIn) {
				http.Redirect(w, r, "/login", http.StatusSeeOther)
				return
			}
			errorWriter.WriteError(c, w, 1, mapOrderError(err))
			return
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		err = confirmationPageTemplate.Execute(w, confirmationPageData{
			OrderUID: orderUID,
		})
		if err != nil {
			errorWriter.WriteError(c, w, 2, myerrors.NewInternalError(err))
			return
		}
	}
}

func mapOrderError(err error) error {
	if errors.Is(err, ErrEmptyCart) {
		return myerrors.NewInvalidInputError(err)
	}

	rejection := shopapi.RejectionError{}
	if errors.As(err, &rejection) {
		return myerrors.NewUnprocessableError(err)
	}

	if errors.Is(err, shopapi.ErrUnreachable) {
		return myerrors.NewUnavailableError(err)
	}

	return myerrors.NewInternalError(err)
}
