package contracttests

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/MarcGrol/shopfront/services/shopapi"
)

// NewFakeCommerceServer exposes a FakeCommerceAPI over the wire protocol of
// the real commerce API: every response is an envelope with a success flag.
func NewFakeCommerceServer(api *FakeCommerceAPI) http.Handler {
	s := &fakeCommerceServer{api: api}

	router := mux.NewRouter()
	router.HandleFunc("/api/products", s.listProducts).Methods("GET")
	router.HandleFunc("/api/products/{productUID}", s.getProduct).Methods("GET")
	router.HandleFunc("/api/auth/login", s.login).Methods("POST")
	router.HandleFunc("/api/auth/me", s.getCurrentUser).Methods("GET")
	router.HandleFunc("/api/orders", s.submitOrder).Methods("POST")

	return router
}

type fakeCommerceServer struct {
	api *FakeCommerceAPI
}

type envelope struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Token   string `json:"token,omitempty"`
	Message string `json:"message,omitempty"`
}

func (s *fakeCommerceServer) listProducts(w http.ResponseWriter, r *http.Request) {
	products, err := s.api.ListProducts(r.Context())
	if err != nil {
		writeRejection(w, err)
		return
	}
	writeEnvelope(w, envelope{Success: true, Data: products})
}

func (s *fakeCommerceServer) getProduct(w http.ResponseWriter, r *http.Request) {
	product, err := s.api.GetProduct(r.Context(), mux.Vars(r)["productUID"])
	if err != nil {
		writeRejection(w, err)
		return
	}
	writeEnvelope(w, envelope{Success: true, Data: product})
}

func (s *fakeCommerceServer) login(w http.ResponseWriter, r *http.Request) {
	credentials := struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}{}
	err := json.NewDecoder(r.Body).Decode(&credentials)
	if err != nil {
		writeRejection(w, err)
		return
	}

	token, err := s.api.Login(r.Context(), credentials.Email, credentials.Password)
	if err != nil {
		writeRejection(w, err)
		return
	}
	writeEnvelope(w, envelope{Success: true, Token: token})
}

func (s *fakeCommerceServer) getCurrentUser(w http.ResponseWriter, r *http.Request) {
	user, err := s.api.GetCurrentUser(r.Context(), bearerToken(r))
	if err != nil {
		writeRejection(w, err)
		return
	}
	writeEnvelope(w, envelope{Success: true, Data: user})
}

func (s *fakeCommerceServer) submitOrder(w http.ResponseWriter, r *http.Request) {
	order := shopapi.Order{}
	err := json.NewDecoder(r.Body).Decode(&order)
	if err != nil {
		writeRejection(w, err)
		return
	}

	err = s.api.SubmitOrder(r.Context(), bearerToken(r), order)
	if err != nil {
		writeRejection(w, err)
		return
	}
	writeEnvelope(w, envelope{Success: true})
}

func bearerToken(r *http.Request) string {
	return strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
}

func writeRejection(w http.ResponseWriter, err error) {
	rejection := shopapi.RejectionError{}
	if !errors.As(err, &rejection) {
		rejection.Message = err.Error()
	}
	writeEnvelope(w, envelope{Success: false, Message: rejection.Message})
}

func writeEnvelope(w http.ResponseWriter, e envelope) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(e)
}
