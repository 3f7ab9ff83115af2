package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/gorilla/mux"

	"github.com/MarcGrol/shopfront/lib/myhttpclient"
	"github.com/MarcGrol/shopfront/lib/mypublisher"
	"github.com/MarcGrol/shopfront/lib/mypubsub"
	"github.com/MarcGrol/shopfront/lib/myqueue"
	"github.com/MarcGrol/shopfront/lib/mystore"
	"github.com/MarcGrol/shopfront/lib/mytime"
	"github.com/MarcGrol/shopfront/lib/myuuid"
	"github.com/MarcGrol/shopfront/lib/myvault"
	"github.com/MarcGrol/shopfront/services/cart"
	"github.com/MarcGrol/shopfront/services/catalog"
	"github.com/MarcGrol/shopfront/services/checkout"
	"github.com/MarcGrol/shopfront/services/session"
	"github.com/MarcGrol/shopfront/services/shopapi"
	"github.com/MarcGrol/shopfront/services/warmup"
)

func main() {
	c := context.Background()

	router := mux.NewRouter()

	nower := mytime.RealNower{}
	uuider := myuuid.RealUUIDer{}

	queue, queueCleanup, err := myqueue.New(c)
	if err != nil {
		log.Fatalf("Error creating task queue: %s", err)
	}
	defer queueCleanup()

	subscriber, pubsubCleanup, err := mypubsub.New(c)
	if err != nil {
		log.Fatalf("Error creating pubsub: %s", err)
	}
	defer pubsubCleanup()

	publisher, publisherCleanup, err := mypublisher.New(c, subscriber, queue, nower)
	if err != nil {
		log.Fatalf("Error creating publisher: %s", err)
	}
	defer publisherCleanup()
	publisher.RegisterEndpoints(c, router)

	client := shopapi.NewClient(myhttpclient.New())

	vault, vaultCleanup, err := myvault.New(c)
	if err != nil {
		log.Fatalf("Error creating vault: %s", err)
	}
	defer vaultCleanup()

	cartService := createCartService(c, router, subscriber, publisher)
	sessionService := createSessionService(c, router, vault, client)
	createCheckoutService(c, router, sessionService, cartService, client, publisher, uuider)
	createCatalogService(c, router, client)

	warmupService := warmup.NewService(vault)
	warmupService.RegisterEndpoints(c, router)

	startWebServerBlocking(router)
}

func createCartService(c context.Context, router *mux.Router, subscriber mypubsub.PubSub, publisher mypublisher.Publisher) checkout.CartService {
	cartStore, _, err := mystore.New[cart.Cart](c)
	if err != nil {
		log.Fatalf("Error creating cart store: %s", err)
	}
	cartService := cart.NewService(cartStore, subscriber, publisher)
	err = cartService.RegisterEndpoints(c, router)
	if err != nil {
		log.Fatalf("Error registering cart endpoints: %s", err)
	}
	return cartService
}

func createSessionService(c context.Context, router *mux.Router, vault myvault.VaultReadWriter, client shopapi.Client) session.Reader {
	userStore, _, err := mystore.New[shopapi.User](c)
	if err != nil {
		log.Fatalf("Error creating user store: %s", err)
	}
	sessionService := session.NewService(userStore, vault, client)
	err = sessionService.RegisterEndpoints(c, router)
	if err != nil {
		log.Fatalf("Error registering session endpoints: %s", err)
	}
	return sessionService
}

func createCheckoutService(c context.Context, router *mux.Router, sessions session.Reader, carts checkout.CartService, client shopapi.Client, publisher mypublisher.Publisher, uuider myuuid.UUIDer) {
	checkoutService := checkout.NewService(sessions, carts, client, publisher, uuider)
	err := checkoutService.RegisterEndpoints(c, router)
	if err != nil {
		log.Fatalf("Error registering checkout endpoints: %s", err)
	}
}

func createCatalogService(c context.Context, router *mux.Router, client shopapi.Client) {
	catalogService := catalog.NewService(client)
	err := catalogService.RegisterEndpoints(c, router)
	if err != nil {
		log.Fatalf("Error registering catalog endpoints: %s", err)
	}
}

func startWebServerBlocking(router *mux.Router) {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting webserver on port %s (try http://localhost:%s)", port, port)
	err := http.ListenAndServe(fmt.Sprintf(":%s", port), router)
	if err != nil {
		log.Fatalf("Error starting webserver on port %s: %s", port, err)
	}
}
