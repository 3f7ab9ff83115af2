package shopapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"

	"github.com/MarcGrol/shopfront/lib/myhttpclient"
	"github.com/MarcGrol/shopfront/lib/mylog"
)

const defaultBaseURL = "http://localhost:5000/api"

type client struct {
	baseURL string
	sender  myhttpclient.HTTPSender
	logger  mylog.Logger
}

func NewClient(sender myhttpclient.HTTPSender) Client {
	baseURL := os.Getenv("SHOP_API_URL")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return NewClientWithBaseURL(sender, baseURL)
}

func NewClientWithBaseURL(sender myhttpclient.HTTPSender, baseURL string) Client {
	return &client{
		baseURL: baseURL,
		sender:  sender,
		logger:  mylog.New("shopapi"),
	}
}

func (cl *client) ListProducts(c context.Context) ([]Product, error) {
	_, respPayload, err := cl.sender.Send(c, http.MethodGet, cl.baseURL+"/products", nil, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrUnreachable, err)
	}

	resp := productListResponse{}
	err = json.Unmarshal(respPayload, &resp)
	if err != nil {
		return nil, fmt.Errorf("%w: error parsing product-list response: %s", ErrUnreachable, err)
	}
	if !resp.Success {
		return nil, RejectionError{Message: messageOrDefault(resp.Message, "failed to load products")}
	}

	return resp.Data, nil
}

func (cl *client) GetProduct(c context.Context, productUID string) (Product, error) {
	_, respPayload, err := cl.sender.Send(c, http.MethodGet, fmt.Sprintf("%s/products/%s", cl.baseURL, productUID), nil, nil)
	if err != nil {
		return Product{}, fmt.Errorf("%w: %s", ErrUnreachable, err)
	}

	resp := productResponse{}
	err = json.Unmarshal(respPayload, &resp)
	if err != nil {
		return Product{}, fmt.Errorf("%w: error parsing product response: %s", ErrUnreachable, err)
	}
	if !resp.Success {
		return Product{}, RejectionError{Message: messageOrDefault(resp.Message, "product not found")}
	}

	return resp.Data, nil
}

func (cl *client) Login(c context.Context, email string, password string) (string, error) {
	reqPayload, err := json.Marshal(loginRequest{Email: email, Password: password})
	if err != nil {
		return "", fmt.Errorf("error marshalling login request: %s", err)
	}

	_, respPayload, err := cl.sender.Send(c, http.MethodPost, cl.baseURL+"/auth/login", nil, reqPayload)
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrUnreachable, err)
	}

	resp := loginResponse{}
	err = json.Unmarshal(respPayload, &resp)
	if err != nil {
		return "", fmt.Errorf("%w: error parsing login response: %s", ErrUnreachable, err)
	}
	if !resp.Success {
		return "", RejectionError{Message: messageOrDefault(resp.Message, "login failed")}
	}

	return resp.Token, nil
}

func (cl *client) GetCurrentUser(c context.Context, token string) (User, error) {
	_, respPayload, err := cl.sender.Send(c, http.MethodGet, cl.baseURL+"/auth/me", bearer(token), nil)
	if err != nil {
		return User{}, fmt.Errorf("%w: %s", ErrUnreachable, err)
	}

	resp := userResponse{}
	err = json.Unmarshal(respPayload, &resp)
	if err != nil {
		return User{}, fmt.Errorf("%w: error parsing user response: %s", ErrUnreachable, err)
	}
	if !resp.Success {
		return User{}, RejectionError{Message: messageOrDefault(resp.Message, "failed to fetch user")}
	}

	return resp.Data, nil
}

func (cl *client) SubmitOrder(c context.Context, token string, order Order) error {
	reqPayload, err := json.Marshal(order)
	if err != nil {
		return fmt.Errorf("error marshalling order: %s", err)
	}

	_, respPayload, err := cl.sender.Send(c, http.MethodPost, cl.baseURL+"/orders", bearer(token), reqPayload)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrUnreachable, err)
	}

	resp := orderResponse{}
	err = json.Unmarshal(respPayload, &resp)
	if err != nil {
		return fmt.Errorf("%w: error parsing order response: %s", ErrUnreachable, err)
	}
	if !resp.Success {
		return RejectionError{Message: messageOrDefault(resp.Message, "failed to place order")}
	}

	return nil
}

func bearer(token string) map[string]string {
	return map[string]string{
		"Authorization": "Bearer " + token,
	}
}

func messageOrDefault(message string, fallback string) string {
	if message != "" {
		return message
	}
	return fallback
}
