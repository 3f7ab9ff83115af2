package shopapi

type Product struct {
	UID          string  `json:"_id"`
	Name         string  `json:"name"`
	Price        float64 `json:"price"`
	Image        string  `json:"image"`
	Description  string  `json:"description"`
	Category     string  `json:"category"`
	CountInStock int     `json:"countInStock"`
}

type User struct {
	UID   string `json:"_id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type Order struct {
	Items           []OrderItem     `json:"orderItems"`
	ShippingAddress ShippingAddress `json:"shippingAddress"`
	PaymentMethod   string          `json:"paymentMethod"`
	ItemsPrice      float64         `json:"itemsPrice"`
	TaxPrice        float64         `json:"taxPrice"`
	ShippingPrice   float64         `json:"shippingPrice"`
	TotalPrice      float64         `json:"totalPrice"`
}

type OrderItem struct {
	ProductUID string  `json:"product"`
	Name       string  `json:"name"`
	Quantity   int     `json:"quantity"`
	Price      float64 `json:"price"`
}

type ShippingAddress struct {
	Address    string `json:"address"`
	City       string `json:"city"`
	PostalCode string `json:"postalCode"`
	Country    string `json:"country"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Success bool   `json:"success"`
	Token   string `json:"token"`
	Message string `json:"message"`
}

type productListResponse struct {
	Success bool      `json:"success"`
	Data    []Product `json:"data"`
	Message string    `json:"message"`
}

type productResponse struct {
	Success bool    `json:"success"`
	Data    Product `json:"data"`
	Message string  `json:"message"`
}

type userResponse struct {
	Success bool   `json:"success"`
	Data    User   `json:"data"`
	Message string `json:"message"`
}

type orderResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
