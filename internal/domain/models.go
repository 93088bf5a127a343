package domain

type Product struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Price       float64  `json:"price"`
	Category    string   `json:"category"` // men | women
	Image       string   `json:"image"`
	Thumbnail   string   `json:"thumbnail"`
	Description string   `json:"description"`
	Sizes       []string `json:"sizes"`
}

type CartLineItem struct {
	ID        string  `json:"id"`
	UserID    string  `json:"userId"`
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
	Size      string  `json:"size"`
	Image     string  `json:"image"`
}

type Order struct {
	ID           string         `json:"id"`
	UserID       string         `json:"userId"`
	Items        []CartLineItem `json:"items"`
	Total        float64        `json:"total"`
	ShippingInfo map[string]any `json:"shippingInfo"`
	PaymentInfo  map[string]any `json:"paymentInfo"`
	CreatedAt    string         `json:"createdAt"`
}
