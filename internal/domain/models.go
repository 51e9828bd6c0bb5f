package domain

type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Product is immutable reference data loaded from the static catalog.
type Product struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Price       float64  `json:"price"`
	Description string   `json:"description"`
	Images      []string `json:"images"`
	Category    string   `json:"category"`
	Stock       int      `json:"stock"`
	Rating      float64  `json:"rating"`
	Featured    bool     `json:"featured"`
}

// CartLine pairs a product with a quantity. A cart holds at most one line
// per product id.
type CartLine struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}

func (l CartLine) Subtotal() float64 {
	return l.Product.Price * float64(l.Quantity)
}

type Order struct {
	ID     string     `json:"id"`
	User   User       `json:"user"`
	Items  []CartLine `json:"items"`
	Total  float64    `json:"total"`
	Status string     `json:"status"` // pending | processing | shipped | delivered
	Date   string     `json:"date"`
}
