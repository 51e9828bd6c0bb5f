package catalog

import "shopwave/internal/domain"

// Products is the static catalog. It is reference data: loaded once,
// never mutated at runtime.
var Products = []domain.Product{
	{
		ID:    "1",
		Name:  "Premium Wireless Headphones",
		Price: 149.99,
		Description: "Experience crystal-clear sound with our premium wireless headphones. " +
			"Features noise cancellation, 30-hour battery life, and comfortable over-ear design.",
		Images: []string{
			"https://images.pexels.com/photos/577769/pexels-photo-577769.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=1",
			"https://images.pexels.com/photos/8534088/pexels-photo-8534088.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=1",
		},
		Category: "electronics",
		Stock:    15,
		Rating:   4.8,
		Featured: true,
	},
	{
		ID:    "2",
		Name:  "Smart Watch Series 5",
		Price: 299.99,
		Description: "Stay connected and track your fitness with our latest smart watch. " +
			"Features heart rate monitoring, GPS, and a beautiful always-on display.",
		Images: []string{
			"https://images.pexels.com/photos/437037/pexels-photo-437037.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=1",
			"https://images.pexels.com/photos/393047/pexels-photo-393047.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=1",
		},
		Category: "electronics",
		Stock:    10,
		Rating:   4.6,
		Featured: true,
	},
	{
		ID:    "3",
		Name:  "Organic Cotton T-Shirt",
		Price: 29.99,
		Description: "Ultra-soft, sustainably made t-shirt crafted from 100% organic cotton. " +
			"Available in multiple colors and sizes.",
		Images: []string{
			"https://images.pexels.com/photos/428340/pexels-photo-428340.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=1",
			"https://images.pexels.com/photos/3812433/pexels-photo-3812433.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=1",
		},
		Category: "clothing",
		Stock:    25,
		Rating:   4.5,
		Featured: false,
	},
	{
		ID:    "4",
		Name:  "Modern Coffee Table",
		Price: 249.99,
		Description: "Elevate your living room with this sleek, modern coffee table. " +
			"Features solid oak construction and minimalist design.",
		Images: []string{
			"https://images.pexels.com/photos/2865903/pexels-photo-2865903.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=1",
			"https://images.pexels.com/photos/2079249/pexels-photo-2079249.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=1",
		},
		Category: "furniture",
		Stock:    5,
		Rating:   4.7,
		Featured: true,
	},
	{
		ID:    "5",
		Name:  "Professional DSLR Camera",
		Price: 899.99,
		Description: "Capture stunning photos and videos with our professional DSLR camera. " +
			"Includes 24.2MP sensor, 4K video recording, and advanced autofocus.",
		Images: []string{
			"https://images.pexels.com/photos/90946/pexels-photo-90946.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=1",
			"https://images.pexels.com/photos/243757/pexels-photo-243757.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=1",
		},
		Category: "electronics",
		Stock:    8,
		Rating:   4.9,
		Featured: true,
	},
	{
		ID:    "6",
		Name:  "Leather Weekender Bag",
		Price: 199.99,
		Description: "Premium full-grain leather weekender bag perfect for short trips. " +
			"Features durable construction, multiple compartments, and timeless design.",
		Images: []string{
			"https://images.pexels.com/photos/2081199/pexels-photo-2081199.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=1",
			"https://images.pexels.com/photos/934673/pexels-photo-934673.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=1",
		},
		Category: "accessories",
		Stock:    12,
		Rating:   4.7,
		Featured: false,
	},
	{
		ID:    "7",
		Name:  "Ceramic Plant Pot Set",
		Price: 49.99,
		Description: "Set of 3 hand-crafted ceramic plant pots in varying sizes. " +
			"Perfect for indoor plants and home decor.",
		Images: []string{
			"https://images.pexels.com/photos/1084188/pexels-photo-1084188.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=1",
			"https://images.pexels.com/photos/1566308/pexels-photo-1566308.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=1",
		},
		Category: "home",
		Stock:    20,
		Rating:   4.4,
		Featured: false,
	},
	{
		ID:    "8",
		Name:  "Stainless Steel Water Bottle",
		Price: 34.99,
		Description: "Double-walled, vacuum-insulated water bottle that keeps drinks cold for 24 hours " +
			"or hot for 12 hours. Made from high-quality stainless steel.",
		Images: []string{
			"https://images.pexels.com/photos/1342529/pexels-photo-1342529.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=1",
			"https://images.pexels.com/photos/4066765/pexels-photo-4066765.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=1",
		},
		Category: "accessories",
		Stock:    30,
		Rating:   4.6,
		Featured: false,
	},
}

// Categories is the fixed category set. "all" is a sentinel meaning no
// category filter.
var Categories = []domain.Category{
	{ID: "all", Name: "All Categories"},
	{ID: "electronics", Name: "Electronics"},
	{ID: "clothing", Name: "Clothing"},
	{ID: "furniture", Name: "Furniture"},
	{ID: "accessories", Name: "Accessories"},
	{ID: "home", Name: "Home & Garden"},
}

func ProductByID(id string) (domain.Product, bool) {
	for _, p := range Products {
		if p.ID == id {
			return p, true
		}
	}
	return domain.Product{}, false
}

func CategoryByID(id string) (domain.Category, bool) {
	for _, c := range Categories {
		if c.ID == id {
			return c, true
		}
	}
	return domain.Category{}, false
}

// Featured returns the promoted subset of the catalog in catalog order.
func Featured() []domain.Product {
	var out []domain.Product
	for _, p := range Products {
		if p.Featured {
			out = append(out, p)
		}
	}
	return out
}

// MaxPrice returns the highest price in the catalog, used as the default
// upper bound of the price-range filter.
func MaxPrice() float64 {
	max := 0.0
	for _, p := range Products {
		if p.Price > max {
			max = p.Price
		}
	}
	return max
}

// SampleOrders is the static order history shown on the account page.
// There is no order placement pipeline; checkout clears the cart and the
// account page shows this fixed data.
var SampleOrders = []domain.Order{
	{
		ID:   "ord-1",
		User: domain.User{ID: "user-1", Name: "John Doe", Email: "john@example.com"},
		Items: []domain.CartLine{
			{Product: Products[0], Quantity: 1},
			{Product: Products[2], Quantity: 2},
		},
		Total:  Products[0].Price + Products[2].Price*2,
		Status: "delivered",
		Date:   "2023-09-15",
	},
	{
		ID:   "ord-2",
		User: domain.User{ID: "user-1", Name: "John Doe", Email: "john@example.com"},
		Items: []domain.CartLine{
			{Product: Products[4], Quantity: 1},
		},
		Total:  Products[4].Price,
		Status: "shipped",
		Date:   "2023-10-20",
	},
}
