package domain

// Product is a catalog entry. Price is a whole amount in KSh.
type Product struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Price       int64  `json:"price"`
	Category    string `json:"category"`
	Description string `json:"description"`
	Image       string `json:"image"`
}

// ProductInput carries the fields of a product before the store assigns an id.
// Price is a pointer so a missing field can be told apart from a zero price.
type ProductInput struct {
	Name        string `json:"name"`
	Price       *int64 `json:"price"`
	Category    string `json:"category"`
	Description string `json:"description"`
	Image       string `json:"image"`
}
