package domain

// CartItem is a product copied into a cart at add-time plus a quantity.
// The display fields are a snapshot: later catalog edits do not reprice
// items already in the cart.
type CartItem struct {
	ProductID int    `json:"productId"`
	Name      string `json:"name"`
	Price     int64  `json:"price"`
	Image     string `json:"image"`
	Quantity  int    `json:"quantity"`
}

// Cart holds cart items in insertion order, at most one per product id.
type Cart struct {
	Items []CartItem `json:"items"`
}

// Total sums price*quantity over all items.
func (c Cart) Total() int64 {
	var total int64
	for _, item := range c.Items {
		total += item.Price * int64(item.Quantity)
	}
	return total
}

// ItemCount sums quantities, not line count. Used for the cart badge.
func (c Cart) ItemCount() int {
	count := 0
	for _, item := range c.Items {
		count += item.Quantity
	}
	return count
}
