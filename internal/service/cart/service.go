package cart

import (
	"sync"

	"tingz-storefront/internal/domain"
)

// Service holds one cart per session token, in process memory. Carts are
// session-scoped and die with the server; there is no persistence.
type Service struct {
	mu    sync.RWMutex
	carts map[string]*domain.Cart
}

func New() *Service {
	return &Service{carts: make(map[string]*domain.Cart)}
}

// Add puts a product into the session's cart. A repeated add increments the
// existing line's quantity; display fields are copied at add-time and are
// not retroactively updated by later catalog edits.
func (s *Service) Add(token string, product domain.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cart := s.carts[token]
	if cart == nil {
		cart = &domain.Cart{}
		s.carts[token] = cart
	}
	for i := range cart.Items {
		if cart.Items[i].ProductID == product.ID {
			cart.Items[i].Quantity++
			return
		}
	}
	cart.Items = append(cart.Items, domain.CartItem{
		ProductID: product.ID,
		Name:      product.Name,
		Price:     product.Price,
		Image:     product.Image,
		Quantity:  1,
	})
}

// Remove deletes the line for productID if present; no-op otherwise.
func (s *Service) Remove(token string, productID int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cart := s.carts[token]
	if cart == nil {
		return
	}
	removeItem(cart, productID)
}

// SetQuantity replaces the line's quantity. Quantities below 1 are ignored:
// removal is explicit only, a line never disappears by going to zero here.
func (s *Service) SetQuantity(token string, productID, quantity int) {
	if quantity < 1 {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	cart := s.carts[token]
	if cart == nil {
		return
	}
	for i := range cart.Items {
		if cart.Items[i].ProductID == productID {
			cart.Items[i].Quantity = quantity
			return
		}
	}
}

// Get returns a snapshot copy of the session's cart.
func (s *Service) Get(token string) domain.Cart {
	s.mu.RLock()
	defer s.mu.RUnlock()

	cart := s.carts[token]
	if cart == nil {
		return domain.Cart{}
	}
	out := domain.Cart{Items: make([]domain.CartItem, len(cart.Items))}
	copy(out.Items, cart.Items)
	return out
}

// PurgeProduct drops the product from every live cart. Called when the
// product is deleted from the catalog.
func (s *Service) PurgeProduct(productID int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, cart := range s.carts {
		removeItem(cart, productID)
	}
}

func removeItem(cart *domain.Cart, productID int) {
	for i := range cart.Items {
		if cart.Items[i].ProductID == productID {
			cart.Items = append(cart.Items[:i], cart.Items[i+1:]...)
			return
		}
	}
}
