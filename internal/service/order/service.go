package order

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"regexp"
	"strings"
	"sync"

	"tingz-storefront/internal/domain"
)

var paymentCodePattern = regexp.MustCompile(`^[0-9]{10}$`)

// Mailer relays an order notification to the shop owner. Delivery
// guarantees are the relay's problem; here an error just means Failed.
type Mailer interface {
	Send(ctx context.Context, n domain.OrderNotification) error
}

// ErrSubmitting is returned when a session already has a submission in flight.
var ErrSubmitting = errors.New("submission already in progress")

// Service serializes a cart snapshot into a human-readable order summary
// and hands it to the mail relay. One submission at a time per session;
// a failed submission may be retried by the user, never automatically.
type Service struct {
	mailer Mailer
	logger *log.Logger

	mu       sync.Mutex
	statuses map[string]domain.OrderStatus
}

func New(mailer Mailer, logger *log.Logger) *Service {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Service{
		mailer:   mailer,
		logger:   logger,
		statuses: make(map[string]domain.OrderStatus),
	}
}

// BuildOrderSummary renders one line per cart item, in cart order, plus the
// cart total. Line format: "<name> - Quantity: <qty>, Price: <price> KSh".
func BuildOrderSummary(cart domain.Cart) (string, int64) {
	lines := make([]string, 0, len(cart.Items))
	for _, item := range cart.Items {
		lines = append(lines, fmt.Sprintf("%s - Quantity: %d, Price: %d KSh", item.Name, item.Quantity, item.Price))
	}
	return strings.Join(lines, "\n"), cart.Total()
}

// ValidateCustomer rejects submissions before any relay attempt is made.
func ValidateCustomer(c domain.Customer) error {
	if strings.TrimSpace(c.Name) == "" {
		return domain.ValidationError("name is required")
	}
	if !strings.Contains(c.Email, "@") {
		return domain.ValidationError("email is required")
	}
	if strings.TrimSpace(c.Phone) == "" {
		return domain.ValidationError("phone is required")
	}
	if !paymentCodePattern.MatchString(c.PaymentCode) {
		return domain.ValidationError("payment code must be 10 digits")
	}
	return nil
}

// Submit validates, composes the notification payload and relays it.
// The returned status is Submitted or Failed; Failed leaves the session
// free to resubmit.
func (s *Service) Submit(ctx context.Context, token string, customer domain.Customer, cart domain.Cart) (domain.OrderStatus, error) {
	if err := ValidateCustomer(customer); err != nil {
		return s.Status(token), err
	}
	if len(cart.Items) == 0 {
		return s.Status(token), domain.ValidationError("cart is empty")
	}

	if err := s.begin(token); err != nil {
		return domain.OrderSubmitting, err
	}

	details, total := BuildOrderSummary(cart)
	notification := domain.OrderNotification{
		FromName:     customer.Name,
		FromEmail:    customer.Email,
		Phone:        customer.Phone,
		PaymentCode:  customer.PaymentCode,
		OrderDetails: details,
		TotalPrice:   fmt.Sprintf("%d KSh", total),
	}

	if err := s.mailer.Send(ctx, notification); err != nil {
		s.logger.Printf("order: relay failed session=%.8s error=%v", token, err)
		s.finish(token, domain.OrderFailed)
		return domain.OrderFailed, err
	}

	s.logger.Printf("order: submitted session=%.8s items=%d total=%d", token, len(cart.Items), total)
	s.finish(token, domain.OrderSubmitted)
	return domain.OrderSubmitted, nil
}

// Status reports the session's last known submission state.
func (s *Service) Status(token string) domain.OrderStatus {
	s.mu.Lock()
	defer s.mu.Unlock()
	if st, ok := s.statuses[token]; ok {
		return st
	}
	return domain.OrderIdle
}

func (s *Service) begin(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.statuses[token] == domain.OrderSubmitting {
		return ErrSubmitting
	}
	s.statuses[token] = domain.OrderSubmitting
	return nil
}

func (s *Service) finish(token string, st domain.OrderStatus) {
	s.mu.Lock()
	s.statuses[token] = st
	s.mu.Unlock()
}
