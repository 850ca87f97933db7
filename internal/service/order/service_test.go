package order

import (
	"context"
	"errors"
	"testing"
	"time"

	"tingz-storefront/internal/domain"
)

type stubMailer struct {
	err   error
	sent  []domain.OrderNotification
	block chan struct{}
}

func (s *stubMailer) Send(_ context.Context, n domain.OrderNotification) error {
	if s.block != nil {
		<-s.block
	}
	s.sent = append(s.sent, n)
	return s.err
}

func sampleCart() domain.Cart {
	return domain.Cart{Items: []domain.CartItem{
		{ProductID: 1, Name: "Canvas Tote", Price: 3299, Quantity: 2},
		{ProductID: 2, Name: "Beaded Choker", Price: 4799, Quantity: 1},
	}}
}

func sampleCustomer() domain.Customer {
	return domain.Customer{
		Name:        "Wanjiru",
		Email:       "wanjiru@example.com",
		Phone:       "0712345678",
		PaymentCode: "1234567890",
	}
}

func TestBuildOrderSummary(t *testing.T) {
	details, total := BuildOrderSummary(sampleCart())
	want := "Canvas Tote - Quantity: 2, Price: 3299 KSh\nBeaded Choker - Quantity: 1, Price: 4799 KSh"
	if details != want {
		t.Fatalf("unexpected summary:\n%s\nwant:\n%s", details, want)
	}
	if total != 11397 {
		t.Fatalf("expected total 11397, got %d", total)
	}
}

func TestValidateCustomerPaymentCode(t *testing.T) {
	base := sampleCustomer()

	if err := ValidateCustomer(base); err != nil {
		t.Fatalf("valid customer rejected: %v", err)
	}

	for _, code := range []string{"12345", "12a4567890", "12345678901", ""} {
		c := base
		c.PaymentCode = code
		if err := ValidateCustomer(c); !errors.Is(err, domain.ErrValidation) {
			t.Fatalf("expected validation error for code %q, got %v", code, err)
		}
	}
}

func TestValidateCustomerContactFields(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*domain.Customer)
	}{
		{"missing name", func(c *domain.Customer) { c.Name = " " }},
		{"missing email", func(c *domain.Customer) { c.Email = "nope" }},
		{"missing phone", func(c *domain.Customer) { c.Phone = "" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := sampleCustomer()
			tc.mutate(&c)
			if err := ValidateCustomer(c); !errors.Is(err, domain.ErrValidation) {
				t.Fatalf("expected validation error, got %v", err)
			}
		})
	}
}

func TestSubmitSuccess(t *testing.T) {
	mailer := &stubMailer{}
	svc := New(mailer, nil)

	status, err := svc.Submit(context.Background(), "sess", sampleCustomer(), sampleCart())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if status != domain.OrderSubmitted {
		t.Fatalf("expected Submitted, got %s", status)
	}
	if len(mailer.sent) != 1 {
		t.Fatalf("expected one relay call, got %d", len(mailer.sent))
	}

	n := mailer.sent[0]
	if n.FromName != "Wanjiru" || n.FromEmail != "wanjiru@example.com" || n.Phone != "0712345678" || n.PaymentCode != "1234567890" {
		t.Fatalf("unexpected payload: %+v", n)
	}
	if n.TotalPrice != "11397 KSh" {
		t.Fatalf("expected total '11397 KSh', got %q", n.TotalPrice)
	}
	if svc.Status("sess") != domain.OrderSubmitted {
		t.Fatalf("expected status Submitted, got %s", svc.Status("sess"))
	}
}

func TestSubmitRelayFailureThenRetry(t *testing.T) {
	mailer := &stubMailer{err: errors.New("relay down")}
	svc := New(mailer, nil)

	status, err := svc.Submit(context.Background(), "sess", sampleCustomer(), sampleCart())
	if err == nil {
		t.Fatalf("expected relay error")
	}
	if status != domain.OrderFailed {
		t.Fatalf("expected Failed, got %s", status)
	}

	// the user may resubmit after a failure; nothing retries automatically
	mailer.err = nil
	status, err = svc.Submit(context.Background(), "sess", sampleCustomer(), sampleCart())
	if err != nil {
		t.Fatalf("unexpected error on resubmit: %v", err)
	}
	if status != domain.OrderSubmitted {
		t.Fatalf("expected Submitted after retry, got %s", status)
	}
	if len(mailer.sent) != 2 {
		t.Fatalf("expected exactly two relay calls, got %d", len(mailer.sent))
	}
}

func TestSubmitEmptyCart(t *testing.T) {
	mailer := &stubMailer{}
	svc := New(mailer, nil)

	_, err := svc.Submit(context.Background(), "sess", sampleCustomer(), domain.Cart{})
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if len(mailer.sent) != 0 {
		t.Fatalf("relay must not be called for an empty cart")
	}
}

func TestSubmitValidationSkipsRelay(t *testing.T) {
	mailer := &stubMailer{}
	svc := New(mailer, nil)

	c := sampleCustomer()
	c.PaymentCode = "12345"
	_, err := svc.Submit(context.Background(), "sess", c, sampleCart())
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if len(mailer.sent) != 0 {
		t.Fatalf("relay must not be called before validation passes")
	}
}

func TestSubmitRejectsConcurrentSubmission(t *testing.T) {
	mailer := &stubMailer{block: make(chan struct{})}
	svc := New(mailer, nil)

	firstDone := make(chan struct{})
	go func() {
		defer close(firstDone)
		_, _ = svc.Submit(context.Background(), "sess", sampleCustomer(), sampleCart())
	}()

	waitForStatus(t, svc, "sess", domain.OrderSubmitting)

	_, err := svc.Submit(context.Background(), "sess", sampleCustomer(), sampleCart())
	if !errors.Is(err, ErrSubmitting) {
		t.Fatalf("expected ErrSubmitting, got %v", err)
	}

	close(mailer.block)
	<-firstDone
	if svc.Status("sess") != domain.OrderSubmitted {
		t.Fatalf("expected Submitted after unblock, got %s", svc.Status("sess"))
	}
}

func TestStatusDefaultsToIdle(t *testing.T) {
	svc := New(&stubMailer{}, nil)
	if svc.Status("never-seen") != domain.OrderIdle {
		t.Fatalf("expected Idle for an unknown session")
	}
}

func waitForStatus(t *testing.T, svc *Service, token string, want domain.OrderStatus) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if svc.Status(token) == want {
			return
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatalf("status never reached %s", want)
}
