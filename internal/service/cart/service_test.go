package cart

import (
	"testing"

	"tingz-storefront/internal/domain"
)

func tote() domain.Product {
	return domain.Product{ID: 1, Name: "Canvas Tote", Price: 3299, Category: "tote", Image: "/images/tote.jpg"}
}

func choker() domain.Product {
	return domain.Product{ID: 2, Name: "Beaded Choker", Price: 4799, Category: "jewelry"}
}

func TestAddTwiceIncrementsQuantity(t *testing.T) {
	svc := New()
	svc.Add("sess", tote())
	svc.Add("sess", tote())

	cart := svc.Get("sess")
	if len(cart.Items) != 1 {
		t.Fatalf("expected one line, got %d", len(cart.Items))
	}
	if cart.Items[0].Quantity != 2 {
		t.Fatalf("expected quantity 2, got %d", cart.Items[0].Quantity)
	}
}

func TestAddCopiesDisplayFields(t *testing.T) {
	svc := New()
	p := tote()
	svc.Add("sess", p)

	// a later catalog price change must not reprice the cart line
	p.Price = 9999
	cart := svc.Get("sess")
	if cart.Items[0].Price != 3299 {
		t.Fatalf("expected add-time price 3299, got %d", cart.Items[0].Price)
	}
	if cart.Items[0].Name != "Canvas Tote" || cart.Items[0].Image != "/images/tote.jpg" {
		t.Fatalf("display fields not copied: %+v", cart.Items[0])
	}
}

func TestSetQuantityBelowOneIsNoOp(t *testing.T) {
	svc := New()
	svc.Add("sess", tote())
	svc.SetQuantity("sess", 1, 0)
	svc.SetQuantity("sess", 1, -3)

	cart := svc.Get("sess")
	if cart.Items[0].Quantity != 1 {
		t.Fatalf("expected quantity unchanged at 1, got %d", cart.Items[0].Quantity)
	}
}

func TestSetQuantityReplaces(t *testing.T) {
	svc := New()
	svc.Add("sess", tote())
	svc.SetQuantity("sess", 1, 5)

	cart := svc.Get("sess")
	if cart.Items[0].Quantity != 5 {
		t.Fatalf("expected quantity 5, got %d", cart.Items[0].Quantity)
	}
}

func TestRemoveUnknownIsNoOp(t *testing.T) {
	svc := New()
	svc.Add("sess", tote())
	svc.Remove("sess", 99)
	svc.Remove("other-session", 1)

	if n := len(svc.Get("sess").Items); n != 1 {
		t.Fatalf("expected cart untouched, got %d lines", n)
	}
}

func TestRemoveDeletesLine(t *testing.T) {
	svc := New()
	svc.Add("sess", tote())
	svc.Add("sess", choker())
	svc.Remove("sess", 1)

	cart := svc.Get("sess")
	if len(cart.Items) != 1 || cart.Items[0].ProductID != 2 {
		t.Fatalf("unexpected cart after remove: %+v", cart.Items)
	}
}

func TestTotalAndItemCount(t *testing.T) {
	svc := New()
	svc.Add("sess", tote())
	svc.Add("sess", tote())
	svc.Add("sess", choker())

	cart := svc.Get("sess")
	if got := cart.Total(); got != 11397 {
		t.Fatalf("expected total 11397, got %d", got)
	}
	if got := cart.ItemCount(); got != 3 {
		t.Fatalf("expected item count 3, got %d", got)
	}
}

func TestPurgeProductRemovesFromAllCarts(t *testing.T) {
	svc := New()
	svc.Add("a", tote())
	svc.Add("a", choker())
	svc.Add("b", tote())

	svc.PurgeProduct(1)

	if items := svc.Get("a").Items; len(items) != 1 || items[0].ProductID != 2 {
		t.Fatalf("cart a not purged: %+v", items)
	}
	if items := svc.Get("b").Items; len(items) != 0 {
		t.Fatalf("cart b not purged: %+v", items)
	}
}

func TestGetReturnsSnapshot(t *testing.T) {
	svc := New()
	svc.Add("sess", tote())

	snapshot := svc.Get("sess")
	snapshot.Items[0].Quantity = 42

	if svc.Get("sess").Items[0].Quantity != 1 {
		t.Fatalf("mutating the snapshot leaked into the live cart")
	}
}

func TestCartsAreSessionScoped(t *testing.T) {
	svc := New()
	svc.Add("a", tote())

	if len(svc.Get("b").Items) != 0 {
		t.Fatalf("session b should start with an empty cart")
	}
}
