package services_test

import (
	"testing"

	"velocity/internal/domain"
	"velocity/internal/kv"
	"velocity/internal/services"
)

func TestCreateOrderNoDedup(t *testing.T) {
	repo := kv.NewOrderRepo(kv.NewMem())
	svc := services.NewOrderService(repo)

	in := services.OrderInput{
		UserID: "user1",
		Items: []domain.CartLineItem{
			{ID: "i1", UserID: "user1", ProductID: "prod1", Name: "Air Zoom Pegasus", Price: 120, Quantity: 2, Size: "9"},
		},
		Total:        240,
		ShippingInfo: map[string]any{"name": "Test User", "address": "1 Demo St"},
		PaymentInfo:  map[string]any{"cardNumber": "4111111111111111"},
	}

	first, err := svc.Create(in)
	if err != nil {
		t.Fatal(err)
	}
	second, err := svc.Create(in)
	if err != nil {
		t.Fatal(err)
	}

	if first.ID == "" || second.ID == "" || first.ID == second.ID {
		t.Fatalf("ids must be distinct and non-empty: %q vs %q", first.ID, second.ID)
	}
	if first.CreatedAt == "" || second.CreatedAt == "" {
		t.Fatal("createdAt must be set")
	}
	if first.CreatedAt == second.CreatedAt {
		t.Fatalf("timestamps should differ: %s", first.CreatedAt)
	}

	log := repo.List()
	if len(log) != 2 {
		t.Fatalf("want 2 orders in the log, got %d", len(log))
	}
	if log[0].Total != 240 || len(log[0].Items) != 1 {
		t.Fatalf("order snapshot mangled: %+v", log[0])
	}
}

func TestCreateOrderKeepsCartIntact(t *testing.T) {
	store := kv.NewMem()
	cartRepo := kv.NewCartRepo(store)
	cartSvc := services.NewCartService(cartRepo, services.Canonical())
	orderSvc := services.NewOrderService(kv.NewOrderRepo(store))

	cart, err := cartSvc.Add("user1", services.NewItem{ProductID: "prod1", Price: 120, Quantity: 2, Size: "9"})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := orderSvc.Create(services.OrderInput{UserID: "user1", Items: cart, Total: 240}); err != nil {
		t.Fatal(err)
	}

	// materializing must not clear the cart
	if got := cartSvc.Get("user1"); len(got) != 1 {
		t.Fatalf("cart should be untouched, got %+v", got)
	}
}

func TestCreateOrderNilItems(t *testing.T) {
	svc := services.NewOrderService(kv.NewOrderRepo(kv.NewMem()))

	o, err := svc.Create(services.OrderInput{UserID: "user2"})
	if err != nil {
		t.Fatal(err)
	}
	if o.Items == nil || len(o.Items) != 0 {
		t.Fatalf("nil items should materialize as an empty snapshot, got %+v", o.Items)
	}
}
