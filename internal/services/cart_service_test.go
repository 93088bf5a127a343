package services_test

import (
	"reflect"
	"testing"

	"velocity/internal/domain"
	"velocity/internal/kv"
	"velocity/internal/services"
)

func newCartService(t *testing.T, pol services.Policy) (*services.CartService, *kv.CartRepo) {
	t.Helper()
	repo := kv.NewCartRepo(kv.NewMem())
	return services.NewCartService(repo, pol), repo
}

func TestAddDedupsSameProductAndSize(t *testing.T) {
	svc, _ := newCartService(t, services.Canonical())

	if _, err := svc.Add("user1", services.NewItem{ProductID: "prod1", Name: "Air Zoom Pegasus", Price: 120, Quantity: 2, Size: "9"}); err != nil {
		t.Fatal(err)
	}
	cart, err := svc.Add("user1", services.NewItem{ProductID: "prod1", Name: "Air Zoom Pegasus", Price: 120, Quantity: 3, Size: "9"})
	if err != nil {
		t.Fatal(err)
	}

	if len(cart) != 1 {
		t.Fatalf("want one merged line, got %d", len(cart))
	}
	if cart[0].Quantity != 5 {
		t.Fatalf("want quantity 5, got %d", cart[0].Quantity)
	}

	// different size -> separate line
	cart, err = svc.Add("user1", services.NewItem{ProductID: "prod1", Quantity: 1, Size: "10"})
	if err != nil {
		t.Fatal(err)
	}
	if len(cart) != 2 {
		t.Fatalf("want two lines, got %d", len(cart))
	}
}

func TestAddLegacyAlwaysAppends(t *testing.T) {
	svc, _ := newCartService(t, services.Legacy())

	for i := 0; i < 2; i++ {
		if _, err := svc.Add("user3", services.NewItem{ProductID: "prod1", Quantity: 1, Size: "9"}); err != nil {
			t.Fatal(err)
		}
	}
	cart := svc.Get("user3")
	if len(cart) != 2 {
		t.Fatalf("legacy add should append, got %d lines", len(cart))
	}
	if cart[0].ID == cart[1].ID {
		t.Fatal("line ids should be unique")
	}
}

func TestGetMissingUser(t *testing.T) {
	svc, _ := newCartService(t, services.Canonical())
	if cart := svc.Get("nobody"); len(cart) != 0 {
		t.Fatalf("want empty cart, got %+v", cart)
	}
	if cart := svc.Get(""); len(cart) != 0 {
		t.Fatalf("empty userId should yield empty cart, got %+v", cart)
	}
}

func TestRemoveUnknownIDIsNoop(t *testing.T) {
	svc, _ := newCartService(t, services.Canonical())

	if _, err := svc.Add("user1", services.NewItem{ProductID: "prod1", Quantity: 1, Size: "9"}); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.Add("user1", services.NewItem{ProductID: "prod3", Quantity: 2, Size: "M"}); err != nil {
		t.Fatal(err)
	}

	before := svc.Get("user1")
	after, err := svc.Remove("user1", "no-such-id")
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(before, after) {
		t.Fatalf("remove of unknown id changed the cart:\nbefore %+v\nafter  %+v", before, after)
	}
}

func TestRemoveDeletesLine(t *testing.T) {
	svc, _ := newCartService(t, services.Canonical())

	cart, err := svc.Add("user1", services.NewItem{ProductID: "prod1", Quantity: 1, Size: "9"})
	if err != nil {
		t.Fatal(err)
	}
	cart, err = svc.Remove("user1", cart[0].ID)
	if err != nil {
		t.Fatal(err)
	}
	if len(cart) != 0 {
		t.Fatalf("want empty cart, got %+v", cart)
	}
}

func TestUpdateQuantityZero(t *testing.T) {
	// canonical: the line is dropped
	svc, _ := newCartService(t, services.Canonical())
	cart, err := svc.Add("user1", services.NewItem{ProductID: "prod1", Quantity: 2, Size: "9"})
	if err != nil {
		t.Fatal(err)
	}
	cart, err = svc.UpdateQuantity("user1", cart[0].ID, 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(cart) != 0 {
		t.Fatalf("canonical update to 0 should drop the line, got %+v", cart)
	}

	// legacy: retained at quantity 0
	legacy, _ := newCartService(t, services.Legacy())
	added, err := legacy.Add("user1", services.NewItem{ProductID: "prod1", Quantity: 2, Size: "9"})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := legacy.UpdateQuantity("", added[0].ID, 0); err != nil {
		t.Fatal(err)
	}
	got := legacy.Get("user2") // read through the identity swap
	if len(got) != 1 || got[0].Quantity != 0 {
		t.Fatalf("legacy update should retain the zero line, got %+v", got)
	}
}

func TestUpdateQuantityAcceptsNegative(t *testing.T) {
	svc, _ := newCartService(t, services.Canonical())
	cart, err := svc.Add("user1", services.NewItem{ProductID: "prod1", Quantity: 2, Size: "9"})
	if err != nil {
		t.Fatal(err)
	}
	// no lower-bound validation; the filter then drops the negative line
	cart, err = svc.UpdateQuantity("user1", cart[0].ID, -3)
	if err != nil {
		t.Fatal(err)
	}
	if len(cart) != 0 {
		t.Fatalf("negative quantity line should be filtered, got %+v", cart)
	}
}

func TestLegacyIdentitySwapOnReads(t *testing.T) {
	svc, repo := newCartService(t, services.Legacy())

	if err := repo.Save("user2", []domain.CartLineItem{{ID: "i1", UserID: "user2", ProductID: "prod2", Quantity: 1}}); err != nil {
		t.Fatal(err)
	}

	// reading user1 returns user2's cart
	got := svc.Get("user1")
	if len(got) != 1 || got[0].ID != "i1" {
		t.Fatalf("swap read: got %+v", got)
	}
	// user2 sees user1's (empty) cart
	if got := svc.Get("user2"); len(got) != 0 {
		t.Fatalf("swap read for user2 should be empty, got %+v", got)
	}
	// other ids pass through
	if err := repo.Save("user5", []domain.CartLineItem{{ID: "i2", UserID: "user5"}}); err != nil {
		t.Fatal(err)
	}
	if got := svc.Get("user5"); len(got) != 1 {
		t.Fatalf("non-swapped id should pass through, got %+v", got)
	}

	// writes are NOT swapped: adding as user1 lands in user1's key
	if _, err := svc.Add("user1", services.NewItem{ProductID: "prod1", Quantity: 1, Size: "9"}); err != nil {
		t.Fatal(err)
	}
	if got := repo.Get("user1"); len(got) != 1 {
		t.Fatalf("add should write the unswapped key, got %+v", got)
	}
}

func TestLegacyScanTouchesOtherUsersCarts(t *testing.T) {
	svc, repo := newCartService(t, services.Legacy())

	if err := repo.Save("user4", []domain.CartLineItem{{ID: "victim", UserID: "user4", Quantity: 1}}); err != nil {
		t.Fatal(err)
	}
	if err := repo.Save("user5", []domain.CartLineItem{{ID: "other", UserID: "user5", Quantity: 1}}); err != nil {
		t.Fatal(err)
	}

	// any caller who knows the id can mutate it
	if _, err := svc.UpdateQuantity("", "victim", 9); err != nil {
		t.Fatal(err)
	}
	if got := repo.Get("user4"); got[0].Quantity != 9 {
		t.Fatalf("scan update missed: %+v", got)
	}

	if _, err := svc.Remove("", "other"); err != nil {
		t.Fatal(err)
	}
	if got := repo.Get("user5"); len(got) != 0 {
		t.Fatalf("scan remove missed: %+v", got)
	}
}

func TestClear(t *testing.T) {
	svc, repo := newCartService(t, services.Canonical())

	if _, err := svc.Add("user1", services.NewItem{ProductID: "prod1", Quantity: 1, Size: "9"}); err != nil {
		t.Fatal(err)
	}
	cart, err := svc.Clear("user1")
	if err != nil {
		t.Fatal(err)
	}
	if len(cart) != 0 || len(repo.Get("user1")) != 0 {
		t.Fatal("clear should persist an empty sequence")
	}
}
