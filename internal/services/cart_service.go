package services

import (
	"github.com/google/uuid"

	"velocity/internal/domain"
	"velocity/internal/kv"
)

type CartService struct {
	Carts  *kv.CartRepo
	Policy Policy
}

func NewCartService(carts *kv.CartRepo, pol Policy) *CartService {
	return &CartService{Carts: carts, Policy: pol}
}

// NewItem carries the caller-supplied fields of an add-to-cart request.
// Quantity is deliberately not range-checked anywhere below the router;
// zero and negative values flow through as-is.
type NewItem struct {
	ProductID string
	Name      string
	Price     float64
	Quantity  int
	Size      string
	Image     string
}

func swapIdentity(userID string) string {
	switch userID {
	case "user1":
		return "user2"
	case "user2":
		return "user1"
	}
	return userID
}

// Get returns the user's cart; an unknown or empty userID yields an empty
// cart, never an error. Under SwapCartIdentity the user1/user2 carts are
// deliberately crossed on reads only.
func (s *CartService) Get(userID string) []domain.CartLineItem {
	if userID == "" {
		return []domain.CartLineItem{}
	}
	if s.Policy.SwapCartIdentity {
		userID = swapIdentity(userID)
	}
	return s.Carts.Get(userID)
}

// Add appends in to the user's cart. With DedupOnAdd an existing
// (productId, size) line absorbs the incoming quantity instead.
func (s *CartService) Add(userID string, in NewItem) ([]domain.CartLineItem, error) {
	if userID == "" {
		return []domain.CartLineItem{}, nil
	}
	cart := s.Carts.Get(userID)

	if s.Policy.DedupOnAdd {
		for i := range cart {
			if cart[i].ProductID == in.ProductID && cart[i].Size == in.Size {
				cart[i].Quantity += in.Quantity
				return cart, s.Carts.Save(userID, cart)
			}
		}
	}

	cart = append(cart, domain.CartLineItem{
		ID:        uuid.NewString(),
		UserID:    userID,
		ProductID: in.ProductID,
		Name:      in.Name,
		Price:     in.Price,
		Quantity:  in.Quantity,
		Size:      in.Size,
		Image:     in.Image,
	})
	return cart, s.Carts.Save(userID, cart)
}

// UpdateQuantity sets the quantity of the line with itemID. Canonical mode
// touches only userID's cart and drops lines left at quantity <= 0; with
// ScanAllCarts every persisted cart is rewritten and nothing is filtered,
// so any holder of an item id can mutate another user's line.
func (s *CartService) UpdateQuantity(userID, itemID string, quantity int) ([]domain.CartLineItem, error) {
	if s.Policy.ScanAllCarts {
		for _, uid := range s.Carts.UserIDs() {
			cart := s.Carts.Get(uid)
			for i := range cart {
				if cart[i].ID == itemID {
					cart[i].Quantity = quantity
				}
			}
			if err := s.Carts.Save(uid, cart); err != nil {
				return nil, err
			}
		}
		return nil, nil
	}

	if userID == "" {
		return []domain.CartLineItem{}, nil
	}
	cart := s.Carts.Get(userID)
	for i := range cart {
		if cart[i].ID == itemID {
			cart[i].Quantity = quantity
		}
	}
	if s.Policy.DropNonPositive {
		kept := cart[:0]
		for _, it := range cart {
			if it.Quantity > 0 {
				kept = append(kept, it)
			}
		}
		cart = kept
	}
	return cart, s.Carts.Save(userID, cart)
}

// Remove deletes the line with itemID; an absent id is a no-op. ScanAllCarts
// walks every cart, as the reference boundary does.
func (s *CartService) Remove(userID, itemID string) ([]domain.CartLineItem, error) {
	if s.Policy.ScanAllCarts {
		for _, uid := range s.Carts.UserIDs() {
			cart := s.Carts.Get(uid)
			kept := cart[:0]
			for _, it := range cart {
				if it.ID != itemID {
					kept = append(kept, it)
				}
			}
			if err := s.Carts.Save(uid, kept); err != nil {
				return nil, err
			}
		}
		return nil, nil
	}

	if userID == "" {
		return []domain.CartLineItem{}, nil
	}
	cart := s.Carts.Get(userID)
	kept := cart[:0]
	for _, it := range cart {
		if it.ID != itemID {
			kept = append(kept, it)
		}
	}
	return kept, s.Carts.Save(userID, kept)
}

// Clear overwrites the user's cart with an empty sequence.
func (s *CartService) Clear(userID string) ([]domain.CartLineItem, error) {
	if userID == "" {
		return []domain.CartLineItem{}, nil
	}
	empty := []domain.CartLineItem{}
	return empty, s.Carts.Save(userID, empty)
}
