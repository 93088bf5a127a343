// Package fixture holds the static seed dataset the mock backend serves.
// The store is read-only for its whole lifetime; engines receive it as an
// injected dependency so tests can swap in a smaller one.
package fixture

import (
	"golang.org/x/crypto/bcrypt"

	"velocity/internal/domain"
)

type Store struct {
	users    []domain.User
	products []domain.Product
}

func New(users []domain.User, products []domain.Product) *Store {
	return &Store{users: users, products: products}
}

// Default seeds the reference dataset: five demo users and six products.
// Fixture passwords are hashed at construction.
func Default() *Store {
	users := make([]domain.User, 0, len(seedUsers))
	for _, s := range seedUsers {
		h, _ := bcrypt.GenerateFromPassword([]byte(s.password), bcrypt.MinCost)
		users = append(users, domain.User{ID: s.id, Username: s.username, Hash: string(h)})
	}
	return New(users, seedProducts())
}

func (s *Store) UserByUsername(username string) (domain.User, bool) {
	for _, u := range s.users {
		if u.Username == username {
			return u, true
		}
	}
	return domain.User{}, false
}

// Products returns a copy of the catalog so callers can filter and sort
// without touching the fixture.
func (s *Store) Products() []domain.Product {
	out := make([]domain.Product, len(s.products))
	copy(out, s.products)
	return out
}

func (s *Store) ProductByID(id string) (domain.Product, bool) {
	for _, p := range s.products {
		if p.ID == id {
			return p, true
		}
	}
	return domain.Product{}, false
}

type seedUser struct {
	id, username, password string
}

var seedUsers = []seedUser{
	{"user1", "user1", "user@1"},
	{"user2", "user2", "user@2"},
	{"user3", "user3", "user@3"},
	{"user4", "user4", "user@4"},
	{"user5", "user5", "user@5"},
}

func seedProducts() []domain.Product {
	return []domain.Product{
		{
			ID:          "prod1",
			Name:        "Air Zoom Pegasus",
			Price:       120,
			Category:    "men",
			Image:       "https://images.unsplash.com/photo-1542291026-7eec264c27ff?w=800",
			Thumbnail:   "https://images.unsplash.com/photo-1542291026-7eec264c27ff?w=200",
			Description: "Premium running shoes with responsive cushioning",
			Sizes:       []string{"7", "8", "9", "10", "11"},
		},
		{
			ID:          "prod2",
			Name:        "React Infinity",
			Price:       160,
			Category:    "women",
			Image:       "https://images.unsplash.com/photo-1606107557195-0e29a4b5b4aa?w=800",
			Thumbnail:   "https://broken-link-404.com/image.jpg",
			Description: "Designed for long-distance comfort",
			Sizes:       []string{"6", "7", "8", "9", "10"},
		},
		{
			ID:          "prod3",
			Name:        "Dri-FIT Training Shirt",
			Price:       35,
			Category:    "men",
			Image:       "https://images.unsplash.com/photo-1618354691714-7d92150909db?w=800",
			Thumbnail:   "https://images.unsplash.com/photo-1618354691714-7d92150909db?w=200",
			Description: "Moisture-wicking performance tee",
			Sizes:       []string{"S", "M", "L", "XL"},
		},
		{
			ID:          "prod4",
			Name:        "Pro Compression Tights",
			Price:       65,
			Category:    "women",
			Image:       "https://images.unsplash.com/photo-1506629082955-511b1aa562c8?w=800",
			Thumbnail:   "https://images.unsplash.com/photo-1506629082955-511b1aa562c8?w=200",
			Description: "High-performance compression fit",
			Sizes:       []string{"XS", "S", "M", "L"},
		},
		{
			ID:          "prod5",
			Name:        "Court Vision Basketball",
			Price:       85,
			Category:    "men",
			Image:       "https://images.unsplash.com/photo-1608231387042-66d1773070a5?w=800",
			Thumbnail:   "https://images.unsplash.com/photo-1608231387042-66d1773070a5?w=200",
			Description: "Classic basketball sneakers",
			Sizes:       []string{"8", "9", "10", "11", "12"},
		},
		{
			ID:          "prod6",
			Name:        "Windrunner Jacket",
			Price:       100,
			Category:    "women",
			Image:       "https://images.unsplash.com/photo-1551488831-00ddcb6c6bd3?w=800",
			Thumbnail:   "https://images.unsplash.com/photo-1551488831-00ddcb6c6bd3?w=200",
			Description: "Lightweight weather-resistant jacket",
			Sizes:       []string{"XS", "S", "M", "L", "XL"},
		},
	}
}
