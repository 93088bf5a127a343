package services

import (
	"sort"
	"strconv"
	"strings"

	"velocity/internal/domain"
	"velocity/internal/fixture"
)

type CatalogService struct {
	Products *fixture.Store
	Policy   Policy
}

func NewCatalogService(products *fixture.Store, pol Policy) *CatalogService {
	return &CatalogService{Products: products, Policy: pol}
}

type Query struct {
	Category string // "", "all", "men", "women"
	Search   string // case-insensitive substring of name
	Sort     string // "", "price-asc", "price-desc"
}

// Query filters and sorts a copy of the catalog: category, then search,
// then sort. Under InvertCategory the men/women filter is flipped; under
// LexicalPriceSort prices compare by their string form.
func (s *CatalogService) Query(q Query) []domain.Product {
	results := s.Products.Products()

	if q.Category != "" && q.Category != "all" {
		want := q.Category
		if s.Policy.InvertCategory {
			switch want {
			case "men":
				want = "women"
			case "women":
				want = "men"
			}
		}
		kept := results[:0]
		for _, p := range results {
			if p.Category == want {
				kept = append(kept, p)
			}
		}
		results = kept
	}

	if needle := strings.ToLower(strings.TrimSpace(q.Search)); needle != "" {
		kept := results[:0]
		for _, p := range results {
			if strings.Contains(strings.ToLower(p.Name), needle) {
				kept = append(kept, p)
			}
		}
		results = kept
	}

	switch q.Sort {
	case "price-asc":
		sort.SliceStable(results, func(i, j int) bool {
			return s.priceLess(results[i].Price, results[j].Price)
		})
	case "price-desc":
		sort.SliceStable(results, func(i, j int) bool {
			return s.priceLess(results[j].Price, results[i].Price)
		})
	}

	return results
}

func (s *CatalogService) priceLess(a, b float64) bool {
	if s.Policy.LexicalPriceSort {
		return strconv.FormatFloat(a, 'f', -1, 64) < strconv.FormatFloat(b, 'f', -1, 64)
	}
	return a < b
}

func (s *CatalogService) GetByID(id string) (domain.Product, bool) {
	return s.Products.ProductByID(id)
}
