package handlers

import (
	"velocity/internal/fixture"
	"velocity/internal/kv"
	"velocity/internal/services"
)

type Deps struct {
	Auth    *AuthHandler
	Product *ProductHandler
	Cart    *CartHandler
	Order   *OrderHandler
	Page    *PageHandler
}

func NewDeps(store kv.Store, fx *fixture.Store, pol services.Policy) *Deps {
	cartRepo := kv.NewCartRepo(store)
	orderRepo := kv.NewOrderRepo(store)

	authSvc := services.NewAuthService(fx, pol)
	catalogSvc := services.NewCatalogService(fx, pol)
	cartSvc := services.NewCartService(cartRepo, pol)
	orderSvc := services.NewOrderService(orderRepo)

	return &Deps{
		Auth:    &AuthHandler{Auth: authSvc},
		Product: &ProductHandler{Catalog: catalogSvc},
		Cart:    &CartHandler{Cart: cartSvc},
		Order:   &OrderHandler{Orders: orderSvc},
		Page:    &PageHandler{Catalog: catalogSvc},
	}
}
