package kv

import (
	"encoding/json"

	"velocity/internal/domain"
	applog "velocity/internal/log"
)

const ordersKey = "orders"

// OrderRepo is the append-only order log. Nothing on the request surface
// reads it back; List exists for tests.
type OrderRepo struct{ kv Store }

func NewOrderRepo(kv Store) *OrderRepo { return &OrderRepo{kv: kv} }

func (r *OrderRepo) Append(o domain.Order) error {
	orders := r.List()
	orders = append(orders, o)
	raw, err := json.Marshal(orders)
	if err != nil {
		return err
	}
	return r.kv.Set(ordersKey, string(raw))
}

func (r *OrderRepo) List() []domain.Order {
	raw, ok, err := r.kv.Get(ordersKey)
	if err != nil {
		applog.Error(nil, "kv.orders.read", err, nil)
		return []domain.Order{}
	}
	if !ok {
		return []domain.Order{}
	}
	var orders []domain.Order
	if err := json.Unmarshal([]byte(raw), &orders); err != nil {
		applog.Security(nil, "kv.orders.corrupt", map[string]any{"err": err.Error()})
		return []domain.Order{}
	}
	if orders == nil {
		orders = []domain.Order{}
	}
	return orders
}
