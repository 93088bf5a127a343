package kv

import (
	"encoding/json"
	"strings"

	"velocity/internal/domain"
	applog "velocity/internal/log"
)

const cartKeyPrefix = "cart:"

// CartRepo stores one line-item array per user under cart:<userId>.
type CartRepo struct{ kv Store }

func NewCartRepo(kv Store) *CartRepo { return &CartRepo{kv: kv} }

// Get returns the persisted cart for userID. A missing key, a storage error
// or unparsable JSON all degrade to an empty cart; corruption is logged and
// never surfaced to the caller.
func (r *CartRepo) Get(userID string) []domain.CartLineItem {
	raw, ok, err := r.kv.Get(cartKeyPrefix + userID)
	if err != nil {
		applog.Error(nil, "kv.cart.read", err, map[string]any{"userId": userID})
		return []domain.CartLineItem{}
	}
	if !ok {
		return []domain.CartLineItem{}
	}
	var items []domain.CartLineItem
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		applog.Security(nil, "kv.cart.corrupt", map[string]any{"userId": userID, "err": err.Error()})
		return []domain.CartLineItem{}
	}
	if items == nil {
		items = []domain.CartLineItem{}
	}
	return items
}

func (r *CartRepo) Save(userID string, items []domain.CartLineItem) error {
	if items == nil {
		items = []domain.CartLineItem{}
	}
	raw, err := json.Marshal(items)
	if err != nil {
		return err
	}
	return r.kv.Set(cartKeyPrefix+userID, string(raw))
}

// UserIDs lists every user with a persisted cart, in key order.
func (r *CartRepo) UserIDs() []string {
	keys, err := r.kv.Keys(cartKeyPrefix)
	if err != nil {
		applog.Error(nil, "kv.cart.keys", err, nil)
		return nil
	}
	ids := make([]string, 0, len(keys))
	for _, k := range keys {
		ids = append(ids, strings.TrimPrefix(k, cartKeyPrefix))
	}
	return ids
}
