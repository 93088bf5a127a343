package services

import (
	"time"

	"github.com/google/uuid"

	"velocity/internal/domain"
	"velocity/internal/kv"
)

type OrderService struct {
	Orders *kv.OrderRepo
}

func NewOrderService(orders *kv.OrderRepo) *OrderService {
	return &OrderService{Orders: orders}
}

type OrderInput struct {
	UserID       string
	Items        []domain.CartLineItem
	Total        float64
	ShippingInfo map[string]any
	PaymentInfo  map[string]any
}

// Create materializes the snapshot into an immutable order and appends it to
// the order log. It always succeeds, never deduplicates, and does not touch
// the originating cart; clearing that is the caller's call.
func (s *OrderService) Create(in OrderInput) (domain.Order, error) {
	items := in.Items
	if items == nil {
		items = []domain.CartLineItem{}
	}
	o := domain.Order{
		ID:           uuid.NewString(),
		UserID:       in.UserID,
		Items:        items,
		Total:        in.Total,
		ShippingInfo: in.ShippingInfo,
		PaymentInfo:  in.PaymentInfo,
		CreatedAt:    time.Now().UTC().Format(time.RFC3339Nano),
	}
	return o, s.Orders.Append(o)
}
