package types

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rxtech-lab/argo-terminal/pkg/errors"
)

type Side string

type OrderStatus string

const (
	SideBuy  Side = "buy"
	SideSell Side = "sell"
)

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusFilled    OrderStatus = "filled"
	OrderStatusRejected  OrderStatus = "rejected"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// OrderIntent is a user-authored order proposal. It exists only until
// submission succeeds or the user discards it.
type OrderIntent struct {
	Symbol string `json:"symbol" yaml:"symbol" validate:"required"`
	Side   Side   `json:"side" yaml:"side" validate:"required,oneof=buy sell"`
	Qty    int64  `json:"qty" yaml:"qty" validate:"required,gte=1"`
}

// Validate validates the OrderIntent struct.
func (oi *OrderIntent) Validate() error {
	validate := validator.New()

	if err := validate.Struct(oi); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidIntent, "invalid order intent", err)
	}

	if !IsAllowedSymbol(oi.Symbol) {
		return errors.Newf(errors.ErrCodeSymbolNotAllowed, "unsupported symbol %q", oi.Symbol)
	}

	return nil
}

// OrderRecord is a backend-owned order. The client treats it as read-only;
// its status may change between polls but is never mutated locally.
type OrderRecord struct {
	ID          int64       `json:"id" yaml:"id"`
	Symbol      string      `json:"symbol" yaml:"symbol"`
	Side        Side        `json:"side" yaml:"side"`
	Qty         int64       `json:"qty" yaml:"qty"`
	Status      OrderStatus `json:"status" yaml:"status"`
	FilledPrice *float64    `json:"filled_price,omitempty" yaml:"filled_price,omitempty"`
	CreatedAt   *time.Time  `json:"created_at,omitempty" yaml:"created_at,omitempty"`
}
