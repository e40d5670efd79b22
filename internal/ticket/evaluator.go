package ticket

import (
	"math"
	"strings"

	"github.com/moznion/go-optional"
	"github.com/rxtech-lab/argo-terminal/internal/types"
	"github.com/rxtech-lab/argo-terminal/pkg/errors"
	"github.com/shopspring/decimal"
)

// EvalInput is everything the eligibility evaluation reads: the live
// order intent plus the latest snapshot of each feed. The evaluator never
// owns or mutates any of it.
type EvalInput struct {
	Symbol  string
	Side    types.Side
	Qty     float64
	Quote   optional.Option[types.Quote]
	Account types.AccountSnapshot
	HeldQty float64
}

// Verdict is the evaluator's current judgment on whether the intent may be
// submitted. MaxBuy and MaxSell are always populated so the UI can offer
// one-click "set quantity to maximum" actions even while invalid.
type Verdict struct {
	Valid   bool
	Code    errors.ErrorCode
	Reason  string
	MaxBuy  int64
	MaxSell int64
}

// Retriable reports whether the verdict clears on its own as feed data
// arrives, without the user changing input.
func (v Verdict) Retriable() bool {
	return v.Code == errors.ErrCodeWaitingForPrice
}

// MaxBuy returns floor(cash/price), or 0 when no positive price is
// available.
func MaxBuy(cash, price float64) int64 {
	if price <= 0 {
		return 0
	}

	max := decimal.NewFromFloat(cash).
		Div(decimal.NewFromFloat(price)).
		Floor().
		IntPart()
	if max < 0 {
		return 0
	}

	return max
}

// MaxSell returns the held quantity floored and clamped to zero.
func MaxSell(held float64) int64 {
	if held <= 0 || math.IsNaN(held) {
		return 0
	}

	return int64(math.Floor(held))
}

// wholeQty reports whether qty is a finite whole number >= 1.
func wholeQty(qty float64) bool {
	return !math.IsNaN(qty) && !math.IsInf(qty, 0) && qty >= 1 && qty == math.Trunc(qty)
}

// Evaluate combines the intent with the latest feed snapshots into a
// single verdict. Rules short-circuit in order; the first failure wins.
// Callers must re-invoke it on every change to any input so the verdict
// never reflects a stale combination.
func Evaluate(in EvalInput) Verdict {
	symbol := types.NormalizeSymbol(in.Symbol)

	price := 0.0
	if in.Quote.IsSome() {
		price = in.Quote.Unwrap().Price
	}

	verdict := Verdict{
		MaxBuy:  MaxBuy(in.Account.CashBalance, price),
		MaxSell: MaxSell(in.HeldQty),
	}

	if symbol == "" {
		verdict.Code = errors.ErrCodeSymbolRequired
		verdict.Reason = "Symbol is required."

		return verdict
	}

	if !types.IsAllowedSymbol(symbol) {
		verdict.Code = errors.ErrCodeSymbolNotAllowed
		verdict.Reason = "Unsupported symbol. Allowed: " + strings.Join(types.AllowedSymbols, ", ")

		return verdict
	}

	if !wholeQty(in.Qty) {
		verdict.Code = errors.ErrCodeInvalidQuantity
		verdict.Reason = "Quantity must be a whole number >= 1."

		return verdict
	}

	switch in.Side {
	case types.SideBuy:
		if price <= 0 {
			verdict.Code = errors.ErrCodeWaitingForPrice
			verdict.Reason = "Waiting for live price..."

			return verdict
		}

		// Compared in float space: converting first would wrap a
		// quantity beyond the int64 range below the bound.
		if in.Qty > float64(verdict.MaxBuy) {
			verdict.Code = errors.ErrCodeInsufficientCash
			verdict.Reason = "Insufficient cash. Max buy: " + formatInt(verdict.MaxBuy)

			return verdict
		}
	case types.SideSell:
		if in.Qty > float64(verdict.MaxSell) {
			verdict.Code = errors.ErrCodeInsufficientShares
			verdict.Reason = "Insufficient shares. Max sell: " + formatInt(verdict.MaxSell)

			return verdict
		}
	}

	verdict.Valid = true

	return verdict
}

// EstimatedNotional returns price*qty when a live price is available.
func EstimatedNotional(quote optional.Option[types.Quote], qty float64) optional.Option[decimal.Decimal] {
	if quote.IsNone() || math.IsNaN(qty) {
		return optional.None[decimal.Decimal]()
	}

	price := quote.Unwrap().Price
	if price <= 0 {
		return optional.None[decimal.Decimal]()
	}

	return optional.Some(decimal.NewFromFloat(price).Mul(decimal.NewFromFloat(qty)))
}

func formatInt(n int64) string {
	return decimal.NewFromInt(n).String()
}
