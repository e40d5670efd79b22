package types

import (
	"strings"
	"time"
)

// AllowedSymbols is the fixed set of tickers the client will trade.
// Requests for symbols outside this set are never issued.
var AllowedSymbols = []string{"AAPL", "MSFT", "TSLA", "AMZN", "GOOGL", "NVDA"}

// NormalizeSymbol trims whitespace and uppercases a user-entered symbol.
func NormalizeSymbol(symbol string) string {
	return strings.ToUpper(strings.TrimSpace(symbol))
}

// IsAllowedSymbol reports whether the normalized symbol is in AllowedSymbols.
func IsAllowedSymbol(symbol string) bool {
	normalized := NormalizeSymbol(symbol)
	for _, s := range AllowedSymbols {
		if s == normalized {
			return true
		}
	}

	return false
}

// Quote is the latest backend price observation for one symbol. It is
// superseded on every poll; nothing beyond the rolling window is retained.
type Quote struct {
	Symbol    string    `json:"symbol" yaml:"symbol"`
	Price     float64   `json:"price" yaml:"price"`
	UpdatedAt time.Time `json:"updated_at" yaml:"updated_at"`
}

// PriceWindow is a bounded, chronologically ordered sequence of recent
// prices for one symbol. The oldest entry is evicted when a push exceeds
// the cap.
type PriceWindow struct {
	cap    int
	values []float64
}

// DefaultWindowCap is the rolling price window length used for trend and
// sparkline rendering.
const DefaultWindowCap = 60

// NewPriceWindow creates an empty window with the given cap.
// A cap below 1 falls back to DefaultWindowCap.
func NewPriceWindow(cap int) *PriceWindow {
	if cap < 1 {
		cap = DefaultWindowCap
	}

	return &PriceWindow{
		cap:    cap,
		values: make([]float64, 0, cap),
	}
}

// Push appends a price, evicting the oldest entry when the window is full.
func (w *PriceWindow) Push(price float64) {
	if len(w.values) == w.cap {
		w.values = append(w.values[:0], w.values[1:]...)
		w.values[len(w.values)-1] = price

		return
	}

	w.values = append(w.values, price)
}

// Replace swaps the window contents for a freshly fetched history slice,
// keeping only the newest cap entries.
func (w *PriceWindow) Replace(prices []float64) {
	if len(prices) > w.cap {
		prices = prices[len(prices)-w.cap:]
	}

	w.values = append(w.values[:0:0], prices...)
}

// Values returns a copy of the window contents in chronological order.
func (w *PriceWindow) Values() []float64 {
	return append([]float64(nil), w.values...)
}

// Len returns the number of prices currently held.
func (w *PriceWindow) Len() int {
	return len(w.values)
}

// Cap returns the maximum window length.
func (w *PriceWindow) Cap() int {
	return w.cap
}

// AccountSnapshot is the latest cash balance reported by the backend.
// The client never computes authoritative balances, it only estimates.
type AccountSnapshot struct {
	CashBalance float64 `json:"cash_balance" yaml:"cash_balance"`
}

// PositionSnapshot is one held symbol as reported by the backend.
type PositionSnapshot struct {
	Symbol   string  `json:"symbol" yaml:"symbol"`
	Qty      float64 `json:"qty" yaml:"qty"`
	AvgPrice float64 `json:"avg_price" yaml:"avg_price"`
}

// Positions is the full set of held symbols.
type Positions []PositionSnapshot

// QtyFor returns the held quantity for a symbol using a case-insensitive
// exact match. Absence means zero.
func (p Positions) QtyFor(symbol string) float64 {
	normalized := NormalizeSymbol(symbol)
	for _, pos := range p {
		if NormalizeSymbol(pos.Symbol) == normalized {
			return pos.Qty
		}
	}

	return 0
}

// PositionWithQuote is a position joined with its latest price, as served
// by the portfolio endpoint.
type PositionWithQuote struct {
	Symbol           string  `json:"symbol" yaml:"symbol"`
	Qty              float64 `json:"qty" yaml:"qty"`
	AvgPrice         float64 `json:"avg_price" yaml:"avg_price"`
	LastPrice        float64 `json:"last_price" yaml:"last_price"`
	MarketValue      float64 `json:"market_value" yaml:"market_value"`
	CostBasis        float64 `json:"cost_basis" yaml:"cost_basis"`
	UnrealizedPnL    float64 `json:"unrealized_pnl" yaml:"unrealized_pnl"`
	UnrealizedPnLPct float64 `json:"unrealized_pnl_pct" yaml:"unrealized_pnl_pct"`
}

// PortfolioSummary is the aggregate account view, consumed by surrounding
// pages. The order-entry core only triggers its refresh.
type PortfolioSummary struct {
	Cash           float64             `json:"cash" yaml:"cash"`
	Equity         float64             `json:"equity" yaml:"equity"`
	PositionsValue float64             `json:"positions_value" yaml:"positions_value"`
	UnrealizedPnL  float64             `json:"unrealized_pnl" yaml:"unrealized_pnl"`
	Positions      []PositionWithQuote `json:"positions" yaml:"positions"`
}
