// Package testsupport provides an in-process stand-in for the trading
// backend so client, feed, and submitter tests can exercise the real HTTP
// path without a running exchange.
package testsupport

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"time"

	"github.com/gorilla/mux"
	"github.com/rxtech-lab/argo-terminal/internal/types"
)

// Backend is a fake trading backend. All fields guarded by mu may be
// changed between requests to steer test scenarios.
type Backend struct {
	mu  sync.Mutex
	srv *httptest.Server

	cash      float64
	positions types.Positions
	quotes    map[string]float64
	history   map[string][]float64
	orders    []types.OrderRecord

	// rejectDetail, when non-empty, makes order placement fail with a 400
	// and this detail message. rejectWithoutDetail forces a bare 400.
	rejectDetail        string
	rejectWithoutDetail bool

	// failMarketData makes quote and history requests return 500.
	failMarketData bool

	requireToken      string
	lastClientOrderID string
	requestCounts     map[string]int
	nextOrderID       int64
}

// NewBackend starts a fake backend with a reasonable default ledger.
func NewBackend() *Backend {
	b := &Backend{
		cash: 10000,
		positions: types.Positions{
			{Symbol: "AAPL", Qty: 3, AvgPrice: 180},
		},
		quotes: map[string]float64{
			"AAPL": 100,
			"MSFT": 410,
		},
		history: map[string][]float64{
			"AAPL": {100, 105},
		},
		requestCounts: map[string]int{},
		nextOrderID:   1,
	}

	r := mux.NewRouter()
	r.HandleFunc("/trading/account", b.handleAccount).Methods(http.MethodGet)
	r.HandleFunc("/trading/positions", b.handlePositions).Methods(http.MethodGet)
	r.HandleFunc("/trading/orders", b.handleListOrders).Methods(http.MethodGet)
	r.HandleFunc("/trading/orders", b.handlePlaceOrder).Methods(http.MethodPost)
	r.HandleFunc("/trading/portfolio", b.handlePortfolio).Methods(http.MethodGet)
	r.HandleFunc("/market/quote/{symbol}", b.handleQuote).Methods(http.MethodGet)
	r.HandleFunc("/market/history/{symbol}", b.handleHistory).Methods(http.MethodGet)
	r.HandleFunc("/market/symbols", b.handleSymbols).Methods(http.MethodGet)
	r.HandleFunc("/auth/login", b.handleLogin).Methods(http.MethodPost)
	r.HandleFunc("/auth/register", b.handleRegister).Methods(http.MethodPost)

	b.srv = httptest.NewServer(b.countRequests(r))

	return b
}

// URL returns the backend base URL.
func (b *Backend) URL() string {
	return b.srv.URL
}

// Close shuts the backend down.
func (b *Backend) Close() {
	b.srv.Close()
}

// SetCash sets the account cash balance.
func (b *Backend) SetCash(cash float64) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.cash = cash
}

// SetQuote sets the current price for a symbol.
func (b *Backend) SetQuote(symbol string, price float64) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.quotes[types.NormalizeSymbol(symbol)] = price
}

// SetHistory sets the price history for a symbol.
func (b *Backend) SetHistory(symbol string, prices []float64) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.history[types.NormalizeSymbol(symbol)] = prices
}

// SetPositions replaces the held positions.
func (b *Backend) SetPositions(positions types.Positions) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.positions = positions
}

// RejectOrders makes subsequent order placements fail with the given
// detail. An empty detail with reject=true produces a bare 400 response.
func (b *Backend) RejectOrders(detail string, withoutDetail bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.rejectDetail = detail
	b.rejectWithoutDetail = withoutDetail
}

// FailMarketData toggles 500 responses for quote and history requests.
func (b *Backend) FailMarketData(fail bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.failMarketData = fail
}

// RequireToken makes every request demand this bearer token.
func (b *Backend) RequireToken(token string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.requireToken = token
}

// RequestCount returns how many requests matched "METHOD path".
func (b *Backend) RequestCount(key string) int {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.requestCounts[key]
}

// LastClientOrderID returns the idempotency key of the latest order
// placement.
func (b *Backend) LastClientOrderID() string {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.lastClientOrderID
}

// Orders returns the orders accepted so far.
func (b *Backend) Orders() []types.OrderRecord {
	b.mu.Lock()
	defer b.mu.Unlock()

	return append([]types.OrderRecord(nil), b.orders...)
}

func (b *Backend) countRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b.mu.Lock()
		b.requestCounts[r.Method+" "+r.URL.Path]++
		token := b.requireToken
		b.mu.Unlock()

		if token != "" && r.Header.Get("Authorization") != "Bearer "+token {
			writeJSON(w, http.StatusUnauthorized, map[string]string{"detail": "not authenticated"})

			return
		}

		next.ServeHTTP(w, r)
	})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func (b *Backend) handleAccount(w http.ResponseWriter, _ *http.Request) {
	b.mu.Lock()
	defer b.mu.Unlock()

	writeJSON(w, http.StatusOK, types.AccountSnapshot{CashBalance: b.cash})
}

func (b *Backend) handlePositions(w http.ResponseWriter, _ *http.Request) {
	b.mu.Lock()
	defer b.mu.Unlock()

	writeJSON(w, http.StatusOK, b.positions)
}

func (b *Backend) handleListOrders(w http.ResponseWriter, _ *http.Request) {
	b.mu.Lock()
	defer b.mu.Unlock()

	writeJSON(w, http.StatusOK, b.orders)
}

func (b *Backend) handlePlaceOrder(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.lastClientOrderID = r.Header.Get("X-Client-Order-Id")

	if b.rejectWithoutDetail {
		w.WriteHeader(http.StatusBadRequest)

		return
	}

	if b.rejectDetail != "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"detail": b.rejectDetail})

		return
	}

	var req struct {
		Symbol string     `json:"symbol"`
		Side   types.Side `json:"side"`
		Qty    int64      `json:"qty"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"detail": "invalid body"})

		return
	}

	now := time.Now().UTC()
	record := types.OrderRecord{
		ID:        b.nextOrderID,
		Symbol:    req.Symbol,
		Side:      req.Side,
		Qty:       req.Qty,
		Status:    types.OrderStatusFilled,
		CreatedAt: &now,
	}
	b.nextOrderID++
	b.orders = append(b.orders, record)

	writeJSON(w, http.StatusCreated, record)
}

func (b *Backend) handlePortfolio(w http.ResponseWriter, _ *http.Request) {
	b.mu.Lock()
	defer b.mu.Unlock()

	summary := types.PortfolioSummary{Cash: b.cash}
	for _, pos := range b.positions {
		price := b.quotes[types.NormalizeSymbol(pos.Symbol)]
		summary.PositionsValue += pos.Qty * price
		summary.Positions = append(summary.Positions, types.PositionWithQuote{
			Symbol:      pos.Symbol,
			Qty:         pos.Qty,
			AvgPrice:    pos.AvgPrice,
			LastPrice:   price,
			MarketValue: pos.Qty * price,
			CostBasis:   pos.Qty * pos.AvgPrice,
		})
	}
	summary.Equity = summary.Cash + summary.PositionsValue

	writeJSON(w, http.StatusOK, summary)
}

func (b *Backend) handleQuote(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.failMarketData {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"detail": "market data unavailable"})

		return
	}

	symbol := types.NormalizeSymbol(mux.Vars(r)["symbol"])

	price, ok := b.quotes[symbol]
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"detail": "unknown symbol"})

		return
	}

	writeJSON(w, http.StatusOK, types.Quote{
		Symbol:    symbol,
		Price:     price,
		UpdatedAt: time.Now().UTC(),
	})
}

func (b *Backend) handleHistory(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.failMarketData {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"detail": "market data unavailable"})

		return
	}

	symbol := types.NormalizeSymbol(mux.Vars(r)["symbol"])

	prices := b.history[symbol]

	if raw := r.URL.Query().Get("limit"); raw != "" {
		if limit, err := strconv.Atoi(raw); err == nil && limit > 0 && limit < len(prices) {
			prices = prices[len(prices)-limit:]
		}
	}

	if prices == nil {
		prices = []float64{}
	}

	writeJSON(w, http.StatusOK, prices)
}

func (b *Backend) handleSymbols(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, types.AllowedSymbols)
}

func (b *Backend) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Email == "" || req.Password == "" {
		writeJSON(w, http.StatusUnprocessableEntity, map[string]string{"detail": "email and password required"})

		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"access_token": "test-token-" + req.Email,
		"token_type":   "bearer",
	})
}

func (b *Backend) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Email == "" || req.Password == "" {
		writeJSON(w, http.StatusUnprocessableEntity, map[string]string{"detail": "email and password required"})

		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{"status": "created"})
}
