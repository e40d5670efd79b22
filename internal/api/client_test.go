package api

import (
	"context"
	"testing"
	"time"

	"github.com/rxtech-lab/argo-terminal/internal/config"
	"github.com/rxtech-lab/argo-terminal/internal/logger"
	"github.com/rxtech-lab/argo-terminal/internal/session"
	"github.com/rxtech-lab/argo-terminal/internal/testsupport"
	"github.com/rxtech-lab/argo-terminal/internal/types"
	"github.com/rxtech-lab/argo-terminal/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, backend *testsupport.Backend) (*Client, *session.Session) {
	t.Helper()
	t.Setenv(session.EnvToken, "")

	sess, err := session.Load("")
	require.NoError(t, err)

	cfg := config.APIConfig{
		BaseURL: backend.URL(),
		Timeout: config.Duration(5 * time.Second),
	}

	return NewClient(cfg, sess, logger.NewNopLogger()), sess
}

func TestGetAccount(t *testing.T) {
	backend := testsupport.NewBackend()
	defer backend.Close()
	backend.SetCash(1234.56)

	client, _ := newTestClient(t, backend)

	account, err := client.GetAccount(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1234.56, account.CashBalance)
}

func TestGetPositions(t *testing.T) {
	backend := testsupport.NewBackend()
	defer backend.Close()
	backend.SetPositions(types.Positions{
		{Symbol: "AAPL", Qty: 3, AvgPrice: 180},
		{Symbol: "MSFT", Qty: 1, AvgPrice: 410},
	})

	client, _ := newTestClient(t, backend)

	positions, err := client.GetPositions(context.Background())
	require.NoError(t, err)
	require.Len(t, positions, 2)
	assert.Equal(t, float64(3), positions.QtyFor("aapl"))
}

func TestGetQuote(t *testing.T) {
	backend := testsupport.NewBackend()
	defer backend.Close()
	backend.SetQuote("AAPL", 187.25)

	client, _ := newTestClient(t, backend)

	quote, err := client.GetQuote(context.Background(), "aapl")
	require.NoError(t, err)
	assert.Equal(t, "AAPL", quote.Symbol)
	assert.Equal(t, 187.25, quote.Price)
	assert.False(t, quote.UpdatedAt.IsZero())
}

func TestGetQuoteDisallowedSymbolNeverHitsNetwork(t *testing.T) {
	backend := testsupport.NewBackend()
	defer backend.Close()

	client, _ := newTestClient(t, backend)

	_, err := client.GetQuote(context.Background(), "DOGE")
	assert.Error(t, err)
	assert.Equal(t, errors.ErrCodeSymbolNotAllowed, errors.GetCode(err))
	assert.Zero(t, backend.RequestCount("GET /market/quote/DOGE"))
}

func TestGetHistory(t *testing.T) {
	backend := testsupport.NewBackend()
	defer backend.Close()
	backend.SetHistory("AAPL", []float64{1, 2, 3, 4, 5})

	client, _ := newTestClient(t, backend)

	prices, err := client.GetHistory(context.Background(), "AAPL", 3)
	require.NoError(t, err)
	assert.Equal(t, []float64{3, 4, 5}, prices)
}

func TestGetHistoryDisallowedSymbolNeverHitsNetwork(t *testing.T) {
	backend := testsupport.NewBackend()
	defer backend.Close()

	client, _ := newTestClient(t, backend)

	_, err := client.GetHistory(context.Background(), "DOGE", 60)
	assert.Error(t, err)
	assert.Equal(t, errors.ErrCodeSymbolNotAllowed, errors.GetCode(err))
	assert.Zero(t, backend.RequestCount("GET /market/history/DOGE"))
}

func TestGetQuoteBackendFailure(t *testing.T) {
	backend := testsupport.NewBackend()
	defer backend.Close()
	backend.FailMarketData(true)

	client, _ := newTestClient(t, backend)

	_, err := client.GetQuote(context.Background(), "AAPL")
	assert.Error(t, err)
	assert.Equal(t, errors.ErrCodeQuoteFetchFailed, errors.GetCode(err))
	assert.Equal(t, "market data unavailable", errors.BackendDetail(err))
}

func TestPlaceOrder(t *testing.T) {
	backend := testsupport.NewBackend()
	defer backend.Close()

	client, _ := newTestClient(t, backend)

	intent := types.OrderIntent{Symbol: "AAPL", Side: types.SideBuy, Qty: 2}

	record, err := client.PlaceOrder(context.Background(), intent, "test-client-order-id")
	require.NoError(t, err)
	assert.Equal(t, "AAPL", record.Symbol)
	assert.Equal(t, types.SideBuy, record.Side)
	assert.Equal(t, int64(2), record.Qty)
	assert.Equal(t, "test-client-order-id", backend.LastClientOrderID())
}

func TestPlaceOrderRejectionKeepsDetail(t *testing.T) {
	backend := testsupport.NewBackend()
	defer backend.Close()
	backend.RejectOrders("insufficient funds", false)

	client, _ := newTestClient(t, backend)

	intent := types.OrderIntent{Symbol: "AAPL", Side: types.SideBuy, Qty: 2}

	_, err := client.PlaceOrder(context.Background(), intent, "id")
	assert.Error(t, err)
	assert.Equal(t, errors.ErrCodeOrderRejected, errors.GetCode(err))
	assert.Equal(t, "insufficient funds", errors.BackendDetail(err))
}

func TestPlaceOrderRejectionWithoutDetail(t *testing.T) {
	backend := testsupport.NewBackend()
	defer backend.Close()
	backend.RejectOrders("", true)

	client, _ := newTestClient(t, backend)

	intent := types.OrderIntent{Symbol: "AAPL", Side: types.SideBuy, Qty: 2}

	_, err := client.PlaceOrder(context.Background(), intent, "id")
	assert.Error(t, err)
	assert.Equal(t, errors.ErrCodeOrderRejected, errors.GetCode(err))
	assert.Equal(t, "", errors.BackendDetail(err))
}

func TestPlaceOrderInvalidIntentNeverHitsNetwork(t *testing.T) {
	backend := testsupport.NewBackend()
	defer backend.Close()

	client, _ := newTestClient(t, backend)

	intent := types.OrderIntent{Symbol: "DOGE", Side: types.SideBuy, Qty: 2}

	_, err := client.PlaceOrder(context.Background(), intent, "id")
	assert.Error(t, err)
	assert.Equal(t, errors.ErrCodeSymbolNotAllowed, errors.GetCode(err))
	assert.Zero(t, backend.RequestCount("POST /trading/orders"))
}

func TestBearerTokenAttached(t *testing.T) {
	backend := testsupport.NewBackend()
	defer backend.Close()
	backend.RequireToken("secret-token")

	client, sess := newTestClient(t, backend)

	_, err := client.GetAccount(context.Background())
	assert.Error(t, err)
	assert.Equal(t, "not authenticated", errors.BackendDetail(err))

	require.NoError(t, sess.SetToken("secret-token"))

	_, err = client.GetAccount(context.Background())
	assert.NoError(t, err)
}

func TestGetOrdersAndPortfolio(t *testing.T) {
	backend := testsupport.NewBackend()
	defer backend.Close()
	backend.SetCash(1000)
	backend.SetQuote("AAPL", 100)

	client, _ := newTestClient(t, backend)

	intent := types.OrderIntent{Symbol: "AAPL", Side: types.SideBuy, Qty: 1}
	_, err := client.PlaceOrder(context.Background(), intent, "id")
	require.NoError(t, err)

	orders, err := client.GetOrders(context.Background())
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, types.OrderStatusFilled, orders[0].Status)

	portfolio, err := client.GetPortfolio(context.Background())
	require.NoError(t, err)
	assert.Equal(t, float64(1000), portfolio.Cash)
	assert.NotEmpty(t, portfolio.Positions)
}

func TestGetSymbols(t *testing.T) {
	backend := testsupport.NewBackend()
	defer backend.Close()

	client, _ := newTestClient(t, backend)

	symbols, err := client.GetSymbols(context.Background())
	require.NoError(t, err)
	assert.Equal(t, types.AllowedSymbols, symbols)
}

func TestLoginAndRegister(t *testing.T) {
	backend := testsupport.NewBackend()
	defer backend.Close()

	client, _ := newTestClient(t, backend)

	token, err := client.Login(context.Background(), "user@example.com", "hunter2")
	require.NoError(t, err)
	assert.Equal(t, "test-token-user@example.com", token.AccessToken)
	assert.Equal(t, "bearer", token.TokenType)

	assert.NoError(t, client.Register(context.Background(), "new@example.com", "hunter2"))
}

func TestLoginFailure(t *testing.T) {
	backend := testsupport.NewBackend()
	defer backend.Close()

	client, _ := newTestClient(t, backend)

	_, err := client.Login(context.Background(), "", "")
	assert.Error(t, err)
	assert.Equal(t, errors.ErrCodeNotAuthenticated, errors.GetCode(err))
	assert.Equal(t, "email and password required", errors.BackendDetail(err))
}
