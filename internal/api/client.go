// Package api implements the typed HTTP client for the trading backend.
// The backend is the source of truth for prices, balances, and execution;
// this client only transports its JSON contract.
package api

import (
	"context"
	"fmt"

	"github.com/go-resty/resty/v2"
	"github.com/rxtech-lab/argo-terminal/internal/config"
	"github.com/rxtech-lab/argo-terminal/internal/logger"
	"github.com/rxtech-lab/argo-terminal/internal/session"
	"github.com/rxtech-lab/argo-terminal/internal/types"
	"github.com/rxtech-lab/argo-terminal/pkg/errors"
	"go.uber.org/zap"
)

// HeaderClientOrderID carries the idempotency key attached to order
// submissions.
const HeaderClientOrderID = "X-Client-Order-Id"

// TradingAPI is the backend surface the order-entry core depends on.
type TradingAPI interface {
	GetAccount(ctx context.Context) (types.AccountSnapshot, error)
	GetPositions(ctx context.Context) (types.Positions, error)
	GetQuote(ctx context.Context, symbol string) (types.Quote, error)
	GetHistory(ctx context.Context, symbol string, limit int) ([]float64, error)
	GetOrders(ctx context.Context) ([]types.OrderRecord, error)
	GetPortfolio(ctx context.Context) (types.PortfolioSummary, error)
	GetSymbols(ctx context.Context) ([]string, error)
	PlaceOrder(ctx context.Context, intent types.OrderIntent, clientOrderID string) (types.OrderRecord, error)
}

// TokenResponse is the backend's answer to a successful login.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type,omitempty"`
}

// AuthAPI is the authentication surface, kept separate from trading.
type AuthAPI interface {
	Login(ctx context.Context, email, password string) (TokenResponse, error)
	Register(ctx context.Context, email, password string) error
}

// errorBody is the backend's non-2xx response shape.
type errorBody struct {
	Detail string `json:"detail"`
}

// Client talks to the trading backend over JSON/HTTP with bearer auth.
type Client struct {
	http    *resty.Client
	session *session.Session
	logger  *logger.Logger
}

var _ TradingAPI = (*Client)(nil)

var _ AuthAPI = (*Client)(nil)

// NewClient creates a Client against the configured base URL. The session
// is consulted on every request so a login mid-run takes effect without
// rebuilding the client.
func NewClient(cfg config.APIConfig, sess *session.Session, log *logger.Logger) *Client {
	if log == nil {
		log = logger.NewNopLogger()
	}

	httpClient := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetTimeout(cfg.Timeout.Std()).
		SetHeader("Accept", "application/json")

	httpClient.OnBeforeRequest(func(_ *resty.Client, req *resty.Request) error {
		if token := sess.Token(); token != "" {
			req.SetAuthToken(token)
		}

		return nil
	})

	return &Client{
		http:    httpClient,
		session: sess,
		logger:  log,
	}
}

// backendError converts a non-2xx resty response into a BackendError
// preserving the backend detail verbatim.
func backendError(resp *resty.Response) *errors.BackendError {
	detail := ""
	if body, ok := resp.Error().(*errorBody); ok && body != nil {
		detail = body.Detail
	}

	return errors.NewBackendError(resp.StatusCode(), detail)
}

// GetAccount fetches the current cash balance.
func (c *Client) GetAccount(ctx context.Context) (types.AccountSnapshot, error) {
	var out types.AccountSnapshot

	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&out).
		SetError(&errorBody{}).
		Get("/trading/account")
	if err != nil {
		return types.AccountSnapshot{}, errors.Wrap(errors.ErrCodeAccountFetchFailed, "failed to fetch account", err)
	}

	if resp.IsError() {
		return types.AccountSnapshot{}, errors.Wrap(errors.ErrCodeAccountFetchFailed, "failed to fetch account", backendError(resp))
	}

	return out, nil
}

// GetPositions fetches all held positions.
func (c *Client) GetPositions(ctx context.Context) (types.Positions, error) {
	var out types.Positions

	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&out).
		SetError(&errorBody{}).
		Get("/trading/positions")
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodePositionsFetchFailed, "failed to fetch positions", err)
	}

	if resp.IsError() {
		return nil, errors.Wrap(errors.ErrCodePositionsFetchFailed, "failed to fetch positions", backendError(resp))
	}

	return out, nil
}

// GetQuote fetches the latest quote for an allowed symbol.
func (c *Client) GetQuote(ctx context.Context, symbol string) (types.Quote, error) {
	if !types.IsAllowedSymbol(symbol) {
		return types.Quote{}, errors.Newf(errors.ErrCodeSymbolNotAllowed, "unsupported symbol %q", symbol)
	}

	var out types.Quote

	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&out).
		SetError(&errorBody{}).
		SetPathParam("symbol", types.NormalizeSymbol(symbol)).
		Get("/market/quote/{symbol}")
	if err != nil {
		return types.Quote{}, errors.Wrapf(errors.ErrCodeQuoteFetchFailed, err, "failed to fetch quote for %s", symbol)
	}

	if resp.IsError() {
		return types.Quote{}, errors.Wrapf(errors.ErrCodeQuoteFetchFailed, backendError(resp), "failed to fetch quote for %s", symbol)
	}

	return out, nil
}

// GetHistory fetches up to limit recent prices, oldest first.
func (c *Client) GetHistory(ctx context.Context, symbol string, limit int) ([]float64, error) {
	if !types.IsAllowedSymbol(symbol) {
		return nil, errors.Newf(errors.ErrCodeSymbolNotAllowed, "unsupported symbol %q", symbol)
	}

	var out []float64

	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&out).
		SetError(&errorBody{}).
		SetPathParam("symbol", types.NormalizeSymbol(symbol)).
		SetQueryParam("limit", fmt.Sprintf("%d", limit)).
		Get("/market/history/{symbol}")
	if err != nil {
		return nil, errors.Wrapf(errors.ErrCodeHistoryFetchFailed, err, "failed to fetch history for %s", symbol)
	}

	if resp.IsError() {
		return nil, errors.Wrapf(errors.ErrCodeHistoryFetchFailed, backendError(resp), "failed to fetch history for %s", symbol)
	}

	return out, nil
}

// GetOrders fetches the order list.
func (c *Client) GetOrders(ctx context.Context) ([]types.OrderRecord, error) {
	var out []types.OrderRecord

	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&out).
		SetError(&errorBody{}).
		Get("/trading/orders")
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeOrdersFetchFailed, "failed to fetch orders", err)
	}

	if resp.IsError() {
		return nil, errors.Wrap(errors.ErrCodeOrdersFetchFailed, "failed to fetch orders", backendError(resp))
	}

	return out, nil
}

// GetPortfolio fetches the aggregate portfolio view.
func (c *Client) GetPortfolio(ctx context.Context) (types.PortfolioSummary, error) {
	var out types.PortfolioSummary

	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&out).
		SetError(&errorBody{}).
		Get("/trading/portfolio")
	if err != nil {
		return types.PortfolioSummary{}, errors.Wrap(errors.ErrCodePortfolioFetchFailed, "failed to fetch portfolio", err)
	}

	if resp.IsError() {
		return types.PortfolioSummary{}, errors.Wrap(errors.ErrCodePortfolioFetchFailed, "failed to fetch portfolio", backendError(resp))
	}

	return out, nil
}

// GetSymbols fetches the backend's tradable symbol list. The client-side
// allow-list remains the authority for what may be submitted.
func (c *Client) GetSymbols(ctx context.Context) ([]string, error) {
	var out []string

	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&out).
		SetError(&errorBody{}).
		Get("/market/symbols")
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeQuoteFetchFailed, "failed to fetch symbols", err)
	}

	if resp.IsError() {
		return nil, errors.Wrap(errors.ErrCodeQuoteFetchFailed, "failed to fetch symbols", backendError(resp))
	}

	return out, nil
}

// PlaceOrder submits one order-create request. clientOrderID is attached as
// an idempotency key so a duplicate delivery cannot double-execute.
func (c *Client) PlaceOrder(ctx context.Context, intent types.OrderIntent, clientOrderID string) (types.OrderRecord, error) {
	if err := intent.Validate(); err != nil {
		return types.OrderRecord{}, err
	}

	var out types.OrderRecord

	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader(HeaderClientOrderID, clientOrderID).
		SetBody(map[string]any{
			"symbol": types.NormalizeSymbol(intent.Symbol),
			"side":   intent.Side,
			"qty":    intent.Qty,
		}).
		SetResult(&out).
		SetError(&errorBody{}).
		Post("/trading/orders")
	if err != nil {
		return types.OrderRecord{}, errors.Wrap(errors.ErrCodeOrderFailed, "failed to place order", err)
	}

	if resp.IsError() {
		c.logger.Warn("order rejected by backend",
			zap.String("symbol", intent.Symbol),
			zap.Int("status", resp.StatusCode()))

		return types.OrderRecord{}, errors.Wrap(errors.ErrCodeOrderRejected, "order rejected", backendError(resp))
	}

	return out, nil
}

// Login authenticates with the backend. Per the backend contract the
// request body carries the single email field.
func (c *Client) Login(ctx context.Context, email, password string) (TokenResponse, error) {
	var out TokenResponse

	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(map[string]string{"email": email, "password": password}).
		SetResult(&out).
		SetError(&errorBody{}).
		Post("/auth/login")
	if err != nil {
		return TokenResponse{}, errors.Wrap(errors.ErrCodeNotAuthenticated, "login failed", err)
	}

	if resp.IsError() {
		return TokenResponse{}, errors.Wrap(errors.ErrCodeNotAuthenticated, "login failed", backendError(resp))
	}

	return out, nil
}

// Register creates a backend account.
func (c *Client) Register(ctx context.Context, email, password string) error {
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(map[string]string{"email": email, "password": password}).
		SetError(&errorBody{}).
		Post("/auth/register")
	if err != nil {
		return errors.Wrap(errors.ErrCodeNotAuthenticated, "registration failed", err)
	}

	if resp.IsError() {
		return errors.Wrap(errors.ErrCodeNotAuthenticated, "registration failed", backendError(resp))
	}

	return nil
}
