package main

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rxtech-lab/argo-terminal/internal/api"
	"github.com/rxtech-lab/argo-terminal/internal/config"
	"github.com/rxtech-lab/argo-terminal/internal/feed"
	"github.com/rxtech-lab/argo-terminal/internal/logger"
	"github.com/rxtech-lab/argo-terminal/internal/ticket"
	"github.com/rxtech-lab/argo-terminal/internal/types"
)

// feedSet owns the six polling subscriptions behind the terminal. Account,
// positions, orders and portfolio poll from startup; quote and history stay
// disabled until a symbol is watched.
type feedSet struct {
	quote     *feed.Subscription[types.Quote]
	history   *feed.Subscription[[]float64]
	account   *feed.Subscription[types.AccountSnapshot]
	positions *feed.Subscription[types.Positions]
	orders    *feed.Subscription[[]types.OrderRecord]
	portfolio *feed.Subscription[types.PortfolioSummary]
}

// newFeedSet starts the subscriptions and routes every applied poll
// completion into the event loop through send.
func newFeedSet(send func(tea.Msg), client api.TradingAPI, cfg config.Config, log *logger.Logger) *feedSet {
	interval := cfg.Poll.Interval.Std()

	return &feedSet{
		quote: feed.New(feed.KindQuote, nil, interval,
			func(u feed.Update[types.Quote]) { send(QuoteUpdateMsg{Update: u}) }, log),
		history: feed.New(feed.KindHistory, nil, interval,
			func(u feed.Update[[]float64]) { send(HistoryUpdateMsg{Update: u}) }, log),
		account: feed.New(feed.KindAccount,
			func(ctx context.Context) (types.AccountSnapshot, error) { return client.GetAccount(ctx) },
			interval,
			func(u feed.Update[types.AccountSnapshot]) { send(AccountUpdateMsg{Update: u}) }, log),
		positions: feed.New(feed.KindPositions,
			func(ctx context.Context) (types.Positions, error) { return client.GetPositions(ctx) },
			interval,
			func(u feed.Update[types.Positions]) { send(PositionsUpdateMsg{Update: u}) }, log),
		orders: feed.New(feed.KindOrders,
			func(ctx context.Context) ([]types.OrderRecord, error) { return client.GetOrders(ctx) },
			interval,
			func(u feed.Update[[]types.OrderRecord]) { send(OrdersUpdateMsg{Update: u}) }, log),
		portfolio: feed.New(feed.KindPortfolio,
			func(ctx context.Context) (types.PortfolioSummary, error) { return client.GetPortfolio(ctx) },
			interval,
			func(u feed.Update[types.PortfolioSummary]) { send(PortfolioUpdateMsg{Update: u}) }, log),
	}
}

// watch points the quote and history feeds at symbol. In-flight responses
// for a previously watched symbol are discarded when they complete.
func (f *feedSet) watch(client api.TradingAPI, symbol string, historyLimit int) {
	f.quote.Swap(func(ctx context.Context) (types.Quote, error) {
		return client.GetQuote(ctx, symbol)
	})
	f.history.Swap(func(ctx context.Context) ([]float64, error) {
		return client.GetHistory(ctx, symbol, historyLimit)
	})
}

// unwatch disables the symbol-scoped feeds. Account-scoped feeds keep
// polling.
func (f *feedSet) unwatch() {
	f.quote.Disable()
	f.history.Disable()
}

// refreshers returns the invalidation fan-out for order submission: every
// view an accepted order could have changed.
func (f *feedSet) refreshers() []ticket.Refresher {
	return []ticket.Refresher{f.quote, f.history, f.account, f.positions, f.orders, f.portfolio}
}

// stopAll ends every subscription. Called exactly once on shutdown.
func (f *feedSet) stopAll() {
	f.quote.Stop()
	f.history.Stop()
	f.account.Stop()
	f.positions.Stop()
	f.orders.Stop()
	f.portfolio.Stop()
}
