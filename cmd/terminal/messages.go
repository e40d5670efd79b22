package main

import (
	"github.com/rxtech-lab/argo-terminal/internal/feed"
	"github.com/rxtech-lab/argo-terminal/internal/ticket"
	"github.com/rxtech-lab/argo-terminal/internal/types"
)

// QuoteUpdateMsg carries the latest quote poll result for the watched symbol.
type QuoteUpdateMsg struct {
	Update feed.Update[types.Quote]
}

// HistoryUpdateMsg carries the latest rolling price history for the watched
// symbol.
type HistoryUpdateMsg struct {
	Update feed.Update[[]float64]
}

// AccountUpdateMsg carries the latest account snapshot.
type AccountUpdateMsg struct {
	Update feed.Update[types.AccountSnapshot]
}

// PositionsUpdateMsg carries the latest holdings.
type PositionsUpdateMsg struct {
	Update feed.Update[types.Positions]
}

// OrdersUpdateMsg carries the latest order blotter.
type OrdersUpdateMsg struct {
	Update feed.Update[[]types.OrderRecord]
}

// PortfolioUpdateMsg carries the latest portfolio summary.
type PortfolioUpdateMsg struct {
	Update feed.Update[types.PortfolioSummary]
}

// FeedsStartedMsg signals that the polling feeds are running.
type FeedsStartedMsg struct{}

// OrderAcceptedMsg reports a successful order submission.
type OrderAcceptedMsg struct {
	Result ticket.SubmitResult
}

// OrderFailedMsg reports a failed order submission.
type OrderFailedMsg struct {
	Err error
}

// ConfirmationExpiredMsg clears the transient submission confirmation.
// Seq identifies which confirmation the timer was armed for, so a timer
// from an earlier submission cannot clear a later one.
type ConfirmationExpiredMsg struct {
	Seq int
}
