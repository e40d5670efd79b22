package ticket

import (
	"context"
	"fmt"
	"strings"
	"sync/atomic"

	"github.com/google/uuid"
	"github.com/rxtech-lab/argo-terminal/internal/api"
	"github.com/rxtech-lab/argo-terminal/internal/logger"
	"github.com/rxtech-lab/argo-terminal/internal/types"
	"github.com/rxtech-lab/argo-terminal/pkg/errors"
	"go.uber.org/zap"
)

// Refresher is a feed's forced-refetch handle. Every feed subscription
// satisfies it.
type Refresher interface {
	Refresh()
}

// SubmitResult reports a successful order submission.
type SubmitResult struct {
	Order         types.OrderRecord
	ClientOrderID string
	Confirmation  string
}

// Submitter turns a validated order intent into exactly one order-create
// request, then invalidates every view the order could have affected. It
// never mutates local state optimistically: on failure nothing changes,
// and on success only the backend refetches carry the new truth.
type Submitter struct {
	api        api.TradingAPI
	refreshers []Refresher
	logger     *logger.Logger
	inFlight   atomic.Bool
}

// NewSubmitter creates a Submitter. refreshers is the invalidation fan-out
// dispatched after a successful submission: the submitting symbol's quote
// and history, the account, all positions, all orders, and the portfolio.
func NewSubmitter(tradingAPI api.TradingAPI, refreshers []Refresher, log *logger.Logger) *Submitter {
	if log == nil {
		log = logger.NewNopLogger()
	}

	return &Submitter{
		api:        tradingAPI,
		refreshers: refreshers,
		logger:     log,
	}
}

// InFlight reports whether a submission is currently outstanding.
func (s *Submitter) InFlight() bool {
	return s.inFlight.Load()
}

// Submit re-evaluates the verdict against the freshest inputs, issues one
// order-create request, and on success dispatches all feed invalidations
// concurrently. The submission is complete once the invalidations are
// dispatched, not once they resolve. At most one submission may be in
// flight at a time.
func (s *Submitter) Submit(ctx context.Context, in EvalInput) (SubmitResult, error) {
	if !s.inFlight.CompareAndSwap(false, true) {
		return SubmitResult{}, errors.New(errors.ErrCodeSubmissionInFlight, "a submission is already in flight")
	}
	defer s.inFlight.Store(false)

	// Re-validate right before the network call: a feed update may have
	// invalidated a quantity the UI still shows as submittable.
	verdict := Evaluate(in)
	if !verdict.Valid {
		return SubmitResult{}, errors.New(verdict.Code, verdict.Reason)
	}

	intent := types.OrderIntent{
		Symbol: types.NormalizeSymbol(in.Symbol),
		Side:   in.Side,
		Qty:    int64(in.Qty),
	}
	clientOrderID := uuid.NewString()

	record, err := s.api.PlaceOrder(ctx, intent, clientOrderID)
	if err != nil {
		s.logger.Warn("order submission failed",
			zap.String("symbol", intent.Symbol),
			zap.String("side", string(intent.Side)),
			zap.Int64("qty", intent.Qty),
			zap.Error(err))

		return SubmitResult{}, err
	}

	for _, r := range s.refreshers {
		go r.Refresh()
	}

	s.logger.Info("order submitted",
		zap.String("symbol", intent.Symbol),
		zap.String("side", string(intent.Side)),
		zap.Int64("qty", intent.Qty),
		zap.String("client_order_id", clientOrderID))

	return SubmitResult{
		Order:         record,
		ClientOrderID: clientOrderID,
		Confirmation:  fmt.Sprintf("%s %d %s submitted", strings.ToUpper(string(intent.Side)), intent.Qty, intent.Symbol),
	}, nil
}

// FailureMessage extracts the user-facing message for a failed
// submission: the backend detail verbatim when present, otherwise a
// generic fallback.
func FailureMessage(err error) string {
	if detail := errors.BackendDetail(err); detail != "" {
		return detail
	}

	return "Order failed"
}
