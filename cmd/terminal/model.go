package main

import (
	"context"
	"math"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/moznion/go-optional"
	"github.com/rxtech-lab/argo-terminal/internal/api"
	"github.com/rxtech-lab/argo-terminal/internal/config"
	"github.com/rxtech-lab/argo-terminal/internal/feed"
	"github.com/rxtech-lab/argo-terminal/internal/logger"
	"github.com/rxtech-lab/argo-terminal/internal/ticket"
	"github.com/rxtech-lab/argo-terminal/internal/types"
	"github.com/rxtech-lab/argo-terminal/pkg/errors"
)

// Application states.
const (
	StateSymbolSelect = iota
	StateTicket
)

// app holds the long-lived dependencies shared by every copy of the model
// that the event loop makes. The program reference arrives after
// tea.NewProgram, so it lives behind this pointer rather than on the model
// value.
type app struct {
	cfg    config.Config
	client api.TradingAPI
	logger *logger.Logger

	program   *tea.Program
	feeds     *feedSet
	submitter *ticket.Submitter
	startOnce sync.Once
}

func newApp(cfg config.Config, client api.TradingAPI, log *logger.Logger) *app {
	if log == nil {
		log = logger.NewNopLogger()
	}

	return &app{cfg: cfg, client: client, logger: log}
}

// SetProgram sets the tea.Program reference for sending messages from feed
// goroutines.
func (a *app) SetProgram(p *tea.Program) {
	a.program = p
}

func (a *app) send(msg tea.Msg) {
	if a.program != nil {
		a.program.Send(msg)
	}
}

// start brings up the polling feeds and the order submitter. Idempotent.
func (a *app) start() {
	a.startOnce.Do(func() {
		a.feeds = newFeedSet(a.send, a.client, a.cfg, a.logger)
		a.submitter = ticket.NewSubmitter(a.client, a.feeds.refreshers(), a.logger)
	})
}

func (a *app) stop() {
	if a.feeds != nil {
		a.feeds.stopAll()
	}
}

// Model is the Bubble Tea model for the order-entry terminal.
type Model struct {
	app   *app
	state int

	symbolList list.Model
	qtyInput   textinput.Model
	symbol     string
	side       types.Side

	quote     optional.Option[types.Quote]
	window    *types.PriceWindow
	account   types.AccountSnapshot
	positions types.Positions
	orders    []types.OrderRecord
	portfolio types.PortfolioSummary
	feedErrs  map[feed.Kind]error

	verdict      ticket.Verdict
	submitting   bool
	confirmation string
	confirmSeq   int
	submitErr    string

	width  int
	height int
}

// NewModel creates a new Model with initial state.
func NewModel(a *app) Model {
	m := Model{
		app:        a,
		state:      StateSymbolSelect,
		symbolList: NewSymbolList(),
		qtyInput:   NewQtyInput(),
		side:       types.SideBuy,
		quote:      optional.None[types.Quote](),
		window:     types.NewPriceWindow(a.cfg.History.Limit),
		feedErrs:   make(map[feed.Kind]error),
	}
	m.recompute()

	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return func() tea.Msg {
		m.app.start()

		return FeedsStartedMsg{}
	}
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			m.app.stop()
			return m, tea.Quit
		case "q":
			// Only quit on 'q' outside the quantity input.
			if m.state != StateTicket {
				m.app.stop()
				return m, tea.Quit
			}
		case "esc":
			return m.handleEsc()
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.symbolList.SetSize(msg.Width, msg.Height-4)
		return m, nil

	case FeedsStartedMsg:
		return m, nil

	case QuoteUpdateMsg:
		m.noteFeedErr(feed.KindQuote, msg.Update.Err)
		if msg.Update.HasValue {
			m.quote = optional.Some(msg.Update.Value)
		} else {
			m.quote = optional.None[types.Quote]()
		}
		m.recompute()
		return m, nil

	case HistoryUpdateMsg:
		m.noteFeedErr(feed.KindHistory, msg.Update.Err)
		m.window.Replace(msg.Update.Value)
		return m, nil

	case AccountUpdateMsg:
		m.noteFeedErr(feed.KindAccount, msg.Update.Err)
		if msg.Update.HasValue {
			m.account = msg.Update.Value
		}
		m.recompute()
		return m, nil

	case PositionsUpdateMsg:
		m.noteFeedErr(feed.KindPositions, msg.Update.Err)
		if msg.Update.HasValue {
			m.positions = msg.Update.Value
		}
		m.recompute()
		return m, nil

	case OrdersUpdateMsg:
		m.noteFeedErr(feed.KindOrders, msg.Update.Err)
		if msg.Update.HasValue {
			m.orders = msg.Update.Value
		}
		return m, nil

	case PortfolioUpdateMsg:
		m.noteFeedErr(feed.KindPortfolio, msg.Update.Err)
		if msg.Update.HasValue {
			m.portfolio = msg.Update.Value
		}
		return m, nil

	case OrderAcceptedMsg:
		m.submitting = false
		m.submitErr = ""
		m.confirmation = msg.Result.Confirmation
		m.confirmSeq++
		seq := m.confirmSeq
		m.qtyInput.SetValue("1")
		m.recompute()
		ttl := m.app.cfg.Confirmation.TTL.Std()
		return m, tea.Tick(ttl, func(time.Time) tea.Msg {
			return ConfirmationExpiredMsg{Seq: seq}
		})

	case OrderFailedMsg:
		m.submitting = false
		m.confirmation = ""
		m.submitErr = ticket.FailureMessage(msg.Err)
		m.recompute()
		return m, nil

	case ConfirmationExpiredMsg:
		// Only the timer armed for the current confirmation clears it.
		if msg.Seq == m.confirmSeq {
			m.confirmation = ""
		}
		return m, nil
	}

	// Delegate to state-specific update
	switch m.state {
	case StateSymbolSelect:
		return m.updateSymbolSelect(msg)
	case StateTicket:
		return m.updateTicket(msg)
	}

	return m, nil
}

func (m Model) handleEsc() (tea.Model, tea.Cmd) {
	if m.state != StateTicket {
		return m, nil
	}

	// Leave the ticket: stop symbol-scoped polling and drop every
	// symbol-scoped snapshot so a stale price can never leak into the
	// next ticket.
	if m.app.feeds != nil {
		m.app.feeds.unwatch()
	}
	m.state = StateSymbolSelect
	m.symbol = ""
	m.quote = optional.None[types.Quote]()
	m.window = types.NewPriceWindow(m.app.cfg.History.Limit)
	m.side = types.SideBuy
	m.qtyInput.SetValue("1")
	m.qtyInput.Blur()
	m.confirmation = ""
	m.submitErr = ""
	delete(m.feedErrs, feed.KindQuote)
	delete(m.feedErrs, feed.KindHistory)
	m.recompute()

	return m, nil
}

func (m Model) updateSymbolSelect(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "enter":
			if item, ok := m.symbolList.SelectedItem().(symbolItem); ok {
				return m.enterTicket(item.symbol)
			}
		}
	}

	var cmd tea.Cmd
	m.symbolList, cmd = m.symbolList.Update(msg)
	return m, cmd
}

func (m Model) enterTicket(symbol string) (tea.Model, tea.Cmd) {
	m.state = StateTicket
	m.symbol = symbol
	m.side = types.SideBuy
	m.quote = optional.None[types.Quote]()
	m.window = types.NewPriceWindow(m.app.cfg.History.Limit)
	m.confirmation = ""
	m.submitErr = ""
	m.qtyInput.SetValue("1")
	m.qtyInput.Focus()

	if m.app.feeds != nil {
		m.app.feeds.watch(m.app.client, symbol, m.app.cfg.History.Limit)
	}
	m.recompute()

	return m, textinput.Blink
}

func (m Model) updateTicket(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "tab":
			if m.side == types.SideBuy {
				m.side = types.SideSell
			} else {
				m.side = types.SideBuy
			}
			m.recompute()
			return m, nil

		// The quantity field only ever holds digits, so plain letter
		// shortcuts never collide with typing.
		case "b", "ctrl+b":
			m.side = types.SideBuy
			if m.verdict.MaxBuy >= 1 {
				m.qtyInput.SetValue(strconv.FormatInt(m.verdict.MaxBuy, 10))
			}
			m.recompute()
			return m, nil

		case "s", "ctrl+s":
			m.side = types.SideSell
			if m.verdict.MaxSell >= 1 {
				m.qtyInput.SetValue(strconv.FormatInt(m.verdict.MaxSell, 10))
			}
			m.recompute()
			return m, nil

		case "enter":
			if m.submitting || !m.verdict.Valid {
				return m, nil
			}
			m.submitting = true
			m.confirmation = ""
			m.submitErr = ""
			return m, m.submitOrder()
		}
	}

	var cmd tea.Cmd
	m.qtyInput, cmd = m.qtyInput.Update(msg)
	m.recompute()
	return m, cmd
}

// submitOrder captures the current evaluation input and hands it to the
// submitter off the event loop. The submitter re-validates before the
// network call.
func (m Model) submitOrder() tea.Cmd {
	in := m.evalInput()
	submitter := m.app.submitter

	return func() tea.Msg {
		if submitter == nil {
			return OrderFailedMsg{Err: errors.New(errors.ErrCodeOrderFailed, "feeds not started")}
		}

		result, err := submitter.Submit(context.Background(), in)
		if err != nil {
			return OrderFailedMsg{Err: err}
		}

		return OrderAcceptedMsg{Result: result}
	}
}

func (m Model) evalInput() ticket.EvalInput {
	return ticket.EvalInput{
		Symbol:  m.symbol,
		Side:    m.side,
		Qty:     parseQty(m.qtyInput.Value()),
		Quote:   m.quote,
		Account: m.account,
		HeldQty: m.positions.QtyFor(m.symbol),
	}
}

// recompute re-runs eligibility against the freshest inputs. Called on
// every keystroke and every feed update so the verdict never reflects a
// stale combination.
func (m *Model) recompute() {
	m.verdict = ticket.Evaluate(m.evalInput())
}

func (m *Model) noteFeedErr(kind feed.Kind, err error) {
	if err != nil {
		m.feedErrs[kind] = err
	} else {
		delete(m.feedErrs, kind)
	}
}

// parseQty turns the raw quantity text into a number for evaluation. Text
// that is not a number evaluates as NaN and fails the whole-number rule.
func parseQty(raw string) float64 {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return math.NaN()
	}

	qty, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return math.NaN()
	}

	return qty
}

// View implements tea.Model.
func (m Model) View() string {
	switch m.state {
	case StateTicket:
		return m.viewTicket()
	default:
		return m.viewSymbolSelect()
	}
}
