package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/rxtech-lab/argo-terminal/internal/ticket"
	"github.com/rxtech-lab/argo-terminal/internal/types"
)

// symbolItem implements list.Item for the symbol picker.
type symbolItem struct {
	symbol      string
	description string
}

func (i symbolItem) Title() string       { return i.symbol }
func (i symbolItem) Description() string { return i.description }
func (i symbolItem) FilterValue() string { return i.symbol }

var symbolDescriptions = map[string]string{
	"AAPL":  "Apple Inc.",
	"MSFT":  "Microsoft Corporation",
	"TSLA":  "Tesla, Inc.",
	"AMZN":  "Amazon.com, Inc.",
	"GOOGL": "Alphabet Inc.",
	"NVDA":  "NVIDIA Corporation",
}

// NewSymbolList creates the picker over the tradable symbols.
func NewSymbolList() list.Model {
	items := make([]list.Item, 0, len(types.AllowedSymbols))
	for _, s := range types.AllowedSymbols {
		items = append(items, symbolItem{symbol: s, description: symbolDescriptions[s]})
	}

	delegate := list.NewDefaultDelegate()
	delegate.ShowDescription = true

	l := list.New(items, delegate, 0, 0)
	l.Title = "Select Symbol"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.SetShowHelp(false)

	return l
}

// NewQtyInput creates the quantity entry field.
func NewQtyInput() textinput.Model {
	ti := textinput.New()
	ti.Placeholder = "1"
	ti.SetValue("1")
	ti.CharLimit = 12
	ti.Width = 12
	ti.Prompt = "> "

	return ti
}

func (m Model) viewSymbolSelect() string {
	var s strings.Builder

	s.WriteString(TitleStyle.Render("Argo Terminal - Order Entry"))
	s.WriteString("\n\n")
	s.WriteString(m.symbolList.View())
	s.WriteString("\n")
	s.WriteString(m.viewPortfolioFooter())
	s.WriteString(HelpStyle.Render("Press Enter to open the ticket, q to quit"))

	return s.String()
}

func (m Model) viewTicket() string {
	var s strings.Builder

	s.WriteString(TitleStyle.Render(fmt.Sprintf("Order Ticket - %s", m.symbol)))
	s.WriteString("\n\n")

	if m.confirmation != "" {
		s.WriteString(OkStyle.Render("✔ " + m.confirmation))
		s.WriteString("\n\n")
	}

	s.WriteString(m.viewPrice())
	s.WriteString(m.viewAccountLine())
	s.WriteString("\n")
	s.WriteString(m.viewIntent())
	s.WriteString("\n")

	if m.submitErr != "" {
		s.WriteString(ErrorStyle.Render(m.submitErr))
		s.WriteString("\n")
	} else if !m.verdict.Valid && m.verdict.Reason != "" {
		s.WriteString(ErrorStyle.Render(m.verdict.Reason))
		s.WriteString("\n")
	}

	if m.submitting {
		s.WriteString("Placing order...\n")
	}

	s.WriteString("\n")
	s.WriteString(m.viewStaleFeeds())
	s.WriteString(HelpStyle.Render("enter: submit | tab: switch side | b/s: max buy/sell | esc: back | ctrl+c: quit"))

	return s.String()
}

func (m Model) viewPrice() string {
	var s strings.Builder

	window := m.window.Values()

	if m.quote.IsSome() {
		trend := ticket.AnalyzeTrend(window)
		s.WriteString(LabelStyle.Render("Last price "))
		s.WriteString(FormatPriceWithTrend(m.quote.Unwrap().Price, trend))
	} else {
		s.WriteString("Waiting for live price...")
	}
	s.WriteString("\n")

	if spark := RenderSparkline(window, sparklineCells(m.width)); spark != "" {
		s.WriteString(spark)
		s.WriteString("\n")
	}

	return s.String()
}

// sparklineCells bounds the sparkline to the terminal width with a margin.
func sparklineCells(width int) int {
	if width <= 0 {
		return types.DefaultWindowCap
	}

	if width > 4 {
		return width - 4
	}

	return width
}

func (m Model) viewAccountLine() string {
	held := m.positions.QtyFor(m.symbol)

	return fmt.Sprintf("%s $%.2f   %s %.0f\n",
		LabelStyle.Render("Cash"), m.account.CashBalance,
		LabelStyle.Render("Held"), held)
}

func (m Model) viewIntent() string {
	var s strings.Builder

	buyLabel, sellLabel := "buy", "sell"
	if m.side == types.SideBuy {
		buyLabel = TitleStyle.Render("[BUY]")
	} else {
		sellLabel = TitleStyle.Render("[SELL]")
	}

	s.WriteString(fmt.Sprintf("%s / %s   Qty %s\n", buyLabel, sellLabel, m.qtyInput.View()))

	if notional := ticket.EstimatedNotional(m.quote, parseQty(m.qtyInput.Value())); notional.IsSome() {
		label := "Est. cost"
		if m.side == types.SideSell {
			label = "Est. proceeds"
		}
		s.WriteString(fmt.Sprintf("%s $%s\n", LabelStyle.Render(label), notional.Unwrap().StringFixed(2)))
	}

	s.WriteString(fmt.Sprintf("%s %d   %s %d\n",
		LabelStyle.Render("Max buy"), m.verdict.MaxBuy,
		LabelStyle.Render("Max sell"), m.verdict.MaxSell))

	return s.String()
}

// viewStaleFeeds lists feeds whose latest poll failed. The displayed data
// stays at the last good value while the next tick retries.
func (m Model) viewStaleFeeds() string {
	if len(m.feedErrs) == 0 {
		return ""
	}

	kinds := make([]string, 0, len(m.feedErrs))
	for kind := range m.feedErrs {
		kinds = append(kinds, string(kind))
	}
	sort.Strings(kinds)

	return HelpStyle.Render("stale: "+strings.Join(kinds, ", ")) + "\n"
}

func (m Model) viewPortfolioFooter() string {
	if m.portfolio.Equity == 0 && len(m.orders) == 0 {
		return ""
	}

	return HelpStyle.Render(fmt.Sprintf("Equity $%.2f | Cash $%.2f | %d orders",
		m.portfolio.Equity, m.account.CashBalance, len(m.orders))) + "\n"
}
