package cli

import (
	"fmt"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/mrezendes/investrack/internal/client/models"
	"github.com/shopspring/decimal"
)

// formatMoney renders a decimal amount in the configured currency,
// e.g. "R$1.000,50" for BRL. Amounts are rounded to the currency's minor
// unit for display only; the ledger keeps the exact decimal.
func formatMoney(d decimal.Decimal, currencyCode string) string {
	cents := d.Shift(2).Round(0).IntPart()
	return money.New(cents, currencyCode).Display()
}

// renderCard formats one investment the way the dashboard shows it:
// title line with the type badge, then amount, rate, estimated profit,
// and maturity.
func renderCard(inv models.Investment, currencyCode string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "#%d  %s  [%s]\n", inv.ID, inv.Name, inv.Type)
	fmt.Fprintf(&b, "  Amount:     %s\n", formatMoney(inv.Amount, currencyCode))
	fmt.Fprintf(&b, "  Return:     %s%%\n", inv.ReturnRate.String())
	fmt.Fprintf(&b, "  Est.profit: + %s\n", formatMoney(inv.EstimatedProfit(), currencyCode))
	if !inv.ExpDate.IsZero() {
		fmt.Fprintf(&b, "  Maturity:   %s\n", inv.ExpDate)
	}
	if inv.Notes != "" {
		fmt.Fprintf(&b, "  Notes:      %s\n", inv.Notes)
	}
	return b.String()
}
