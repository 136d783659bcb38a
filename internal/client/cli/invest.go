package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/mrezendes/investrack/internal/client/models"
	"github.com/shopspring/decimal"
)

// ListInvestments renders every ledger record as a card, insertion order.
func (a *App) ListInvestments(ctx context.Context) error {
	records := a.ledger.List()
	if len(records) == 0 {
		fmt.Println("No investments registered.")
		return nil
	}

	for _, inv := range records {
		fmt.Print(renderCard(inv, a.config.CurrencyCode))
	}
	return nil
}

// Add prompts for every investment field and creates a new ledger record.
func (a *App) Add(ctx context.Context) error {
	draft, ok, err := a.promptDraft(nil)
	if err != nil || !ok {
		return err
	}

	rec, err := a.ledger.Create(ctx, draft)
	if err != nil {
		a.log.Error(ctx, "error creating investment", "error", err)
		fmt.Println("Could not save the investment.")
		return err
	}

	fmt.Printf("Investment %q saved (id %d).\n", rec.Name, rec.ID)
	return nil
}

// Edit prompts for an id, shows the current values, and rewrites the record
// with whatever the user enters; blank input keeps the current value. The
// id itself is never editable.
func (a *App) Edit(ctx context.Context) error {
	id, ok, err := a.promptID()
	if err != nil || !ok {
		return err
	}

	current, found := a.ledger.Get(id)
	if !found {
		fmt.Println("No investment with that id.")
		return nil
	}

	draft, ok, err := a.promptDraft(&current)
	if err != nil || !ok {
		return err
	}

	if err := a.ledger.Update(ctx, id, draft); err != nil {
		a.log.Error(ctx, "error updating investment", "id", id, "error", err)
		fmt.Println("Could not save the investment.")
		return err
	}

	fmt.Println("Investment updated.")
	return nil
}

// Delete prompts for an id and, after confirmation, removes the record.
// Deleting an id that is already gone is fine.
func (a *App) Delete(ctx context.Context) error {
	id, ok, err := a.promptID()
	if err != nil || !ok {
		return err
	}

	confirmed, err := getConfirm(a.reader, "Delete investment?", os.Stdout)
	if err != nil {
		return err
	}
	if !confirmed {
		return nil
	}

	if err := a.ledger.Delete(ctx, id); err != nil {
		a.log.Error(ctx, "error deleting investment", "id", id, "error", err)
		fmt.Println("Could not delete the investment.")
		return err
	}

	fmt.Println("Investment deleted.")
	return nil
}

// promptID reads and parses an investment id. ok=false means the input was
// not a number (already reported to the user).
func (a *App) promptID() (int64, bool, error) {
	raw, err := getSimpleText(a.reader, "Enter investment id", os.Stdout)
	if err != nil {
		return 0, false, err
	}
	id, convErr := strconv.ParseInt(raw, 10, 64)
	if convErr != nil {
		fmt.Println("Invalid id:", raw)
		return 0, false, nil
	}
	return id, true, nil
}

// promptDraft collects every user-editable field. With a non-nil current
// record its values become the defaults (blank keeps them); otherwise every
// field is asked from scratch. Text is coerced to decimals and dates here,
// before anything reaches the ledger; ok=false means a field failed to
// parse and was reported.
func (a *App) promptDraft(current *models.Investment) (models.InvestmentDraft, bool, error) {
	var draft models.InvestmentDraft

	ask := func(prompt, def string) (string, error) {
		if current == nil {
			return getSimpleText(a.reader, prompt, os.Stdout)
		}
		line, err := getSimpleText(a.reader, fmt.Sprintf("%s [%s]", prompt, def), os.Stdout)
		if err != nil {
			return "", err
		}
		if line == "" {
			return def, nil
		}
		return line, nil
	}

	var cur models.Investment
	if current != nil {
		cur = *current
	}

	name, err := ask("Name", cur.Name)
	if err != nil {
		return draft, false, err
	}
	draft.Name = name

	typ, err := ask(fmt.Sprintf("Type (%s, %s, %s, %s, %s)",
		models.InvestmentTypeStocks, models.InvestmentTypeFixedIncome,
		models.InvestmentTypeTreasury, models.InvestmentTypeCrypto,
		models.InvestmentTypeFunds), string(cur.Type))
	if err != nil {
		return draft, false, err
	}
	draft.Type = models.InvestmentType(typ)

	rawAmount, err := ask("Amount", cur.Amount.String())
	if err != nil {
		return draft, false, err
	}
	amount, convErr := decimal.NewFromString(rawAmount)
	if convErr != nil || amount.IsNegative() {
		fmt.Println("Invalid amount:", rawAmount)
		return draft, false, nil
	}
	draft.Amount = amount

	rawDate, err := ask("Acquisition date (YYYY-MM-DD)", cur.Date.String())
	if err != nil {
		return draft, false, err
	}
	date, ok := parseOptionalDate(rawDate)
	if !ok {
		return draft, false, nil
	}
	draft.Date = date

	rawRate, err := ask("Expected return rate (%)", cur.ReturnRate.String())
	if err != nil {
		return draft, false, err
	}
	rate, convErr := decimal.NewFromString(rawRate)
	if convErr != nil {
		fmt.Println("Invalid return rate:", rawRate)
		return draft, false, nil
	}
	draft.ReturnRate = rate

	rawExp, err := ask("Maturity date (YYYY-MM-DD)", cur.ExpDate.String())
	if err != nil {
		return draft, false, err
	}
	exp, ok := parseOptionalDate(rawExp)
	if !ok {
		return draft, false, nil
	}
	draft.ExpDate = exp

	notes, err := ask("Notes", cur.Notes)
	if err != nil {
		return draft, false, err
	}
	draft.Notes = notes

	return draft, true, nil
}

// parseOptionalDate coerces a date field. Empty input means "no date";
// anything else must be a valid calendar date.
func parseOptionalDate(raw string) (models.Date, bool) {
	if raw == "" {
		return models.Date{}, true
	}
	d, err := models.ParseDate(raw)
	if err != nil {
		fmt.Println("Invalid date:", raw)
		return models.Date{}, false
	}
	return d, true
}
