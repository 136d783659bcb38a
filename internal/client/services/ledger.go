package services

import (
	"context"
	"fmt"

	"github.com/bwmarrin/snowflake"
	"github.com/mrezendes/investrack/internal/client/models"
	"github.com/mrezendes/investrack/internal/client/store"
	"github.com/mrezendes/investrack/internal/common"
	"github.com/mrezendes/investrack/internal/logging"
)

// Ledger is the authoritative collection of investment records. Records keep
// insertion order; ids are assigned once at creation and never reused. Every
// mutation rewrites the whole persisted sequence before it is considered
// done, so a failed write leaves both memory and store at the prior state.
type Ledger struct {
	store store.Store
	log   logging.Logger
	node  *snowflake.Node

	records []models.Investment
}

// NewLedger constructs a Ledger over the given store, drawing fresh record
// ids from node. Call Load before using it.
func NewLedger(s store.Store, node *snowflake.Node, log logging.Logger) *Ledger {
	return &Ledger{store: s, node: node, log: log}
}

// Load reads the persisted ledger. A missing or unreadable value yields an
// empty ledger.
func (l *Ledger) Load(ctx context.Context) error {
	records, _, err := store.Load[[]models.Investment](ctx, l.store, store.KeyLedger, l.log)
	if err != nil {
		return fmt.Errorf("failed to load investment ledger: %w", err)
	}
	l.records = records
	return nil
}

// List returns the records in insertion order. The returned slice is a copy;
// mutating it does not affect the ledger.
func (l *Ledger) List() []models.Investment {
	return append([]models.Investment(nil), l.records...)
}

// Get returns the record with the given id, if present.
func (l *Ledger) Get(id int64) (models.Investment, bool) {
	for _, r := range l.records {
		if r.ID == id {
			return r, true
		}
	}
	return models.Investment{}, false
}

// Create assigns a fresh id to draft, appends the record, persists the
// ledger, and returns the stored record.
func (l *Ledger) Create(ctx context.Context, draft models.InvestmentDraft) (models.Investment, error) {
	record := models.Investment{
		ID:         l.node.Generate().Int64(),
		Name:       draft.Name,
		Type:       draft.Type,
		Amount:     draft.Amount,
		Date:       draft.Date,
		ReturnRate: draft.ReturnRate,
		ExpDate:    draft.ExpDate,
		Notes:      draft.Notes,
	}

	next := append(append([]models.Investment(nil), l.records...), record)
	if err := store.Save(ctx, l.store, store.KeyLedger, next); err != nil {
		return models.Investment{}, fmt.Errorf("failed to persist investment ledger: %w", err)
	}
	l.records = next
	return record, nil
}

// Update replaces the fields of the record with the given id, keeping its id
// and its position in the sequence. It fails with common.ErrorNotFound when
// no record has that id.
func (l *Ledger) Update(ctx context.Context, id int64, draft models.InvestmentDraft) error {
	idx := -1
	for i, r := range l.records {
		if r.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return fmt.Errorf("updating investment %d: %w", id, common.ErrorNotFound)
	}

	next := append([]models.Investment(nil), l.records...)
	next[idx] = models.Investment{
		ID:         id,
		Name:       draft.Name,
		Type:       draft.Type,
		Amount:     draft.Amount,
		Date:       draft.Date,
		ReturnRate: draft.ReturnRate,
		ExpDate:    draft.ExpDate,
		Notes:      draft.Notes,
	}

	if err := store.Save(ctx, l.store, store.KeyLedger, next); err != nil {
		return fmt.Errorf("failed to persist investment ledger: %w", err)
	}
	l.records = next
	return nil
}

// Delete removes the record with the given id. Deleting an id that is not
// present is a no-op, so Delete is idempotent.
func (l *Ledger) Delete(ctx context.Context, id int64) error {
	next := make([]models.Investment, 0, len(l.records))
	for _, r := range l.records {
		if r.ID != id {
			next = append(next, r)
		}
	}
	if len(next) == len(l.records) {
		return nil
	}

	if err := store.Save(ctx, l.store, store.KeyLedger, next); err != nil {
		return fmt.Errorf("failed to persist investment ledger: %w", err)
	}
	l.records = next
	return nil
}
