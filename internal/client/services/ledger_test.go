package services

import (
	"context"
	"testing"

	"github.com/mrezendes/investrack/internal/client/models"
	"github.com/mrezendes/investrack/internal/common"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func newLedger(t *testing.T) *Ledger {
	t.Helper()
	l := NewLedger(setupStore(t), testNode(t), testLogger(t))
	require.NoError(t, l.Load(context.Background()))
	return l
}

func draft(name string) models.InvestmentDraft {
	return models.InvestmentDraft{
		Name:       name,
		Type:       models.InvestmentTypeFixedIncome,
		Amount:     decimal.NewFromInt(1000),
		Date:       models.NewDate(2026, 1, 1),
		ReturnRate: decimal.NewFromInt(10),
		ExpDate:    models.NewDate(2030, 1, 1),
		Notes:      "",
	}
}

func TestLedger_CreateAssignsUniqueIDs(t *testing.T) {
	l := newLedger(t)
	ctx := context.Background()

	seen := make(map[int64]bool)
	for i := 0; i < 50; i++ {
		rec, err := l.Create(ctx, draft("Tesouro"))
		require.NoError(t, err)
		require.False(t, seen[rec.ID], "id %d assigned twice", rec.ID)
		seen[rec.ID] = true
	}
	require.Len(t, l.List(), 50)
}

func TestLedger_CreateReturnsStoredRecord(t *testing.T) {
	l := newLedger(t)

	rec, err := l.Create(context.Background(), draft("Tesouro"))
	require.NoError(t, err)
	require.NotZero(t, rec.ID)

	list := l.List()
	require.Len(t, list, 1)
	require.Equal(t, rec, list[0])

	got, ok := l.Get(rec.ID)
	require.True(t, ok)
	require.Equal(t, rec, got)
}

func TestLedger_ListKeepsInsertionOrder(t *testing.T) {
	l := newLedger(t)
	ctx := context.Background()

	names := []string{"PETR4", "CDB Inter", "Tesouro IPCA"}
	for _, n := range names {
		_, err := l.Create(ctx, draft(n))
		require.NoError(t, err)
	}

	list := l.List()
	require.Len(t, list, len(names))
	for i, n := range names {
		require.Equal(t, n, list[i].Name)
	}
}

func TestLedger_ListReturnsCopy(t *testing.T) {
	l := newLedger(t)
	_, err := l.Create(context.Background(), draft("Tesouro"))
	require.NoError(t, err)

	list := l.List()
	list[0].Name = "mutated"
	require.Equal(t, "Tesouro", l.List()[0].Name)
}

func TestLedger_UpdateInPlace(t *testing.T) {
	l := newLedger(t)
	ctx := context.Background()

	first, err := l.Create(ctx, draft("PETR4"))
	require.NoError(t, err)
	second, err := l.Create(ctx, draft("CDB Inter"))
	require.NoError(t, err)

	updated := draft("CDB Nubank")
	updated.Amount = decimal.NewFromInt(2500)
	require.NoError(t, l.Update(ctx, second.ID, updated))

	list := l.List()
	require.Len(t, list, 2)
	require.Equal(t, first, list[0], "other records untouched")
	require.Equal(t, second.ID, list[1].ID, "id retained")
	require.Equal(t, "CDB Nubank", list[1].Name)
	require.True(t, list[1].Amount.Equal(decimal.NewFromInt(2500)))
}

func TestLedger_UpdatePreservesPosition(t *testing.T) {
	l := newLedger(t)
	ctx := context.Background()

	var ids []int64
	for _, n := range []string{"a", "b", "c"} {
		rec, err := l.Create(ctx, draft(n))
		require.NoError(t, err)
		ids = append(ids, rec.ID)
	}

	require.NoError(t, l.Update(ctx, ids[0], draft("a2")))

	list := l.List()
	require.Equal(t, ids[0], list[0].ID)
	require.Equal(t, "a2", list[0].Name)
}

func TestLedger_UpdateUnknownIDFails(t *testing.T) {
	l := newLedger(t)
	ctx := context.Background()

	rec, err := l.Create(ctx, draft("Tesouro"))
	require.NoError(t, err)

	err = l.Update(ctx, rec.ID+1, draft("nope"))
	require.ErrorIs(t, err, common.ErrorNotFound)

	list := l.List()
	require.Len(t, list, 1)
	require.Equal(t, rec, list[0], "failed update must not change the ledger")
}

func TestLedger_DeleteIsIdempotent(t *testing.T) {
	l := newLedger(t)
	ctx := context.Background()

	rec, err := l.Create(ctx, draft("Tesouro"))
	require.NoError(t, err)
	keep, err := l.Create(ctx, draft("PETR4"))
	require.NoError(t, err)

	require.NoError(t, l.Delete(ctx, rec.ID))
	require.NoError(t, l.Delete(ctx, rec.ID))

	list := l.List()
	require.Len(t, list, 1)
	require.Equal(t, keep.ID, list[0].ID)

	// deleting a never-seen id is also fine
	require.NoError(t, l.Delete(ctx, 424242))
}

func TestLedger_RoundTripThroughStore(t *testing.T) {
	st := setupStore(t)
	log := testLogger(t)
	ctx := context.Background()

	l := NewLedger(st, testNode(t), log)
	require.NoError(t, l.Load(ctx))

	d := draft("Tesouro IPCA 2030")
	d.Notes = "resgate no vencimento"
	_, err := l.Create(ctx, d)
	require.NoError(t, err)
	_, err = l.Create(ctx, draft("PETR4"))
	require.NoError(t, err)

	fresh := NewLedger(st, testNode(t), log)
	require.NoError(t, fresh.Load(ctx))
	require.Equal(t, l.List(), fresh.List())
}

func TestLedger_TreasuryProfitScenario(t *testing.T) {
	l := newLedger(t)

	rec, err := l.Create(context.Background(), models.InvestmentDraft{
		Name:       "Tesouro",
		Type:       models.InvestmentTypeFixedIncome,
		Amount:     decimal.NewFromInt(1000),
		ReturnRate: decimal.NewFromInt(10),
	})
	require.NoError(t, err)
	require.True(t, rec.EstimatedProfit().Equal(decimal.NewFromInt(100)),
		"profit = %s", rec.EstimatedProfit())
}

func TestLedger_FailedPersistRollsBack(t *testing.T) {
	good := setupStore(t)
	log := testLogger(t)
	ctx := context.Background()

	l := NewLedger(good, testNode(t), log)
	require.NoError(t, l.Load(ctx))
	rec, err := l.Create(ctx, draft("Tesouro"))
	require.NoError(t, err)

	bad := NewLedger(&failingStore{Store: good}, testNode(t), log)
	require.NoError(t, bad.Load(ctx))

	_, err = bad.Create(ctx, draft("nope"))
	require.ErrorIs(t, err, errWrite)
	require.Len(t, bad.List(), 1)

	err = bad.Update(ctx, rec.ID, draft("nope"))
	require.ErrorIs(t, err, errWrite)
	require.Equal(t, rec, bad.List()[0])

	err = bad.Delete(ctx, rec.ID)
	require.ErrorIs(t, err, errWrite)
	require.Len(t, bad.List(), 1)
}
