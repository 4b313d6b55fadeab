package store_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/finchat/internal/database/dbtest"
	"github.com/MrJamesThe3rd/finchat/internal/finance"
	financeStore "github.com/MrJamesThe3rd/finchat/internal/finance/store"
	"github.com/MrJamesThe3rd/finchat/internal/matching"
	"github.com/MrJamesThe3rd/finchat/internal/matching/store"
)

func TestStore_Rules(t *testing.T) {
	db := dbtest.Setup(t)
	dbtest.Truncate(t, db)

	ctx := context.Background()

	_, err := finance.NewService(financeStore.New(db)).RegisterUser(ctx, finance.RegisterParams{
		ExternalID: 55, Name: "Bia", Currency: "R$",
	})
	require.NoError(t, err)

	svc := matching.NewService(store.New(db))

	require.NoError(t, svc.Learn(ctx, 55, "padaria", "Alimentação", false))
	require.NoError(t, svc.Learn(ctx, 55, "Padaria Central", "Lazer", false))

	got, err := svc.Suggest(ctx, 55, "café na PADARIA central", false)
	require.NoError(t, err)
	assert.Equal(t, "Lazer", got, "rule with more words wins")

	got, err = svc.Suggest(ctx, 55, "padaria nova", false)
	require.NoError(t, err)
	assert.Equal(t, "Alimentação", got)

	got, err = svc.Suggest(ctx, 55, "padarias", false)
	require.NoError(t, err)
	assert.Empty(t, got, "whole words only")

	got, err = svc.Suggest(ctx, 55, "padaria", true)
	require.NoError(t, err)
	assert.Empty(t, got)

	require.NoError(t, svc.Learn(ctx, 55, "padaria", "Outros2", false))

	got, err = svc.Suggest(ctx, 55, "padaria nova", false)
	require.NoError(t, err)
	assert.Equal(t, "Outros2", got)
}

func TestStore_ShortDescriptionDoesNotTakeOver(t *testing.T) {
	db := dbtest.Setup(t)
	dbtest.Truncate(t, db)

	ctx := context.Background()

	_, err := finance.NewService(financeStore.New(db)).RegisterUser(ctx, finance.RegisterParams{
		ExternalID: 56, Name: "Caio", Currency: "R$",
	})
	require.NoError(t, err)

	svc := matching.NewService(store.New(db))

	for _, desc := range []string{"a", "de", "pix", "100%"} {
		require.NoError(t, svc.Learn(ctx, 56, desc, "Lazer", false))
	}

	got, err := svc.Suggest(ctx, 56, "gastei 45,90 no mercado", false)
	require.NoError(t, err)
	assert.Empty(t, got)
}
