package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"artisan-backend/internal/app/apperr"
	"artisan-backend/internal/app/configurator"
	"artisan-backend/internal/app/ds"
)

func TestMemoryStore_GetPut(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore[ds.Artisan]("artisan")

	_, err := s.Get(ctx, "artisan-1")
	assert.True(t, apperr.Is(err, apperr.KindNotFound))

	a := &ds.Artisan{ArtisanID: "artisan-1", LegalName: "Ravi Leather Works"}
	require.NoError(t, s.Put(ctx, a))
	a.LegalName = "changed after put"

	got, err := s.Get(ctx, "artisan-1")
	require.NoError(t, err)
	assert.Equal(t, "Ravi Leather Works", got.LegalName)

	got.LegalName = "Ravi Exports"
	require.NoError(t, s.Put(ctx, got))

	again, err := s.Get(ctx, "artisan-1")
	require.NoError(t, err)
	assert.Equal(t, "Ravi Exports", again.LegalName)
}

func TestMemoryStore_ListByOwnerKeepsInsertOrder(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore[ds.Submission]("submission")

	for _, sub := range []ds.Submission{
		{SubmissionID: "submission-1", ArtisanID: "artisan-a"},
		{SubmissionID: "submission-2", ArtisanID: "artisan-b"},
		{SubmissionID: "submission-3", ArtisanID: "artisan-a"},
	} {
		sub := sub
		require.NoError(t, s.Put(ctx, &sub))
	}
	// повторная запись не меняет порядок
	require.NoError(t, s.Put(ctx, &ds.Submission{SubmissionID: "submission-1", ArtisanID: "artisan-a", Market: "EU"}))

	all, err := s.List(ctx, "")
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "submission-1", all[0].SubmissionID)
	assert.Equal(t, "EU", all[0].Market)

	own, err := s.List(ctx, "artisan-a")
	require.NoError(t, err)
	require.Len(t, own, 2)
	assert.Equal(t, "submission-3", own[1].SubmissionID)
}

func TestMemoryStore_NestedValuesAreCopied(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore[ds.Submission]("submission")

	sub := &ds.Submission{
		SubmissionID: "submission-1",
		ProductData:  ds.ProductData{Values: configurator.Values{"shoe_type": "Oxford"}},
	}
	require.NoError(t, s.Put(ctx, sub))
	sub.ProductData.Values["shoe_type"] = "Derby"

	got, err := s.Get(ctx, "submission-1")
	require.NoError(t, err)
	assert.Equal(t, "Oxford", got.ProductData.Values["shoe_type"])
}
