package repository

import (
	"context"
	"testing"
	"time"

	"donation-service/src/internal/entity"

	"github.com/stretchr/testify/require"
)

func Test_MemorySessionRepository_Form(t *testing.T) {
	ctx := context.Background()
	repo := NewMemorySessionRepository()

	form := entity.NewDonationForm("form-1", entity.DonationRecurring)
	form.SelectAmount(25)
	require.NoError(t, repo.Save(ctx, form, time.Hour))

	// stored values are detached from the caller's pointer
	form.Name = "changed"

	found, err := repo.Find(ctx, "form-1")
	require.NoError(t, err)
	require.Equal(t, entity.DonationRecurring, found.Type)
	require.Equal(t, 25.0, found.FinalAmount())
	require.Empty(t, found.Name)

	_, err = repo.Find(ctx, "form-2")
	require.ErrorIs(t, err, ErrNotFound)
}

func Test_MemorySessionRepository_Expiry(t *testing.T) {
	ctx := context.Background()
	repo := NewMemorySessionRepository()
	now := time.Date(2024, time.June, 1, 9, 0, 0, 0, time.UTC)
	repo.now = func() time.Time { return now }

	require.NoError(t, repo.Dismiss(ctx, "session-1", time.Minute))
	dismissed, err := repo.IsDismissed(ctx, "session-1")
	require.NoError(t, err)
	require.True(t, dismissed)

	dismissed, err = repo.IsDismissed(ctx, "session-2")
	require.NoError(t, err)
	require.False(t, dismissed)

	now = now.Add(2 * time.Minute)
	dismissed, err = repo.IsDismissed(ctx, "session-1")
	require.NoError(t, err)
	require.False(t, dismissed)

	require.NoError(t, repo.Save(ctx, entity.NewDonationForm("form-1", entity.DonationSingle), 0))
	now = now.Add(24 * time.Hour)
	_, err = repo.Find(ctx, "form-1")
	require.NoError(t, err)
}

func Test_MemorySessionRepository_SweepsAbandonedForms(t *testing.T) {
	ctx := context.Background()
	repo := NewMemorySessionRepository()
	now := time.Date(2024, time.June, 1, 9, 0, 0, 0, time.UTC)
	repo.now = func() time.Time { return now }

	require.NoError(t, repo.Save(ctx, entity.NewDonationForm("form-1", entity.DonationSingle), time.Minute))
	require.NoError(t, repo.Save(ctx, entity.NewDonationForm("form-2", entity.DonationSingle), time.Minute))
	require.NoError(t, repo.Save(ctx, entity.NewDonationForm("form-keep", entity.DonationSingle), 0))
	require.Equal(t, 3, repo.size())

	now = now.Add(2 * time.Minute)
	require.NoError(t, repo.Dismiss(ctx, "session-1", time.Hour))
	require.Equal(t, 2, repo.size())

	_, err := repo.Find(ctx, "form-keep")
	require.NoError(t, err)
	dismissed, err := repo.IsDismissed(ctx, "session-1")
	require.NoError(t, err)
	require.True(t, dismissed)
}
