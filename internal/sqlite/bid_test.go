package sqlite

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/keelson/sitedesk/internal/domain/bid"
	"github.com/keelson/sitedesk/internal/repository"
)

func TestBidRepository_CRUD(t *testing.T) {
	db := NewTestDB(t)
	repo := NewBidRepository(db)
	ctx := context.Background()

	require.NoError(t, NewProjectRepository(db).Create(ctx, newProject("p1", "Riverside Tower")))

	b := &bid.Bid{ID: "b1", ProjectID: "p1", Title: "Electrical", Status: "draft", Amount: 78_500}
	require.NoError(t, repo.Create(ctx, b))

	retrieved, err := repo.Get(ctx, "b1")
	require.NoError(t, err)
	require.Equal(t, "Electrical", retrieved.Title)
	require.Equal(t, 78_500.0, retrieved.Amount)

	b.Status = "awarded"
	b.Amount = 81_000
	require.NoError(t, repo.Update(ctx, b))

	bids, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, bids, 1)
	require.Equal(t, "awarded", bids[0].Status)

	require.NoError(t, repo.Delete(ctx, "b1"))
	_, err = repo.Get(ctx, "b1")
	require.ErrorIs(t, err, repository.ErrNotFound)
}

func TestBidRepository_ForeignKey(t *testing.T) {
	db := NewTestDB(t)
	repo := NewBidRepository(db)
	ctx := context.Background()

	b := &bid.Bid{ID: "b1", ProjectID: "missing", Title: "Orphan"}
	err := repo.Create(ctx, b)
	require.ErrorIs(t, err, repository.ErrForeignKeyViolation)
}
