package usecase

import (
	"context"
	"net/http"
	"testing"

	"donation-service/src/internal/entity"
	"donation-service/src/internal/model"
	"donation-service/src/internal/repository"
	"donation-service/src/internal/search"

	"github.com/stretchr/testify/require"
)

func newSearchUseCase(t *testing.T) *SearchUseCase {
	logger, validate := testDeps()
	seed := repository.DefaultSeed()
	index := search.NewIndex(logger)
	t.Cleanup(index.Close)

	uc := NewSearchUseCase(logger, validate, index,
		repository.NewMemoryEmergencyRepository(seed, 0),
		repository.NewMemoryRewardRepository(seed, 0))
	require.NoError(t, uc.Rebuild(context.Background()))
	return uc
}

func Test_SearchUseCase_Search(t *testing.T) {
	uc := newSearchUseCase(t)
	ctx := context.Background()

	result := uc.Search(ctx, &model.SearchRequest{Query: "Inundaciones"})
	require.NoError(t, result.Error)
	hits := result.Data.([]model.SearchHit)
	require.Len(t, hits, 1)
	require.Equal(t, "em-001", hits[0].ID)
	require.Equal(t, search.EmergencyDoc, hits[0].Kind)
	require.Equal(t, "Inundaciones en el Litoral", hits[0].Title)

	result = uc.Search(ctx, &model.SearchRequest{Query: "insignia", Kind: search.RewardDoc})
	require.NoError(t, result.Error)
	hits = result.Data.([]model.SearchHit)
	require.Len(t, hits, 2)

	result = uc.Search(ctx, &model.SearchRequest{Query: "insignia", Limit: 1})
	require.NoError(t, result.Error)
	require.Len(t, result.Data.([]model.SearchHit), 1)
}

func Test_SearchUseCase_Reindex(t *testing.T) {
	uc := newSearchUseCase(t)
	ctx := context.Background()

	require.NoError(t, uc.IndexReward(entity.Reward{ID: "rw-100", Title: "Mochila escolar", Type: entity.RewardExperience}))
	hits := uc.Search(ctx, &model.SearchRequest{Query: "mochila"}).Data.([]model.SearchHit)
	require.Len(t, hits, 1)

	require.NoError(t, uc.RemoveReward("rw-100"))
	hits = uc.Search(ctx, &model.SearchRequest{Query: "mochila"}).Data.([]model.SearchHit)
	require.Empty(t, hits)
}

func Test_SearchUseCase_Validation(t *testing.T) {
	uc := newSearchUseCase(t)

	result := uc.Search(context.Background(), &model.SearchRequest{})
	requireError(t, result.Error, http.StatusBadRequest)

	result = uc.Search(context.Background(), &model.SearchRequest{Query: "a", Kind: "user"})
	requireError(t, result.Error, http.StatusBadRequest)
}
