package usecase

import (
	"context"
	"sort"

	"donation-service/src/internal/entity"
	"donation-service/src/internal/model"
	"donation-service/src/internal/repository"
	"donation-service/src/internal/search"
	"donation-service/src/pkg/log"
	"donation-service/src/pkg/utils"

	"github.com/go-playground/validator/v10"
)

type SearchUseCase struct {
	Log                 log.Log
	Validate            *validator.Validate
	Index               *search.Index
	EmergencyRepository repository.EmergencyRepository
	RewardRepository    repository.RewardRepository
}

func NewSearchUseCase(
	logger log.Log,
	validate *validator.Validate,
	index *search.Index,
	emergencyRepository repository.EmergencyRepository,
	rewardRepository repository.RewardRepository,
) *SearchUseCase {
	return &SearchUseCase{
		Log:                 logger,
		Validate:            validate,
		Index:               index,
		EmergencyRepository: emergencyRepository,
		RewardRepository:    rewardRepository,
	}
}

// Rebuild indexes every emergency and reward currently stored.
func (c *SearchUseCase) Rebuild(ctx context.Context) error {
	emergencies, err := c.EmergencyRepository.List(ctx)
	if err != nil {
		return err
	}
	for _, e := range emergencies {
		data := search.EmergencyData{Title: e.Title, Description: e.Description}
		if err := c.Index.Index(search.EmergencyDoc, e.ID, e.Title, data); err != nil {
			return err
		}
	}

	rewards, err := c.RewardRepository.ListRewards(ctx)
	if err != nil {
		return err
	}
	for _, r := range rewards {
		if err := c.IndexReward(r); err != nil {
			return err
		}
	}
	c.Log.Info("search-usecase", "search index rebuilt", "Rebuild", "")
	return nil
}

func (c *SearchUseCase) IndexReward(reward entity.Reward) error {
	data := search.RewardData{Title: reward.Title, Description: reward.Description, Type: string(reward.Type)}
	return c.Index.Index(search.RewardDoc, reward.ID, reward.Title, data)
}

func (c *SearchUseCase) RemoveReward(id string) error {
	return c.Index.Delete(search.RewardDoc, id)
}

func (c *SearchUseCase) Search(ctx context.Context, request *model.SearchRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		result.Error = validationError(err)
		c.Log.Error("Search-validation", err.Error(), "request", utils.ConvertString(request))
		return result
	}
	if err := ctx.Err(); err != nil {
		result.Error = storeError(err, "", "")
		return result
	}

	kinds := []string{search.EmergencyDoc, search.RewardDoc}
	if request.Kind != "" {
		kinds = []string{request.Kind}
	}

	hits := []model.SearchHit{}
	for _, kind := range kinds {
		found, err := c.Index.Search(kind, request.Query, request.Limit)
		if err != nil {
			c.Log.Error("search-usecase", err.Error(), "Search", utils.ConvertString(request))
			result.Error = storeError(err, "", "")
			return result
		}
		for _, h := range found {
			hits = append(hits, model.SearchHit{Kind: kind, ID: h.ID, Title: h.Title, Score: h.Score})
		}
	}
	sort.SliceStable(hits, func(i, j int) bool { return hits[i].Score > hits[j].Score })
	if request.Limit > 0 && len(hits) > request.Limit {
		hits = hits[:request.Limit]
	}
	result.Data = hits
	return result
}
