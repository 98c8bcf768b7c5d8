package usecase

import (
	"context"
	"net/http"
	"regexp"
	"sync"
	"testing"
	"time"

	"donation-service/src/internal/entity"
	"donation-service/src/internal/gateway/messaging"
	"donation-service/src/internal/model"
	"donation-service/src/internal/repository"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type RewardUseCaseTestSuite struct {
	suite.Suite
	repo     *repository.MemoryRewardRepository
	producer *recordingProducer
	usecase  *RewardUseCase
}

func TestRewardUseCaseSuite(t *testing.T) {
	suite.Run(t, new(RewardUseCaseTestSuite))
}

func (suite *RewardUseCaseTestSuite) SetupTest() {
	logger, validate := testDeps()
	suite.repo = repository.NewMemoryRewardRepository(repository.DefaultSeed(), 0)
	suite.producer = &recordingProducer{}
	suite.usecase = NewRewardUseCase(logger, validate, suite.repo,
		messaging.NewRewardProducer(suite.producer, messaging.RewardTopics{}, logger))
	suite.usecase.Now = func() time.Time { return time.Date(2024, time.May, 2, 15, 0, 0, 0, time.UTC) }
}

func (suite *RewardUseCaseTestSuite) TestListAvailable() {
	t := suite.T()
	result := suite.usecase.ListAvailable(context.Background())
	require.NoError(t, result.Error)

	rewards := result.Data.([]entity.Reward)
	require.Len(t, rewards, 4)
	for _, r := range rewards {
		require.True(t, r.Active, r.ID)
	}
}

func (suite *RewardUseCaseTestSuite) TestRedeem() {
	t := suite.T()
	result := suite.usecase.Redeem(context.Background(), &model.RedeemRewardRequest{
		UserID:   repository.CurrentUserID,
		RewardID: "rw-001",
	})
	require.NoError(t, result.Error)

	resp := result.Data.(model.RedeemRewardResponse)
	require.Contains(t, resp.Message, "Insignia Amigo Solidario")
	require.Regexp(t, regexp.MustCompile(`^RWRD-[0-9A-Z]{6}$`), resp.UserReward.Code)
	require.Equal(t, 220, resp.Points.Available)
	require.Equal(t, 300, resp.Points.Spent)
	require.Equal(t, 520, resp.Points.Total)
	require.Equal(t, entity.TransactionSpent, resp.Points.History[0].Type)
	require.Equal(t, 100, resp.Points.History[0].Amount)
	require.Equal(t, suite.usecase.Now(), resp.UserReward.AssignedAt)

	require.Equal(t, []string{"reward-redeemed"}, suite.producer.topics())
	var event model.RewardEvent
	suite.producer.decode(t, 0, &event)
	require.Equal(t, resp.UserReward.ID, event.UserRewardID)
	require.Equal(t, 100, event.Points)
}

func (suite *RewardUseCaseTestSuite) TestRedeemInsufficientPoints() {
	t := suite.T()
	result := suite.usecase.Redeem(context.Background(), &model.RedeemRewardRequest{
		UserID:   repository.CurrentUserID,
		RewardID: "rw-003",
	})
	ce := requireError(t, result.Error, http.StatusUnprocessableEntity)
	require.Equal(t, "No tienes puntos suficientes para canjear esta recompensa", ce.Message)
	require.Empty(t, suite.producer.topics())

	points := suite.usecase.Points(context.Background(), repository.CurrentUserID).Data.(*entity.UserPoints)
	require.Equal(t, 320, points.Available)
	require.Equal(t, 200, points.Spent)
	require.Len(t, points.History, 4)
}

func (suite *RewardUseCaseTestSuite) TestRedeemInactiveAndMissing() {
	t := suite.T()
	ctx := context.Background()

	result := suite.usecase.Redeem(ctx, &model.RedeemRewardRequest{UserID: repository.CurrentUserID, RewardID: "rw-005"})
	requireError(t, result.Error, http.StatusUnprocessableEntity)

	result = suite.usecase.Redeem(ctx, &model.RedeemRewardRequest{UserID: repository.CurrentUserID, RewardID: "does-not-exist"})
	ce := requireError(t, result.Error, http.StatusNotFound)
	require.Equal(t, "/rewards", ce.Redirect)

	result = suite.usecase.Redeem(ctx, &model.RedeemRewardRequest{UserID: repository.CurrentUserID})
	ce = requireError(t, result.Error, http.StatusBadRequest)
	require.Contains(t, ce.Fields, "rewardId")
}

func (suite *RewardUseCaseTestSuite) TestConcurrentRedeem() {
	t := suite.T()
	var wg sync.WaitGroup
	results := make([]error, 8)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = suite.usecase.Redeem(context.Background(), &model.RedeemRewardRequest{
				UserID:   repository.CurrentUserID,
				RewardID: "rw-002",
			}).Error
		}(i)
	}
	wg.Wait()

	ok := 0
	for _, err := range results {
		if err == nil {
			ok++
		}
	}
	// 320 / 200
	require.Equal(t, 1, ok)
	points := suite.usecase.Points(context.Background(), repository.CurrentUserID).Data.(*entity.UserPoints)
	require.Equal(t, 120, points.Available)
	require.Equal(t, points.Total, points.Available+points.Spent)
}

func (suite *RewardUseCaseTestSuite) TestGet() {
	t := suite.T()
	result := suite.usecase.Get(context.Background(), &model.GetRewardRequest{ID: "rw-003"})
	require.NoError(t, result.Error)
	require.Equal(t, "Visita al Centro de Distribución", result.Data.(*entity.Reward).Title)

	result = suite.usecase.Get(context.Background(), &model.GetRewardRequest{ID: "does-not-exist"})
	ce := requireError(t, result.Error, http.StatusNotFound)
	require.Equal(t, "Recompensa no encontrada", ce.Message)
}

func (suite *RewardUseCaseTestSuite) TestOverviewAndHistory() {
	t := suite.T()
	result := suite.usecase.Overview(context.Background(), repository.CurrentUserID)
	require.NoError(t, result.Error)

	overview := result.Data.(model.RewardsOverviewResponse)
	require.Len(t, overview.Rewards, 4)
	require.Equal(t, 320, overview.Points.Available)
	require.Len(t, overview.Leaderboard, 6)

	result = suite.usecase.History(context.Background(), repository.CurrentUserID)
	require.NoError(t, result.Error)
	history := result.Data.(model.RewardHistoryResponse)
	require.Len(t, history.Rewards, 1)
	require.Equal(t, "RWRD-7K2M9Q", history.Rewards[0].Code)
	require.Len(t, history.Transactions, 4)
}

func (suite *RewardUseCaseTestSuite) TestCanceledContext() {
	t := suite.T()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result := suite.usecase.Overview(ctx, repository.CurrentUserID)
	ce := requireError(t, result.Error, http.StatusServiceUnavailable)
	require.True(t, ce.Retryable)
}

func Test_BuildLeaderboard(t *testing.T) {
	participants := repository.DefaultSeed().Participants
	board := BuildLeaderboard(participants, repository.CurrentUserID, 520)

	require.Len(t, board, 6)
	for i, entry := range board {
		require.Equal(t, i+1, entry.Rank)
		if i > 0 {
			require.GreaterOrEqual(t, board[i-1].Points, entry.Points)
		}
	}

	me := board[3]
	require.True(t, me.IsCurrentUser)
	require.Equal(t, "Tú", me.DisplayName)
	require.Equal(t, 520, me.Points)

	require.Equal(t, "María González", board[0].DisplayName)
	require.Equal(t, "Donante anónimo", board[1].DisplayName)
	require.True(t, board[1].Anonymous)
}

func Test_BuildLeaderboard_CurrentUserListed(t *testing.T) {
	participants := []entity.LeaderboardParticipant{
		{UserID: "a", Name: "A", Points: 100},
		{UserID: "me", Name: "Yo", Points: 50, Anonymous: true},
	}
	board := BuildLeaderboard(participants, "me", 300)

	require.Len(t, board, 2)
	require.Equal(t, "me", board[0].UserID)
	require.Equal(t, 300, board[0].Points)
	require.Equal(t, "Yo", board[0].DisplayName)
	require.False(t, board[0].Anonymous)
	require.Equal(t, 2, board[1].Rank)
}
