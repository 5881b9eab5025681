package http

import (
	"github.com/MikeRez0/eatsadmin/internal/core/domain"
	"github.com/MikeRez0/eatsadmin/internal/core/port"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type UserHandler struct {
	Handler
	service port.Service
}

func NewUserHandler(service port.Service, logger *zap.Logger) (*UserHandler, error) {
	return &UserHandler{
		Handler: *NewHandler(logger),
		service: service,
	}, nil
}

type leaderboardResponse struct {
	Ranking []domain.UserStat `json:"ranking"`
	Gold    *domain.UserStat  `json:"gold"`
	Silver  *domain.UserStat  `json:"silver"`
	Bronze  *domain.UserStat  `json:"bronze"`
}

func placement(board domain.Leaderboard, tier domain.Tier) *domain.UserStat {
	u, ok := board.Placement(tier)
	if !ok {
		return nil
	}
	return &u
}

func (uh *UserHandler) Leaderboard(ctx *gin.Context) {
	board, err := uh.service.Leaderboard(ctx)
	if err != nil {
		uh.handleError(ctx, err)
		return
	}

	uh.handleSuccess(ctx, leaderboardResponse{
		Ranking: board.Ranking,
		Gold:    placement(board, domain.TierGold),
		Silver:  placement(board, domain.TierSilver),
		Bronze:  placement(board, domain.TierBronze),
	})
}

type restaurantUsersQuery struct {
	Threshold int `form:"threshold"`
}

// RestaurantUsers reports the top user and high cancelers of every
// restaurant. Without a threshold the configured one applies.
func (uh *UserHandler) RestaurantUsers(ctx *gin.Context) {
	var q restaurantUsersQuery
	if err := ctx.ShouldBindQuery(&q); err != nil {
		uh.handleValidationError(ctx, err)
		return
	}

	list, err := uh.service.RestaurantUsers(ctx, q.Threshold)
	if err != nil {
		uh.handleError(ctx, err)
		return
	}
	uh.handleSuccess(ctx, list)
}
