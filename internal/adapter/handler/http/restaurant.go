package http

import (
	"github.com/MikeRez0/eatsadmin/internal/core/domain"
	"github.com/MikeRez0/eatsadmin/internal/core/port"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type RestaurantHandler struct {
	Handler
	service port.Service
}

func NewRestaurantHandler(service port.Service, logger *zap.Logger) (*RestaurantHandler, error) {
	return &RestaurantHandler{
		Handler: *NewHandler(logger),
		service: service,
	}, nil
}

type restaurantsQuery struct {
	Search    string  `form:"search"`
	Status    string  `form:"status"`
	Cuisine   string  `form:"cuisine"`
	MinRating float64 `form:"min_rating"`
}

func (rh *RestaurantHandler) ListRestaurants(ctx *gin.Context) {
	var q restaurantsQuery
	if err := ctx.ShouldBindQuery(&q); err != nil {
		rh.handleValidationError(ctx, err)
		return
	}

	list, err := rh.service.Restaurants(ctx, domain.RestaurantFilter{
		Search:    q.Search,
		Status:    q.Status,
		Cuisine:   q.Cuisine,
		MinRating: q.MinRating,
	})
	if err != nil {
		rh.handleError(ctx, err)
		return
	}
	rh.handleSuccess(ctx, list)
}

type restaurantStatsResponse struct {
	Total    int                           `json:"total"`
	Statuses domain.RestaurantStatusCounts `json:"statuses"`
	Cuisines []string                      `json:"cuisines"`
}

func (rh *RestaurantHandler) Stats(ctx *gin.Context) {
	counts, err := rh.service.RestaurantStatusCounts(ctx)
	if err != nil {
		rh.handleError(ctx, err)
		return
	}
	cuisines, err := rh.service.Cuisines(ctx)
	if err != nil {
		rh.handleError(ctx, err)
		return
	}

	rh.handleSuccess(ctx, restaurantStatsResponse{
		Total:    counts.Active + counts.Pending + counts.Inactive,
		Statuses: counts,
		Cuisines: cuisines,
	})
}

func (rh *RestaurantHandler) Analytics(ctx *gin.Context) {
	list, err := rh.service.Analytics(ctx)
	if err != nil {
		rh.handleError(ctx, err)
		return
	}
	rh.handleSuccess(ctx, list)
}
