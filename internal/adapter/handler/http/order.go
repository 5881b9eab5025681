package http

import (
	"github.com/MikeRez0/eatsadmin/internal/core/domain"
	"github.com/MikeRez0/eatsadmin/internal/core/port"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type OrderHandler struct {
	Handler
	service port.Service
}

func NewOrderHandler(service port.Service, logger *zap.Logger) (*OrderHandler, error) {
	return &OrderHandler{
		Handler: *NewHandler(logger),
		service: service,
	}, nil
}

// Summaries godoc
//
//	@Summary	Order totals per restaurant
//	@Produce	json
//	@Success	200	{array}	domain.RestaurantOrderSummary
//	@Router		/api/orders/summary [get]
func (oh *OrderHandler) Summaries(ctx *gin.Context) {
	list, err := oh.service.OrderSummaries(ctx)
	if err != nil {
		oh.handleError(ctx, err)
		return
	}
	oh.handleSuccess(ctx, list)
}

// RestaurantSummary answers with an all-zero summary for a restaurant
// without orders.
func (oh *OrderHandler) RestaurantSummary(ctx *gin.Context) {
	summary, err := oh.service.RestaurantSummary(ctx, ctx.Param("restaurant"))
	if err != nil {
		oh.handleError(ctx, err)
		return
	}
	oh.handleSuccess(ctx, summary)
}

type ordersQuery struct {
	Restaurant string `form:"restaurant"`
	Status     string `form:"status"`
}

func (oh *OrderHandler) ListOrders(ctx *gin.Context) {
	var q ordersQuery
	if err := ctx.ShouldBindQuery(&q); err != nil {
		oh.handleValidationError(ctx, err)
		return
	}
	if q.Restaurant == "" {
		oh.handleValidationError(ctx, domain.ErrBadRequest)
		return
	}
	if q.Status == domain.FilterAll {
		q.Status = ""
	}

	list, err := oh.service.RestaurantOrders(ctx, q.Restaurant, domain.OrderStatus(q.Status))
	if err != nil {
		oh.handleError(ctx, err)
		return
	}
	oh.handleSuccess(ctx, list)
}

func (oh *OrderHandler) CustomerOrders(ctx *gin.Context) {
	list, err := oh.service.CustomerOrders(ctx, ctx.Param("name"))
	if err != nil {
		oh.handleError(ctx, err)
		return
	}
	oh.handleSuccess(ctx, list)
}

// Invoice godoc
//
//	@Summary	Invoice for one order
//	@Produce	json
//	@Param		id	path		string	true	"order id, url-encoded"
//	@Success	200	{object}	domain.Invoice
//	@Failure	404	{object}	errorResponse
//	@Failure	422	{object}	errorResponse
//	@Router		/api/orders/{id}/invoice [get]
func (oh *OrderHandler) Invoice(ctx *gin.Context) {
	invoice, err := oh.service.Invoice(ctx, ctx.Param("id"))
	if err != nil {
		oh.handleError(ctx, err)
		return
	}
	oh.handleSuccess(ctx, invoice)
}
