package http_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	handler "github.com/MikeRez0/eatsadmin/internal/adapter/handler/http"
	"github.com/MikeRez0/eatsadmin/internal/adapter/storage/memory"
	"github.com/MikeRez0/eatsadmin/internal/core/domain"
	"github.com/MikeRez0/eatsadmin/internal/core/port"
	"github.com/MikeRez0/eatsadmin/internal/core/port/mock"
	"github.com/MikeRez0/eatsadmin/internal/core/service"
	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/govalues/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newRouter(t *testing.T, svc port.Service) *handler.Router {
	t.Helper()
	gin.SetMode(gin.TestMode)
	logger := zap.NewNop()

	oh, err := handler.NewOrderHandler(svc, logger)
	require.NoError(t, err)
	uh, err := handler.NewUserHandler(svc, logger)
	require.NoError(t, err)
	rh, err := handler.NewRestaurantHandler(svc, logger)
	require.NoError(t, err)

	r, err := handler.NewRouter(oh, uh, rh, handler.NewMetrics(), logger)
	require.NoError(t, err)
	return r
}

func fixtureRouter(t *testing.T, data memory.Dataset) *handler.Router {
	t.Helper()
	repo, err := memory.NewRepository(data)
	require.NoError(t, err)
	svc, err := service.NewService(repo, 3, zap.NewNop())
	require.NoError(t, err)
	return newRouter(t, svc)
}

func get(r http.Handler, target string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	r.ServeHTTP(w, req)
	return w
}

func TestRouter_Status(t *testing.T) {
	r := fixtureRouter(t, memory.Fixtures())

	type statusTest struct {
		name      string
		target    string
		expStatus int
	}

	tests := []statusTest{
		{name: "health", target: "/health", expStatus: http.StatusOK},
		{name: "summaries", target: "/api/orders/summary", expStatus: http.StatusOK},
		{name: "absent restaurant summary", target: "/api/orders/summary/Nowhere", expStatus: http.StatusOK},
		{name: "orders need restaurant", target: "/api/orders", expStatus: http.StatusBadRequest},
		{name: "orders bad status", target: "/api/orders?restaurant=Burger%20Hub&status=lost", expStatus: http.StatusBadRequest},
		{name: "invoice not found", target: "/api/orders/" + url.PathEscape("#ORD-999") + "/invoice", expStatus: http.StatusNotFound},
		{name: "leaderboard", target: "/api/users/leaderboard", expStatus: http.StatusOK},
		{name: "negative threshold", target: "/api/users/restaurants?threshold=-2", expStatus: http.StatusBadRequest},
		{name: "threshold not a number", target: "/api/users/restaurants?threshold=many", expStatus: http.StatusBadRequest},
		{name: "restaurants bad status", target: "/api/restaurants?status=closed", expStatus: http.StatusBadRequest},
		{name: "restaurants bad rating", target: "/api/restaurants?min_rating=high", expStatus: http.StatusBadRequest},
		{name: "restaurant stats", target: "/api/restaurants/stats", expStatus: http.StatusOK},
		{name: "analytics", target: "/api/analytics/restaurants", expStatus: http.StatusOK},
		{name: "unknown route", target: "/api/unknown", expStatus: http.StatusNotFound},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			w := get(r, test.target)
			assert.Equal(t, test.expStatus, w.Code, w.Body.String())
		})
	}

	w := get(r, "/metrics")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "eatsadmin_http_requests_total")
}

func TestRouter_Summaries(t *testing.T) {
	r := fixtureRouter(t, memory.Fixtures())

	w := get(r, "/api/orders/summary")
	require.Equal(t, http.StatusOK, w.Code)

	var list []domain.RestaurantOrderSummary
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Len(t, list, 4)
	assert.Equal(t, "Pizza Palace", list[0].Restaurant)
	assert.Equal(t, 4, list[0].Total)
	assert.Equal(t, 1, list[0].Canceled)
	assert.Equal(t, []string{"Sarah Wilson"}, list[0].CanceledBy.Names())

	w = get(r, "/api/orders/summary/Curry%20House")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t,
		`{"restaurant":"Curry House","total":0,"successful":0,"canceled":0,"canceled_by":[]}`,
		w.Body.String())
}

func TestRouter_Orders(t *testing.T) {
	r := fixtureRouter(t, memory.Fixtures())

	w := get(r, "/api/orders?restaurant=Burger%20Hub&status=canceled")
	require.Equal(t, http.StatusOK, w.Code)

	var list []domain.Order
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Len(t, list, 2)
	for _, o := range list {
		assert.Equal(t, domain.OrderStatusCanceled, o.Status)
		assert.Equal(t, "Admin Mark", o.CanceledBy)
	}

	w = get(r, "/api/orders?restaurant=Burger%20Hub&status=all")
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	assert.Len(t, list, 3)

	w = get(r, "/api/customers/John%20Doe/orders")
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	assert.Len(t, list, 2)

	w = get(r, "/api/customers/Nobody/orders")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "[]", w.Body.String())
}

func TestRouter_Invoice(t *testing.T) {
	data := memory.Fixtures()
	data.Orders = append(data.Orders,
		domain.Order{
			ID: "#ORD-900", Customer: "Zero Items", Restaurant: "Pizza Palace",
			Status: domain.OrderStatusDelivered, DeliveryType: domain.DeliveryTypeTakeaway,
			PaymentMethod: domain.PaymentMethodOnline,
		},
		domain.Order{
			ID: "#ORD-901", Customer: "Zero Quantity", Restaurant: "Pizza Palace",
			Items:  []domain.OrderItem{{Name: "Air", Quantity: 0, Price: decimal.One}},
			Status: domain.OrderStatusDelivered, DeliveryType: domain.DeliveryTypeTakeaway,
			PaymentMethod: domain.PaymentMethodOnline,
		},
	)
	r := fixtureRouter(t, data)

	w := get(r, "/api/orders/"+url.PathEscape("#ORD-101")+"/invoice")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var invoice domain.Invoice
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &invoice))
	assert.Equal(t, "#ORD-101", invoice.Order.ID)
	assert.Zero(t, decimal.MustParse("26.0795").Cmp(invoice.Totals.Total))
	assert.Zero(t, decimal.MustParse("26.08").Cmp(invoice.Display.Total))

	for _, id := range []string{"#ORD-900", "#ORD-901"} {
		w := get(r, "/api/orders/"+url.PathEscape(id)+"/invoice")
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code, id)
	}
}

func TestRouter_Users(t *testing.T) {
	r := fixtureRouter(t, memory.Fixtures())

	w := get(r, "/api/users/leaderboard")
	require.Equal(t, http.StatusOK, w.Code)

	var board struct {
		Ranking []domain.UserStat `json:"ranking"`
		Gold    *domain.UserStat  `json:"gold"`
		Bronze  *domain.UserStat  `json:"bronze"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &board))
	assert.Len(t, board.Ranking, 10)
	require.NotNil(t, board.Gold)
	assert.Equal(t, "John Doe", board.Gold.Name)
	require.NotNil(t, board.Bronze)
	assert.Equal(t, "Emma Brown", board.Bronze.Name)

	w = get(r, "/api/users/restaurants?threshold=5")
	require.Equal(t, http.StatusOK, w.Code)

	var reports []domain.RestaurantUserReport
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &reports))
	require.Len(t, reports, 4)
	for _, rep := range reports {
		require.NotNil(t, rep.TopUser)
		if rep.Restaurant == "Burger Hub" {
			require.Len(t, rep.HighCancelers, 1)
			assert.Equal(t, "Priya Gupta", rep.HighCancelers[0].Name)
		} else {
			assert.Empty(t, rep.HighCancelers)
		}
	}
}

func TestRouter_Restaurants(t *testing.T) {
	r := fixtureRouter(t, memory.Fixtures())

	w := get(r, "/api/restaurants?search=pizza")
	require.Equal(t, http.StatusOK, w.Code)

	var list []domain.Restaurant
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Len(t, list, 1)
	assert.Equal(t, "Pizza Palace", list[0].Name)

	w = get(r, "/api/restaurants/stats")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{
		"total": 6,
		"statuses": {"active": 4, "pending": 1, "inactive": 1},
		"cuisines": ["Italian", "American", "Japanese", "Mexican", "Indian", "Mediterranean"]
	}`, w.Body.String())

	w = get(r, "/api/analytics/restaurants")
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, strings.Contains(w.Body.String(), `"peak_day":"Sat"`))
}

func TestRouter_InternalErrorHidden(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	svc := mock.NewMockService(mockCtrl)
	svc.EXPECT().OrderSummaries(gomock.Any()).Return(nil, domain.ErrInternal)
	svc.EXPECT().Analytics(gomock.Any()).Return(nil, assert.AnError)

	r := newRouter(t, svc)

	for _, target := range []string{"/api/orders/summary", "/api/analytics/restaurants"} {
		w := get(r, target)
		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.JSONEq(t, `{"error":"internal error"}`, w.Body.String())
	}
}
