package aggregate_test

import (
	"testing"

	"github.com/MikeRez0/eatsadmin/internal/adapter/storage/memory"
	"github.com/MikeRez0/eatsadmin/internal/core/aggregate"
	"github.com/MikeRez0/eatsadmin/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func names(restaurants []domain.Restaurant) []string {
	out := make([]string, 0, len(restaurants))
	for _, r := range restaurants {
		out = append(out, r.Name)
	}
	return out
}

func TestFilterRestaurants(t *testing.T) {
	restaurants := memory.Fixtures().Restaurants

	type filterTest struct {
		name     string
		filter   domain.RestaurantFilter
		expNames []string
	}

	tests := []filterTest{
		{
			name:   "no criteria",
			filter: domain.RestaurantFilter{},
			expNames: []string{"Pizza Palace", "Burger Hub", "Sushi Express", "Taco Fiesta",
				"Curry House", "Mediterranean Delight"},
		},
		{
			name:     "search name ignores case",
			filter:   domain.RestaurantFilter{Search: "PIZZA"},
			expNames: []string{"Pizza Palace"},
		},
		{
			name:     "search matches cuisine",
			filter:   domain.RestaurantFilter{Search: "japan"},
			expNames: []string{"Sushi Express"},
		},
		{
			name:     "status",
			filter:   domain.RestaurantFilter{Status: "pending"},
			expNames: []string{"Sushi Express"},
		},
		{
			name:     "status all with cuisine",
			filter:   domain.RestaurantFilter{Status: domain.FilterAll, Cuisine: "Mexican"},
			expNames: []string{"Taco Fiesta"},
		},
		{
			name:     "minimum rating",
			filter:   domain.RestaurantFilter{MinRating: 4.5},
			expNames: []string{"Pizza Palace", "Sushi Express", "Curry House"},
		},
		{
			name:     "nothing matches",
			filter:   domain.RestaurantFilter{Search: "vegan", Status: "active"},
			expNames: []string{},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got := aggregate.FilterRestaurants(restaurants, test.filter)
			assert.Equal(t, test.expNames, names(got))
		})
	}
}

func TestCountByStatus(t *testing.T) {
	got := aggregate.CountByStatus(memory.Fixtures().Restaurants)

	assert.Equal(t, domain.RestaurantStatusCounts{Active: 4, Pending: 1, Inactive: 1}, got)
}

func TestCuisines(t *testing.T) {
	restaurants := []domain.Restaurant{
		{Name: "a", Cuisine: "Italian"},
		{Name: "b", Cuisine: "Mexican"},
		{Name: "c", Cuisine: "Italian"},
	}

	assert.Equal(t, []string{"Italian", "Mexican"}, aggregate.Cuisines(restaurants))
}

func TestSummarizeActivity(t *testing.T) {
	activity := []domain.RestaurantActivity{
		{
			Restaurant: "Pizza Palace",
			Cuisine:    "Italian",
			Days: []domain.DailyOrders{
				{Day: "Mon", Orders: 45}, {Day: "Tue", Orders: 52}, {Day: "Wed", Orders: 38},
				{Day: "Thu", Orders: 61}, {Day: "Fri", Orders: 73}, {Day: "Sat", Orders: 89},
				{Day: "Sun", Orders: 67},
			},
		},
		{
			Restaurant: "Tie Town",
			Days:       []domain.DailyOrders{{Day: "Mon", Orders: 5}, {Day: "Tue", Orders: 5}},
		},
		{Restaurant: "Closed"},
	}

	got := aggregate.SummarizeActivity(activity)

	require.Len(t, got, 3)
	assert.Equal(t, 425, got[0].TotalOrders)
	assert.Equal(t, "Sat", got[0].PeakDay)
	assert.Equal(t, 89, got[0].PeakOrders)
	assert.InDelta(t, 60.714, got[0].DailyAverage, 0.001)

	assert.Equal(t, "Mon", got[1].PeakDay)

	assert.Zero(t, got[2].TotalOrders)
	assert.Empty(t, got[2].PeakDay)
	assert.Zero(t, got[2].DailyAverage)
}
