package aggregate

import (
	"slices"

	"github.com/MikeRez0/eatsadmin/internal/core/domain"
)

// SummarizeActivity derives weekly totals for each restaurant. The peak
// day is the first day holding the maximum count.
func SummarizeActivity(activity []domain.RestaurantActivity) []domain.ActivitySummary {
	out := make([]domain.ActivitySummary, 0, len(activity))
	for _, a := range activity {
		s := domain.ActivitySummary{
			Restaurant: a.Restaurant,
			Cuisine:    a.Cuisine,
			Days:       slices.Clone(a.Days),
		}
		for i, d := range a.Days {
			s.TotalOrders += d.Orders
			if i == 0 || d.Orders > s.PeakOrders {
				s.PeakDay = d.Day
				s.PeakOrders = d.Orders
			}
		}
		if len(a.Days) > 0 {
			s.DailyAverage = float64(s.TotalOrders) / float64(len(a.Days))
		}
		out = append(out, s)
	}
	return out
}
