package aggregate

import (
	"strings"

	"github.com/MikeRez0/eatsadmin/internal/core/domain"
)

// FilterRestaurants keeps the restaurants matching every criterion of f:
// search text in name or cuisine (case-insensitive), status, exact cuisine
// and minimum rating.
func FilterRestaurants(restaurants []domain.Restaurant, f domain.RestaurantFilter) []domain.Restaurant {
	search := strings.ToLower(strings.TrimSpace(f.Search))

	out := make([]domain.Restaurant, 0)
	for _, r := range restaurants {
		if search != "" &&
			!strings.Contains(strings.ToLower(r.Name), search) &&
			!strings.Contains(strings.ToLower(r.Cuisine), search) {
			continue
		}
		if !matchesAll(f.Status) && string(r.Status) != f.Status {
			continue
		}
		if !matchesAll(f.Cuisine) && r.Cuisine != f.Cuisine {
			continue
		}
		if r.Rating < f.MinRating {
			continue
		}
		out = append(out, r)
	}
	return out
}

func matchesAll(criterion string) bool {
	return criterion == "" || criterion == domain.FilterAll
}

func CountByStatus(restaurants []domain.Restaurant) domain.RestaurantStatusCounts {
	var c domain.RestaurantStatusCounts
	for _, r := range restaurants {
		switch r.Status {
		case domain.RestaurantStatusActive:
			c.Active++
		case domain.RestaurantStatusPending:
			c.Pending++
		case domain.RestaurantStatusInactive:
			c.Inactive++
		}
	}
	return c
}

// Cuisines returns the distinct cuisines in first-seen order.
func Cuisines(restaurants []domain.Restaurant) []string {
	var set domain.NameSet
	for _, r := range restaurants {
		set.Add(r.Cuisine)
	}
	return set.Names()
}
