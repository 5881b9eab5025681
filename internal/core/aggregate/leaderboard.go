package aggregate

import (
	"slices"

	"github.com/MikeRez0/eatsadmin/internal/core/domain"
)

const DefaultCancelThreshold = 3

// RankUsers orders users by total orders, highest first. Users with the
// same total keep their input order.
func RankUsers(users []domain.UserStat) domain.Leaderboard {
	ranking := slices.Clone(users)
	if ranking == nil {
		ranking = []domain.UserStat{}
	}
	slices.SortStableFunc(ranking, func(a, b domain.UserStat) int {
		return b.TotalOrders - a.TotalOrders
	})
	return domain.Leaderboard{Ranking: ranking}
}

// TopUserPerRestaurant picks the user with most orders for every
// restaurant, restaurants in first-seen order. The first user seen wins a
// tie.
func TopUserPerRestaurant(users []domain.UserStat) []domain.RestaurantTopUser {
	out := make([]domain.RestaurantTopUser, 0)
	pos := make(map[string]int)
	for _, u := range users {
		i, ok := pos[u.Restaurant]
		if !ok {
			pos[u.Restaurant] = len(out)
			out = append(out, domain.RestaurantTopUser{Restaurant: u.Restaurant, TopUser: u})
			continue
		}
		if u.TotalOrders > out[i].TopUser.TotalOrders {
			out[i].TopUser = u
		}
	}
	return out
}

// HighCancelers lists, per restaurant, the users whose canceled orders
// reach threshold. Restaurants without such users are included with an
// empty list.
func HighCancelers(users []domain.UserStat, threshold int) []domain.RestaurantCancelers {
	out := make([]domain.RestaurantCancelers, 0)
	pos := make(map[string]int)
	for _, u := range users {
		i, ok := pos[u.Restaurant]
		if !ok {
			i = len(out)
			pos[u.Restaurant] = i
			out = append(out, domain.RestaurantCancelers{Restaurant: u.Restaurant, Users: []domain.UserStat{}})
		}
		if u.CanceledOrders >= threshold {
			out[i].Users = append(out[i].Users, u)
		}
	}
	return out
}

// RestaurantUsers combines TopUserPerRestaurant and HighCancelers into one
// report per restaurant.
func RestaurantUsers(users []domain.UserStat, threshold int) []domain.RestaurantUserReport {
	tops := TopUserPerRestaurant(users)
	cancelers := HighCancelers(users, threshold)

	out := make([]domain.RestaurantUserReport, 0, len(tops))
	for i := range tops {
		top := tops[i].TopUser
		out = append(out, domain.RestaurantUserReport{
			Restaurant:    tops[i].Restaurant,
			TopUser:       &top,
			HighCancelers: cancelers[i].Users,
		})
	}
	return out
}
