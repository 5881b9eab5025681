package domain

import "fmt"

// UserStat aggregates one customer's orders at the restaurant they are
// affiliated with.
type UserStat struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Restaurant     string `json:"restaurant"`
	TotalOrders    int    `json:"total_orders"`
	CanceledOrders int    `json:"canceled_orders"`
}

func (u *UserStat) Validate() error {
	if u.TotalOrders < 0 || u.CanceledOrders < 0 {
		return fmt.Errorf("%w: user %s has negative counters", ErrInvalidUserStat, u.ID)
	}
	if u.CanceledOrders > u.TotalOrders {
		return fmt.Errorf("%w: user %s canceled %d of %d orders",
			ErrInvalidUserStat, u.ID, u.CanceledOrders, u.TotalOrders)
	}
	return nil
}

type Tier string

const (
	TierGold   Tier = "gold"
	TierSilver Tier = "silver"
	TierBronze Tier = "bronze"
)

// Tiers lists the podium tiers by rank.
var Tiers = []Tier{TierGold, TierSilver, TierBronze}

// Leaderboard is a ranking of users by total orders, highest first.
type Leaderboard struct {
	Ranking []UserStat `json:"ranking"`
}

// Placement returns the user holding tier. It reports false when fewer
// users than the tier's rank exist.
func (l Leaderboard) Placement(tier Tier) (UserStat, bool) {
	for pos, t := range Tiers {
		if t != tier {
			continue
		}
		if pos < len(l.Ranking) {
			return l.Ranking[pos], true
		}
		return UserStat{}, false
	}
	return UserStat{}, false
}

// Podium maps every occupied tier to its user. Missing tiers are left out.
func (l Leaderboard) Podium() map[Tier]UserStat {
	podium := make(map[Tier]UserStat, len(Tiers))
	for _, t := range Tiers {
		if u, ok := l.Placement(t); ok {
			podium[t] = u
		}
	}
	return podium
}

type RestaurantTopUser struct {
	Restaurant string   `json:"restaurant"`
	TopUser    UserStat `json:"top_user"`
}

type RestaurantCancelers struct {
	Restaurant string     `json:"restaurant"`
	Users      []UserStat `json:"users"`
}

// RestaurantUserReport is the per-restaurant view of the users page.
type RestaurantUserReport struct {
	Restaurant    string     `json:"restaurant"`
	TopUser       *UserStat  `json:"top_user"`
	HighCancelers []UserStat `json:"high_cancelers"`
}
