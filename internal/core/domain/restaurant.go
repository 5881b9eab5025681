package domain

import (
	"fmt"

	"github.com/govalues/decimal"
)

type RestaurantStatus string

const (
	RestaurantStatusActive   RestaurantStatus = "active"
	RestaurantStatusPending  RestaurantStatus = "pending"
	RestaurantStatusInactive RestaurantStatus = "inactive"
)

func ParseRestaurantStatus(s string) (RestaurantStatus, error) {
	switch st := RestaurantStatus(s); st {
	case RestaurantStatusActive, RestaurantStatusPending, RestaurantStatusInactive:
		return st, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownRestaurantStatus, s)
}

type Restaurant struct {
	ID       string           `json:"id"`
	Name     string           `json:"name"`
	Cuisine  string           `json:"cuisine"`
	Rating   float64          `json:"rating"`
	Location string           `json:"location"`
	Status   RestaurantStatus `json:"status"`
	Orders   int              `json:"orders"`
	Revenue  decimal.Decimal  `json:"revenue"`
}

// FilterAll disables the status or cuisine criterion of a filter.
const FilterAll = "all"

// RestaurantFilter selects restaurants. Empty Status or Cuisine behave
// like FilterAll.
type RestaurantFilter struct {
	Search    string
	Status    string
	Cuisine   string
	MinRating float64
}

type RestaurantStatusCounts struct {
	Active   int `json:"active"`
	Pending  int `json:"pending"`
	Inactive int `json:"inactive"`
}
