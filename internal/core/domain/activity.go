package domain

type DailyOrders struct {
	Day    string `json:"day"`
	Orders int    `json:"orders"`
}

// RestaurantActivity is a week of daily order counts for one restaurant.
type RestaurantActivity struct {
	Restaurant string        `json:"restaurant"`
	Cuisine    string        `json:"cuisine"`
	Days       []DailyOrders `json:"days"`
}

type ActivitySummary struct {
	Restaurant   string        `json:"restaurant"`
	Cuisine      string        `json:"cuisine"`
	Days         []DailyOrders `json:"days"`
	TotalOrders  int           `json:"total_orders"`
	PeakDay      string        `json:"peak_day,omitempty"`
	PeakOrders   int           `json:"peak_orders"`
	DailyAverage float64       `json:"daily_average"`
}
