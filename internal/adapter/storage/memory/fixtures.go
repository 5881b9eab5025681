package memory

import (
	"time"

	"github.com/MikeRez0/eatsadmin/internal/core/domain"
	"github.com/govalues/decimal"
)

// Dataset is a complete snapshot of dashboard data.
type Dataset struct {
	Orders      []domain.Order
	Users       []domain.UserStat
	Restaurants []domain.Restaurant
	Activity    []domain.RestaurantActivity
}

func item(name string, qty int, price string) domain.OrderItem {
	return domain.OrderItem{Name: name, Quantity: qty, Price: decimal.MustParse(price)}
}

func at(day, hour, minute int) time.Time {
	return time.Date(2024, time.March, day, hour, minute, 0, 0, time.UTC)
}

func week(counts ...int) []domain.DailyOrders {
	days := []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}
	out := make([]domain.DailyOrders, 0, len(counts))
	for i, c := range counts {
		out = append(out, domain.DailyOrders{Day: days[i%len(days)], Orders: c})
	}
	return out
}

// Fixtures returns the dashboard's sample data. Each call builds a new
// copy.
func Fixtures() Dataset {
	return Dataset{
		Orders: []domain.Order{
			{
				ID: "#ORD-101", Customer: "John Doe", Restaurant: "Pizza Palace",
				Items:    []domain.OrderItem{item("Margherita Pizza", 1, "12.99"), item("Garlic Bread", 2, "4.50")},
				Status:   domain.OrderStatusDelivered,
				PlacedAt: at(4, 19, 5), DeliveryType: domain.DeliveryTypeDelivery,
				PaymentMethod: domain.PaymentMethodOnline, DeliveryAddress: "12 High Street, Downtown",
			},
			{
				ID: "#ORD-102", Customer: "Mary Lee", Restaurant: "Pizza Palace",
				Items:  []domain.OrderItem{item("Pepperoni Pizza", 1, "14.49")},
				Status: domain.OrderStatusCanceled, CanceledBy: "Sarah Wilson",
				PlacedAt: at(4, 20, 40), DeliveryType: domain.DeliveryTypeTakeaway,
				PaymentMethod: domain.PaymentMethodCOD,
			},
			{
				ID: "#ORD-103", Customer: "Mike Chen", Restaurant: "Pizza Palace",
				Items:    []domain.OrderItem{item("Four Cheese Pizza", 2, "13.99"), item("Cola", 2, "1.99")},
				Status:   domain.OrderStatusDelivered,
				PlacedAt: at(5, 12, 15), DeliveryType: domain.DeliveryTypeDelivery,
				PaymentMethod: domain.PaymentMethodCOD, DeliveryAddress: "8 Park Lane, Midtown",
			},
			{
				ID: "#ORD-201", Customer: "Jane Smith", Restaurant: "Burger Hub",
				Items:    []domain.OrderItem{item("Classic Burger", 1, "9.99"), item("Fries", 1, "3.49")},
				Status:   domain.OrderStatusDelivered,
				PlacedAt: at(5, 13, 0), DeliveryType: domain.DeliveryTypeDelivery,
				PaymentMethod: domain.PaymentMethodOnline, DeliveryAddress: "221 Baker Street, Mall Area",
			},
			{
				ID: "#ORD-202", Customer: "Alex Carter", Restaurant: "Burger Hub",
				Items:  []domain.OrderItem{item("Double Burger", 1, "12.49")},
				Status: domain.OrderStatusCanceled, CanceledBy: "Admin Mark",
				PlacedAt: at(6, 18, 30), DeliveryType: domain.DeliveryTypeDelivery,
				PaymentMethod: domain.PaymentMethodOnline, DeliveryAddress: "4 Mill Road, Mall Area",
			},
			{
				ID: "#ORD-203", Customer: "Priya Gupta", Restaurant: "Burger Hub",
				Items:  []domain.OrderItem{item("Veggie Burger", 2, "8.99"), item("Milkshake", 1, "4.25")},
				Status: domain.OrderStatusCanceled, CanceledBy: "Admin Mark",
				PlacedAt: at(6, 19, 10), DeliveryType: domain.DeliveryTypeTakeaway,
				PaymentMethod: domain.PaymentMethodCOD,
			},
			{
				ID: "#ORD-301", Customer: "Liam Wong", Restaurant: "Sushi Master",
				Items:    []domain.OrderItem{item("Salmon Nigiri", 4, "2.75"), item("Miso Soup", 1, "3.00")},
				Status:   domain.OrderStatusDelivered,
				PlacedAt: at(7, 12, 45), DeliveryType: domain.DeliveryTypeDelivery,
				PaymentMethod: domain.PaymentMethodOnline, DeliveryAddress: "17 River Walk, Business District",
			},
			{
				ID: "#ORD-302", Customer: "Emma Brown", Restaurant: "Sushi Master",
				Items:    []domain.OrderItem{item("Dragon Roll", 1, "15.50")},
				Status:   domain.OrderStatusDelivered,
				PlacedAt: at(7, 21, 5), DeliveryType: domain.DeliveryTypeTakeaway,
				PaymentMethod: domain.PaymentMethodOnline,
			},
			{
				ID: "#ORD-401", Customer: "Carlos Diaz", Restaurant: "Taco Fiesta",
				Items:  []domain.OrderItem{item("Beef Tacos", 3, "3.25")},
				Status: domain.OrderStatusCanceled, CanceledBy: "Maria Garcia",
				PlacedAt: at(8, 17, 55), DeliveryType: domain.DeliveryTypeDelivery,
				PaymentMethod: domain.PaymentMethodCOD, DeliveryAddress: "3 College Row, University Area",
			},
			{
				ID: "#ORD-402", Customer: "Olivia Park", Restaurant: "Taco Fiesta",
				Items:    []domain.OrderItem{item("Chicken Burrito", 1, "8.75"), item("Nachos", 1, "5.50")},
				Status:   domain.OrderStatusDelivered,
				PlacedAt: at(8, 19, 20), DeliveryType: domain.DeliveryTypeDelivery,
				PaymentMethod: domain.PaymentMethodOnline, DeliveryAddress: "9 Campus Way, University Area",
			},
			{
				ID: "#ORD-104", Customer: "John Doe", Restaurant: "Pizza Palace",
				Items:    []domain.OrderItem{item("Hawaiian Pizza", 1, "13.49")},
				Status:   domain.OrderStatusDelivered,
				PlacedAt: at(9, 18, 0), DeliveryType: domain.DeliveryTypeTakeaway,
				PaymentMethod: domain.PaymentMethodOnline,
			},
		},
		Users: []domain.UserStat{
			{ID: "u1", Name: "John Doe", Restaurant: "Pizza Palace", TotalOrders: 42, CanceledOrders: 1},
			{ID: "u2", Name: "Mary Lee", Restaurant: "Pizza Palace", TotalOrders: 18, CanceledOrders: 4},
			{ID: "u3", Name: "Mike Chen", Restaurant: "Pizza Palace", TotalOrders: 27, CanceledOrders: 0},

			{ID: "u4", Name: "Jane Smith", Restaurant: "Burger Hub", TotalOrders: 36, CanceledOrders: 2},
			{ID: "u5", Name: "Alex Carter", Restaurant: "Burger Hub", TotalOrders: 21, CanceledOrders: 3},
			{ID: "u6", Name: "Priya Gupta", Restaurant: "Burger Hub", TotalOrders: 12, CanceledOrders: 5},

			{ID: "u7", Name: "Liam Wong", Restaurant: "Sushi Master", TotalOrders: 29, CanceledOrders: 1},
			{ID: "u8", Name: "Emma Brown", Restaurant: "Sushi Master", TotalOrders: 31, CanceledOrders: 0},

			{ID: "u9", Name: "Carlos Diaz", Restaurant: "Taco Fiesta", TotalOrders: 16, CanceledOrders: 3},
			{ID: "u10", Name: "Olivia Park", Restaurant: "Taco Fiesta", TotalOrders: 22, CanceledOrders: 2},
		},
		Restaurants: []domain.Restaurant{
			{ID: "1", Name: "Pizza Palace", Cuisine: "Italian", Rating: 4.5, Location: "Downtown",
				Status: domain.RestaurantStatusActive, Orders: 45, Revenue: decimal.MustParse("2340")},
			{ID: "2", Name: "Burger Hub", Cuisine: "American", Rating: 4.2, Location: "Mall Area",
				Status: domain.RestaurantStatusActive, Orders: 32, Revenue: decimal.MustParse("1890")},
			{ID: "3", Name: "Sushi Express", Cuisine: "Japanese", Rating: 4.8, Location: "Business District",
				Status: domain.RestaurantStatusPending, Orders: 0, Revenue: decimal.Zero},
			{ID: "4", Name: "Taco Fiesta", Cuisine: "Mexican", Rating: 4.3, Location: "University Area",
				Status: domain.RestaurantStatusActive, Orders: 28, Revenue: decimal.MustParse("1560")},
			{ID: "5", Name: "Curry House", Cuisine: "Indian", Rating: 4.6, Location: "Tech Park",
				Status: domain.RestaurantStatusInactive, Orders: 0, Revenue: decimal.Zero},
			{ID: "6", Name: "Mediterranean Delight", Cuisine: "Mediterranean", Rating: 4.4, Location: "Old Town",
				Status: domain.RestaurantStatusActive, Orders: 19, Revenue: decimal.MustParse("1250")},
		},
		Activity: []domain.RestaurantActivity{
			{Restaurant: "Pizza Palace", Cuisine: "Italian", Days: week(45, 52, 38, 61, 73, 89, 67)},
			{Restaurant: "Burger Barn", Cuisine: "American", Days: week(32, 41, 29, 48, 65, 78, 54)},
			{Restaurant: "Sushi Zen", Cuisine: "Japanese", Days: week(28, 34, 31, 42, 58, 71, 49)},
			{Restaurant: "Taco Fiesta", Cuisine: "Mexican", Days: week(38, 44, 35, 51, 69, 82, 61)},
		},
	}
}
