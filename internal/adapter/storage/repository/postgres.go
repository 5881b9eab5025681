package repository

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/MikeRez0/eatsadmin/internal/adapter/storage"
	"github.com/MikeRez0/eatsadmin/internal/adapter/storage/memory"
	"github.com/MikeRez0/eatsadmin/internal/core/domain"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

var orderColumns = []string{
	"id", "customer", "restaurant", "status", "canceled_by",
	"placed_at", "delivery_type", "payment_method", "delivery_address",
}

// Repository reads dashboard data from PostgreSQL. Rows come back in
// insertion order so first-seen ordering matches the memory adapter.
type Repository struct {
	db *storage.DB
}

func NewRepository(db *storage.DB) (*Repository, error) {
	if db == nil {
		return nil, errors.New("nil database")
	}
	return &Repository{db: db}, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanOrder(row rowScanner) (domain.Order, error) {
	var o domain.Order
	var status, deliveryType, paymentMethod string
	err := row.Scan(
		&o.ID,
		&o.Customer,
		&o.Restaurant,
		&status,
		&o.CanceledBy,
		&o.PlacedAt,
		&deliveryType,
		&paymentMethod,
		&o.DeliveryAddress,
	)
	o.Status = domain.OrderStatus(status)
	o.DeliveryType = domain.DeliveryType(deliveryType)
	o.PaymentMethod = domain.PaymentMethod(paymentMethod)
	return o, err
}

func (r *Repository) ListOrders(ctx context.Context) ([]domain.Order, error) {
	statement := r.db.QueryBuilder.
		Select(orderColumns...).
		From("orders").
		OrderBy("seq")

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := make([]domain.Order, 0)
	index := make(map[string]int)
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		index[o.ID] = len(list)
		list = append(list, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	items, err := r.listItems(ctx, nil)
	if err != nil {
		return nil, err
	}
	for id, orderItems := range items {
		if i, ok := index[id]; ok {
			list[i].Items = orderItems
		}
	}

	return list, nil
}

func (r *Repository) ReadOrder(ctx context.Context, orderID string) (*domain.Order, error) {
	statement := r.db.QueryBuilder.
		Select(orderColumns...).
		From("orders").
		Where(sq.Eq{"id": orderID})

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	order, err := scanOrder(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrDataNotFound
		}
		return nil, err
	}

	items, err := r.listItems(ctx, sq.Eq{"order_id": orderID})
	if err != nil {
		return nil, err
	}
	order.Items = items[orderID]

	return &order, nil
}

func (r *Repository) listItems(ctx context.Context, where sq.Sqlizer) (map[string][]domain.OrderItem, error) {
	statement := r.db.QueryBuilder.
		Select("order_id", "name", "quantity", "price").
		From("order_items").
		OrderBy("order_id", "line")
	if where != nil {
		statement = statement.Where(where)
	}

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make(map[string][]domain.OrderItem)
	for rows.Next() {
		var orderID string
		var item domain.OrderItem
		if err := rows.Scan(&orderID, &item.Name, &item.Quantity, &item.Price); err != nil {
			return nil, err
		}
		items[orderID] = append(items[orderID], item)
	}
	return items, rows.Err()
}

func (r *Repository) ListUserStats(ctx context.Context) ([]domain.UserStat, error) {
	statement := r.db.QueryBuilder.
		Select("id", "name", "restaurant", "total_orders", "canceled_orders").
		From("user_stats").
		OrderBy("seq")

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := make([]domain.UserStat, 0)
	for rows.Next() {
		u := domain.UserStat{}
		err := rows.Scan(&u.ID, &u.Name, &u.Restaurant, &u.TotalOrders, &u.CanceledOrders)
		if err != nil {
			return nil, err
		}
		list = append(list, u)
	}
	return list, rows.Err()
}

func (r *Repository) ListRestaurants(ctx context.Context) ([]domain.Restaurant, error) {
	statement := r.db.QueryBuilder.
		Select("id", "name", "cuisine", "rating", "location", "status", "orders", "revenue").
		From("restaurants").
		OrderBy("seq")

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := make([]domain.Restaurant, 0)
	for rows.Next() {
		var status string
		rest := domain.Restaurant{}
		err := rows.Scan(&rest.ID, &rest.Name, &rest.Cuisine, &rest.Rating,
			&rest.Location, &status, &rest.Orders, &rest.Revenue)
		if err != nil {
			return nil, err
		}
		rest.Status = domain.RestaurantStatus(status)
		list = append(list, rest)
	}
	return list, rows.Err()
}

func (r *Repository) ListRestaurantActivity(ctx context.Context) ([]domain.RestaurantActivity, error) {
	statement := r.db.QueryBuilder.
		Select("restaurant", "cuisine", "day", "orders").
		From("restaurant_activity").
		OrderBy("seq")

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := make([]domain.RestaurantActivity, 0)
	index := make(map[string]int)
	for rows.Next() {
		var restaurant, cuisine string
		var day domain.DailyOrders
		if err := rows.Scan(&restaurant, &cuisine, &day.Day, &day.Orders); err != nil {
			return nil, err
		}
		i, ok := index[restaurant]
		if !ok {
			i = len(list)
			index[restaurant] = i
			list = append(list, domain.RestaurantActivity{Restaurant: restaurant, Cuisine: cuisine})
		}
		list[i].Days = append(list[i].Days, day)
	}
	return list, rows.Err()
}

// Seed loads data in one transaction. It fails with
// domain.ErrConflictingData when any record already exists.
func (r *Repository) Seed(ctx context.Context, data memory.Dataset) error {
	err := pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		for _, statement := range r.seedStatements(data) {
			sql, args, err := statement.ToSql()
			if err != nil {
				return err
			}
			if _, err := tx.Exec(ctx, sql, args...); err != nil {
				return err
			}
		}
		return nil
	})

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return domain.ErrConflictingData
		}
		return fmt.Errorf("seed: %w", err)
	}
	return nil
}

func (r *Repository) seedStatements(data memory.Dataset) []sq.InsertBuilder {
	statements := make([]sq.InsertBuilder, 0, 5)

	if len(data.Orders) > 0 {
		orders := r.db.QueryBuilder.Insert("orders").Columns(orderColumns...)
		items := r.db.QueryBuilder.Insert("order_items").
			Columns("order_id", "line", "name", "quantity", "price")
		hasItems := false
		for _, o := range data.Orders {
			orders = orders.Values(o.ID, o.Customer, o.Restaurant, string(o.Status), o.CanceledBy,
				o.PlacedAt, string(o.DeliveryType), string(o.PaymentMethod), o.DeliveryAddress)
			for line, it := range o.Items {
				items = items.Values(o.ID, line, it.Name, it.Quantity, it.Price)
				hasItems = true
			}
		}
		statements = append(statements, orders)
		if hasItems {
			statements = append(statements, items)
		}
	}

	if len(data.Users) > 0 {
		users := r.db.QueryBuilder.Insert("user_stats").
			Columns("id", "name", "restaurant", "total_orders", "canceled_orders")
		for _, u := range data.Users {
			users = users.Values(u.ID, u.Name, u.Restaurant, u.TotalOrders, u.CanceledOrders)
		}
		statements = append(statements, users)
	}

	if len(data.Restaurants) > 0 {
		restaurants := r.db.QueryBuilder.Insert("restaurants").
			Columns("id", "name", "cuisine", "rating", "location", "status", "orders", "revenue")
		for _, rest := range data.Restaurants {
			restaurants = restaurants.Values(rest.ID, rest.Name, rest.Cuisine, rest.Rating,
				rest.Location, string(rest.Status), rest.Orders, rest.Revenue)
		}
		statements = append(statements, restaurants)
	}

	hasActivity := false
	activity := r.db.QueryBuilder.Insert("restaurant_activity").
		Columns("restaurant", "cuisine", "day_index", "day", "orders")
	for _, a := range data.Activity {
		for i, d := range a.Days {
			activity = activity.Values(a.Restaurant, a.Cuisine, i, d.Day, d.Orders)
			hasActivity = true
		}
	}
	if hasActivity {
		statements = append(statements, activity)
	}

	return statements
}
