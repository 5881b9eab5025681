package repository

import (
	"strings"
	"testing"

	"github.com/Masterminds/squirrel"
	"github.com/MikeRez0/eatsadmin/internal/adapter/storage"
	"github.com/MikeRez0/eatsadmin/internal/adapter/storage/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func builderOnly() *Repository {
	return &Repository{db: &storage.DB{
		QueryBuilder: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}}
}

func TestSeedStatements(t *testing.T) {
	r := builderOnly()
	data := memory.Fixtures()

	statements := r.seedStatements(data)
	require.Len(t, statements, 5)

	tables := []string{"orders", "order_items", "user_stats", "restaurants", "restaurant_activity"}
	items := 0
	for _, o := range data.Orders {
		items += len(o.Items)
	}
	days := 0
	for _, a := range data.Activity {
		days += len(a.Days)
	}
	expArgs := []int{
		len(data.Orders) * len(orderColumns),
		items * 5,
		len(data.Users) * 5,
		len(data.Restaurants) * 8,
		days * 5,
	}

	for i, statement := range statements {
		sql, args, err := statement.ToSql()
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(sql, "INSERT INTO "+tables[i]+" "), sql)
		assert.Contains(t, sql, "$1")
		assert.Len(t, args, expArgs[i], tables[i])
	}
}

func TestSeedStatements_SkipsEmptyTables(t *testing.T) {
	r := builderOnly()

	assert.Empty(t, r.seedStatements(memory.Dataset{}))

	data := memory.Fixtures()
	data.Activity = nil
	data.Restaurants = nil
	statements := r.seedStatements(data)
	assert.Len(t, statements, 3)
}

func TestNewRepository_NilDB(t *testing.T) {
	_, err := NewRepository(nil)
	assert.Error(t, err)
}
