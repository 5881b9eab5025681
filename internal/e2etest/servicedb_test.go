package e2etest_test

import (
	"context"
	"flag"
	"log"
	"os"
	"testing"

	"github.com/MikeRez0/eatsadmin/internal/adapter/config"
	"github.com/MikeRez0/eatsadmin/internal/adapter/storage"
	"github.com/MikeRez0/eatsadmin/internal/adapter/storage/memory"
	"github.com/MikeRez0/eatsadmin/internal/adapter/storage/repository"
	"github.com/MikeRez0/eatsadmin/internal/core/domain"
	"github.com/MikeRez0/eatsadmin/internal/core/service"
	"github.com/MikeRez0/eatsadmin/internal/e2etest/testdb"
	"github.com/govalues/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var dbtest *testdb.TestDBInstance

// seedData holds the fixtures plus synthetic orders, so the comparison
// also covers ordering on larger inputs. It is built once because
// synthetic ids differ between runs.
var seedData = func() memory.Dataset {
	data := memory.Fixtures()
	data.Orders = append(data.Orders,
		memory.Synthesize(200, 11, []string{"Pizza Palace", "Burger Hub", "Curry House"})...)
	return data
}()

func TestMain(m *testing.M) {
	flag.Parse()
	if testing.Short() {
		os.Exit(m.Run())
	}

	ctx := context.Background()
	var err error
	dbtest, err = testdb.NewTestDBInstance(ctx)
	if err != nil {
		log.Fatal(err)
	}
	code := m.Run()
	if err := dbtest.Down(ctx); err != nil {
		log.Println(err)
	}
	os.Exit(code)
}

func getServices(t *testing.T) (db *service.Service, mem *service.Service) {
	t.Helper()
	if testing.Short() {
		t.Skip("needs docker")
	}
	ctx := context.Background()
	logger, _ := zap.NewProduction()

	pg, err := storage.NewDBStorage(ctx, &config.Database{DSN: dbtest.DSN})
	require.NoError(t, err)
	t.Cleanup(pg.Close)
	require.NoError(t, pg.RunMigrations())

	repo, err := repository.NewRepository(pg)
	require.NoError(t, err)
	err = repo.Seed(ctx, seedData)
	if err != nil {
		require.ErrorIs(t, err, domain.ErrConflictingData)
	}

	memRepo, err := memory.NewRepository(seedData)
	require.NoError(t, err)

	db, err = service.NewService(repo, 3, logger)
	require.NoError(t, err)
	mem, err = service.NewService(memRepo, 3, logger)
	require.NoError(t, err)
	return db, mem
}

func TestServiceDB_SummariesMatchMemory(t *testing.T) {
	db, mem := getServices(t)
	ctx := context.Background()

	fromDB, err := db.OrderSummaries(ctx)
	require.NoError(t, err)
	fromMem, err := mem.OrderSummaries(ctx)
	require.NoError(t, err)

	require.Len(t, fromDB, len(fromMem))
	for i := range fromMem {
		assert.Equal(t, fromMem[i].Restaurant, fromDB[i].Restaurant)
		assert.Equal(t, fromMem[i].Total, fromDB[i].Total)
		assert.Equal(t, fromMem[i].Successful, fromDB[i].Successful)
		assert.Equal(t, fromMem[i].Canceled, fromDB[i].Canceled)
		assert.Equal(t, fromMem[i].CanceledBy.Names(), fromDB[i].CanceledBy.Names())
	}
}

func TestServiceDB_Invoice(t *testing.T) {
	db, _ := getServices(t)
	ctx := context.Background()

	type invoiceTest struct {
		name     string
		orderID  string
		expError error
		expTotal string
	}

	tests := []invoiceTest{
		{name: "delivery order", orderID: "#ORD-101", expTotal: "26.0795"},
		{name: "takeaway order", orderID: "#ORD-104", expTotal: "14.1645"},
		{name: "missing order", orderID: "#ORD-999", expError: domain.ErrDataNotFound},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			invoice, err := db.Invoice(ctx, test.orderID)
			assert.Equal(t, test.expError, err)
			if test.expError != nil {
				return
			}
			assert.Zero(t, decimal.MustParse(test.expTotal).Cmp(invoice.Totals.Total),
				"total %s", invoice.Totals.Total)
		})
	}
}

func TestServiceDB_UsersAndRestaurants(t *testing.T) {
	db, mem := getServices(t)
	ctx := context.Background()

	boardDB, err := db.Leaderboard(ctx)
	require.NoError(t, err)
	boardMem, err := mem.Leaderboard(ctx)
	require.NoError(t, err)
	assert.Equal(t, boardMem.Ranking, boardDB.Ranking)

	usersDB, err := db.RestaurantUsers(ctx, 0)
	require.NoError(t, err)
	usersMem, err := mem.RestaurantUsers(ctx, 0)
	require.NoError(t, err)
	assert.Equal(t, usersMem, usersDB)

	countsDB, err := db.RestaurantStatusCounts(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.RestaurantStatusCounts{Active: 4, Pending: 1, Inactive: 1}, countsDB)

	activity, err := db.Analytics(ctx)
	require.NoError(t, err)
	require.Len(t, activity, 4)
	assert.Equal(t, 425, activity[0].TotalOrders)
}
