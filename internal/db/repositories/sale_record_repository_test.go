package repositories

import (
	"context"
	"testing"

	"aviation-management/recordstore/internal/db"
	"aviation-management/recordstore/internal/models/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaleRecordRepository_RoundTrip(t *testing.T) {
	repo := NewSaleRecordRepository(setupDB(t))
	ctx := context.Background()

	s := &entities.SaleRecord{CustomerID: 4, CarID: 9, DealershipID: 2, PurchaseDate: "2024-01-15"}
	id, err := repo.Insert(ctx, s)
	require.NoError(t, err)
	assert.NotZero(t, id)

	got, err := repo.FindByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, s, got)
}

func TestSaleRecordRepository_InsertIgnoresPresetID(t *testing.T) {
	repo := NewSaleRecordRepository(setupDB(t))
	ctx := context.Background()

	s := &entities.SaleRecord{ID: 5000, CustomerID: 4, CarID: 9, DealershipID: 2, PurchaseDate: "2024-01-15"}
	id, err := repo.Insert(ctx, s)
	require.NoError(t, err)
	assert.Equal(t, int64(1), id)
	assert.Equal(t, int64(1), s.ID)
}

func TestSaleRecordRepository_DateRangeScenario(t *testing.T) {
	repo := NewSaleRecordRepository(setupDB(t))
	ctx := context.Background()

	for _, date := range []string{"2024-01-15", "2024-01-16", "2024-01-17"} {
		_, err := repo.Insert(ctx, &entities.SaleRecord{CustomerID: 1, CarID: 1, DealershipID: 1, PurchaseDate: date})
		require.NoError(t, err)
	}

	ss, err := repo.FindByDateRange(ctx, "2024-01-15", "2024-01-16")
	require.NoError(t, err)
	require.Len(t, ss, 2)
	assert.Equal(t, "2024-01-16", ss[0].PurchaseDate)
	assert.Equal(t, "2024-01-15", ss[1].PurchaseDate)
}

func TestSaleRecordRepository_Filters(t *testing.T) {
	repo := NewSaleRecordRepository(setupDB(t))
	ctx := context.Background()

	sales := []entities.SaleRecord{
		{CustomerID: 1, CarID: 1, DealershipID: 5, PurchaseDate: "2024-01-01"},
		{CustomerID: 1, CarID: 2, DealershipID: 6, PurchaseDate: "2024-02-01"},
		{CustomerID: 2, CarID: 3, DealershipID: 5, PurchaseDate: "2024-03-01"},
	}
	for i := range sales {
		_, err := repo.Insert(ctx, &sales[i])
		require.NoError(t, err)
	}

	byCustomer, err := repo.FindByCustomer(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, byCustomer, 2)

	byDealer, err := repo.FindByDealership(ctx, 5)
	require.NoError(t, err)
	assert.Len(t, byDealer, 2)

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, sales[2].ID, all[0].ID)
}

func TestSaleRecordRepository_InsertAll(t *testing.T) {
	repo := NewSaleRecordRepository(setupDB(t))
	ctx := context.Background()

	batch := []entities.SaleRecord{
		{CustomerID: 1, CarID: 1, DealershipID: 1, PurchaseDate: "2024-01-01"},
		{CustomerID: 2, CarID: 2, DealershipID: 2, PurchaseDate: "2024-01-02"},
	}
	require.NoError(t, repo.InsertAll(ctx, batch))

	for _, s := range batch {
		assert.NotZero(t, s.ID)
	}
	n, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)
}

func TestSaleRecordRepository_InsertAllFailureLeavesStoreUnchanged(t *testing.T) {
	repo := NewSaleRecordRepository(setupDB(t))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := repo.InsertAll(ctx, []entities.SaleRecord{
		{CustomerID: 1, CarID: 1, DealershipID: 1, PurchaseDate: "2024-01-01"},
	})
	require.Error(t, err)

	n, err := repo.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(0), n)
}

func TestSaleRecordRepository_DeleteSemantics(t *testing.T) {
	repo := NewSaleRecordRepository(setupDB(t))
	ctx := context.Background()

	s := &entities.SaleRecord{CustomerID: 1, CarID: 1, DealershipID: 1, PurchaseDate: "2024-01-01"}
	id, err := repo.Insert(ctx, s)
	require.NoError(t, err)

	require.NoError(t, repo.DeleteByID(ctx, id))
	_, err = repo.FindByID(ctx, id)
	assert.ErrorIs(t, err, db.ErrNotFound)

	// missing id: silent no-op
	require.NoError(t, repo.DeleteByID(ctx, id))
	n, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(0), n)
}
