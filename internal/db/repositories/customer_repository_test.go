package repositories

import (
	"context"
	"testing"

	"aviation-management/recordstore/internal/db"
	"aviation-management/recordstore/internal/models/entities"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupDB opens a fresh in-memory store for one test.
func setupDB(t *testing.T) *sqlx.DB {
	t.Helper()
	conn, err := db.OpenInMemory()
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

func TestCustomerRepository_EmptyStore(t *testing.T) {
	repo := NewCustomerRepository(setupDB(t))
	ctx := context.Background()

	cs, err := repo.FindAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, cs)

	n, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(0), n)
}

func TestCustomerRepository_RoundTrip(t *testing.T) {
	repo := NewCustomerRepository(setupDB(t))
	ctx := context.Background()

	c := entityCustomer("Ada", "Lovelace", "12 Analytical Ln", "1815-12-10")
	id, err := repo.Insert(ctx, c)
	require.NoError(t, err)
	assert.Equal(t, id, c.ID)

	got, err := repo.FindByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, c, got)
}

func TestCustomerRepository_UpdateChangesOnlyThatField(t *testing.T) {
	repo := NewCustomerRepository(setupDB(t))
	ctx := context.Background()

	c := entityCustomer("Ada", "Lovelace", "12 Analytical Ln", "1815-12-10")
	_, err := repo.Insert(ctx, c)
	require.NoError(t, err)

	changed := *c
	changed.Address = "1 Difference Engine Rd"
	require.NoError(t, repo.Update(ctx, &changed))

	got, err := repo.FindByID(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, "1 Difference Engine Rd", got.Address)
	assert.Equal(t, c.FirstName, got.FirstName)
	assert.Equal(t, c.LastName, got.LastName)
	assert.Equal(t, c.DateOfBirth, got.DateOfBirth)
}

func TestCustomerRepository_UpdateMissingIDIsNoOp(t *testing.T) {
	repo := NewCustomerRepository(setupDB(t))
	ctx := context.Background()

	c := entityCustomer("Ada", "Lovelace", "12 Analytical Ln", "1815-12-10")
	c.ID = 999
	assert.NoError(t, repo.Update(ctx, c))

	n, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(0), n)
}

func TestCustomerRepository_Delete(t *testing.T) {
	repo := NewCustomerRepository(setupDB(t))
	ctx := context.Background()

	c := entityCustomer("Ada", "Lovelace", "12 Analytical Ln", "1815-12-10")
	id, err := repo.Insert(ctx, c)
	require.NoError(t, err)

	require.NoError(t, repo.DeleteByID(ctx, id))

	_, err = repo.FindByID(ctx, id)
	assert.ErrorIs(t, err, db.ErrNotFound)

	n, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(0), n)

	// deleting again is not an error
	assert.NoError(t, repo.DeleteByID(ctx, id))
}

func TestCustomerRepository_FindAllOrdersByName(t *testing.T) {
	repo := NewCustomerRepository(setupDB(t))
	ctx := context.Background()

	for _, c := range []struct{ first, last string }{
		{"Charlie", "Zimmer"},
		{"Bob", "Adams"},
		{"Alice", "Adams"},
	} {
		_, err := repo.Insert(ctx, entityCustomer(c.first, c.last, "addr", "1990-01-01"))
		require.NoError(t, err)
	}

	cs, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, cs, 3)
	assert.Equal(t, "Alice", cs[0].FirstName)
	assert.Equal(t, "Bob", cs[1].FirstName)
	assert.Equal(t, "Zimmer", cs[2].LastName)
}

func TestCustomerRepository_FindByNameMatchesEitherColumn(t *testing.T) {
	repo := NewCustomerRepository(setupDB(t))
	ctx := context.Background()

	_, err := repo.Insert(ctx, entityCustomer("Smith", "Jones", "a", "1990-01-01"))
	require.NoError(t, err)
	_, err = repo.Insert(ctx, entityCustomer("Anna", "Smithson", "b", "1990-01-01"))
	require.NoError(t, err)
	_, err = repo.Insert(ctx, entityCustomer("Carl", "Meyer", "c", "1990-01-01"))
	require.NoError(t, err)

	cs, err := repo.FindByName(ctx, "Smith")
	require.NoError(t, err)
	assert.Len(t, cs, 2)
}

func TestCustomerRepository_FindByBirthMonthOrdersByDay(t *testing.T) {
	repo := NewCustomerRepository(setupDB(t))
	ctx := context.Background()

	_, err := repo.Insert(ctx, entityCustomer("Late", "March", "a", "1990-03-25"))
	require.NoError(t, err)
	_, err = repo.Insert(ctx, entityCustomer("Early", "March", "b", "1985-03-02"))
	require.NoError(t, err)
	_, err = repo.Insert(ctx, entityCustomer("Not", "March", "c", "1985-04-02"))
	require.NoError(t, err)

	cs, err := repo.FindByBirthMonth(ctx, 3)
	require.NoError(t, err)
	require.Len(t, cs, 2)
	assert.Equal(t, "Early", cs[0].FirstName)
	assert.Equal(t, "Late", cs[1].FirstName)
}

func TestCustomerRepository_DuplicateCheckIsAdvisory(t *testing.T) {
	repo := NewCustomerRepository(setupDB(t))
	ctx := context.Background()

	c1 := entityCustomer("Ada", "Lovelace", "12 Analytical Ln", "1815-12-10")
	c2 := entityCustomer("Ada", "Lovelace", "12 Analytical Ln", "1820-01-01")

	_, err := repo.Insert(ctx, c1)
	require.NoError(t, err)
	// the second insert is not blocked
	_, err = repo.Insert(ctx, c2)
	require.NoError(t, err)

	n, err := repo.CountDuplicates(ctx, "Ada", "Lovelace", "12 Analytical Ln")
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)
}

func TestCustomerRepository_InsertAll(t *testing.T) {
	repo := NewCustomerRepository(setupDB(t))
	ctx := context.Background()

	batch := []entities.Customer{
		{FirstName: "A", LastName: "One", Address: "a", DateOfBirth: "1990-01-01"},
		{FirstName: "B", LastName: "Two", Address: "b", DateOfBirth: "1991-02-02"},
		{FirstName: "C", LastName: "Three", Address: "c", DateOfBirth: "1992-03-03"},
	}
	require.NoError(t, repo.InsertAll(ctx, batch))

	for _, c := range batch {
		assert.NotZero(t, c.ID)
	}
	n, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)

	// empty batch is a no-op
	assert.NoError(t, repo.InsertAll(ctx, nil))
}

func TestCustomerRepository_InsertAllFailureLeavesStoreUnchanged(t *testing.T) {
	repo := NewCustomerRepository(setupDB(t))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := repo.InsertAll(ctx, []entities.Customer{
		{FirstName: "A", LastName: "One", Address: "a", DateOfBirth: "1990-01-01"},
	})
	require.Error(t, err)

	n, err := repo.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(0), n)
}

func entityCustomer(first, last, address, dob string) *entities.Customer {
	return &entities.Customer{FirstName: first, LastName: last, Address: address, DateOfBirth: dob}
}
