package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"aviation-management/recordstore/internal/constants"
	"aviation-management/recordstore/internal/db"
	"aviation-management/recordstore/internal/models/entities"

	"github.com/jmoiron/sqlx"
)

// CustomerRepository is the typed surface over the Customer table.
//
// The duplicate check is advisory: CountDuplicates tells the caller how
// many rows already carry the same name and address, but nothing stops
// the caller from inserting another one.
type CustomerRepository interface {
	Insert(ctx context.Context, c *entities.Customer) (int64, error)
	InsertAll(ctx context.Context, cs []entities.Customer) error
	Update(ctx context.Context, c *entities.Customer) error
	Delete(ctx context.Context, c *entities.Customer) error
	DeleteByID(ctx context.Context, id int64) error
	FindByID(ctx context.Context, id int64) (*entities.Customer, error)
	FindAll(ctx context.Context) ([]entities.Customer, error)
	FindByName(ctx context.Context, name string) ([]entities.Customer, error)
	FindByBirthMonth(ctx context.Context, month int) ([]entities.Customer, error)
	Count(ctx context.Context) (int64, error)
	CountDuplicates(ctx context.Context, firstName, lastName, address string) (int64, error)
}

type SQLCustomerRepository struct {
	db *sqlx.DB
}

func NewCustomerRepository(db *sqlx.DB) *SQLCustomerRepository {
	return &SQLCustomerRepository{db}
}

var _ CustomerRepository = (*SQLCustomerRepository)(nil)

// Insert stores c and fills in the assigned id.
func (r *SQLCustomerRepository) Insert(ctx context.Context, c *entities.Customer) (int64, error) {
	res, err := r.db.ExecContext(ctx, constants.InsertCustomer,
		c.FirstName,
		c.LastName,
		c.Address,
		c.DateOfBirth,
	)
	if err != nil {
		return 0, db.Classify(err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	c.ID = id
	return id, nil
}

// InsertAll stores every customer inside one transaction. Either all rows
// land or none do.
func (r *SQLCustomerRepository) InsertAll(ctx context.Context, cs []entities.Customer) error {
	if len(cs) == 0 {
		return nil
	}
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback() // safe even after Commit

	for i := range cs {
		res, err := tx.ExecContext(ctx, constants.InsertCustomer,
			cs[i].FirstName,
			cs[i].LastName,
			cs[i].Address,
			cs[i].DateOfBirth,
		)
		if err != nil {
			return fmt.Errorf("insert customer %d: %w", i, db.Classify(err))
		}
		if id, err := res.LastInsertId(); err == nil {
			cs[i].ID = id
		}
	}
	return tx.Commit()
}

// Update replaces the full row keyed on c.ID. Updating an id that does
// not exist affects zero rows and is not an error; callers that care
// must read first.
func (r *SQLCustomerRepository) Update(ctx context.Context, c *entities.Customer) error {
	_, err := r.db.ExecContext(ctx, constants.UpdateCustomer,
		c.FirstName,
		c.LastName,
		c.Address,
		c.DateOfBirth,
		c.ID,
	)
	return db.Classify(err)
}

func (r *SQLCustomerRepository) Delete(ctx context.Context, c *entities.Customer) error {
	return r.DeleteByID(ctx, c.ID)
}

func (r *SQLCustomerRepository) DeleteByID(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx, constants.DeleteCustomerByID, id)
	return db.Classify(err)
}

func (r *SQLCustomerRepository) FindByID(ctx context.Context, id int64) (*entities.Customer, error) {
	var c entities.Customer
	if err := r.db.QueryRowxContext(ctx, constants.GetCustomerByID, id).StructScan(&c); err != nil {
		return nil, db.Classify(err)
	}
	return &c, nil
}

// FindAll returns every customer ordered by last name, then first name.
func (r *SQLCustomerRepository) FindAll(ctx context.Context) ([]entities.Customer, error) {
	cs := make([]entities.Customer, 0)
	if err := r.db.SelectContext(ctx, &cs, constants.GetAllCustomers); err != nil {
		return nil, db.Classify(err)
	}
	return cs, nil
}

// FindByName matches name as a substring of either the first or the last
// name. This is the one OR-combined filter in the store.
func (r *SQLCustomerRepository) FindByName(ctx context.Context, name string) ([]entities.Customer, error) {
	pattern := "%" + name + "%"
	cs := make([]entities.Customer, 0)
	if err := r.db.SelectContext(ctx, &cs, constants.GetCustomersByName, pattern, pattern); err != nil {
		return nil, db.Classify(err)
	}
	return cs, nil
}

// FindByBirthMonth returns customers born in the given month (1-12),
// ordered by day of month ascending.
func (r *SQLCustomerRepository) FindByBirthMonth(ctx context.Context, month int) ([]entities.Customer, error) {
	cs := make([]entities.Customer, 0)
	if err := r.db.SelectContext(ctx, &cs, constants.GetCustomersByBirthMonth, fmt.Sprintf("%02d", month)); err != nil {
		return nil, db.Classify(err)
	}
	return cs, nil
}

func (r *SQLCustomerRepository) Count(ctx context.Context) (int64, error) {
	var n sql.NullInt64
	if err := r.db.GetContext(ctx, &n, constants.CountCustomers); err != nil {
		return 0, db.Classify(err)
	}
	return n.Int64, nil
}

func (r *SQLCustomerRepository) CountDuplicates(ctx context.Context, firstName, lastName, address string) (int64, error) {
	var n sql.NullInt64
	if err := r.db.GetContext(ctx, &n, constants.CountDuplicateCustomers, firstName, lastName, address); err != nil {
		return 0, db.Classify(err)
	}
	return n.Int64, nil
}
