package store

import (
	"context"

	"aviation-management/recordstore/internal/constants"
	"aviation-management/recordstore/internal/db"
	"aviation-management/recordstore/internal/db/repositories"
	"aviation-management/recordstore/internal/models/entities"
)

// CustomerStore owns the customers database file.
type CustomerStore struct {
	base
	customers repositories.CustomerRepository
}

func NewCustomerStore(path string, opts ...Option) (*CustomerStore, error) {
	o := newOptions(opts)
	conn, err := db.Open(path)
	if err != nil {
		return nil, err
	}
	return &CustomerStore{
		base:      base{conn: conn, lenient: o.lenient, log: o.logger},
		customers: repositories.NewCustomerRepository(conn),
	}, nil
}

// NewCustomerStoreInMemory opens a transient store for tests and dev use.
func NewCustomerStoreInMemory(opts ...Option) (*CustomerStore, error) {
	o := newOptions(opts)
	conn, err := db.OpenInMemory()
	if err != nil {
		return nil, err
	}
	return &CustomerStore{
		base:      base{conn: conn, lenient: o.lenient, log: o.logger},
		customers: repositories.NewCustomerRepository(conn),
	}, nil
}

func (s *CustomerStore) Customers() repositories.CustomerRepository {
	return s.customers
}

func (s *CustomerStore) LoadAll(ctx context.Context) ([]entities.Customer, error) {
	cs, err := s.customers.FindAll(ctx)
	if err != nil {
		if s.swallow("customers.LoadAll", err) {
			return []entities.Customer{}, nil
		}
		return nil, err
	}
	return cs, nil
}

// Save inserts c when it has no id yet and replaces the row otherwise.
func (s *CustomerStore) Save(ctx context.Context, c *entities.Customer) error {
	var err error
	if c.ID == 0 {
		_, err = s.customers.Insert(ctx, c)
	} else {
		err = s.customers.Update(ctx, c)
	}
	if s.swallow("customers.Save", err) {
		return nil
	}
	return err
}

func (s *CustomerStore) Remove(ctx context.Context, id int64) error {
	err := s.customers.DeleteByID(ctx, id)
	if s.swallow("customers.Remove", err) {
		return nil
	}
	return err
}

func (s *CustomerStore) Count(ctx context.Context) (int64, error) {
	n, err := s.customers.Count(ctx)
	if err != nil {
		if s.swallow("customers.Count", err) {
			return 0, nil
		}
		return 0, err
	}
	return n, nil
}

func (s *CustomerStore) Health(ctx context.Context) entities.StoreHealth {
	return s.health(ctx, constants.TableCustomers)
}
