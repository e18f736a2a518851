package store

import (
	"context"

	"aviation-management/recordstore/internal/constants"
	"aviation-management/recordstore/internal/db"
	"aviation-management/recordstore/internal/db/repositories"
	"aviation-management/recordstore/internal/models/entities"
)

// BookingStore owns the sales database file, which holds both the
// Reservation and SaleRecord tables. These two entity families share one
// store; the other families each get their own.
type BookingStore struct {
	base
	reservations repositories.ReservationRepository
	sales        repositories.SaleRecordRepository
}

func NewBookingStore(path string, opts ...Option) (*BookingStore, error) {
	o := newOptions(opts)
	conn, err := db.Open(path)
	if err != nil {
		return nil, err
	}
	return &BookingStore{
		base:         base{conn: conn, lenient: o.lenient, log: o.logger},
		reservations: repositories.NewReservationRepository(conn),
		sales:        repositories.NewSaleRecordRepository(conn),
	}, nil
}

func NewBookingStoreInMemory(opts ...Option) (*BookingStore, error) {
	o := newOptions(opts)
	conn, err := db.OpenInMemory()
	if err != nil {
		return nil, err
	}
	return &BookingStore{
		base:         base{conn: conn, lenient: o.lenient, log: o.logger},
		reservations: repositories.NewReservationRepository(conn),
		sales:        repositories.NewSaleRecordRepository(conn),
	}, nil
}

func (s *BookingStore) Reservations() repositories.ReservationRepository {
	return s.reservations
}

func (s *BookingStore) Sales() repositories.SaleRecordRepository {
	return s.sales
}

func (s *BookingStore) LoadAllReservations(ctx context.Context) ([]entities.Reservation, error) {
	rs, err := s.reservations.FindAll(ctx)
	if err != nil {
		if s.swallow("reservations.LoadAll", err) {
			return []entities.Reservation{}, nil
		}
		return nil, err
	}
	return rs, nil
}

func (s *BookingStore) SaveReservation(ctx context.Context, r *entities.Reservation) error {
	var err error
	if r.ID == 0 {
		_, err = s.reservations.Insert(ctx, r)
	} else {
		err = s.reservations.Update(ctx, r)
	}
	if s.swallow("reservations.Save", err) {
		return nil
	}
	return err
}

func (s *BookingStore) RemoveReservation(ctx context.Context, id int64) error {
	err := s.reservations.DeleteByID(ctx, id)
	if s.swallow("reservations.Remove", err) {
		return nil
	}
	return err
}

func (s *BookingStore) CountReservations(ctx context.Context) (int64, error) {
	n, err := s.reservations.Count(ctx)
	if err != nil {
		if s.swallow("reservations.Count", err) {
			return 0, nil
		}
		return 0, err
	}
	return n, nil
}

func (s *BookingStore) LoadAllSales(ctx context.Context) ([]entities.SaleRecord, error) {
	ss, err := s.sales.FindAll(ctx)
	if err != nil {
		if s.swallow("sales.LoadAll", err) {
			return []entities.SaleRecord{}, nil
		}
		return nil, err
	}
	return ss, nil
}

func (s *BookingStore) SaveSale(ctx context.Context, sr *entities.SaleRecord) error {
	var err error
	if sr.ID == 0 {
		_, err = s.sales.Insert(ctx, sr)
	} else {
		err = s.sales.Update(ctx, sr)
	}
	if s.swallow("sales.Save", err) {
		return nil
	}
	return err
}

func (s *BookingStore) RemoveSale(ctx context.Context, id int64) error {
	err := s.sales.DeleteByID(ctx, id)
	if s.swallow("sales.Remove", err) {
		return nil
	}
	return err
}

func (s *BookingStore) CountSales(ctx context.Context) (int64, error) {
	n, err := s.sales.Count(ctx)
	if err != nil {
		if s.swallow("sales.Count", err) {
			return 0, nil
		}
		return 0, err
	}
	return n, nil
}

// ImportSales loads a batch of sale records in a single transaction.
// Import errors are never swallowed, lenient or not: a half-reported
// batch import is worse than a failed one.
func (s *BookingStore) ImportSales(ctx context.Context, records []entities.SaleRecord) error {
	return s.sales.InsertAll(ctx, records)
}

func (s *BookingStore) Health(ctx context.Context) entities.StoreHealth {
	return s.health(ctx, constants.TableReservations, constants.TableSaleRecords)
}
