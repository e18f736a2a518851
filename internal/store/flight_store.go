package store

import (
	"context"

	"aviation-management/recordstore/internal/constants"
	"aviation-management/recordstore/internal/db"
	"aviation-management/recordstore/internal/db/repositories"
	"aviation-management/recordstore/internal/models/entities"
)

type FlightStore struct {
	base
	flights repositories.FlightRepository
}

func NewFlightStore(path string, opts ...Option) (*FlightStore, error) {
	o := newOptions(opts)
	conn, err := db.Open(path)
	if err != nil {
		return nil, err
	}
	return &FlightStore{
		base:    base{conn: conn, lenient: o.lenient, log: o.logger},
		flights: repositories.NewFlightRepository(conn),
	}, nil
}

func NewFlightStoreInMemory(opts ...Option) (*FlightStore, error) {
	o := newOptions(opts)
	conn, err := db.OpenInMemory()
	if err != nil {
		return nil, err
	}
	return &FlightStore{
		base:    base{conn: conn, lenient: o.lenient, log: o.logger},
		flights: repositories.NewFlightRepository(conn),
	}, nil
}

func (s *FlightStore) Flights() repositories.FlightRepository {
	return s.flights
}

func (s *FlightStore) LoadAll(ctx context.Context) ([]entities.Flight, error) {
	fs, err := s.flights.FindAll(ctx)
	if err != nil {
		if s.swallow("flights.LoadAll", err) {
			return []entities.Flight{}, nil
		}
		return nil, err
	}
	return fs, nil
}

func (s *FlightStore) Save(ctx context.Context, f *entities.Flight) error {
	var err error
	if f.ID == 0 {
		_, err = s.flights.Insert(ctx, f)
	} else {
		err = s.flights.Update(ctx, f)
	}
	if s.swallow("flights.Save", err) {
		return nil
	}
	return err
}

func (s *FlightStore) Remove(ctx context.Context, id int64) error {
	err := s.flights.DeleteByID(ctx, id)
	if s.swallow("flights.Remove", err) {
		return nil
	}
	return err
}

func (s *FlightStore) Count(ctx context.Context) (int64, error) {
	n, err := s.flights.Count(ctx)
	if err != nil {
		if s.swallow("flights.Count", err) {
			return 0, nil
		}
		return 0, err
	}
	return n, nil
}

func (s *FlightStore) Health(ctx context.Context) entities.StoreHealth {
	return s.health(ctx, constants.TableFlights)
}
