package store

import (
	"context"

	"aviation-management/recordstore/internal/constants"
	"aviation-management/recordstore/internal/db"
	"aviation-management/recordstore/internal/db/repositories"
	"aviation-management/recordstore/internal/models/entities"
)

type AirplaneStore struct {
	base
	airplanes repositories.AirplaneRepository
}

func NewAirplaneStore(path string, opts ...Option) (*AirplaneStore, error) {
	o := newOptions(opts)
	conn, err := db.Open(path)
	if err != nil {
		return nil, err
	}
	return &AirplaneStore{
		base:      base{conn: conn, lenient: o.lenient, log: o.logger},
		airplanes: repositories.NewAirplaneRepository(conn),
	}, nil
}

func NewAirplaneStoreInMemory(opts ...Option) (*AirplaneStore, error) {
	o := newOptions(opts)
	conn, err := db.OpenInMemory()
	if err != nil {
		return nil, err
	}
	return &AirplaneStore{
		base:      base{conn: conn, lenient: o.lenient, log: o.logger},
		airplanes: repositories.NewAirplaneRepository(conn),
	}, nil
}

func (s *AirplaneStore) Airplanes() repositories.AirplaneRepository {
	return s.airplanes
}

func (s *AirplaneStore) LoadAll(ctx context.Context) ([]entities.Airplane, error) {
	as, err := s.airplanes.FindAll(ctx)
	if err != nil {
		if s.swallow("airplanes.LoadAll", err) {
			return []entities.Airplane{}, nil
		}
		return nil, err
	}
	return as, nil
}

func (s *AirplaneStore) Save(ctx context.Context, a *entities.Airplane) error {
	var err error
	if a.ID == 0 {
		_, err = s.airplanes.Insert(ctx, a)
	} else {
		err = s.airplanes.Update(ctx, a)
	}
	if s.swallow("airplanes.Save", err) {
		return nil
	}
	return err
}

func (s *AirplaneStore) Remove(ctx context.Context, id int64) error {
	err := s.airplanes.DeleteByID(ctx, id)
	if s.swallow("airplanes.Remove", err) {
		return nil
	}
	return err
}

func (s *AirplaneStore) Count(ctx context.Context) (int64, error) {
	n, err := s.airplanes.Count(ctx)
	if err != nil {
		if s.swallow("airplanes.Count", err) {
			return 0, nil
		}
		return 0, err
	}
	return n, nil
}

func (s *AirplaneStore) Health(ctx context.Context) entities.StoreHealth {
	return s.health(ctx, constants.TableAirplanes)
}
