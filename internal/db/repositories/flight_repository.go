package repositories

import (
	"context"
	"database/sql"

	"aviation-management/recordstore/internal/constants"
	"aviation-management/recordstore/internal/db"
	"aviation-management/recordstore/internal/models/entities"

	"github.com/jmoiron/sqlx"
)

type FlightRepository interface {
	Insert(ctx context.Context, f *entities.Flight) (int64, error)
	Update(ctx context.Context, f *entities.Flight) error
	Delete(ctx context.Context, f *entities.Flight) error
	DeleteByID(ctx context.Context, id int64) error
	FindByID(ctx context.Context, id int64) (*entities.Flight, error)
	FindAll(ctx context.Context) ([]entities.Flight, error)
	FindByDeparture(ctx context.Context, city string) ([]entities.Flight, error)
	FindByDestination(ctx context.Context, city string) ([]entities.Flight, error)
	FindByRoute(ctx context.Context, departure, destination string) ([]entities.Flight, error)
	Count(ctx context.Context) (int64, error)
}

type SQLFlightRepository struct {
	db *sqlx.DB
}

func NewFlightRepository(db *sqlx.DB) *SQLFlightRepository {
	return &SQLFlightRepository{db}
}

var _ FlightRepository = (*SQLFlightRepository)(nil)

func (r *SQLFlightRepository) Insert(ctx context.Context, f *entities.Flight) (int64, error) {
	res, err := r.db.ExecContext(ctx, constants.InsertFlight,
		f.Departure,
		f.Destination,
		f.DepartureTime,
		f.ArrivalTime,
	)
	if err != nil {
		return 0, db.Classify(err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	f.ID = id
	return id, nil
}

func (r *SQLFlightRepository) Update(ctx context.Context, f *entities.Flight) error {
	_, err := r.db.ExecContext(ctx, constants.UpdateFlight,
		f.Departure,
		f.Destination,
		f.DepartureTime,
		f.ArrivalTime,
		f.ID,
	)
	return db.Classify(err)
}

func (r *SQLFlightRepository) Delete(ctx context.Context, f *entities.Flight) error {
	return r.DeleteByID(ctx, f.ID)
}

func (r *SQLFlightRepository) DeleteByID(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx, constants.DeleteFlightByID, id)
	return db.Classify(err)
}

func (r *SQLFlightRepository) FindByID(ctx context.Context, id int64) (*entities.Flight, error) {
	var f entities.Flight
	if err := r.db.QueryRowxContext(ctx, constants.GetFlightByID, id).StructScan(&f); err != nil {
		return nil, db.Classify(err)
	}
	return &f, nil
}

func (r *SQLFlightRepository) FindAll(ctx context.Context) ([]entities.Flight, error) {
	fs := make([]entities.Flight, 0)
	if err := r.db.SelectContext(ctx, &fs, constants.GetAllFlights); err != nil {
		return nil, db.Classify(err)
	}
	return fs, nil
}

func (r *SQLFlightRepository) FindByDeparture(ctx context.Context, city string) ([]entities.Flight, error) {
	fs := make([]entities.Flight, 0)
	if err := r.db.SelectContext(ctx, &fs, constants.GetFlightsByDeparture, city); err != nil {
		return nil, db.Classify(err)
	}
	return fs, nil
}

func (r *SQLFlightRepository) FindByDestination(ctx context.Context, city string) ([]entities.Flight, error) {
	fs := make([]entities.Flight, 0)
	if err := r.db.SelectContext(ctx, &fs, constants.GetFlightsByDestination, city); err != nil {
		return nil, db.Classify(err)
	}
	return fs, nil
}

func (r *SQLFlightRepository) FindByRoute(ctx context.Context, departure, destination string) ([]entities.Flight, error) {
	fs := make([]entities.Flight, 0)
	if err := r.db.SelectContext(ctx, &fs, constants.GetFlightsByRoute, departure, destination); err != nil {
		return nil, db.Classify(err)
	}
	return fs, nil
}

func (r *SQLFlightRepository) Count(ctx context.Context) (int64, error) {
	var n sql.NullInt64
	if err := r.db.GetContext(ctx, &n, constants.CountFlights); err != nil {
		return 0, db.Classify(err)
	}
	return n.Int64, nil
}
