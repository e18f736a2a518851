package repositories

import (
	"context"
	"database/sql"
	"time"

	"aviation-management/recordstore/internal/constants"
	"aviation-management/recordstore/internal/db"
	"aviation-management/recordstore/internal/models/entities"

	"github.com/jmoiron/sqlx"
)

// ReservationRepository stores reservations without any capacity limit or
// referential check: duplicate customer+flight pairs and dangling ids are
// all accepted.
type ReservationRepository interface {
	Insert(ctx context.Context, res *entities.Reservation) (int64, error)
	Update(ctx context.Context, res *entities.Reservation) error
	Delete(ctx context.Context, res *entities.Reservation) error
	DeleteByID(ctx context.Context, id int64) error
	FindByID(ctx context.Context, id int64) (*entities.Reservation, error)
	FindAll(ctx context.Context) ([]entities.Reservation, error)
	FindByCustomer(ctx context.Context, customerID int64) ([]entities.Reservation, error)
	FindByFlight(ctx context.Context, flightID int64) ([]entities.Reservation, error)
	FindByDate(ctx context.Context, date string) ([]entities.Reservation, error)
	FindForToday(ctx context.Context) ([]entities.Reservation, error)
	Count(ctx context.Context) (int64, error)
}

type SQLReservationRepository struct {
	db *sqlx.DB

	// now is swapped out by tests of FindForToday.
	now func() time.Time
}

func NewReservationRepository(db *sqlx.DB) *SQLReservationRepository {
	return &SQLReservationRepository{db: db, now: time.Now}
}

var _ ReservationRepository = (*SQLReservationRepository)(nil)

func (r *SQLReservationRepository) Insert(ctx context.Context, res *entities.Reservation) (int64, error) {
	result, err := r.db.ExecContext(ctx, constants.InsertReservation,
		res.CustomerID,
		res.FlightID,
		res.FlightDate,
		res.ReservationName,
	)
	if err != nil {
		return 0, db.Classify(err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return 0, err
	}
	res.ID = id
	return id, nil
}

func (r *SQLReservationRepository) Update(ctx context.Context, res *entities.Reservation) error {
	_, err := r.db.ExecContext(ctx, constants.UpdateReservation,
		res.CustomerID,
		res.FlightID,
		res.FlightDate,
		res.ReservationName,
		res.ID,
	)
	return db.Classify(err)
}

func (r *SQLReservationRepository) Delete(ctx context.Context, res *entities.Reservation) error {
	return r.DeleteByID(ctx, res.ID)
}

func (r *SQLReservationRepository) DeleteByID(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx, constants.DeleteReservationByID, id)
	return db.Classify(err)
}

func (r *SQLReservationRepository) FindByID(ctx context.Context, id int64) (*entities.Reservation, error) {
	var res entities.Reservation
	if err := r.db.QueryRowxContext(ctx, constants.GetReservationByID, id).StructScan(&res); err != nil {
		return nil, db.Classify(err)
	}
	return &res, nil
}

func (r *SQLReservationRepository) FindAll(ctx context.Context) ([]entities.Reservation, error) {
	rs := make([]entities.Reservation, 0)
	if err := r.db.SelectContext(ctx, &rs, constants.GetAllReservations); err != nil {
		return nil, db.Classify(err)
	}
	return rs, nil
}

func (r *SQLReservationRepository) FindByCustomer(ctx context.Context, customerID int64) ([]entities.Reservation, error) {
	rs := make([]entities.Reservation, 0)
	if err := r.db.SelectContext(ctx, &rs, constants.GetReservationsByCustomer, customerID); err != nil {
		return nil, db.Classify(err)
	}
	return rs, nil
}

func (r *SQLReservationRepository) FindByFlight(ctx context.Context, flightID int64) ([]entities.Reservation, error) {
	rs := make([]entities.Reservation, 0)
	if err := r.db.SelectContext(ctx, &rs, constants.GetReservationsByFlight, flightID); err != nil {
		return nil, db.Classify(err)
	}
	return rs, nil
}

func (r *SQLReservationRepository) FindByDate(ctx context.Context, date string) ([]entities.Reservation, error) {
	rs := make([]entities.Reservation, 0)
	if err := r.db.SelectContext(ctx, &rs, constants.GetReservationsByDate, date); err != nil {
		return nil, db.Classify(err)
	}
	return rs, nil
}

// FindForToday matches rows whose flightDate contains today's date. The
// date column is free-form text, so this is a substring match rather than
// an equality on a parsed value.
func (r *SQLReservationRepository) FindForToday(ctx context.Context) ([]entities.Reservation, error) {
	today := r.now().Format("2006-01-02")
	rs := make([]entities.Reservation, 0)
	if err := r.db.SelectContext(ctx, &rs, constants.GetReservationsByDatePattern, "%"+today+"%"); err != nil {
		return nil, db.Classify(err)
	}
	return rs, nil
}

func (r *SQLReservationRepository) Count(ctx context.Context) (int64, error) {
	var n sql.NullInt64
	if err := r.db.GetContext(ctx, &n, constants.CountReservations); err != nil {
		return 0, db.Classify(err)
	}
	return n.Int64, nil
}
