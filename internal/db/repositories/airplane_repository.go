package repositories

import (
	"context"
	"database/sql"

	"aviation-management/recordstore/internal/constants"
	"aviation-management/recordstore/internal/db"
	"aviation-management/recordstore/internal/models/entities"

	"github.com/jmoiron/sqlx"
)

type AirplaneRepository interface {
	Insert(ctx context.Context, a *entities.Airplane) (int64, error)
	Update(ctx context.Context, a *entities.Airplane) error
	Delete(ctx context.Context, a *entities.Airplane) error
	DeleteByID(ctx context.Context, id int64) error
	FindByID(ctx context.Context, id int64) (*entities.Airplane, error)
	FindAll(ctx context.Context) ([]entities.Airplane, error)
	FindByType(ctx context.Context, pattern string) ([]entities.Airplane, error)
	FindByMinCapacity(ctx context.Context, minCapacity int) ([]entities.Airplane, error)
	FindByMinRange(ctx context.Context, minRange int) ([]entities.Airplane, error)
	Fastest(ctx context.Context) (*entities.Airplane, error)
	Count(ctx context.Context) (int64, error)
}

type SQLAirplaneRepository struct {
	db *sqlx.DB
}

func NewAirplaneRepository(db *sqlx.DB) *SQLAirplaneRepository {
	return &SQLAirplaneRepository{db}
}

var _ AirplaneRepository = (*SQLAirplaneRepository)(nil)

func (r *SQLAirplaneRepository) Insert(ctx context.Context, a *entities.Airplane) (int64, error) {
	res, err := r.db.ExecContext(ctx, constants.InsertAirplane,
		a.Type,
		a.PassengerCapacity,
		a.MaxSpeed,
		a.Range,
	)
	if err != nil {
		return 0, db.Classify(err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	a.ID = id
	return id, nil
}

func (r *SQLAirplaneRepository) Update(ctx context.Context, a *entities.Airplane) error {
	_, err := r.db.ExecContext(ctx, constants.UpdateAirplane,
		a.Type,
		a.PassengerCapacity,
		a.MaxSpeed,
		a.Range,
		a.ID,
	)
	return db.Classify(err)
}

func (r *SQLAirplaneRepository) Delete(ctx context.Context, a *entities.Airplane) error {
	return r.DeleteByID(ctx, a.ID)
}

func (r *SQLAirplaneRepository) DeleteByID(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx, constants.DeleteAirplaneByID, id)
	return db.Classify(err)
}

func (r *SQLAirplaneRepository) FindByID(ctx context.Context, id int64) (*entities.Airplane, error) {
	var a entities.Airplane
	if err := r.db.QueryRowxContext(ctx, constants.GetAirplaneByID, id).StructScan(&a); err != nil {
		return nil, db.Classify(err)
	}
	return &a, nil
}

// FindAll returns every airplane, newest first.
func (r *SQLAirplaneRepository) FindAll(ctx context.Context) ([]entities.Airplane, error) {
	as := make([]entities.Airplane, 0)
	if err := r.db.SelectContext(ctx, &as, constants.GetAllAirplanes); err != nil {
		return nil, db.Classify(err)
	}
	return as, nil
}

func (r *SQLAirplaneRepository) FindByType(ctx context.Context, pattern string) ([]entities.Airplane, error) {
	as := make([]entities.Airplane, 0)
	if err := r.db.SelectContext(ctx, &as, constants.GetAirplanesByType, "%"+pattern+"%"); err != nil {
		return nil, db.Classify(err)
	}
	return as, nil
}

func (r *SQLAirplaneRepository) FindByMinCapacity(ctx context.Context, minCapacity int) ([]entities.Airplane, error) {
	as := make([]entities.Airplane, 0)
	if err := r.db.SelectContext(ctx, &as, constants.GetAirplanesByMinCapacity, minCapacity); err != nil {
		return nil, db.Classify(err)
	}
	return as, nil
}

func (r *SQLAirplaneRepository) FindByMinRange(ctx context.Context, minRange int) ([]entities.Airplane, error) {
	as := make([]entities.Airplane, 0)
	if err := r.db.SelectContext(ctx, &as, constants.GetAirplanesByMinRange, minRange); err != nil {
		return nil, db.Classify(err)
	}
	return as, nil
}

// Fastest returns the airplane with the highest max speed, or ErrNotFound
// on an empty table.
func (r *SQLAirplaneRepository) Fastest(ctx context.Context) (*entities.Airplane, error) {
	var a entities.Airplane
	if err := r.db.QueryRowxContext(ctx, constants.GetFastestAirplane).StructScan(&a); err != nil {
		return nil, db.Classify(err)
	}
	return &a, nil
}

func (r *SQLAirplaneRepository) Count(ctx context.Context) (int64, error) {
	var n sql.NullInt64
	if err := r.db.GetContext(ctx, &n, constants.CountAirplanes); err != nil {
		return 0, db.Classify(err)
	}
	return n.Int64, nil
}
