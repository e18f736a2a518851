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

// SaleRecordRepository assigns ids itself; whatever the caller put in the
// ID field before Insert is discarded.
type SaleRecordRepository interface {
	Insert(ctx context.Context, s *entities.SaleRecord) (int64, error)
	InsertAll(ctx context.Context, ss []entities.SaleRecord) error
	Update(ctx context.Context, s *entities.SaleRecord) error
	Delete(ctx context.Context, s *entities.SaleRecord) error
	DeleteByID(ctx context.Context, id int64) error
	FindByID(ctx context.Context, id int64) (*entities.SaleRecord, error)
	FindAll(ctx context.Context) ([]entities.SaleRecord, error)
	FindByCustomer(ctx context.Context, customerID int64) ([]entities.SaleRecord, error)
	FindByDealership(ctx context.Context, dealershipID int64) ([]entities.SaleRecord, error)
	FindByDateRange(ctx context.Context, from, to string) ([]entities.SaleRecord, error)
	Count(ctx context.Context) (int64, error)
}

type SQLSaleRecordRepository struct {
	db *sqlx.DB
}

func NewSaleRecordRepository(db *sqlx.DB) *SQLSaleRecordRepository {
	return &SQLSaleRecordRepository{db}
}

var _ SaleRecordRepository = (*SQLSaleRecordRepository)(nil)

func (r *SQLSaleRecordRepository) Insert(ctx context.Context, s *entities.SaleRecord) (int64, error) {
	res, err := r.db.ExecContext(ctx, constants.InsertSaleRecord,
		s.CustomerID,
		s.CarID,
		s.DealershipID,
		s.PurchaseDate,
	)
	if err != nil {
		return 0, db.Classify(err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	s.ID = id
	return id, nil
}

// InsertAll is the batch-import path: all rows in one transaction,
// rollback on the first failure.
func (r *SQLSaleRecordRepository) InsertAll(ctx context.Context, ss []entities.SaleRecord) error {
	if len(ss) == 0 {
		return nil
	}
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback() // safe even after Commit

	for i := range ss {
		res, err := tx.ExecContext(ctx, constants.InsertSaleRecord,
			ss[i].CustomerID,
			ss[i].CarID,
			ss[i].DealershipID,
			ss[i].PurchaseDate,
		)
		if err != nil {
			return fmt.Errorf("insert sale record %d: %w", i, db.Classify(err))
		}
		if id, err := res.LastInsertId(); err == nil {
			ss[i].ID = id
		}
	}
	return tx.Commit()
}

func (r *SQLSaleRecordRepository) Update(ctx context.Context, s *entities.SaleRecord) error {
	_, err := r.db.ExecContext(ctx, constants.UpdateSaleRecord,
		s.CustomerID,
		s.CarID,
		s.DealershipID,
		s.PurchaseDate,
		s.ID,
	)
	return db.Classify(err)
}

func (r *SQLSaleRecordRepository) Delete(ctx context.Context, s *entities.SaleRecord) error {
	return r.DeleteByID(ctx, s.ID)
}

func (r *SQLSaleRecordRepository) DeleteByID(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx, constants.DeleteSaleRecordByID, id)
	return db.Classify(err)
}

func (r *SQLSaleRecordRepository) FindByID(ctx context.Context, id int64) (*entities.SaleRecord, error) {
	var s entities.SaleRecord
	if err := r.db.QueryRowxContext(ctx, constants.GetSaleRecordByID, id).StructScan(&s); err != nil {
		return nil, db.Classify(err)
	}
	return &s, nil
}

func (r *SQLSaleRecordRepository) FindAll(ctx context.Context) ([]entities.SaleRecord, error) {
	ss := make([]entities.SaleRecord, 0)
	if err := r.db.SelectContext(ctx, &ss, constants.GetAllSaleRecords); err != nil {
		return nil, db.Classify(err)
	}
	return ss, nil
}

func (r *SQLSaleRecordRepository) FindByCustomer(ctx context.Context, customerID int64) ([]entities.SaleRecord, error) {
	ss := make([]entities.SaleRecord, 0)
	if err := r.db.SelectContext(ctx, &ss, constants.GetSalesByCustomer, customerID); err != nil {
		return nil, db.Classify(err)
	}
	return ss, nil
}

func (r *SQLSaleRecordRepository) FindByDealership(ctx context.Context, dealershipID int64) ([]entities.SaleRecord, error) {
	ss := make([]entities.SaleRecord, 0)
	if err := r.db.SelectContext(ctx, &ss, constants.GetSalesByDealership, dealershipID); err != nil {
		return nil, db.Classify(err)
	}
	return ss, nil
}

// FindByDateRange returns sales with from <= purchaseDate <= to, newest
// purchase first. Bounds are inclusive on both ends.
func (r *SQLSaleRecordRepository) FindByDateRange(ctx context.Context, from, to string) ([]entities.SaleRecord, error) {
	ss := make([]entities.SaleRecord, 0)
	if err := r.db.SelectContext(ctx, &ss, constants.GetSalesByDateRange, from, to); err != nil {
		return nil, db.Classify(err)
	}
	return ss, nil
}

func (r *SQLSaleRecordRepository) Count(ctx context.Context) (int64, error) {
	var n sql.NullInt64
	if err := r.db.GetContext(ctx, &n, constants.CountSaleRecords); err != nil {
		return 0, db.Classify(err)
	}
	return n.Int64, nil
}
