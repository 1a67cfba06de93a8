package buses

import (
	"context"
	"errors"
	"time"

	"busline/internal/shared/apperrors"
	"busline/internal/shared/database/tx"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Repository interface {
	Create(ctx context.Context, bus *Bus) error
	GetByID(ctx context.Context, id uint) (*Bus, error)
	List(ctx context.Context) ([]Bus, error)
	Search(ctx context.Context, source, destination string, from, to time.Time) ([]Bus, error)

	// Row lock for the commit workflow. Must run inside a transaction.
	LockByID(ctx context.Context, id uint) (*Bus, error)
	// DecrementSeats takes n seats. With guard set the update only applies
	// while at least n seats remain.
	DecrementSeats(ctx context.Context, id uint, n int, guard bool) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, bus *Bus) error {
	err := tx.Conn(ctx, r.db).Create(bus).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return apperrors.ConflictError{Resource: "bus", Msg: "bus number already exists", Err: err}
	}
	return apperrors.Storage("create bus", err)
}

func (r *repository) GetByID(ctx context.Context, id uint) (*Bus, error) {
	var bus Bus
	if err := tx.Conn(ctx, r.db).First(&bus, id).Error; err != nil {
		return nil, mapLoadError(err)
	}
	return &bus, nil
}

func (r *repository) List(ctx context.Context) ([]Bus, error) {
	var list []Bus
	err := tx.Conn(ctx, r.db).
		Order("departure_time ASC").
		Order("id ASC").
		Find(&list).Error
	if err != nil {
		return nil, apperrors.Storage("list buses", err)
	}
	return list, nil
}

func (r *repository) Search(ctx context.Context, source, destination string, from, to time.Time) ([]Bus, error) {
	var list []Bus
	err := tx.Conn(ctx, r.db).
		Where("source = ? AND destination = ?", source, destination).
		Where("departure_time >= ? AND departure_time < ?", from, to).
		Order("departure_time ASC").
		Order("id ASC").
		Find(&list).Error
	if err != nil {
		return nil, apperrors.Storage("search buses", err)
	}
	return list, nil
}

func (r *repository) LockByID(ctx context.Context, id uint) (*Bus, error) {
	var bus Bus
	err := tx.Conn(ctx, r.db).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&bus, id).Error
	if err != nil {
		return nil, mapLoadError(err)
	}
	return &bus, nil
}

func (r *repository) DecrementSeats(ctx context.Context, id uint, n int, guard bool) error {
	query := tx.Conn(ctx, r.db).Model(&Bus{}).Where("id = ?", id)
	if guard {
		query = query.Where("available_seats >= ?", n)
	}

	result := query.Update("available_seats", gorm.Expr("available_seats - ?", n))
	if result.Error != nil {
		return apperrors.Storage("decrement seats", result.Error)
	}
	if result.RowsAffected == 0 {
		if guard {
			return apperrors.ConflictError{Resource: "bus", Msg: "not enough seats available"}
		}
		return apperrors.NotFound("bus")
	}
	return nil
}

func mapLoadError(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperrors.NotFoundError{Resource: "bus", Err: err}
	}
	return apperrors.Storage("load bus", err)
}
