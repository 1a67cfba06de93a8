package bookings

import (
	"context"
	"errors"

	"busline/internal/shared/apperrors"
	"busline/internal/shared/database/tx"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repository interface {
	// Create inserts the booking and its passengers.
	Create(ctx context.Context, booking *Booking) error
	// GetForOwner loads a booking with passengers and bus, scoped to its owner.
	GetForOwner(ctx context.Context, id uint, userID uuid.UUID) (*Booking, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, booking *Booking) error {
	err := tx.Conn(ctx, r.db).Omit("Bus").Create(booking).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return apperrors.ConflictError{Resource: "booking", Msg: "booking reference collision", Err: err}
	}
	return apperrors.Storage("create booking", err)
}

func (r *repository) GetForOwner(ctx context.Context, id uint, userID uuid.UUID) (*Booking, error) {
	var booking Booking
	err := tx.Conn(ctx, r.db).
		Preload("Passengers", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Preload("Bus").
		Where("id = ? AND user_id = ?", id, userID).
		First(&booking).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFoundError{Resource: "booking", Err: err}
		}
		return nil, apperrors.Storage("load booking", err)
	}
	return &booking, nil
}
