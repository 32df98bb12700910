package bookingrepo

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"renova-server/internal/domain/booking"
	"renova-server/internal/infrastructure/database/dbschema"
)

type BookingGormRepository struct {
	db *gorm.DB
}

var _ booking.Repository = (*BookingGormRepository)(nil)

func NewBookingGormRepository(db *gorm.DB) booking.Repository {
	return &BookingGormRepository{db: db}
}

func (repo *BookingGormRepository) Create(ctx context.Context, b *booking.Booking) (*booking.Booking, error) {
	entity := dbschema.NewSchemaBooking(b)
	if err := repo.db.WithContext(ctx).Create(entity).Error; err != nil {
		return nil, fmt.Errorf("create booking: %w", err)
	}
	return entity.EtoD(), nil
}

func (repo *BookingGormRepository) List(ctx context.Context) ([]*booking.Booking, error) {
	var entities []dbschema.Booking
	if err := repo.db.WithContext(ctx).Find(&entities).Error; err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	return toDomain(entities), nil
}

func (repo *BookingGormRepository) FindByID(ctx context.Context, id uint) (*booking.Booking, error) {
	var entity dbschema.Booking
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&entity).
		Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find booking by id: %w", err)
	}
	return entity.EtoD(), nil
}

func (repo *BookingGormRepository) FindByUserID(ctx context.Context, userID uint) ([]*booking.Booking, error) {
	var entities []dbschema.Booking
	err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Find(&entities).
		Error
	if err != nil {
		return nil, fmt.Errorf("find bookings by user id: %w", err)
	}
	return toDomain(entities), nil
}

func (repo *BookingGormRepository) UpdateStatus(ctx context.Context, id uint, status int) error {
	err := repo.db.WithContext(ctx).
		Model(&dbschema.Booking{}).
		Where("id = ?", id).
		Update("status", status).
		Error
	if err != nil {
		return fmt.Errorf("update booking status: %w", err)
	}
	return nil
}

func (repo *BookingGormRepository) Delete(ctx context.Context, id uint) error {
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&dbschema.Booking{}).
		Error
	if err != nil {
		return fmt.Errorf("delete booking: %w", err)
	}
	return nil
}

func toDomain(entities []dbschema.Booking) []*booking.Booking {
	bookings := make([]*booking.Booking, 0, len(entities))
	for i := range entities {
		bookings = append(bookings, entities[i].EtoD())
	}
	return bookings
}
