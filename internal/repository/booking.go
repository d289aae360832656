// internal/repository/booking.go
package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ajaypanchal761/createbharat-sub000/internal/domain"
	"github.com/ajaypanchal761/createbharat-sub000/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BookingRepositoryIface interface {
	Create(ctx context.Context, booking *model.MentorBooking) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.MentorBooking, error)
	Update(ctx context.Context, booking *model.MentorBooking) error
	FindByMentor(ctx context.Context, mentorID uuid.UUID) ([]*model.MentorBooking, error)
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*model.MentorBooking, error)
	CountAll(ctx context.Context) (int64, error)
	SumRevenue(ctx context.Context) (int64, error)
	RevenueByDay(ctx context.Context, since time.Time) (map[string]int64, error)
	FindRecent(ctx context.Context, limit int) ([]*model.MentorBooking, error)
}

type BookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

func (r *BookingRepository) Create(ctx context.Context, booking *model.MentorBooking) error {
	result := r.db.WithContext(ctx).Create(booking)
	if result.Error != nil {
		return fmt.Errorf("failed to create booking: %w", result.Error)
	}
	return nil
}

func (r *BookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.MentorBooking, error) {
	var booking model.MentorBooking
	result := r.db.WithContext(ctx).
		Preload("Mentor").Preload("User").
		First(&booking, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, fmt.Errorf("failed to find booking: %w", result.Error)
	}
	return &booking, nil
}

func (r *BookingRepository) Update(ctx context.Context, booking *model.MentorBooking) error {
	result := r.db.WithContext(ctx).Save(booking)
	if result.Error != nil {
		return fmt.Errorf("failed to update booking: %w", result.Error)
	}
	return nil
}

func (r *BookingRepository) FindByMentor(ctx context.Context, mentorID uuid.UUID) ([]*model.MentorBooking, error) {
	var bookings []*model.MentorBooking
	result := r.db.WithContext(ctx).
		Preload("User").
		Where("mentor_id = ?", mentorID).
		Order("created_at DESC").
		Find(&bookings)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to list mentor bookings: %w", result.Error)
	}
	return bookings, nil
}

func (r *BookingRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*model.MentorBooking, error) {
	var bookings []*model.MentorBooking
	result := r.db.WithContext(ctx).
		Preload("Mentor").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&bookings)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to list user bookings: %w", result.Error)
	}
	return bookings, nil
}

func (r *BookingRepository) CountAll(ctx context.Context) (int64, error) {
	var count int64
	result := r.db.WithContext(ctx).Model(&model.MentorBooking{}).Count(&count)
	if result.Error != nil {
		return 0, fmt.Errorf("failed to count bookings: %w", result.Error)
	}
	return count, nil
}

// SumRevenue totals paid booking amounts in paise.
func (r *BookingRepository) SumRevenue(ctx context.Context) (int64, error) {
	return sumRevenue(r.db.WithContext(ctx), &model.MentorBooking{})
}

// RevenueByDay buckets paid booking amounts by calendar day of payment.
func (r *BookingRepository) RevenueByDay(ctx context.Context, since time.Time) (map[string]int64, error) {
	return revenueByDay(r.db.WithContext(ctx), &model.MentorBooking{}, since)
}

func (r *BookingRepository) FindRecent(ctx context.Context, limit int) ([]*model.MentorBooking, error) {
	var bookings []*model.MentorBooking
	result := r.db.WithContext(ctx).
		Preload("Mentor").
		Order("created_at DESC").Limit(limit).
		Find(&bookings)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to find recent bookings: %w", result.Error)
	}
	return bookings, nil
}
