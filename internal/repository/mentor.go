// internal/repository/mentor.go
package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/ajaypanchal761/createbharat-sub000/internal/domain"
	"github.com/ajaypanchal761/createbharat-sub000/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MentorFilter narrows the public mentor listing.
type MentorFilter struct {
	Category string
	Search   string
	Offset   int
	Limit    int
}

type MentorRepositoryIface interface {
	Create(ctx context.Context, mentor *model.Mentor) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Mentor, error)
	FindByEmail(ctx context.Context, email string) (*model.Mentor, error)
	Update(ctx context.Context, mentor *model.Mentor) error
	FindAll(ctx context.Context, filter MentorFilter) ([]*model.Mentor, int64, error)
	ApplyReview(ctx context.Context, id uuid.UUID, rating int) error
	CountAll(ctx context.Context) (int64, error)
}

type MentorRepository struct {
	db *gorm.DB
}

func NewMentorRepository(db *gorm.DB) *MentorRepository {
	return &MentorRepository{db: db}
}

func (r *MentorRepository) Create(ctx context.Context, mentor *model.Mentor) error {
	result := r.db.WithContext(ctx).Create(mentor)
	if result.Error != nil {
		if isDuplicateErr(result.Error) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("failed to create mentor: %w", result.Error)
	}
	return nil
}

func (r *MentorRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Mentor, error) {
	var mentor model.Mentor
	result := r.db.WithContext(ctx).First(&mentor, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domain.ErrMentorNotFound
		}
		return nil, fmt.Errorf("failed to find mentor: %w", result.Error)
	}
	return &mentor, nil
}

func (r *MentorRepository) FindByEmail(ctx context.Context, email string) (*model.Mentor, error) {
	var mentor model.Mentor
	result := r.db.WithContext(ctx).Where("email = ?", email).First(&mentor)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domain.ErrMentorNotFound
		}
		return nil, fmt.Errorf("failed to find mentor: %w", result.Error)
	}
	return &mentor, nil
}

func (r *MentorRepository) Update(ctx context.Context, mentor *model.Mentor) error {
	result := r.db.WithContext(ctx).Save(mentor)
	if result.Error != nil {
		return fmt.Errorf("failed to update mentor: %w", result.Error)
	}
	return nil
}

func (r *MentorRepository) FindAll(ctx context.Context, filter MentorFilter) ([]*model.Mentor, int64, error) {
	query := r.db.WithContext(ctx).Model(&model.Mentor{}).
		Where("is_active = ? AND is_blocked = ?", true, false)

	if filter.Category != "" {
		query = query.Where("? = ANY(categories)", filter.Category)
	}
	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		query = query.Where("name ILIKE ? OR title ILIKE ?", like, like)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count mentors: %w", err)
	}

	if filter.Limit <= 0 {
		filter.Limit = 20
	}

	var mentors []*model.Mentor
	result := query.Order("rating DESC").Offset(filter.Offset).Limit(filter.Limit).Find(&mentors)
	if result.Error != nil {
		return nil, 0, fmt.Errorf("failed to list mentors: %w", result.Error)
	}
	return mentors, count, nil
}

// ApplyReview folds a new rating into the running average.
func (r *MentorRepository) ApplyReview(ctx context.Context, id uuid.UUID, rating int) error {
	result := r.db.WithContext(ctx).Model(&model.Mentor{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"rating":       gorm.Expr("(rating * review_count + ?) / (review_count + 1)", rating),
			"review_count": gorm.Expr("review_count + 1"),
		})
	if result.Error != nil {
		return fmt.Errorf("failed to apply review: %w", result.Error)
	}
	return nil
}

func (r *MentorRepository) CountAll(ctx context.Context) (int64, error) {
	var count int64
	result := r.db.WithContext(ctx).Model(&model.Mentor{}).Count(&count)
	if result.Error != nil {
		return 0, fmt.Errorf("failed to count mentors: %w", result.Error)
	}
	return count, nil
}
