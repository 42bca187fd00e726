package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/resorcera/course_api/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type RateLimitRepository struct {
	BaseRepository
}

func NewRateLimitRepository(db *gorm.DB) *RateLimitRepository {
	return &RateLimitRepository{
		BaseRepository: NewBaseRepository(db),
	}
}

// Get returns nil, nil when no window is stored for key.
func (r *RateLimitRepository) Get(ctx context.Context, key string) (*model.RateLimit, error) {
	var rateLimit model.RateLimit
	err := r.conn(ctx).Where(clause.Eq{Column: clause.Column{Name: "key"}, Value: key}).First(&rateLimit).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &rateLimit, nil
}

func (r *RateLimitRepository) Save(ctx context.Context, rateLimit *model.RateLimit) error {
	now := time.Now()
	if rateLimit.CreatedAt.IsZero() {
		rateLimit.CreatedAt = now
	}
	rateLimit.UpdatedAt = now

	return r.conn(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"count", "reset_at", "updated_at"}),
	}).Create(rateLimit).Error
}

func (r *RateLimitRepository) DeleteExpired(ctx context.Context, now time.Time) error {
	return r.conn(ctx).Where("reset_at < ?", now).Delete(&model.RateLimit{}).Error
}
