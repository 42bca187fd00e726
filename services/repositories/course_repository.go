package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/resorcera/course_api/model"
	"github.com/resorcera/course_api/shared"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CourseRepository struct {
	BaseRepository
}

func NewCourseRepository(db *gorm.DB) *CourseRepository {
	return &CourseRepository{
		BaseRepository: NewBaseRepository(db),
	}
}

func courseOrder(sortBy string) string {
	switch sortBy {
	case shared.SortByStudents:
		return "enrollment_count DESC"
	case shared.SortByNewest:
		return "created_at DESC"
	default:
		return "average_rating DESC"
	}
}

func (ds *CourseRepository) ListCourses(ctx context.Context, sortBy string) ([]model.Course, error) {
	var courses []model.Course
	if err := ds.conn(ctx).Order(courseOrder(sortBy)).Find(&courses).Error; err != nil {
		return nil, err
	}
	return courses, nil
}

func (ds *CourseRepository) GetCourse(ctx context.Context, courseID string) (*model.Course, error) {
	var course model.Course
	err := ds.conn(ctx).
		Preload("Ratings", func(db *gorm.DB) *gorm.DB { return db.Order("created_at DESC") }).
		Preload("Ratings.User", func(db *gorm.DB) *gorm.DB { return db.Select("id", "name") }).
		Where("id = ?", courseID).
		First(&course).Error
	if err != nil {
		return nil, err
	}
	return &course, nil
}

func (ds *CourseRepository) CourseExists(ctx context.Context, courseID string) (bool, error) {
	var count int64
	if err := ds.conn(ctx).Model(&model.Course{}).Where("id = ?", courseID).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (ds *CourseRepository) CreateCourse(ctx context.Context, course *model.Course) (*model.Course, error) {
	now := time.Now()
	course.CreatedAt = now
	course.UpdatedAt = now
	if err := ds.conn(ctx).Create(course).Error; err != nil {
		return nil, err
	}
	return course, nil
}

// CreateCourseIfAbsent inserts course unless a row with its id exists and
// reports whether it was inserted.
func (ds *CourseRepository) CreateCourseIfAbsent(ctx context.Context, course *model.Course) (bool, error) {
	now := time.Now()
	course.CreatedAt = now
	course.UpdatedAt = now
	result := ds.conn(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(course)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (ds *CourseRepository) UpdateCourse(ctx context.Context, course *model.Course) error {
	course.UpdatedAt = time.Now()
	return ds.conn(ctx).Omit(clause.Associations).Save(course).Error
}

func (ds *CourseRepository) DeleteCourse(ctx context.Context, courseID string) error {
	result := ds.conn(ctx).Where("id = ?", courseID).Delete(&model.Course{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// IncrementPopularity adds one view, saturating at max.
func (ds *CourseRepository) IncrementPopularity(ctx context.Context, courseID string, max int) (int, error) {
	result := ds.conn(ctx).Model(&model.Course{}).
		Where("id = ?", courseID).
		Updates(map[string]interface{}{
			"popularity": gorm.Expr("CASE WHEN popularity + 1 > ? THEN ? ELSE popularity + 1 END", max, max),
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return 0, result.Error
	}
	if result.RowsAffected == 0 {
		return 0, gorm.ErrRecordNotFound
	}

	var course model.Course
	if err := ds.conn(ctx).Select("popularity").Where("id = ?", courseID).First(&course).Error; err != nil {
		return 0, err
	}
	return course.Popularity, nil
}

func (ds *CourseRepository) ListRatings(ctx context.Context, courseID string) ([]model.Rating, error) {
	var ratings []model.Rating
	err := ds.conn(ctx).
		Preload("User", func(db *gorm.DB) *gorm.DB { return db.Select("id", "name", "email") }).
		Where("course_id = ?", courseID).
		Order("created_at DESC").
		Find(&ratings).Error
	if err != nil {
		return nil, err
	}
	return ratings, nil
}

// UpsertRating stores the user's rating for a course and recomputes the
// course's average and count in the same transaction. On a re-rate the
// existing row keeps its id and creation time; the stored row is returned.
func (ds *CourseRepository) UpsertRating(ctx context.Context, rating *model.Rating) (*model.Rating, error) {
	var stored model.Rating

	err := ds.conn(ctx).Transaction(func(tx *gorm.DB) error {
		now := time.Now()
		row := *rating
		if row.ID == "" {
			id, _ := uuid.NewV7()
			row.ID = id.String()
		}
		row.CreatedAt = now
		row.UpdatedAt = now

		if err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "course_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"rating", "review", "updated_at"}),
		}).Create(&row).Error; err != nil {
			return err
		}

		// row.ID is the id we tried to insert, not necessarily the stored one
		if err := tx.Where("user_id = ? AND course_id = ?", row.UserID, row.CourseID).First(&stored).Error; err != nil {
			return err
		}

		var stats struct {
			Average float64
			Total   int
		}
		if err := tx.Model(&model.Rating{}).
			Select("COALESCE(AVG(rating), 0) AS average, COUNT(*) AS total").
			Where("course_id = ?", stored.CourseID).
			Scan(&stats).Error; err != nil {
			return err
		}

		return tx.Model(&model.Course{}).Where("id = ?", stored.CourseID).Updates(map[string]interface{}{
			"average_rating": stats.Average,
			"total_ratings":  stats.Total,
			"updated_at":     now,
		}).Error
	})
	if err != nil {
		return nil, err
	}
	return &stored, nil
}

// CreateEnrollment records the enrollment and bumps the course counter. A second
// enrollment for the same user and course fails with the unique constraint.
func (ds *CourseRepository) CreateEnrollment(ctx context.Context, enrollment *model.Enrollment) (*model.Enrollment, error) {
	err := ds.conn(ctx).Transaction(func(tx *gorm.DB) error {
		if enrollment.ID == "" {
			id, _ := uuid.NewV7()
			enrollment.ID = id.String()
		}
		enrollment.EnrolledAt = time.Now()

		if err := tx.Create(enrollment).Error; err != nil {
			return err
		}
		return tx.Model(&model.Course{}).Where("id = ?", enrollment.CourseID).
			UpdateColumn("enrollment_count", gorm.Expr("enrollment_count + 1")).Error
	})
	if err != nil {
		return nil, err
	}
	return enrollment, nil
}

func (ds *CourseRepository) IsEnrolled(ctx context.Context, userID, courseID string) (bool, error) {
	var count int64
	err := ds.conn(ctx).Model(&model.Enrollment{}).
		Where("user_id = ? AND course_id = ?", userID, courseID).
		Count(&count).Error
	return count > 0, err
}
