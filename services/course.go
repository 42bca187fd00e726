package services

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	appContext "github.com/alphabatem/common/context"
	"github.com/resorcera/course_api/dto"
	"github.com/resorcera/course_api/model"
	"github.com/resorcera/course_api/services/repositories"
	"github.com/resorcera/course_api/shared"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const COURSE_SVC = "course_svc"

var (
	slugStripRegex = regexp.MustCompile(`[^a-z0-9\s-]`)
	slugSpaceRegex = regexp.MustCompile(`\s+`)
)

// CourseStore is the persistence the course service needs. Implemented by
// repositories.CourseRepository.
type CourseStore interface {
	ListCourses(ctx context.Context, sortBy string) ([]model.Course, error)
	GetCourse(ctx context.Context, courseID string) (*model.Course, error)
	CourseExists(ctx context.Context, courseID string) (bool, error)
	CreateCourse(ctx context.Context, course *model.Course) (*model.Course, error)
	UpdateCourse(ctx context.Context, course *model.Course) error
	DeleteCourse(ctx context.Context, courseID string) error
	IncrementPopularity(ctx context.Context, courseID string, max int) (int, error)
	ListRatings(ctx context.Context, courseID string) ([]model.Rating, error)
	UpsertRating(ctx context.Context, rating *model.Rating) (*model.Rating, error)
	CreateEnrollment(ctx context.Context, enrollment *model.Enrollment) (*model.Enrollment, error)
	IsEnrolled(ctx context.Context, userID, courseID string) (bool, error)
}

// UserStore is implemented by repositories.UserRepository.
type UserStore interface {
	GetUser(ctx context.Context, userID string) (*model.User, error)
	GetUserByEmail(ctx context.Context, email string) (*model.User, error)
	CreateUser(ctx context.Context, email, name string) (*model.User, error)
}

var (
	_ CourseStore = (*repositories.CourseRepository)(nil)
	_ UserStore   = (*repositories.UserRepository)(nil)
)

type CourseService struct {
	appContext.DefaultService

	courses CourseStore
	users   UserStore
	now     func() time.Time
}

func NewCourseService(courses CourseStore, users UserStore, now func() time.Time) *CourseService {
	if now == nil {
		now = time.Now
	}
	return &CourseService{courses: courses, users: users, now: now}
}

func (svc CourseService) Id() string {
	return COURSE_SVC
}

func (svc *CourseService) Configure(ctx *appContext.Context) error {
	if svc.now == nil {
		svc.now = time.Now
	}
	return svc.DefaultService.Configure(ctx)
}

func (svc *CourseService) Start() error {
	if svc.courses != nil {
		return nil
	}
	pgSvc := svc.Service(POSTGRES_SVC).(*PostgresService)
	svc.courses = pgSvc.Courses()
	svc.users = pgSvc.Users()
	return nil
}

func (svc *CourseService) Shutdown() {}

// CourseSlug derives a course id from its title.
func CourseSlug(title string, now time.Time) string {
	slug := strings.ToLower(title)
	slug = slugStripRegex.ReplaceAllString(slug, "")
	slug = strings.TrimSpace(slug)
	slug = slugSpaceRegex.ReplaceAllString(slug, "-")
	if slug == "" {
		return fmt.Sprintf("course-%d", now.UnixMilli())
	}
	return slug
}

func courseNotFound() error {
	return shared.NewNotFoundError("Course not found")
}

func (svc *CourseService) ListCourses(ctx context.Context, sortBy string) ([]model.Course, error) {
	courses, err := svc.courses.ListCourses(ctx, sortBy)
	if err != nil {
		return nil, HandleStorageError(err)
	}
	return courses, nil
}

func (svc *CourseService) GetCourse(ctx context.Context, courseID string) (*model.Course, error) {
	course, err := svc.courses.GetCourse(ctx, courseID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, courseNotFound()
	}
	if err != nil {
		return nil, HandleStorageError(err)
	}
	return course, nil
}

func (svc *CourseService) CreateCourse(ctx context.Context, req *dto.CreateCourseRequest) (*model.Course, error) {
	courseID := CourseSlug(req.Title, svc.now())

	exists, err := svc.courses.CourseExists(ctx, courseID)
	if err != nil {
		return nil, HandleStorageError(err)
	}
	if exists {
		return nil, shared.NewConflictError("A course with this title already exists")
	}

	course, err := svc.courses.CreateCourse(ctx, req.ToModel(courseID))
	if err != nil {
		return nil, HandleStorageError(err)
	}

	log.WithFields(log.Fields{"course_id": course.ID}).Info("Course created")
	return course, nil
}

func (svc *CourseService) UpdateCourse(ctx context.Context, courseID string, req *dto.UpdateCourseRequest) (*model.Course, error) {
	course, err := svc.GetCourse(ctx, courseID)
	if err != nil {
		return nil, err
	}

	req.Apply(course)
	if err := svc.courses.UpdateCourse(ctx, course); err != nil {
		return nil, HandleStorageError(err)
	}
	return course, nil
}

func (svc *CourseService) DeleteCourse(ctx context.Context, courseID string) error {
	err := svc.courses.DeleteCourse(ctx, courseID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return courseNotFound()
	}
	if err != nil {
		return HandleStorageError(err)
	}

	log.WithFields(log.Fields{"course_id": courseID}).Info("Course deleted")
	return nil
}

// RecordView bumps popularity by one, capped at shared.MaxPopularity.
func (svc *CourseService) RecordView(ctx context.Context, courseID string) (int, error) {
	popularity, err := svc.courses.IncrementPopularity(ctx, courseID, shared.MaxPopularity)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, courseNotFound()
	}
	if err != nil {
		return 0, HandleStorageError(err)
	}
	return popularity, nil
}

func (svc *CourseService) ListRatings(ctx context.Context, courseID string) ([]model.Rating, error) {
	ratings, err := svc.courses.ListRatings(ctx, courseID)
	if err != nil {
		return nil, HandleStorageError(err)
	}
	return ratings, nil
}

func (svc *CourseService) RateCourse(ctx context.Context, courseID string, req *dto.RatingRequest) (*model.Rating, error) {
	if err := svc.ensureCourse(ctx, courseID); err != nil {
		return nil, err
	}

	user, err := svc.resolveUser(ctx, req.Identity())
	if err != nil {
		return nil, err
	}

	rating, err := svc.courses.UpsertRating(ctx, &model.Rating{
		UserID:   user.ID,
		CourseID: courseID,
		Rating:   req.Rating,
		Review:   req.Review,
	})
	if err != nil {
		return nil, HandleStorageError(err)
	}
	return rating, nil
}

func (svc *CourseService) Enroll(ctx context.Context, courseID string, req *dto.EnrollRequest) (*model.Enrollment, error) {
	if err := svc.ensureCourse(ctx, courseID); err != nil {
		return nil, err
	}

	user, err := svc.resolveUser(ctx, req.Identity())
	if err != nil {
		return nil, err
	}

	enrolled, err := svc.courses.IsEnrolled(ctx, user.ID, courseID)
	if err != nil {
		return nil, HandleStorageError(err)
	}
	if enrolled {
		return nil, shared.NewConflictError("User already enrolled in this course")
	}

	enrollment, err := svc.courses.CreateEnrollment(ctx, &model.Enrollment{
		UserID:   user.ID,
		CourseID: courseID,
	})
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return nil, shared.NewConflictError("User already enrolled in this course")
	}
	if err != nil {
		return nil, HandleStorageError(err)
	}
	return enrollment, nil
}

func (svc *CourseService) ensureCourse(ctx context.Context, courseID string) error {
	exists, err := svc.courses.CourseExists(ctx, courseID)
	if err != nil {
		return HandleStorageError(err)
	}
	if !exists {
		return courseNotFound()
	}
	return nil
}

// resolveUser finds the acting user by id or email, creating one when an email
// and name are supplied for an unknown address.
func (svc *CourseService) resolveUser(ctx context.Context, identity dto.UserIdentity) (*model.User, error) {
	var (
		user *model.User
		err  error
	)

	switch {
	case identity.UserID != "":
		user, err = svc.users.GetUser(ctx, identity.UserID)
	case identity.UserEmail != "":
		user, err = svc.users.GetUserByEmail(ctx, identity.UserEmail)
	default:
		err = gorm.ErrRecordNotFound
	}
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, HandleStorageError(err)
	}
	if user != nil {
		return user, nil
	}

	if identity.UserEmail == "" || identity.UserName == "" {
		return nil, shared.NewValidationError(shared.KindMissingField, "user", "User information required")
	}

	user, err = svc.users.CreateUser(ctx, identity.UserEmail, identity.UserName)
	if err != nil {
		return nil, HandleStorageError(err)
	}
	return user, nil
}
