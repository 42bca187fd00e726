package services

import (
	"context"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/resorcera/course_api/dto"
	"github.com/resorcera/course_api/model"
	"github.com/resorcera/course_api/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type memoryCourseStore struct {
	mu          sync.Mutex
	courses     map[string]*model.Course
	ratings     map[string]*model.Rating
	enrollments map[string]*model.Enrollment
}

func newMemoryCourseStore() *memoryCourseStore {
	return &memoryCourseStore{
		courses:     map[string]*model.Course{},
		ratings:     map[string]*model.Rating{},
		enrollments: map[string]*model.Enrollment{},
	}
}

func (s *memoryCourseStore) ListCourses(_ context.Context, _ string) ([]model.Course, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.Course, 0, len(s.courses))
	for _, c := range s.courses {
		out = append(out, *c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].AverageRating > out[j].AverageRating })
	return out, nil
}

func (s *memoryCourseStore) GetCourse(_ context.Context, courseID string) (*model.Course, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.courses[courseID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *c
	return &cp, nil
}

func (s *memoryCourseStore) CourseExists(_ context.Context, courseID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.courses[courseID]
	return ok, nil
}

func (s *memoryCourseStore) CreateCourse(_ context.Context, course *model.Course) (*model.Course, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.courses[course.ID]; ok {
		return nil, gorm.ErrDuplicatedKey
	}
	cp := *course
	s.courses[course.ID] = &cp
	return course, nil
}

func (s *memoryCourseStore) UpdateCourse(_ context.Context, course *model.Course) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *course
	s.courses[course.ID] = &cp
	return nil
}

func (s *memoryCourseStore) DeleteCourse(_ context.Context, courseID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.courses[courseID]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(s.courses, courseID)
	return nil
}

func (s *memoryCourseStore) IncrementPopularity(_ context.Context, courseID string, max int) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.courses[courseID]
	if !ok {
		return 0, gorm.ErrRecordNotFound
	}
	if c.Popularity < max {
		c.Popularity++
	}
	return c.Popularity, nil
}

func (s *memoryCourseStore) ListRatings(_ context.Context, courseID string) ([]model.Rating, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []model.Rating
	for _, r := range s.ratings {
		if r.CourseID == courseID {
			out = append(out, *r)
		}
	}
	return out, nil
}

func (s *memoryCourseStore) UpsertRating(_ context.Context, rating *model.Rating) (*model.Rating, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := rating.UserID + "/" + rating.CourseID
	cp := *rating
	s.ratings[key] = &cp

	var sum, total int
	for _, r := range s.ratings {
		if r.CourseID == rating.CourseID {
			sum += r.Rating
			total++
		}
	}
	c := s.courses[rating.CourseID]
	c.TotalRatings = total
	c.AverageRating = float64(sum) / float64(total)
	return rating, nil
}

func (s *memoryCourseStore) CreateEnrollment(_ context.Context, enrollment *model.Enrollment) (*model.Enrollment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := enrollment.UserID + "/" + enrollment.CourseID
	if _, ok := s.enrollments[key]; ok {
		return nil, gorm.ErrDuplicatedKey
	}
	cp := *enrollment
	s.enrollments[key] = &cp
	s.courses[enrollment.CourseID].EnrollmentCount++
	return enrollment, nil
}

func (s *memoryCourseStore) IsEnrolled(_ context.Context, userID, courseID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.enrollments[userID+"/"+courseID]
	return ok, nil
}

type memoryUserStore struct {
	mu    sync.Mutex
	users map[string]*model.User
}

func newMemoryUserStore() *memoryUserStore {
	return &memoryUserStore{users: map[string]*model.User{}}
}

func (s *memoryUserStore) GetUser(_ context.Context, userID string) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if u, ok := s.users[userID]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *memoryUserStore) GetUserByEmail(_ context.Context, email string) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *memoryUserStore) CreateUser(_ context.Context, email, name string) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u := &model.User{ID: uuid.NewString(), Email: email, Name: name}
	s.users[u.ID] = u
	return u, nil
}

func newTestCourseService() (*CourseService, *memoryCourseStore) {
	store := newMemoryCourseStore()
	clock := newFakeClock()
	return NewCourseService(store, newMemoryUserStore(), clock.Now), store
}

func TestCourseSlug(t *testing.T) {
	now := time.UnixMilli(1700000000000)

	assert.Equal(t, "complete-go-course", CourseSlug("Complete Go Course", now))
	assert.Equal(t, "c-for-beginners", CourseSlug("  C++ for Beginners! ", now))
	assert.Equal(t, "ai-ml", CourseSlug("AI & ML", now))
	assert.Equal(t, "course-1700000000000", CourseSlug("₹₹₹", now))
}

func TestCreateCourseRejectsDuplicateTitle(t *testing.T) {
	svc, _ := newTestCourseService()
	ctx := context.Background()

	course, err := svc.CreateCourse(ctx, &dto.CreateCourseRequest{Title: "Go Basics", Description: "D"})
	require.NoError(t, err)
	assert.Equal(t, "go-basics", course.ID)
	assert.Equal(t, 0, course.EnrollmentCount)
	assert.Equal(t, []string{}, course.Features)

	_, err = svc.CreateCourse(ctx, &dto.CreateCourseRequest{Title: "go basics", Description: "D"})
	appErr, ok := shared.GetAppError(err)
	require.True(t, ok)
	assert.Equal(t, 409, appErr.StatusCode)
	assert.Equal(t, "A course with this title already exists", appErr.Message)
}

func TestGetCourseNotFound(t *testing.T) {
	svc, _ := newTestCourseService()

	_, err := svc.GetCourse(context.Background(), "missing")
	classified := shared.ClassifyError(err, false)
	assert.Equal(t, 404, classified.StatusCode)
	assert.Equal(t, "Course not found", classified.Message)
}

func TestUpdateCourseAppliesProvidedFields(t *testing.T) {
	svc, store := newTestCourseService()
	ctx := context.Background()
	_, err := svc.CreateCourse(ctx, &dto.CreateCourseRequest{Title: "Go Basics", Description: "D", Price: "Free"})
	require.NoError(t, err)

	featured := true
	popularity := 80
	updated, err := svc.UpdateCourse(ctx, "go-basics", &dto.UpdateCourseRequest{Featured: &featured, Popularity: &popularity})
	require.NoError(t, err)
	assert.True(t, updated.Featured)
	assert.Equal(t, 80, updated.Popularity)
	assert.Equal(t, "Free", updated.Price)
	assert.True(t, store.courses["go-basics"].Featured)
}

func TestRecordViewCapsPopularity(t *testing.T) {
	svc, store := newTestCourseService()
	ctx := context.Background()
	_, err := svc.CreateCourse(ctx, &dto.CreateCourseRequest{Title: "Go Basics", Description: "D"})
	require.NoError(t, err)
	store.courses["go-basics"].Popularity = shared.MaxPopularity - 1

	popularity, err := svc.RecordView(ctx, "go-basics")
	require.NoError(t, err)
	assert.Equal(t, shared.MaxPopularity, popularity)

	popularity, err = svc.RecordView(ctx, "go-basics")
	require.NoError(t, err)
	assert.Equal(t, shared.MaxPopularity, popularity)

	_, err = svc.RecordView(ctx, "missing")
	assert.Equal(t, 404, shared.ClassifyError(err, false).StatusCode)
}

func TestRateCourseRecomputesAverage(t *testing.T) {
	svc, store := newTestCourseService()
	ctx := context.Background()
	_, err := svc.CreateCourse(ctx, &dto.CreateCourseRequest{Title: "Go Basics", Description: "D"})
	require.NoError(t, err)

	_, err = svc.RateCourse(ctx, "go-basics", &dto.RatingRequest{UserEmail: "a@b.co", UserName: "A", Rating: 5})
	require.NoError(t, err)
	_, err = svc.RateCourse(ctx, "go-basics", &dto.RatingRequest{UserEmail: "c@d.co", UserName: "C", Rating: 2})
	require.NoError(t, err)
	// Same user again replaces the earlier rating.
	_, err = svc.RateCourse(ctx, "go-basics", &dto.RatingRequest{UserEmail: "a@b.co", Rating: 4})
	require.NoError(t, err)

	course := store.courses["go-basics"]
	assert.Equal(t, 2, course.TotalRatings)
	assert.InDelta(t, 3.0, course.AverageRating, 0.0001)
}

func TestRateCourseRequiresIdentity(t *testing.T) {
	svc, _ := newTestCourseService()
	ctx := context.Background()
	_, err := svc.CreateCourse(ctx, &dto.CreateCourseRequest{Title: "Go Basics", Description: "D"})
	require.NoError(t, err)

	_, err = svc.RateCourse(ctx, "go-basics", &dto.RatingRequest{Rating: 3})
	classified := shared.ClassifyError(err, false)
	assert.Equal(t, 400, classified.StatusCode)
	assert.Equal(t, "User information required", classified.Message)
}

func TestEnrollRejectsSecondEnrollment(t *testing.T) {
	svc, store := newTestCourseService()
	ctx := context.Background()
	_, err := svc.CreateCourse(ctx, &dto.CreateCourseRequest{Title: "Go Basics", Description: "D"})
	require.NoError(t, err)

	req := &dto.EnrollRequest{UserEmail: "a@b.co", UserName: "A"}
	_, err = svc.Enroll(ctx, "go-basics", req)
	require.NoError(t, err)

	_, err = svc.Enroll(ctx, "go-basics", req)
	classified := shared.ClassifyError(err, false)
	assert.Equal(t, 409, classified.StatusCode)
	assert.Equal(t, "User already enrolled in this course", classified.Message)
	assert.Equal(t, 1, store.courses["go-basics"].EnrollmentCount)
}

func TestDeleteCourse(t *testing.T) {
	svc, _ := newTestCourseService()
	ctx := context.Background()
	_, err := svc.CreateCourse(ctx, &dto.CreateCourseRequest{Title: "Go Basics", Description: "D"})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteCourse(ctx, "go-basics"))
	assert.Equal(t, 404, shared.ClassifyError(svc.DeleteCourse(ctx, "go-basics"), false).StatusCode)
}
