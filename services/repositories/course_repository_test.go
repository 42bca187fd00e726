package repositories

import (
	"context"
	"errors"
	"testing"

	"github.com/resorcera/course_api/model"
	"github.com/resorcera/course_api/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func strPtr(s string) *string {
	return &s
}

func TestUpsertRatingUpdatesExistingRating(t *testing.T) {
	db := newTestDB(t)
	courses, users := NewCourseRepository(db), NewUserRepository(db)
	ctx := context.Background()

	seedCourse(t, courses, "go-basics", 0)
	user := seedUser(t, users, "a@b.co")

	first, err := courses.UpsertRating(ctx, &model.Rating{UserID: user.ID, CourseID: "go-basics", Rating: 5})
	require.NoError(t, err)

	second, err := courses.UpsertRating(ctx, &model.Rating{
		UserID:   user.ID,
		CourseID: "go-basics",
		Rating:   3,
		Review:   strPtr("Better on a second read"),
	})
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, 3, second.Rating)
	require.NotNil(t, second.Review)
	assert.Equal(t, "Better on a second read", *second.Review)

	course, err := courses.GetCourse(ctx, "go-basics")
	require.NoError(t, err)
	assert.Equal(t, 1, course.TotalRatings)
	assert.InDelta(t, 3.0, course.AverageRating, 0.0001)

	ratings, err := courses.ListRatings(ctx, "go-basics")
	require.NoError(t, err)
	assert.Len(t, ratings, 1)
}

func TestUpsertRatingRecomputesAverage(t *testing.T) {
	db := newTestDB(t)
	courses, users := NewCourseRepository(db), NewUserRepository(db)
	ctx := context.Background()

	seedCourse(t, courses, "go-basics", 0)
	alice := seedUser(t, users, "alice@b.co")
	bob := seedUser(t, users, "bob@b.co")

	_, err := courses.UpsertRating(ctx, &model.Rating{UserID: alice.ID, CourseID: "go-basics", Rating: 4})
	require.NoError(t, err)
	_, err = courses.UpsertRating(ctx, &model.Rating{UserID: bob.ID, CourseID: "go-basics", Rating: 3})
	require.NoError(t, err)

	course, err := courses.GetCourse(ctx, "go-basics")
	require.NoError(t, err)
	assert.Equal(t, 2, course.TotalRatings)
	assert.InDelta(t, 3.5, course.AverageRating, 0.0001)
	assert.Len(t, course.Ratings, 2)
}

func TestCreateEnrollmentRejectsDuplicate(t *testing.T) {
	db := newTestDB(t)
	courses, users := NewCourseRepository(db), NewUserRepository(db)
	ctx := context.Background()

	seedCourse(t, courses, "go-basics", 0)
	user := seedUser(t, users, "a@b.co")

	_, err := courses.CreateEnrollment(ctx, &model.Enrollment{UserID: user.ID, CourseID: "go-basics"})
	require.NoError(t, err)

	_, err = courses.CreateEnrollment(ctx, &model.Enrollment{UserID: user.ID, CourseID: "go-basics"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, gorm.ErrDuplicatedKey), "got %v", err)

	enrolled, err := courses.IsEnrolled(ctx, user.ID, "go-basics")
	require.NoError(t, err)
	assert.True(t, enrolled)

	course, err := courses.GetCourse(ctx, "go-basics")
	require.NoError(t, err)
	assert.Equal(t, 1, course.EnrollmentCount)
}

func TestIncrementPopularitySaturates(t *testing.T) {
	db := newTestDB(t)
	courses := NewCourseRepository(db)
	ctx := context.Background()

	seedCourse(t, courses, "go-basics", 99)

	popularity, err := courses.IncrementPopularity(ctx, "go-basics", 100)
	require.NoError(t, err)
	assert.Equal(t, 100, popularity)

	popularity, err = courses.IncrementPopularity(ctx, "go-basics", 100)
	require.NoError(t, err)
	assert.Equal(t, 100, popularity)

	_, err = courses.IncrementPopularity(ctx, "missing", 100)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestCreateCourseIfAbsent(t *testing.T) {
	db := newTestDB(t)
	courses := NewCourseRepository(db)
	ctx := context.Background()

	created, err := courses.CreateCourseIfAbsent(ctx, &model.Course{ID: "go-basics", Title: "First", Description: "D"})
	require.NoError(t, err)
	assert.True(t, created)

	created, err = courses.CreateCourseIfAbsent(ctx, &model.Course{ID: "go-basics", Title: "Second", Description: "D"})
	require.NoError(t, err)
	assert.False(t, created)

	course, err := courses.GetCourse(ctx, "go-basics")
	require.NoError(t, err)
	assert.Equal(t, "First", course.Title)
}

func TestListCoursesOrdering(t *testing.T) {
	db := newTestDB(t)
	courses, users := NewCourseRepository(db), NewUserRepository(db)
	ctx := context.Background()

	seedCourse(t, courses, "quiet", 0)
	seedCourse(t, courses, "busy", 0)
	user := seedUser(t, users, "a@b.co")

	_, err := courses.CreateEnrollment(ctx, &model.Enrollment{UserID: user.ID, CourseID: "busy"})
	require.NoError(t, err)
	_, err = courses.UpsertRating(ctx, &model.Rating{UserID: user.ID, CourseID: "quiet", Rating: 5})
	require.NoError(t, err)

	byStudents, err := courses.ListCourses(ctx, shared.SortByStudents)
	require.NoError(t, err)
	require.Len(t, byStudents, 2)
	assert.Equal(t, "busy", byStudents[0].ID)

	byRating, err := courses.ListCourses(ctx, shared.SortByRating)
	require.NoError(t, err)
	require.Len(t, byRating, 2)
	assert.Equal(t, "quiet", byRating[0].ID)
}

func TestUpdateAndDeleteCourse(t *testing.T) {
	db := newTestDB(t)
	courses := NewCourseRepository(db)
	ctx := context.Background()

	course := seedCourse(t, courses, "go-basics", 0)
	course.ComingSoon = true
	course.Topics = []string{"goroutines"}
	require.NoError(t, courses.UpdateCourse(ctx, course))

	stored, err := courses.GetCourse(ctx, "go-basics")
	require.NoError(t, err)
	assert.True(t, stored.ComingSoon)
	assert.Equal(t, []string{"goroutines"}, stored.Topics)

	require.NoError(t, courses.DeleteCourse(ctx, "go-basics"))
	assert.ErrorIs(t, courses.DeleteCourse(ctx, "go-basics"), gorm.ErrRecordNotFound)

	exists, err := courses.CourseExists(ctx, "go-basics")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestUserRepository(t *testing.T) {
	db := newTestDB(t)
	users := NewUserRepository(db)
	ctx := context.Background()

	user := seedUser(t, users, "a@b.co")

	byID, err := users.GetUser(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "a@b.co", byID.Email)

	byEmail, err := users.GetUserByEmail(ctx, "a@b.co")
	require.NoError(t, err)
	assert.Equal(t, user.ID, byEmail.ID)

	_, err = users.CreateUser(ctx, "a@b.co", "Again")
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)

	_, err = users.GetUserByEmail(ctx, "nobody@b.co")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
