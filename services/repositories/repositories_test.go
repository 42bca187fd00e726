package repositories

import (
	"context"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/resorcera/course_api/model"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a private in-memory database with the production schema. The
// pool is pinned to one connection because every connection to :memory: would
// otherwise see its own empty database.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, Migrate(db))
	return db
}

func seedCourse(t *testing.T, repo *CourseRepository, id string, popularity int) *model.Course {
	t.Helper()
	course, err := repo.CreateCourse(context.Background(), &model.Course{
		ID:          id,
		Title:       "Course " + id,
		Description: "About " + id,
		Features:    []string{},
		Topics:      []string{},
		Popularity:  popularity,
	})
	require.NoError(t, err)
	return course
}

func seedUser(t *testing.T, repo *UserRepository, email string) *model.User {
	t.Helper()
	user, err := repo.CreateUser(context.Background(), email, "Learner")
	require.NoError(t, err)
	return user
}
