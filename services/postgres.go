package services

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/alphabatem/common/context"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/resorcera/course_api/services/repositories"
	"github.com/resorcera/course_api/shared"
	log "github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type PostgresService struct {
	context.DefaultService
	db *gorm.DB

	database string

	courses    *repositories.CourseRepository
	users      *repositories.UserRepository
	rateLimits *repositories.RateLimitRepository
}

const POSTGRES_SVC = "postgres_svc"

func (ds PostgresService) Id() string {
	return POSTGRES_SVC
}

func (ds *PostgresService) Courses() *repositories.CourseRepository {
	return ds.courses
}

func (ds *PostgresService) Users() *repositories.UserRepository {
	return ds.users
}

func (ds *PostgresService) RateLimits() *repositories.RateLimitRepository {
	return ds.rateLimits
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// PostgresDSN builds the connection string from DATABASE_URL or the DB_* variables.
func PostgresDSN() string {
	if dsn := os.Getenv("DATABASE_URL"); dsn != "" {
		return dsn
	}
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=%s",
		getenv("DB_HOST", "localhost"),
		getenv("DB_USER", "postgres"),
		getenv("DB_PASSWORD", "postgres"),
		getenv("DB_NAME", "course_api"),
		getenv("DB_PORT", "5432"),
		getenv("DB_SSLMODE", "disable"),
		getenv("DB_TIMEZONE", "UTC"),
	)
}

func (ds *PostgresService) Configure(ctx *context.Context) error {
	ds.database = PostgresDSN()
	return ds.DefaultService.Configure(ctx)
}

// ConnectPostgres opens the database with retries and migrates the schema.
func ConnectPostgres(dsn string) (db *gorm.DB, err error) {
	maxRetries := 10
	retryDelay := time.Second

	for attempt := 1; attempt <= maxRetries; attempt++ {
		log.Printf("Attempting to connect to database (attempt %d/%d)...", attempt, maxRetries)

		db, err = gorm.Open(postgres.Open(dsn), &gorm.Config{
			Logger:         logger.Default.LogMode(logger.Error),
			TranslateError: true,
		})

		if err == nil {
			sqlDB, dbErr := db.DB()
			if dbErr == nil {
				pingErr := sqlDB.Ping()
				if pingErr == nil {
					log.Println("Successfully connected to database")
					break
				}
				err = pingErr
			} else {
				err = dbErr
			}
		}

		if attempt == maxRetries {
			log.Printf("Failed to connect to database after %d attempts: %v", maxRetries, err)
			return nil, err
		}

		log.Printf("Database connection failed: %v. Retrying in %v...", err, retryDelay)
		time.Sleep(retryDelay)

		retryDelay *= 2
		if retryDelay > 10*time.Second {
			retryDelay = 10 * time.Second
		}
	}

	if err = repositories.Migrate(db); err != nil {
		log.Printf("Failed to migrate database: %v", err)
		return nil, err
	}
	return db, nil
}

func (ds *PostgresService) Start() (err error) {
	ds.db, err = ConnectPostgres(ds.database)
	if err != nil {
		return err
	}

	ds.courses = repositories.NewCourseRepository(ds.db)
	ds.users = repositories.NewUserRepository(ds.db)
	ds.rateLimits = repositories.NewRateLimitRepository(ds.db)

	log.Println("Database connected and migrated successfully")
	return nil
}

func (ds *PostgresService) Shutdown() {
	if ds.db == nil {
		return
	}
	sqlDB, err := ds.db.DB()
	if err == nil {
		sqlDB.Close()
	}
}

// HandleStorageError wraps a storage failure as *shared.StorageError so callers
// see one error type. The original error stays reachable through Unwrap.
func HandleStorageError(err error) error {
	if err == nil {
		return nil
	}

	var sErr *shared.StorageError
	if errors.As(err, &sErr) {
		return err
	}

	kind := shared.KindUnknown
	var pgErr *pgconn.PgError

	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		kind = shared.KindNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		kind = shared.KindConflict
	case errors.Is(err, gorm.ErrForeignKeyViolated), errors.Is(err, gorm.ErrCheckConstraintViolated):
		kind = shared.KindMalformed
	case errors.As(err, &pgErr):
		switch pgErr.Code {
		case "23505":
			kind = shared.KindConflict
		case "23503", "23502", "23514":
			kind = shared.KindMalformed
		}
	}

	entry := log.WithFields(log.Fields{
		"error_type": kind,
		"error":      err.Error(),
	})
	if kind == shared.KindUnknown {
		entry.Error("Database error occurred")
	} else {
		entry.Warn("Database operation failed")
	}

	return &shared.StorageError{Kind: kind, Err: err}
}
