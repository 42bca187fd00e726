package main

import (
	"context"
	"flag"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/resorcera/course_api/seed/seeders"
	"github.com/resorcera/course_api/services"
	"github.com/resorcera/course_api/services/repositories"
	"github.com/resorcera/course_api/shared"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Info().Msg("No .env file found, using system environment variables")
	}

	pretty, _ := strconv.ParseBool(os.Getenv("LOG_PRETTY"))
	shared.InitLogger(os.Getenv("LOG_LEVEL"), pretty)

	dsn := flag.String("dsn", "", "Postgres DSN (overrides DATABASE_URL and DB_* env vars)")
	flag.Parse()

	if *dsn == "" {
		*dsn = services.PostgresDSN()
	}

	db, err := services.ConnectPostgres(*dsn)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to database")
	}

	seeder := seeders.NewCourseSeeder(repositories.NewCourseRepository(db), services.CourseSlug)
	result, err := seeder.Seed(context.Background())
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to seed courses")
	}

	log.Info().Int("created", result.Created).Int("skipped", result.Skipped).Msg("Seeding completed")
}
