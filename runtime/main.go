package main

import (
	"os"
	"strconv"

	"github.com/alphabatem/common/context"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/resorcera/course_api/services"
	"github.com/resorcera/course_api/shared"
)

// @title Resorcera Course API
// @version 1.0
// @description Course catalogue, ratings, enrollments, PDF uploads and contact form.
// @BasePath /
func main() {
	if err := godotenv.Load(); err != nil {
		log.Info().Msg("No .env file found, using system environment variables")
	}

	pretty, _ := strconv.ParseBool(os.Getenv("LOG_PRETTY"))
	shared.InitLogger(os.Getenv("LOG_LEVEL"), pretty)

	ctx, err := context.NewCtx(
		&services.PostgresService{},
		&services.RedisService{},
		&services.MinIOService{},
		&services.EmailService{},

		&services.AdminAuthService{},
		&services.CourseService{},
		&services.ContactService{},
		&services.UploadService{},
		&services.RateLimitService{},

		&services.MonitoringService{},
		&services.HttpService{},
	)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to build service context")
		return
	}

	err = ctx.Run()
	if err != nil {
		log.Fatal().Err(err).Msg("Service stopped")
		return
	}
}
