package services

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/alphabatem/common/context"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/rs/zerolog/log"

	"github.com/resorcera/course_api/docs"
	"github.com/resorcera/course_api/middleware"
	"github.com/resorcera/course_api/services/handlers"
	"github.com/resorcera/course_api/shared"
)

// bodyLimit sits above shared.MaxPDFSize so an oversized PDF still reaches the
// upload validator and gets its own message instead of fiber's 413.
const bodyLimit = 12 * 1024 * 1024

var defaultDevOrigins = []string{"http://localhost:3000", "http://127.0.0.1:3000"}

type HttpService struct {
	context.DefaultService

	port        int
	development bool
	origins     []string

	app *fiber.App
}

const HTTP_SVC = "http_svc"

func (svc HttpService) Id() string {
	return HTTP_SVC
}

func (svc *HttpService) Configure(ctx *context.Context) error {
	if port := os.Getenv("HTTP_PORT"); port != "" {
		var err error
		if svc.port, err = strconv.Atoi(port); err != nil {
			return err
		}
	} else {
		svc.port = 8000
	}

	svc.development = os.Getenv("APP_ENV") == shared.EnvDevelopment
	svc.origins = parseOrigins(os.Getenv("CORS_ORIGINS"), svc.development)

	return svc.DefaultService.Configure(ctx)
}

func parseOrigins(raw string, development bool) []string {
	var origins []string
	for _, origin := range strings.Split(raw, ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 && development {
		return defaultDevOrigins
	}
	return origins
}

func (svc *HttpService) Start() error {
	deps := AppDeps{
		Development: svc.development,
		Origins:     svc.origins,
		RateLimit:   svc.Service(RATE_LIMIT_SVC).(*RateLimitService),
		AdminAuth:   svc.Service(ADMIN_AUTH_SVC).(*AdminAuthService),
		Courses:     svc.Service(COURSE_SVC).(*CourseService),
		Contact:     svc.Service(CONTACT_SVC).(*ContactService),
		Upload:      svc.Service(UPLOAD_SVC).(*UploadService),
	}
	if monitoringSvc, ok := svc.Service(MONITORING_SVC).(*MonitoringService); ok {
		deps.Monitoring = monitoringSvc
	}

	svc.app = NewApp(deps)

	log.Info().Int("port", svc.port).Bool("development", svc.development).Msg("HTTP server starting")
	return svc.app.Listen(fmt.Sprintf(":%v", svc.port))
}

func (svc *HttpService) Shutdown() {
	if svc.app != nil {
		_ = svc.app.Shutdown()
	}
}

// AppDeps are the collaborators the router needs. Monitoring is optional.
type AppDeps struct {
	Development bool
	Origins     []string

	RateLimit  *RateLimitService
	AdminAuth  *AdminAuthService
	Courses    handlers.CourseServiceInterface
	Contact    handlers.ContactServiceInterface
	Upload     handlers.UploadServiceInterface
	Monitoring *MonitoringService
}

// NewApp builds the fiber application with the admission chain in front of
// every route: security headers, blocked paths, CORS, then a per-route rate
// limit and, for admin routes, the password guard.
func NewApp(deps AppDeps) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               SERVICE_NAME,
		BodyLimit:             bodyLimit,
		DisableStartupMessage: true,
		JSONEncoder:           shared.JSONMarshal,
		JSONDecoder:           shared.JSONUnmarshal,
		ErrorHandler:          errorHandler(deps.Development),
	})

	if deps.Monitoring != nil {
		app.Use(deps.Monitoring.Middleware())
	}
	app.Use(middleware.Recover())
	app.Use(middleware.SecurityHeaders())
	app.Use(middleware.BlockSensitivePaths())
	app.Use(middleware.CORS(deps.Origins))

	docs.SwaggerInfo.BasePath = "/"
	app.Get("/ping", ping)
	app.Get("/swagger/*", swagger.HandlerDefault)

	rl := deps.RateLimit.RateLimit
	admin := deps.AdminAuth.RequireAdmin()

	courseHandler := handlers.NewCourseHandler(deps.Courses)
	adminHandler := handlers.NewAdminHandler(deps.AdminAuth)
	contactHandler := handlers.NewContactHandler(deps.Contact)
	uploadHandler := handlers.NewUploadHandler(deps.Upload)

	api := app.Group("/api")

	api.Post("/auth/admin", rl(PolicyAdminLogin), adminHandler.Login)

	courses := api.Group("/courses")
	courses.Get("/", rl(PolicyGeneralRead), courseHandler.ListCourses)
	courses.Post("/", rl(PolicyCourseCreate), admin, courseHandler.CreateCourse)
	courses.Get("/:courseId", rl(PolicyGeneralRead), courseHandler.GetCourse)
	courses.Put("/:courseId", rl(PolicyCourseUpdate), admin, courseHandler.UpdateCourse)
	courses.Delete("/:courseId", rl(PolicyCourseDelete), admin, courseHandler.DeleteCourse)
	courses.Post("/:courseId/view", rl(PolicyCourseInteraction), courseHandler.RecordView)
	courses.Get("/:courseId/rating", rl(PolicyGeneralRead), courseHandler.ListRatings)
	courses.Post("/:courseId/rating", rl(PolicyCourseInteraction), courseHandler.RateCourse)
	courses.Post("/:courseId/enroll", rl(PolicyCourseInteraction), courseHandler.Enroll)

	api.Post("/upload-pdf", rl(PolicyUpload), admin, uploadHandler.UploadPDF)
	api.Post("/contact", rl(PolicyContact), contactHandler.Submit)

	app.Use(func(c *fiber.Ctx) error {
		return fiber.ErrNotFound
	})

	return app
}

// errorHandler is where every failure raised by a handler or middleware is
// turned into the public error envelope.
func errorHandler(development bool) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			message := fiberErr.Message
			if fiberErr.Code == fiber.StatusNotFound {
				message = "Not Found"
			}
			recordClassifiedError(fiberErr.Code)
			return shared.ResponseError(c, fiberErr.Code, message)
		}

		classified := shared.ClassifyError(err, development)
		recordClassifiedError(classified.StatusCode)
		return shared.ResponseError(c, classified.StatusCode, classified.Message)
	}
}

// @Summary Ping
// @Description This endpoint checks the health of the service
// @Tags health
// @Produce json
// @Success 200 {object} shared.Response{data=string}
// @Router /ping [get]
func ping(c *fiber.Ctx) error {
	c.Set(fiber.HeaderCacheControl, "max-age=10")
	return shared.ResponseJSON(c, fiber.StatusOK, "Success", "pong")
}
