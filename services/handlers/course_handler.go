package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/resorcera/course_api/dto"
	"github.com/resorcera/course_api/shared"
)

type CourseHandler struct {
	courseSvc CourseServiceInterface
}

func NewCourseHandler(courseSvc CourseServiceInterface) *CourseHandler {
	return &CourseHandler{courseSvc: courseSvc}
}

// @Summary List courses
// @Description List every course, best rated first unless sortBy says otherwise
// @Tags courses
// @Produce json
// @Param sortBy query string false "rating, students or newest" default(rating)
// @Success 200 {object} dto.CourseListResponse
// @Failure 429 {object} dto.ErrorResponse
// @Router /api/courses [get]
func (h *CourseHandler) ListCourses(c *fiber.Ctx) error {
	courses, err := h.courseSvc.ListCourses(c.UserContext(), c.Query("sortBy", shared.SortByRating))
	if err != nil {
		return err
	}
	return shared.ResponseOK(c, fiber.Map{"courses": courses})
}

// @Summary Get course
// @Description Get a course with its ratings
// @Tags courses
// @Produce json
// @Param courseId path string true "Course ID"
// @Success 200 {object} dto.CourseResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/courses/{courseId} [get]
func (h *CourseHandler) GetCourse(c *fiber.Ctx) error {
	course, err := h.courseSvc.GetCourse(c.UserContext(), c.Params("courseId"))
	if err != nil {
		return err
	}
	return shared.ResponseOK(c, fiber.Map{"course": course})
}

// @Summary Create course (Admin)
// @Tags courses
// @Accept json
// @Produce json
// @Param X-Admin-Password header string true "Admin password"
// @Param course body dto.CreateCourseRequest true "Course"
// @Success 200 {object} dto.CourseResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Failure 429 {object} dto.ErrorResponse
// @Router /api/courses [post]
func (h *CourseHandler) CreateCourse(c *fiber.Ctx) error {
	req, err := dto.BindCourseInput(c.Body())
	if err != nil {
		return err
	}

	course, err := h.courseSvc.CreateCourse(c.UserContext(), req)
	if err != nil {
		return err
	}
	return shared.ResponseOK(c, fiber.Map{"course": course})
}

// @Summary Update course (Admin)
// @Description Partial update. Also used to toggle featured and comingSoon and to set popularity.
// @Tags courses
// @Accept json
// @Produce json
// @Param X-Admin-Password header string true "Admin password"
// @Param courseId path string true "Course ID"
// @Param course body dto.UpdateCourseRequest true "Fields to change"
// @Success 200 {object} dto.CourseResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/courses/{courseId} [put]
func (h *CourseHandler) UpdateCourse(c *fiber.Ctx) error {
	req, err := dto.BindCourseUpdate(c.Body())
	if err != nil {
		return err
	}

	course, err := h.courseSvc.UpdateCourse(c.UserContext(), c.Params("courseId"), req)
	if err != nil {
		return err
	}
	return shared.ResponseOK(c, fiber.Map{"course": course})
}

// @Summary Delete course (Admin)
// @Tags courses
// @Produce json
// @Param X-Admin-Password header string true "Admin password"
// @Param courseId path string true "Course ID"
// @Success 200 {object} shared.Response
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/courses/{courseId} [delete]
func (h *CourseHandler) DeleteCourse(c *fiber.Ctx) error {
	if err := h.courseSvc.DeleteCourse(c.UserContext(), c.Params("courseId")); err != nil {
		return err
	}
	return shared.ResponseOK(c, fiber.Map{"message": "Course deleted successfully"})
}

// @Summary Record a course view
// @Tags courses
// @Produce json
// @Param courseId path string true "Course ID"
// @Success 200 {object} shared.Response
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/courses/{courseId}/view [post]
func (h *CourseHandler) RecordView(c *fiber.Ctx) error {
	popularity, err := h.courseSvc.RecordView(c.UserContext(), c.Params("courseId"))
	if err != nil {
		return err
	}
	return shared.ResponseOK(c, fiber.Map{"popularity": popularity})
}

// @Summary List course ratings
// @Tags ratings
// @Produce json
// @Param courseId path string true "Course ID"
// @Success 200 {object} dto.RatingListResponse
// @Router /api/courses/{courseId}/rating [get]
func (h *CourseHandler) ListRatings(c *fiber.Ctx) error {
	ratings, err := h.courseSvc.ListRatings(c.UserContext(), c.Params("courseId"))
	if err != nil {
		return err
	}
	return shared.ResponseOK(c, fiber.Map{"ratings": ratings})
}

// @Summary Rate course
// @Description Create or replace the caller's rating and refresh the course average
// @Tags ratings
// @Accept json
// @Produce json
// @Param courseId path string true "Course ID"
// @Param rating body dto.RatingRequest true "Rating"
// @Success 200 {object} shared.Response
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/courses/{courseId}/rating [post]
func (h *CourseHandler) RateCourse(c *fiber.Ctx) error {
	var req dto.RatingRequest
	if err := dto.Bind(c.Body(), &req); err != nil {
		return err
	}
	req.Sanitize()

	rating, err := h.courseSvc.RateCourse(c.UserContext(), c.Params("courseId"), &req)
	if err != nil {
		return err
	}
	return shared.ResponseOK(c, fiber.Map{"rating": rating})
}

// @Summary Enroll in course
// @Tags enrollments
// @Accept json
// @Produce json
// @Param courseId path string true "Course ID"
// @Param enrollment body dto.EnrollRequest true "Enrolling user"
// @Success 200 {object} shared.Response
// @Failure 400 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /api/courses/{courseId}/enroll [post]
func (h *CourseHandler) Enroll(c *fiber.Ctx) error {
	var req dto.EnrollRequest
	if err := dto.Bind(c.Body(), &req); err != nil {
		return err
	}
	req.Sanitize()

	enrollment, err := h.courseSvc.Enroll(c.UserContext(), c.Params("courseId"), &req)
	if err != nil {
		return err
	}
	return shared.ResponseOK(c, fiber.Map{"enrollment": enrollment})
}
