package handlers

import (
	"context"
	"mime/multipart"

	"github.com/resorcera/course_api/dto"
	"github.com/resorcera/course_api/model"
)

type CourseServiceInterface interface {
	ListCourses(ctx context.Context, sortBy string) ([]model.Course, error)
	GetCourse(ctx context.Context, courseID string) (*model.Course, error)
	CreateCourse(ctx context.Context, req *dto.CreateCourseRequest) (*model.Course, error)
	UpdateCourse(ctx context.Context, courseID string, req *dto.UpdateCourseRequest) (*model.Course, error)
	DeleteCourse(ctx context.Context, courseID string) error
	RecordView(ctx context.Context, courseID string) (int, error)
	ListRatings(ctx context.Context, courseID string) ([]model.Rating, error)
	RateCourse(ctx context.Context, courseID string, req *dto.RatingRequest) (*model.Rating, error)
	Enroll(ctx context.Context, courseID string, req *dto.EnrollRequest) (*model.Enrollment, error)
}

type AdminAuthServiceInterface interface {
	Login(password string) error
}

type ContactServiceInterface interface {
	Submit(req *dto.ContactRequest) error
}

type UploadServiceInterface interface {
	UploadPDF(ctx context.Context, courseID string, file *multipart.FileHeader) (string, error)
}
