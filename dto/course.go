package dto

import (
	"github.com/resorcera/course_api/model"
	"github.com/resorcera/course_api/shared"
)

const (
	MaxTitleLength               = 200
	MaxDescriptionLength         = 5000
	MaxDetailedDescriptionLength = 10000
	MaxShortFieldLength          = 200
	MaxListItemLength            = 500
)

var courseRequiredFields = []string{"title", "description"}

type CreateCourseRequest struct {
	Title               string   `json:"title" validate:"required_text,max=200"`
	Description         string   `json:"description" validate:"required_text,max=5000"`
	Subtitle            *string  `json:"subtitle,omitempty"`
	DetailedDescription *string  `json:"detailedDescription,omitempty"`
	Price               string   `json:"price,omitempty" validate:"omitempty,course_price"`
	OriginalPrice       *string  `json:"originalPrice,omitempty"`
	Duration            string   `json:"duration,omitempty"`
	Level               string   `json:"level,omitempty" validate:"omitempty,course_level"`
	Thumbnail           string   `json:"thumbnail,omitempty"`
	PDFFile             *string  `json:"pdfFile,omitempty"`
	Features            []string `json:"features,omitempty"`
	Topics              []string `json:"topics,omitempty"`
	Featured            bool     `json:"featured,omitempty"`
	ComingSoon          bool     `json:"comingSoon,omitempty"`
}

func (r *CreateCourseRequest) Validate() error {
	return validateStruct(r)
}

// Sanitize cleans every text field in place. Call after Validate.
func (r *CreateCourseRequest) Sanitize() {
	r.Title = SanitizeString(r.Title, MaxTitleLength)
	r.Description = SanitizeString(r.Description, MaxDescriptionLength)
	r.Subtitle = sanitizePtr(r.Subtitle, MaxShortFieldLength)
	r.DetailedDescription = sanitizePtr(r.DetailedDescription, MaxDetailedDescriptionLength)
	r.Price = SanitizeString(r.Price, MaxShortFieldLength)
	r.OriginalPrice = sanitizePtr(r.OriginalPrice, MaxShortFieldLength)
	r.Duration = SanitizeString(r.Duration, MaxShortFieldLength)
	r.Level = SanitizeString(r.Level, MaxShortFieldLength)
	r.Thumbnail = SanitizeString(r.Thumbnail, MaxShortFieldLength)
	r.PDFFile = sanitizePtr(r.PDFFile, MaxShortFieldLength)
	r.Features = SanitizeStrings(r.Features, MaxListItemLength)
	r.Topics = SanitizeStrings(r.Topics, MaxListItemLength)
}

func (r *CreateCourseRequest) ToModel(id string) *model.Course {
	features, topics := r.Features, r.Topics
	if features == nil {
		features = []string{}
	}
	if topics == nil {
		topics = []string{}
	}
	return &model.Course{
		ID:                  id,
		Title:               r.Title,
		Subtitle:            r.Subtitle,
		Description:         r.Description,
		DetailedDescription: r.DetailedDescription,
		Price:               r.Price,
		OriginalPrice:       r.OriginalPrice,
		Duration:            r.Duration,
		Level:               r.Level,
		Thumbnail:           r.Thumbnail,
		PDFFile:             r.PDFFile,
		Features:            features,
		Topics:              topics,
		Featured:            r.Featured,
		ComingSoon:          r.ComingSoon,
	}
}

// ValidateCourseInput checks a decoded course body without binding it.
func ValidateCourseInput(r *CreateCourseRequest) error {
	return r.Validate()
}

// BindCourseInput decodes, validates and sanitizes a course creation body.
func BindCourseInput(body []byte) (*CreateCourseRequest, error) {
	var req CreateCourseRequest
	if err := Bind(body, &req, courseRequiredFields...); err != nil {
		return nil, err
	}
	req.Sanitize()
	return &req, nil
}

// UpdateCourseRequest is a partial update; nil fields are left untouched.
type UpdateCourseRequest struct {
	Title               *string   `json:"title,omitempty" validate:"omitnil,required_text,max=200"`
	Description         *string   `json:"description,omitempty" validate:"omitnil,required_text,max=5000"`
	Subtitle            *string   `json:"subtitle,omitempty"`
	DetailedDescription *string   `json:"detailedDescription,omitempty"`
	Price               *string   `json:"price,omitempty" validate:"omitempty,course_price"`
	OriginalPrice       *string   `json:"originalPrice,omitempty"`
	Duration            *string   `json:"duration,omitempty"`
	Level               *string   `json:"level,omitempty" validate:"omitempty,course_level"`
	Thumbnail           *string   `json:"thumbnail,omitempty"`
	PDFFile             *string   `json:"pdfFile,omitempty"`
	Features            *[]string `json:"features,omitempty"`
	Topics              *[]string `json:"topics,omitempty"`
	Popularity          *int      `json:"popularity,omitempty" validate:"omitnil,min=0,max=100"`
	Featured            *bool     `json:"featured,omitempty"`
	ComingSoon          *bool     `json:"comingSoon,omitempty"`
}

func (r *UpdateCourseRequest) Validate() error {
	return validateStruct(r)
}

func (r *UpdateCourseRequest) Sanitize() {
	r.Title = sanitizePtr(r.Title, MaxTitleLength)
	r.Description = sanitizePtr(r.Description, MaxDescriptionLength)
	r.Subtitle = sanitizePtr(r.Subtitle, MaxShortFieldLength)
	r.DetailedDescription = sanitizePtr(r.DetailedDescription, MaxDetailedDescriptionLength)
	r.Price = sanitizePtr(r.Price, MaxShortFieldLength)
	r.OriginalPrice = sanitizePtr(r.OriginalPrice, MaxShortFieldLength)
	r.Duration = sanitizePtr(r.Duration, MaxShortFieldLength)
	r.Level = sanitizePtr(r.Level, MaxShortFieldLength)
	r.Thumbnail = sanitizePtr(r.Thumbnail, MaxShortFieldLength)
	r.PDFFile = sanitizePtr(r.PDFFile, MaxShortFieldLength)
	if r.Features != nil {
		features := SanitizeStrings(*r.Features, MaxListItemLength)
		r.Features = &features
	}
	if r.Topics != nil {
		topics := SanitizeStrings(*r.Topics, MaxListItemLength)
		r.Topics = &topics
	}
}

// Apply copies the provided fields onto course.
func (r *UpdateCourseRequest) Apply(course *model.Course) {
	if r.Title != nil {
		course.Title = *r.Title
	}
	if r.Description != nil {
		course.Description = *r.Description
	}
	if r.Subtitle != nil {
		course.Subtitle = r.Subtitle
	}
	if r.DetailedDescription != nil {
		course.DetailedDescription = r.DetailedDescription
	}
	if r.Price != nil {
		course.Price = *r.Price
	}
	if r.OriginalPrice != nil {
		course.OriginalPrice = r.OriginalPrice
	}
	if r.Duration != nil {
		course.Duration = *r.Duration
	}
	if r.Level != nil {
		course.Level = *r.Level
	}
	if r.Thumbnail != nil {
		course.Thumbnail = *r.Thumbnail
	}
	if r.PDFFile != nil {
		course.PDFFile = r.PDFFile
	}
	if r.Features != nil {
		course.Features = *r.Features
	}
	if r.Topics != nil {
		course.Topics = *r.Topics
	}
	if r.Popularity != nil {
		course.Popularity = *r.Popularity
	}
	if r.Featured != nil {
		course.Featured = *r.Featured
	}
	if r.ComingSoon != nil {
		course.ComingSoon = *r.ComingSoon
	}
}

func BindCourseUpdate(body []byte) (*UpdateCourseRequest, error) {
	var req UpdateCourseRequest
	if err := Bind(body, &req); err != nil {
		return nil, err
	}
	req.Sanitize()
	return &req, nil
}

type RatingRequest struct {
	UserID    string  `json:"userId,omitempty"`
	UserEmail string  `json:"userEmail,omitempty" validate:"omitempty,contact_email"`
	UserName  string  `json:"userName,omitempty" validate:"max=100"`
	Rating    int     `json:"rating" validate:"min=1,max=5"`
	Review    *string `json:"review,omitempty"`
}

func (r *RatingRequest) Validate() error {
	if r.Rating < 1 || r.Rating > 5 {
		return NewRatingRangeError()
	}
	return validateStruct(r)
}

func (r *RatingRequest) Sanitize() {
	r.UserID = SanitizeString(r.UserID, MaxShortFieldLength)
	r.UserEmail = SanitizeString(r.UserEmail, MaxEmailLength)
	r.UserName = SanitizeString(r.UserName, 100)
	r.Review = sanitizePtr(r.Review, MaxDescriptionLength)
}

func NewRatingRangeError() error {
	return shared.NewValidationError(shared.KindOutOfRange, "rating", "Rating must be between 1 and 5")
}

type EnrollRequest struct {
	UserID    string `json:"userId,omitempty"`
	UserEmail string `json:"userEmail,omitempty" validate:"omitempty,contact_email"`
	UserName  string `json:"userName,omitempty" validate:"max=100"`
}

func (r *EnrollRequest) Validate() error {
	return validateStruct(r)
}

func (r *EnrollRequest) Sanitize() {
	r.UserID = SanitizeString(r.UserID, MaxShortFieldLength)
	r.UserEmail = SanitizeString(r.UserEmail, MaxEmailLength)
	r.UserName = SanitizeString(r.UserName, 100)
}

// UserIdentity is how rating and enrollment bodies name the acting user.
type UserIdentity struct {
	UserID    string
	UserEmail string
	UserName  string
}

func (r *RatingRequest) Identity() UserIdentity {
	return UserIdentity{UserID: r.UserID, UserEmail: r.UserEmail, UserName: r.UserName}
}

func (r *EnrollRequest) Identity() UserIdentity {
	return UserIdentity{UserID: r.UserID, UserEmail: r.UserEmail, UserName: r.UserName}
}

type CourseListResponse struct {
	Success bool           `json:"success"`
	Courses []model.Course `json:"courses"`
}

type CourseResponse struct {
	Success bool          `json:"success"`
	Course  *model.Course `json:"course"`
}

type RatingListResponse struct {
	Success bool           `json:"success"`
	Ratings []model.Rating `json:"ratings"`
}
