package model

import "time"

type Course struct {
	ID                  string    `json:"id" gorm:"primaryKey;type:text;not null"`
	Title               string    `json:"title" gorm:"not null;size:200"`
	Subtitle            *string   `json:"subtitle"`
	Description         string    `json:"description" gorm:"type:text;not null"`
	DetailedDescription *string   `json:"detailedDescription" gorm:"type:text"`
	Price               string    `json:"price" gorm:"not null;default:''"`
	OriginalPrice       *string   `json:"originalPrice"`
	Duration            string    `json:"duration" gorm:"not null;default:''"`
	Level               string    `json:"level" gorm:"not null;default:''"`
	Thumbnail           string    `json:"thumbnail" gorm:"not null;default:''"`
	PDFFile             *string   `json:"pdfFile"`
	Features            []string  `json:"features" gorm:"serializer:json;type:text"`
	Topics              []string  `json:"topics" gorm:"serializer:json;type:text"`
	Popularity          int       `json:"popularity" gorm:"default:0;not null;check:popularity >= 0 AND popularity <= 100"`
	Featured            bool      `json:"featured" gorm:"default:false;not null"`
	ComingSoon          bool      `json:"comingSoon" gorm:"default:false;not null"`
	AverageRating       float64   `json:"averageRating" gorm:"default:0;not null;index"`
	TotalRatings        int       `json:"totalRatings" gorm:"default:0;not null"`
	EnrollmentCount     int       `json:"enrollmentCount" gorm:"default:0;not null;index"`
	CreatedAt           time.Time `json:"createdAt" gorm:"not null;index"`
	UpdatedAt           time.Time `json:"updatedAt" gorm:"not null"`

	Ratings     []Rating     `json:"ratings,omitempty" gorm:"foreignKey:CourseID;constraint:OnDelete:CASCADE"`
	Enrollments []Enrollment `json:"-" gorm:"foreignKey:CourseID;constraint:OnDelete:CASCADE"`
}

type Enrollment struct {
	ID          string     `json:"id" gorm:"primaryKey;type:text;not null"`
	UserID      string     `json:"userId" gorm:"not null;uniqueIndex:idx_enrollment_user_course"`
	CourseID    string     `json:"courseId" gorm:"not null;uniqueIndex:idx_enrollment_user_course"`
	EnrolledAt  time.Time  `json:"enrolledAt" gorm:"not null"`
	CompletedAt *time.Time `json:"completedAt"`
	Progress    int        `json:"progress" gorm:"default:0;not null"`

	User *User `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

type Rating struct {
	ID        string    `json:"id" gorm:"primaryKey;type:text;not null"`
	UserID    string    `json:"userId" gorm:"not null;uniqueIndex:idx_rating_user_course"`
	CourseID  string    `json:"courseId" gorm:"not null;uniqueIndex:idx_rating_user_course;index"`
	Rating    int       `json:"rating" gorm:"not null;check:rating >= 1 AND rating <= 5"`
	Review    *string   `json:"review" gorm:"type:text"`
	CreatedAt time.Time `json:"createdAt" gorm:"not null;index"`
	UpdatedAt time.Time `json:"updatedAt" gorm:"not null"`

	User *User `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}
