package seeders

import (
	"context"
	"time"

	"github.com/resorcera/course_api/model"
	log "github.com/sirupsen/logrus"
)

// CourseWriter is the slice of the course repository the seeder needs.
type CourseWriter interface {
	CreateCourseIfAbsent(ctx context.Context, course *model.Course) (bool, error)
}

// CourseSeeder inserts the demo catalogue. Courses whose id already exists are
// left untouched so the seeder can be re-run against a live database.
type CourseSeeder struct {
	courses CourseWriter
	slug    func(title string, now time.Time) string
	now     func() time.Time
}

func NewCourseSeeder(courses CourseWriter, slug func(string, time.Time) string) *CourseSeeder {
	return &CourseSeeder{courses: courses, slug: slug, now: time.Now}
}

type SeedResult struct {
	Created int
	Skipped int
}

func (s *CourseSeeder) Seed(ctx context.Context) (SeedResult, error) {
	var result SeedResult

	for _, course := range DemoCourses() {
		course.ID = s.slug(course.Title, s.now())

		created, err := s.courses.CreateCourseIfAbsent(ctx, &course)
		if err != nil {
			log.WithFields(log.Fields{"course": course.ID, "error": err.Error()}).Error("Failed to seed course")
			return result, err
		}

		if created {
			result.Created++
			log.WithField("course", course.ID).Info("Created course")
		} else {
			result.Skipped++
			log.WithField("course", course.ID).Info("Course already exists, skipping")
		}
	}

	return result, nil
}

func strPtr(s string) *string {
	return &s
}

// DemoCourses is the catalogue shipped for local development: featured,
// regular and upcoming courses.
func DemoCourses() []model.Course {
	return []model.Course{
		{
			Title:               "Complete Full-Stack Web Development",
			Subtitle:            strPtr("Master Modern Web Development"),
			Description:         "Comprehensive full-stack development course covering React, Node.js, databases, and deployment. Build real-world applications from scratch.",
			DetailedDescription: strPtr("Takes you from beginner to professional developer with React, Next.js, Node.js, PostgreSQL, authentication, payments and deployment. Build 5+ real-world projects."),
			Price:               "₹2999",
			OriginalPrice:       strPtr("₹5999"),
			Duration:            "80+ Hours",
			Level:               "Beginner to Advanced",
			Thumbnail:           "🚀",
			Features: []string{
				"Complete React & Next.js Mastery",
				"Backend Development with Node.js",
				"Database Design & Management",
				"5+ Real-world Projects",
			},
			Topics: []string{
				"HTML, CSS, JavaScript ES6+",
				"React.js & Next.js",
				"Node.js & Express.js",
				"REST APIs & GraphQL",
			},
			Popularity:      95,
			AverageRating:   4.9,
			TotalRatings:    2847,
			EnrollmentCount: 12500,
			Featured:        true,
		},
		{
			Title:               "Complete DevOps & Cloud Engineering",
			Subtitle:            strPtr("Master Cloud & Infrastructure"),
			Description:         "Comprehensive DevOps course covering AWS, Docker, Kubernetes, CI/CD, monitoring, and infrastructure as code.",
			DetailedDescription: strPtr("Hands-on AWS, Docker, Kubernetes, Terraform and monitoring. Build scalable infrastructure and robust CI/CD pipelines."),
			Price:               "₹2799",
			OriginalPrice:       strPtr("₹5499"),
			Duration:            "75+ Hours",
			Level:               "Intermediate to Advanced",
			Thumbnail:           "☁️",
			Features: []string{
				"Docker & Containerization",
				"Kubernetes Orchestration",
				"Infrastructure as Code (Terraform)",
				"Monitoring & Logging",
			},
			Topics: []string{
				"Cloud Computing Fundamentals",
				"Kubernetes & Service Mesh",
				"Prometheus, Grafana, ELK Stack",
			},
			Popularity:      88,
			AverageRating:   4.7,
			TotalRatings:    1456,
			EnrollmentCount: 6890,
			Featured:        true,
		},
		{
			Title:               "Complete SQL Database Mastery",
			Subtitle:            strPtr("Master Database Management"),
			Description:         "Comprehensive SQL course covering database design, advanced queries, stored procedures, and performance optimization for all major databases.",
			Price:               "₹999",
			OriginalPrice:       strPtr("₹1999"),
			Duration:            "40+ Hours",
			Level:               "Beginner to Advanced",
			Thumbnail:           "📊",
			Features:            []string{"Complete SQL Reference Guide", "Performance Optimization"},
			Topics:              []string{"Joins & Subqueries", "Indexes & Query Plans"},
			Popularity:          85,
			AverageRating:       4.6,
			TotalRatings:        892,
			EnrollmentCount:     3450,
		},
		{
			Title:           "Python Programming Fundamentals",
			Subtitle:        strPtr("Learn Python from Scratch"),
			Description:     "Complete Python programming course covering fundamentals, OOP, data structures, file handling, and popular libraries like NumPy and Pandas.",
			Price:           "₹799",
			OriginalPrice:   strPtr("₹1599"),
			Duration:        "35+ Hours",
			Level:           "Beginner",
			Thumbnail:       "🐍",
			Features:        []string{"Hands-on Coding Exercises"},
			Topics:          []string{"Syntax & Data Types", "Object Oriented Programming"},
			Popularity:      82,
			AverageRating:   4.4,
			TotalRatings:    567,
			EnrollmentCount: 2340,
		},
		{
			Title:       "Blockchain & Web3 Development",
			Subtitle:    strPtr("Coming Soon"),
			Description: "Comprehensive blockchain development course covering Ethereum, Solidity, DeFi, NFTs, and building decentralized applications.",
			Price:       "Coming Soon",
			Duration:    "60+ Hours",
			Level:       "Intermediate to Advanced",
			Thumbnail:   "⛓️",
			Features:    []string{"Coming Soon"},
			Topics:      []string{"Coming Soon"},
			ComingSoon:  true,
		},
		{
			Title:       "Mobile App Development (Flutter)",
			Subtitle:    strPtr("Coming Soon"),
			Description: "Complete mobile app development course using Flutter. Build cross-platform iOS and Android apps with modern UI and backend integration.",
			Price:       "Coming Soon",
			Duration:    "55+ Hours",
			Level:       "Beginner to Advanced",
			Thumbnail:   "📱",
			Features:    []string{"Coming Soon"},
			Topics:      []string{"Coming Soon"},
			ComingSoon:  true,
		},
	}
}
