package shared

const (
	AdminPasswordHeader = "X-Admin-Password"
	EnvDevelopment      = "development"
	AnonymousClientKey  = "anonymous"
	PDFContentType      = "application/pdf"

	LevelBeginner           = "Beginner"
	LevelIntermediate       = "Intermediate"
	LevelAdvanced           = "Advanced"
	LevelBeginnerToAdvanced = "Beginner to Advanced"

	SortByRating   = "rating"
	SortByStudents = "students"
	SortByNewest   = "newest"

	MaxPopularity = 100
)

// MaxPDFSize is the upload ceiling for course PDFs (10 MiB).
const MaxPDFSize int64 = 10 * 1024 * 1024
