package dto

import (
	"fmt"
	"mime/multipart"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/resorcera/course_api/shared"
)

var (
	scriptBlockRegex  = regexp.MustCompile(`(?is)<script\b[^>]*>.*?</script\s*>`)
	javascriptRegex   = regexp.MustCompile(`(?i)javascript:`)
	eventHandlerRegex = regexp.MustCompile(`(?i)\bon\w+\s*=`)
)

// SanitizeString trims the input, strips script blocks, javascript: schemes and
// inline event handler attributes, then truncates the result to maxLength runes.
func SanitizeString(input string, maxLength int) string {
	s := strings.TrimSpace(input)
	s = scriptBlockRegex.ReplaceAllString(s, "")
	s = javascriptRegex.ReplaceAllString(s, "")
	s = eventHandlerRegex.ReplaceAllString(s, "")

	if maxLength >= 0 && utf8.RuneCountInString(s) > maxLength {
		runes := []rune(s)
		s = string(runes[:maxLength])
	}
	return s
}

// SanitizeValue is SanitizeString for values decoded from an untyped body.
func SanitizeValue(input interface{}, maxLength int) (string, error) {
	s, ok := input.(string)
	if !ok {
		return "", shared.NewTypeMismatchError(fmt.Sprintf("Expected text input, got %T", input))
	}
	return SanitizeString(s, maxLength), nil
}

func SanitizeStrings(items []string, maxLength int) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		if s := SanitizeString(item, maxLength); s != "" {
			out = append(out, s)
		}
	}
	return out
}

func sanitizePtr(p *string, maxLength int) *string {
	if p == nil {
		return nil
	}
	s := SanitizeString(*p, maxLength)
	return &s
}

type FileUpload struct {
	ContentType string `json:"type"`
	Size        int64  `json:"size"`
}

func FileUploadFromHeader(fh *multipart.FileHeader) FileUpload {
	return FileUpload{
		ContentType: fh.Header.Get("Content-Type"),
		Size:        fh.Size,
	}
}

func ValidateFileUpload(file FileUpload) error {
	if file.ContentType != shared.PDFContentType {
		return shared.NewValidationError(shared.KindUnsupportedMediaType, "pdf", "Only PDF files are allowed")
	}
	if file.Size > shared.MaxPDFSize {
		return shared.NewValidationError(shared.KindPayloadTooLarge, "pdf", "File size must be less than 10MB")
	}
	return nil
}
