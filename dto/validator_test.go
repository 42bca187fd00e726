package dto

import (
	"errors"
	"strings"
	"testing"

	"github.com/resorcera/course_api/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requireValidationError(t *testing.T, err error) *shared.ValidationError {
	t.Helper()
	var vErr *shared.ValidationError
	require.True(t, errors.As(err, &vErr), "expected *shared.ValidationError, got %v", err)
	return vErr
}

func TestValidateContactInput(t *testing.T) {
	err := ValidateContactInput(&ContactRequest{Name: "A", Email: "not-an-email", Subject: "s", Message: "m"})
	vErr := requireValidationError(t, err)
	assert.Equal(t, shared.KindInvalidFormat, vErr.Kind)
	assert.Equal(t, "email", vErr.Field)
	assert.Contains(t, vErr.Message, "email")
	assert.Equal(t, 400, vErr.StatusCode)

	assert.NoError(t, ValidateContactInput(&ContactRequest{Name: "A", Email: "a@b.co", Subject: "s", Message: "m"}))
}

func TestValidateContactInputLengths(t *testing.T) {
	tests := []struct {
		name  string
		req   ContactRequest
		field string
		msg   string
	}{
		{
			name:  "name",
			req:   ContactRequest{Name: strings.Repeat("n", 101), Email: "a@b.co", Subject: "s", Message: "m"},
			field: "name",
			msg:   "Name must be less than 100 characters",
		},
		{
			name:  "subject",
			req:   ContactRequest{Name: "n", Email: "a@b.co", Subject: strings.Repeat("s", 201), Message: "m"},
			field: "subject",
			msg:   "Subject must be less than 200 characters",
		},
		{
			name:  "message",
			req:   ContactRequest{Name: "n", Email: "a@b.co", Subject: "s", Message: strings.Repeat("m", 2001)},
			field: "message",
			msg:   "Message must be less than 2000 characters",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			vErr := requireValidationError(t, ValidateContactInput(&tt.req))
			assert.Equal(t, shared.KindFieldTooLong, vErr.Kind)
			assert.Equal(t, tt.field, vErr.Field)
			assert.Equal(t, tt.msg, vErr.Message)
		})
	}
}

func TestValidateContactInputReportOrder(t *testing.T) {
	tests := []struct {
		name  string
		req   ContactRequest
		field string
		msg   string
	}{
		{
			name:  "bad email before long name",
			req:   ContactRequest{Name: strings.Repeat("n", 101), Email: "nope", Subject: strings.Repeat("s", 201), Message: "m"},
			field: "email",
			msg:   "Invalid email address",
		},
		{
			name:  "long name before long subject",
			req:   ContactRequest{Name: strings.Repeat("n", 101), Email: "a@b.co", Subject: strings.Repeat("s", 201), Message: "m"},
			field: "name",
			msg:   "Name must be less than 100 characters",
		},
		{
			name:  "missing field before bad email",
			req:   ContactRequest{Name: "n", Email: "nope", Subject: "s"},
			field: "message",
			msg:   "message is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			vErr := requireValidationError(t, ValidateContactInput(&tt.req))
			assert.Equal(t, tt.field, vErr.Field)
			assert.Equal(t, tt.msg, vErr.Message)
		})
	}
}

func TestValidateEmailLength(t *testing.T) {
	local := strings.Repeat("a", 310)
	assert.True(t, ValidateEmail(local+"@b.co"))
	assert.False(t, ValidateEmail(local+"@example.com"))
	assert.False(t, ValidateEmail("a b@c.d"))
}

func TestValidateCourseInputPrice(t *testing.T) {
	assert.NoError(t, ValidateCourseInput(&CreateCourseRequest{Title: "T", Description: "D", Price: "₹999"}))

	for _, price := range []string{"$1,299.99", "1000", "coming soon", "FREE"} {
		assert.NoError(t, ValidateCourseInput(&CreateCourseRequest{Title: "T", Description: "D", Price: price}), price)
	}

	vErr := requireValidationError(t, ValidateCourseInput(&CreateCourseRequest{Title: "T", Description: "D", Price: "abc"}))
	assert.Equal(t, shared.KindInvalidFormat, vErr.Kind)
	assert.Equal(t, "price", vErr.Field)
	assert.Equal(t, "Invalid price format", vErr.Message)
}

func TestValidateCourseInputLevel(t *testing.T) {
	assert.NoError(t, ValidateCourseInput(&CreateCourseRequest{Title: "T", Description: "D", Level: "Beginner to Advanced"}))

	vErr := requireValidationError(t, ValidateCourseInput(&CreateCourseRequest{Title: "T", Description: "D", Level: "Expert"}))
	assert.Equal(t, "level", vErr.Field)
	assert.Equal(t, "Invalid level", vErr.Message)
}

func TestValidateCourseInputMissingFieldsComeFirst(t *testing.T) {
	vErr := requireValidationError(t, ValidateCourseInput(&CreateCourseRequest{Title: strings.Repeat("t", 201), Description: "  "}))
	assert.Equal(t, shared.KindMissingField, vErr.Kind)
	assert.Equal(t, "description", vErr.Field)
}

func TestBindCourseInput(t *testing.T) {
	req, err := BindCourseInput([]byte(`{"title":"  Go <script>x</script>Basics ","description":"Learn Go","price":"Free","features":[" a ",""]}`))
	require.NoError(t, err)
	assert.Equal(t, "Go Basics", req.Title)
	assert.Equal(t, "Learn Go", req.Description)
	assert.Equal(t, []string{"a"}, req.Features)
}

func TestBindCourseInputRequiredMustBeText(t *testing.T) {
	tests := []struct {
		name  string
		body  string
		field string
	}{
		{"absent", `{"description":"D"}`, "title"},
		{"number", `{"title":5,"description":"D"}`, "title"},
		{"null", `{"title":null,"description":"D"}`, "title"},
		{"blank", `{"title":"T","description":"   "}`, "description"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := BindCourseInput([]byte(tt.body))
			vErr := requireValidationError(t, err)
			assert.Equal(t, shared.KindMissingField, vErr.Kind)
			assert.Equal(t, tt.field, vErr.Field)
		})
	}
}

func TestBindRejectsMalformedBody(t *testing.T) {
	_, err := BindContactInput([]byte(`{"name":`))
	vErr := requireValidationError(t, err)
	assert.Equal(t, shared.KindTypeMismatch, vErr.Kind)
	assert.Equal(t, "Invalid request body", vErr.Message)
}

func TestBindCourseUpdate(t *testing.T) {
	req, err := BindCourseUpdate([]byte(`{"featured":true,"popularity":40}`))
	require.NoError(t, err)
	require.NotNil(t, req.Featured)
	assert.True(t, *req.Featured)
	assert.Nil(t, req.Title)

	_, err = BindCourseUpdate([]byte(`{"popularity":101}`))
	vErr := requireValidationError(t, err)
	assert.Equal(t, shared.KindOutOfRange, vErr.Kind)

	_, err = BindCourseUpdate([]byte(`{"title":"   "}`))
	vErr = requireValidationError(t, err)
	assert.Equal(t, shared.KindMissingField, vErr.Kind)
	assert.Equal(t, "title", vErr.Field)
}

func TestRatingRequestValidate(t *testing.T) {
	for _, rating := range []int{0, 6} {
		err := (&RatingRequest{UserID: "u", Rating: rating}).Validate()
		vErr := requireValidationError(t, err)
		assert.Equal(t, "Rating must be between 1 and 5", vErr.Message)
	}
	assert.NoError(t, (&RatingRequest{UserID: "u", Rating: 5}).Validate())
}
