package dto

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
	"github.com/resorcera/course_api/shared"
)

const MaxEmailLength = 320

var (
	validate *validator.Validate

	emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	priceRegex = regexp.MustCompile(`(?i)^(₹|\$)?[\d,]+(\.\d{1,2})?$|^Coming Soon$|^Free$`)

	validLevels = map[string]struct{}{
		shared.LevelBeginner:           {},
		shared.LevelIntermediate:       {},
		shared.LevelAdvanced:           {},
		shared.LevelBeginnerToAdvanced: {},
	}
)

func init() {
	validate = validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	validate.RegisterValidation("required_text", validateRequiredText)
	validate.RegisterValidation("contact_email", validateContactEmail)
	validate.RegisterValidation("course_price", validateCoursePrice)
	validate.RegisterValidation("course_level", validateCourseLevel)
}

func validateRequiredText(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}

func validateContactEmail(fl validator.FieldLevel) bool {
	return ValidateEmail(fl.Field().String())
}

func validateCoursePrice(fl validator.FieldLevel) bool {
	return priceRegex.MatchString(fl.Field().String())
}

func validateCourseLevel(fl validator.FieldLevel) bool {
	_, ok := validLevels[fl.Field().String()]
	return ok
}

func ValidateEmail(email string) bool {
	return emailRegex.MatchString(email) && utf8.RuneCountInString(email) <= MaxEmailLength
}

func fieldLabel(field string) string {
	r, size := utf8.DecodeRuneInString(field)
	if r == utf8.RuneError {
		return field
	}
	return string(unicode.ToUpper(r)) + field[size:]
}

func isNumericKind(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}

func toValidationError(fieldError validator.FieldError) *shared.ValidationError {
	field := fieldError.Field()
	label := fieldLabel(field)

	switch fieldError.Tag() {
	case "required", "required_text":
		return shared.NewMissingFieldError(field)
	case "contact_email":
		return shared.NewInvalidFormatError(field, "Invalid email address")
	case "course_price":
		return shared.NewInvalidFormatError(field, "Invalid price format")
	case "course_level":
		return shared.NewInvalidFormatError(field, "Invalid level")
	case "max":
		if isNumericKind(fieldError.Kind()) {
			return shared.NewValidationError(shared.KindOutOfRange, field, label+" must be at most "+fieldError.Param())
		}
		var max int
		fmt.Sscanf(fieldError.Param(), "%d", &max)
		return shared.NewFieldTooLongError(field, label, max)
	case "min":
		if isNumericKind(fieldError.Kind()) {
			return shared.NewValidationError(shared.KindOutOfRange, field, label+" must be at least "+fieldError.Param())
		}
		return shared.NewValidationError(shared.KindInvalid, field, label+" must be at least "+fieldError.Param()+" characters")
	case "oneof":
		return shared.NewInvalidFormatError(field, label+" must be one of: "+fieldError.Param())
	case "dive":
		return shared.NewValidationError(shared.KindInvalid, field, label+" contains invalid items")
	default:
		return shared.NewValidationError(shared.KindInvalid, field, label+" is invalid")
	}
}

// FormatValidationErrors converts validator output into the shared error type,
// missing fields first and then in struct field order.
func FormatValidationErrors(err error) []*shared.ValidationError {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return nil
	}

	var missing, rest []*shared.ValidationError
	for _, fieldError := range validationErrors {
		vErr := toValidationError(fieldError)
		if vErr.Kind == shared.KindMissingField {
			missing = append(missing, vErr)
		} else {
			rest = append(rest, vErr)
		}
	}
	return append(missing, rest...)
}

// FirstValidationError returns the error a caller should see for a failed struct
// validation. Non validator errors are returned unchanged.
func FirstValidationError(err error) error {
	if err == nil {
		return nil
	}
	if errs := FormatValidationErrors(err); len(errs) > 0 {
		return errs[0]
	}
	var invalid *validator.InvalidValidationError
	if errors.As(err, &invalid) {
		return shared.NewValidationError(shared.KindInvalid, "", "Invalid request")
	}
	return err
}

func validateStruct(v interface{}) error {
	return FirstValidationError(validate.Struct(v))
}

// validateStructInOrder is validateStruct with the non missing failures ranked
// by order instead of struct field order. Missing fields still come first.
func validateStructInOrder(v interface{}, order ...string) error {
	err := validate.Struct(v)
	errs := FormatValidationErrors(err)
	if len(errs) == 0 {
		return FirstValidationError(err)
	}
	if errs[0].Kind == shared.KindMissingField {
		return errs[0]
	}

	rank := func(field string) int {
		for i, f := range order {
			if f == field {
				return i
			}
		}
		return len(order)
	}
	sort.SliceStable(errs, func(i, j int) bool {
		return rank(errs[i].Field) < rank(errs[j].Field)
	})
	return errs[0]
}

type Validator interface {
	Validate() error
}

// Bind decodes a JSON body into dst and validates it. Fields listed in required
// must be present as non blank strings; this is checked on the raw document so
// a number or null in a text field reports the field as missing.
func Bind(body []byte, dst Validator, required ...string) error {
	if len(required) > 0 {
		var raw map[string]interface{}
		if err := shared.JSONUnmarshal(body, &raw); err != nil {
			return shared.NewTypeMismatchError("Invalid request body")
		}
		for _, field := range required {
			s, ok := raw[field].(string)
			if !ok || strings.TrimSpace(s) == "" {
				return shared.NewMissingFieldError(field)
			}
		}
	}

	if err := shared.JSONUnmarshal(body, dst); err != nil {
		return shared.NewTypeMismatchError("Invalid request body")
	}
	return dst.Validate()
}
