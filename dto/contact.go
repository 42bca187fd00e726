package dto

const (
	MaxContactNameLength    = 100
	MaxContactSubjectLength = 200
	MaxContactMessageLength = 2000
)

var (
	contactRequiredFields = []string{"name", "email", "subject", "message"}
	// the address is checked before any length limit
	contactCheckOrder = []string{"email", "name", "subject", "message"}
)

type ContactRequest struct {
	Name    string `json:"name" validate:"required_text,max=100"`
	Email   string `json:"email" validate:"required_text,contact_email"`
	Subject string `json:"subject" validate:"required_text,max=200"`
	Message string `json:"message" validate:"required_text,max=2000"`
}

func (r *ContactRequest) Validate() error {
	return validateStructInOrder(r, contactCheckOrder...)
}

func (r *ContactRequest) Sanitize() {
	r.Name = SanitizeString(r.Name, MaxContactNameLength)
	r.Email = SanitizeString(r.Email, MaxEmailLength)
	r.Subject = SanitizeString(r.Subject, MaxContactSubjectLength)
	r.Message = SanitizeString(r.Message, MaxContactMessageLength)
}

func ValidateContactInput(r *ContactRequest) error {
	return r.Validate()
}

func BindContactInput(body []byte) (*ContactRequest, error) {
	var req ContactRequest
	if err := Bind(body, &req, contactRequiredFields...); err != nil {
		return nil, err
	}
	req.Sanitize()
	return &req, nil
}

type ContactResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
