package services

import (
	"net/http"

	"github.com/alphabatem/common/context"
	"github.com/resorcera/course_api/dto"
	"github.com/resorcera/course_api/shared"
	log "github.com/sirupsen/logrus"
)

const CONTACT_SVC = "contact_svc"

type ContactMailer interface {
	Configured() bool
	SendContactNotification(req *dto.ContactRequest) error
	SendContactConfirmation(req *dto.ContactRequest) error
}

type ContactService struct {
	context.DefaultService

	mailer ContactMailer
}

func NewContactService(mailer ContactMailer) *ContactService {
	return &ContactService{mailer: mailer}
}

func (svc ContactService) Id() string {
	return CONTACT_SVC
}

func (svc *ContactService) Configure(ctx *context.Context) error {
	return svc.DefaultService.Configure(ctx)
}

func (svc *ContactService) Start() error {
	if svc.mailer == nil {
		svc.mailer = svc.Service(EMAIL_SVC).(*EmailService)
	}
	return nil
}

func (svc *ContactService) Shutdown() {}

// Submit delivers a validated, sanitized contact message to the inbox and sends
// the sender a confirmation.
func (svc *ContactService) Submit(req *dto.ContactRequest) error {
	if !svc.mailer.Configured() {
		return shared.NewValidationErrorWithStatus(shared.KindUnavailable, "Email service is unavailable", http.StatusServiceUnavailable)
	}

	if err := svc.mailer.SendContactNotification(req); err != nil {
		return shared.NewInternalError(err, "Failed to send email")
	}
	if err := svc.mailer.SendContactConfirmation(req); err != nil {
		return shared.NewInternalError(err, "Failed to send email")
	}

	log.WithFields(log.Fields{"subject": req.Subject}).Info("Contact message delivered")
	return nil
}
