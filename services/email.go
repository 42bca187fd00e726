package services

import (
	"bytes"
	"fmt"
	"html/template"
	"net/smtp"
	"os"
	"strings"

	"github.com/alphabatem/common/context"
	"github.com/resorcera/course_api/dto"
	log "github.com/sirupsen/logrus"
)

type sendMailFunc func(addr string, a smtp.Auth, from string, to []string, msg []byte) error

type EmailService struct {
	context.DefaultService

	smtpHost     string
	smtpPort     string
	smtpUsername string
	smtpPassword string
	fromEmail    string
	fromName     string
	contactInbox string

	templates map[string]*template.Template
	sendMail  sendMailFunc
}

const EMAIL_SVC = "email_svc"

const (
	templateContactAdmin        = "contact_admin"
	templateContactConfirmation = "contact_confirmation"
)

func (svc EmailService) Id() string {
	return EMAIL_SVC
}

func (svc *EmailService) Configure(ctx *context.Context) error {
	svc.smtpHost = os.Getenv("SMTP_HOST")
	svc.smtpPort = os.Getenv("SMTP_PORT")
	svc.smtpUsername = os.Getenv("SMTP_USERNAME")
	svc.smtpPassword = os.Getenv("SMTP_PASSWORD")
	svc.fromEmail = os.Getenv("FROM_EMAIL")
	svc.fromName = os.Getenv("FROM_NAME")
	svc.contactInbox = os.Getenv("CONTACT_INBOX")

	if svc.smtpPort == "" {
		svc.smtpPort = "587"
	}
	if svc.fromName == "" {
		svc.fromName = "Resorcera"
	}
	if svc.fromEmail == "" {
		svc.fromEmail = svc.smtpUsername
	}
	if svc.contactInbox == "" {
		svc.contactInbox = svc.fromEmail
	}

	return svc.DefaultService.Configure(ctx)
}

func (svc *EmailService) Start() error {
	if err := svc.loadTemplates(); err != nil {
		return err
	}
	if svc.sendMail == nil {
		svc.sendMail = smtp.SendMail
	}
	if !svc.Configured() {
		log.Warn("SMTP not configured, contact form submissions will be refused")
	}
	return nil
}

func (svc *EmailService) Shutdown() {}

// Configured reports whether contact mail can be delivered.
func (svc *EmailService) Configured() bool {
	return svc.smtpHost != "" && svc.fromEmail != "" && svc.contactInbox != ""
}

const contactAdminEmailHTML = `
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h2 style="color: #CC7722;">New Contact Form Submission</h2>
  <div style="background-color: #F5E6D3; padding: 20px; border-radius: 8px; margin: 20px 0;">
    <p><strong>Name:</strong> {{.Name}}</p>
    <p><strong>Email:</strong> {{.Email}}</p>
    <p><strong>Subject:</strong> {{.Subject}}</p>
    <p><strong>Message:</strong></p>
    <div style="background-color: white; padding: 15px; border-radius: 4px; margin-top: 10px;">
      {{range $i, $line := .MessageLines}}{{if $i}}<br>{{end}}{{$line}}{{end}}
    </div>
  </div>
  <p style="color: #8B4513; font-size: 12px;">
    This message was sent from the {{.AppName}} website contact form.
  </p>
</div>
`

const contactConfirmationEmailHTML = `
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h2 style="color: #CC7722;">Thank you for reaching out!</h2>
  <p>Hi {{.Name}},</p>
  <p>We've received your message and will get back to you within 24 hours.</p>
  <p>Best regards,<br><strong>The {{.AppName}} Team</strong></p>
</div>
`

type ContactEmailData struct {
	AppName      string
	Name         string
	Email        string
	Subject      string
	MessageLines []string
}

func (svc *EmailService) loadTemplates() error {
	svc.templates = make(map[string]*template.Template)

	var err error
	svc.templates[templateContactAdmin], err = template.New(templateContactAdmin).Parse(contactAdminEmailHTML)
	if err != nil {
		return fmt.Errorf("failed to parse contact admin email template: %v", err)
	}

	svc.templates[templateContactConfirmation], err = template.New(templateContactConfirmation).Parse(contactConfirmationEmailHTML)
	if err != nil {
		return fmt.Errorf("failed to parse contact confirmation email template: %v", err)
	}

	return nil
}

func (svc *EmailService) contactData(req *dto.ContactRequest) ContactEmailData {
	return ContactEmailData{
		AppName:      svc.fromName,
		Name:         req.Name,
		Email:        req.Email,
		Subject:      req.Subject,
		MessageLines: strings.Split(req.Message, "\n"),
	}
}

// SendContactNotification forwards a contact form submission to the site inbox.
func (svc *EmailService) SendContactNotification(req *dto.ContactRequest) error {
	subject := "New Contact Form Message: " + req.Subject
	return svc.sendTemplateEmail(svc.contactInbox, subject, templateContactAdmin, svc.contactData(req))
}

// SendContactConfirmation acknowledges a submission to its sender.
func (svc *EmailService) SendContactConfirmation(req *dto.ContactRequest) error {
	subject := "Thank you for contacting " + svc.fromName + "!"
	return svc.sendTemplateEmail(req.Email, subject, templateContactConfirmation, svc.contactData(req))
}

func (svc *EmailService) sendTemplateEmail(to, subject, templateName string, data interface{}) error {
	tmpl, exists := svc.templates[templateName]
	if !exists {
		return fmt.Errorf("template %s not found", templateName)
	}

	var body bytes.Buffer
	if err := tmpl.Execute(&body, data); err != nil {
		return fmt.Errorf("failed to execute template: %v", err)
	}

	return svc.sendEmail(to, subject, body.String())
}

// headerValue drops line breaks so user input cannot add headers.
func headerValue(s string) string {
	return strings.NewReplacer("\r", " ", "\n", " ").Replace(s)
}

func (svc *EmailService) sendEmail(to, subject, body string) error {
	if svc.smtpHost == "" {
		return fmt.Errorf("SMTP not configured")
	}

	var auth smtp.Auth
	if svc.smtpUsername != "" {
		auth = smtp.PlainAuth("", svc.smtpUsername, svc.smtpPassword, svc.smtpHost)
	}

	msg := []byte(fmt.Sprintf(
		"From: %s <%s>\r\n"+
			"To: %s\r\n"+
			"Subject: %s\r\n"+
			"MIME-Version: 1.0\r\n"+
			"Content-Type: text/html; charset=UTF-8\r\n"+
			"\r\n"+
			"%s",
		headerValue(svc.fromName), svc.fromEmail, headerValue(to), headerValue(subject), body))

	err := svc.sendMail(svc.smtpHost+":"+svc.smtpPort, auth, svc.fromEmail, []string{to}, msg)
	if err != nil {
		log.WithError(err).WithFields(log.Fields{"to": to, "subject": subject}).Error("Failed to send email")
		return fmt.Errorf("failed to send email: %v", err)
	}

	log.WithFields(log.Fields{"to": to, "subject": subject}).Info("Email sent successfully")
	return nil
}
