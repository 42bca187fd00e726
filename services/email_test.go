package services

import (
	"errors"
	"net/smtp"
	"strings"
	"testing"

	"github.com/resorcera/course_api/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sentMail struct {
	addr string
	from string
	to   []string
	msg  string
}

func newTestEmailService(t *testing.T, sent *[]sentMail, sendErr error) *EmailService {
	t.Helper()
	svc := &EmailService{
		smtpHost:     "smtp.example.com",
		smtpPort:     "587",
		fromEmail:    "noreply@example.com",
		fromName:     "Resorcera",
		contactInbox: "inbox@example.com",
		sendMail: func(addr string, _ smtp.Auth, from string, to []string, msg []byte) error {
			*sent = append(*sent, sentMail{addr: addr, from: from, to: to, msg: string(msg)})
			return sendErr
		},
	}
	require.NoError(t, svc.loadTemplates())
	return svc
}

func TestSendContactNotification(t *testing.T) {
	var sent []sentMail
	svc := newTestEmailService(t, &sent, nil)

	err := svc.SendContactNotification(&dto.ContactRequest{
		Name:    "Asha",
		Email:   "asha@example.com",
		Subject: "Hello",
		Message: "line one\n<b>line two</b>",
	})
	require.NoError(t, err)
	require.Len(t, sent, 1)

	mail := sent[0]
	assert.Equal(t, "smtp.example.com:587", mail.addr)
	assert.Equal(t, []string{"inbox@example.com"}, mail.to)
	assert.Contains(t, mail.msg, "Subject: New Contact Form Message: Hello\r\n")
	assert.Contains(t, mail.msg, "line one<br>&lt;b&gt;line two&lt;/b&gt;")
}

func TestSendContactConfirmationGoesToSender(t *testing.T) {
	var sent []sentMail
	svc := newTestEmailService(t, &sent, nil)

	require.NoError(t, svc.SendContactConfirmation(&dto.ContactRequest{Name: "Asha", Email: "asha@example.com"}))
	require.Len(t, sent, 1)
	assert.Equal(t, []string{"asha@example.com"}, sent[0].to)
	assert.Contains(t, sent[0].msg, "Thank you for contacting Resorcera!")
}

func TestEmailHeadersCannotBeInjected(t *testing.T) {
	var sent []sentMail
	svc := newTestEmailService(t, &sent, nil)

	err := svc.SendContactNotification(&dto.ContactRequest{Subject: "Hi\r\nBcc: victim@example.com"})
	require.NoError(t, err)

	headers := strings.SplitN(sent[0].msg, "\r\n\r\n", 2)[0]
	assert.NotContains(t, headers, "\r\nBcc:")
	assert.Equal(t, "a b c", headerValue("a\rb\nc"))
}

func TestSendEmailFailure(t *testing.T) {
	var sent []sentMail
	svc := newTestEmailService(t, &sent, errors.New("connection refused"))

	err := svc.SendContactConfirmation(&dto.ContactRequest{Name: "Asha", Email: "asha@example.com"})
	assert.ErrorContains(t, err, "connection refused")
}

func TestEmailConfigured(t *testing.T) {
	assert.False(t, (&EmailService{}).Configured())
	assert.True(t, (&EmailService{smtpHost: "h", fromEmail: "f@x", contactInbox: "i@x"}).Configured())
}
