package services

import (
	"fmt"
	"time"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// Mailer sends the transactional emails the API produces. Handlers treat
// send failures as non-fatal and only log them.
type Mailer interface {
	SendUserInvitation(toEmail, inviterName string) error
	SendInterviewInvitation(toEmail, candidateName string, scheduledAt time.Time) error
}

// NoopMailer is used when no SendGrid key is configured, and in tests.
type NoopMailer struct{}

func (NoopMailer) SendUserInvitation(string, string) error { return nil }

func (NoopMailer) SendInterviewInvitation(string, string, time.Time) error { return nil }

type SendgridMailer struct {
	APIKey    string
	FromName  string
	FromEmail string
	LoginURL  string
}

func (m *SendgridMailer) send(message *mail.SGMailV3) error {
	client := sendgrid.NewSendClient(m.APIKey)
	_, err := client.Send(message)
	return err
}

func (m *SendgridMailer) SendUserInvitation(toEmail, inviterName string) error {
	from := mail.NewEmail(m.FromName, m.FromEmail)
	subject := fmt.Sprintf("%s has invited you to their recruiting workspace", inviterName)
	to := mail.NewEmail("New User", toEmail)

	htmlContent := fmt.Sprintf(`
        <div style="font-family: Arial, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px;">
			<h1 style="color: #2c3e50;">You've Been Invited!</h1>
			<p>Hello,</p>
			<p><strong>%s</strong> has invited you to join their team's applicant tracking workspace.</p>
			<a href="%s/login" style="display: inline-block; background-color: #3498db; color: #ffffff; text-decoration: none; padding: 12px 24px; border-radius: 4px; font-weight: bold;">Get Started</a>
		</div>
        `, inviterName, m.LoginURL)

	plainTextContent := fmt.Sprintf("Hello, %s has invited you to join their recruiting workspace. Log in here: %s/login", inviterName, m.LoginURL)

	return m.send(mail.NewSingleEmail(from, subject, to, plainTextContent, htmlContent))
}

func (m *SendgridMailer) SendInterviewInvitation(toEmail, candidateName string, scheduledAt time.Time) error {
	from := mail.NewEmail(m.FromName, m.FromEmail)
	subject := fmt.Sprintf("Interview scheduled: %s", candidateName)
	to := mail.NewEmail("Interviewer", toEmail)

	when := scheduledAt.Format("Monday, 2 Jan 2006 at 15:04 MST")
	htmlContent := fmt.Sprintf(`
        <div style="font-family: Arial, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px;">
			<h1 style="color: #2c3e50;">You're on an interview panel</h1>
			<p>You have been scheduled to interview <strong>%s</strong> on %s.</p>
			<p>Please submit your evaluation after the interview.</p>
		</div>
        `, candidateName, when)

	plainTextContent := fmt.Sprintf("You have been scheduled to interview %s on %s.", candidateName, when)

	return m.send(mail.NewSingleEmail(from, subject, to, plainTextContent, htmlContent))
}
