package email

import (
	"fmt"
	"html"
	"strings"

	"gopkg.in/gomail.v2"
)

type SMTPConfig struct {
	Host        string
	Port        int
	Username    string
	Password    string
	FromAddress string
	FromName    string
	BaseURL     string // prefix for links back to the admin screens
}

type SMTPEmailService struct {
	config SMTPConfig
	send   func(m *gomail.Message) error
}

func NewSMTPEmailService(config SMTPConfig) *SMTPEmailService {
	dialer := gomail.NewDialer(config.Host, config.Port, config.Username, config.Password)

	return &SMTPEmailService{
		config: config,
		send: func(m *gomail.Message) error {
			return dialer.DialAndSend(m)
		},
	}
}

// NewSMTPEmailServiceWithSender delivers through sender instead of dialing SMTP.
func NewSMTPEmailServiceWithSender(config SMTPConfig, sender gomail.Sender) *SMTPEmailService {
	return &SMTPEmailService{
		config: config,
		send: func(m *gomail.Message) error {
			return gomail.Send(sender, m)
		},
	}
}

// SendPendingApprovalEmail lists payers that just entered the approval queue.
func (s *SMTPEmailService) SendPendingApprovalEmail(to string, payerNames []string) error {
	if to == "" {
		return fmt.Errorf("recipient is required")
	}
	reviewURL := strings.TrimRight(s.config.BaseURL, "/") + "/admin/approvals"

	subject := fmt.Sprintf("%d payer mapping(s) awaiting approval", len(payerNames))

	var items strings.Builder
	for _, name := range payerNames {
		items.WriteString("<li>" + html.EscapeString(name) + "</li>")
	}
	htmlBody := fmt.Sprintf(`
		<html>
		<body>
			<h2>Mappings awaiting approval</h2>
			<ul>%s</ul>
			<p><a href="%s">Review pending approvals</a></p>
		</body>
		</html>
	`, items.String(), html.EscapeString(reviewURL))

	plainBody := fmt.Sprintf(`
Mappings awaiting approval

%s

Review them at %s
	`, "- "+strings.Join(payerNames, "\n- "), reviewURL)

	return s.sendEmail(to, subject, htmlBody, plainBody)
}

func (s *SMTPEmailService) sendEmail(to, subject, htmlBody, plainBody string) error {
	m := gomail.NewMessage()
	if s.config.FromName != "" {
		m.SetAddressHeader("From", s.config.FromAddress, s.config.FromName)
	} else {
		m.SetHeader("From", s.config.FromAddress)
	}
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", plainBody)
	m.AddAlternative("text/html", htmlBody)

	if err := s.send(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}
