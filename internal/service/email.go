package service

import (
	"context"
	"fmt"

	"gopkg.in/gomail.v2"
)

type emailService struct {
	host     string
	port     int
	username string
	password string
	from     string
}

func NewEmailService(host string, port int, username, password, from string) EmailService {
	return &emailService{
		host:     host,
		port:     port,
		username: username,
		password: password,
		from:     from,
	}
}

func (s *emailService) send(to, subject, body string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)

	d := gomail.NewDialer(s.host, s.port, s.username, s.password)
	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}

func (s *emailService) SendRequestSubmitted(ctx context.Context, approverEmail, requesterEmail, assetName, reference string) error {
	body := fmt.Sprintf("Hello,\n\n%s has requested the asset '%s'.\n\nRequest reference: %s\n\nPlease review it in the HR portal.", requesterEmail, assetName, reference)
	return s.send(approverEmail, fmt.Sprintf("New asset request: %s", assetName), body)
}

func (s *emailService) SendRequestApproved(ctx context.Context, requesterEmail, assetName, approverEmail, reference string) error {
	body := fmt.Sprintf("Hello,\n\nYour request for '%s' was approved by %s.\n\nRequest reference: %s", assetName, approverEmail, reference)
	return s.send(requesterEmail, fmt.Sprintf("Request approved: %s", assetName), body)
}

func (s *emailService) SendRequestRejected(ctx context.Context, requesterEmail, assetName, approverEmail, reference string) error {
	body := fmt.Sprintf("Hello,\n\nYour request for '%s' was rejected by %s.\n\nRequest reference: %s", assetName, approverEmail, reference)
	return s.send(requesterEmail, fmt.Sprintf("Request rejected: %s", assetName), body)
}

func (s *emailService) SendReturnConfirmed(ctx context.Context, requesterEmail, assetName, reference string) error {
	body := fmt.Sprintf("Hello,\n\nYour return of '%s' has been recorded.\n\nRequest reference: %s", assetName, reference)
	return s.send(requesterEmail, fmt.Sprintf("Return recorded: %s", assetName), body)
}

func (s *emailService) SendPendingReminder(ctx context.Context, approverEmail string, pendingCount int) error {
	body := fmt.Sprintf("Hello,\n\nYou have %d pending asset request(s) awaiting review in the HR portal.", pendingCount)
	return s.send(approverEmail, "Pending asset requests", body)
}
