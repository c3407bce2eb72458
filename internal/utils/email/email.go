package email

import (
	"fmt"
	"net/smtp"

	"github.com/jordan-wright/email"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/pocketly/wallet-service/internal/config"
)

// Sender handles sending emails via SMTP
type Sender struct {
	cfg    *config.Config
	logger *logrus.Logger
}

// NewSender creates a new email sender
func NewSender(cfg *config.Config, logger *logrus.Logger) *Sender {
	return &Sender{
		cfg:    cfg,
		logger: logger,
	}
}

// SendGoalReached sends a congratulation email when a savings goal is
// fully funded
func (s *Sender) SendGoalReached(to, fullName, goalName string, target decimal.Decimal) error {
	e := email.NewEmail()
	e.From = s.cfg.SenderEmail
	e.To = []string{to}
	e.Subject = fmt.Sprintf("Goal reached: %s", goalName)

	name := fullName
	if name == "" {
		name = "there"
	}
	body := fmt.Sprintf(
		"Hi %s,\n\n"+
			"You did it! Your savings goal \"%s\" is fully funded at %s.\n"+
			"Open the app to set your next target.\n"+
			"\nBest regards,\nPocketly",
		name, goalName, target.StringFixed(2),
	)
	e.Text = []byte(body)

	addr := fmt.Sprintf("%s:%s", s.cfg.SMTPHost, s.cfg.SMTPPort)
	auth := smtp.PlainAuth("", s.cfg.SMTPUsername, s.cfg.SMTPPassword, s.cfg.SMTPHost)
	if err := e.Send(addr, auth); err != nil {
		s.logger.Errorf("Failed to send email to %s: %v", to, err)
		return fmt.Errorf("failed to send email: %w", err)
	}

	s.logger.Infof("Email sent to %s: %s", to, e.Subject)
	return nil
}
